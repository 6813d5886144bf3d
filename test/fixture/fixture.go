package fixture

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gopkg.in/gorp.v2"
)

// Truncate 指定テーブルの全行を削除する。
func Truncate(db *gorp.DbMap, tables ...string) {
	for _, table := range tables {
		if _, e := db.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); e != nil {
			panic(e)
		}
	}
}

// NewPatientId テスト間で重複しない患者IDを生成する。
func NewPatientId() string {
	return "patient-" + uuid.NewString()
}

func FromJsonResponse(t *testing.T, rec *httptest.ResponseRecorder, holder interface{}) interface{} {
	if e := json.Unmarshal(rec.Body.Bytes(), holder); e != nil {
		t.Fatalf("failed to decode response: %v", e)
	}
	return holder
}
