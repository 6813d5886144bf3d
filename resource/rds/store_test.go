package rds

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gorp.v2"

	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/lib"
	"github.com/Carehealth1/jcindex/model"
	F "github.com/Carehealth1/jcindex/test/fixture"
)

const testDBKey = "rds_test"

var testDBOnce sync.Once

// テスト用のSQLiteデータベース。各テストの開始時に全行を削除する。
func newTestDB(t *testing.T) *gorp.DbMap {
	testDBOnce.Do(func() {
		config := &lib.DatabaseConfiguration{
			Driver: lib.DriverSqlite,
			Path:   filepath.Join(os.TempDir(), "jcindex_rds_test.db"),
		}

		if e := lib.SetupDatabase(testDBKey, config); e != nil {
			panic(e)
		}

		db := lib.GetDB(testDBKey)

		model.SetupModels(db)

		if e := EnsureSchema(db); e != nil {
			panic(e)
		}
	})

	db := lib.GetDB(testDBKey)

	F.Truncate(db, "measurement")

	return db
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRDSStore_InitIdempotent(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, db)

	assert.NoError(t, store.Init())

	_, err := store.Save(&model.Measurement{
		PatientId:    "P1",
		ScanDate:     date(2024, time.January, 1),
		JCIndex:      3.5,
		TotalLesions: 5,
		NewLesions:   1,
	})
	assert.NoError(t, err)

	// 再初期化してもテーブルは作り直されない。
	assert.NoError(t, store.Init())

	history, err := store.LoadHistory("P1")

	assert.NoError(t, err)
	assert.EqualValues(t, 1, len(history))
}

func TestRDSStore_SaveAttachesRisk(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, db)

	assert.NoError(t, store.Init())

	notes := "Escalated to specialist"

	// 呼び出し側が設定したリスクレベルは無視される。
	saved, err := store.Save(&model.Measurement{
		PatientId:    "P1",
		ScanDate:     date(2024, time.February, 1),
		JCIndex:      4.2,
		TotalLesions: 7,
		NewLesions:   2,
		Notes:        &notes,
		RiskLevel:    C.RiskLow,
	})

	assert.NoError(t, err)
	assert.Equal(t, C.RiskHigh, saved.RiskLevel)

	history, err := store.LoadHistory("P1")

	assert.NoError(t, err)
	assert.EqualValues(t, 1, len(history))
	assert.Equal(t, "P1", history[0].PatientId)
	assert.Equal(t, 4.2, history[0].JCIndex)
	assert.Equal(t, 7, history[0].TotalLesions)
	assert.Equal(t, 2, history[0].NewLesions)
	assert.Equal(t, C.RiskHigh, history[0].RiskLevel)
	if assert.NotNil(t, history[0].Notes) {
		assert.Equal(t, notes, *history[0].Notes)
	}
}

func TestRDSStore_LoadHistoryOrder(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, db)

	assert.NoError(t, store.Init())

	// 登録順と計測日順が一致しないデータ。
	dates := []time.Time{
		date(2024, time.March, 1),
		date(2024, time.January, 1),
		date(2024, time.February, 1),
	}

	for i, d := range dates {
		_, err := store.Save(&model.Measurement{
			PatientId:    "P1",
			ScanDate:     d,
			JCIndex:      3.0 + float64(i)*0.1,
			TotalLesions: i,
			NewLesions:   0,
		})
		assert.NoError(t, err)
	}

	// 他患者の計測は混ざらない。
	_, err := store.Save(&model.Measurement{
		PatientId:    "P2",
		ScanDate:     date(2024, time.January, 15),
		JCIndex:      5.0,
		TotalLesions: 1,
		NewLesions:   0,
	})
	assert.NoError(t, err)

	history, err := store.LoadHistory("P1")

	assert.NoError(t, err)
	assert.EqualValues(t, 3, len(history))
	assert.Equal(t, date(2024, time.January, 1).Unix(), history[0].ScanDate.Unix())
	assert.Equal(t, date(2024, time.February, 1).Unix(), history[1].ScanDate.Unix())
	assert.Equal(t, date(2024, time.March, 1).Unix(), history[2].ScanDate.Unix())
}

func TestRDSStore_LoadHistoryUnknown(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, db)

	assert.NoError(t, store.Init())

	history, err := store.LoadHistory("nobody")

	assert.NoError(t, err)
	assert.NotNil(t, history)
	assert.EqualValues(t, 0, len(history))
}

func TestRDSStore_Count(t *testing.T) {
	db := newTestDB(t)
	store := NewStore(db, db)

	assert.NoError(t, store.Init())

	for i := 0; i < 3; i++ {
		_, err := store.Save(&model.Measurement{
			PatientId:    "P1",
			ScanDate:     date(2024, time.January, 1+i),
			JCIndex:      3.0,
			TotalLesions: 0,
			NewLesions:   0,
		})
		assert.NoError(t, err)
	}

	count, err := CountMeasurements(db, "P1")

	assert.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = CountMeasurements(db, "nobody")

	assert.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
