package model

import (
	"time"

	C "github.com/Carehealth1/jcindex/constant"
)

// 計測記録。保存時にリスクレベルが算出され、以後再計算されない。
type Measurement struct {
	PatientId    string      `db:"patient_id" json:"patientId"`
	ScanDate     time.Time   `db:"scan_date" json:"scanDate"`
	JCIndex      float64     `db:"jc_index" json:"jcIndex"`
	TotalLesions int         `db:"total_lesions" json:"totalLesions"`
	NewLesions   int         `db:"new_lesions" json:"newLesions"`
	Notes        *string     `db:"notes" json:"notes"`
	RiskLevel    C.RiskLevel `db:"risk_level" json:"riskLevel"`
}

// 計測記録ストア。メモリ版とRDB版が同一の契約を実装する。
type MeasurementStore interface {
	// バックエンドが存在しない場合に作成する。既存データは破棄しない。
	Init() error

	// 患者の履歴に計測を追加する。リスクレベルは保存時に算出され、
	// 呼び出し側が設定した値は無視される。
	Save(m *Measurement) (*Measurement, error)

	// 患者の全計測を計測日昇順で取得する。未知の患者は空列を返す。
	LoadHistory(patientId string) ([]*Measurement, error)
}
