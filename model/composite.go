package model

import (
	"time"

	C "github.com/Carehealth1/jcindex/constant"
)

// ダッシュボードのサマリ表示。
type PatientSummary struct {
	PatientId    string       `json:"patientId"`
	Latest       *Measurement `json:"latest"`
	IndexDelta   *float64     `json:"indexDelta"` // 直前の計測との差分。履歴が1件の場合null。
	LesionDelta  int          `json:"lesionDelta"`
	RiskColor    string       `json:"riskColor"`
	Measurements int          `json:"measurements"`
}

// トレンドチャートの1点。
type ChartPoint struct {
	ScanDate time.Time `json:"scanDate"`
	JCIndex  float64   `json:"jcIndex"`
}

// チャートに描画する閾値の水平線。
type ChartThreshold struct {
	Value float64     `json:"value"`
	Level C.RiskLevel `json:"level"`
	Color string      `json:"color"`
}

// トレンドチャート。Y軸レンジと閾値線は固定。
type ChartSeries struct {
	PatientId  string            `json:"patientId"`
	Points     []*ChartPoint     `json:"points"`
	AxisMin    float64           `json:"axisMin"`
	AxisMax    float64           `json:"axisMax"`
	Thresholds []*ChartThreshold `json:"thresholds"`
}
