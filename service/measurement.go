package service

import (
	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/model"
)

type MeasurementService struct {
	*Service
	Store model.MeasurementStore
}

// 計測を検証して保存する。検証に失敗した場合は何も書き込まない。
// リスクレベルはストアが保存時に算出するため、入力値は無視される。
func (s *MeasurementService) Save(
	m *model.Measurement,
) (*model.Measurement, error) {
	if e := validateMeasurement(m); e != nil {
		return nil, e
	}

	if r, e := s.Store.Save(m); e != nil {
		return nil, C.DB_OPERATION_ERROR(e)
	} else {
		return r, nil
	}
}

// 患者の計測履歴を計測日昇順で取得する。
// 記録のない患者は空の履歴を返し、エラーにはしない。
func (s *MeasurementService) History(
	patientId string,
) ([]*model.Measurement, error) {
	if r, e := s.Store.LoadHistory(patientId); e != nil {
		return nil, C.DB_OPERATION_ERROR(e)
	} else {
		return r, nil
	}
}

// ダッシュボードのサマリを取得する。JCインデックスの差分は直前の計測
// との比較で、履歴が1件以下の場合は設定されない。
func (s *MeasurementService) Summary(
	patientId string,
) (*model.PatientSummary, error) {
	history, err := s.History(patientId)

	if err != nil {
		return nil, err
	}

	summary := &model.PatientSummary{
		PatientId:    patientId,
		Measurements: len(history),
	}

	if len(history) == 0 {
		return summary, nil
	}

	latest := history[len(history)-1]

	summary.Latest = latest
	summary.LesionDelta = latest.NewLesions
	summary.RiskColor = C.RiskColor(latest.RiskLevel)

	if len(history) > 1 {
		delta := latest.JCIndex - history[len(history)-2].JCIndex
		summary.IndexDelta = &delta
	}

	return summary, nil
}

// トレンドチャートの描画データを取得する。Y軸レンジと閾値線は固定。
func (s *MeasurementService) Chart(
	patientId string,
) (*model.ChartSeries, error) {
	history, err := s.History(patientId)

	if err != nil {
		return nil, err
	}

	points := make([]*model.ChartPoint, 0, len(history))

	for _, m := range history {
		points = append(points, &model.ChartPoint{
			ScanDate: m.ScanDate,
			JCIndex:  m.JCIndex,
		})
	}

	return &model.ChartSeries{
		PatientId: patientId,
		Points:    points,
		AxisMin:   C.ChartAxisMin,
		AxisMax:   C.ChartAxisMax,
		Thresholds: []*model.ChartThreshold{
			{
				Value: C.RiskThresholdMedium,
				Level: C.RiskMedium,
				Color: C.RiskColor(C.RiskMedium),
			},
			{
				Value: C.RiskThresholdHigh,
				Level: C.RiskHigh,
				Color: C.RiskColor(C.RiskHigh),
			},
		},
	}, nil
}

// 登録内容の検証。元データの入力規則に従い、JCインデックスは0より
// 大きく、病変数は非負でなければならない。新規病変数が総病変数を
// 超える計測も拒否する。
func validateMeasurement(m *model.Measurement) error {
	if len(m.PatientId) == 0 {
		return C.INVALID_MEASUREMENT("patient ID is required")
	}
	if m.JCIndex <= 0 {
		return C.INVALID_MEASUREMENT("JC index must be greater than 0")
	}
	if m.TotalLesions < 0 {
		return C.INVALID_MEASUREMENT("total lesions must not be negative")
	}
	if m.NewLesions < 0 {
		return C.INVALID_MEASUREMENT("new lesions must not be negative")
	}
	if m.NewLesions > m.TotalLesions {
		return C.INVALID_MEASUREMENT("new lesions must not exceed total lesions")
	}

	return nil
}
