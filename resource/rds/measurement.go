package rds

import (
	"github.com/Carehealth1/jcindex/model"
)

// スキーマを作成する。既存のテーブルがある場合は何もしない。
func EnsureSchema(db model.QueryExecutor) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS measurement (
		patient_id    text,
		scan_date     date,
		jc_index      real,
		total_lesions integer,
		new_lesions   integer,
		notes         text,
		risk_level    text
	)`)

	return err
}

func InsertMeasurement(db model.QueryExecutor, m *model.Measurement) error {
	return db.Insert(m)
}

// 患者の計測記録一覧を計測日昇順で取得する。
func ListMeasurementsByPatient(
	db model.QueryExecutor,
	patientId string,
) ([]*model.Measurement, error) {
	records := []*model.Measurement{}

	if _, e := db.Select(
		&records,
		`SELECT * FROM measurement WHERE patient_id = $1 ORDER BY scan_date ASC`,
		patientId,
	); e != nil {
		return nil, e
	}

	return records, nil
}

func CountMeasurements(
	db model.QueryExecutor,
	patientId string,
) (int64, error) {
	return db.SelectInt(`SELECT COUNT(*) FROM measurement WHERE patient_id = $1`, patientId)
}
