package rds

import (
	"gopkg.in/gorp.v2"

	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/model"
)

// Store RDBを使用する計測記録ストア。クエリは全てプレースホルダで
// パラメータ化し、患者IDを直接クエリ文字列へ埋め込まない。
type Store struct {
	WriteDB *gorp.DbMap
	ReadDB  *gorp.DbMap
}

func NewStore(writeDB *gorp.DbMap, readDB *gorp.DbMap) *Store {
	return &Store{
		WriteDB: writeDB,
		ReadDB:  readDB,
	}
}

func (s *Store) Init() error {
	return EnsureSchema(s.WriteDB)
}

func (s *Store) Save(m *model.Measurement) (*model.Measurement, error) {
	record := *m
	record.RiskLevel = C.ClassifyRisk(record.JCIndex)

	if e := InsertMeasurement(s.WriteDB, &record); e != nil {
		return nil, e
	}

	return &record, nil
}

func (s *Store) LoadHistory(patientId string) ([]*model.Measurement, error) {
	return ListMeasurementsByPatient(s.ReadDB, patientId)
}
