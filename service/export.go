package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/model"
)

type ExportService struct {
	*Service
	Store model.MeasurementStore
}

// CSVのヘッダ行。ストレージスキーマのカラム名と一致する。
var exportColumns = []string{
	"patient_id",
	"scan_date",
	"jc_index",
	"total_lesions",
	"new_lesions",
	"notes",
	"risk_level",
}

// エクスポート成果物のファイル名を生成する。
func ExportFilename(patientId string) string {
	return fmt.Sprintf("%s%s.csv", C.ExportFilePrefix, patientId)
}

// 患者の計測履歴をCSVとして書き出す。行順は履歴の取得順と同一。
// 記録のない患者の場合はヘッダ行のみ書き出す。
func (s *ExportService) WriteCSV(w io.Writer, patientId string) error {
	history, err := s.Store.LoadHistory(patientId)

	if err != nil {
		return C.DB_OPERATION_ERROR(err)
	}

	writer := csv.NewWriter(w)

	if e := writer.Write(exportColumns); e != nil {
		return e
	}

	for _, m := range history {
		notes := ""
		if m.Notes != nil {
			notes = *m.Notes
		}

		record := []string{
			m.PatientId,
			m.ScanDate.Format("2006-01-02"),
			strconv.FormatFloat(m.JCIndex, 'f', -1, 64),
			strconv.Itoa(m.TotalLesions),
			strconv.Itoa(m.NewLesions),
			notes,
			string(m.RiskLevel),
		}

		if e := writer.Write(record); e != nil {
			return e
		}
	}

	writer.Flush()

	return writer.Error()
}
