package dashboard

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Carehealth1/jcindex/route/shared"
	S "github.com/Carehealth1/jcindex/service"
)

// exportMeasurements godoc
// @summary 患者の計測履歴をCSVでダウンロードする。
// @description 行順は履歴の取得順と同一。ファイル名はjc_index_data_<患者ID>.csvとなる。
// @tags [dashboard] Export
// @produce text/csv
// @param patient_id path string true "患者ID。"
// @success 200 {string} string "CSVデータ。"
// @failure 500 {object} shared.ErrorResponse "サーバエラーが発生。"
// @router /1/patients/{patient_id}/measurements/export [get]
func exportMeasurements(c *shared.Context) error {
	patientId := c.Param("patient_id")

	service := shared.CreateService(S.ExportService{}, c).(*S.ExportService)

	buf := &bytes.Buffer{}

	if err := service.WriteCSV(buf, patientId); err != nil {
		return err
	}

	c.Response().Header().Set(
		echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, S.ExportFilename(patientId)),
	)

	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}
