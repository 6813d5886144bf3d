package dashboard

import (
	"net/http"
	"time"

	v "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Carehealth1/jcindex/model"
	"github.com/Carehealth1/jcindex/route/shared"
	S "github.com/Carehealth1/jcindex/service"
)

const scanDateLayout = "2006-01-02"

type listMeasurementsResponse struct {
	Measurements []*model.Measurement `json:"measurements"`
	Total        int                  `json:"total"`
}

// listMeasurements godoc
// @summary 患者の計測履歴を計測日昇順で取得する。
// @description 記録のない患者IDの場合は空の一覧を返す。
// @tags [dashboard] Measurement
// @produce json
// @param patient_id path string true "患者ID。"
// @success 200 {object} listMeasurementsResponse "計測履歴。"
// @failure 500 {object} shared.ErrorResponse "サーバエラーが発生。"
// @router /1/patients/{patient_id}/measurements [get]
func listMeasurements(c *shared.Context) error {
	patientId := c.Param("patient_id")

	service := shared.CreateService(S.MeasurementService{}, c).(*S.MeasurementService)

	results, err := service.History(patientId)

	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &listMeasurementsResponse{
		Measurements: results,
		Total:        len(results),
	})
}

type saveMeasurementRequest struct {
	ScanDate     string  `json:"scanDate"`
	JCIndex      float64 `json:"jcIndex"`
	TotalLesions int     `json:"totalLesions"`
	NewLesions   int     `json:"newLesions"`
	Notes        *string `json:"notes"`
}

// saveMeasurement godoc
// @summary 計測を登録する。
// @description リスクレベルは保存時にJCインデックスから算出され、リクエストで指定することはできない。検証に失敗した場合は何も書き込まれない。
// @tags [dashboard] Measurement
// @accept json
// @produce json
// @param patient_id path string true "患者ID。"
// @param measurement body saveMeasurementRequest true "計測内容。"
// @success 201 {object} model.Measurement "登録された計測。"
// @failure 400 {object} shared.ErrorResponse "バリデーションエラー。"
// @failure 500 {object} shared.ErrorResponse "サーバエラーが発生。"
// @router /1/patients/{patient_id}/measurements [post]
func saveMeasurement(c *shared.Context) error {
	patientId := c.Param("patient_id")

	body := &saveMeasurementRequest{}

	if e := c.Bind(body); e != nil {
		return e
	}

	if e := (v.Errors{
		"scanDate":     v.Validate(body.ScanDate, v.Required, v.Date(scanDateLayout)),
		"jcIndex":      v.Validate(body.JCIndex, v.Min(0.0).Exclusive(), v.Max(10.0)),
		"totalLesions": v.Validate(body.TotalLesions, v.Min(0)),
		"newLesions":   v.Validate(body.NewLesions, v.Min(0), v.Max(body.TotalLesions)),
	}).Filter(); e != nil {
		return e
	}

	scanDate, e := time.Parse(scanDateLayout, body.ScanDate)

	if e != nil {
		return e
	}

	service := shared.CreateService(S.MeasurementService{}, c).(*S.MeasurementService)

	result, err := service.Save(&model.Measurement{
		PatientId:    patientId,
		ScanDate:     scanDate,
		JCIndex:      body.JCIndex,
		TotalLesions: body.TotalLesions,
		NewLesions:   body.NewLesions,
		Notes:        body.Notes,
	})

	if err != nil {
		return err
	}

	// サマリのキャッシュを破棄し、次回取得時に再計算させる。
	c.GetCache().Delete(summaryCacheKey(patientId))

	return c.JSON(http.StatusCreated, result)
}
