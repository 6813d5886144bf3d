package dashboard

import (
	"net/http"

	"github.com/patrickmn/go-cache"

	"github.com/Carehealth1/jcindex/model"
	"github.com/Carehealth1/jcindex/route/shared"
	S "github.com/Carehealth1/jcindex/service"
)

// getSummary godoc
// @summary ダッシュボードのサマリ表示を取得する。
// @description 現在のJCインデックスと直前の計測との差分、総病変数と新規病変数、リスクバッジを返す。
// @tags [dashboard] Summary
// @produce json
// @param patient_id path string true "患者ID。"
// @success 200 {object} model.PatientSummary "サマリ。"
// @failure 500 {object} shared.ErrorResponse "サーバエラーが発生。"
// @router /1/patients/{patient_id}/summary [get]
func getSummary(c *shared.Context) error {
	patientId := c.Param("patient_id")

	if cached, ok := c.GetCache().Get(summaryCacheKey(patientId)); ok {
		return c.JSON(http.StatusOK, cached.(*model.PatientSummary))
	}

	service := shared.CreateService(S.MeasurementService{}, c).(*S.MeasurementService)

	result, err := service.Summary(patientId)

	if err != nil {
		return err
	}

	c.GetCache().Set(summaryCacheKey(patientId), result, cache.DefaultExpiration)

	return c.JSON(http.StatusOK, result)
}

// getChart godoc
// @summary トレンドチャートの描画データを取得する。
// @description 計測日昇順の系列に加え、固定のY軸レンジ[0, 8]と閾値線(3.5, 4.0)を返す。
// @tags [dashboard] Summary
// @produce json
// @param patient_id path string true "患者ID。"
// @success 200 {object} model.ChartSeries "チャートデータ。"
// @failure 500 {object} shared.ErrorResponse "サーバエラーが発生。"
// @router /1/patients/{patient_id}/chart [get]
func getChart(c *shared.Context) error {
	patientId := c.Param("patient_id")

	service := shared.CreateService(S.MeasurementService{}, c).(*S.MeasurementService)

	result, err := service.Chart(patientId)

	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
