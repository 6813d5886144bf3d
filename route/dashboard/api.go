package dashboard

import (
	"github.com/labstack/echo/v4"

	"github.com/Carehealth1/jcindex/route/shared"
)

func RegisterAPI(e *echo.Echo) {
	router := e.Group("/1")

	router.GET("/patients/:patient_id/measurements", shared.C(listMeasurements))
	router.POST("/patients/:patient_id/measurements", shared.C(saveMeasurement))
	router.GET("/patients/:patient_id/summary", shared.C(getSummary))
	router.GET("/patients/:patient_id/chart", shared.C(getChart))
	router.GET("/patients/:patient_id/measurements/export", shared.C(exportMeasurements))
}

func summaryCacheKey(patientId string) string {
	return "summary:" + patientId
}
