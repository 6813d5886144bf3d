package dashboard

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/model"
	"github.com/Carehealth1/jcindex/test"
	F "github.com/Carehealth1/jcindex/test/fixture"
)

func TestDashboardSummary_Flow(t *testing.T) {
	handler := newTestHandler()

	patientId := F.NewPatientId()

	httpTests := test.HttpTests{
		{
			Name:   "記録なし",
			Method: http.MethodGet,
			Path:   fmt.Sprintf("/1/patients/%s/summary", patientId),
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				res := F.FromJsonResponse(t, rec, &model.PatientSummary{}).(*model.PatientSummary)

				assert.EqualValues(t, 0, res.Measurements)
				assert.Nil(t, res.Latest)
				assert.Nil(t, res.IndexDelta)
			},
		},
		{
			Name:   "1件目を登録",
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/1/patients/%s/measurements", patientId),
			Body: &saveMeasurementRequest{
				ScanDate:     "2024-01-01",
				JCIndex:      3.5,
				TotalLesions: 5,
				NewLesions:   1,
			},
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			Name:   "1件のみのサマリ",
			Method: http.MethodGet,
			Path:   fmt.Sprintf("/1/patients/%s/summary", patientId),
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				res := F.FromJsonResponse(t, rec, &model.PatientSummary{}).(*model.PatientSummary)

				assert.EqualValues(t, 1, res.Measurements)
				if assert.NotNil(t, res.Latest) {
					assert.Equal(t, 3.5, res.Latest.JCIndex)
					assert.Equal(t, C.RiskMedium, res.Latest.RiskLevel)
				}
				assert.Nil(t, res.IndexDelta)
				assert.Equal(t, "yellow", res.RiskColor)
			},
		},
		{
			// 直前のサマリ取得でキャッシュされた内容が、登録により破棄されることの確認。
			Name:   "2件目を登録",
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/1/patients/%s/measurements", patientId),
			Body: &saveMeasurementRequest{
				ScanDate:     "2024-02-01",
				JCIndex:      4.2,
				TotalLesions: 7,
				NewLesions:   2,
			},
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			Name:   "直前の計測との差分付きサマリ",
			Method: http.MethodGet,
			Path:   fmt.Sprintf("/1/patients/%s/summary", patientId),
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				res := F.FromJsonResponse(t, rec, &model.PatientSummary{}).(*model.PatientSummary)

				assert.EqualValues(t, 2, res.Measurements)
				if assert.NotNil(t, res.Latest) {
					assert.Equal(t, 4.2, res.Latest.JCIndex)
					assert.Equal(t, C.RiskHigh, res.Latest.RiskLevel)
					assert.Equal(t, 7, res.Latest.TotalLesions)
				}
				if assert.NotNil(t, res.IndexDelta) {
					assert.InDelta(t, 0.7, *res.IndexDelta, 1e-9)
				}
				assert.Equal(t, 2, res.LesionDelta)
				assert.Equal(t, "red", res.RiskColor)
			},
		},
	}

	httpTests.Run(t, handler)
}

func TestDashboardSummary_Chart(t *testing.T) {
	handler := newTestHandler()

	patientId := F.NewPatientId()

	httpTests := test.HttpTests{
		{
			Name:   "登録",
			Method: http.MethodPost,
			Path:   fmt.Sprintf("/1/patients/%s/measurements", patientId),
			Body: &saveMeasurementRequest{
				ScanDate:     "2024-01-01",
				JCIndex:      3.5,
				TotalLesions: 5,
				NewLesions:   1,
			},
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			Name:   "チャートデータ",
			Method: http.MethodGet,
			Path:   fmt.Sprintf("/1/patients/%s/chart", patientId),
			Check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				res := F.FromJsonResponse(t, rec, &model.ChartSeries{}).(*model.ChartSeries)

				assert.Equal(t, patientId, res.PatientId)
				assert.Equal(t, 0.0, res.AxisMin)
				assert.Equal(t, 8.0, res.AxisMax)

				if assert.EqualValues(t, 1, len(res.Points)) {
					assert.Equal(t, 3.5, res.Points[0].JCIndex)
				}

				if assert.EqualValues(t, 2, len(res.Thresholds)) {
					assert.Equal(t, 3.5, res.Thresholds[0].Value)
					assert.Equal(t, "yellow", res.Thresholds[0].Color)
					assert.Equal(t, 4.0, res.Thresholds[1].Value)
					assert.Equal(t, "red", res.Thresholds[1].Color)
				}
			},
		},
	}

	httpTests.Run(t, handler)
}
