package dashboard

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Carehealth1/jcindex/config"
	app_middleware "github.com/Carehealth1/jcindex/route/middleware"
	"github.com/Carehealth1/jcindex/route/shared"
)

func init() {
	os.Setenv("SERVER_ENV", "test")
	config.SetupAll()
}

func newTestHandler() *echo.Echo {
	e := echo.New()

	e.HTTPErrorHandler = shared.APIErrorHandler

	e.Use(middleware.RequestID())
	e.Use(app_middleware.SessionLogger)
	e.Use(app_middleware.I18n)
	e.Use(app_middleware.Contextualize)

	RegisterAPI(e)

	return e
}
