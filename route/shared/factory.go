package shared

import (
	"reflect"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/Carehealth1/jcindex/lib"
	"github.com/Carehealth1/jcindex/model"
	S "github.com/Carehealth1/jcindex/service"
)

var storeType = reflect.TypeOf((*model.MeasurementStore)(nil)).Elem()

// CreateService サービス構造体を生成し、設定済みストアやロガー等の
// 依存をフィールド型に応じて注入する。
func CreateService(obj interface{}, c echo.Context) interface{} {
	t := reflect.TypeOf(obj)

	v := reflect.New(t)
	e := v.Elem()

	for i := 0; i < e.NumField(); i++ {
		valueField := e.Field(i)
		typeField := t.Field(i)
		valueType := typeField.Type

		if valueType.Kind() == reflect.Ptr {
			valueType = valueType.Elem()
		}
		if typeField.Type == storeType {
			valueField.Set(reflect.ValueOf(
				lib.GetStore(),
			))
		} else if valueType == reflect.TypeOf(lib.Localizer{}) {
			localizer := c.Get(ContextI18NLangKey).(*lib.Localizer)
			valueField.Set(reflect.ValueOf(localizer))
		} else if valueType == reflect.TypeOf(S.Service{}) {
			_logger := c.Get(ContextSessionLoggerKey)
			if _logger != nil {
				logger := _logger.(*logrus.Entry)
				_service := &S.Service{
					Log: logger,
				}
				valueField.Set(reflect.ValueOf(
					_service,
				))
			}
		}
	}

	return v.Interface()
}
