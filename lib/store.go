package lib

import (
	C "github.com/Carehealth1/jcindex/constant"
	"github.com/Carehealth1/jcindex/model"
)

var store model.MeasurementStore

// SetupStore 設定済みストアを登録し、バックエンドを初期化する。
// 初期化は冪等であり、既存データは破棄されない。
func SetupStore(s model.MeasurementStore) error {
	if store != nil {
		return nil
	}

	if err := s.Init(); err != nil {
		return C.STORE_UNAVAILABLE_ERROR(err)
	}

	store = s

	return nil
}

func GetStore() model.MeasurementStore {
	return store
}
