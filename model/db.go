package model

import (
	"database/sql"

	"gopkg.in/gorp.v2"
)

// QueryExecutor gorp.DbMapとgorp.Transactionの共通インタフェース。
type QueryExecutor interface {
	Get(i interface{}, keys ...interface{}) (interface{}, error)
	Insert(list ...interface{}) error
	Update(list ...interface{}) (int64, error)
	Delete(list ...interface{}) (int64, error)
	Select(i interface{}, query string, args ...interface{}) ([]interface{}, error)
	SelectOne(holder interface{}, query string, args ...interface{}) error
	SelectInt(query string, args ...interface{}) (int64, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// SetupModels テーブルマッピングを登録する。measurementテーブルは主キーを持たない。
func SetupModels(dbmap *gorp.DbMap) {
	dbmap.AddTableWithName(Measurement{}, "measurement")
}
