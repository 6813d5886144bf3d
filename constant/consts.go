package constant

// Language 言語。
type Language string

const (
	LanguageJa Language = "ja" // 日本語。
	LanguageEn Language = "en" // 英語。
)

// ストアバックエンド種別。
type StoreBackend string

const (
	StoreBackendMemory   StoreBackend = "memory"
	StoreBackendDatabase StoreBackend = "database"
)

// トレンドチャート関連。Y軸は固定レンジで、閾値の水平線を併せて表示する。
const (
	ChartAxisMin float64 = 0.0
	ChartAxisMax float64 = 8.0
)

// CSVエクスポートのファイル名プレフィックス。
const ExportFilePrefix string = "jc_index_data_"
