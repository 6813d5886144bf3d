package constant

// リスクレベル。
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// リスク判定の閾値。閾値ちょうどの値は高い方のレベルに含まれる。
const (
	RiskThresholdMedium float64 = 3.5
	RiskThresholdHigh   float64 = 4.0
)

var riskColors = map[RiskLevel]string{
	RiskLow:    "green",
	RiskMedium: "yellow",
	RiskHigh:   "red",
}

// JCインデックスからリスクレベルを求める。
// 全ての実数に対して定義され、副作用を持たない。
func ClassifyRisk(jcIndex float64) RiskLevel {
	switch {
	case jcIndex >= RiskThresholdHigh:
		return RiskHigh
	case jcIndex >= RiskThresholdMedium:
		return RiskMedium
	default:
		return RiskLow
	}
}

// リスクレベルに対応するバッジ色を取得する。
func RiskColor(level RiskLevel) string {
	if c, ok := riskColors[level]; ok {
		return c
	}
	return "gray"
}
