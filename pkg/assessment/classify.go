package assessment

// RiskLevel is a discrete classification of the overall risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// ClassifyRisk maps a score to a risk level. Bands are half-open with the
// lower bound inclusive: exactly 20 is MEDIUM, exactly 50 is HIGH, exactly
// 80 is CRITICAL. These thresholds are fixed for compatibility with
// historical reports.
func ClassifyRisk(score float64) RiskLevel {
	switch {
	case score < 20:
		return RiskLow
	case score < 50:
		return RiskMedium
	case score < 80:
		return RiskHigh
	default:
		return RiskCritical
	}
}
