package assessment

import "testing"

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{19.99, RiskLow},
		{20, RiskMedium}, // lower bounds are inclusive
		{42, RiskMedium},
		{49.99, RiskMedium},
		{50, RiskHigh},
		{79.99, RiskHigh},
		{80, RiskCritical},
		{100, RiskCritical},
		{150, RiskCritical}, // no upper bound is enforced
	}

	for _, tt := range tests {
		if got := ClassifyRisk(tt.score); got != tt.want {
			t.Errorf("ClassifyRisk(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
