package assessment

import (
	"math"
	"testing"
)

func completedWithScore(score float64) *ModuleResult {
	return &ModuleResult{Status: StatusCompleted, RiskScore: Score(score)}
}

func TestCalculateRiskScoreWeightedSum(t *testing.T) {
	results := map[string]*ModuleResult{
		ModuleVulnerabilityScanner: completedWithScore(35),
		ModulePolicyAnalyzer:       completedWithScore(45),
		ModuleAttackSimulator:      completedWithScore(60),
		ModuleComplianceAuditor:    completedWithScore(30),
	}

	// 35*0.3 + 45*0.2 + 60*0.25 + 30*0.25 = 42
	got := CalculateRiskScore(results)
	if math.Abs(got-42) > 1e-9 {
		t.Errorf("Expected aggregate 42, got %v", got)
	}
	if ClassifyRisk(got) != RiskMedium {
		t.Errorf("Expected MEDIUM for score %v, got %s", got, ClassifyRisk(got))
	}
}

func TestCalculateRiskScoreDefaultsWhenNothingContributes(t *testing.T) {
	cases := []struct {
		name    string
		results map[string]*ModuleResult
	}{
		{"empty results", map[string]*ModuleResult{}},
		{"only non-weighted module", map[string]*ModuleResult{
			ModuleThreatMonitor: {Status: StatusCompleted},
		}},
		{"non-weighted module with a score", map[string]*ModuleResult{
			ModuleThreatMonitor: completedWithScore(95),
		}},
		{"all weighted modules errored", map[string]*ModuleResult{
			ModuleVulnerabilityScanner: {Status: StatusError, Message: "scanner offline"},
			ModulePolicyAnalyzer:       {Status: StatusError, Message: "timeout"},
			ModuleAttackSimulator:      {Status: StatusError, Message: "timeout"},
			ModuleComplianceAuditor:    {Status: StatusError, Message: "timeout"},
		}},
		{"weighted module completed without score", map[string]*ModuleResult{
			ModuleVulnerabilityScanner: {Status: StatusCompleted},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateRiskScore(tc.results); got != DefaultRiskScore {
				t.Errorf("Expected default %v, got %v", DefaultRiskScore, got)
			}
		})
	}
}

func TestCalculateRiskScoreLinearPerModule(t *testing.T) {
	base := map[string]*ModuleResult{
		ModuleVulnerabilityScanner: completedWithScore(40),
		ModulePolicyAnalyzer:       completedWithScore(40),
		ModuleAttackSimulator:      completedWithScore(40),
		ModuleComplianceAuditor:    completedWithScore(40),
	}
	before := CalculateRiskScore(base)

	// Raising the vulnerability scan score by 10 must move the aggregate
	// by exactly 0.30 * 10 with everything else fixed.
	base[ModuleVulnerabilityScanner] = completedWithScore(50)
	after := CalculateRiskScore(base)

	if math.Abs((after-before)-3) > 1e-9 {
		t.Errorf("Expected delta 3.0, got %v", after-before)
	}
}

func TestCalculateRiskScoreIgnoresErroredAndForeignScores(t *testing.T) {
	results := map[string]*ModuleResult{
		ModuleVulnerabilityScanner: completedWithScore(35),
		// Errored weighted module with a score must not contribute.
		ModuleAttackSimulator: {Status: StatusError, RiskScore: Score(100)},
		// Non-weighted module with a score must not contribute either.
		ModuleTrainingPlatform: completedWithScore(100),
	}

	got := CalculateRiskScore(results)
	if math.Abs(got-10.5) > 1e-9 {
		t.Errorf("Expected 10.5 (vulnerability scan only), got %v", got)
	}
}
