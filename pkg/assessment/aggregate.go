package assessment

// DefaultRiskScore is returned when no weighted module contributed a score.
// Unknown risk is treated as moderate rather than absent.
const DefaultRiskScore = 50.0

// riskWeights lists the modules that count toward the overall score. Modules
// outside this table never contribute, even if they report a risk score.
var riskWeights = map[string]float64{
	ModuleVulnerabilityScanner: 0.30,
	ModulePolicyAnalyzer:       0.20,
	ModuleAttackSimulator:      0.25,
	ModuleComplianceAuditor:    0.25,
}

// CalculateRiskScore computes the weighted overall risk score from the
// results of one assessment run. Only completed results from weighted
// modules with a risk score are counted. It is a pure function of results.
func CalculateRiskScore(results map[string]*ModuleResult) float64 {
	contributed := false
	total := 0.0

	for name, weight := range riskWeights {
		result, ok := results[name]
		if !ok || result == nil {
			continue
		}
		if result.Status != StatusCompleted || result.RiskScore == nil {
			continue
		}
		total += *result.RiskScore * weight
		contributed = true
	}

	if !contributed {
		return DefaultRiskScore
	}
	return total
}
