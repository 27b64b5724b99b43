package modules

import (
	"context"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// PolicyAnalyzer simulates an analysis of organizational security policies.
type PolicyAnalyzer struct{}

func (p *PolicyAnalyzer) Name() string {
	return assessment.ModulePolicyAnalyzer
}

func (p *PolicyAnalyzer) Description() string {
	return "Reviews security policies for gaps against current best practice."
}

func (p *PolicyAnalyzer) Run(ctx context.Context) (*assessment.ModuleResult, error) {
	return &assessment.ModuleResult{
		Status:    assessment.StatusCompleted,
		RiskScore: assessment.Score(45),
		Details: map[string]interface{}{
			"policy_gaps": []map[string]string{
				{"policy": "Password Policy", "status": "outdated", "recommendation": "Implement MFA"},
				{"policy": "Data Retention", "status": "missing", "recommendation": "Create data retention policy"},
			},
		},
	}, nil
}
