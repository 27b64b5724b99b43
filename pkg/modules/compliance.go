package modules

import (
	"context"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// ComplianceAuditor simulates an audit against regulatory frameworks.
type ComplianceAuditor struct{}

func (c *ComplianceAuditor) Name() string {
	return assessment.ModuleComplianceAuditor
}

func (c *ComplianceAuditor) Description() string {
	return "Audits the environment against compliance frameworks (GDPR, ISO 27001)."
}

func (c *ComplianceAuditor) Run(ctx context.Context) (*assessment.ModuleResult, error) {
	return &assessment.ModuleResult{
		Status:    assessment.StatusCompleted,
		RiskScore: assessment.Score(30),
		Details: map[string]interface{}{
			"frameworks": []map[string]interface{}{
				{"name": "GDPR", "compliance_score": "75%", "gaps": []string{"Data inventory incomplete"}},
				{"name": "ISO 27001", "compliance_score": "82%", "gaps": []string{"Missing incident response procedures"}},
			},
		},
	}, nil
}
