package modules

import (
	"context"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// ThreatMonitor simulates a threat intelligence feed. It reports active
// threats but no risk score, so it never moves the aggregate.
type ThreatMonitor struct{}

func (t *ThreatMonitor) Name() string {
	return assessment.ModuleThreatMonitor
}

func (t *ThreatMonitor) Description() string {
	return "Monitors threat intelligence feeds for campaigns targeting the organization."
}

func (t *ThreatMonitor) Run(ctx context.Context) (*assessment.ModuleResult, error) {
	return &assessment.ModuleResult{
		Status: assessment.StatusCompleted,
		Details: map[string]interface{}{
			"active_threats": []map[string]string{
				{"name": "APT Group 123", "target_industry": "Finance", "likelihood": "medium"},
				{"name": "Ransomware Campaign", "target_industry": "All", "likelihood": "high"},
			},
		},
	}, nil
}
