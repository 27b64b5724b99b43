package modules

import (
	"context"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// IncidentResponder simulates an incident response capability assessment.
type IncidentResponder struct{}

func (i *IncidentResponder) Name() string {
	return assessment.ModuleIncidentResponse
}

func (i *IncidentResponder) Description() string {
	return "Evaluates incident response readiness, tooling, and response times."
}

func (i *IncidentResponder) Run(ctx context.Context) (*assessment.ModuleResult, error) {
	return &assessment.ModuleResult{
		Status: assessment.StatusCompleted,
		Details: map[string]interface{}{
			"average_response_time": "45 minutes",
			"automation_level":      "medium",
			"recommendations":       []string{"Implement SOAR platform", "Update playbooks"},
		},
	}, nil
}
