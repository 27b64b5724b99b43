package modules

import "github.com/user/sentinel-aegis/pkg/assessment"

// All returns the full module set in the fixed registration order used for
// complete assessments.
func All() []assessment.Module {
	return []assessment.Module{
		&VulnerabilityScanner{},
		&PolicyAnalyzer{},
		&AttackSimulator{},
		&ComplianceAuditor{},
		&ThreatMonitor{},
		&IncidentResponder{},
		&TrainingPlatform{},
	}
}
