package assessment

import "context"

// Registered module names. The aggregator's weight table and the
// recommendation extraction rules reference these exact strings, so renaming
// a module breaks both.
const (
	ModuleVulnerabilityScanner = "vulnerability_scanner"
	ModulePolicyAnalyzer       = "policy_analyzer"
	ModuleAttackSimulator      = "attack_simulator"
	ModuleComplianceAuditor    = "compliance_auditor"
	ModuleThreatMonitor        = "threat_monitor"
	ModuleIncidentResponse     = "incident_response"
	ModuleTrainingPlatform     = "training_platform"
)

// Status of a single module execution.
type Status string

const (
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
)

// Finding severities as reported by modules.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// Module represents one assessment capability (scanner, auditor, monitor).
// Implementations are stateless; every Run is an independent invocation.
type Module interface {
	Name() string
	Description() string
	Run(ctx context.Context) (*ModuleResult, error)
}

// Finding is a single issue discovered by a module.
type Finding struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Severity    string   `json:"severity,omitempty"`
	Description string   `json:"description,omitempty"`
	Remediation string   `json:"remediation,omitempty"`
	Affected    []string `json:"affected_systems,omitempty"`
}

// ModuleResult is the outcome of one module invocation. A module that
// contributes to the overall risk score sets RiskScore; monitoring and
// training modules legitimately leave it nil.
type ModuleResult struct {
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	RiskScore *float64               `json:"risk_score,omitempty"`
	Findings  []Finding              `json:"findings,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Score is a convenience for building a ModuleResult risk score in place.
func Score(v float64) *float64 {
	return &v
}
