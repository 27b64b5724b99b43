package advisor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(context.Background(), "llama-on-a-floppy", "key", ""); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestRenderReport(t *testing.T) {
	score := 35.0
	report := &assessment.AssessmentReport{
		Organization: "Acme Corp",
		Timestamp:    time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC),
		RiskScore:    42,
		RiskLevel:    assessment.RiskMedium,
		ModuleResults: map[string]*assessment.ModuleResult{
			assessment.ModuleVulnerabilityScanner: {
				Status:    assessment.StatusCompleted,
				RiskScore: &score,
				Findings: []assessment.Finding{
					{Name: "SQL Injection", Severity: assessment.SeverityHigh, Remediation: "Update database middleware"},
				},
			},
			assessment.ModulePolicyAnalyzer: {Status: assessment.StatusError, Message: "timeout"},
		},
		Recommendations: []assessment.Recommendation{
			{Priority: assessment.PriorityHigh, Module: assessment.ModuleVulnerabilityScanner, Finding: "SQL Injection", Action: "Update database middleware"},
		},
	}

	prompt := renderReport(report)

	for _, want := range []string{
		"Acme Corp",
		"42.0 (MEDIUM)",
		"vulnerability_scanner: completed, risk score 35.0",
		"policy_analyzer: error, message: timeout",
		"[high] SQL Injection",
		"Recommendations (1):",
		"(high) SQL Injection: Update database middleware",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}
