package modules

import (
	"context"
	"time"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// VulnerabilityScanner simulates a vulnerability scan. The payload is fixed
// demo data; wiring a real scanner behind this interface is the intended
// upgrade path.
type VulnerabilityScanner struct{}

func (v *VulnerabilityScanner) Name() string {
	return assessment.ModuleVulnerabilityScanner
}

func (v *VulnerabilityScanner) Description() string {
	return "Scans infrastructure for known vulnerabilities and misconfigurations."
}

func (v *VulnerabilityScanner) Run(ctx context.Context) (*assessment.ModuleResult, error) {
	return &assessment.ModuleResult{
		Status:    assessment.StatusCompleted,
		RiskScore: assessment.Score(35),
		Findings: []assessment.Finding{
			{
				ID:          "CVE-2023-1234",
				Name:        "SQL Injection Vulnerability",
				Severity:    assessment.SeverityHigh,
				Affected:    []string{"web-server-01"},
				Remediation: "Update database middleware",
			},
			{
				ID:          "CVE-2023-5678",
				Name:        "Outdated SSL Certificate",
				Severity:    assessment.SeverityMedium,
				Affected:    []string{"mail-server"},
				Remediation: "Renew SSL certificates",
			},
		},
		Details: map[string]interface{}{
			"scan_time": time.Now().Format(time.RFC3339),
		},
	}, nil
}
