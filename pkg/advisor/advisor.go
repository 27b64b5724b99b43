package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/sentinel-aegis/pkg/assessment"
)

// Advisor turns a finished assessment report into an executive summary by
// asking the configured AI model.
type Advisor struct {
	llm LLMProvider
}

// NewAdvisor creates an advisor backed by the given provider.
func NewAdvisor(llm LLMProvider) *Advisor {
	return &Advisor{llm: llm}
}

// Summarize sends the report to the model and returns its narrative
// summary and remediation plan.
func (a *Advisor) Summarize(ctx context.Context, report *assessment.AssessmentReport) (string, error) {
	history := []Message{
		{Role: "system", Content: GetSystemPrompt()},
		{Role: "user", Content: renderReport(report)},
	}
	return a.llm.GenerateResponse(ctx, history)
}

// renderReport flattens the report into prompt text: overall posture first,
// then per-module status and findings, then the recommendation list.
func renderReport(report *assessment.AssessmentReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Security assessment for %s (%s)\n", report.Organization, report.Timestamp.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("Overall risk score: %.1f (%s)\n\n", report.RiskScore, report.RiskLevel))

	sb.WriteString("Module results:\n")
	for name, result := range report.ModuleResults {
		sb.WriteString(fmt.Sprintf("- %s: %s", name, result.Status))
		if result.RiskScore != nil {
			sb.WriteString(fmt.Sprintf(", risk score %.1f", *result.RiskScore))
		}
		if result.Message != "" {
			sb.WriteString(fmt.Sprintf(", message: %s", result.Message))
		}
		sb.WriteString("\n")
		for _, f := range result.Findings {
			sb.WriteString(fmt.Sprintf("    [%s] %s - %s\n", f.Severity, f.Name, f.Remediation))
		}
	}

	sb.WriteString(fmt.Sprintf("\nRecommendations (%d):\n", len(report.Recommendations)))
	for _, r := range report.Recommendations {
		sb.WriteString(fmt.Sprintf("- (%s) %s: %s\n", r.Priority, r.Finding, r.Action))
	}
	return sb.String()
}
