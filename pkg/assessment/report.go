package assessment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AssessmentReport is the terminal artifact of one run. It is built once
// from the collected module results and never mutated afterwards.
type AssessmentReport struct {
	Organization    string                   `json:"organization"`
	Timestamp       time.Time                `json:"timestamp"`
	RiskScore       float64                  `json:"risk_score"`
	RiskLevel       RiskLevel                `json:"risk_level"`
	ModuleResults   map[string]*ModuleResult `json:"module_results"`
	Recommendations []Recommendation         `json:"recommendations"`
}

// BuildReport assembles the final report from one run's module results:
// aggregate score, risk level, and the prioritized recommendation list.
func BuildReport(organization string, results map[string]*ModuleResult) *AssessmentReport {
	score := CalculateRiskScore(results)
	return &AssessmentReport{
		Organization:    organization,
		Timestamp:       time.Now(),
		RiskScore:       score,
		RiskLevel:       ClassifyRisk(score),
		ModuleResults:   results,
		Recommendations: BuildRecommendations(results),
	}
}

// SaveReport serializes the report as indented JSON into dir under a
// timestamped filename and returns the full path. Write failures propagate
// to the caller.
func SaveReport(report *AssessmentReport, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}

	stamp := report.Timestamp.Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("security_assessment_%s.json", stamp))

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

// LoadReport reads a previously saved report back from disk.
func LoadReport(path string) (*AssessmentReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var report AssessmentReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parsing report %s: %w", path, err)
	}
	return &report, nil
}
