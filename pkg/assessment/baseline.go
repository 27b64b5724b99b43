package assessment

// ReportDiff describes how a current report moved relative to a baseline.
type ReportDiff struct {
	ScoreDelta    float64          `json:"score_delta"`
	BaselineLevel RiskLevel        `json:"baseline_level"`
	CurrentLevel  RiskLevel        `json:"current_level"`
	New           []Recommendation `json:"new"`
	Resolved      []Recommendation `json:"resolved"`
	Unchanged     []Recommendation `json:"unchanged"`
}

// LevelChanged reports whether the risk level moved between runs.
func (d *ReportDiff) LevelChanged() bool {
	return d.BaselineLevel != d.CurrentLevel
}

// CompareReports diffs a current report against a baseline: the risk score
// delta, the level transition, and which recommendations are new, resolved,
// or unchanged. Recommendations are matched on all fields; order within each
// bucket follows the current (or baseline, for Resolved) report.
func CompareReports(current, baseline *AssessmentReport) *ReportDiff {
	diff := &ReportDiff{
		ScoreDelta:    current.RiskScore - baseline.RiskScore,
		BaselineLevel: baseline.RiskLevel,
		CurrentLevel:  current.RiskLevel,
	}

	baselineSet := make(map[Recommendation]int, len(baseline.Recommendations))
	for _, r := range baseline.Recommendations {
		baselineSet[r]++
	}

	for _, r := range current.Recommendations {
		if baselineSet[r] > 0 {
			baselineSet[r]--
			diff.Unchanged = append(diff.Unchanged, r)
		} else {
			diff.New = append(diff.New, r)
		}
	}

	for _, r := range baseline.Recommendations {
		if baselineSet[r] > 0 {
			baselineSet[r]--
			diff.Resolved = append(diff.Resolved, r)
		}
	}

	return diff
}
