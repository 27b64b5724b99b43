package assessment

import "sort"

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Fallback texts used when a finding omits a name or remediation.
const (
	unknownVulnerability = "Unknown vulnerability"
	defaultRemediation   = "Patch system immediately"
)

// Recommendation is one prioritized action derived from a module finding.
// Duplicates are permitted; recommendations carry no identity beyond their
// fields.
type Recommendation struct {
	Priority string `json:"priority"`
	Module   string `json:"module"`
	Finding  string `json:"finding"`
	Action   string `json:"action"`
}

// priorityRank orders recommendations high -> medium -> low. Unrecognized
// priorities sort last.
func priorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// BuildRecommendations scans module results for actionable findings and
// returns them ordered by priority. Ties keep the order findings were
// scanned in. Today only the vulnerability scanner feeds the list; further
// extraction rules (policy gaps, attack vectors, compliance gaps) plug into
// the same scan-then-sort pipeline.
func BuildRecommendations(results map[string]*ModuleResult) []Recommendation {
	recommendations := extractVulnerabilityActions(results[ModuleVulnerabilityScanner])
	sortRecommendations(recommendations)
	return recommendations
}

// sortRecommendations orders by priority rank, keeping insertion order for
// equal priorities.
func sortRecommendations(recommendations []Recommendation) {
	sort.SliceStable(recommendations, func(i, j int) bool {
		return priorityRank(recommendations[i].Priority) < priorityRank(recommendations[j].Priority)
	})
}

// extractVulnerabilityActions emits one high-priority recommendation per
// critical or high severity vulnerability finding.
func extractVulnerabilityActions(result *ModuleResult) []Recommendation {
	if result == nil {
		return nil
	}

	var recommendations []Recommendation
	for _, f := range result.Findings {
		if f.Severity != SeverityCritical && f.Severity != SeverityHigh {
			continue
		}

		finding := f.Name
		if finding == "" {
			finding = unknownVulnerability
		}
		action := f.Remediation
		if action == "" {
			action = defaultRemediation
		}

		recommendations = append(recommendations, Recommendation{
			Priority: PriorityHigh,
			Module:   ModuleVulnerabilityScanner,
			Finding:  finding,
			Action:   action,
		})
	}
	return recommendations
}
