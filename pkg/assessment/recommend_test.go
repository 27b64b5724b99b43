package assessment

import "testing"

func TestBuildRecommendationsExtractsCriticalAndHigh(t *testing.T) {
	results := map[string]*ModuleResult{
		ModuleVulnerabilityScanner: {
			Status: StatusCompleted,
			Findings: []Finding{
				{Name: "SQL Injection", Severity: SeverityHigh, Remediation: "Update database middleware"},
				{Name: "Outdated SSL Certificate", Severity: SeverityMedium, Remediation: "Renew SSL certificates"},
				{Name: "Remote Code Execution", Severity: SeverityCritical, Remediation: "Apply vendor patch"},
				{Name: "Verbose Banner", Severity: SeverityLow},
			},
		},
	}

	recs := BuildRecommendations(results)
	if len(recs) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recs))
	}

	// Equal priority keeps scan order: SQL Injection was seen first.
	if recs[0].Finding != "SQL Injection" || recs[1].Finding != "Remote Code Execution" {
		t.Errorf("Unexpected order: %q then %q", recs[0].Finding, recs[1].Finding)
	}
	for _, r := range recs {
		if r.Priority != PriorityHigh {
			t.Errorf("Expected high priority, got %s", r.Priority)
		}
		if r.Module != ModuleVulnerabilityScanner {
			t.Errorf("Expected source module %s, got %s", ModuleVulnerabilityScanner, r.Module)
		}
	}
}

func TestBuildRecommendationsFallbackTexts(t *testing.T) {
	results := map[string]*ModuleResult{
		ModuleVulnerabilityScanner: {
			Status:   StatusCompleted,
			Findings: []Finding{{Severity: SeverityHigh}},
		},
	}

	recs := BuildRecommendations(results)
	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].Finding != "Unknown vulnerability" {
		t.Errorf("Expected fallback finding text, got %q", recs[0].Finding)
	}
	if recs[0].Action != "Patch system immediately" {
		t.Errorf("Expected fallback action text, got %q", recs[0].Action)
	}
}

func TestBuildRecommendationsEmptyForMissingScanner(t *testing.T) {
	results := map[string]*ModuleResult{
		ModuleThreatMonitor: {Status: StatusCompleted},
	}
	if recs := BuildRecommendations(results); len(recs) != 0 {
		t.Errorf("Expected no recommendations, got %d", len(recs))
	}
}

func TestRecommendationSortIsStableByPriority(t *testing.T) {
	recs := []Recommendation{
		{Priority: PriorityMedium, Finding: "m1"},
		{Priority: PriorityHigh, Finding: "h1"},
		{Priority: "unknown", Finding: "u1"},
		{Priority: PriorityLow, Finding: "l1"},
		{Priority: PriorityHigh, Finding: "h2"},
		{Priority: PriorityMedium, Finding: "m2"},
	}

	sortRecommendations(recs)

	wantOrder := []string{"h1", "h2", "m1", "m2", "l1", "u1"}
	for i, want := range wantOrder {
		if recs[i].Finding != want {
			t.Fatalf("Position %d: expected %s, got %s", i, want, recs[i].Finding)
		}
	}

	// No medium recommendation may precede a high one.
	seenMedium := false
	for _, r := range recs {
		if r.Priority == PriorityMedium {
			seenMedium = true
		}
		if r.Priority == PriorityHigh && seenMedium {
			t.Error("High priority recommendation appeared after a medium one")
		}
	}
}
