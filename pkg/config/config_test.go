package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Organization != "Default Organization" {
		t.Errorf("Expected default organization, got %q", cfg.Organization)
	}
	if cfg.ReportPath != "./reports" {
		t.Errorf("Expected default report path, got %q", cfg.ReportPath)
	}
}

func TestLoadConfigMalformedFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("organization: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Error("Expected a parse error diagnostic")
	}
	if cfg == nil || cfg.Organization != "Default Organization" {
		t.Errorf("Expected usable defaults on parse failure, got %+v", cfg)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "organization: Acme Corp\nreport_path: /tmp/acme-reports\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Organization != "Acme Corp" {
		t.Errorf("Expected override, got %q", cfg.Organization)
	}
	if cfg.ReportPath != "/tmp/acme-reports" {
		t.Errorf("Expected override, got %q", cfg.ReportPath)
	}
	// Unset fields keep their defaults.
	if cfg.LogLevel != "INFO" {
		t.Errorf("Expected default log level, got %q", cfg.LogLevel)
	}
	if cfg.ScanFrequency != "daily" {
		t.Errorf("Expected default scan frequency, got %q", cfg.ScanFrequency)
	}
}

func TestAPIKeyRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetAPIKey("gemini", "test-key")
	if got := cfg.GetAPIKey("gemini"); got != "test-key" {
		t.Errorf("Expected stored key, got %q", got)
	}
	if got := cfg.GetAPIKey("openai"); got != "" {
		t.Errorf("Expected empty key for unset provider, got %q", got)
	}
}
