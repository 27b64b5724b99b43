package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

// Config holds the platform configuration. The assessment core only consumes
// Organization and ReportPath; the advisor section configures the optional
// AI summary layer.
type Config struct {
	Organization   string `yaml:"organization"`
	ScanFrequency  string `yaml:"scan_frequency"`
	AlertThreshold string `yaml:"alert_threshold"`
	ReportPath     string `yaml:"report_path"`
	LogLevel       string `yaml:"log_level"`

	SelectedProvider string                    `yaml:"selected_provider"`
	SelectedModel    string                    `yaml:"selected_model"`
	Providers        map[string]ProviderConfig `yaml:"providers"`
}

// DefaultConfig returns the configuration used when no file is present or
// the file cannot be read.
func DefaultConfig() *Config {
	return &Config{
		Organization:   "Default Organization",
		ScanFrequency:  "daily",
		AlertThreshold: "medium",
		ReportPath:     "./reports",
		LogLevel:       "INFO",
		Providers:      make(map[string]ProviderConfig),
	}
}

// GetConfigPath returns the user-level config file, creating the directory
// if needed.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".sentinel-aegis")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// LoadConfig reads configuration from path, or from the user-level config
// file when path is empty. A missing file yields the defaults silently; an
// unreadable or malformed file yields the defaults together with the error
// so the caller can surface a diagnostic without aborting.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return DefaultConfig(), err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to the user-level config file.
func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// 0600 permissions for security (api keys)
	return os.WriteFile(path, data, 0600)
}

func (c *Config) SetAPIKey(provider, key string) {
	p := c.Providers[provider]
	p.APIKey = key
	c.Providers[provider] = p
}

func (c *Config) GetAPIKey(provider string) string {
	return c.Providers[provider].APIKey
}
