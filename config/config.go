package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Repo     RepoConfig   `json:"repo"`
	Output   OutputConfig `json:"output"`
	Assets   AssetConfig  `json:"assets"`
	Template string       `json:"template"` // header template path
	Filters  FilterConfig `json:"filters"`
}

// RepoConfig holds version-control query options.
type RepoConfig struct {
	Path   string `json:"path"`   // Default: "."
	Branch string `json:"branch"` // Default: "" (HEAD)
	Engine string `json:"engine"` // "gogit" or "cli"
}

// OutputConfig holds report output options.
type OutputConfig struct {
	Dir string `json:"dir"` // Default: "worklogs"
}

// AssetConfig holds asset scanning options.
type AssetConfig struct {
	Root    string   `json:"root"` // Default: "assets"
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// FilterConfig holds commit file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Repo: RepoConfig{
			Path:   ".",
			Engine: "gogit",
		},
		Output: OutputConfig{
			Dir: "worklogs",
		},
		Assets: AssetConfig{
			Root:    "assets",
			Include: []string{},
			Exclude: []string{},
		},
		Template: "WORKLOG-TEMPLATE.md",
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitworklog.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitworklog.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
