// Package config loads layoutgen settings from YAML, .env and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database    string `yaml:"database"`
	WorkspaceID string `yaml:"workspace_id"`
	WebsiteID   string `yaml:"website_id"`
	BrandID     string `yaml:"brand_id"`
	LLM         struct {
		Provider    string  `yaml:"provider"` // claude, openai or none
		Model       string  `yaml:"model"`
		APIKey      string  `yaml:"api_key"`
		BaseURL     string  `yaml:"base_url"`
		Temperature float64 `yaml:"temperature"`
		MaxTokens   int     `yaml:"max_tokens"`
	} `yaml:"llm"`
}

// Default returns the settings used when no file overrides them.
func Default() *Config {
	cfg := &Config{
		Database:    "~/.layoutgen/layoutgen.db",
		WorkspaceID: "default",
		WebsiteID:   "default",
	}
	cfg.LLM.Provider = "claude"
	cfg.LLM.Temperature = 0.4
	cfg.LLM.MaxTokens = 4096
	return cfg
}

// LoadConfig reads path on top of the defaults. A missing file is not an
// error; an unreadable or invalid one is.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(file, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// 3. Override with environment variables if present
	overrides := []struct {
		env string
		dst *string
	}{
		{"LAYOUTGEN_DB", &cfg.Database},
		{"LAYOUTGEN_PROVIDER", &cfg.LLM.Provider},
		{"LAYOUTGEN_MODEL", &cfg.LLM.Model},
		{"LAYOUTGEN_API_KEY", &cfg.LLM.APIKey},
		{"LAYOUTGEN_WORKSPACE", &cfg.WorkspaceID},
		{"LAYOUTGEN_WEBSITE", &cfg.WebsiteID},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.dst = v
		}
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	cfg.Database = expandHome(cfg.Database)
	return cfg, nil
}

// LLMEnabled reports whether a provider should be constructed.
func (c *Config) LLMEnabled() bool {
	return c.LLM.Provider != "" && c.LLM.Provider != "none"
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
