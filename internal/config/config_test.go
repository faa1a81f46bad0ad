package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"LAYOUTGEN_DB", "LAYOUTGEN_PROVIDER", "LAYOUTGEN_MODEL", "LAYOUTGEN_API_KEY", "LAYOUTGEN_WORKSPACE", "LAYOUTGEN_WEBSITE"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/tester")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.layoutgen/layoutgen.db", cfg.Database)
	assert.Equal(t, "default", cfg.WorkspaceID)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 0.4, cfg.LLM.Temperature)
	assert.Equal(t, 4096, cfg.LLM.MaxTokens)
	assert.True(t, cfg.LLMEnabled())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "layoutgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
database: /tmp/site.db
workspace_id: acme
brand_id: acme-brand
llm:
  provider: OpenAI
  model: gpt-4o-mini
  max_tokens: 2048
`), 0o644))
	t.Setenv("LAYOUTGEN_WEBSITE", "acme-site")
	t.Setenv("LAYOUTGEN_API_KEY", "sk-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/site.db", cfg.Database)
	assert.Equal(t, "acme", cfg.WorkspaceID)
	assert.Equal(t, "acme-site", cfg.WebsiteID)
	assert.Equal(t, "acme-brand", cfg.BrandID)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "sk-env", cfg.LLM.APIKey)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, 0.4, cfg.LLM.Temperature)
}

func TestLoadConfig_ProviderNone(t *testing.T) {
	clearEnv(t)
	t.Setenv("LAYOUTGEN_PROVIDER", "none")
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.False(t, cfg.LLMEnabled())
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unclosed"), 0o644))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
