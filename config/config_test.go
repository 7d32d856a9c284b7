package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
server:
  addr: ":9090"
  request_timeout: 30s
llm:
  provider: anthropic
  model: claude-sonnet-4-20250514
  max_tokens: 2048
templates_path: ./templates.yaml
log:
  level: debug
  json: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 2048, cfg.LLM.MaxTokens)
	assert.Equal(t, "ANTHROPIC_API_KEY", cfg.LLM.APIKeyEnv)
	assert.Equal(t, "ak-test", cfg.LLM.APIKey)
	assert.Equal(t, "./templates.yaml", cfg.TemplatesPath)
	assert.True(t, cfg.Log.JSON)
}

func TestLoad_CustomKeyEnv(t *testing.T) {
	t.Setenv("GATEWAY_KEY", "gw")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key_env: GATEWAY_KEY\n  base_url: http://localhost:4000/v1\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gw", cfg.LLM.APIKey)
	assert.Equal(t, "http://localhost:4000/v1", cfg.LLM.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultKeyEnv(t *testing.T) {
	assert.Equal(t, "OPENAI_API_KEY", DefaultKeyEnv("openai"))
	assert.Equal(t, "ANTHROPIC_API_KEY", DefaultKeyEnv("anthropic"))
	assert.Equal(t, "GEMINI_API_KEY", DefaultKeyEnv("gemini"))
	assert.Equal(t, "OPENAI_API_KEY", DefaultKeyEnv("mock"))
}
