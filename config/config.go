package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the binary reads at start-up.
type Config struct {
	Server        ServerConfig `yaml:"server"`
	LLM           LLMConfig    `yaml:"llm"`
	TemplatesPath string       `yaml:"templates_path"`
	Log           LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// LLMConfig selects the completion provider. The key itself never lives in
// the file: APIKeyEnv names the environment variable that holds it.
type LLMConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
	MaxTokens int    `yaml:"max_tokens"`

	APIKey string `yaml:"-"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			AllowedOrigins: []string{"http://localhost:3000"},
			RequestTimeout: 90 * time.Second,
		},
		LLM: LLMConfig{
			Provider: "openai",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultKeyEnv returns the conventional API key variable for a provider.
func DefaultKeyEnv(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC_API_KEY"
	case "gemini":
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// Load reads an optional .env file, then the YAML file at path on top of the
// defaults, then resolves the API key from the environment. A missing file is
// not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}
	if cfg.LLM.APIKeyEnv == "" {
		cfg.LLM.APIKeyEnv = DefaultKeyEnv(cfg.LLM.Provider)
	}
	cfg.LLM.APIKey = os.Getenv(cfg.LLM.APIKeyEnv)
	return cfg, nil
}
