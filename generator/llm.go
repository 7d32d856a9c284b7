package generator

import (
	"context"
	"fmt"
)

// LLMClient 抽象大模型客户端，便于替换/Mock。
// Complete sends exactly one user message and returns the reply text.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderMock      = "mock"
)

// DefaultModel is the model used when the provider is openai and none is configured.
const DefaultModel = "gpt-4o"

// LLMSettings 提供给具体实现的基础配置。
type LLMSettings struct {
	Provider  string
	Model     string
	APIKey    string
	BaseURL   string
	MaxTokens int
}

// NewLLM builds the client for cfg.Provider.
func NewLLM(ctx context.Context, cfg *LLMSettings) (LLMClient, error) {
	if cfg == nil || cfg.Provider == "" {
		return nil, fmt.Errorf("llm provider missing; please set llm.provider in config")
	}
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAILLMFromConfig(cfg)
	case ProviderAnthropic:
		return NewAnthropicLLMFromConfig(cfg)
	case ProviderGemini:
		return NewGeminiLLMFromConfig(ctx, cfg)
	case ProviderMock:
		return MockLLM{}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
