package cmd

import (
	"context"

	"plantuml_assistant/generator"
	"plantuml_assistant/logger"
	"plantuml_assistant/templates"
)

// buildAgent wires the completion client and reference templates from cfg.
func buildAgent(ctx context.Context) (*generator.Agent, templates.Set, error) {
	set, err := templates.Load(cfg.TemplatesPath)
	if err != nil {
		return nil, nil, err
	}
	blob, err := set.JSON()
	if err != nil {
		return nil, nil, err
	}

	llm, err := generator.NewLLM(ctx, &generator.LLMSettings{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		MaxTokens: cfg.LLM.MaxTokens,
	})
	if err != nil {
		return nil, nil, err
	}

	agent, err := generator.NewAgent(llm, blob, logger.L().Named("generator"))
	if err != nil {
		return nil, nil, err
	}
	return agent, set, nil
}
