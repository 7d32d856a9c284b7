package generator

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Agent 负责构建提示词、调用模型并解析结果。
// It holds no per-call state; concurrent calls are independent.
type Agent struct {
	llm       LLMClient
	templates string
	log       *zap.Logger
}

// NewAgent wires an agent. templates is the reference syntax blob embedded in
// every generation prompt. A nil logger disables logging.
func NewAgent(llm LLMClient, templates string, log *zap.Logger) (*Agent, error) {
	if llm == nil {
		return nil, ErrLLMRequired
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Agent{llm: llm, templates: templates, log: log}, nil
}

// Generate produces a new diagram. Every failure is logged and returned.
func (a *Agent) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	uml, err := a.generate(ctx, req)
	if err != nil {
		a.log.Error("error generating UML",
			zap.String("diagram_type", req.DiagramType),
			zap.Error(err))
		return "", err
	}
	return uml, nil
}

func (a *Agent) generate(ctx context.Context, req GenerationRequest) (string, error) {
	if strings.TrimSpace(req.Description) == "" {
		return "", ErrEmptyDescription
	}

	prompt := BuildGeneratePrompt(req, a.templates)
	a.log.Debug("sending generation prompt", zap.Int("prompt_bytes", len(prompt.User)))

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("completion: %w", err)
	}
	a.log.Debug("generation response", zap.String("response", raw))

	uml := ExtractGeneratedUML(raw)
	if err := ValidateGeneratedUML(uml); err != nil {
		return "", err
	}
	return uml, nil
}

// Revise answers a question about, or applies a change to, an existing
// diagram. On any failure it logs and returns nil; it never returns an error.
func (a *Agent) Revise(ctx context.Context, req RevisionRequest) *Revision {
	prompt := BuildRevisionPrompt(req)
	a.log.Debug("sending revision prompt", zap.Int("prompt_bytes", len(prompt.User)))

	raw, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		a.log.Error("error improving UML",
			zap.String("diagram_type", req.DiagramType),
			zap.Error(err))
		return nil
	}
	a.log.Debug("revision response", zap.String("response", raw))

	rev := ParseRevision(raw)
	return &rev
}
