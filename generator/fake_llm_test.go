package generator

import (
	"context"
	"fmt"
	"sync"
)

// fakeLLM records prompts and replays a fixed reply or error.
type fakeLLM struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []Prompt
}

func (f *fakeLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// seqLLM replies to call n with a fenced diagram holding "class C<n>".
type seqLLM struct {
	mu      sync.Mutex
	prompts []Prompt
}

func (f *seqLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return fmt.Sprintf("ok\n```plantuml\n@startuml\nclass C%d\n@enduml\n```", len(f.prompts)), nil
}
