package generator

import "errors"

var (
	ErrLLMRequired        = errors.New("llm client is required")
	ErrEmptyDescription   = errors.New("description is required")
	ErrEmptyChoices       = errors.New("model returned no choices")
	ErrNoClassDefinitions = errors.New("no class definitions found in the UML output")
	ErrRevisionFailed     = errors.New("revision failed")
)
