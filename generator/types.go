package generator

import "time"

// GenerationRequest describes a fresh diagram to generate.
type GenerationRequest struct {
	Description string
	DiagramType string
}

// RevisionRequest 描述一次针对现有图的提问或修改。每次调用都需带上完整的当前图和原始描述。
type RevisionRequest struct {
	CurrentUML    string
	UserMessage   string
	DiagramType   string
	OriginalStory string
}

// Revision is the parsed outcome of a revision call.
// UML is nil when the model returned no diagram block.
type Revision struct {
	UML     *string `json:"uml"`
	RawText string  `json:"rawText"`
}

// HasUML reports whether the revision carries an updated diagram.
func (r Revision) HasUML() bool {
	return r.UML != nil
}

// Turn 记录会话中的一次生成或修订。
type Turn struct {
	Message     string    `json:"message"`
	Explanation string    `json:"explanation"`
	UML         string    `json:"uml"`
	Changed     bool      `json:"changed"`
	CreatedAt   time.Time `json:"createdAt"`
}
