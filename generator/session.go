package generator

import (
	"context"
	"sync"
	"time"
)

// Session 持有一次描述的当前图与修订历史。
// The model never sees the history: each revision re-sends the full current
// diagram and the original story. Model calls on one session run one at a
// time, so each revision starts from the previous one's diagram.
type Session struct {
	ID          string
	Story       string
	DiagramType string

	// turn serializes Propose and Revise; mu guards the fields below it.
	turn    sync.Mutex
	mu      sync.Mutex
	uml     string
	history []Turn
	agent   *Agent
}

// NewSession 创建 session，尚未生成图。
func NewSession(id, story, diagramType string, agent *Agent) *Session {
	return &Session{
		ID:          id,
		Story:       story,
		DiagramType: diagramType,
		agent:       agent,
	}
}

// Propose generates the first diagram from the story.
func (s *Session) Propose(ctx context.Context) (string, error) {
	s.turn.Lock()
	defer s.turn.Unlock()

	uml, err := s.agent.Generate(ctx, GenerationRequest{
		Description: s.Story,
		DiagramType: s.DiagramType,
	})
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.uml = uml
	s.appendTurn("", "", uml, true)
	return uml, nil
}

// Revise applies one user message. The current diagram is kept when the reply
// carries no diagram.
func (s *Session) Revise(ctx context.Context, message string) (*Revision, error) {
	s.turn.Lock()
	defer s.turn.Unlock()

	s.mu.Lock()
	current := s.uml
	s.mu.Unlock()

	rev := s.agent.Revise(ctx, RevisionRequest{
		CurrentUML:    current,
		UserMessage:   message,
		DiagramType:   s.DiagramType,
		OriginalStory: s.Story,
	})
	if rev == nil {
		return nil, ErrRevisionFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if rev.HasUML() {
		s.uml = *rev.UML
	}
	s.appendTurn(message, rev.RawText, s.uml, rev.HasUML())
	return rev, nil
}

// Snapshot returns the current diagram and a copy of the history.
func (s *Session) Snapshot() (string, []Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]Turn, len(s.history))
	copy(history, s.history)
	return s.uml, history
}

func (s *Session) appendTurn(message, explanation, uml string, changed bool) {
	s.history = append(s.history, Turn{
		Message:     message,
		Explanation: explanation,
		UML:         uml,
		Changed:     changed,
		CreatedAt:   time.Now(),
	})
}
