// Package dashboard lists, creates and deletes interview sessions.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/api"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// ValidationError is a client-side form failure; it blocks submission before
// any request is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CreateInput is the create-session form.
type CreateInput struct {
	Role          string
	Experience    string
	TopicsToFocus string
	Description   string
}

// Validate checks required fields, mirroring the create form's inline errors.
func (in *CreateInput) Validate() error {
	if strings.TrimSpace(in.Role) == "" {
		return &ValidationError{Field: "role", Message: "Target role is required"}
	}
	if strings.TrimSpace(in.Experience) == "" {
		return &ValidationError{Field: "experience", Message: "Years of experience is required"}
	}
	if strings.TrimSpace(in.TopicsToFocus) == "" {
		return &ValidationError{Field: "topicsToFocus", Message: "Topics to focus is required"}
	}
	return nil
}

// View drives the session dashboard.
type View struct {
	mu sync.Mutex

	gw           api.Gateway
	numQuestions int
	sessions     []domain.Session
}

// NewView creates a dashboard view.
func NewView(gw api.Gateway, numQuestions int) *View {
	return &View{gw: gw, numQuestions: numQuestions}
}

// Load fetches the session list. A failure keeps the previously loaded list.
func (v *View) Load(ctx context.Context) error {
	sessions, err := v.gw.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("fetch sessions: %w", err)
	}
	v.mu.Lock()
	v.sessions = sessions
	v.mu.Unlock()
	return nil
}

// Sessions returns the loaded list.
func (v *View) Sessions() []domain.Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Session, len(v.sessions))
	copy(out, v.sessions)
	return out
}

// Delete removes a session. The entry leaves the local list only after the
// server confirms the deletion.
func (v *View) Delete(ctx context.Context, sessionID string) error {
	if err := v.gw.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	v.mu.Lock()
	kept := v.sessions[:0]
	for _, s := range v.sessions {
		if s.ID != sessionID {
			kept = append(kept, s)
		}
	}
	v.sessions = kept
	v.mu.Unlock()
	return nil
}

// Create runs the two-step creation flow: generate an initial question set,
// then create the session from it. The returned session carries the id to
// navigate to.
func (v *View) Create(ctx context.Context, in CreateInput) (*domain.Session, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	questions, err := v.gw.GenerateQuestions(ctx, api.GenerateQuestionsRequest{
		Role:              strings.TrimSpace(in.Role),
		Experience:        strings.TrimSpace(in.Experience),
		TopicsToFocus:     strings.TrimSpace(in.TopicsToFocus),
		NumberOfQuestions: v.numQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	session, err := v.gw.CreateSession(ctx, api.CreateSessionRequest{
		Role:          strings.TrimSpace(in.Role),
		Experience:    strings.TrimSpace(in.Experience),
		TopicsToFocus: strings.TrimSpace(in.TopicsToFocus),
		Description:   strings.TrimSpace(in.Description),
		Questions:     questions,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}
