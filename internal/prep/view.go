// Package prep is the interview preparation view: a session's Q&A list with
// pinning, notes, on-demand concept explanations and AI question growth.
package prep

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/api"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// Drawer is the slide-in explanation panel state. It is tracked independently
// of the question list so a failed explanation never blanks loaded questions.
type Drawer struct {
	Open        bool
	Loading     bool
	Err         string
	Explanation *domain.Explanation
}

// View drives one session's preparation screen.
type View struct {
	mu sync.Mutex

	gw           api.Gateway
	sessionID    string
	numQuestions int

	session *domain.Session
	drawer  Drawer

	// explanations are ephemeral view state; reopening the drawer for a
	// question already explained this run is served from here
	explanations *cache.Cache
}

// NewView creates a view for the given session.
func NewView(gw api.Gateway, sessionID string, numQuestions int) *View {
	return &View{
		gw:           gw,
		sessionID:    sessionID,
		numQuestions: numQuestions,
		explanations: cache.New(10*time.Minute, 15*time.Minute),
	}
}

// Load fetches the session. On failure any previously loaded session is kept.
func (v *View) Load(ctx context.Context) error {
	session, err := v.gw.GetSession(ctx, v.sessionID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	v.mu.Lock()
	v.session = session
	v.mu.Unlock()
	return nil
}

// Session returns the loaded session, or nil.
func (v *View) Session() *domain.Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session
}

// Questions returns the session's questions with pinned ones first.
func (v *View) Questions() []domain.Question {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.session == nil {
		return nil
	}
	return domain.SortPinnedFirst(v.session.Questions)
}

// TogglePin flips a question's pin flag and refetches the session.
func (v *View) TogglePin(ctx context.Context, questionID string) error {
	if err := v.gw.TogglePin(ctx, questionID); err != nil {
		return err
	}
	return v.Load(ctx)
}

// UpdateNote replaces a question's note and refetches the session.
func (v *View) UpdateNote(ctx context.Context, questionID, note string) error {
	if err := v.gw.UpdateNote(ctx, questionID, note); err != nil {
		return err
	}
	return v.Load(ctx)
}

// GenerateMore asks the AI service for another batch of questions, appends
// them to the session and refetches it. The loaded question list is left
// untouched by any failure. Returns how many questions were added.
func (v *View) GenerateMore(ctx context.Context) (int, error) {
	v.mu.Lock()
	session := v.session
	v.mu.Unlock()

	if session == nil {
		return 0, fmt.Errorf("session not loaded")
	}
	if session.Role == "" {
		return 0, fmt.Errorf("role information missing")
	}
	if session.Experience == "" {
		return 0, fmt.Errorf("experience level missing")
	}

	topics := session.TopicsToFocus
	if topics == "" {
		topics = "general"
	}

	questions, err := v.gw.GenerateQuestions(ctx, api.GenerateQuestionsRequest{
		Role:              session.Role,
		Experience:        session.Experience,
		TopicsToFocus:     topics,
		NumberOfQuestions: v.numQuestions,
	})
	if err != nil {
		return 0, fmt.Errorf("generate questions: %w", err)
	}
	if len(questions) == 0 {
		return 0, fmt.Errorf("no valid questions were generated")
	}

	if err := v.gw.AddQuestions(ctx, v.sessionID, questions); err != nil {
		return 0, fmt.Errorf("save questions: %w", err)
	}

	if err := v.Load(ctx); err != nil {
		return 0, err
	}
	return len(questions), nil
}

// Explain opens the drawer with a concept explanation for the question,
// requesting one from the AI service unless it was already explained this
// run.
func (v *View) Explain(ctx context.Context, question string) (*domain.Explanation, error) {
	v.mu.Lock()
	v.drawer = Drawer{Open: true, Loading: true}
	v.mu.Unlock()

	if cached, ok := v.explanations.Get(question); ok {
		exp := cached.(*domain.Explanation)
		v.mu.Lock()
		v.drawer = Drawer{Open: true, Explanation: exp}
		v.mu.Unlock()
		return exp, nil
	}

	exp, err := v.gw.GenerateExplanation(ctx, question)
	if err != nil {
		v.mu.Lock()
		v.drawer = Drawer{Open: true, Err: err.Error()}
		v.mu.Unlock()
		return nil, err
	}

	v.explanations.Set(question, exp, cache.DefaultExpiration)

	v.mu.Lock()
	v.drawer = Drawer{Open: true, Explanation: exp}
	v.mu.Unlock()
	return exp, nil
}

// Drawer returns the current drawer state.
func (v *View) Drawer() Drawer {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.drawer
}

// CloseDrawer discards the drawer content.
func (v *View) CloseDrawer() {
	v.mu.Lock()
	v.drawer = Drawer{}
	v.mu.Unlock()
}
