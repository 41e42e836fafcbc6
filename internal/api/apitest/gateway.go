// Package apitest provides a fake Gateway for view tests.
package apitest

import (
	"context"
	"errors"
	"io"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/api"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// ErrNotStubbed is returned by any operation without a configured function.
var ErrNotStubbed = errors.New("apitest: operation not stubbed")

// Gateway is a fake api.Gateway built from per-operation functions. Only the
// operations a test exercises need to be set.
type Gateway struct {
	LoginFunc               func(ctx context.Context, creds api.Credentials) (*domain.User, error)
	RegisterFunc            func(ctx context.Context, req api.RegisterRequest) (*domain.User, error)
	ProfileFunc             func(ctx context.Context) (*domain.User, error)
	UploadImageFunc         func(ctx context.Context, filename string, r io.Reader) (string, error)
	GenerateQuestionsFunc   func(ctx context.Context, req api.GenerateQuestionsRequest) ([]domain.Question, error)
	GenerateExplanationFunc func(ctx context.Context, question string) (*domain.Explanation, error)
	CreateSessionFunc       func(ctx context.Context, req api.CreateSessionRequest) (*domain.Session, error)
	ListSessionsFunc        func(ctx context.Context) ([]domain.Session, error)
	GetSessionFunc          func(ctx context.Context, id string) (*domain.Session, error)
	DeleteSessionFunc       func(ctx context.Context, id string) error
	AddQuestionsFunc        func(ctx context.Context, sessionID string, questions []domain.Question) error
	TogglePinFunc           func(ctx context.Context, questionID string) error
	UpdateNoteFunc          func(ctx context.Context, questionID, note string) error
	TestQuestionsFunc       func(ctx context.Context, req api.TestQuestionsRequest) ([]string, []string, error)
	SubmitTestAnswerFunc    func(ctx context.Context, answer api.TestAnswer) error
	GetFeedbackFunc         func(ctx context.Context, sessionID string) ([]domain.FeedbackEntry, error)
}

var _ api.Gateway = (*Gateway)(nil)

func (g *Gateway) Login(ctx context.Context, creds api.Credentials) (*domain.User, error) {
	if g.LoginFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.LoginFunc(ctx, creds)
}

func (g *Gateway) Register(ctx context.Context, req api.RegisterRequest) (*domain.User, error) {
	if g.RegisterFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.RegisterFunc(ctx, req)
}

func (g *Gateway) Profile(ctx context.Context) (*domain.User, error) {
	if g.ProfileFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.ProfileFunc(ctx)
}

func (g *Gateway) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	if g.UploadImageFunc == nil {
		return "", ErrNotStubbed
	}
	return g.UploadImageFunc(ctx, filename, r)
}

func (g *Gateway) GenerateQuestions(ctx context.Context, req api.GenerateQuestionsRequest) ([]domain.Question, error) {
	if g.GenerateQuestionsFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.GenerateQuestionsFunc(ctx, req)
}

func (g *Gateway) GenerateExplanation(ctx context.Context, question string) (*domain.Explanation, error) {
	if g.GenerateExplanationFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.GenerateExplanationFunc(ctx, question)
}

func (g *Gateway) CreateSession(ctx context.Context, req api.CreateSessionRequest) (*domain.Session, error) {
	if g.CreateSessionFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.CreateSessionFunc(ctx, req)
}

func (g *Gateway) ListSessions(ctx context.Context) ([]domain.Session, error) {
	if g.ListSessionsFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.ListSessionsFunc(ctx)
}

func (g *Gateway) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if g.GetSessionFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.GetSessionFunc(ctx, id)
}

func (g *Gateway) DeleteSession(ctx context.Context, id string) error {
	if g.DeleteSessionFunc == nil {
		return ErrNotStubbed
	}
	return g.DeleteSessionFunc(ctx, id)
}

func (g *Gateway) AddQuestions(ctx context.Context, sessionID string, questions []domain.Question) error {
	if g.AddQuestionsFunc == nil {
		return ErrNotStubbed
	}
	return g.AddQuestionsFunc(ctx, sessionID, questions)
}

func (g *Gateway) TogglePin(ctx context.Context, questionID string) error {
	if g.TogglePinFunc == nil {
		return ErrNotStubbed
	}
	return g.TogglePinFunc(ctx, questionID)
}

func (g *Gateway) UpdateNote(ctx context.Context, questionID, note string) error {
	if g.UpdateNoteFunc == nil {
		return ErrNotStubbed
	}
	return g.UpdateNoteFunc(ctx, questionID, note)
}

func (g *Gateway) GenerateTestQuestions(ctx context.Context, req api.TestQuestionsRequest) ([]string, []string, error) {
	if g.TestQuestionsFunc == nil {
		return nil, nil, ErrNotStubbed
	}
	return g.TestQuestionsFunc(ctx, req)
}

func (g *Gateway) SubmitTestAnswer(ctx context.Context, answer api.TestAnswer) error {
	if g.SubmitTestAnswerFunc == nil {
		return ErrNotStubbed
	}
	return g.SubmitTestAnswerFunc(ctx, answer)
}

func (g *Gateway) GetFeedback(ctx context.Context, sessionID string) ([]domain.FeedbackEntry, error) {
	if g.GetFeedbackFunc == nil {
		return nil, ErrNotStubbed
	}
	return g.GetFeedbackFunc(ctx, sessionID)
}
