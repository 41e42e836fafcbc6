package api

import (
	"context"
	"io"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// Gateway defines the API surface the views depend on, so they can be tested
// against fakes.
type Gateway interface {
	Login(ctx context.Context, creds Credentials) (*domain.User, error)
	Register(ctx context.Context, req RegisterRequest) (*domain.User, error)
	Profile(ctx context.Context) (*domain.User, error)
	UploadImage(ctx context.Context, filename string, r io.Reader) (string, error)

	GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) ([]domain.Question, error)
	GenerateExplanation(ctx context.Context, question string) (*domain.Explanation, error)

	CreateSession(ctx context.Context, req CreateSessionRequest) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error

	AddQuestions(ctx context.Context, sessionID string, questions []domain.Question) error
	TogglePin(ctx context.Context, questionID string) error
	UpdateNote(ctx context.Context, questionID, note string) error

	GenerateTestQuestions(ctx context.Context, req TestQuestionsRequest) ([]string, []string, error)
	SubmitTestAnswer(ctx context.Context, answer TestAnswer) error
	GetFeedback(ctx context.Context, sessionID string) ([]domain.FeedbackEntry, error)
}

// Ensure Client implements Gateway.
var _ Gateway = (*Client)(nil)
