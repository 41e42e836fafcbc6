// Package api wraps the interview prep REST API. Every authenticated request
// carries a bearer token from the token source; a 401 response evicts the
// stored token and notifies the unauthorized hook so the UI can route back to
// the landing screen.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
)

// TokenSource supplies the persisted bearer token and supports eviction.
type TokenSource interface {
	Token() string
	Clear() error
}

// Client is the HTTP client for the interview prep API.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
}

// NewClient creates a new API client. tokens may be nil for a client that only
// performs unauthenticated calls; onUnauthorized may be nil.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized func()) *Client {
	return &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
	}
}

// ErrorResponse represents an API error body.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the signup request body.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// GenerateQuestionsRequest asks the AI service for a batch of Q&A pairs.
type GenerateQuestionsRequest struct {
	Role              string `json:"role"`
	Experience        string `json:"experience"`
	TopicsToFocus     string `json:"topicToFocus"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

// CreateSessionRequest creates a session with an initial question set.
type CreateSessionRequest struct {
	Role          string            `json:"role"`
	Experience    string            `json:"experience"`
	TopicsToFocus string            `json:"topicToFocus"`
	Description   string            `json:"description"`
	Questions     []domain.Question `json:"questions"`
}

// TestQuestionsRequest asks for the spoken-test question list.
type TestQuestionsRequest struct {
	Role       string `json:"role"`
	Topics     string `json:"topics"`
	Experience string `json:"experience"`
}

// TestAnswer is one submitted spoken answer.
type TestAnswer struct {
	MockIDRef   string `json:"mockIdRef"`
	Question    string `json:"question"`
	UserAnswer  string `json:"user_ans"`
	IdealAnswer string `json:"correct_ans"`
}

// Login authenticates and returns the user including the bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPost, PathLogin, creds, &user); err != nil {
		return nil, err
	}
	if user.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return &user, nil
}

// Register creates an account and returns the user including the bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodPost, PathRegister, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.doJSON(ctx, http.MethodGet, PathProfile, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UploadImage uploads a profile image and returns its URL.
func (c *Client) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("copy image data: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+PathUploadImage, &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setAuth(req)

	body, err := c.execute(req)
	if err != nil {
		return "", err
	}
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("unmarshal upload response: %w", err)
	}
	return out.ImageURL, nil
}

// GenerateQuestions calls the AI service and normalizes whichever of the three
// known response shapes comes back.
func (c *Client) GenerateQuestions(ctx context.Context, req GenerateQuestionsRequest) ([]domain.Question, error) {
	raw, err := c.doRaw(ctx, http.MethodPost, PathGenerateQuestions, req)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeQuestions(raw)
}

// GenerateExplanation asks for a concept explanation of a question.
func (c *Client) GenerateExplanation(ctx context.Context, question string) (*domain.Explanation, error) {
	body := map[string]string{"question": question}
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Data    struct {
			Title       string `json:"title"`
			Explanation string `json:"explanation"`
			Content     string `json:"content"`
		} `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, PathGenerateExplanation, body, &out); err != nil {
		return nil, err
	}
	if !out.Success {
		if out.Error != "" {
			return nil, fmt.Errorf("explanation failed: %s", out.Error)
		}
		return nil, fmt.Errorf("explanation response in unexpected format")
	}

	exp := &domain.Explanation{Title: out.Data.Title, Content: out.Data.Explanation}
	if exp.Content == "" {
		exp.Content = out.Data.Content
	}
	if exp.Title == "" {
		exp.Title = question
	}
	return exp, nil
}

// CreateSession creates a session from generated questions.
func (c *Client) CreateSession(ctx context.Context, req CreateSessionRequest) (*domain.Session, error) {
	var out struct {
		Session *domain.Session `json:"session"`
	}
	if err := c.doJSON(ctx, http.MethodPost, PathCreateSession, req, &out); err != nil {
		return nil, err
	}
	if out.Session == nil || out.Session.ID == "" {
		return nil, fmt.Errorf("create session response carried no session")
	}
	return out.Session, nil
}

// ListSessions fetches the user's sessions, tolerating both list shapes.
func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, PathMySessions, nil)
	if err != nil {
		return nil, err
	}
	return domain.NormalizeSessions(raw)
}

// GetSession fetches a single session by id.
func (c *Client) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	var out struct {
		Session *domain.Session `json:"session"`
	}
	if err := c.doJSON(ctx, http.MethodGet, PathSession(id), nil, &out); err != nil {
		return nil, err
	}
	if out.Session == nil {
		return nil, fmt.Errorf("session response carried no session")
	}
	return out.Session, nil
}

// DeleteSession deletes a session by id.
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, PathSession(id), nil, nil)
}

// AddQuestions appends questions to an existing session.
func (c *Client) AddQuestions(ctx context.Context, sessionID string, questions []domain.Question) error {
	body := struct {
		SessionID string            `json:"sessionId"`
		Questions []domain.Question `json:"questions"`
	}{sessionID, questions}

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, PathAddQuestions, body, &out); err != nil {
		return err
	}
	if !out.Success {
		if out.Message != "" {
			return fmt.Errorf("add questions failed: %s", out.Message)
		}
		return fmt.Errorf("add questions failed")
	}
	return nil
}

// TogglePin flips a question's pin flag.
func (c *Client) TogglePin(ctx context.Context, questionID string) error {
	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, PathPinQuestion(questionID), nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("pin update failed: %s", out.Message)
	}
	return nil
}

// UpdateNote replaces the note attached to a question.
func (c *Client) UpdateNote(ctx context.Context, questionID, note string) error {
	body := map[string]string{"note": note}
	return c.doJSON(ctx, http.MethodPost, PathQuestionNote(questionID), body, nil)
}

// GenerateTestQuestions fetches the spoken-test question list together with
// the positionally aligned ideal answers.
func (c *Client) GenerateTestQuestions(ctx context.Context, req TestQuestionsRequest) ([]string, []string, error) {
	var out struct {
		Questions    []string `json:"questions"`
		IdealAnswers []string `json:"idealAnswers"`
	}
	if err := c.doJSON(ctx, http.MethodPost, PathTestQuestions, req, &out); err != nil {
		return nil, nil, err
	}
	return out.Questions, out.IdealAnswers, nil
}

// SubmitTestAnswer posts one spoken answer for scoring.
func (c *Client) SubmitTestAnswer(ctx context.Context, answer TestAnswer) error {
	return c.doJSON(ctx, http.MethodPost, PathTestAnswers, answer, nil)
}

// GetFeedback fetches the scored answers for a completed mock interview.
func (c *Client) GetFeedback(ctx context.Context, sessionID string) ([]domain.FeedbackEntry, error) {
	var out []domain.FeedbackEntry
	if err := c.doJSON(ctx, http.MethodGet, PathFeedback(sessionID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// doJSON issues a request with an optional JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response from %s: %w", path, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	return c.execute(req)
}

// execute sends the request, applies 401 eviction and decodes error bodies.
func (c *Client) execute(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("API request error: %s %s: %v", req.Method, req.URL.Path, err)
		return nil, fmt.Errorf("request %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.evictToken()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := decodeError(resp.StatusCode, respBody)
		log.Printf("API error: %s %s: %v", req.Method, req.URL.Path, err)
		return nil, err
	}

	return respBody, nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) evictToken() {
	if c.tokens == nil {
		return
	}
	if err := c.tokens.Clear(); err != nil {
		log.Printf("failed to clear stored token: %v", err)
	}
}

func decodeError(status int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return fmt.Errorf("API error [%d]: %s", status, errResp.Message)
		}
		if errResp.Error != "" {
			return fmt.Errorf("API error [%d]: %s", status, errResp.Error)
		}
	}
	return fmt.Errorf("API error [%d]: %s", status, strings.TrimSpace(string(body)))
}
