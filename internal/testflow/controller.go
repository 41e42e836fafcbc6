// Package testflow drives the simulated spoken interview: question
// navigation, speech capture, question playback, camera preview and answer
// submission.
package testflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/SDhinakar/Interview-Prep-Frontend/internal/api"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/domain"
	"github.com/SDhinakar/Interview-Prep-Frontend/internal/media"
)

// State is the controller's lifecycle state.
type State int

const (
	// StateLoading means the question set has not arrived yet.
	StateLoading State = iota
	// StateReady means the current question has no transcript yet.
	StateReady
	// StateListening means microphone capture is active for the current question.
	StateListening
	// StateAnswered means the current question has a transcript, not yet submitted.
	StateAnswered
	// StateSubmittedAll means every question has been answered and posted.
	StateSubmittedAll
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateListening:
		return "listening"
	case StateAnswered:
		return "answered"
	case StateSubmittedAll:
		return "submitted-all"
	default:
		return "unknown"
	}
}

var (
	// ErrNotReady is returned for operations attempted before questions are
	// loaded or after the test completed.
	ErrNotReady = errors.New("test flow not ready")
	// ErrEmptyTranscript is returned when submitting a question whose
	// transcript is empty. No network call is made.
	ErrEmptyTranscript = errors.New("transcript is empty")
	// ErrIndexOutOfRange is returned for an invalid question index.
	ErrIndexOutOfRange = errors.New("question index out of range")
)

// Service is the slice of the gateway the controller needs.
type Service interface {
	GenerateTestQuestions(ctx context.Context, req api.TestQuestionsRequest) ([]string, []string, error)
	SubmitTestAnswer(ctx context.Context, answer api.TestAnswer) error
}

// Controller is the test flow state machine. All methods are safe for
// concurrent use; recognition results arrive on capture goroutines.
type Controller struct {
	mu sync.Mutex

	svc      Service
	capture  media.SpeechCapture
	playback media.SpeechPlayback
	camera   media.CameraSource
	notify   func(string)

	role       string
	topics     string
	experience string
	mockID     string

	state       State
	questions   []string
	ideals      []string
	transcripts map[int]string
	current     int
	stream      *media.Stream
}

// NewController creates a controller in the loading state. notify receives
// user-facing notices (recording started/stopped, errors); nil is allowed.
func NewController(svc Service, capture media.SpeechCapture, playback media.SpeechPlayback, camera media.CameraSource, role, topics, experience string, notify func(string)) *Controller {
	return &Controller{
		svc:         svc,
		capture:     capture,
		playback:    playback,
		camera:      camera,
		notify:      notify,
		role:        role,
		topics:      topics,
		experience:  experience,
		mockID:      "sess-" + uuid.NewString()[:8],
		state:       StateLoading,
		transcripts: make(map[int]string),
	}
}

// Load fetches the generated question list and the positionally aligned ideal
// answers. On failure the controller stays in the loading state.
func (c *Controller) Load(ctx context.Context) error {
	questions, ideals, err := c.svc.GenerateTestQuestions(ctx, api.TestQuestionsRequest{
		Role:       c.role,
		Topics:     c.topics,
		Experience: c.experience,
	})
	if err != nil {
		return fmt.Errorf("generate test questions: %w", err)
	}
	if len(questions) == 0 {
		return fmt.Errorf("no questions generated")
	}
	// idealAnswers[i] pairs with questions[i]; pad short lists so lookups
	// never go out of range
	for len(ideals) < len(questions) {
		ideals = append(ideals, "")
	}

	c.mu.Lock()
	c.questions = questions
	c.ideals = ideals
	c.current = 0
	c.state = c.restingStateLocked()
	c.mu.Unlock()
	return nil
}

// StartListening begins continuous speech capture for the current question.
// Starting while capture is already running is a no-op.
func (c *Controller) StartListening() error {
	c.mu.Lock()
	if c.state == StateLoading || c.state == StateSubmittedAll {
		c.mu.Unlock()
		return ErrNotReady
	}
	if c.capture.Active() {
		c.mu.Unlock()
		return nil
	}
	idx := c.current
	c.mu.Unlock()

	// the finalized prefix is local to one capture session, as in a fresh
	// recognition run: restarting capture rewrites the question's transcript
	var finalText string

	onResult := func(text string, final bool) {
		c.mu.Lock()
		defer c.mu.Unlock()
		// recognition never stays attached to an index other than the
		// current one
		if c.current != idx {
			return
		}
		if final {
			finalText += text + " "
			c.transcripts[idx] = strings.TrimSpace(finalText)
		} else {
			c.transcripts[idx] = strings.TrimSpace(finalText + text)
		}
	}

	onErr := func(err error) {
		c.notifyf("Speech error: %v", err)
		c.capture.Stop()
		c.mu.Lock()
		if c.state == StateListening {
			c.state = c.restingStateLocked()
		}
		c.mu.Unlock()
	}

	if err := c.capture.Start(onResult, onErr); err != nil {
		return fmt.Errorf("start speech capture: %w", err)
	}

	c.mu.Lock()
	c.state = StateListening
	c.mu.Unlock()
	c.notifyf("Recording started")
	return nil
}

// StopListening releases the speech capture. Stopping while not listening is
// a no-op.
func (c *Controller) StopListening() {
	c.capture.Stop()

	c.mu.Lock()
	stopped := c.state == StateListening
	if stopped {
		c.state = c.restingStateLocked()
	}
	c.mu.Unlock()
	if stopped {
		c.notifyf("Recording stopped")
	}
}

// SetIndex switches the active question. In-progress capture for the previous
// question is implicitly stopped; stored transcripts are preserved.
func (c *Controller) SetIndex(i int) error {
	c.mu.Lock()
	if c.state == StateLoading {
		c.mu.Unlock()
		return ErrNotReady
	}
	if i < 0 || i >= len(c.questions) {
		c.mu.Unlock()
		return ErrIndexOutOfRange
	}
	listening := c.state == StateListening
	c.current = i
	c.mu.Unlock()

	if listening {
		c.StopListening()
	}

	c.mu.Lock()
	if c.state != StateSubmittedAll {
		c.state = c.restingStateLocked()
	}
	c.mu.Unlock()
	return nil
}

// Submit posts the current question's transcript for scoring. An empty
// transcript is rejected client-side without any network call. On success the
// flow advances to the next question, or completes when none remain. A failed
// submission leaves state and transcripts unchanged.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state == StateLoading || c.state == StateSubmittedAll {
		c.mu.Unlock()
		return ErrNotReady
	}
	idx := c.current
	transcript := c.transcripts[idx]
	if strings.TrimSpace(transcript) == "" {
		c.mu.Unlock()
		return ErrEmptyTranscript
	}
	answer := api.TestAnswer{
		MockIDRef:   c.mockID,
		Question:    domain.StripEmphasis(c.questions[idx]),
		UserAnswer:  transcript,
		IdealAnswer: c.ideals[idx],
	}
	c.mu.Unlock()

	if err := c.svc.SubmitTestAnswer(ctx, answer); err != nil {
		return fmt.Errorf("submit answer: %w", err)
	}

	// advancing is an index change: release any in-progress capture
	c.capture.Stop()

	c.mu.Lock()
	if idx < len(c.questions)-1 {
		c.current = idx + 1
		c.state = c.restingStateLocked()
	} else {
		c.state = StateSubmittedAll
	}
	c.mu.Unlock()

	if c.State() == StateSubmittedAll {
		c.notifyf("Test completed!")
	}
	return nil
}

// ToggleSpeak starts text-to-speech playback of the current question, or
// cancels the in-flight utterance. Emphasis markers are stripped before
// speaking.
func (c *Controller) ToggleSpeak() error {
	if c.playback.Speaking() {
		c.playback.Cancel()
		return nil
	}

	c.mu.Lock()
	if c.state == StateLoading || len(c.questions) == 0 {
		c.mu.Unlock()
		return ErrNotReady
	}
	text := domain.StripEmphasis(c.questions[c.current])
	c.mu.Unlock()

	return c.playback.Speak(text)
}

// InitCamera lazily acquires the camera preview on first use. Denial is
// reported but does not block the rest of the flow.
func (c *Controller) InitCamera() error {
	c.mu.Lock()
	if c.stream != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	stream, err := c.camera.Acquire()
	if err != nil {
		c.notifyf("Camera permission denied")
		return fmt.Errorf("acquire camera: %w", err)
	}

	c.mu.Lock()
	c.stream = stream
	c.mu.Unlock()
	c.notifyf("Camera permission granted")
	return nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CurrentIndex returns the active question index.
func (c *Controller) CurrentIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Questions returns the loaded question list.
func (c *Controller) Questions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.questions))
	copy(out, c.questions)
	return out
}

// Question returns the display text of the question at i.
func (c *Controller) Question(i int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.questions) {
		return ""
	}
	return domain.StripEmphasis(c.questions[i])
}

// Transcript returns the stored transcript for question i, or "".
func (c *Controller) Transcript(i int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcripts[i]
}

// MockID returns the local mock-interview session id submitted with answers.
func (c *Controller) MockID() string {
	return c.mockID
}

// CameraActive reports whether a preview stream has been acquired.
func (c *Controller) CameraActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream != nil
}

// restingStateLocked derives ready vs answered for the current question.
// Callers hold c.mu.
func (c *Controller) restingStateLocked() State {
	if strings.TrimSpace(c.transcripts[c.current]) != "" {
		return StateAnswered
	}
	return StateReady
}

func (c *Controller) notifyf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.notify != nil {
		c.notify(msg)
		return
	}
	log.Print(msg)
}
