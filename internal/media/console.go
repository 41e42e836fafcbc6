package media

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrCameraDenied is returned when camera access is not permitted.
var ErrCameraDenied = errors.New("camera permission denied")

// ConsoleCapture treats typed lines as finalized transcript segments. It keeps
// the flow usable on machines without a speech recognizer: whoever owns the
// terminal pushes lines in while a session is active, and each line is
// delivered as one final recognition result. The capture never reads the
// terminal itself, so it cannot race the prompt loop for stdin.
type ConsoleCapture struct {
	mu       sync.Mutex
	active   bool
	onResult func(string, bool)
	onErr    func(error)
}

// NewConsoleCapture creates a push-based capture source.
func NewConsoleCapture() *ConsoleCapture {
	return &ConsoleCapture{}
}

var _ SpeechCapture = (*ConsoleCapture)(nil)

// Start opens a capture session. Results arrive via Push.
func (c *ConsoleCapture) Start(onResult func(string, bool), onErr func(error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return errors.New("capture already running")
	}
	c.active = true
	c.onResult = onResult
	c.onErr = onErr
	return nil
}

// Push delivers one typed line as a final recognition result. Lines pushed
// outside a session are dropped.
func (c *ConsoleCapture) Push(line string) {
	c.mu.Lock()
	onResult := c.onResult
	active := c.active
	c.mu.Unlock()
	if !active || line == "" {
		return
	}
	onResult(line, true)
}

// Fail reports a recognition error to the active session.
func (c *ConsoleCapture) Fail(err error) {
	c.mu.Lock()
	onErr := c.onErr
	active := c.active
	c.mu.Unlock()
	if !active || onErr == nil {
		return
	}
	onErr(fmt.Errorf("speech capture: %w", err))
}

// Stop ends the capture session.
func (c *ConsoleCapture) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
	c.onResult = nil
	c.onErr = nil
}

// Active reports whether a capture session is running.
func (c *ConsoleCapture) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ConsolePlayback "speaks" by printing the text to a writer.
type ConsolePlayback struct {
	mu       sync.Mutex
	out      io.Writer
	speaking bool
}

// NewConsolePlayback creates a playback sink writing to out.
func NewConsolePlayback(out io.Writer) *ConsolePlayback {
	return &ConsolePlayback{out: out}
}

var _ SpeechPlayback = (*ConsolePlayback)(nil)

// Speak prints the text. A previous utterance is implicitly replaced.
func (p *ConsolePlayback) Speak(text string) error {
	p.mu.Lock()
	p.speaking = true
	p.mu.Unlock()
	_, err := fmt.Fprintf(p.out, "🔊 %s\n", text)
	return err
}

// Cancel stops the current utterance.
func (p *ConsolePlayback) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.speaking = false
}

// Speaking reports whether an utterance is active.
func (p *ConsolePlayback) Speaking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.speaking
}

// StubCamera grants or denies a preview stream per configuration.
type StubCamera struct {
	mu      sync.Mutex
	device  string
	granted bool
	stream  *Stream
}

// NewStubCamera creates a camera source. When granted is false every Acquire
// fails with ErrCameraDenied.
func NewStubCamera(device string, granted bool) *StubCamera {
	return &StubCamera{device: device, granted: granted}
}

var _ CameraSource = (*StubCamera)(nil)

// Acquire grants the preview stream. Repeated calls return the same stream.
func (c *StubCamera) Acquire() (*Stream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.granted {
		return nil, ErrCameraDenied
	}
	if c.stream == nil {
		c.stream = &Stream{Device: c.device}
	}
	return c.stream, nil
}

// Active reports whether a stream has been acquired.
func (c *StubCamera) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stream != nil
}
