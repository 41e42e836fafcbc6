// Package media abstracts the capture and playback hardware behind capability
// interfaces so the test flow controller stays testable without microphones,
// speakers or cameras.
package media

// SpeechCapture is a continuous speech-to-text source. At most one capture
// session is active per instance; Start while active is rejected by callers
// via Active.
type SpeechCapture interface {
	// Start begins continuous capture. onResult is invoked for every
	// recognition update: final segments are accumulated by the caller,
	// non-final ones overwrite the interim tail. onErr reports a runtime
	// failure, after which the capture session has stopped.
	Start(onResult func(text string, final bool), onErr func(error)) error

	// Stop ends the capture session. Stopping an inactive capture is a no-op.
	Stop()

	// Active reports whether a capture session is running.
	Active() bool
}

// SpeechPlayback is a text-to-speech sink. Speak while speaking replaces the
// current utterance (cancel-then-speak).
type SpeechPlayback interface {
	Speak(text string) error
	// Cancel stops playback; cancelling idle playback is a no-op.
	Cancel()
	Speaking() bool
}

// Stream is a handle to a live camera preview.
type Stream struct {
	Device string
}

// CameraSource grants access to a camera preview stream. Acquisition is
// one-time: once granted the stream stays bound for the rest of the session.
type CameraSource interface {
	Acquire() (*Stream, error)
	Active() bool
}
