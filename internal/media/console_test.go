package media

import (
	"bytes"
	"errors"
	"testing"
)

func TestConsoleCapturePushDeliversFinalResults(t *testing.T) {
	capture := NewConsoleCapture()
	var got []string
	err := capture.Start(func(text string, final bool) {
		if !final {
			t.Fatalf("console capture should only emit final results")
		}
		got = append(got, text)
	}, func(err error) { t.Fatalf("unexpected error: %v", err) })
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	capture.Push("hello")
	capture.Push("") // blank lines are dropped
	capture.Push("world")

	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Fatalf("unexpected segments %v", got)
	}
}

func TestConsoleCaptureRejectsSecondStart(t *testing.T) {
	capture := NewConsoleCapture()
	noop := func(string, bool) {}
	if err := capture.Start(noop, nil); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := capture.Start(noop, nil); err == nil {
		t.Fatal("expected second start to fail")
	}
	if !capture.Active() {
		t.Fatal("capture should still be active")
	}
}

func TestConsoleCaptureStopDropsLaterPushes(t *testing.T) {
	capture := NewConsoleCapture()
	var got []string
	if err := capture.Start(func(text string, _ bool) { got = append(got, text) }, nil); err != nil {
		t.Fatalf("start: %v", err)
	}

	capture.Push("kept")
	capture.Stop()
	capture.Push("dropped")

	if capture.Active() {
		t.Fatal("capture should be inactive after stop")
	}
	if len(got) != 1 || got[0] != "kept" {
		t.Fatalf("unexpected segments %v", got)
	}
}

func TestConsoleCaptureFail(t *testing.T) {
	capture := NewConsoleCapture()
	var got error
	if err := capture.Start(func(string, bool) {}, func(err error) { got = err }); err != nil {
		t.Fatalf("start: %v", err)
	}

	capture.Fail(errors.New("no-speech"))
	if got == nil || got.Error() != "speech capture: no-speech" {
		t.Fatalf("unexpected error %v", got)
	}
}

func TestConsolePlayback(t *testing.T) {
	out := &bytes.Buffer{}
	playback := NewConsolePlayback(out)

	if err := playback.Speak("What is a goroutine?"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if !playback.Speaking() {
		t.Fatal("expected speaking state")
	}
	if !bytes.Contains(out.Bytes(), []byte("What is a goroutine?")) {
		t.Fatalf("utterance not written: %q", out.String())
	}

	playback.Cancel()
	if playback.Speaking() {
		t.Fatal("expected cancel to clear speaking state")
	}
}

func TestStubCamera(t *testing.T) {
	denied := NewStubCamera("cam0", false)
	if _, err := denied.Acquire(); !errors.Is(err, ErrCameraDenied) {
		t.Fatalf("expected ErrCameraDenied, got %v", err)
	}
	if denied.Active() {
		t.Fatal("denied camera must not report active")
	}

	granted := NewStubCamera("cam0", true)
	first, err := granted.Acquire()
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	second, err := granted.Acquire()
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if first != second {
		t.Fatal("repeated acquire should return the same stream")
	}
	if !granted.Active() {
		t.Fatal("granted camera should report active")
	}
}
