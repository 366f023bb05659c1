package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer written by the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "Converting to png...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	got := out.String()
	if !strings.Contains(got, "Converting to png...") {
		t.Errorf("spinner output missing message: %q", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("spinner should end by clearing the line: %q", got)
	}
}

func TestSpinnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := newSpinnerTo(ctx, &out, "Testing with context...")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "never started")

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}
}
