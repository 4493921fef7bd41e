package analyzer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nguyentantai21042004/interview-summarizer/internal/gateway"
)

func TestUploadAndWaitReady(t *testing.T) {
	gw := &fakeGateway{states: []gateway.State{gateway.StateProcessing, gateway.StateProcessing, gateway.StateActive}}
	a, slept := newTestAnalyzer(gw, 2*time.Second, time.Minute)

	h, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg")
	if err != nil {
		t.Fatalf("uploadAndWait() error = %v", err)
	}
	if h.State != gateway.StateActive {
		t.Errorf("state = %v, want %v", h.State, gateway.StateActive)
	}
	if gw.refetch != 2 {
		t.Errorf("re-fetches = %d, want 2", gw.refetch)
	}
	if len(*slept) != 2 {
		t.Fatalf("sleeps = %d, want 2", len(*slept))
	}
	for _, d := range *slept {
		if d != 2*time.Second {
			t.Errorf("sleep = %v, want %v", d, 2*time.Second)
		}
	}
}

func TestUploadAndWaitAlreadyActive(t *testing.T) {
	gw := &fakeGateway{states: []gateway.State{gateway.StateActive}}
	a, slept := newTestAnalyzer(gw, time.Second, time.Minute)

	if _, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg"); err != nil {
		t.Fatalf("uploadAndWait() error = %v", err)
	}
	if gw.refetch != 0 || len(*slept) != 0 {
		t.Errorf("re-fetches = %d, sleeps = %d, want 0 and 0", gw.refetch, len(*slept))
	}
}

func TestUploadAndWaitUnspecifiedIsTerminal(t *testing.T) {
	gw := &fakeGateway{states: []gateway.State{gateway.StateProcessing, gateway.StateUnspecified}}
	a, _ := newTestAnalyzer(gw, time.Second, time.Minute)

	h, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg")
	if err != nil {
		t.Fatalf("uploadAndWait() error = %v", err)
	}
	if h.State != gateway.StateUnspecified {
		t.Errorf("state = %v, want %v", h.State, gateway.StateUnspecified)
	}
}

func TestUploadAndWaitFailed(t *testing.T) {
	tests := []struct {
		name        string
		states      []gateway.State
		wantRefetch int
	}{
		{"failed on upload", []gateway.State{gateway.StateFailed}, 0},
		{"failed after processing", []gateway.State{gateway.StateProcessing, gateway.StateFailed}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{states: tt.states}
			a, _ := newTestAnalyzer(gw, time.Second, time.Minute)

			_, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg")
			if !errors.Is(err, ErrRemoteProcessing) {
				t.Fatalf("uploadAndWait() error = %v, want ErrRemoteProcessing", err)
			}
			if gw.refetch != tt.wantRefetch {
				t.Errorf("re-fetches = %d, want %d", gw.refetch, tt.wantRefetch)
			}
		})
	}
}

func TestUploadAndWaitTimeout(t *testing.T) {
	states := make([]gateway.State, 100)
	for i := range states {
		states[i] = gateway.StateProcessing
	}
	gw := &fakeGateway{states: states}
	a, slept := newTestAnalyzer(gw, 2*time.Second, 5*time.Second)

	_, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg")
	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("uploadAndWait() error = %v, want ErrPollTimeout", err)
	}
	if gw.refetch != 3 {
		t.Errorf("re-fetches = %d, want 3", gw.refetch)
	}
	if len(*slept) != 3 {
		t.Errorf("sleeps = %d, want 3", len(*slept))
	}
}

func TestUploadAndWaitCanceled(t *testing.T) {
	gw := &fakeGateway{states: []gateway.State{gateway.StateProcessing, gateway.StateProcessing}}
	a, _ := newTestAnalyzer(gw, time.Second, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.uploadAndWait(ctx, "/tmp/x.mp3", "audio/mpeg")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("uploadAndWait() error = %v, want context.Canceled", err)
	}
	if gw.refetch != 0 {
		t.Errorf("re-fetches = %d, want 0", gw.refetch)
	}
}

func TestUploadAndWaitErrors(t *testing.T) {
	uploadErr := errors.New("network down")
	gw := &fakeGateway{uploadErr: uploadErr}
	a, _ := newTestAnalyzer(gw, time.Second, time.Minute)
	if _, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg"); !errors.Is(err, uploadErr) {
		t.Errorf("upload error = %v, want %v", err, uploadErr)
	}

	getErr := errors.New("not found")
	gw = &fakeGateway{states: []gateway.State{gateway.StateProcessing}, getErr: getErr}
	a, _ = newTestAnalyzer(gw, time.Second, time.Minute)
	if _, err := a.uploadAndWait(context.Background(), "/tmp/x.mp3", "audio/mpeg"); !errors.Is(err, getErr) {
		t.Errorf("poll error = %v, want %v", err, getErr)
	}
	if gw.refetch != 1 {
		t.Errorf("re-fetches = %d, want 1", gw.refetch)
	}
}

func TestSleepContext(t *testing.T) {
	if err := sleepContext(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepContext() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepContext() error = %v, want context.Canceled", err)
	}
}
