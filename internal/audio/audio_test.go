package audio

import (
	"context"
	"errors"
	"testing"
)

func TestNoopRecorderLifecycle(t *testing.T) {
	r := &NoopRecorder{Data: []byte("pcm")}
	if _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("stop before start = %v", err)
	}
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	data, err := r.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if string(data) != "pcm" {
		t.Errorf("data = %q", data)
	}
	if _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("double stop = %v", err)
	}
}

func TestExecRecorderStopWithoutStart(t *testing.T) {
	var r ExecRecorder
	if _, err := r.Stop(); !errors.Is(err, ErrNotRecording) {
		t.Errorf("stop without start = %v", err)
	}
}
