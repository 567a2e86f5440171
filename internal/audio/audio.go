// Package audio plays tutor responses and records the user's voice turn
// through whatever command-line tools the host has. Simulations depend
// only on the interfaces so tests run silent.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
)

// defaultCaptureFormat is ffmpeg's capture backend for this platform.
var defaultCaptureFormat = func() string {
	if runtime.GOOS == "darwin" {
		return "avfoundation"
	}
	return "pulse"
}()

// Player plays one audio URL or file path to completion.
type Player interface {
	Play(ctx context.Context, source string) error
}

// Recorder captures microphone audio between Start and Stop. Stop returns
// the recorded bytes; a second Stop without a Start in between fails.
type Recorder interface {
	Start(ctx context.Context) error
	Stop() ([]byte, error)
}

// ErrNoTool reports that no usable playback or capture binary was found
// on PATH.
type ErrNoTool struct {
	Tried []string
}

func (e *ErrNoTool) Error() string {
	return fmt.Sprintf("no audio tool found, tried %v", e.Tried)
}

var playerTools = []string{"mpv", "ffplay", "afplay"}

// ExecPlayer shells out to the first available playback tool.
type ExecPlayer struct{}

func (ExecPlayer) Play(ctx context.Context, source string) error {
	tool, args := "", []string(nil)
	for _, candidate := range playerTools {
		if _, err := exec.LookPath(candidate); err == nil {
			tool = candidate
			break
		}
	}
	switch tool {
	case "":
		return &ErrNoTool{Tried: playerTools}
	case "mpv":
		args = []string{"--no-video", "--really-quiet", source}
	case "ffplay":
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", source}
	default:
		args = []string{source}
	}
	cmd := exec.CommandContext(ctx, tool, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play %s: %w", source, err)
	}
	return nil
}

var recorderTools = []string{"ffmpeg", "arecord", "sox"}

// ErrNotRecording rejects Stop without a prior Start.
var ErrNotRecording = errors.New("recorder not started")

// ExecRecorder captures to a temp file with the first available capture
// tool and reads it back on Stop.
type ExecRecorder struct {
	mu   sync.Mutex
	cmd  *exec.Cmd
	path string
}

func (r *ExecRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cmd != nil {
		return errors.New("recorder already started")
	}

	tool := ""
	for _, candidate := range recorderTools {
		if _, err := exec.LookPath(candidate); err == nil {
			tool = candidate
			break
		}
	}
	if tool == "" {
		return &ErrNoTool{Tried: recorderTools}
	}

	f, err := os.CreateTemp("", "ctrl-vibe-rec-*.wav")
	if err != nil {
		return fmt.Errorf("recording temp file: %w", err)
	}
	path := f.Name()
	f.Close()

	var args []string
	switch tool {
	case "ffmpeg":
		args = []string{"-y", "-loglevel", "quiet", "-f", defaultCaptureFormat, "-i", "default", path}
	case "arecord":
		args = []string{"-q", "-f", "cd", path}
	case "sox":
		args = []string{"-q", "-d", path}
	}

	cmd := exec.CommandContext(ctx, tool, args...)
	if err := cmd.Start(); err != nil {
		os.Remove(path)
		return fmt.Errorf("start %s: %w", tool, err)
	}
	r.cmd = cmd
	r.path = path
	return nil
}

func (r *ExecRecorder) Stop() ([]byte, error) {
	r.mu.Lock()
	cmd, path := r.cmd, r.path
	r.cmd, r.path = nil, ""
	r.mu.Unlock()

	if cmd == nil {
		return nil, ErrNotRecording
	}
	defer os.Remove(path)

	// Interrupt lets the tool finalize the file header; the exit status
	// is expected to be non-zero and is ignored.
	if cmd.Process != nil {
		cmd.Process.Signal(os.Interrupt)
	}
	cmd.Wait()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	return data, nil
}

// NoopPlayer discards playback, for tests and headless environments.
type NoopPlayer struct{}

func (NoopPlayer) Play(ctx context.Context, source string) error { return nil }

// NoopRecorder returns canned bytes, for tests.
type NoopRecorder struct {
	Data []byte

	mu      sync.Mutex
	started bool
}

func (r *NoopRecorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = true
	return nil
}

func (r *NoopRecorder) Stop() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.started {
		return nil, ErrNotRecording
	}
	r.started = false
	return r.Data, nil
}
