package simulation

import (
	"context"
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

type fakeBackend struct {
	startFn    func(in api.StartSimulationInput) (*api.SimulationReply, error)
	converseFn func(in api.ConverseInput, audio []byte) (*api.SimulationReply, error)
}

func (f *fakeBackend) StartSimulation(ctx context.Context, in api.StartSimulationInput) (*api.SimulationReply, error) {
	return f.startFn(in)
}

func (f *fakeBackend) Converse(ctx context.Context, in api.ConverseInput, audio []byte) (*api.SimulationReply, error) {
	return f.converseFn(in, audio)
}

func startedSession(t *testing.T, backend *fakeBackend) *Session {
	t.Helper()
	s, err := NewSession(backend, "auto_driver_sim", "u1", false)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestHistoryReplacedWholesale(t *testing.T) {
	serverHistory := []api.ConversationTurn{
		{Role: "system", Content: "prompt"},
		{Role: "assistant", Content: "ಎಲ್ಲಿಗೆ ಹೋಗಬೇಕು?"},
	}
	backend := &fakeBackend{
		startFn: func(in api.StartSimulationInput) (*api.SimulationReply, error) {
			return &api.SimulationReply{Text: "ಎಲ್ಲಿಗೆ ಹೋಗಬೇಕು?", History: serverHistory}, nil
		},
		converseFn: func(in api.ConverseInput, audio []byte) (*api.SimulationReply, error) {
			if len(in.History) != len(serverHistory) {
				t.Errorf("sent %d history turns, want %d", len(in.History), len(serverHistory))
			}
			// Server returns a rewritten transcript, not a strict append.
			next := append(append([]api.ConversationTurn{}, serverHistory...),
				api.ConversationTurn{Role: "user", Content: "ಮೆಜೆಸ್ಟಿಕ್"},
				api.ConversationTurn{Role: "assistant", Content: "ನೂರು ರೂಪಾಯಿ"},
			)
			return &api.SimulationReply{Text: "ನೂರು ರೂಪಾಯಿ", History: next}, nil
		},
	}

	s := startedSession(t, backend)
	if _, err := s.Converse(context.Background(), []byte("audio")); err != nil {
		t.Fatalf("Converse: %v", err)
	}
	if got := len(s.History()); got != 4 {
		t.Errorf("history length = %d, want server's 4", got)
	}
	msgs := s.Messages()
	if len(msgs) != 3 { // opening turn + user pair
		t.Fatalf("display messages = %d, want 3", len(msgs))
	}
	if msgs[1].Speaker != "you" || msgs[2].Speaker != "tutor" {
		t.Errorf("display pair speakers = %q, %q", msgs[1].Speaker, msgs[2].Speaker)
	}
}

func TestConverseAfterEndRejected(t *testing.T) {
	backend := &fakeBackend{
		startFn: func(in api.StartSimulationInput) (*api.SimulationReply, error) {
			return &api.SimulationReply{Text: "hi"}, nil
		},
		converseFn: func(in api.ConverseInput, audio []byte) (*api.SimulationReply, error) {
			return &api.SimulationReply{
				Text:            "done",
				EndConversation: true,
				Score:           85,
				Feedback:        map[string]string{"grammar": "good"},
			}, nil
		},
	}

	s := startedSession(t, backend)
	if _, err := s.Converse(context.Background(), nil); err != nil {
		t.Fatalf("terminal Converse: %v", err)
	}
	if !s.Ended() {
		t.Fatal("session not marked ended")
	}
	if s.Score() != 85 {
		t.Errorf("score = %d", s.Score())
	}
	if _, err := s.Converse(context.Background(), nil); !errors.Is(err, ErrConversationEnded) {
		t.Errorf("converse after end = %v, want ErrConversationEnded", err)
	}
}

func TestConverseBeforeStartRejected(t *testing.T) {
	s, err := NewSession(&fakeBackend{}, "auto_driver_sim", "u1", false)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if _, err := s.Converse(context.Background(), nil); !errors.Is(err, ErrNotStarted) {
		t.Errorf("converse before start = %v, want ErrNotStarted", err)
	}
}

func TestAgeGate(t *testing.T) {
	if _, err := NewSession(&fakeBackend{}, "road_rage_sim", "u1", false); err == nil {
		t.Fatal("restricted scenario without verification must fail")
	} else {
		var restricted *ErrAgeRestricted
		if !errors.As(err, &restricted) {
			t.Fatalf("want ErrAgeRestricted, got %v", err)
		}
	}
	if _, err := NewSession(&fakeBackend{}, "road_rage_sim", "u1", true); err != nil {
		t.Fatalf("verified start: %v", err)
	}
}

func TestBackendFailureLeavesTranscript(t *testing.T) {
	fail := false
	backend := &fakeBackend{
		startFn: func(in api.StartSimulationInput) (*api.SimulationReply, error) {
			return &api.SimulationReply{Text: "hi", History: []api.ConversationTurn{{Role: "assistant", Content: "hi"}}}, nil
		},
		converseFn: func(in api.ConverseInput, audio []byte) (*api.SimulationReply, error) {
			if fail {
				return nil, &api.ErrNetwork{Op: "POST /simulation/converse", Err: errors.New("refused")}
			}
			return &api.SimulationReply{Text: "ok", History: in.History}, nil
		},
	}

	s := startedSession(t, backend)
	fail = true
	if _, err := s.Converse(context.Background(), nil); err == nil {
		t.Fatal("want error")
	}
	if got := len(s.Messages()); got != 1 {
		t.Errorf("failed turn appended display messages: %d", got)
	}
	if got := len(s.History()); got != 1 {
		t.Errorf("failed turn changed history: %d", got)
	}
}
