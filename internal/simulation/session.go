package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// Conversationalist is the slice of the backend client a session needs.
type Conversationalist interface {
	StartSimulation(ctx context.Context, in api.StartSimulationInput) (*api.SimulationReply, error)
	Converse(ctx context.Context, in api.ConverseInput, audio []byte) (*api.SimulationReply, error)
}

// ErrConversationEnded rejects converse calls after the backend signalled
// the terminal turn.
var ErrConversationEnded = errors.New("conversation has ended")

// ErrNotStarted rejects converse calls before the opening turn arrived.
var ErrNotStarted = errors.New("conversation not started")

// ErrAgeRestricted blocks starting a restricted scenario without a
// verified-adult flag.
type ErrAgeRestricted struct {
	SimulationType string
}

func (e *ErrAgeRestricted) Error() string {
	return fmt.Sprintf("simulation %q requires age verification", e.SimulationType)
}

// DisplayMessage is one rendered line of the transcript. The display list
// is client-side decoration only; the backend sees the history slice.
type DisplayMessage struct {
	Speaker  string // "you" | "tutor"
	Text     string
	AudioURL string
}

// Session carries one conversation. The backend is stateless between
// calls, so every converse ships the full history; the session replaces
// its copy with the server's returned value rather than appending locally,
// which would drift from the server's turn bookkeeping.
type Session struct {
	backend     Conversationalist
	simType     string
	userID      string
	ageVerified bool

	mu       sync.Mutex
	started  bool
	ended    bool
	history  []api.ConversationTurn
	display  []DisplayMessage
	score    int
	feedback map[string]string
}

// NewSession prepares a session for one scenario. Restricted scenarios
// require ageVerified; the flag is also forwarded to the backend on start.
func NewSession(backend Conversationalist, simType, userID string, ageVerified bool) (*Session, error) {
	if info, ok := Lookup(simType); ok && info.AgeRestricted && !ageVerified {
		return nil, &ErrAgeRestricted{SimulationType: simType}
	}
	return &Session{
		backend:     backend,
		simType:     simType,
		userID:      userID,
		ageVerified: ageVerified,
	}, nil
}

// Start requests the opening turn.
func (s *Session) Start(ctx context.Context) (*api.SimulationReply, error) {
	reply, err := s.backend.StartSimulation(ctx, api.StartSimulationInput{
		SimulationType: s.simType,
		UserID:         s.userID,
		AgeVerified:    s.ageVerified,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = true
	s.history = reply.History
	s.display = append(s.display, DisplayMessage{
		Speaker:  "tutor",
		Text:     reply.Text,
		AudioURL: reply.AudioURL,
	})
	return reply, nil
}

// Converse sends one recorded user turn. After an end_conversation signal
// every further call fails with ErrConversationEnded.
func (s *Session) Converse(ctx context.Context, audio []byte) (*api.SimulationReply, error) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil, ErrNotStarted
	}
	if s.ended {
		s.mu.Unlock()
		return nil, ErrConversationEnded
	}
	in := api.ConverseInput{
		SimulationType: s.simType,
		History:        s.history,
		UserID:         s.userID,
	}
	s.mu.Unlock()

	reply, err := s.backend.Converse(ctx, in, audio)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = reply.History
	s.display = append(s.display,
		DisplayMessage{Speaker: "you", Text: "(voice message)"},
		DisplayMessage{Speaker: "tutor", Text: reply.Text, AudioURL: reply.AudioURL},
	)
	if reply.EndConversation {
		s.ended = true
		s.score = reply.Score
		s.feedback = reply.Feedback
	}
	return reply, nil
}

func (s *Session) Ended() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ended
}

func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Feedback() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feedback
}

// Messages returns a copy of the rendered transcript.
func (s *Session) Messages() []DisplayMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]DisplayMessage, len(s.display))
	copy(out, s.display)
	return out
}

// History returns a copy of the wire transcript.
func (s *Session) History() []api.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.ConversationTurn, len(s.history))
	copy(out, s.history)
	return out
}
