// Package mediaroom manages the real-time voice room a simulation speaks
// through. The room itself is an external resource; this package only
// guarantees that credentials are acquired and released at the right
// lifecycle points.
package mediaroom

import (
	"context"
	"errors"
	"sync"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

// Broker provisions and tears down room sessions.
type Broker interface {
	CreateRoomSession(ctx context.Context, simulationType, userID string) (*api.RoomSession, error)
	EndRoomSession(ctx context.Context, roomName string) error
}

// Hooks are invoked at connection transition points. Nil hooks are
// skipped.
type Hooks struct {
	OnConnect    func(session *api.RoomSession)
	OnDisconnect func(roomName string)
}

// ErrAlreadyConnected rejects a second connect while a room is live.
var ErrAlreadyConnected = errors.New("media room already connected")

// Room is one media-room connection. Disconnect is idempotent so teardown
// paths can call it unconditionally.
type Room struct {
	broker Broker
	hooks  Hooks

	mu      sync.Mutex
	session *api.RoomSession
}

func New(broker Broker, hooks Hooks) *Room {
	return &Room{broker: broker, hooks: hooks}
}

// Connect provisions credentials and fires the connect hook.
func (r *Room) Connect(ctx context.Context, simulationType, userID string) (*api.RoomSession, error) {
	r.mu.Lock()
	if r.session != nil {
		r.mu.Unlock()
		return nil, ErrAlreadyConnected
	}
	r.mu.Unlock()

	session, err := r.broker.CreateRoomSession(ctx, simulationType, userID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.session = session
	r.mu.Unlock()

	if r.hooks.OnConnect != nil {
		r.hooks.OnConnect(session)
	}
	return session, nil
}

// Disconnect tears the room down. The local session is cleared and the
// disconnect hook fires even when the backend call fails, so an abandoned
// screen never holds a live room open.
func (r *Room) Disconnect(ctx context.Context) error {
	r.mu.Lock()
	session := r.session
	r.session = nil
	r.mu.Unlock()

	if session == nil {
		return nil
	}

	err := r.broker.EndRoomSession(ctx, session.RoomName)
	if r.hooks.OnDisconnect != nil {
		r.hooks.OnDisconnect(session.RoomName)
	}
	return err
}

// Session returns the live credentials, nil when disconnected.
func (r *Room) Session() *api.RoomSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}
