package mediaroom

import (
	"context"
	"errors"
	"testing"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
)

type fakeBroker struct {
	createErr error
	endErr    error
	ended     []string
}

func (f *fakeBroker) CreateRoomSession(ctx context.Context, simulationType, userID string) (*api.RoomSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &api.RoomSession{RoomName: "room-" + simulationType, AccessToken: "tok"}, nil
}

func (f *fakeBroker) EndRoomSession(ctx context.Context, roomName string) error {
	f.ended = append(f.ended, roomName)
	return f.endErr
}

func TestConnectDisconnectLifecycle(t *testing.T) {
	broker := &fakeBroker{}
	var connected, disconnected []string
	room := New(broker, Hooks{
		OnConnect:    func(s *api.RoomSession) { connected = append(connected, s.RoomName) },
		OnDisconnect: func(name string) { disconnected = append(disconnected, name) },
	})

	session, err := room.Connect(context.Background(), "auto_driver_sim", "u1")
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if room.Session() == nil {
		t.Fatal("no live session after connect")
	}
	if _, err := room.Connect(context.Background(), "auto_driver_sim", "u1"); !errors.Is(err, ErrAlreadyConnected) {
		t.Errorf("second connect = %v", err)
	}

	if err := room.Disconnect(context.Background()); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if room.Session() != nil {
		t.Error("session survived disconnect")
	}
	if len(broker.ended) != 1 || broker.ended[0] != session.RoomName {
		t.Errorf("ended rooms = %v", broker.ended)
	}
	if len(connected) != 1 || len(disconnected) != 1 {
		t.Errorf("hooks fired %d/%d times", len(connected), len(disconnected))
	}
}

func TestDisconnectIdempotent(t *testing.T) {
	broker := &fakeBroker{}
	room := New(broker, Hooks{})
	if err := room.Disconnect(context.Background()); err != nil {
		t.Fatalf("disconnect without connect: %v", err)
	}
	if len(broker.ended) != 0 {
		t.Errorf("ended rooms = %v", broker.ended)
	}
}

func TestDisconnectClearsEvenOnBackendFailure(t *testing.T) {
	broker := &fakeBroker{endErr: errors.New("down")}
	room := New(broker, Hooks{})
	if _, err := room.Connect(context.Background(), "auto_driver_sim", "u1"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := room.Disconnect(context.Background()); err == nil {
		t.Fatal("want teardown error")
	}
	if room.Session() != nil {
		t.Error("failed teardown left session live")
	}
}
