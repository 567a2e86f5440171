package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/home"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "stub" }
func (s *stubScreen) Title() string                           { return "Stub" }

func testConfig() home.Config {
	return home.Config{Prog: progression.NewStore(nil, nil)}
}

func TestStartScreenStacksOverHome(t *testing.T) {
	start := &stubScreen{}
	m := newAppModel(testConfig(), start)

	if m.Init() == nil {
		t.Fatal("expected an init command")
	}

	updated, _ := m.Update(router.PushScreenMsg{Screen: start})
	m = updated.(AppModel)

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "Stub" {
		t.Fatalf("active = %q, want the start screen", m.router.Active().Title())
	}
	if !start.initRan {
		t.Error("start screen Init should run when pushed")
	}
}

func TestNoStartScreenKeepsMenuOnTop(t *testing.T) {
	m := newAppModel(testConfig(), nil)

	if m.router.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", m.router.Depth())
	}
	if m.router.Active().Title() != "Home" {
		t.Fatalf("active = %q, want Home", m.router.Active().Title())
	}
}
