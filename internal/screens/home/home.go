package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/api"
	"github.com/Chagadiye/ctrl-vibe/internal/audio"
	"github.com/Chagadiye/ctrl-vibe/internal/lessons"
	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/board"
	duelscreen "github.com/Chagadiye/ctrl-vibe/internal/screens/duel"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/learn"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/profile"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/sims"
	"github.com/Chagadiye/ctrl-vibe/internal/selfupdate"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/components"
)

// Config carries the services the home screen hands down to sub-screens.
type Config struct {
	Prog     *progression.Store
	Client   *api.Client
	Lessons  *lessons.Service
	Recorder audio.Recorder
	Player   audio.Player
	Checker  *selfupdate.Checker
	Version  string
}

// hydratedMsg is sent when the startup identity reconciliation finishes.
type hydratedMsg struct {
	Err error
}

// updateCheckMsg is sent when the background release check finishes.
type updateCheckMsg struct {
	LatestVersion string
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	cfg        Config
	menu       components.Menu
	menuLabels []string
	offline    bool
	updateNote string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(cfg Config) *HomeScreen {
	menuLabels := []string{"LEARN", "LETTER DUEL", "SIMULATIONS", "LEADERBOARD", "PROFILE", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: learn.New(cfg.Lessons, cfg.Prog, cfg.Player)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: duelscreen.New(cfg.Client, cfg.Prog)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sims.New(cfg.Client, cfg.Prog, cfg.Recorder, cfg.Player)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: board.New(cfg.Client, cfg.Prog)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(cfg.Prog)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		cfg:        cfg,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{h.hydrateCmd()}
	if h.cfg.Checker != nil && h.cfg.Version != "" {
		cmds = append(cmds, h.updateCheckCmd())
	}
	return tea.Batch(cmds...)
}

func (h *HomeScreen) hydrateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_ = h.cfg.Prog.LoadSnapshot(ctx)
		err := h.cfg.Prog.InitUser(ctx)
		return hydratedMsg{Err: err}
	}
}

func (h *HomeScreen) updateCheckCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := h.cfg.Checker.Check(context.Background(), &selfupdate.CheckInput{Version: h.cfg.Version})
		if err != nil || !result.UpdateAvailable {
			return updateCheckMsg{}
		}
		return updateCheckMsg{LatestVersion: result.LatestVersion}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case hydratedMsg:
		h.offline = msg.Err != nil
		return h, nil
	case updateCheckMsg:
		h.updateNote = msg.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	state := h.cfg.Prog.State()

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		switch {
		case state.Streak >= 3:
			variant = MascotCelebrating
		case h.offline:
			variant = MascotAlert
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(state.XP, state.Level, state.Streak, cw, compact))

	if h.offline {
		sections = append(sections, renderOfflineBanner(cw))
	}

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw, nil))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw, nil))
	}

	if h.updateNote != "" {
		sections = append(sections, renderUpdateNote(h.updateNote, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
