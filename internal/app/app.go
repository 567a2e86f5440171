package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Chagadiye/ctrl-vibe/internal/progression"
	"github.com/Chagadiye/ctrl-vibe/internal/router"
	"github.com/Chagadiye/ctrl-vibe/internal/screen"
	"github.com/Chagadiye/ctrl-vibe/internal/screens/home"
	"github.com/Chagadiye/ctrl-vibe/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	prog   *progression.Store
	start  screen.Screen
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen at the bottom of
// the stack. start, when non-nil, is pushed on top during Init so Esc
// still lands on the menu.
func newAppModel(cfg home.Config, start screen.Screen) AppModel {
	homeScreen := home.New(cfg)
	return AppModel{
		router: router.New(homeScreen),
		prog:   cfg.Prog,
		start:  start,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	cmd := active.Init()
	if m.start == nil {
		return cmd
	}
	start := m.start
	return tea.Batch(cmd, func() tea.Msg {
		return router.PushScreenMsg{Screen: start}
	})
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	state := m.prog.State()
	header := layout.RenderHeader(title, state.XP, state.Streak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program on the home menu.
func Run(cfg home.Config) error {
	return RunAt(cfg, nil)
}

// RunAt starts the program with start stacked over the home menu, for
// subcommands that jump straight to one feature.
func RunAt(cfg home.Config, start screen.Screen) error {
	p := tea.NewProgram(newAppModel(cfg, start))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
