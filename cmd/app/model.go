package main

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/colortable/pkg/app"
	"github.com/darksworm/colortable/pkg/tui/keys"
	"github.com/darksworm/colortable/pkg/tui/render"
)

// Model adapts a Session to bubbletea. Key presses become commands, the
// terminal size becomes the viewport, and View draws the current frame.
type Model struct {
	session  *app.Session
	keys     keys.KeyMap
	renderer *render.Renderer
	viewport app.Viewport
}

// NewModel creates a Model for the session.
func NewModel(s *app.Session, km keys.KeyMap) *Model {
	return &Model{
		session:  s,
		keys:     km,
		renderer: render.New(km.HelpLine()),
	}
}

// Init implements tea.Model.Init
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.Update
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport = app.Viewport{Width: msg.Width, Height: msg.Height}
		cblog.With("component", "ui").Debug("Window resized", "width", msg.Width, "height", msg.Height)
		return m, nil

	// Releases arrive as tea.KeyReleaseMsg and fall through to the default.
	case tea.KeyPressMsg:
		cmd := m.keys.Command(msg)
		if cmd == app.CommandNone {
			return m, nil
		}
		if m.session.Apply(cmd) == app.StateExiting {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.View
func (m *Model) View() string {
	if m.session.State() == app.StateExiting {
		return ""
	}
	return m.renderer.Render(m.session.Frame(m.viewport))
}
