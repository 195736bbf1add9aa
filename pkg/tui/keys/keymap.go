// Package keys maps raw key presses to the closed set of app commands.
package keys

import (
	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/darksworm/colortable/pkg/app"
)

// KeyMap holds the bindings for every command.
type KeyMap struct {
	Quit  key.Binding
	Up    key.Binding
	Down  key.Binding
	Right key.Binding
	Left  key.Binding
}

// DefaultKeyMap binds arrows and vim keys; q, esc and ctrl+c quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("(Esc)", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("(↑)", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("(↓)", "move down"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("(→)", "next color"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("(←)", "previous color"),
		),
	}
}

// Command maps a key press to a command. Keys without a binding map to
// CommandNone. Only presses are accepted, so release events can never
// trigger an action twice.
func (k KeyMap) Command(msg tea.KeyPressMsg) app.Command {
	switch {
	case key.Matches(msg, k.Quit):
		return app.CommandQuit
	case key.Matches(msg, k.Down):
		return app.CommandMoveDown
	case key.Matches(msg, k.Up):
		return app.CommandMoveUp
	case key.Matches(msg, k.Right):
		return app.CommandMoveRight
	case key.Matches(msg, k.Left):
		return app.CommandMoveLeft
	}
	return app.CommandNone
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Up, k.Down, k.Right, k.Left}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// HelpLine renders the one-line footer text, e.g.
// "(Esc) quit | (↑) move up | ...". Styling is left to the caller.
func (k KeyMap) HelpLine() string {
	h := help.New()
	h.ShortSeparator = " | "
	plain := lipgloss.NewStyle()
	h.Styles.ShortKey = plain
	h.Styles.ShortDesc = plain
	h.Styles.ShortSeparator = plain
	return h.ShortHelpView(k.ShortHelp())
}
