package keys

import (
	"context"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/darksworm/colortable/pkg/app"
)

var namedKeys = map[string]tea.KeyPressMsg{
	"up":     {Code: tea.KeyUp},
	"down":   {Code: tea.KeyDown},
	"left":   {Code: tea.KeyLeft},
	"right":  {Code: tea.KeyRight},
	"esc":    {Code: tea.KeyEscape},
	"ctrl+c": {Code: 'c', Mod: tea.ModCtrl},
}

// Script replays a fixed sequence of key presses as an app.Source. The
// script is whitespace separated; a token is either a key name (up, down,
// left, right, esc, ctrl+c) or a run of single-character keys, so
// "jjl down q" is five presses.
type Script struct {
	keymap KeyMap
	keys   []tea.KeyPressMsg
	pos    int
}

// ParseScript builds a Script from its text form.
func ParseScript(km KeyMap, script string) *Script {
	s := &Script{keymap: km}
	for _, tok := range strings.Fields(script) {
		if msg, ok := namedKeys[strings.ToLower(tok)]; ok {
			s.keys = append(s.keys, msg)
			continue
		}
		for _, r := range tok {
			s.keys = append(s.keys, tea.KeyPressMsg{Code: r, Text: string(r)})
		}
	}
	return s
}

// Len returns the number of key presses in the script.
func (s *Script) Len() int {
	return len(s.keys)
}

// Next returns the command for the next key press, or io.EOF when the script
// is used up.
func (s *Script) Next(ctx context.Context) (app.Command, error) {
	if err := ctx.Err(); err != nil {
		return app.CommandNone, err
	}
	if s.pos >= len(s.keys) {
		return app.CommandNone, io.EOF
	}
	msg := s.keys[s.pos]
	s.pos++
	return s.keymap.Command(msg), nil
}
