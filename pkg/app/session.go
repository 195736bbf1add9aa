package app

import (
	"fmt"

	cblog "github.com/charmbracelet/log"
	"github.com/darksworm/colortable/pkg/layout"
	"github.com/darksworm/colortable/pkg/model"
	"github.com/darksworm/colortable/pkg/theme"
	"github.com/tidwall/sjson"
)

// Viewport is the drawable area in terminal cells.
type Viewport struct {
	Width  int
	Height int
}

// Frame is everything a render target needs to draw one screen.
type Frame struct {
	Rows         *model.Dataset
	Widths       layout.Widths
	Selected     int
	ScrollOffset int
	ScrollExtent int
	ThemeIndex   int
	Palette      theme.Palette
	Viewport     Viewport
}

// Session owns the dataset, its measured column widths and the navigation
// state. It is not safe for concurrent use; the interaction loop is its only
// caller.
type Session struct {
	rows     *model.Dataset
	widths   layout.Widths
	nav      *model.NavigationState
	resolver theme.Resolver
	state    State
	logger   *cblog.Logger
}

// NewSession measures the dataset and seeds navigation at the first row and
// startTheme. It fails for an empty dataset.
func NewSession(rows *model.Dataset, resolver theme.Resolver, startTheme int) (*Session, error) {
	nav, err := model.NewNavigationState(rows.Len(), theme.Count(), startTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &Session{
		rows:     rows,
		widths:   layout.ForDataset(rows),
		nav:      nav,
		resolver: resolver,
		state:    StateRunning,
		logger:   cblog.With("component", "session"),
	}, nil
}

// State returns Running until a quit command has been applied.
func (s *Session) State() State {
	return s.state
}

// Widths returns the column widths measured at construction.
func (s *Session) Widths() layout.Widths {
	return s.widths
}

// Selected returns the selected row index.
func (s *Session) Selected() int {
	return s.nav.SelectedIndex()
}

// ScrollOffset returns the scroll indicator position.
func (s *Session) ScrollOffset() int {
	return s.nav.ScrollOffset()
}

// ThemeIndex returns the active theme index.
func (s *Session) ThemeIndex() int {
	return s.nav.ThemeIndex()
}

// Apply runs one command and returns the resulting state. Commands after
// quit are ignored.
func (s *Session) Apply(cmd Command) State {
	if s.state == StateExiting {
		return s.state
	}

	switch cmd {
	case CommandQuit:
		s.state = StateExiting
	case CommandMoveDown:
		s.nav.NextRow()
	case CommandMoveUp:
		s.nav.PreviousRow()
	case CommandMoveRight:
		s.nav.NextTheme()
	case CommandMoveLeft:
		s.nav.PreviousTheme()
	default:
		return s.state
	}

	if s.logger.GetLevel() <= cblog.DebugLevel {
		s.logger.Debug("Applied command", "command", cmd, "snapshot", s.Snapshot())
	}
	return s.state
}

// Frame builds the drawing input for the current state. The palette is
// resolved from the theme index on every call.
func (s *Session) Frame(vp Viewport) Frame {
	return Frame{
		Rows:         s.rows,
		Widths:       s.widths,
		Selected:     s.nav.SelectedIndex(),
		ScrollOffset: s.nav.ScrollOffset(),
		ScrollExtent: s.nav.ScrollExtent(),
		ThemeIndex:   s.nav.ThemeIndex(),
		Palette:      s.resolver.Resolve(s.nav.ThemeIndex()),
		Viewport:     vp,
	}
}

// Snapshot renders the session state as a JSON object.
func (s *Session) Snapshot() string {
	doc := "{}"
	set := func(path string, value interface{}) {
		if out, err := sjson.Set(doc, path, value); err == nil {
			doc = out
		}
	}

	set("state", s.state.String())
	set("rows", s.rows.Len())
	set("selected", s.nav.SelectedIndex())
	if s.rows.Len() > 0 {
		set("selectedName", s.rows.At(s.nav.SelectedIndex()).Name())
	}
	set("scroll.offset", s.nav.ScrollOffset())
	set("scroll.extent", s.nav.ScrollExtent())
	set("theme.index", s.nav.ThemeIndex())
	set("theme.name", theme.Resolve(s.nav.ThemeIndex()).Name)
	set("widths.name", s.widths.Name)
	set("widths.address", s.widths.Address)
	set("widths.email", s.widths.Email)
	return doc
}
