// Package scrollbar draws a vertical scroll position indicator.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

const (
	TrackChar = "│"
	ThumbChar = "█"
)

// Model describes where the content is scrolled to. Position runs from 0 to
// Extent; Content and Visible size the thumb.
type Model struct {
	Position int
	Extent   int
	Content  int
	Visible  int
}

// Thumb returns the thumb's first cell and length on a track of the given
// length. The thumb is at least one cell and touches the bottom of the track
// when Position == Extent.
func (m Model) Thumb(track int) (pos, size int) {
	if track <= 0 {
		return 0, 0
	}

	size = track
	if m.Content > 0 && m.Visible < m.Content {
		size = track * m.Visible / m.Content
	}
	size = min(max(size, 1), track)

	if m.Extent > 0 {
		p := min(max(m.Position, 0), m.Extent)
		pos = (track - size) * p / m.Extent
	}
	return pos, size
}

// View renders the bar as a single column, one line per track cell.
func (m Model) View(track int, trackStyle, thumbStyle lipgloss.Style) string {
	pos, size := m.Thumb(track)
	lines := make([]string, track)
	for i := range lines {
		if i >= pos && i < pos+size {
			lines[i] = thumbStyle.Render(ThumbChar)
		} else {
			lines[i] = trackStyle.Render(TrackChar)
		}
	}
	return strings.Join(lines, "\n")
}
