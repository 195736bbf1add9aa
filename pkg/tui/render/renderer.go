// Package render draws a session frame as a styled table with a scrollbar
// and a footer help line.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/darksworm/colortable/pkg/app"
	"github.com/darksworm/colortable/pkg/layout"
	"github.com/darksworm/colortable/pkg/model"
	"github.com/darksworm/colortable/pkg/theme"
	"github.com/darksworm/colortable/pkg/tui/listnav"
	"github.com/darksworm/colortable/pkg/tui/scrollbar"
)

// SelectedSymbol marks the selected row in the gutter.
const SelectedSymbol = " █ "

const (
	headerHeight = 1
	footerHeight = 3 // text line plus top and bottom border
	gutterWidth  = 3
	barWidth     = 2
)

var headers = [3]string{"Name", "Address", "Email"}

// Renderer turns frames into terminal strings. It remembers which rows were
// on screen so small moves scroll the table by one row rather than
// recentering it.
type Renderer struct {
	window *listnav.Window
	help   string
	last   string
}

// New creates a Renderer that shows help in the footer.
func New(help string) *Renderer {
	return &Renderer{
		window: listnav.New(),
		help:   help,
	}
}

// Draw implements app.Target. The rendered frame is kept for String.
func (r *Renderer) Draw(f app.Frame) error {
	r.last = r.Render(f)
	return nil
}

// String returns the most recently drawn frame.
func (r *Renderer) String() string {
	return r.last
}

// Render draws one frame. A zero viewport dimension means "as large as the
// content needs".
func (r *Renderer) Render(f app.Frame) string {
	n := f.Rows.Len()
	cw := f.Widths.Constraints()
	widths := [4]int{gutterWidth, cw[0], cw[1], cw[2]}

	width := f.Viewport.Width
	if width <= 0 {
		width = gutterWidth + f.Widths.Total() + barWidth
	}
	areaHeight := f.Viewport.Height - footerHeight
	if f.Viewport.Height <= 0 {
		areaHeight = headerHeight + n*model.RowHeight
	}
	areaHeight = max(areaHeight, headerHeight+model.RowHeight)

	r.window.SetItemCount(n)
	r.window.SetHeight((areaHeight - headerHeight) / model.RowHeight)
	r.window.Follow(f.Selected)
	start, end := r.window.Bounds()

	p := f.Palette
	buffer := lipgloss.NewStyle().Background(p.BufferBG)

	tbl := buffer.
		Width(max(width-barWidth, 1)).
		MaxWidth(max(width-barWidth, 1)).
		Height(areaHeight).
		MaxHeight(areaHeight).
		Render(renderTable(f, widths, start, end))

	bar := scrollbar.Model{
		Position: f.ScrollOffset,
		Extent:   f.ScrollExtent,
		Content:  n * model.RowHeight,
		Visible:  (end - start) * model.RowHeight,
	}
	track := areaHeight - 2
	barView := ""
	if track > 0 {
		barView = "\n" + bar.View(track,
			lipgloss.NewStyle().Foreground(p.RowFG).Background(p.BufferBG),
			lipgloss.NewStyle().Foreground(p.SelectedFG).Background(p.BufferBG))
	}
	barCol := buffer.Width(barWidth).Height(areaHeight).Align(lipgloss.Center).Render(barView)

	area := lipgloss.JoinHorizontal(lipgloss.Top, tbl, barCol)
	return lipgloss.JoinVertical(lipgloss.Left, area, renderFooter(r.help, p, width))
}

func renderTable(f app.Frame, widths [4]int, start, end int) string {
	p := f.Palette

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		Headers(
			padLines("", widths[0]),
			padLines(headers[0], widths[1]),
			padLines(headers[1], widths[2]),
			padLines(headers[2], widths[3]),
		).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Foreground(p.HeaderFG).Background(p.HeaderBG)
			}
			return rowStyle(p, start+row, f.Selected)
		})

	for i := start; i < end; i++ {
		rec := f.Rows.At(i)
		gutter := ""
		if i == f.Selected {
			gutter = "\n" + SelectedSymbol + "\n" + SelectedSymbol
		}
		t.Row(
			cell(gutter, widths[0]),
			cell("\n"+rec.Name(), widths[1]),
			cell("\n"+rec.Address(), widths[2]),
			cell("\n"+rec.Email(), widths[3]),
		)
	}
	return t.String()
}

// rowStyle alternates backgrounds by dataset index so the stripes do not
// shift as the table scrolls.
func rowStyle(p theme.Palette, index, selected int) lipgloss.Style {
	bg := p.NormalRowBG
	if index%2 == 1 {
		bg = p.AltRowBG
	}
	s := lipgloss.NewStyle().Foreground(p.RowFG).Background(bg)
	if index == selected {
		s = s.Reverse(true).Foreground(p.SelectedFG)
	}
	return s
}

func renderFooter(help string, p theme.Palette, width int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(p.FooterBorder).
		BorderBackground(p.BufferBG).
		Foreground(p.RowFG).
		Background(p.BufferBG).
		Width(max(width-2, 1)).
		Align(lipgloss.Center).
		Render(help)
}

// cell lays text out as exactly RowHeight lines of the given width.
func cell(text string, width int) string {
	lines := model.SplitLines(text)
	if len(lines) > model.RowHeight {
		lines = lines[:model.RowHeight]
	}
	for len(lines) < model.RowHeight {
		lines = append(lines, "")
	}
	return padLines(strings.Join(lines, "\n"), width)
}

// padLines right-pads every line to width display cells. Lines that are
// already wide enough are left alone.
func padLines(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		if gap := width - layout.StringWidth(l); gap > 0 {
			lines[i] = l + strings.Repeat(" ", gap)
		}
	}
	return strings.Join(lines, "\n")
}
