// Package layout measures table content before anything is drawn.
package layout

import (
	"github.com/darksworm/colortable/pkg/model"
	"github.com/mattn/go-runewidth"
)

// cond measures display columns independently of the user's locale: wide
// East Asian runes take two columns, combining marks take none, ambiguous
// runes take one.
var cond = &runewidth.Condition{EastAsianWidth: false}

// Widths holds the widest display width found in each column.
type Widths struct {
	Name    int
	Address int
	Email   int
}

// Calculate scans every record once. The address column is measured line by
// line. An empty input yields zero widths.
func Calculate(records []model.Record) Widths {
	var w Widths
	for _, r := range records {
		w.Name = max(w.Name, StringWidth(r.Name()))
		for _, line := range r.AddressLines() {
			w.Address = max(w.Address, StringWidth(line))
		}
		w.Email = max(w.Email, StringWidth(r.Email()))
	}
	return w
}

// ForDataset is Calculate over a dataset's rows.
func ForDataset(ds *model.Dataset) Widths {
	return Calculate(ds.Records())
}

// Constraints returns the rendered column widths. Name and address get one
// column of padding; email takes its measured width.
func (w Widths) Constraints() [3]int {
	return [3]int{w.Name + 1, w.Address + 1, w.Email}
}

// Total is the sum of the column constraints.
func (w Widths) Total() int {
	c := w.Constraints()
	return c[0] + c[1] + c[2]
}

// StringWidth returns the number of terminal columns s occupies on one line.
func StringWidth(s string) int {
	return cond.StringWidth(s)
}
