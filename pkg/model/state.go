package model

// RowHeight is the vertical extent of one table row in terminal lines. The
// scroll indicator position is measured in these units.
const RowHeight = 4

// NavigationState holds the selected row and the active theme. The scroll
// offset is derived from the selection and cannot be set on its own.
type NavigationState struct {
	selected    int
	hasSelected bool
	themeIndex  int

	rowCount   int
	themeCount int
}

// NewNavigationState creates state for rowCount rows and themeCount themes,
// with the first row selected and startTheme active. startTheme is wrapped
// into range.
func NewNavigationState(rowCount, themeCount, startTheme int) (*NavigationState, error) {
	if rowCount < 1 {
		return nil, ErrEmptyDataset
	}
	if themeCount < 1 {
		return nil, ErrNoThemes
	}
	return &NavigationState{
		selected:    0,
		hasSelected: true,
		themeIndex:  wrap(startTheme, themeCount),
		rowCount:    rowCount,
		themeCount:  themeCount,
	}, nil
}

// Selected returns the selected row and whether any row is selected.
func (s *NavigationState) Selected() (int, bool) {
	return s.selected, s.hasSelected
}

// SelectedIndex returns the selected row, or 0 when nothing is selected.
func (s *NavigationState) SelectedIndex() int {
	if !s.hasSelected {
		return 0
	}
	return s.selected
}

// ScrollOffset is the scroll indicator position: selected row times RowHeight.
func (s *NavigationState) ScrollOffset() int {
	return s.SelectedIndex() * RowHeight
}

// ScrollExtent is the total scrollable extent, (rows-1) * RowHeight.
func (s *NavigationState) ScrollExtent() int {
	if s.rowCount < 1 {
		return 0
	}
	return (s.rowCount - 1) * RowHeight
}

// ThemeIndex returns the active theme index.
func (s *NavigationState) ThemeIndex() int {
	return s.themeIndex
}

// RowCount returns the number of rows navigated over.
func (s *NavigationState) RowCount() int {
	return s.rowCount
}

// ThemeCount returns the number of themes cycled through.
func (s *NavigationState) ThemeCount() int {
	return s.themeCount
}

// NextRow selects the following row, wrapping from the last row to the first.
func (s *NavigationState) NextRow() {
	if !s.hasSelected {
		s.selectRow(0)
		return
	}
	s.selectRow(wrap(s.selected+1, s.rowCount))
}

// PreviousRow selects the preceding row, wrapping from the first row to the last.
func (s *NavigationState) PreviousRow() {
	if !s.hasSelected {
		s.selectRow(0)
		return
	}
	s.selectRow(wrap(s.selected-1, s.rowCount))
}

// NextTheme activates the following theme, wrapping around.
func (s *NavigationState) NextTheme() {
	s.themeIndex = wrap(s.themeIndex+1, s.themeCount)
}

// PreviousTheme activates the preceding theme, wrapping around.
func (s *NavigationState) PreviousTheme() {
	s.themeIndex = wrap(s.themeIndex-1, s.themeCount)
}

func (s *NavigationState) selectRow(i int) {
	s.selected = i
	s.hasSelected = true
}

// wrap maps i into [0, n). n must be positive.
func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
