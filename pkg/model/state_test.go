package model

import (
	"errors"
	"testing"
)

func newState(t *testing.T, rows, themes int) *NavigationState {
	t.Helper()
	s, err := NewNavigationState(rows, themes, 0)
	if err != nil {
		t.Fatalf("NewNavigationState(%d, %d): %v", rows, themes, err)
	}
	return s
}

func TestNewNavigationState(t *testing.T) {
	s := newState(t, 20, 4)
	idx, ok := s.Selected()
	if !ok || idx != 0 {
		t.Errorf("expected row 0 selected, got %d (selected=%v)", idx, ok)
	}
	if s.ThemeIndex() != 0 {
		t.Errorf("expected theme 0, got %d", s.ThemeIndex())
	}
	if s.ScrollOffset() != 0 {
		t.Errorf("expected scroll offset 0, got %d", s.ScrollOffset())
	}
	if s.ScrollExtent() != 76 {
		t.Errorf("expected scroll extent 76, got %d", s.ScrollExtent())
	}
}

func TestNewNavigationState_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		rows   int
		themes int
		want   error
	}{
		{"no rows", 0, 4, ErrEmptyDataset},
		{"negative rows", -1, 4, ErrEmptyDataset},
		{"no themes", 3, 0, ErrNoThemes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewNavigationState(tt.rows, tt.themes, 0)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if s != nil {
				t.Error("expected nil state on error")
			}
		})
	}
}

func TestNewNavigationState_StartThemeWraps(t *testing.T) {
	tests := []struct{ start, want int }{
		{0, 0}, {3, 3}, {4, 0}, {6, 2}, {-1, 3},
	}
	for _, tt := range tests {
		s, err := NewNavigationState(5, 4, tt.start)
		if err != nil {
			t.Fatal(err)
		}
		if s.ThemeIndex() != tt.want {
			t.Errorf("start %d: expected theme %d, got %d", tt.start, tt.want, s.ThemeIndex())
		}
	}
}

func TestPreviousRowWrapsToLast(t *testing.T) {
	s := newState(t, 20, 4)
	s.PreviousRow()
	if s.SelectedIndex() != 19 {
		t.Errorf("expected row 19, got %d", s.SelectedIndex())
	}
	if s.ScrollOffset() != 76 {
		t.Errorf("expected scroll offset 76, got %d", s.ScrollOffset())
	}
}

func TestNextRowWrapsToFirst(t *testing.T) {
	s := newState(t, 20, 4)
	for i := 0; i < 19; i++ {
		s.NextRow()
	}
	if s.SelectedIndex() != 19 {
		t.Fatalf("expected row 19, got %d", s.SelectedIndex())
	}
	s.NextRow()
	if s.SelectedIndex() != 0 {
		t.Errorf("expected row 0, got %d", s.SelectedIndex())
	}
	if s.ScrollOffset() != 0 {
		t.Errorf("expected scroll offset 0, got %d", s.ScrollOffset())
	}
}

func TestPreviousThemeWraps(t *testing.T) {
	s := newState(t, 20, 4)
	s.PreviousTheme()
	if s.ThemeIndex() != 3 {
		t.Errorf("expected theme 3, got %d", s.ThemeIndex())
	}
}

func TestRowCycleIsIdentity(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s := newState(t, n, 1)
			for i := 0; i < start; i++ {
				s.NextRow()
			}
			for i := 0; i < n; i++ {
				s.NextRow()
			}
			if s.SelectedIndex() != start {
				t.Errorf("n=%d start=%d: NextRow x n landed on %d", n, start, s.SelectedIndex())
			}
			s.NextRow()
			s.PreviousRow()
			if s.SelectedIndex() != start {
				t.Errorf("n=%d start=%d: PreviousRow did not undo NextRow, got %d", n, start, s.SelectedIndex())
			}
		}
	}
}

func TestThemeCycleIsIdentity(t *testing.T) {
	for k := 1; k <= 6; k++ {
		s := newState(t, 3, k)
		for i := 0; i < k; i++ {
			s.NextTheme()
		}
		if s.ThemeIndex() != 0 {
			t.Errorf("k=%d: NextTheme x k landed on %d", k, s.ThemeIndex())
		}
		s.PreviousTheme()
		s.NextTheme()
		if s.ThemeIndex() != 0 {
			t.Errorf("k=%d: NextTheme did not undo PreviousTheme, got %d", k, s.ThemeIndex())
		}
	}
}

func TestSingleRowAndTheme(t *testing.T) {
	s := newState(t, 1, 1)
	s.NextRow()
	s.PreviousRow()
	s.NextTheme()
	s.PreviousTheme()
	if s.SelectedIndex() != 0 || s.ThemeIndex() != 0 || s.ScrollOffset() != 0 {
		t.Errorf("expected all zero, got row=%d theme=%d offset=%d",
			s.SelectedIndex(), s.ThemeIndex(), s.ScrollOffset())
	}
	if s.ScrollExtent() != 0 {
		t.Errorf("expected extent 0, got %d", s.ScrollExtent())
	}
}

func TestScrollOffsetFollowsSelection(t *testing.T) {
	s := newState(t, 9, 4)
	ops := []func(){s.NextRow, s.NextRow, s.PreviousTheme, s.PreviousRow, s.PreviousRow, s.PreviousRow, s.NextTheme, s.NextRow}
	for i, op := range ops {
		op()
		if got, want := s.ScrollOffset(), s.SelectedIndex()*RowHeight; got != want {
			t.Fatalf("after op %d: scroll offset %d, want %d", i, got, want)
		}
	}
}

func TestUnselectedStateSelectsFirstRow(t *testing.T) {
	tests := []struct {
		name string
		op   func(*NavigationState)
	}{
		{"next", (*NavigationState).NextRow},
		{"previous", (*NavigationState).PreviousRow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &NavigationState{rowCount: 5, themeCount: 2}
			if _, ok := s.Selected(); ok {
				t.Fatal("expected no selection")
			}
			if s.ScrollOffset() != 0 {
				t.Errorf("expected offset 0 without selection, got %d", s.ScrollOffset())
			}
			tt.op(s)
			idx, ok := s.Selected()
			if !ok || idx != 0 {
				t.Errorf("expected row 0 selected, got %d (selected=%v)", idx, ok)
			}
		})
	}
}
