// Package listnav tracks which slice of a list is on screen.
package listnav

// Window keeps a cursor inside a fixed-height visible slice of a list.
// It does NOT render and does not decide where the cursor goes; callers
// move the cursor and the window scrolls just enough to keep it visible.
type Window struct {
	cursor int // Item that must stay visible
	first  int // First visible item index
	count  int // Total items
	height int // Visible items
}

// New creates a Window over an empty list, one item tall.
func New() *Window {
	return &Window{height: 1}
}

// Cursor returns the item index the window follows.
func (w *Window) Cursor() int {
	return w.cursor
}

// First returns the index of the first visible item.
func (w *Window) First() int {
	return w.first
}

// Height returns the number of visible items.
func (w *Window) Height() int {
	return w.height
}

// SetItemCount updates the total item count and clamps cursor and scroll.
func (w *Window) SetItemCount(count int) {
	if count < 0 {
		count = 0
	}
	w.count = count
	w.clampCursor()
	w.ensureCursorVisible()
}

// SetHeight updates how many items fit on screen. Heights below one are
// treated as one so the cursor is always shown.
func (w *Window) SetHeight(h int) {
	if h < 1 {
		h = 1
	}
	w.height = h
	w.ensureCursorVisible()
}

// Follow moves the cursor to idx and scrolls the minimum needed to show it.
// A wraparound jump from the last item to the first scrolls straight to the
// top. Returns true if the first visible item changed.
func (w *Window) Follow(idx int) bool {
	old := w.first
	w.cursor = idx
	w.clampCursor()
	w.ensureCursorVisible()
	return w.first != old
}

// Bounds returns the visible item range [start, end).
func (w *Window) Bounds() (start, end int) {
	end = w.first + w.height
	if end > w.count {
		end = w.count
	}
	return w.first, end
}

// Reset clears state to initial values.
func (w *Window) Reset() {
	w.cursor = 0
	w.first = 0
}

func (w *Window) clampCursor() {
	if w.count == 0 {
		w.cursor = 0
		return
	}
	if w.cursor < 0 {
		w.cursor = 0
	}
	if w.cursor >= w.count {
		w.cursor = w.count - 1
	}
}

func (w *Window) clampFirst() {
	if w.count == 0 {
		w.first = 0
		return
	}
	maxFirst := max(0, w.count-w.height)
	if w.first < 0 {
		w.first = 0
	}
	if w.first > maxFirst {
		w.first = maxFirst
	}
}

func (w *Window) ensureCursorVisible() {
	if w.cursor < w.first {
		w.first = w.cursor
	}
	if w.cursor >= w.first+w.height {
		w.first = w.cursor - w.height + 1
	}
	w.clampFirst()
}
