package state

// MoveCursorBy moves the cursor delta rows, clamped to the items.
func (l *List) MoveCursorBy(delta int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = min(max(l.Cursor+delta, 0), len(l.Items)-1)
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first item.
func (l *List) MoveCursorHome() bool {
	return l.MoveCursorBy(-len(l.Items))
}

// MoveCursorEnd moves the cursor to the last item.
func (l *List) MoveCursorEnd() bool {
	return l.MoveCursorBy(len(l.Items))
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (l *List) MoveCursorPageUp(maxVisible int) bool {
	return l.MoveCursorBy(-l.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (l *List) MoveCursorPageDown(maxVisible int) bool {
	return l.MoveCursorBy(l.pageSize(maxVisible))
}

func (l *List) pageSize(maxVisible int) int {
	total := len(l.Items)
	if maxVisible <= 0 || maxVisible > total {
		return max(total, 1)
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (l *List) EnsureCursorVisible(maxVisible int) {
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = min(max(l.Cursor, 0), len(l.Items)-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := max(len(l.Items)-maxVisible, 0)
	l.ViewportOffset = min(max(l.ViewportOffset, 0), maxOffset)
	if l.Cursor < l.ViewportOffset {
		l.ViewportOffset = l.Cursor
	}
	if upper := l.ViewportOffset + maxVisible - 1; l.Cursor > upper {
		l.ViewportOffset = min(max(l.Cursor-maxVisible+1, 0), maxOffset)
	}
}

// Visible returns the slice of items inside the viewport.
func (l *List) Visible(maxVisible int) []Item {
	l.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items
	}
	return l.Items[l.ViewportOffset : l.ViewportOffset+maxVisible]
}
