package state

// Item is one row of an inspector listing. Colors holds hex values
// without '#' and Attrs attribute names; both are what filters match.
type Item struct {
	ID     string
	Label  string
	Colors []string
	Attrs  []string
}

// List holds a listing's items with its filter, cursor and viewport.
type List struct {
	ID             string
	Title          string
	Items          []Item
	Full           []Item
	Filter         string
	Cursor         int
	LastID         string
	ViewportOffset int
}

// NewList constructs a List holding items.
func NewList(id, title string, items []Item) *List {
	l := &List{ID: id, Title: title}
	l.UpdateItems(items)
	return l
}

// IndexOf returns the index for a given item identifier.
func (l *List) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *List) Current() (Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the items, keeping the cursor on the same item
// when it is still present.
func (l *List) UpdateItems(items []Item) {
	var keep string
	if cur, ok := l.Current(); ok {
		keep = cur.ID
	}
	prevOffset := l.ViewportOffset
	l.Full = CloneItems(items)
	l.applyFilter()
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	}
	if len(l.Items) == 0 {
		l.ViewportOffset = 0
		return
	}
	if prevOffset < 0 {
		prevOffset = 0
	}
	if prevOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
		return
	}
	l.ViewportOffset = prevOffset
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
