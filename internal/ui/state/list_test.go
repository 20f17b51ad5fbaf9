package state

import (
	"strings"
	"testing"
)

func newTestList(ids ...string) *List {
	items := make([]Item, len(ids))
	for i, id := range ids {
		items[i] = Item{ID: id, Label: id}
	}
	return NewList("test", "Test", items)
}

func highlightItems() []Item {
	return []Item{
		{ID: "0", Colors: []string{"000000", "ffffff"}},
		{ID: "1", Colors: []string{"ff0000", "ffffff"}, Attrs: []string{"bold"}},
		{ID: "2", Colors: []string{"000000", "ffffff"}, Attrs: []string{"italic", "underline"}},
		{ID: "12", Colors: []string{"00ff00", "202020"}, Attrs: []string{"bold", "italic"}},
	}
}

func ids(items []Item) string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return strings.Join(out, ",")
}

func TestFilterItemsMatchesFields(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"", "0,1,2,12"},
		{"1", "1"},
		{"12", "12"},
		{"#ff00", "1"},
		{"#ff", "0,1,2"},
		{"#2020", "12"},
		{"ff0", "1"},
		{"bold", "1,12"},
		{"BOLD ital", "12"},
		{"undrln", "2"},
		{"bold #00ff", "12"},
		{"strikethrough", ""},
		{"7", ""},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			if got := ids(FilterItems(highlightItems(), tc.query)); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestSetFilterKeepsAndRestoresSelection(t *testing.T) {
	l := NewList("hl", "Highlights", highlightItems())
	l.Cursor = 3
	l.SetFilter("bold")
	if cur, _ := l.Current(); cur.ID != "12" {
		t.Fatalf("expected cursor kept on 12, got %q", cur.ID)
	}

	l.SetFilter("bold #ff")
	if cur, _ := l.Current(); cur.ID != "1" {
		t.Fatalf("expected cursor moved to first match, got %q", cur.ID)
	}

	l.SetFilter("")
	if cur, _ := l.Current(); cur.ID != "12" {
		t.Fatalf("expected cursor restored to 12, got %q", cur.ID)
	}
	if l.LastID != "" {
		t.Fatalf("expected saved selection cleared, got %q", l.LastID)
	}
}

func TestFilterNoMatches(t *testing.T) {
	l := NewList("hl", "Highlights", highlightItems())
	l.SetFilter("zzz")
	if len(l.Items) != 0 || l.Cursor != 0 {
		t.Fatalf("expected empty filtered list, got %#v cursor=%d", l.Items, l.Cursor)
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current item")
	}
}

func TestUpdateItemsKeepsCursorOnItem(t *testing.T) {
	l := newTestList("1", "2", "3")
	l.Cursor = 1
	l.UpdateItems([]Item{{ID: "0", Label: "0"}, {ID: "1", Label: "1"}, {ID: "2", Label: "2"}, {ID: "3", Label: "3"}})
	if cur, _ := l.Current(); cur.ID != "2" {
		t.Fatalf("expected cursor kept on 2, got %q", cur.ID)
	}
}

func TestCursorMovement(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	if !l.MoveCursorPageDown(2) || l.Cursor != 2 {
		t.Fatalf("expected cursor 2 after page down, got %d", l.Cursor)
	}
	if !l.MoveCursorEnd() || l.Cursor != 4 {
		t.Fatalf("expected cursor at end, got %d", l.Cursor)
	}
	if l.MoveCursorBy(1) {
		t.Fatalf("expected no movement past end")
	}
	if !l.MoveCursorPageUp(3) || l.Cursor != 1 {
		t.Fatalf("expected cursor 1 after page up, got %d", l.Cursor)
	}
	if !l.MoveCursorHome() || l.Cursor != 0 {
		t.Fatalf("expected cursor home, got %d", l.Cursor)
	}

	empty := newTestList()
	if empty.MoveCursorEnd() {
		t.Fatalf("expected no movement for empty list")
	}
}

func TestVisibleFollowsCursor(t *testing.T) {
	l := newTestList("a", "b", "c", "d", "e")
	l.Cursor = 4
	visible := l.Visible(2)
	if len(visible) != 2 || visible[1].ID != "e" {
		t.Fatalf("expected last two items visible, got %#v", visible)
	}
	l.Cursor = 0
	visible = l.Visible(2)
	if visible[0].ID != "a" || l.ViewportOffset != 0 {
		t.Fatalf("expected viewport back at top, got offset %d", l.ViewportOffset)
	}
	if got := l.Visible(0); len(got) != 5 {
		t.Fatalf("expected all items without a limit, got %d", len(got))
	}
}
