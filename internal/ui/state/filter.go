package state

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetFilter narrows the list to items matching every term of query. The
// cursor stays on the selected item while it still matches; clearing the
// filter returns it to the item selected before filtering began.
func (l *List) SetFilter(query string) {
	wasFiltering := strings.TrimSpace(l.Filter) != ""
	filtering := strings.TrimSpace(query) != ""

	var keep string
	if cur, ok := l.Current(); ok {
		keep = cur.ID
	}
	if filtering && !wasFiltering {
		l.LastID = keep
	}
	if !filtering && wasFiltering {
		keep = l.LastID
		l.LastID = ""
	}

	l.Filter = query
	l.applyFilter()
	if idx := l.IndexOf(keep); idx >= 0 {
		l.Cursor = idx
	} else {
		l.Cursor = 0
	}
}

func (l *List) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = min(max(l.Cursor, 0), len(l.Items)-1)
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterItems keeps the items matching every whitespace separated term.
// A term of digits names an id exactly. A term starting with '#' is a
// colour prefix. Any other term matches an attribute name fuzzily, or a
// colour prefix when it is made of hex digits.
func FilterItems(items []Item, query string) []Item {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return CloneItems(items)
	}
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if matchesAll(item, terms) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matchesAll(item Item, terms []string) bool {
	for _, term := range terms {
		if !matchesTerm(item, term) {
			return false
		}
	}
	return true
}

func matchesTerm(item Item, term string) bool {
	switch {
	case isDigits(term):
		return item.ID == term
	case strings.HasPrefix(term, "#"):
		return colorPrefix(item.Colors, strings.TrimPrefix(term, "#"))
	}
	for _, attr := range item.Attrs {
		if fuzzy.MatchFold(term, attr) {
			return true
		}
	}
	return isHex(term) && colorPrefix(item.Colors, term)
}

func colorPrefix(colors []string, prefix string) bool {
	for _, c := range colors {
		if strings.HasPrefix(strings.ToLower(c), prefix) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	return strings.Trim(s, "0123456789") == ""
}

func isHex(s string) bool {
	return strings.Trim(s, "0123456789abcdef") == ""
}
