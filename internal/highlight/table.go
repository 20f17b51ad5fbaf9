package highlight

import "sort"

// Table is the highlight definition table. Id 0 always exists and
// mirrors the default colours.
type Table struct {
	DefaultFg Color
	DefaultBg Color
	DefaultSp Color

	defs   map[int]Highlight
	groups map[Group]int
}

// NewTable returns a table holding only id 0.
func NewTable() *Table {
	t := &Table{
		DefaultFg: Black,
		DefaultBg: White,
		DefaultSp: Red,
		defs:      make(map[int]Highlight),
		groups:    make(map[Group]int),
	}
	t.defs[0] = Highlight{}
	t.patchDefault()
	return t
}

// Get returns the raw definition for id.
func (t *Table) Get(id int) (Highlight, bool) {
	hl, ok := t.defs[id]
	return hl, ok
}

// Define inserts or overwrites id.
func (t *Table) Define(id int, hl Highlight) {
	t.defs[id] = hl
	if id == 0 {
		t.patchDefault()
	}
}

// SetDefaults updates the default colours and id 0 to match.
func (t *Table) SetDefaults(fg, bg, sp Color) {
	t.DefaultFg = fg
	t.DefaultBg = bg
	t.DefaultSp = sp
	t.patchDefault()
}

func (t *Table) patchDefault() {
	hl := t.defs[0]
	fg, bg, sp := t.DefaultFg, t.DefaultBg, t.DefaultSp
	hl.Foreground = &fg
	hl.Background = &bg
	hl.Special = &sp
	t.defs[0] = hl
}

// SetGroup points role g at highlight id.
func (t *Table) SetGroup(g Group, id int) {
	t.groups[g] = id
}

// Alias applies an hl_group_set event. It reports whether name is one of
// the recognised groups.
func (t *Table) Alias(name string, id int) bool {
	roles := RolesFor(name)
	for _, g := range roles {
		t.SetGroup(g, id)
	}
	return len(roles) > 0
}

// GroupID returns the highlight id aliased to g.
func (t *Table) GroupID(g Group) (int, bool) {
	id, ok := t.groups[g]
	return id, ok
}

// Group returns the definition aliased to g.
func (t *Table) Group(g Group) (Highlight, bool) {
	id, ok := t.groups[g]
	if !ok {
		return Highlight{}, false
	}
	return t.Get(id)
}

// GroupFg returns the role's foreground or the default foreground.
func (t *Table) GroupFg(g Group) Color {
	if hl, ok := t.Group(g); ok && hl.Foreground != nil {
		return *hl.Foreground
	}
	return t.DefaultFg
}

// GroupBg returns the role's background or the default background.
func (t *Table) GroupBg(g Group) Color {
	if hl, ok := t.Group(g); ok && hl.Background != nil {
		return *hl.Background
	}
	return t.DefaultBg
}

// Resolve applies defaults and reverse to id. Unknown ids resolve like
// id 0.
func (t *Table) Resolve(id int) Resolved {
	hl, ok := t.defs[id]
	if !ok {
		hl = t.defs[0]
	}
	r := Resolved{
		Fg:            t.DefaultFg,
		Bg:            t.DefaultBg,
		Sp:            t.DefaultSp,
		Italic:        hl.Italic,
		Bold:          hl.Bold,
		Underline:     hl.Underline,
		Undercurl:     hl.Undercurl,
		Strikethrough: hl.Strikethrough,
	}
	if hl.Foreground != nil {
		r.Fg = *hl.Foreground
	}
	if hl.Background != nil {
		r.Bg = *hl.Background
	}
	if hl.Special != nil {
		r.Sp = *hl.Special
	}
	if hl.Reverse {
		r.Fg, r.Bg = r.Bg, r.Fg
	}
	return r
}

// IDs returns the defined ids in ascending order.
func (t *Table) IDs() []int {
	ids := make([]int, 0, len(t.defs))
	for id := range t.defs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len reports the number of definitions including id 0.
func (t *Table) Len() int {
	return len(t.defs)
}
