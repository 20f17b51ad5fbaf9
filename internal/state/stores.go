package state

import (
	"sort"

	"github.com/atomicstack/nvim-ui-mirror/internal/grid"
	"github.com/atomicstack/nvim-ui-mirror/internal/window"
)

type gridStore struct {
	entries map[int]*grid.Grid
}

func newGridStore() *gridStore {
	return &gridStore{entries: make(map[int]*grid.Grid)}
}

func (s *gridStore) get(id int) (*grid.Grid, bool) {
	g, ok := s.entries[id]
	return g, ok
}

func (s *gridStore) put(g *grid.Grid) {
	s.entries[g.ID] = g
}

func (s *gridStore) remove(id int) bool {
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

func (s *gridStore) ids() []int {
	return sortedKeys(s.entries)
}

// each visits grids in id order so repaint order is stable.
func (s *gridStore) each(fn func(*grid.Grid)) {
	for _, id := range s.ids() {
		fn(s.entries[id])
	}
}

func (s *gridStore) len() int {
	return len(s.entries)
}

type windowStore struct {
	entries map[int]*window.Window
}

func newWindowStore() *windowStore {
	return &windowStore{entries: make(map[int]*window.Window)}
}

func (s *windowStore) get(grid int) (*window.Window, bool) {
	w, ok := s.entries[grid]
	return w, ok
}

func (s *windowStore) put(w *window.Window) {
	s.entries[w.GridID] = w
}

func (s *windowStore) remove(grid int) (*window.Window, bool) {
	w, ok := s.entries[grid]
	if ok {
		delete(s.entries, grid)
	}
	return w, ok
}

func (s *windowStore) ids() []int {
	return sortedKeys(s.entries)
}

func sortedKeys[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
