package game

import (
	"slices"

	"github.com/lixenwraith/fishgrid/engine"
)

// roster is an ordered set of fish handles
// Order is insertion order; membership lookups go through the index
type roster struct {
	order []engine.Entity
	index map[engine.Entity]struct{}
}

func newRoster(capacity int) *roster {
	return &roster{
		order: make([]engine.Entity, 0, capacity),
		index: make(map[engine.Entity]struct{}, capacity),
	}
}

func (r *roster) Len() int { return len(r.order) }

func (r *roster) Has(e engine.Entity) bool {
	_, ok := r.index[e]
	return ok
}

// Push appends e, returns false if it is already a member
func (r *roster) Push(e engine.Entity) bool {
	if r.Has(e) {
		return false
	}
	r.index[e] = struct{}{}
	r.order = append(r.order, e)
	return true
}

// Delete removes e keeping the order of the rest
func (r *roster) Delete(e engine.Entity) bool {
	if !r.Has(e) {
		return false
	}
	delete(r.index, e)
	if i := slices.Index(r.order, e); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return true
}

// Items returns a copy safe to iterate while the roster changes
func (r *roster) Items() []engine.Entity {
	return slices.Clone(r.order)
}

func (r *roster) Clear() {
	r.order = r.order[:0]
	clear(r.index)
}
