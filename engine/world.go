package engine

import (
	"fmt"

	"github.com/lixenwraith/fishgrid/components"
)

// World owns every entity, its components and the spatial index
// Positions are only changed through Place/Move/Insert so the index stays consistent
type World struct {
	width, height int
	rng           Rand
	nextEntityID  Entity

	Kinds     *Store[components.Kind]
	positions *Store[components.PositionComponent]
	Fish      *Store[components.FishComponent]
	Rocks     *Store[components.RockComponent]
	Snails    *Store[components.SnailComponent]
	Trails    *Store[components.TrailComponent]

	grid *SpatialGrid
}

// NewWorld creates an empty world of fixed size using rng for random placement
func NewWorld(width, height int, rng Rand) *World {
	return &World{
		width:        width,
		height:       height,
		rng:          rng,
		nextEntityID: 1,
		Kinds:        NewStore[components.Kind](),
		positions:    NewStore[components.PositionComponent](),
		Fish:         NewStore[components.FishComponent](),
		Rocks:        NewStore[components.RockComponent](),
		Snails:       NewStore[components.SnailComponent](),
		Trails:       NewStore[components.TrailComponent](),
		grid:         NewSpatialGrid(width, height),
	}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// InBounds reports whether (x, y) lies on the grid
func (w *World) InBounds(x, y int) bool {
	return w.grid.InBounds(x, y)
}

// Spawn registers a new entity of the given kind; it is not on the grid yet
func (w *World) Spawn(kind components.Kind) Entity {
	e := w.nextEntityID
	w.nextEntityID++
	w.Kinds.Set(e, kind)
	return e
}

// Kind returns the kind of e, KindNone if unknown
func (w *World) Kind(e Entity) components.Kind {
	kind, _ := w.Kinds.Get(e)
	return kind
}

// Exists reports whether e is registered
func (w *World) Exists(e Entity) bool {
	return w.Kinds.Has(e)
}

// Entities returns every registered entity in creation order
func (w *World) Entities() []Entity {
	return w.Kinds.Entities()
}

// Position returns the cell e occupies, false if it is not on the grid
func (w *World) Position(e Entity) (components.PositionComponent, bool) {
	return w.positions.Get(e)
}

// Positions exposes the position store for queries; mutate positions through Place and Move
func (w *World) Positions() QueryableStore {
	return w.positions
}

// EntitiesAt returns a copy of the entities at (x, y)
func (w *World) EntitiesAt(x, y int) []Entity {
	view := w.grid.GetAllAt(x, y)
	result := make([]Entity, len(view))
	copy(result, view)
	return result
}

// InsertAtRandomEmptyCell places e in a uniformly chosen empty cell
func (w *World) InsertAtRandomEmptyCell(e Entity) error {
	if !w.Exists(e) {
		return fmt.Errorf("insert entity %d: %w", e, ErrNoEntity)
	}

	empty := w.grid.EmptyCells()
	if len(empty) == 0 {
		return fmt.Errorf("insert %s entity %d: %w", w.Kind(e), e, ErrGridFull)
	}

	idx := empty[w.rng.IntN(len(empty))]
	return w.Place(e, idx%w.width, idx/w.width)
}

// Place puts e at (x, y) regardless of passability, moving it if already placed
func (w *World) Place(e Entity, x, y int) error {
	if !w.Exists(e) {
		return fmt.Errorf("place entity %d: %w", e, ErrNoEntity)
	}
	if !w.grid.InBounds(x, y) {
		return fmt.Errorf("place entity %d at (%d,%d): %w", e, x, y, ErrOutOfBounds)
	}

	old, placed := w.positions.Get(e)
	if placed {
		if old.X == x && old.Y == y {
			return nil
		}
		w.grid.Remove(e, old.X, old.Y)
	}

	if !w.grid.Add(e, x, y) {
		if placed {
			w.grid.Add(e, old.X, old.Y)
		}
		return fmt.Errorf("place entity %d at (%d,%d): %w", e, x, y, ErrCellFull)
	}

	w.positions.Set(e, components.PositionComponent{X: x, Y: y})
	return nil
}

// CanEnter reports whether an entity of the mover kind may step into (x, y)
// Rocks block everything, snails block everything that moves on its own
func (w *World) CanEnter(mover components.Kind, x, y int) bool {
	if !w.grid.InBounds(x, y) {
		return false
	}

	for _, other := range w.grid.GetAllAt(x, y) {
		switch w.Kind(other) {
		case components.KindRock:
			return false
		case components.KindSnail:
			switch mover {
			case components.KindPlayer, components.KindFriendFish, components.KindRock, components.KindSnail:
				return false
			}
		}
	}
	return true
}

// Move steps e one cell in dir if the target can be entered
// Returns false and leaves e in place otherwise
func (w *World) Move(e Entity, dir components.Direction) bool {
	pos, ok := w.positions.Get(e)
	if !ok || dir == components.DirNone {
		return false
	}

	next := pos.Add(dir)
	if !w.CanEnter(w.Kind(e), next.X, next.Y) {
		return false
	}
	return w.Place(e, next.X, next.Y) == nil
}

// Remove takes e off the grid and drops all of its components
func (w *World) Remove(e Entity) {
	if pos, ok := w.positions.Get(e); ok {
		w.grid.Remove(e, pos.X, pos.Y)
	}
	w.positions.Remove(e)
	w.Fish.Remove(e)
	w.Rocks.Remove(e)
	w.Snails.Remove(e)
	w.Trails.Remove(e)
	w.Kinds.Remove(e)
}

// CountKind returns the number of registered entities of a kind
func (w *World) CountKind(kind components.Kind) int {
	n := 0
	for _, e := range w.Kinds.Entities() {
		if w.Kind(e) == kind {
			n++
		}
	}
	return n
}
