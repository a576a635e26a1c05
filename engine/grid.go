package engine

import "errors"

var (
	// ErrGridFull is returned when no empty cell is left for a random placement
	ErrGridFull = errors.New("no empty cell left")

	// ErrOutOfBounds is returned when a placement targets a cell outside the grid
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrCellFull is returned when a cell already holds MaxEntitiesPerCell entities
	ErrCellFull = errors.New("cell is full")

	// ErrNoEntity is returned for operations on an entity the world does not know
	ErrNoEntity = errors.New("no such entity")
)

// Grid is the storage contract the simulation drives
// Bounds are fixed at construction
type Grid interface {
	Width() int
	Height() int

	// EntitiesAt returns a copy of the entities in the cell, empty when out of bounds
	EntitiesAt(x, y int) []Entity

	// InsertAtRandomEmptyCell places e in a uniformly chosen cell holding no entity
	InsertAtRandomEmptyCell(e Entity) error

	// Remove takes e off the grid and forgets it
	Remove(e Entity)

	// TickSelfAnimating advances entities that move under their own logic
	TickSelfAnimating() AnimationReport
}

// AnimationReport summarizes one self-animation pass
type AnimationReport struct {
	RocksMoved   int
	RocksRemoved int
	SnailsMoved  int
	Removed      []Entity
}

var _ Grid = (*World)(nil)
