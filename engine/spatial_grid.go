package engine

import "github.com/lixenwraith/fishgrid/constants"

// Cell represents a single grid cell containing a fixed number of entities
// It is a value type designed for contiguous memory layout
type Cell struct {
	Count    uint8
	_        [7]byte // Explicit padding to ensure 8-byte alignment for Entities
	Entities [constants.MaxEntitiesPerCell]Entity
}

// SpatialGrid is a dense 2D grid for fast spatial queries without allocation
type SpatialGrid struct {
	Width  int
	Height int
	Cells  []Cell // 1D array: index = y*Width + x
}

// NewSpatialGrid creates a new grid with the specified dimensions
func NewSpatialGrid(width, height int) *SpatialGrid {
	return &SpatialGrid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// InBounds reports whether (x, y) is a valid cell
func (g *SpatialGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Add inserts an entity into the grid at (x, y)
// O(1), Returns false if bounds invalid or cell full
func (g *SpatialGrid) Add(e Entity, x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	cell := &g.Cells[y*g.Width+x]
	if int(cell.Count) < constants.MaxEntitiesPerCell {
		cell.Entities[cell.Count] = e
		cell.Count++
		return true
	}
	return false
}

// Remove deletes an entity from the grid at (x, y)
// O(k) where k <= MaxEntitiesPerCell. Shifts later entries down so the
// cell keeps arrival order
func (g *SpatialGrid) Remove(e Entity, x, y int) {
	if !g.InBounds(x, y) {
		return
	}

	cell := &g.Cells[y*g.Width+x]
	for i := uint8(0); i < cell.Count; i++ {
		if cell.Entities[i] == e {
			copy(cell.Entities[i:cell.Count], cell.Entities[i+1:cell.Count])
			cell.Count--
			cell.Entities[cell.Count] = 0
			return
		}
	}
}

// GetAllAt returns a slice view of entities at (x, y)
// INTERNAL USE ONLY - callers must copy before mutating the grid
// O(1), returns nil if empty or out of bounds
func (g *SpatialGrid) GetAllAt(x, y int) []Entity {
	if !g.InBounds(x, y) {
		return nil
	}

	cell := &g.Cells[y*g.Width+x]
	if cell.Count == 0 {
		return nil
	}
	return cell.Entities[:cell.Count]
}

// HasAny returns true if there is at least one entity at (x, y). O(1)
func (g *SpatialGrid) HasAny(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Cells[y*g.Width+x].Count > 0
}

// EmptyCells returns the indices of all cells holding no entity
func (g *SpatialGrid) EmptyCells() []int {
	empty := make([]int, 0, len(g.Cells))
	for i := range g.Cells {
		if g.Cells[i].Count == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

// Clear removes all entities from all cells
func (g *SpatialGrid) Clear() {
	for i := range g.Cells {
		g.Cells[i].Count = 0
	}
}
