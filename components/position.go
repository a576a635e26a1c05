package components

// PositionComponent is the tile an entity occupies
type PositionComponent struct {
	X, Y int
}

// Add returns the position one step along dir
func (p PositionComponent) Add(dir Direction) PositionComponent {
	dx, dy := dir.Delta()
	return PositionComponent{X: p.X + dx, Y: p.Y + dy}
}
