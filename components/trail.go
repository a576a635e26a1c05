package components

// TrailComponent records recent positions of the entity it is attached to
// Positions[0] is the current position, older positions follow
type TrailComponent struct {
	Positions []PositionComponent
	Limit     int
}

// Push records a new current position, dropping the oldest beyond Limit
func (t *TrailComponent) Push(p PositionComponent) {
	t.Positions = append(t.Positions, PositionComponent{})
	copy(t.Positions[1:], t.Positions)
	t.Positions[0] = p
	if t.Limit > 0 && len(t.Positions) > t.Limit {
		t.Positions = t.Positions[:t.Limit]
	}
}

// At returns the position i steps back, or false if the trail is shorter
func (t *TrailComponent) At(i int) (PositionComponent, bool) {
	if i < 0 || i >= len(t.Positions) {
		return PositionComponent{}, false
	}
	return t.Positions[i], true
}
