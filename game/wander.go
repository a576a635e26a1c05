package game

import "github.com/lixenwraith/fishgrid/components"

// WanderFunc decides the autonomous move of a missing fish for one tick
// Returning false keeps the fish where it is
type WanderFunc func(fish components.FishComponent, from, home components.PositionComponent) (components.Direction, bool)

// randomWander moves scared fish more often, in a uniformly random direction
func (g *Game) randomWander(fish components.FishComponent, _, _ components.PositionComponent) (components.Direction, bool) {
	chance := g.rules.CalmMoveChance
	if fish.EasilyScared {
		chance = g.rules.ScaredMoveChance
	}
	if g.rng.Float64() >= chance {
		return components.DirNone, false
	}
	return components.Directions[g.rng.IntN(len(components.Directions))], true
}

// TowardHome steps along x first, then y, until the fish stands on home
func TowardHome(_ components.FishComponent, from, home components.PositionComponent) (components.Direction, bool) {
	switch {
	case from.X < home.X:
		return components.DirRight, true
	case from.X > home.X:
		return components.DirLeft, true
	case from.Y < home.Y:
		return components.DirDown, true
	case from.Y > home.Y:
		return components.DirUp, true
	}
	return components.DirNone, false
}

// StayPut never moves a fish
func StayPut(components.FishComponent, components.PositionComponent, components.PositionComponent) (components.Direction, bool) {
	return components.DirNone, false
}
