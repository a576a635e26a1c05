package game

import "github.com/lixenwraith/fishgrid/components"

// MovePlayer steps the player one cell, honoring passability
// A successful move is recorded on the trail followers walk along; moves after game over are ignored
func (g *Game) MovePlayer(dir components.Direction) bool {
	if g.IsGameOver() || !g.world.Move(g.player, dir) {
		return false
	}

	trail, _ := g.world.Trails.Get(g.player)
	trail.Push(g.PlayerPosition())
	g.world.Trails.Set(g.player, trail)
	return true
}

// HandleClick removes every rock in the clicked cell and returns how many went
// Clicks outside the grid or on rock-free cells do nothing
func (g *Game) HandleClick(x, y int) int {
	crushed := 0
	for _, e := range g.world.EntitiesAt(x, y) {
		if g.world.Kind(e) == components.KindRock {
			g.world.Remove(e)
			crushed++
		}
	}
	if crushed > 0 {
		g.logger.Debug("rocks crushed", "x", x, "y", y, "count", crushed)
	}
	return crushed
}
