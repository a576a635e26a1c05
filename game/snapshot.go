package game

import (
	"slices"

	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/engine"
)

// EntityView is a read-only copy of one placed entity
type EntityView struct {
	ID   engine.Entity
	Kind components.Kind
	X, Y int

	Color       int // -1 unless fish
	FollowIndex int // -1 unless following
	Scared      bool
	Falling     bool
	Shade       int
}

// Snapshot is a copy of everything a renderer or observer may read
// Entities are listed in creation order
type Snapshot struct {
	Width, Height int

	Tick          int
	NextHeartTick int
	Score         int
	Missing       int
	Following     int
	Delivered     int
	Total         int
	GameOver      bool

	Player     components.PositionComponent
	Home       components.PositionComponent
	HomeColors []int // Colors of delivered fish in arrival order

	Entities []EntityView
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Width:         g.world.Width(),
		Height:        g.world.Height(),
		Tick:          g.ticks,
		NextHeartTick: g.nextHeartTick,
		Score:         g.score,
		Missing:       g.missing.Len(),
		Following:     g.following.Len(),
		Delivered:     g.delivered.Len(),
		Total:         g.total,
		GameOver:      g.IsGameOver(),
		Player:        g.PlayerPosition(),
		Home:          g.HomePosition(),
		HomeColors:    slices.Clone(g.homeColors),
	}

	followIndex := make(map[engine.Entity]int, g.following.Len())
	for i, e := range g.following.order {
		followIndex[e] = i
	}

	for _, e := range g.world.Entities() {
		pos, ok := g.world.Position(e)
		if !ok {
			continue
		}
		view := EntityView{
			ID:          e,
			Kind:        g.world.Kind(e),
			X:           pos.X,
			Y:           pos.Y,
			Color:       -1,
			FollowIndex: -1,
		}
		if fish, ok := g.world.Fish.Get(e); ok {
			view.Color = fish.Color
			view.Scared = fish.EasilyScared
		}
		if idx, ok := followIndex[e]; ok {
			view.FollowIndex = idx
		}
		if rock, ok := g.world.Rocks.Get(e); ok {
			view.Falling = rock.Falling
			view.Shade = rock.Shade
		}
		snap.Entities = append(snap.Entities, view)
	}
	return snap
}

// Count returns how many placed entities of a kind the snapshot holds
func (s Snapshot) Count(kind components.Kind) int {
	n := 0
	for _, v := range s.Entities {
		if v.Kind == kind {
			n++
		}
	}
	return n
}
