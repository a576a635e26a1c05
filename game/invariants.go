package game

import (
	"fmt"

	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/engine"
)

type namedRoster struct {
	name string
	r    *roster
}

func (g *Game) rosters() []namedRoster {
	return []namedRoster{
		{"missing", g.missing},
		{"following", g.following},
		{"delivered", g.delivered},
	}
}

// CheckInvariants verifies roster membership against the world
// Returned errors wrap ErrInvariant
func (g *Game) CheckInvariants() error {
	if err := g.checkRosters(); err != nil {
		return err
	}

	for _, e := range g.delivered.order {
		if g.world.Exists(e) {
			return fmt.Errorf("delivered fish %d still on the grid: %w", e, ErrInvariant)
		}
	}

	if _, ok := g.world.Position(g.player); !ok {
		return fmt.Errorf("player is not on the grid: %w", ErrInvariant)
	}
	if _, ok := g.world.Position(g.home); !ok {
		return fmt.Errorf("home is not on the grid: %w", ErrInvariant)
	}
	return nil
}

// checkRosters covers everything Tick must verify before touching state:
// roster kinds, disjoint membership and the fish total
func (g *Game) checkRosters() error {
	if err := g.checkRosterKinds(); err != nil {
		return err
	}

	owner := make(map[engine.Entity]string, g.total)
	for _, set := range g.rosters() {
		for _, e := range set.r.order {
			if prev, dup := owner[e]; dup {
				return fmt.Errorf("fish %d in both %s and %s: %w", e, prev, set.name, ErrInvariant)
			}
			owner[e] = set.name
		}
	}
	if len(owner) != g.total {
		return fmt.Errorf("rosters hold %d fish, want %d: %w", len(owner), g.total, ErrInvariant)
	}
	return nil
}

// checkRosterKinds makes sure missing and following only hold placed friend fish
func (g *Game) checkRosterKinds() error {
	for _, set := range g.rosters()[:2] {
		for _, e := range set.r.order {
			if kind := g.world.Kind(e); kind != components.KindFriendFish {
				return fmt.Errorf("%s holds %s entity %d: %w", set.name, kind, e, ErrInvariant)
			}
			if !g.world.Fish.Has(e) {
				return fmt.Errorf("%s fish %d has no fish state: %w", set.name, e, ErrInvariant)
			}
			if _, ok := g.world.Position(e); !ok {
				return fmt.Errorf("%s fish %d is not on the grid: %w", set.name, e, ErrInvariant)
			}
		}
	}
	return nil
}
