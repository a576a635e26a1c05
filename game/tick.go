package game

import (
	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/engine"
)

// Tick advances the simulation by exactly one step
// Steps run in a fixed order; each collects its decisions before applying them
// Corrupt rosters abort the tick before any state changes
// The grid-side checks run after step 9 and report a tick that has already been applied
func (g *Game) Tick() (TickReport, error) {
	if err := g.checkRosters(); err != nil {
		g.logger.Error("tick aborted", "tick", g.ticks+1, "error", err)
		return TickReport{}, err
	}

	var report TickReport
	scoreBefore := g.score

	g.scheduleHearts(&report) // 1
	g.discover(&report)       // 2
	g.wanderMissing(&report)  // 3
	g.homecoming(&report)     // 4
	g.eatHearts(&report)      // 5
	g.fatigue(&report)        // 6
	g.deliver(&report)        // 7
	g.repositionFollowers()   // 8
	g.animate(&report)        // 9

	report.Tick = g.ticks
	report.ScoreDelta = g.score - scoreBefore
	report.GameOver = g.IsGameOver()

	if err := g.CheckInvariants(); err != nil {
		g.logger.Error("invariant check failed", "tick", g.ticks, "error", err)
		return report, err
	}

	if !report.Quiet() {
		g.logger.Debug("tick",
			"tick", report.Tick,
			"found", len(report.Found),
			"lost", len(report.Lost),
			"delivered", len(report.Delivered),
			"hearts", report.HeartsCollected,
			"score", g.score,
		)
	}
	return report, nil
}

// scheduleHearts advances time and spawns a heart batch when it is due
func (g *Game) scheduleHearts(report *TickReport) {
	g.ticks++
	if g.ticks != g.nextHeartTick {
		return
	}

	g.nextHeartTick += randBetween(g.rng, g.rules.HeartIntervalMin, g.rules.HeartIntervalMax)
	count := randBetween(g.rng, g.rules.HeartBatchMin, g.rules.HeartBatchMax)

	for i := 0; i < count; i++ {
		heart := g.world.Spawn(components.KindHeart)
		if err := g.world.InsertAtRandomEmptyCell(heart); err != nil {
			g.world.Remove(heart)
			report.HeartBatchShort = true
			g.logger.Warn("heart batch cut short",
				"tick", g.ticks,
				"spawned", report.HeartsSpawned,
				"wanted", count,
				"error", err,
			)
			break
		}
		report.HeartsSpawned++
	}
}

// discover moves missing fish on the player's cell to the end of following and collects hearts there
func (g *Game) discover(report *TickReport) {
	pos := g.PlayerPosition()

	var found, hearts []engine.Entity
	for _, e := range g.world.EntitiesAt(pos.X, pos.Y) {
		switch {
		case e == g.player:
		case g.missing.Has(e):
			found = append(found, e)
		case g.world.Kind(e) == components.KindHeart:
			hearts = append(hearts, e)
		}
	}

	for _, e := range found {
		fish, _ := g.world.Fish.Get(e)
		fish.FollowCounter = 0
		g.world.Fish.Set(e, fish)

		g.missing.Delete(e)
		g.following.Push(e)

		award := g.rules.Award(fish.Color)
		g.score += award
		report.Found = append(report.Found, FishEvent{Entity: e, Color: fish.Color, Award: award})
		g.logger.Debug("fish found", "color", components.ColorName(fish.Color), "award", award, "follow_index", g.following.Len()-1)
	}

	for _, e := range hearts {
		g.world.Remove(e)
		g.score += g.rules.HeartValue
		report.HeartsCollected++
	}
}

// wanderMissing lets every missing fish try one independent move
func (g *Game) wanderMissing(report *TickReport) {
	home := g.HomePosition()
	for _, e := range g.missing.Items() {
		from, ok := g.world.Position(e)
		if !ok {
			continue
		}
		fish, _ := g.world.Fish.Get(e)
		if dir, move := g.wander(fish, from, home); move && g.world.Move(e, dir) {
			report.FishWandered++
		}
	}
}

// homecoming delivers friend fish that reached home on their own
func (g *Game) homecoming(report *TickReport) {
	home := g.HomePosition()

	var arrived []engine.Entity
	for _, e := range g.world.EntitiesAt(home.X, home.Y) {
		if e == g.player || g.world.Kind(e) != components.KindFriendFish {
			continue
		}
		if g.rules.StrictHomecoming && !g.missing.Has(e) {
			continue
		}
		arrived = append(arrived, e)
	}

	for _, e := range arrived {
		g.deliverFish(e, true, report)
	}
}

// eatHearts removes hearts sharing a cell with a missing fish, without scoring
func (g *Game) eatHearts(report *TickReport) {
	var eaten []engine.Entity
	seen := make(map[engine.Entity]bool)
	for _, e := range g.missing.Items() {
		pos, ok := g.world.Position(e)
		if !ok {
			continue
		}
		for _, other := range g.world.EntitiesAt(pos.X, pos.Y) {
			if g.world.Kind(other) == components.KindHeart && !seen[other] {
				seen[other] = true
				eaten = append(eaten, other)
			}
		}
	}

	for _, heart := range eaten {
		g.world.Remove(heart)
		report.HeartsEaten++
	}
}

// fatigue ages every follower and sends tired ones back to missing with a refund
// The follower at index 0 never tires
func (g *Game) fatigue(report *TickReport) {
	var tired []engine.Entity
	for i, e := range g.following.Items() {
		fish, _ := g.world.Fish.Get(e)
		fish.FollowCounter++
		g.world.Fish.Set(e, fish)
		if i >= 1 && fish.FollowCounter > g.rules.FatigueThreshold {
			tired = append(tired, e)
		}
	}

	for _, e := range tired {
		fish, _ := g.world.Fish.Get(e)
		fish.FollowCounter = 0
		g.world.Fish.Set(e, fish)

		g.following.Delete(e)
		g.missing.Push(e)

		refund := g.rules.Award(fish.Color)
		g.score -= refund
		report.Lost = append(report.Lost, FishEvent{Entity: e, Color: fish.Color, Award: refund})
		g.logger.Debug("fish lost", "color", components.ColorName(fish.Color), "refund", refund)
	}
}

// deliver brings every follower home when the player stands on home
func (g *Game) deliver(report *TickReport) {
	if g.PlayerPosition() != g.HomePosition() {
		return
	}
	for _, e := range g.following.Items() {
		g.deliverFish(e, false, report)
	}
	g.following.Clear()
}

// repositionFollowers puts follower i where the player stood i+1 moves ago
// Followers beyond the recorded trail stay where they are
func (g *Game) repositionFollowers() {
	trail, ok := g.world.Trails.Get(g.player)
	if !ok {
		return
	}
	for i, e := range g.following.Items() {
		pos, ok := trail.At(i + 1)
		if !ok {
			break
		}
		if err := g.world.Place(e, pos.X, pos.Y); err != nil {
			g.logger.Debug("follower not repositioned", "entity", e, "error", err)
		}
	}
}

func (g *Game) animate(report *TickReport) {
	anim := g.world.TickSelfAnimating()
	report.RocksMoved = anim.RocksMoved
	report.RocksRemoved = anim.RocksRemoved
	report.SnailsMoved = anim.SnailsMoved
}

// deliverFish takes e off the grid and out of missing/following into delivered
func (g *Game) deliverFish(e engine.Entity, accidental bool, report *TickReport) {
	fish, _ := g.world.Fish.Get(e)

	g.missing.Delete(e)
	g.following.Delete(e)
	g.world.Remove(e)
	g.delivered.Push(e)
	g.homeColors = append(g.homeColors, fish.Color)

	report.Delivered = append(report.Delivered, FishEvent{Entity: e, Color: fish.Color, Accidental: accidental})
	g.logger.Debug("fish home", "color", components.ColorName(fish.Color), "accidental", accidental)
}

// randBetween draws uniformly from [lo, hi]
func randBetween(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
