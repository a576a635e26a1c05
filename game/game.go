// Package game is the turn-based simulation core
// A Game owns its world exclusively and advances it one tick per call
package game

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/config"
	"github.com/lixenwraith/fishgrid/constants"
	"github.com/lixenwraith/fishgrid/engine"
)

// Rand is the random source threaded through the game and its world
type Rand = engine.Rand

// Option customizes a Game at construction
type Option func(*Game)

// WithWander replaces the random wandering policy of missing fish
func WithWander(fn WanderFunc) Option {
	return func(g *Game) {
		if fn != nil {
			g.wander = fn
		}
	}
}

// WithLogger sets the logger, defaults to discarding
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Game is the simulation aggregate
// Every friend fish is in exactly one of missing, following or delivered
type Game struct {
	world  *engine.World
	rules  config.Rules
	rng    Rand
	wander WanderFunc
	logger *slog.Logger

	home   engine.Entity
	player engine.Entity
	total  int

	missing    *roster
	following  *roster // Discovery order, index 0 trails the player directly
	delivered  *roster
	homeColors []int

	score         int
	ticks         int
	nextHeartTick int
}

// New builds a fresh game: home, rocks, snails, the player on home and one missing fish per friend color
func New(grid config.Grid, rules config.Rules, rng Rand, opts ...Option) (*Game, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("new game: grid %dx%d: %w", grid.Width, grid.Height, config.ErrInvalid)
	}
	if rng == nil {
		return nil, fmt.Errorf("new game: nil random source: %w", config.ErrInvalid)
	}

	friends := constants.FishColorCount - 1
	g := &Game{
		world:         engine.NewWorld(grid.Width, grid.Height, rng),
		rules:         rules,
		rng:           rng,
		logger:        slog.New(slog.DiscardHandler),
		missing:       newRoster(friends),
		following:     newRoster(friends),
		delivered:     newRoster(friends),
		nextHeartTick: rules.FirstHeartTick,
	}
	g.wander = g.randomWander
	for _, opt := range opts {
		opt(g)
	}

	if err := g.populate(grid); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.total = g.missing.Len()

	g.logger.Info("game created",
		"width", grid.Width,
		"height", grid.Height,
		"rocks", grid.Rocks,
		"snails", grid.Snails,
		"fish", g.total,
		"strict_homecoming", rules.StrictHomecoming,
	)
	return g, nil
}

func (g *Game) populate(grid config.Grid) error {
	w := g.world

	g.home = w.Spawn(components.KindHome)
	if err := w.InsertAtRandomEmptyCell(g.home); err != nil {
		return fmt.Errorf("home: %w", err)
	}

	for i := 0; i < grid.Rocks; i++ {
		rock := w.Spawn(components.KindRock)
		if err := w.InsertAtRandomEmptyCell(rock); err != nil {
			return fmt.Errorf("rock %d: %w", i, err)
		}
		w.Rocks.Set(rock, components.RockComponent{
			Falling: g.rng.Float64() < g.rules.FallingRockChance,
			Shade:   g.rng.IntN(constants.RockShadeCount),
		})
	}

	for i := 0; i < grid.Snails; i++ {
		snail := w.Spawn(components.KindSnail)
		if err := w.InsertAtRandomEmptyCell(snail); err != nil {
			return fmt.Errorf("snail %d: %w", i, err)
		}
		heading := 1
		if g.rng.IntN(2) == 0 {
			heading = -1
		}
		w.Snails.Set(snail, components.SnailComponent{
			Heading:  heading,
			Interval: g.rules.SnailCrawlInterval,
			Cooldown: g.rules.SnailCrawlInterval,
		})
	}

	homePos, _ := w.Position(g.home)
	g.player = w.Spawn(components.KindPlayer)
	if err := w.Place(g.player, homePos.X, homePos.Y); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	w.Fish.Set(g.player, components.FishComponent{Color: constants.PlayerColor})
	trail := components.TrailComponent{Limit: constants.TrailLength}
	trail.Push(homePos)
	w.Trails.Set(g.player, trail)

	for color := 0; color < constants.FishColorCount; color++ {
		if color == constants.PlayerColor {
			continue
		}
		fish := w.Spawn(components.KindFriendFish)
		if err := w.InsertAtRandomEmptyCell(fish); err != nil {
			return fmt.Errorf("%s fish: %w", components.ColorName(color), err)
		}
		w.Fish.Set(fish, components.FishComponent{
			Color:        color,
			EasilyScared: g.rng.Float64() < g.rules.ScaredChance,
		})
		g.missing.Push(fish)
	}
	return nil
}

// Rules returns the rules the game was created with
func (g *Game) Rules() config.Rules { return g.rules }

func (g *Game) Width() int  { return g.world.Width() }
func (g *Game) Height() int { return g.world.Height() }

func (g *Game) MissingCount() int   { return g.missing.Len() }
func (g *Game) FollowingCount() int { return g.following.Len() }
func (g *Game) DeliveredCount() int { return g.delivered.Len() }

// TotalFish is the constant number of friend fish in this game
func (g *Game) TotalFish() int { return g.total }

// Score may go negative
func (g *Game) Score() int { return g.score }

// Ticks is the number of completed ticks
func (g *Game) Ticks() int { return g.ticks }

// IsGameOver reports whether every friend fish is home
func (g *Game) IsGameOver() bool {
	return g.delivered.Len() == g.total
}

// Following returns the followers in follow order
func (g *Game) Following() []engine.Entity {
	return g.following.Items()
}

// PlayerPosition returns the cell the player stands on
func (g *Game) PlayerPosition() components.PositionComponent {
	pos, _ := g.world.Position(g.player)
	return pos
}

// HomePosition returns the home cell
func (g *Game) HomePosition() components.PositionComponent {
	pos, _ := g.world.Position(g.home)
	return pos
}
