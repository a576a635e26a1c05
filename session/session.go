// Package session drives one player's run: it owns the current game and
// fans every action out to logs, metrics, spans and sound
package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/lixenwraith/fishgrid/audio"
	"github.com/lixenwraith/fishgrid/config"
	"github.com/lixenwraith/fishgrid/game"
	"github.com/lixenwraith/fishgrid/input"
	"github.com/lixenwraith/fishgrid/observability"
)

// pcgStream is the second PCG word; only the seed varies between games
const pcgStream = 0x9e3779b97f4a7c15

// Deps are the collaborators a session reports to; zero values are silent
type Deps struct {
	Logger  *slog.Logger
	Metrics *observability.GameCollector
	Tracer  trace.Tracer
	Audio   audio.Player
	Clock   TimeProvider

	// Seeds picks the seed of every game after the first, and of the first
	// when rules.Seed is 0; defaults to the clock
	Seeds func() uint64

	// GameOptions are passed to every game.New
	GameOptions []game.Option
}

// Session owns the current game
// Not safe for concurrent use; the host calls it from its loop goroutine
type Session struct {
	id     uuid.UUID
	grid   config.Grid
	rules  config.Rules
	deps   Deps
	logger *slog.Logger

	game *game.Game
	seed uint64
}

// New starts a session and its first game
func New(grid config.Grid, rules config.Rules, deps Deps) (*Session, error) {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.Tracer == nil {
		deps.Tracer = noop.NewTracerProvider().Tracer(observability.TracerName)
	}
	if deps.Audio == nil {
		deps.Audio = audio.Noop{}
	}
	if deps.Clock == nil {
		deps.Clock = systemClock{}
	}
	if deps.Seeds == nil {
		clock := deps.Clock
		deps.Seeds = func() uint64 { return uint64(clock.Now().UnixNano()) }
	}

	id := uuid.New()
	s := &Session{
		id:     id,
		grid:   grid,
		rules:  rules,
		deps:   deps,
		logger: deps.Logger.With("session", id.String()),
	}

	seed := rules.Seed
	if seed == 0 {
		seed = deps.Seeds()
	}
	if err := s.start(context.Background(), seed); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the session id used in logs and spans
func (s *Session) ID() string { return s.id.String() }

// Game returns the current game
func (s *Session) Game() *game.Game { return s.game }

// Seed returns the seed of the current game
func (s *Session) Seed() uint64 { return s.seed }

// Snapshot copies the current game state
func (s *Session) Snapshot() game.Snapshot { return s.game.Snapshot() }

// Restart replaces the game with a fresh one on a new seed
func (s *Session) Restart(ctx context.Context) error {
	return s.start(ctx, s.deps.Seeds())
}

func (s *Session) start(ctx context.Context, seed uint64) error {
	_, span := s.deps.Tracer.Start(ctx, "fishgrid.start", trace.WithAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int64("game.seed", int64(seed)),
	))
	defer span.End()

	opts := append([]game.Option{game.WithLogger(s.logger)}, s.deps.GameOptions...)
	g, err := game.New(s.grid, s.rules, rand.New(rand.NewPCG(seed, pcgStream)), opts...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "new game")
		return fmt.Errorf("start game (seed %d): %w", seed, err)
	}

	s.game = g
	s.seed = seed
	s.deps.Metrics.ObserveGame(g)
	s.logger.Info("game started", "seed", seed, "width", g.Width(), "height", g.Height(), "fish", g.TotalFish())
	return nil
}

// Act applies one intent
// Moves step the player then tick; a blocked move still spends the turn
// Intents that do not advance the simulation return an empty report
func (s *Session) Act(ctx context.Context, in input.Intent) (game.TickReport, error) {
	if !in.Ticks() {
		return game.TickReport{}, nil
	}
	if s.game.IsGameOver() {
		return game.TickReport{Tick: s.game.Ticks(), GameOver: true}, nil
	}

	if dir, ok := in.Direction(); ok && !s.game.MovePlayer(dir) {
		s.deps.Audio.Play(audio.CueBump)
	}
	return s.tick(ctx, in.Type.String())
}

// Tick advances the game without player input
func (s *Session) Tick(ctx context.Context) (game.TickReport, error) {
	if s.game.IsGameOver() {
		return game.TickReport{Tick: s.game.Ticks(), GameOver: true}, nil
	}
	return s.tick(ctx, "idle")
}

func (s *Session) tick(ctx context.Context, cause string) (game.TickReport, error) {
	_, span := s.deps.Tracer.Start(ctx, "fishgrid.tick", trace.WithAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.String("tick.cause", cause),
	))
	defer span.End()

	start := s.deps.Clock.Now()
	report, err := s.game.Tick()
	elapsed := s.deps.Clock.Now().Sub(start)

	span.SetAttributes(
		attribute.Int("tick", report.Tick),
		attribute.Int("score", s.game.Score()),
		attribute.Int("missing", s.game.MissingCount()),
		attribute.Int("following", s.game.FollowingCount()),
		attribute.Int("delivered", s.game.DeliveredCount()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "tick failed")
		s.logger.Error("tick failed", "cause", cause, "error", err)
		return report, fmt.Errorf("tick: %w", err)
	}

	s.deps.Metrics.ObserveTick(report, s.game, elapsed)
	for _, c := range CuesFor(report) {
		s.deps.Audio.Play(c)
	}

	if report.GameOver {
		s.logger.Info("all fish home", "ticks", report.Tick, "score", s.game.Score())
	}
	return report, nil
}

// Click crushes the rocks on grid cell (x,y) and returns how many went
func (s *Session) Click(ctx context.Context, x, y int) int {
	_, span := s.deps.Tracer.Start(ctx, "fishgrid.click", trace.WithAttributes(
		attribute.String("session.id", s.id.String()),
		attribute.Int("x", x),
		attribute.Int("y", y),
	))
	defer span.End()

	crushed := s.game.HandleClick(x, y)
	span.SetAttributes(attribute.Int("crushed", crushed))

	s.deps.Metrics.ObserveClick(crushed)
	if crushed > 0 {
		s.deps.Audio.Play(audio.CueCrush)
	}
	return crushed
}

// CuesFor lists the sounds a tick report calls for, in play order
func CuesFor(r game.TickReport) []audio.Cue {
	var cues []audio.Cue
	if len(r.Found) > 0 {
		cues = append(cues, audio.CueFound)
	}
	if len(r.Lost) > 0 {
		cues = append(cues, audio.CueLost)
	}
	if r.HeartsCollected > 0 {
		cues = append(cues, audio.CueHeart)
	}

	// Victory replaces the arrival jingle on the final delivery
	switch {
	case r.GameOver && len(r.Delivered) > 0:
		cues = append(cues, audio.CueVictory)
	case len(r.Delivered) > 0:
		cues = append(cues, audio.CueHome)
	}
	return cues
}
