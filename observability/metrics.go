// Package observability exports game metrics to Prometheus and tick spans to OpenTelemetry
package observability

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lixenwraith/fishgrid/game"
)

// Status is the part of a game the collector samples after each tick
type Status interface {
	Score() int
	MissingCount() int
	FollowingCount() int
	DeliveredCount() int
}

// GameCollector bundles the Prometheus metrics of a running game
type GameCollector struct {
	gatherer prometheus.Gatherer

	Games        prometheus.Counter
	Ticks        prometheus.Counter
	FishEvents   *prometheus.CounterVec // event: found, lost, delivered, homecoming
	Hearts       *prometheus.CounterVec // outcome: spawned, collected, eaten
	Rocks        *prometheus.CounterVec // outcome: crushed, fallen
	Score        prometheus.Gauge
	Fish         *prometheus.GaugeVec // roster: missing, following, delivered
	TickDuration prometheus.Histogram
}

// NewGameCollector registers the game metrics against reg, defaulting to the global registry when nil
// Registering twice against the same registry reuses the existing collectors
func NewGameCollector(reg prometheus.Registerer) (*GameCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &GameCollector{gatherer: gatherer}
	var err error

	if c.Games, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fishgrid_games_total",
		Help: "Games started, including restarts.",
	}), "fishgrid_games_total"); err != nil {
		return nil, err
	}
	if c.Ticks, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fishgrid_ticks_total",
		Help: "Completed simulation ticks.",
	}), "fishgrid_ticks_total"); err != nil {
		return nil, err
	}
	if c.FishEvents, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fishgrid_fish_events_total",
		Help: "Fish roster transitions, labeled by event.",
	}, []string{"event"}), "fishgrid_fish_events_total"); err != nil {
		return nil, err
	}
	if c.Hearts, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fishgrid_hearts_total",
		Help: "Hearts by outcome.",
	}, []string{"outcome"}), "fishgrid_hearts_total"); err != nil {
		return nil, err
	}
	if c.Rocks, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fishgrid_rocks_removed_total",
		Help: "Rocks removed from the grid, labeled by outcome.",
	}, []string{"outcome"}), "fishgrid_rocks_removed_total"); err != nil {
		return nil, err
	}
	if c.Score, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "fishgrid_score",
		Help: "Current score of the running game.",
	}), "fishgrid_score"); err != nil {
		return nil, err
	}
	if c.Fish, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fishgrid_fish",
		Help: "Friend fish per roster in the running game.",
	}, []string{"roster"}), "fishgrid_fish"); err != nil {
		return nil, err
	}
	if c.TickDuration, err = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fishgrid_tick_duration_seconds",
		Help:    "Wall time spent inside a single tick.",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}), "fishgrid_tick_duration_seconds"); err != nil {
		return nil, err
	}

	return c, nil
}

// Gatherer returns the gatherer the collector was registered with
func (c *GameCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// Handler exposes a ready-to-use /metrics handler
func (c *GameCollector) Handler() http.Handler {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveGame counts a new game and resets the per-game gauges
func (c *GameCollector) ObserveGame(s Status) {
	if c == nil {
		return
	}
	c.Games.Inc()
	c.setStatus(s)
}

// ObserveTick records what a tick did and samples the game afterwards
func (c *GameCollector) ObserveTick(r game.TickReport, s Status, d time.Duration) {
	if c == nil {
		return
	}
	c.Ticks.Inc()
	c.TickDuration.Observe(d.Seconds())

	c.FishEvents.WithLabelValues("found").Add(float64(len(r.Found)))
	c.FishEvents.WithLabelValues("lost").Add(float64(len(r.Lost)))
	for _, ev := range r.Delivered {
		if ev.Accidental {
			c.FishEvents.WithLabelValues("homecoming").Inc()
		} else {
			c.FishEvents.WithLabelValues("delivered").Inc()
		}
	}

	c.Hearts.WithLabelValues("spawned").Add(float64(r.HeartsSpawned))
	c.Hearts.WithLabelValues("collected").Add(float64(r.HeartsCollected))
	c.Hearts.WithLabelValues("eaten").Add(float64(r.HeartsEaten))
	c.Rocks.WithLabelValues("fallen").Add(float64(r.RocksRemoved))

	c.setStatus(s)
}

// ObserveClick counts rocks crushed by a click
func (c *GameCollector) ObserveClick(crushed int) {
	if c == nil || crushed == 0 {
		return
	}
	c.Rocks.WithLabelValues("crushed").Add(float64(crushed))
}

func (c *GameCollector) setStatus(s Status) {
	if s == nil {
		return
	}
	c.Score.Set(float64(s.Score()))
	c.Fish.WithLabelValues("missing").Set(float64(s.MissingCount()))
	c.Fish.WithLabelValues("following").Set(float64(s.FollowingCount()))
	c.Fish.WithLabelValues("delivered").Set(float64(s.DeliveredCount()))
}

// Serve exposes handler at /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	if logger != nil {
		logger.Info("metrics endpoint listening", "addr", addr)
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics endpoint: %w", err)
	}
}

// register adds collector to reg, returning the existing one if an identical collector is already there
func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
