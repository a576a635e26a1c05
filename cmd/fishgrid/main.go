package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/fishgrid/audio"
	"github.com/lixenwraith/fishgrid/constants"
	"github.com/lixenwraith/fishgrid/input"
	"github.com/lixenwraith/fishgrid/logging"
	"github.com/lixenwraith/fishgrid/observability"
	"github.com/lixenwraith/fishgrid/session"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) (code int) {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(stderr, "\n\x1b[31mFISHGRID CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	logger, logFile, err := logging.Open(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing, err := observability.InitTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start tracing: %v\n", err)
		return 1
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdownTracing, logger)

	metrics, err := observability.NewGameCollector(prometheus.NewRegistry())
	if err != nil {
		fmt.Fprintf(stderr, "Failed to register metrics: %v\n", err)
		return 1
	}
	if cfg.Metrics.Addr != "" {
		go func() {
			if err := observability.Serve(ctx, cfg.Metrics.Addr, metrics.Handler(), logger); err != nil {
				logger.Error("metrics server stopped", "error", err)
			}
		}()
	}

	keys, err := input.LoadKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid key bindings: %v\n", err)
		return 1
	}

	player := audio.Open(cfg.Audio, logger)
	defer player.Close()

	sess, err := session.New(cfg.Grid, cfg.Rules, session.Deps{
		Logger:  logger,
		Metrics: metrics,
		Tracer:  tp.Tracer(observability.TracerName),
		Audio:   player,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Failed to start game: %v\n", err)
		return 1
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	idle := time.Duration(cfg.Rules.IdleTickMs) * time.Millisecond
	err = func() error {
		// Normal exit terminal cleanup
		defer func() {
			screen.Fini()
			screen = nil
		}()
		screen.EnableMouse()
		return loop(ctx, newApp(screen, sess, input.NewMachine(keys), logger), idle)
	}()
	if err != nil {
		fmt.Fprintf(stderr, "Game stopped: %v\n", err)
		return 1
	}
	return 0
}

// loop runs the game until quit, signal or a tick error
// All session calls happen here; the poller only forwards events
func loop(ctx context.Context, a *app, idle time.Duration) error {
	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)

	go func() {
		// Panic recovery for input polling goroutine to ensure terminal cleanup
		defer func() {
			if r := recover(); r != nil {
				a.screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			// Nil once the screen is finalized
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	var tick <-chan time.Time
	if idle > constants.IdleTickDisabled {
		ticker := time.NewTicker(idle)
		defer ticker.Stop()
		tick = ticker.C
	}

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("interrupted")
			return nil
		case <-tick:
			if err := a.idle(ctx); err != nil {
				return err
			}
		case ev := <-events:
			quit, err := a.handle(ctx, ev)
			if err != nil {
				return err
			}
			if quit {
				a.logger.Info("quit", "ticks", a.sess.Game().Ticks(), "score", a.sess.Game().Score())
				return nil
			}
		}
	}
}
