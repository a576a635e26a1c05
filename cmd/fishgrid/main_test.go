package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/config"
	"github.com/lixenwraith/fishgrid/constants"
	"github.com/lixenwraith/fishgrid/game"
	"github.com/lixenwraith/fishgrid/input"
	"github.com/lixenwraith/fishgrid/logging"
	"github.com/lixenwraith/fishgrid/session"
)

func TestParseFlags(t *testing.T) {
	var out bytes.Buffer
	opts, err := parseFlags([]string{"-width", "30", "-seed", "9", "-mute"}, &out)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if opts.width != 30 || opts.seed != 9 || !opts.mute {
		t.Errorf("Unexpected options: %+v", opts)
	}
	if !opts.set["width"] || opts.set["height"] {
		t.Errorf("Expected only given flags marked set, got %v", opts.set)
	}

	if _, err := parseFlags([]string{"-h"}, &out); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Expected ErrHelp, got %v", err)
	}
	if _, err := parseFlags([]string{"extra"}, &out); err == nil {
		t.Error("Expected error for positional arguments")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	opts, _ := parseFlags(nil, &bytes.Buffer{})
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Grid != config.Default().Grid {
		t.Errorf("Expected default grid, got %+v", cfg.Grid)
	}
	if cfg.Log.File != "" || !cfg.Audio.Enabled {
		t.Errorf("Expected logging off and audio on by default, got %+v %+v", cfg.Log, cfg.Audio)
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fishgrid.toml")
	data := []byte("[grid]\nwidth = 25\nheight = 15\n\n[rules]\nseed = 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := parseFlags([]string{"-config", path, "-height", "18", "-debug", "-metrics-addr", ":9101"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Grid.Width != 25 {
		t.Errorf("Expected width from file, got %d", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 18 {
		t.Errorf("Expected height from flag, got %d", cfg.Grid.Height)
	}
	if cfg.Rules.Seed != 3 {
		t.Errorf("Expected seed from file, got %d", cfg.Rules.Seed)
	}
	if cfg.Log.File != logging.DefaultPath || cfg.Log.Level != "debug" {
		t.Errorf("Expected debug logging to %s, got %+v", logging.DefaultPath, cfg.Log)
	}
	if cfg.Metrics.Addr != ":9101" {
		t.Errorf("Expected metrics addr from flag, got %q", cfg.Metrics.Addr)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"-config", filepath.Join(t.TempDir(), "absent.toml")}},
		{"zero width", []string{"-width", "0"}},
		{"grid too small", []string{"-width", "2", "-height", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(tt.args, &bytes.Buffer{})
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			if _, err := loadConfig(opts); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"-nosuchflag"}, &stderr); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
	if code := run([]string{"-width", "0"}, &stderr); code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func newTestApp(t *testing.T, grid config.Grid) (*app, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	rules := config.DefaultRules()
	rules.Seed = 5
	rules.HeartBatchMin, rules.HeartBatchMax = 0, 0

	next := uint64(77)
	sess, err := session.New(grid, rules, session.Deps{
		Seeds:       func() uint64 { next++; return next - 1 },
		GameOptions: []game.Option{game.WithWander(game.StayPut)},
	})
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}

	kt, err := input.LoadKeyTable(config.Default().Keys)
	if err != nil {
		t.Fatalf("LoadKeyTable: %v", err)
	}
	return newApp(screen, sess, input.NewMachine(kt), nil), screen
}

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppHandle(t *testing.T) {
	a, screen := newTestApp(t, config.Grid{Width: 12, Height: 8, Rocks: 2})
	ctx := t.Context()

	t.Run("wait ticks and redraws", func(t *testing.T) {
		quit, err := a.handle(ctx, key('.'))
		if err != nil || quit {
			t.Fatalf("Expected wait to continue, got quit=%v err=%v", quit, err)
		}
		if a.sess.Game().Ticks() != 1 {
			t.Errorf("Expected 1 tick, got %d", a.sess.Game().Ticks())
		}
		if ch, _, _, _ := screen.GetContent(1, 0); ch != 'T' {
			t.Errorf("Expected status bar drawn, got %q", ch)
		}
	})

	t.Run("unbound key does nothing", func(t *testing.T) {
		if quit, err := a.handle(ctx, key('z')); err != nil || quit {
			t.Fatalf("Unexpected result quit=%v err=%v", quit, err)
		}
		if a.sess.Game().Ticks() != 1 {
			t.Errorf("Expected tick count unchanged, got %d", a.sess.Game().Ticks())
		}
	})

	t.Run("resize", func(t *testing.T) {
		if quit, err := a.handle(ctx, tcell.NewEventResize(80, 24)); err != nil || quit {
			t.Fatalf("Unexpected result quit=%v err=%v", quit, err)
		}
	})

	t.Run("click crushes rock", func(t *testing.T) {
		snap := a.sess.Snapshot()
		var rock game.EntityView
		for _, v := range snap.Entities {
			if v.Kind == components.KindRock && !v.Falling {
				rock = v
			}
		}
		if rock.Kind != components.KindRock {
			t.Skip("No resting rock in this layout")
		}

		before := snap.Count(components.KindRock)
		ev := tcell.NewEventMouse(rock.X, rock.Y+constants.StatusBarHeight, tcell.Button1, tcell.ModNone)
		if _, err := a.handle(ctx, ev); err != nil {
			t.Fatalf("handle: %v", err)
		}
		if after := a.sess.Snapshot().Count(components.KindRock); after >= before {
			t.Errorf("Expected fewer rocks after click, %d -> %d", before, after)
		}
	})

	t.Run("restart", func(t *testing.T) {
		if _, err := a.handle(ctx, key('r')); err != nil {
			t.Fatalf("handle: %v", err)
		}
		if a.sess.Game().Ticks() != 0 || a.sess.Seed() != 77 {
			t.Errorf("Expected fresh game on seed 77, got tick %d seed %d", a.sess.Game().Ticks(), a.sess.Seed())
		}
	})

	t.Run("quit", func(t *testing.T) {
		quit, err := a.handle(ctx, key('q'))
		if err != nil || !quit {
			t.Errorf("Expected quit, got quit=%v err=%v", quit, err)
		}
	})
}

func TestAppIdleTicks(t *testing.T) {
	a, _ := newTestApp(t, config.Grid{Width: 12, Height: 8})
	for i := 0; i < 3; i++ {
		if err := a.idle(t.Context()); err != nil {
			t.Fatalf("idle: %v", err)
		}
	}
	if a.sess.Game().Ticks() != 3 {
		t.Errorf("Expected 3 idle ticks, got %d", a.sess.Game().Ticks())
	}
}
