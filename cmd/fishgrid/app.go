package main

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishgrid/input"
	"github.com/lixenwraith/fishgrid/render"
	"github.com/lixenwraith/fishgrid/session"
)

// app routes terminal events to the session and redraws after each one
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	sess     *session.Session
	machine  *input.Machine
	logger   *slog.Logger
}

func newApp(screen tcell.Screen, sess *session.Session, machine *input.Machine, logger *slog.Logger) *app {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &app{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		sess:     sess,
		machine:  machine,
		logger:   logger,
	}
}

func (a *app) draw() {
	a.renderer.RenderFrame(a.sess.Snapshot())
}

// handle applies one event; quit is set when the player asked to leave
func (a *app) handle(ctx context.Context, ev tcell.Event) (quit bool, err error) {
	in := a.machine.Process(ev)

	switch in.Type {
	case input.IntentNone:
		return false, nil
	case input.IntentQuit:
		return true, nil
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentRestart:
		if err := a.sess.Restart(ctx); err != nil {
			return false, err
		}
	case input.IntentClick:
		snap := a.sess.Snapshot()
		if x, y, ok := a.renderer.ScreenToTile(in.X, in.Y, snap.Width, snap.Height); ok {
			a.sess.Click(ctx, x, y)
		}
	default:
		if _, err := a.sess.Act(ctx, in); err != nil {
			return false, err
		}
	}

	a.draw()
	return false, nil
}

// idle advances the game on the idle ticker
func (a *app) idle(ctx context.Context) error {
	if _, err := a.sess.Tick(ctx); err != nil {
		return err
	}
	a.draw()
	return nil
}
