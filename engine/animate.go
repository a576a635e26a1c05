package engine

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/fishgrid/components"
)

// TickSelfAnimating drops falling rocks by one row and crawls snails
// Rocks are processed bottom row first so a stacked column falls together
func (w *World) TickSelfAnimating() AnimationReport {
	var report AnimationReport

	type faller struct {
		e   Entity
		pos components.PositionComponent
	}
	fallers := make([]faller, 0)
	for _, e := range w.Query().With(w.Rocks).With(w.positions).Execute() {
		if rock, _ := w.Rocks.Get(e); rock.Falling {
			pos, _ := w.positions.Get(e)
			fallers = append(fallers, faller{e: e, pos: pos})
		}
	}
	slices.SortFunc(fallers, func(a, b faller) int {
		if c := cmp.Compare(b.pos.Y, a.pos.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.e, b.e)
	})

	for _, f := range fallers {
		below := f.pos.Add(components.DirDown)
		switch {
		case !w.InBounds(below.X, below.Y):
			w.Remove(f.e)
			report.RocksRemoved++
			report.Removed = append(report.Removed, f.e)
		case w.CanEnter(components.KindRock, below.X, below.Y):
			if w.Place(f.e, below.X, below.Y) == nil {
				report.RocksMoved++
			}
		}
	}

	for _, e := range w.Query().With(w.Snails).With(w.positions).Execute() {
		snail, _ := w.Snails.Get(e)
		if snail.Cooldown > 1 {
			snail.Cooldown--
			w.Snails.Set(e, snail)
			continue
		}
		snail.Cooldown = snailInterval(snail)

		dir := components.DirRight
		if snail.Heading < 0 {
			dir = components.DirLeft
		}
		if w.Move(e, dir) {
			report.SnailsMoved++
		} else {
			snail.Heading = -snail.Heading
		}
		w.Snails.Set(e, snail)
	}

	return report
}

func snailInterval(s components.SnailComponent) int {
	if s.Interval < 1 {
		return 1
	}
	return s.Interval
}
