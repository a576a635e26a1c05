// Package render draws game snapshots onto a tcell screen
package render

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/constants"
	"github.com/lixenwraith/fishgrid/game"
)

// drawPriority orders kinds sharing a cell; higher draws on top
var drawPriority = [...]int{
	components.KindHome:       1,
	components.KindHeart:      2,
	components.KindRock:       3,
	components.KindSnail:      3,
	components.KindFriendFish: 4,
	components.KindPlayer:     5,
}

func priority(k components.Kind) int {
	if int(k) < len(drawPriority) {
		return drawPriority[k]
	}
	return 0
}

// TerminalRenderer handles all terminal rendering
// The grid is drawn below the status bar, one screen cell per tile
type TerminalRenderer struct {
	screen tcell.Screen
	gameX  int
	gameY  int
}

// NewTerminalRenderer creates a renderer drawing the grid at the top-left under the status bar
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		gameX:  0,
		gameY:  constants.StatusBarHeight,
	}
}

// RenderFrame draws snap and shows it
func (r *TerminalRenderer) RenderFrame(snap game.Snapshot) {
	r.Draw(snap)
	r.screen.Show()
}

// Draw paints snap into the screen buffer without flushing it
func (r *TerminalRenderer) Draw(snap game.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', defaultStyle)

	r.drawWater(snap, defaultStyle)
	r.drawEntities(snap, defaultStyle)
	r.drawStatusBar(snap)

	if snap.GameOver {
		r.drawGameOver(snap)
	}
}

// ScreenToTile converts a screen cell to grid coordinates
func (r *TerminalRenderer) ScreenToTile(sx, sy, width, height int) (x, y int, ok bool) {
	x, y = sx-r.gameX, sy-r.gameY
	if x < 0 || y < 0 || x >= width || y >= height {
		return 0, 0, false
	}
	return x, y, true
}

func (r *TerminalRenderer) drawWater(snap game.Snapshot, style tcell.Style) {
	water := style.Foreground(RgbWater)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			r.screen.SetContent(r.gameX+x, r.gameY+y, constants.GlyphWater, nil, water)
		}
	}
}

func (r *TerminalRenderer) drawEntities(snap game.Snapshot, style tcell.Style) {
	// Stable sort keeps creation order among equal priorities
	views := slices.Clone(snap.Entities)
	slices.SortStableFunc(views, func(a, b game.EntityView) int {
		return priority(a.Kind) - priority(b.Kind)
	})

	for _, v := range views {
		glyph, fg := r.glyphFor(v, snap)
		st := style.Foreground(fg)
		if v.Kind == components.KindFriendFish && v.FollowIndex >= 0 {
			st = st.Bold(true)
		}
		r.screen.SetContent(r.gameX+v.X, r.gameY+v.Y, glyph, nil, st)
	}
}

func (r *TerminalRenderer) glyphFor(v game.EntityView, snap game.Snapshot) (rune, tcell.Color) {
	switch v.Kind {
	case components.KindPlayer:
		return constants.GlyphPlayer, FishColor(v.Color)
	case components.KindFriendFish:
		return constants.GlyphFish, FishColor(v.Color)
	case components.KindRock:
		return constants.GlyphRock, RockColor(v.Shade, v.Falling)
	case components.KindSnail:
		return constants.GlyphSnail, RgbSnail
	case components.KindHeart:
		return constants.GlyphHeart, RgbHeart
	case components.KindHome:
		// Home takes the color of the latest arrival
		if n := len(snap.HomeColors); n > 0 {
			return constants.GlyphHome, FishColor(snap.HomeColors[n-1])
		}
		return constants.GlyphHome, RgbHome
	}
	return '?', tcell.ColorWhite
}

func (r *TerminalRenderer) drawStatusBar(snap game.Snapshot) {
	width, _ := r.screen.Size()
	barStyle := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, barStyle)
	}

	text := fmt.Sprintf(" Tick %d  Score %d  Missing %d  Following %d  Home %d/%d ",
		snap.Tick, snap.Score, snap.Missing, snap.Following, snap.Delivered, snap.Total)
	x := r.drawText(0, 0, text, barStyle)

	// One dot per delivered fish, in arrival order
	for _, c := range snap.HomeColors {
		if x >= width {
			break
		}
		r.screen.SetContent(x, 0, constants.GlyphFish, nil, barStyle.Foreground(FishColor(c)))
		x++
	}
}

func (r *TerminalRenderer) drawGameOver(snap game.Snapshot) {
	style := tcell.StyleDefault.Background(RgbGameOverBg).Foreground(RgbStatusText).Bold(true)
	text := constants.GameOverText

	x := r.gameX + (snap.Width-len([]rune(text)))/2
	if x < 0 {
		x = 0
	}
	y := r.gameY + snap.Height/2
	r.drawText(x, y, text, style)
}

// drawText writes s from (x,y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
