package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishgrid/components"
	"github.com/lixenwraith/fishgrid/constants"
	"github.com/lixenwraith/fishgrid/game"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

// testSnapshot has the player on home at (2,2) and one of each other kind
func testSnapshot() game.Snapshot {
	return game.Snapshot{
		Width:      10,
		Height:     6,
		Tick:       7,
		Score:      35,
		Missing:    6,
		Following:  1,
		Delivered:  1,
		Total:      8,
		Player:     components.PositionComponent{X: 2, Y: 2},
		Home:       components.PositionComponent{X: 2, Y: 2},
		HomeColors: []int{3},
		Entities: []game.EntityView{
			{ID: 1, Kind: components.KindHome, X: 2, Y: 2, Color: -1, FollowIndex: -1},
			{ID: 2, Kind: components.KindRock, X: 5, Y: 1, Color: -1, FollowIndex: -1, Shade: 1},
			{ID: 3, Kind: components.KindRock, X: 6, Y: 1, Color: -1, FollowIndex: -1, Falling: true},
			{ID: 4, Kind: components.KindSnail, X: 0, Y: 5, Color: -1, FollowIndex: -1},
			{ID: 5, Kind: components.KindPlayer, X: 2, Y: 2, Color: constants.PlayerColor, FollowIndex: -1},
			{ID: 6, Kind: components.KindFriendFish, X: 3, Y: 2, Color: 5, FollowIndex: 0},
			{ID: 7, Kind: components.KindFriendFish, X: 8, Y: 4, Color: 2, FollowIndex: -1},
			{ID: 8, Kind: components.KindHeart, X: 1, Y: 0, Color: -1, FollowIndex: -1},
		},
	}
}

func cellAt(screen tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := screen.GetContent(x, y)
	return r, style
}

func TestRenderGlyphs(t *testing.T) {
	screen := newScreen(t)
	r := NewTerminalRenderer(screen)
	r.Draw(testSnapshot())

	off := constants.StatusBarHeight
	tests := []struct {
		name  string
		x, y  int
		glyph rune
		fg    tcell.Color
	}{
		{"player over home", 2, 2, constants.GlyphPlayer, FishColor(constants.PlayerColor)},
		{"follower", 3, 2, constants.GlyphFish, FishColor(5)},
		{"missing fish", 8, 4, constants.GlyphFish, FishColor(2)},
		{"rock shade", 5, 1, constants.GlyphRock, RgbRockShades[1]},
		{"falling rock", 6, 1, constants.GlyphRock, RgbRockFalling},
		{"snail", 0, 5, constants.GlyphSnail, RgbSnail},
		{"heart", 1, 0, constants.GlyphHeart, RgbHeart},
		{"water", 9, 5, constants.GlyphWater, RgbWater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			glyph, style := cellAt(screen, tt.x, tt.y+off)
			if glyph != tt.glyph {
				t.Errorf("Expected %q, got %q", tt.glyph, glyph)
			}
			if fg, _, _ := style.Decompose(); fg != tt.fg {
				t.Errorf("Expected fg %v, got %v", tt.fg, fg)
			}
		})
	}
}

func TestRenderFollowerBold(t *testing.T) {
	screen := newScreen(t)
	NewTerminalRenderer(screen).Draw(testSnapshot())

	off := constants.StatusBarHeight
	_, follower := cellAt(screen, 3, 2+off)
	if _, _, attr := follower.Decompose(); attr&tcell.AttrBold == 0 {
		t.Error("Expected following fish to be bold")
	}
	_, missing := cellAt(screen, 8, 4+off)
	if _, _, attr := missing.Decompose(); attr&tcell.AttrBold != 0 {
		t.Error("Expected missing fish not to be bold")
	}
}

func TestRenderHomeTakesLastArrivalColor(t *testing.T) {
	screen := newScreen(t)
	snap := testSnapshot()
	// Move the player away so home is visible
	snap.Entities[4].X = 4
	NewTerminalRenderer(screen).Draw(snap)

	glyph, style := cellAt(screen, 2, 2+constants.StatusBarHeight)
	if glyph != constants.GlyphHome {
		t.Fatalf("Expected home glyph, got %q", glyph)
	}
	if fg, _, _ := style.Decompose(); fg != FishColor(3) {
		t.Errorf("Expected home in last arrival color, got %v", fg)
	}
}

func TestRenderStatusBar(t *testing.T) {
	screen := newScreen(t)
	screen.SetSize(80, 12)
	NewTerminalRenderer(screen).Draw(testSnapshot())

	var line []rune
	for x := 0; x < 80; x++ {
		ch, _ := cellAt(screen, x, 0)
		line = append(line, ch)
	}
	want := " Tick 7  Score 35  Missing 6  Following 1  Home 1/8 "
	if got := string(line); !strings.HasPrefix(got, want) {
		t.Errorf("Expected status bar to start with %q, got %q", want, got)
	}

	// Delivered strip follows the counters
	ch, style := cellAt(screen, len(want), 0)
	if fg, _, _ := style.Decompose(); ch != constants.GlyphFish || fg != FishColor(3) {
		t.Errorf("Expected delivered fish dot after counters, got %q", ch)
	}
}

func TestRenderGameOverBanner(t *testing.T) {
	screen := newScreen(t)
	screen.SetSize(60, 12)
	snap := testSnapshot()
	snap.Width = 50
	snap.GameOver = true
	NewTerminalRenderer(screen).Draw(snap)

	y := constants.StatusBarHeight + snap.Height/2
	x := (snap.Width - len([]rune(constants.GameOverText))) / 2
	for i, want := range constants.GameOverText {
		if ch, _ := cellAt(screen, x+i, y); ch != want {
			t.Fatalf("Expected banner %q at column %d, got %q", want, x+i, ch)
		}
	}
}

func TestScreenToTile(t *testing.T) {
	r := NewTerminalRenderer(newScreen(t))

	tests := []struct {
		name   string
		sx, sy int
		x, y   int
		ok     bool
	}{
		{"origin", 0, constants.StatusBarHeight, 0, 0, true},
		{"inside", 4, 3 + constants.StatusBarHeight, 4, 3, true},
		{"status bar", 4, 0, 0, 0, false},
		{"right of grid", 10, 2, 0, 0, false},
		{"below grid", 0, 6 + constants.StatusBarHeight, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := r.ScreenToTile(tt.sx, tt.sy, 10, 6)
			if ok != tt.ok || x != tt.x || y != tt.y {
				t.Errorf("Expected (%d,%d,%v), got (%d,%d,%v)", tt.x, tt.y, tt.ok, x, y, ok)
			}
		})
	}
}

func TestColorHelpers(t *testing.T) {
	if FishColor(-1) != tcell.ColorWhite || FishColor(constants.FishColorCount) != tcell.ColorWhite {
		t.Error("Expected out-of-range fish colors to be white")
	}
	if RockColor(99, false) != RgbRockShades[0] {
		t.Error("Expected out-of-range shade to fall back to the first shade")
	}
	if RockColor(0, true) != RgbRockFalling {
		t.Error("Expected falling rocks to use the falling color")
	}
}
