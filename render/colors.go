package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fishgrid/constants"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWater      = tcell.NewRGBColor(45, 60, 90)    // Dim blue water dots
	RgbHome       = tcell.NewRGBColor(235, 200, 120) // Sand
	RgbHeart      = tcell.NewRGBColor(255, 80, 120)
	RgbSnail      = tcell.NewRGBColor(170, 200, 90)

	// Falling rocks glow so the player can tell them apart
	RgbRockFalling = tcell.NewRGBColor(255, 140, 60)

	RgbStatusBar  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbGameOverBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
)

// RgbRockShades is indexed by RockComponent.Shade
var RgbRockShades = [constants.RockShadeCount]tcell.Color{
	tcell.NewRGBColor(110, 110, 120),
	tcell.NewRGBColor(140, 135, 130),
	tcell.NewRGBColor(90, 95, 105),
}

// RgbFishPalette follows components.FishColors order
var RgbFishPalette = [constants.FishColorCount]tcell.Color{
	tcell.NewRGBColor(255, 80, 80),   // red
	tcell.NewRGBColor(255, 165, 0),   // orange
	tcell.NewRGBColor(255, 235, 60),  // yellow
	tcell.NewRGBColor(50, 220, 50),   // green
	tcell.NewRGBColor(0, 200, 200),   // cyan
	tcell.NewRGBColor(100, 150, 255), // blue
	tcell.NewRGBColor(160, 90, 230),  // purple
	tcell.NewRGBColor(255, 160, 200), // pink
	tcell.NewRGBColor(230, 60, 200),  // magenta
}

// FishColor returns the palette entry for a fish color index
// Out-of-range indexes render white
func FishColor(color int) tcell.Color {
	if color < 0 || color >= len(RgbFishPalette) {
		return tcell.ColorWhite
	}
	return RgbFishPalette[color]
}

// RockColor returns the color of a rock by shade and falling state
func RockColor(shade int, falling bool) tcell.Color {
	if falling {
		return RgbRockFalling
	}
	if shade < 0 || shade >= len(RgbRockShades) {
		shade = 0
	}
	return RgbRockShades[shade]
}
