package components

import "github.com/lixenwraith/fishgrid/constants"

// FishComponent holds the state shared by the player and friend fish
type FishComponent struct {
	Color         int  // Index into FishColors, PlayerColor is reserved
	EasilyScared  bool // Scared fish wander more often
	FollowCounter int  // Ticks spent following since discovery
}

// FishColors names the palette; index 0 is the player's own color
var FishColors = [constants.FishColorCount]string{
	"red",
	"orange",
	"yellow",
	"green",
	"cyan",
	"blue",
	"purple",
	"pink",
	"magenta",
}

// ColorName returns the palette name for a color index
func ColorName(color int) string {
	if color < 0 || color >= len(FishColors) {
		return "unknown"
	}
	return FishColors[color]
}

// PlayerFamily reports whether the color belongs to the player's color family
func PlayerFamily(color int) bool {
	return color == constants.PlayerColor || color == constants.ComplementColor
}
