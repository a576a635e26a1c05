package constants

// Glyphs
const (
	GlyphPlayer = '◆'
	GlyphFish   = '●'
	GlyphRock   = '█'
	GlyphSnail  = '@'
	GlyphHeart  = '♥'
	GlyphHome   = '⌂'
	GlyphWater  = '·'
)

// Status Bar
const (
	// StatusBarHeight is the number of rows reserved above the grid
	StatusBarHeight = 1

	// GameOverText is shown once every fish is home
	GameOverText = " ALL FISH HOME - r: new game, q: quit "
)
