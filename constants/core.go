package constants

// Host Loop Timing
const (
	// IdleTickDisabled turns off ticking without player input (turn-based play)
	IdleTickDisabled = 0
)

// Grid & Entity Limits
const (
	// MaxEntitiesPerCell set to 15 so Cell fits into 128 bytes (2 cache lines)
	// when Entity is uint64: 15 * 8 (Entities) + 1 (Count) + 7 (Padding) = 128 bytes
	MaxEntitiesPerCell = 15

	// TrailLength is the number of recent player positions kept for followers
	TrailLength = 64
)

// Grid Defaults
const (
	// DefaultGridWidth is the default number of tile columns
	DefaultGridWidth = 20

	// DefaultGridHeight is the default number of tile rows
	DefaultGridHeight = 20

	// DefaultRockCount is the number of rocks placed at game start
	DefaultRockCount = 25

	// DefaultSnailCount is the number of snails placed at game start
	DefaultSnailCount = 2
)
