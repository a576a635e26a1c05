package constants

// Fish Palette
const (
	// FishColorCount is the number of fish colors; one friend fish per color except the player's
	FishColorCount = 9

	// PlayerColor is reserved for the player fish
	PlayerColor = 0

	// ComplementColor shares the player's color family and scores like it
	ComplementColor = 8
)

// Scoring
const (
	// HighFishValue is awarded for finding a fish of the player's color family
	HighFishValue = 25

	// LowFishValue is awarded for finding any other fish
	LowFishValue = 10

	// HeartValue is awarded when the player picks up a heart
	HeartValue = 10
)

// Heart Spawning
const (
	// FirstHeartTick is the tick of the first heart batch
	FirstHeartTick = 1

	// HeartIntervalMin is the minimum number of ticks between heart batches
	HeartIntervalMin = 15

	// HeartIntervalMax is the maximum number of ticks between heart batches (inclusive)
	HeartIntervalMax = 29

	// HeartBatchMin is the minimum number of hearts per batch
	HeartBatchMin = 2

	// HeartBatchMax is the maximum number of hearts per batch (inclusive)
	HeartBatchMax = 4
)

// Fish Behavior
const (
	// ScaredChance is the probability a spawned friend fish is easily scared
	ScaredChance = 0.5

	// ScaredMoveChance is the per-tick move probability of a scared missing fish
	ScaredMoveChance = 0.8

	// CalmMoveChance is the per-tick move probability of a calm missing fish
	CalmMoveChance = 0.3

	// FatigueThreshold is the follow counter above which a non-leading follower gives up
	FatigueThreshold = 15
)

// Rocks & Snails
const (
	// FallingRockChance is the probability a spawned rock falls under gravity
	FallingRockChance = 0.2

	// RockShadeCount is the number of rock shades used for render variety
	RockShadeCount = 3

	// SnailCrawlInterval is the number of ticks between snail moves
	SnailCrawlInterval = 3
)
