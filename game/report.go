package game

import "github.com/lixenwraith/fishgrid/engine"

// FishEvent records one fish changing roster during a tick
type FishEvent struct {
	Entity engine.Entity
	Color  int
	Award  int // Score paid on discovery or refunded on loss, 0 on delivery

	// Accidental is set for fish that reached home without the player
	Accidental bool
}

// TickReport summarizes a single tick for the host
type TickReport struct {
	Tick int

	Found     []FishEvent
	Lost      []FishEvent
	Delivered []FishEvent

	HeartsSpawned   int
	HeartsCollected int
	HeartsEaten     int
	HeartBatchShort bool // Grid ran out of empty cells mid batch

	FishWandered int
	RocksMoved   int
	RocksRemoved int
	SnailsMoved  int

	ScoreDelta int
	GameOver   bool
}

// Quiet reports whether nothing the player would notice happened
func (r TickReport) Quiet() bool {
	return len(r.Found) == 0 && len(r.Lost) == 0 && len(r.Delivered) == 0 &&
		r.HeartsCollected == 0 && !r.GameOver
}
