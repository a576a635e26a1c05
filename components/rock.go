package components

// RockComponent marks an obstacle; falling rocks drop one row per tick
type RockComponent struct {
	Falling bool
	Shade   int
}
