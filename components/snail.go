package components

// SnailComponent drives a snail crawling back and forth along its row
type SnailComponent struct {
	Heading  int // -1 left, +1 right
	Interval int // Ticks between crawls
	Cooldown int // Ticks until next crawl
}
