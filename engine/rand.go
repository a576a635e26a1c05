package engine

// Rand is the random source shared by the world and the simulation
// *math/rand/v2.Rand satisfies it; tests inject seeded or scripted sources
type Rand interface {
	IntN(n int) int
	Float64() float64
}
