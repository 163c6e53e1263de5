package sim

// Rand is the random source the simulation draws from.
// *math/rand.Rand satisfies it; tests use scripted sources.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// pickWeighted returns the index of the first cumulative weight that r
// falls below. Draws past the total fall back to index 0.
func pickWeighted(weights []float64, r float64) int {
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r < cumulative {
			return i
		}
	}
	return 0
}
