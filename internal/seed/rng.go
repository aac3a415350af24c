package seed

import (
	"math"
	"math/rand"
	"time"
)

// RNG bundles every random primitive the generators use around a single
// seedable source, so a fixed seed reproduces an identical dataset.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG seeded with the given value. A seed of 0 picks a
// fresh time-based seed.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform float in [min, max).
func (g *RNG) Between(min, max float64) float64 {
	return min + g.r.Float64()*(max-min)
}

// Int returns a uniform integer in [min, max]. The inclusive upper bound is
// deliberate and differs from Between.
func (g *RNG) Int(min, max int) int {
	return min + g.r.Intn(max-min+1)
}

// Gaussian returns a normally distributed float via the Box-Muller
// transform. Each call draws two uniforms and discards the second normal.
func (g *RNG) Gaussian(mean, stddev float64) float64 {
	u1 := g.r.Float64()
	u2 := g.r.Float64()
	for u1 == 0 {
		u1 = g.r.Float64()
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return mean + z*stddev
}

// ShouldSkip is a Bernoulli trial: probability 0 never skips, 1 always does.
func (g *RNG) ShouldSkip(probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return g.r.Float64() < probability
}

// Pick returns a uniformly drawn element.
func (g *RNG) Pick(items []string) string {
	return items[g.r.Intn(len(items))]
}

// PickIndex returns a uniformly drawn index into a slice of length n.
func (g *RNG) PickIndex(n int) int {
	return g.r.Intn(n)
}

// WeightedPick draws one index proportionally to weights. The last index is
// the fallback when floating-point drift leaves no remainder.
func (g *RNG) WeightedPick(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := g.r.Float64() * total
	for i, w := range weights {
		target -= w
		if target < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Perm returns a random permutation of [0, n).
func (g *RNG) Perm(n int) []int {
	return g.r.Perm(n)
}

// Shuffle returns a Fisher-Yates shuffled copy; the input is not mutated.
func (g *RNG) Shuffle(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j := g.r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// round rounds half-up to the given number of decimal places.
func round(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Floor(v*pow+0.5) / pow
}
