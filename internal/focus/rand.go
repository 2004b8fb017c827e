package focus

import "math/rand/v2"

// newRNG builds a locally scoped generator so that seeded calls replay
// exactly and unseeded calls never disturb shared generator state.
func newRNG(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(uint64(*seed), 0))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

type weighted[T any] struct {
	item   T
	weight float64
}

// pickWeighted draws one item with probability proportional to its weight.
// Callers guarantee a non-empty candidate list.
func pickWeighted[T any](rng *rand.Rand, candidates []weighted[T]) T {
	var total float64
	for _, c := range candidates {
		total += c.weight
	}

	r := rng.Float64() * total
	var cumulative float64
	for _, c := range candidates {
		cumulative += c.weight
		if c.weight > 0 && r <= cumulative {
			return c.item
		}
	}
	return candidates[len(candidates)-1].item
}
