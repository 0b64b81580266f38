package gen

import (
	"math/rand"
	"sort"
)

// WeightedChoice draws one outcome from weights, with probability
// proportional to each outcome's weight. Outcomes with zero or negative
// weight are never drawn. Returns "" when nothing is drawable.
func WeightedChoice(rng *rand.Rand, weights map[string]float64) string {
	keys := make([]string, 0, len(weights))
	total := 0.0
	for k, w := range weights {
		if w > 0 {
			keys = append(keys, k)
			total += w
		}
	}
	if len(keys) == 0 {
		return ""
	}
	// Map iteration order is random; a sorted key list keeps draws
	// reproducible for a seeded rng.
	sort.Strings(keys)

	x := rng.Float64() * total
	for _, k := range keys {
		x -= weights[k]
		if x < 0 {
			return k
		}
	}
	return keys[len(keys)-1]
}

// choice draws one element uniformly from values.
func choice(rng *rand.Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[rng.Intn(len(values))]
}
