package gen

import (
	"math/rand"
	"testing"
)

func TestWeightedChoiceNeverDrawsZeroWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	weights := map[string]float64{"a": 1, "b": 0, "c": -3}
	for i := 0; i < 1000; i++ {
		if got := WeightedChoice(rng, weights); got != "a" {
			t.Fatalf("drew %q, want only %q", got, "a")
		}
	}
}

func TestWeightedChoiceRespectsWeights(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	weights := map[string]float64{"common": 9, "rare": 1}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[WeightedChoice(rng, weights)]++
	}

	if counts["common"] < 8500 || counts["common"] > 9500 {
		t.Fatalf("common drawn %d times out of 10000, want roughly 9000", counts["common"])
	}
	if counts["rare"] == 0 {
		t.Fatalf("rare outcome never drawn")
	}
}

func TestWeightedChoiceEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := WeightedChoice(rng, nil); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := WeightedChoice(rng, map[string]float64{"x": 0}); got != "" {
		t.Fatalf("expected empty result for all-zero weights, got %q", got)
	}
}
