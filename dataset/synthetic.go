package dataset

import "math/rand"

// SyntheticLabels draws n labels uniformly from [0, nclasses) with a
// seeded generator, for benchmarks and partition-invariance checks.
func SyntheticLabels(seed int64, n, nclasses int) []int {
	rng := rand.New(rand.NewSource(seed))
	labels := make([]int, n)
	for i := range labels {
		labels[i] = rng.Intn(nclasses)
	}
	return labels
}

// CorruptLabels returns a copy of labels where each row is replaced, with
// probability flipProb, by a different uniformly drawn class. It simulates
// an imperfect classifier with a known error rate.
func CorruptLabels(seed int64, labels []int, flipProb float64, nclasses int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, len(labels))
	copy(out, labels)
	if nclasses < 2 {
		return out
	}
	for i, l := range out {
		if rng.Float64() < flipProb {
			// Shift by 1..nclasses-1 so the flipped label always differs.
			out[i] = (l + 1 + rng.Intn(nclasses-1)) % nclasses
		}
	}
	return out
}
