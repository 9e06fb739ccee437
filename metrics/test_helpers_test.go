package metrics

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/williamBlazing/gpu-bdb/dist"
)

var testWorkers = []string{"alpha", "beta"}

// newTestCoordinator builds a Coordinator over a fresh two-worker pool.
func newTestCoordinator(t *testing.T) *Coordinator {
	t.Helper()
	pool := dist.NewPool(testWorkers)
	t.Cleanup(pool.Close)
	return NewCoordinator(pool)
}

// labelSeq places each slice as one partition, alternating the two test
// workers. Aligned sequences built with it share placements.
func labelSeq(parts ...[]int) *dist.Seq[int] {
	out := make([]dist.Part[int], len(parts))
	for i, p := range parts {
		out[i] = dist.Part[int]{Worker: testWorkers[i%len(testWorkers)], Values: p}
	}
	return dist.NewSeq(out...)
}

// weightSeq is labelSeq for per-row weights.
func weightSeq(parts ...[]float64) *dist.Seq[float64] {
	out := make([]dist.Part[float64], len(parts))
	for i, p := range parts {
		out[i] = dist.Part[float64]{Worker: testWorkers[i%len(testWorkers)], Values: p}
	}
	return dist.NewSeq(out...)
}

// chunkLabels splits labels into n contiguous partitions of near-equal
// size, for partition-invariance checks.
func chunkLabels(labels []int, n int) *dist.Seq[int] {
	parts := make([][]int, 0, n)
	base, rem := len(labels)/n, len(labels)%n
	offset := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		parts = append(parts, labels[offset:offset+size])
		offset += size
	}
	return labelSeq(parts...)
}

// randomLabels draws n labels from [0, nclasses) with a fixed seed.
func randomLabels(seed int64, n, nclasses int) []int {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(nclasses)
	}
	return out
}

// errDispatch is the injected failure of failingDispatcher.
var errDispatch = errors.New("worker exploded")

// failingDispatcher aborts every round, standing in for a partition whose
// local computation raised.
type failingDispatcher struct{}

func (failingDispatcher) Round(context.Context, []dist.Unit) ([]any, error) {
	return nil, errDispatch
}
