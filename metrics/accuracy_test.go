package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy_WorkedScenario(t *testing.T) {
	c := newTestCoordinator(t)
	yTrue := labelSeq([]int{0, 0}, []int{1, 1})
	yPred := labelSeq([]int{0, 1}, []int{1, 1})
	acc, err := c.Accuracy(context.Background(), yTrue, yPred)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 0.75, acc)
}

func TestAccuracy_IdenticalSequences(t *testing.T) {
	c := newTestCoordinator(t)
	labels := randomLabels(11, 257, 5)
	acc, err := c.Accuracy(context.Background(), chunkLabels(labels, 3), chunkLabels(labels, 3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 1.0, acc)
}

func TestAccuracy_EveryPredictionWrong(t *testing.T) {
	c := newTestCoordinator(t)
	labels := randomLabels(13, 100, 3)
	flipped := make([]int, len(labels))
	for i, l := range labels {
		flipped[i] = (l + 1) % 3
	}
	acc, err := c.Accuracy(context.Background(), chunkLabels(labels, 4), chunkLabels(flipped, 4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 0.0, acc)
}

func TestAccuracy_PartitionInvariance(t *testing.T) {
	// The same rows yield the same accuracy under any partitioning.
	c := newTestCoordinator(t)
	yTrue := randomLabels(17, 301, 4)
	yPred := randomLabels(19, 301, 4)

	want, err := c.Accuracy(context.Background(), chunkLabels(yTrue, 1), chunkLabels(yPred, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, nparts := range []int{2, 3, 7, 16, 301} {
		got, err := c.Accuracy(context.Background(), chunkLabels(yTrue, nparts), chunkLabels(yPred, nparts))
		if err != nil {
			t.Fatalf("nparts=%d: unexpected error: %v", nparts, err)
		}
		assert.Equal(t, want, got, "nparts=%d", nparts)
	}
}

func TestAccuracy_TotalLengthMismatch(t *testing.T) {
	c := newTestCoordinator(t)
	_, err := c.Accuracy(context.Background(), labelSeq([]int{0, 1, 0}), labelSeq([]int{0, 1}))
	if !errors.Is(err, ErrPartitionMismatch) {
		t.Fatalf("expected ErrPartitionMismatch, got %v", err)
	}
}

func TestAccuracy_PartitionCountMismatch(t *testing.T) {
	c := newTestCoordinator(t)
	_, err := c.Accuracy(context.Background(), labelSeq([]int{0}, []int{1}), labelSeq([]int{0, 1}))
	if !errors.Is(err, ErrPartitionMismatch) {
		t.Fatalf("expected ErrPartitionMismatch, got %v", err)
	}
}

func TestAccuracy_EmptyInput(t *testing.T) {
	c := newTestCoordinator(t)
	_, err := c.Accuracy(context.Background(), labelSeq(), labelSeq())
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestAccuracy_WorkerFailureLeaksNoPartial(t *testing.T) {
	c := NewCoordinator(failingDispatcher{})
	acc, err := c.Accuracy(context.Background(), labelSeq([]int{0, 1}), labelSeq([]int{0, 1}))
	if !errors.Is(err, ErrWorkerComputationFailed) {
		t.Fatalf("expected ErrWorkerComputationFailed, got %v", err)
	}
	assert.Equal(t, 0.0, acc)
}
