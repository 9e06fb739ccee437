package metrics

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/williamBlazing/gpu-bdb/dist"
)

// Coordinator drives distributed metric computations. It scatters
// partition-local statistic computations to the workers owning each
// partition, gathers the fixed-shape partials, and reduces them
// single-threaded into one global result. Raw partition data never moves;
// only partial statistics travel to the coordinator.
//
// The dispatch capability is injected at construction, not ambient: tests
// and orchestration layers supply their own Dispatcher.
type Coordinator struct {
	dispatcher dist.Dispatcher
	log        *logrus.Entry
}

// NewCoordinator builds a Coordinator on top of a task dispatcher.
func NewCoordinator(d dist.Dispatcher) *Coordinator {
	return &Coordinator{
		dispatcher: d,
		log:        logrus.WithField("component", "metrics"),
	}
}

// checkAligned verifies the partition-level shape of two aligned
// sequences. Row-level alignment within a partition is the caller's
// contract and is not re-verified.
func checkAligned[T any](yTrue *dist.Seq[int], other *dist.Seq[T]) error {
	if yTrue.NumParts() != other.NumParts() {
		return fmt.Errorf("%w: %d vs %d partitions",
			ErrPartitionMismatch, yTrue.NumParts(), other.NumParts())
	}
	if yTrue.Len() != other.Len() {
		return fmt.Errorf("%w: %d vs %d total rows",
			ErrPartitionMismatch, yTrue.Len(), other.Len())
	}
	return nil
}
