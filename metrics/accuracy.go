package metrics

import (
	"context"
	"fmt"

	"github.com/williamBlazing/gpu-bdb/dist"
)

// Accuracy computes the fraction of rows where the prediction equals the
// truth, as one scatter/gather round of per-partition match counts. The
// two sequences must be partition-aligned with equal total length.
func (c *Coordinator) Accuracy(ctx context.Context, yTrue, yPred *dist.Seq[int]) (float64, error) {
	total := yTrue.Len()
	if total == 0 {
		return 0, fmt.Errorf("accuracy: %w", ErrEmptyInput)
	}
	if err := checkAligned(yTrue, yPred); err != nil {
		return 0, fmt.Errorf("accuracy: %w", err)
	}

	units := make([]dist.Unit, yTrue.NumParts())
	for i := range units {
		truePart, predPart := yTrue.Part(i), yPred.Part(i)
		units[i] = dist.Unit{
			Worker: truePart.Worker,
			Run: func(context.Context) (any, error) {
				return countMatches(truePart.Values, predPart.Values), nil
			},
		}
	}
	counts, err := dist.Collect[int64](ctx, c.dispatcher, units)
	if err != nil {
		return 0, fmt.Errorf("%w: accuracy round: %w", ErrWorkerComputationFailed, err)
	}

	var matches int64
	for _, n := range counts {
		matches += n
	}
	c.log.Debugf("accuracy: %d/%d rows match", matches, total)
	return float64(matches) / float64(total), nil
}
