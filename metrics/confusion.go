package metrics

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/williamBlazing/gpu-bdb/dist"
)

// Normalize selects confusion-matrix normalization.
type Normalize string

const (
	NormalizeNone Normalize = ""     // raw counts
	NormalizeTrue Normalize = "true" // each row divided by its row sum
	NormalizePred Normalize = "pred" // each column divided by its column sum
	NormalizeAll  Normalize = "all"  // every cell divided by the grand total
)

// ConfusionMatrix computes the global confusion matrix over the resolved
// label space: cell (t, p) holds the accumulated weight of rows with true
// class t and predicted class p, summed element-wise across partitions.
// weights may be nil for uniform weight 1 per row; when present it must be
// partition-aligned with yTrue. Normalization by an all-zero row, column,
// or total leaves the affected cells at 0.
func (c *Coordinator) ConfusionMatrix(ctx context.Context, yTrue, yPred *dist.Seq[int], normalize Normalize, weights *dist.Seq[float64]) (*mat.Dense, error) {
	switch normalize {
	case NormalizeNone, NormalizeTrue, NormalizePred, NormalizeAll:
	default:
		return nil, fmt.Errorf("confusion matrix: unknown normalize mode %q", normalize)
	}
	if yTrue.Len() == 0 {
		return nil, fmt.Errorf("confusion matrix: %w", ErrEmptyInput)
	}
	if err := checkAligned(yTrue, yPred); err != nil {
		return nil, fmt.Errorf("confusion matrix: %w", err)
	}
	if weights != nil {
		if err := checkAligned(yTrue, weights); err != nil {
			return nil, fmt.Errorf("confusion matrix weights: %w", err)
		}
	}

	space, err := c.ResolveLabelSpace(ctx, yTrue)
	if err != nil {
		return nil, fmt.Errorf("confusion matrix: %w", err)
	}

	units := make([]dist.Unit, yTrue.NumParts())
	for i := range units {
		truePart, predPart := yTrue.Part(i), yPred.Part(i)
		var w []float64
		if weights != nil {
			w = weights.Part(i).Values
		}
		units[i] = dist.Unit{
			Worker: truePart.Worker,
			Run: func(context.Context) (any, error) {
				return localConfusion(truePart.Values, predPart.Values, w, space), nil
			},
		}
	}
	partials, err := dist.Collect[*mat.Dense](ctx, c.dispatcher, units)
	if err != nil {
		return nil, fmt.Errorf("%w: confusion round: %w", ErrWorkerComputationFailed, err)
	}

	n := space.Size()
	cm := mat.NewDense(n, n, nil)
	for _, p := range partials {
		cm.Add(cm, p)
	}
	normalizeInPlace(cm, normalize)
	return cm, nil
}

// normalizeInPlace applies the requested normalization. Division by zero
// yields 0 in the affected cells, never NaN or Inf.
func normalizeInPlace(cm *mat.Dense, mode Normalize) {
	n, _ := cm.Dims()
	switch mode {
	case NormalizeTrue:
		for i := 0; i < n; i++ {
			row := cm.RawRowView(i)
			sum := 0.0
			for _, v := range row {
				sum += v
			}
			for j := range row {
				row[j] = safeDiv(row[j], sum)
			}
		}
	case NormalizePred:
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += cm.At(i, j)
			}
			for i := 0; i < n; i++ {
				cm.Set(i, j, safeDiv(cm.At(i, j), sum))
			}
		}
	case NormalizeAll:
		total := mat.Sum(cm)
		cm.Apply(func(_, _ int, v float64) float64 {
			return safeDiv(v, total)
		}, cm)
	}
}
