package metrics

import (
	"context"
	"fmt"

	"github.com/williamBlazing/gpu-bdb/dist"
)

// Average selects how per-class precision collapses into one scalar.
type Average string

const (
	// AverageBinary returns the positive (highest-label) class's
	// precision. Requires exactly two classes.
	AverageBinary Average = "binary"
	// AverageMacro is the unweighted mean of per-class precisions; a
	// class with no positive predictions contributes 0, not NaN.
	AverageMacro Average = "macro"
	// AverageMicro pools TP and FP across all classes before dividing.
	AverageMicro Average = "micro"
)

// Precision computes a precision score under the given averaging mode.
// It runs two strictly sequential rounds: label-space resolution over
// yTrue, then one TP/FP round sized from the resolved class count.
func (c *Coordinator) Precision(ctx context.Context, yTrue, yPred *dist.Seq[int], average Average) (float64, error) {
	switch average {
	case AverageBinary, AverageMacro, AverageMicro:
	default:
		return 0, fmt.Errorf("precision: unknown averaging mode %q", average)
	}
	if err := checkAligned(yTrue, yPred); err != nil {
		return 0, fmt.Errorf("precision: %w", err)
	}

	space, err := c.ResolveLabelSpace(ctx, yTrue)
	if err != nil {
		return 0, fmt.Errorf("precision: %w", err)
	}
	nclasses := space.Size()
	if average == AverageBinary && nclasses > 2 {
		return 0, fmt.Errorf("precision: %w (got %d classes)", ErrInvalidAveragingMode, nclasses)
	}
	if nclasses < 2 {
		return 0, fmt.Errorf("precision: %w (got %d classes)", ErrDegenerateLabelSpace, nclasses)
	}

	units := make([]dist.Unit, yTrue.NumParts())
	for i := range units {
		truePart, predPart := yTrue.Part(i), yPred.Part(i)
		units[i] = dist.Unit{
			Worker: truePart.Worker,
			Run: func(context.Context) (any, error) {
				return sumTPFP(truePart.Values, predPart.Values, space), nil
			},
		}
	}
	tables, err := dist.Collect[tpfpTable](ctx, c.dispatcher, units)
	if err != nil {
		return 0, fmt.Errorf("%w: precision round: %w", ErrWorkerComputationFailed, err)
	}

	global := newTPFPTable(nclasses)
	for _, t := range tables {
		global.add(t)
	}

	switch average {
	case AverageBinary:
		return classPrecision(global[nclasses-1]), nil
	case AverageMacro:
		sum := 0.0
		for _, row := range global {
			sum += classPrecision(row)
		}
		return sum / float64(nclasses), nil
	default: // micro
		var tp, fp float64
		for _, row := range global {
			tp += row[0]
			fp += row[1]
		}
		return safeDiv(tp, tp+fp), nil
	}
}

// classPrecision is TP/(TP+FP) for one class row, with the 0/0 → 0 policy
// for classes that received no positive predictions.
func classPrecision(row [2]float64) float64 {
	return safeDiv(row[0], row[0]+row[1])
}
