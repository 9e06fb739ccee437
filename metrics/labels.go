package metrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/williamBlazing/gpu-bdb/dist"
)

// LabelSpace is the distinct, ordered set of class labels for a run,
// resolved once over y_true and reused by every derived metric. Labels are
// kept ascending; each maps to a dense class index so the space does not
// require labels to be contiguous integers starting at zero.
type LabelSpace struct {
	labels []int
	index  map[int]int
}

// NewLabelSpace builds a space from observed labels. Input need not be
// sorted or deduplicated.
func NewLabelSpace(labels []int) LabelSpace {
	seen := make(map[int]struct{}, len(labels))
	distinct := make([]int, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		distinct = append(distinct, l)
	}
	sort.Ints(distinct)
	index := make(map[int]int, len(distinct))
	for i, l := range distinct {
		index[l] = i
	}
	return LabelSpace{labels: distinct, index: index}
}

// Size returns the number of classes.
func (s LabelSpace) Size() int { return len(s.labels) }

// Labels returns the labels in ascending order. Callers must not mutate
// the returned slice.
func (s LabelSpace) Labels() []int { return s.labels }

// Label returns the raw label at dense class index i.
func (s LabelSpace) Label(i int) int { return s.labels[i] }

// Index maps a raw label to its dense class index. ok is false for a
// label outside the space; local computers drop such rows rather than
// erroring, since a worker may see a stray label that was absent from the
// resolution pass.
func (s LabelSpace) Index(label int) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

// ResolveLabelSpace discovers the distinct label set of a partitioned
// sequence: one scatter/gather round computes each partition's local
// distinct set fully in parallel, and the coordinator unions and sorts
// them. The result is deterministic for any partition placement or
// completion order. If any partition's computation fails, no partial label
// space is returned.
func (c *Coordinator) ResolveLabelSpace(ctx context.Context, yTrue *dist.Seq[int]) (LabelSpace, error) {
	if yTrue.Len() == 0 {
		return LabelSpace{}, fmt.Errorf("resolving label space: %w", ErrEmptyInput)
	}
	units := make([]dist.Unit, yTrue.NumParts())
	for i := range units {
		part := yTrue.Part(i)
		units[i] = dist.Unit{
			Worker: part.Worker,
			Run: func(context.Context) (any, error) {
				return localDistinct(part.Values), nil
			},
		}
	}
	sets, err := dist.Collect[[]int](ctx, c.dispatcher, units)
	if err != nil {
		return LabelSpace{}, fmt.Errorf("%w: resolving label space: %w", ErrWorkerComputationFailed, err)
	}
	var union []int
	for _, set := range sets {
		union = append(union, set...)
	}
	space := NewLabelSpace(union)
	c.log.Debugf("resolved label space: %d classes %v", space.Size(), space.Labels())
	return space, nil
}
