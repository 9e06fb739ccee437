package metrics

import "errors"

// Every error kind below is fatal at the point of detection: the
// multi-round operation aborts and a single descriptive error reaches the
// caller. Numeric edge cases (0/0 divisions, all-zero rows or columns) are
// data conditions, not failures — they normalize to 0 instead.
var (
	// ErrInvalidAveragingMode reports binary averaging requested over a
	// label space with more than two classes.
	ErrInvalidAveragingMode = errors.New("binary precision undefined for more than two classes")

	// ErrDegenerateLabelSpace reports a label space with fewer classes
	// than the metric requires.
	ErrDegenerateLabelSpace = errors.New("single-class precision is undefined")

	// ErrPartitionMismatch reports aligned sequences that disagree in
	// total length or partition count.
	ErrPartitionMismatch = errors.New("aligned label sequences differ in shape")

	// ErrWorkerComputationFailed reports that a dispatched partition-local
	// unit raised an error; the whole round is aborted.
	ErrWorkerComputationFailed = errors.New("partition computation failed")

	// ErrEmptyInput reports a label sequence with zero rows overall.
	ErrEmptyInput = errors.New("label sequence has no rows")
)
