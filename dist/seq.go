package dist

// Part is one contiguous, worker-owned shard of a partitioned sequence.
// Values is the shard's in-place data, resident on Worker for the duration
// of a round; units dispatched for this shard read it, never mutate it.
type Part[T any] struct {
	Worker string
	Values []T
}

// Seq is an ordered sequence split into N disjoint, contiguous partitions,
// each placed on exactly one worker. Two aligned sequences (labels and
// predictions, or labels and weights) have the same partition count, and
// partition i of each covers the same row range. Alignment is the caller's
// responsibility; row-level alignment is assumed and never re-verified.
type Seq[T any] struct {
	parts []Part[T]
}

// NewSeq builds a Seq from pre-placed partitions.
func NewSeq[T any](parts ...Part[T]) *Seq[T] {
	return &Seq[T]{parts: parts}
}

// NumParts returns the number of partitions.
func (s *Seq[T]) NumParts() int { return len(s.parts) }

// Part returns the i-th partition.
func (s *Seq[T]) Part(i int) Part[T] { return s.parts[i] }

// Len returns the total row count across all partitions.
func (s *Seq[T]) Len() int {
	n := 0
	for _, p := range s.parts {
		n += len(p.Values)
	}
	return n
}

// Workers returns the owning worker of each partition, in partition order.
func (s *Seq[T]) Workers() []string {
	owners := make([]string, len(s.parts))
	for i, p := range s.parts {
		owners[i] = p.Worker
	}
	return owners
}
