package dataset

import "github.com/williamBlazing/gpu-bdb/dist"

// PartitionValues splits values into npartitions contiguous chunks and
// places chunk i on workers[i%len(workers)]. Chunk sizes differ by at most
// one row, earlier chunks taking the remainder. npartitions is clamped to
// at least 1; a chunk may be empty when there are fewer rows than
// partitions.
func PartitionValues[T any](values []T, workers []string, npartitions int) *dist.Seq[T] {
	if npartitions < 1 {
		npartitions = 1
	}
	parts := make([]dist.Part[T], npartitions)
	base := len(values) / npartitions
	rem := len(values) % npartitions
	offset := 0
	for i := range parts {
		size := base
		if i < rem {
			size++
		}
		parts[i] = dist.Part[T]{
			Worker: workers[i%len(workers)],
			Values: values[offset : offset+size],
		}
		offset += size
	}
	return dist.NewSeq(parts...)
}
