// Package dist provides the partition and scatter/gather substrate for
// distributed computations over worker-placed data.
//
// # Reading Guide
//
//   - seq.go: Part and Seq, the contiguous worker-owned shards of a
//     partitioned sequence
//   - pool.go: Pool, the per-worker executors, and Round, the fan-out/fan-in
//     primitive that pins each unit of work to the worker owning its data
//
// # Model
//
// One coordinating process dispatches independent units of work, one per
// partition, to the worker that owns that partition's data; raw partition
// data never moves. Workers have no communication with each other — all
// synchronization happens at the coordinator, which blocks until every unit
// of the round completes. Rounds are strictly sequential; units within a
// round have no ordering guarantee, so reductions over gathered results
// must be commutative and associative.
//
// The first failing unit cancels the round and surfaces a single error; no
// unit is retried. Workers are assumed reliable within one run.
package dist
