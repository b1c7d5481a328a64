// Package postable implements a generic, sharded position table used to
// memoize expensive per-position computations (canonical forms,
// decompositions, temperatures) keyed by a comparable board key.
//
// It is grounded on core/types.go's two-lock discipline — a read-heavy
// workload guarded by sync.RWMutex rather than a single exclusive
// mutex — generalized from one pair of locks over a whole graph to one
// RWMutex per shard, so that independent keys hashing to
// different shards never contend. The functional-options shape
// (WithShardCount) follows matrix/options.go's Option pattern.
package postable
