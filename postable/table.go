package postable

import "sync"

// shard is one independent lock/map pair. Splitting a Table into many
// shards means two goroutines touching keys that hash to different
// shards never block each other — the same motivation as core.Graph's
// split muVert/muEdgeAdj locks, taken one step further.
type shard[K comparable, V comparable] struct {
	mu sync.RWMutex
	m  map[K]V
}

// Table is a sharded, append-only position table: once a key is
// inserted with a value, that mapping never changes (Insert is
// idempotent for a repeated identical value, and panics if called again
// for the same key with a different one — that indicates two different
// canonicalizations claiming the same position, a caller bug).
//
// K must supply its own hash via the function given to New, since a
// bare `comparable` constraint gives no hash function in Go generics.
type Table[K comparable, V comparable] struct {
	hash   func(K) uint64
	shards []*shard[K, V]
}

// New constructs a Table. hash must be a deterministic, well-distributed
// hash of K; equal keys must hash equal.
func New[K comparable, V comparable](hash func(K) uint64, opts ...Option) *Table[K, V] {
	cfg := gatherOptions(opts...)
	perShard := cfg.capacityHint / cfg.shards
	shards := make([]*shard[K, V], cfg.shards)
	for i := range shards {
		shards[i] = &shard[K, V]{m: make(map[K]V, perShard)}
	}
	return &Table[K, V]{hash: hash, shards: shards}
}

func (t *Table[K, V]) shardFor(k K) *shard[K, V] {
	idx := t.hash(k) % uint64(len(t.shards))
	return t.shards[idx]
}

// Get returns the value stored for k, if any.
func (t *Table[K, V]) Get(k K) (V, bool) {
	s := t.shardFor(k)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[k]
	return v, ok
}

// Insert publishes v under k. If k is already present with the same
// value this is a silent no-op; if present with a different value this
// panics with ErrConflictingValue, since the table is meant to be
// append-only and content-addressed.
func (t *Table[K, V]) Insert(k K, v V) {
	s := t.shardFor(k)
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.m[k]; ok {
		if existing != v {
			panic(ErrConflictingValue)
		}
		return
	}
	s.m[k] = v
}

// GetOrInsert returns the existing value for k if present, otherwise
// publishes and returns compute()'s result. compute may run more than
// once under concurrent callers racing on the same new key — the
// table's Insert idempotency makes that safe as long as compute is
// deterministic for a given k, which every caller in this module is.
func (t *Table[K, V]) GetOrInsert(k K, compute func() V) V {
	if v, ok := t.Get(k); ok {
		return v
	}
	v := compute()
	t.Insert(k, v)
	return v
}

// Len returns the total number of entries across all shards. It takes a
// read lock on each shard in turn, so the result is a snapshot, not
// transactionally consistent with concurrent writers.
func (t *Table[K, V]) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}
