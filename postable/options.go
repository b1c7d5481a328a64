package postable

// Option configures a Table at construction time.
type Option func(*config)

type config struct {
	shards       int
	capacityHint int
}

// DefaultShardCount is the shard count a Table uses unless overridden
// with WithShardCount.
const DefaultShardCount = 16

// WithShardCount sets the number of independent lock/map shards a Table
// uses. More shards reduce contention under concurrent enumeration at
// the cost of more memory overhead; it must be positive.
func WithShardCount(n int) Option {
	if n <= 0 {
		panic("postable: WithShardCount: n must be positive")
	}
	return func(c *config) { c.shards = n }
}

// WithCapacityHint pre-sizes each shard's map to hold roughly n/shards
// entries, avoiding repeated map growth when the caller has an estimate
// of the total entry count up front (e.g. an enumerator sweeping a known
// number of positions).
func WithCapacityHint(n int) Option {
	return func(c *config) { c.capacityHint = n }
}

func gatherOptions(opts ...Option) config {
	cfg := config{shards: DefaultShardCount}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
