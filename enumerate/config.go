package enumerate

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cgt/dyadic"
)

// Config configures a single enumeration run.
type Config struct {
	Width, Height uint8

	// StartID and LastID bound the half-open id range [StartID, LastID)
	// swept across workers. LastID defaults to 2^(Width*Height) when
	// zero.
	StartID, LastID uint64

	// TranspositionCapacity sizes the position cache's shard maps ahead
	// of time (postable.WithCapacityHint); zero leaves the default.
	TranspositionCapacity int

	// TemperatureThreshold filters the emitted record stream: a
	// position is only recorded when its temperature exceeds this
	// value.
	TemperatureThreshold dyadic.Rational

	// IncludeDecompositions, when false, skips positions with two or
	// more connected components outright (temperature(G+H) <=
	// max(temperature(G), temperature(H)), so surveying the components
	// alone already bounds the skip decision).
	IncludeDecompositions bool

	OutputPath       string
	ProgressInterval time.Duration
}

// ConfigError reports a Config value that fails validation before any
// worker is launched.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("enumerate: config field %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// maxID returns 2^(width*height), the exclusive upper bound on ids for
// a width x height board, and whether that bound is exactly
// representable as a uint64. The one board size where it is not is the
// 64-cell maximum itself (2^64 overflows uint64): exact is false there,
// and the caller must not compare against limit, which is meaningless
// (0) in that case.
func maxID(width, height uint8) (limit uint64, exact bool) {
	n := uint(width) * uint(height)
	if n == 64 {
		return 0, false
	}
	return uint64(1) << n, true
}

// Validate checks cfg for internal consistency, filling in LastID's
// default when left zero. It must be called, and must succeed, before
// Run launches any worker.
func (cfg *Config) Validate() error {
	n := uint(cfg.Width) * uint(cfg.Height)
	if cfg.Width == 0 || cfg.Height == 0 || n > 64 {
		return &ConfigError{Field: "Width/Height", Err: ErrInvalidDimensions}
	}
	limit, exact := maxID(cfg.Width, cfg.Height)
	if cfg.LastID == 0 {
		if exact {
			cfg.LastID = limit
		} else {
			// n == 64: the true exclusive bound 2^64 has no uint64
			// representation. Default to the largest representable id
			// instead: this sweeps every board except the single
			// all-cells-occupied one (id ^uint64(0), which has no legal
			// moves for either player and is worth the zero game), an
			// inherent limitation of a uint64 id space rather than an
			// omission callers can work around through LastID.
			cfg.LastID = ^uint64(0)
		}
	}
	if cfg.LastID <= cfg.StartID {
		return &ConfigError{Field: "StartID/LastID", Err: ErrInvalidRange}
	}
	if exact && cfg.LastID > limit {
		return &ConfigError{Field: "StartID/LastID", Err: ErrInvalidRange}
	}
	if cfg.OutputPath == "" {
		return &ConfigError{Field: "OutputPath", Err: ErrNoOutputPath}
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = 5 * time.Second
	}
	return nil
}
