// Package enumerate implements the parallel position enumerator: it
// sweeps a board's full id space, computes each position's canonical
// form and temperature through a shared game.Table and driver.Cache,
// and emits one JSON record per position whose temperature clears a
// threshold, while a separate goroutine reports progress telemetry to
// stderr.
package enumerate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cgt/domineering"
	"github.com/katalvlaran/cgt/driver"
	"github.com/katalvlaran/cgt/dyadic"
	"github.com/katalvlaran/cgt/game"
	"github.com/katalvlaran/cgt/grid"
	"github.com/katalvlaran/cgt/postable"
)

// record is one output line.
type record struct {
	Grid          string `json:"grid"`
	Temperature   string `json:"temperature"`
	CanonicalForm string `json:"canonical_form"`
}

// sink is the single buffered-writer output file behind a mutex: workers
// acquire it only to append a complete record, the progress goroutine
// acquires it only to flush.
type sink struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func (s *sink) writeRecord(r record) error {
	line, err := json.Marshal(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.w.Write(line); err != nil {
		return err
	}
	return s.w.WriteByte('\n')
}

func (s *sink) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Flush()
}

// maxTemp is the mutex-protected running-maximum temperature.
type maxTemp struct {
	mu      sync.Mutex
	value   dyadic.Rational
	hasSeen bool
}

func (m *maxTemp) observe(t dyadic.Rational) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasSeen || dyadic.Compare(t, m.value) > 0 {
		m.value = t
		m.hasSeen = true
	}
}

func (m *maxTemp) snapshot() (dyadic.Rational, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, m.hasSeen
}

// Run sweeps [cfg.StartID, cfg.LastID) over a cfg.Width x cfg.Height
// board, one goroutine per logical CPU, and writes qualifying records
// to cfg.OutputPath. It returns the first worker error encountered (via
// errgroup, which also cancels ctx for the remaining workers) or nil on
// a clean, fully-completed sweep.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("enumerate: open output: %w", err)
	}
	defer f.Close()
	out := &sink{w: bufio.NewWriter(f)}

	tbl := game.NewTable()
	cacheOpts := []postable.Option{}
	if cfg.TranspositionCapacity > 0 {
		cacheOpts = append(cacheOpts, postable.WithCapacityHint(cfg.TranspositionCapacity))
	}
	cache := driver.NewCache[domineering.Position](domineering.Hash, cacheOpts...)
	ruleset := domineering.Ruleset{}

	total := cfg.LastID - cfg.StartID
	var completed, saved uint64
	running := &maxTemp{}

	workerCount := runtime.GOMAXPROCS(0)
	if uint64(workerCount) > total {
		workerCount = int(total)
	}
	if workerCount < 1 {
		workerCount = 1
	}

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		reportProgress(gctx, cfg.ProgressInterval, &completed, &saved, total, tbl, cache, running, out)
		return nil
	})

	for w := 0; w < workerCount; w++ {
		w := w
		group.Go(func() error {
			return sweepShare(gctx, cfg, w, workerCount, tbl, ruleset, cache, out, running, &completed, &saved)
		})
	}

	err = group.Wait()
	if flushErr := out.flush(); err == nil {
		err = flushErr
	}
	return err
}

// sweepShare iterates the subset of [cfg.StartID, cfg.LastID) assigned
// to worker index `me` (static stride partitioning across
// workerCount workers), from high to low.
func sweepShare(ctx context.Context, cfg Config, me, workerCount int, tbl *game.Table, ruleset domineering.Ruleset, cache *driver.Cache[domineering.Position], out *sink, running *maxTemp, completed, saved *uint64) error {
	for id := cfg.LastID - 1 - uint64(me); id >= cfg.StartID && id < cfg.LastID; id -= uint64(workerCount) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := evaluate(tbl, ruleset, cache, cfg, id, out, running, saved); err != nil {
			return err
		}
		atomic.AddUint64(completed, 1)
		if id < uint64(workerCount) {
			break // next subtraction would underflow
		}
	}
	return nil
}

func evaluate(tbl *game.Table, ruleset domineering.Ruleset, cache *driver.Cache[domineering.Position], cfg Config, id uint64, out *sink, running *maxTemp, saved *uint64) error {
	g, err := grid.FromNumber(cfg.Width, cfg.Height, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "enumerate: id %d: %v\n", id, err)
		return nil
	}
	pos := domineering.FromGrid(g).Normalize()

	if !cfg.IncludeDecompositions {
		if parts, ok := ruleset.Decompose(pos); ok && len(parts) >= 2 {
			return nil
		}
	}

	gameID := driver.CanonicalForm[domineering.Position](tbl, ruleset, cache, pos)
	temperature := tbl.Temperature(gameID)
	running.observe(temperature)

	if dyadic.Compare(temperature, cfg.TemperatureThreshold) <= 0 {
		return nil
	}

	rec := record{
		Grid:          pos.Display(),
		Temperature:   temperature.String(),
		CanonicalForm: tbl.Display(gameID),
	}
	if err := out.writeRecord(rec); err != nil {
		return fmt.Errorf("enumerate: write record: %w", err)
	}
	atomic.AddUint64(saved, 1)
	return nil
}

// reportProgress wakes every interval, writes a telemetry line to
// stderr from the shared counters, and flushes the output sink. It exits
// once completed reaches total, after writing one final 100% line, or
// when ctx is cancelled.
func reportProgress(ctx context.Context, interval time.Duration, completed, saved *uint64, total uint64, tbl *game.Table, cache *driver.Cache[domineering.Position], running *maxTemp, out *sink) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			done := atomic.LoadUint64(completed)
			writeTelemetry(done, total, atomic.LoadUint64(saved), tbl, cache, running)
			_ = out.flush() // a write error resurfaces from Run's final flush
			if done >= total {
				return
			}
		}
	}
}

func writeTelemetry(done, total, saved uint64, tbl *game.Table, cache *driver.Cache[domineering.Position], running *maxTemp) {
	fraction := 1.0
	if total > 0 {
		fraction = float64(done) / float64(total)
	}
	tempStr := "<= threshold"
	if t, ok := running.snapshot(); ok {
		tempStr = t.String()
	}
	width := digitCount(total)
	fmt.Fprintf(os.Stderr, "progress %.6f completed=%0*d/%0*d max_temp=%s saved=%d known_games=%d known_grids=%d\n",
		fraction, width, done, width, total, tempStr, saved, tbl.Len(), cache.Len())
}

func digitCount(n uint64) int {
	if n == 0 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
