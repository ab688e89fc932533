// Package batch runs many independent solve attempts concurrently: one
// goroutine per attempt, with a semaphore channel bounding how many of them
// solve at once and a sync.WaitGroup waiting for all of them.
package batch

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/loomcollapse/loomcollapse/pkg/common"
	"github.com/loomcollapse/loomcollapse/pkg/config"
	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// Result is the outcome of one attempt.
type Result struct {
	Attempt    int
	Seed       int64
	Success    bool
	Error      string
	Iterations int
	DurationMS int64
}

// Summary aggregates every attempt in a batch run.
type Summary struct {
	Results      []Result
	SuccessCount int
	FailureCount int
	TotalTime    time.Duration
}

// nowFunc is swappable in tests that need a deterministic seed schedule
// without depending on wall-clock time.
var nowFunc = time.Now

// Run starts one goroutine per attempt, each independently driving one
// wfc.Solver attempt against cfg to completion; at most workers of them
// solve at the same time. Each attempt owns its own Grid2D; no Shape is
// ever shared across goroutines.
func Run(cfg config.RunConfig, count, workers int) (*Summary, error) {
	if count <= 0 {
		return nil, fmt.Errorf("batch: attempt count must be positive, got %d", count)
	}
	if workers <= 0 {
		workers = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	rs, err := tileset.Get(cfg.Tileset)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}

	common.Verbose("starting batch: %d attempts across %d workers", count, workers)
	start := nowFunc()

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	resultsCh := make(chan Result, count)

	for attempt := 0; attempt < count; attempt++ {
		attempt := attempt
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			resultsCh <- runAttempt(cfg, rs, attempt)
		}()
	}

	wg.Wait()
	close(resultsCh)

	summary := &Summary{}
	for r := range resultsCh {
		summary.Results = append(summary.Results, r)
		if r.Success {
			summary.SuccessCount++
		} else {
			summary.FailureCount++
		}
	}
	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].Attempt < summary.Results[j].Attempt
	})
	summary.TotalTime = nowFunc().Sub(start)

	common.Info("batch finished: %d/%d succeeded in %s", summary.SuccessCount, count, summary.TotalTime)
	return summary, nil
}

func runAttempt(cfg config.RunConfig, rs tileset.Ruleset, attempt int) Result {
	seed := AttemptSeed(cfg.Seed, attempt)
	started := nowFunc()

	grid := wfc.NewGrid2D(cfg.Width, cfg.Height, cfg.KernelW, cfg.KernelH, cfg.Border, tileset.NewCandidates(rs))
	predicate := tileset.Compile(rs)
	rng := wfc.NewRNG(seed)

	step := wfc.Collapse[wfc.Point, tileset.Tile](grid, predicate, rng)
	iterations := 0
	for {
		if _, ok := step.Next(); !ok {
			break
		}
		iterations++
	}

	result := Result{
		Attempt:    attempt,
		Seed:       seed,
		Iterations: iterations,
		DurationMS: nowFunc().Sub(started).Milliseconds(),
	}
	if err := step.Err(); err != nil {
		result.Error = err.Error()
		common.Verbose("attempt %d (seed %d) failed after %d iterations: %v", attempt, seed, iterations, err)
	} else {
		result.Success = true
	}
	return result
}

// AttemptSeed computes the seed for one batch attempt: base+attempt when a
// non-zero base seed is given, or a time-derived value when it is not. Two
// calls with the same non-zero base and attempt always agree, regardless of
// how many workers drove the batch, which is what makes a seeded batch run
// reproducible.
func AttemptSeed(base int64, attempt int) int64 {
	if base != 0 {
		return base + int64(attempt)
	}
	return nowFunc().UnixNano() + int64(attempt)
}
