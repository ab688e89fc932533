package main

import (
	"testing"

	"github.com/loomcollapse/loomcollapse/pkg/batch"
	"github.com/loomcollapse/loomcollapse/pkg/config"
	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// BenchmarkCircuitCollapse measures a single-threaded collapse of a
// medium-sized grid against the densest built-in ruleset.
func BenchmarkCircuitCollapse(b *testing.B) {
	rs, err := tileset.Get("circuit")
	if err != nil {
		b.Fatalf("tileset.Get(circuit) error = %v", err)
	}
	predicate := tileset.Compile(rs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		grid := wfc.NewGrid2D(16, 16, 3, 3, wfc.Cutoff, tileset.NewCandidates(rs))
		rng := wfc.NewRNG(int64(i) + 1)
		if _, err := wfc.Collapse[wfc.Point, tileset.Tile](grid, predicate, rng).Finalize(); err != nil {
			b.Logf("attempt %d contradicted: %v", i, err)
		}
	}
}

// BenchmarkBatchRun measures a small concurrent batch of stripes attempts,
// the workload cmd/batch.go drives at CLI scale.
func BenchmarkBatchRun(b *testing.B) {
	cfg := config.RunConfig{
		Tileset: "stripes",
		Width:   16,
		Height:  16,
		KernelW: 3,
		KernelH: 3,
		Border:  wfc.Cutoff,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg.Seed = int64(i)*1000 + 1
		if _, err := batch.Run(cfg, 8, 4); err != nil {
			b.Fatalf("batch run error: %v", err)
		}
	}
}
