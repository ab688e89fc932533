package batch

import (
	"testing"
	"time"

	"github.com/loomcollapse/loomcollapse/pkg/config"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

func validConfig() config.RunConfig {
	return config.RunConfig{
		Tileset: "stripes",
		Width:   6,
		Height:  1,
		KernelW: 3,
		KernelH: 1,
		Border:  wfc.Cutoff,
		Seed:    42,
	}
}

func TestRunRejectsNonPositiveCount(t *testing.T) {
	if _, err := Run(validConfig(), 0, 2); err == nil {
		t.Error("Run with count 0 should error")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.Width = 0
	if _, err := Run(cfg, 3, 2); err == nil {
		t.Error("Run with an invalid RunConfig should error")
	}
}

func TestRunRejectsUnknownTileset(t *testing.T) {
	cfg := validConfig()
	cfg.Tileset = "does-not-exist"
	if _, err := Run(cfg, 3, 2); err == nil {
		t.Error("Run with an unknown tileset should error")
	}
}

func TestRunDefaultsZeroWorkersToOne(t *testing.T) {
	summary, err := Run(validConfig(), 2, 0)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(summary.Results))
	}
}

func TestRunReportsEveryAttemptAndKeepsThemOrdered(t *testing.T) {
	cfg := validConfig()
	const count = 8
	summary, err := Run(cfg, count, 4)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(summary.Results) != count {
		t.Fatalf("expected %d results, got %d", count, len(summary.Results))
	}
	for i, r := range summary.Results {
		if r.Attempt != i {
			t.Errorf("results not ordered by attempt: index %d has Attempt %d", i, r.Attempt)
		}
	}
	if summary.SuccessCount+summary.FailureCount != count {
		t.Errorf("SuccessCount + FailureCount = %d, want %d", summary.SuccessCount+summary.FailureCount, count)
	}
}

func TestRunIsReproducibleAcrossWorkerCounts(t *testing.T) {
	cfg := validConfig()
	oneWorker, err := Run(cfg, 6, 1)
	if err != nil {
		t.Fatalf("Run(workers=1) error = %v", err)
	}
	manyWorkers, err := Run(cfg, 6, 6)
	if err != nil {
		t.Fatalf("Run(workers=6) error = %v", err)
	}
	for i := range oneWorker.Results {
		a, b := oneWorker.Results[i], manyWorkers.Results[i]
		if a.Seed != b.Seed || a.Success != b.Success || a.Iterations != b.Iterations {
			t.Errorf("attempt %d diverged across worker counts: %+v vs %+v", i, a, b)
		}
	}
}

func TestAttemptSeedWithNonZeroBaseIsDeterministic(t *testing.T) {
	if got, want := AttemptSeed(100, 3), int64(103); got != want {
		t.Errorf("AttemptSeed(100, 3) = %d, want %d", got, want)
	}
}

func TestAttemptSeedWithZeroBaseUsesClock(t *testing.T) {
	fixed := time.Unix(1_700_000_000, 0)
	orig := nowFunc
	nowFunc = func() time.Time { return fixed }
	defer func() { nowFunc = orig }()

	got := AttemptSeed(0, 5)
	want := fixed.UnixNano() + 5
	if got != want {
		t.Errorf("AttemptSeed(0, 5) = %d, want %d", got, want)
	}
}
