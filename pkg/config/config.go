// Package config collects the named presets and the run configuration the
// CLI builds from flags.
package config

import (
	"fmt"

	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// RunConfig is everything a single solve attempt needs beyond the tileset
// itself.
type RunConfig struct {
	Tileset string

	Width, Height int
	KernelW       int
	KernelH       int
	Border        wfc.BorderPolicy

	Seed int64

	// MaxIterations is a CLI-only safety cap: the run command aborts and
	// reports a timeout when a run would need more outer iterations than
	// this. It has no effect on the core solver's own termination rules.
	MaxIterations int
}

// Validate checks a RunConfig for the constraints the core solver itself
// would otherwise panic on, returning a descriptive error instead.
func (c RunConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.KernelW%2 == 0 || c.KernelH%2 == 0 {
		return fmt.Errorf("config: kernel size must have odd dimensions, got %dx%d", c.KernelW, c.KernelH)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("config: max iterations must not be negative, got %d", c.MaxIterations)
	}
	return nil
}
