// Package run implements the "run" subcommand: one collapse attempt,
// printing the final grid, and the grid after every outer iteration when
// verbose output is enabled.
package run

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/loomcollapse/loomcollapse/pkg/common"
	"github.com/loomcollapse/loomcollapse/pkg/config"
	"github.com/loomcollapse/loomcollapse/pkg/render"
	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/ui"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// errMaxIterations is returned when a run is aborted by --max-iterations.
// It is a CLI-only safety valve, distinct from the core solver's own
// terminal errors, which never time out.
var errMaxIterations = fmt.Errorf("exceeded --max-iterations before converging")

var (
	tilesetName string
	sizeFlag    string
	kernelFlag  string
	borderFlag  string
	seed        int64
	coords      bool
	noColor     bool
	dumpName    string
	maxIters    int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single collapse attempt",
	Long: `Run drives one wave function collapse attempt to completion and
prints the final grid. With --verbose it also prints the grid after every
outer iteration.

Examples:
  loomcollapse run --tileset stripes --size 8x8
  loomcollapse run --tileset circuit --size medium --kernel wide --border wrapping
  loomcollapse run --tileset blob --size 16x16 --seed 42 --dump run1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := tileset.Get(tilesetName)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}

		width, height, err := parseSize(sizeFlag)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		kw, kh, err := parseKernel(kernelFlag)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		border, err := config.ParseBorderPolicy(borderFlag)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}

		cfg := config.RunConfig{
			Tileset:       tilesetName,
			Width:         width,
			Height:        height,
			KernelW:       kw,
			KernelH:       kh,
			Border:        border,
			Seed:          seed,
			MaxIterations: maxIters,
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		rng := wfc.NewRNG(cfg.Seed)
		grid := wfc.NewGrid2D(cfg.Width, cfg.Height, cfg.KernelW, cfg.KernelH, cfg.Border, tileset.NewCandidates(rs))
		predicate := tileset.Compile(rs)

		opts := render.Options{MaxEntropy: len(rs.Tiles), ShowCoords: coords, Color: !noColor}

		spin := ui.NewSpinner(fmt.Sprintf("collapsing %dx%d grid (%s)", cfg.Width, cfg.Height, tilesetName))
		spin.Start()

		step := wfc.Collapse[wfc.Point, tileset.Tile](grid, predicate, rng)
		iterations := 0
		timedOut := false
		for {
			_, ok := step.Next()
			if !ok {
				break
			}
			iterations++
			spin.UpdateMessage("iteration %d", iterations)
			if common.VerboseEnabled {
				render.Grid(os.Stdout, grid, opts)
			}
			// A fully collapsed or contradicted grid terminates on the next
			// Next call without another collapse, so it is not a timeout.
			if cfg.MaxIterations > 0 && iterations >= cfg.MaxIterations && !grid.AllCollapsed() && !grid.AnyOverspecified() {
				timedOut = true
				break
			}
		}
		spin.Stop()

		if timedOut {
			common.Error("collapse exceeded --max-iterations=%d without converging", cfg.MaxIterations)
			render.Grid(os.Stdout, grid, opts)
			return fmt.Errorf("run: %w", errMaxIterations)
		}

		if err := step.Err(); err != nil {
			common.Error("collapse failed after %d iterations: %v", iterations, err)
			render.Grid(os.Stdout, grid, opts)
			return fmt.Errorf("run: %w", err)
		}

		common.Info("collapse succeeded in %d iterations (seed %d)", iterations, cfg.Seed)
		render.Grid(os.Stdout, grid, opts)

		if dumpName != "" {
			path, err := common.DumpFilePath(dumpName)
			if err != nil {
				return fmt.Errorf("run: %w", err)
			}
			if err := dumpGrid(path, grid); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			common.Info("dumped grid to %s", path)
		}

		return nil
	},
}

func parseSize(s string) (int, int, error) {
	if preset, err := config.GridPresetByName(s); err == nil {
		return preset.Width, preset.Height, nil
	}
	w, h, err := parseWxH(s)
	if err != nil {
		return 0, 0, fmt.Errorf("unknown --size %q (want a preset name or WxH)", s)
	}
	return w, h, nil
}

func parseKernel(s string) (int, int, error) {
	if preset, err := config.KernelPresetByName(s); err == nil {
		return preset.W, preset.H, nil
	}
	w, h, err := parseWxH(s)
	if err != nil {
		return 0, 0, fmt.Errorf("unknown --kernel %q (want a preset name or WxH)", s)
	}
	return w, h, nil
}

func parseWxH(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH, got %q", s)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return w, h, nil
}

func init() {
	runCmd.Flags().StringVarP(&tilesetName, "tileset", "t", "stripes", "tileset name (see 'loomcollapse tileset list')")
	runCmd.Flags().StringVar(&sizeFlag, "size", "small", "grid size: a preset name (small, medium, large) or WxH")
	runCmd.Flags().StringVar(&kernelFlag, "kernel", "vonneumannplus", "kernel size: a preset name (vonneumannplus, wide) or WxH")
	runCmd.Flags().StringVar(&borderFlag, "border", "cutoff", "border policy: cutoff or wrapping")
	runCmd.Flags().Int64VarP(&seed, "seed", "s", 0, "RNG seed (0 = time-derived)")
	runCmd.Flags().BoolVar(&coords, "coords", false, "print row/column coordinate gutters")
	runCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI coloring")
	runCmd.Flags().StringVar(&dumpName, "dump", "", "write the final grid as JSON under the output directory with this name")
	runCmd.Flags().IntVar(&maxIters, "max-iterations", 0, "abort after this many outer iterations (0 = unlimited)")
}

// GetCommand returns the run command for registration with root.
func GetCommand() *cobra.Command {
	return runCmd
}
