// Package render implements the "render" subcommand: re-render a
// JSON-captured grid snapshot without re-solving.
package render

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loomcollapse/loomcollapse/pkg/common"
	"github.com/loomcollapse/loomcollapse/pkg/render"
	"github.com/loomcollapse/loomcollapse/pkg/tileset"
)

var (
	coords  bool
	noColor bool
)

var renderCmd = &cobra.Command{
	Use:   "render <dump-name>",
	Short: "Re-render a captured grid snapshot",
	Long: `Render reads a JSON snapshot previously written by 'loomcollapse
run --dump' and prints it, without driving the solver again.

Example:
  loomcollapse render run1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := common.DumpFilePath(args[0])
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		defer f.Close()

		snap, err := render.ReadJSON(f)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		rs, err := tileset.Get(snap.Tileset)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		grid, err := render.Rehydrate(snap, rs)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		opts := render.Options{MaxEntropy: len(rs.Tiles), ShowCoords: coords, Color: !noColor}
		render.Grid(os.Stdout, grid, opts)
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&coords, "coords", false, "print row/column coordinate gutters")
	renderCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI coloring")
}

// GetCommand returns the render command for registration with root.
func GetCommand() *cobra.Command {
	return renderCmd
}
