package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	batchcmd "github.com/loomcollapse/loomcollapse/cmd/batch"
	rendercmd "github.com/loomcollapse/loomcollapse/cmd/render"
	runcmd "github.com/loomcollapse/loomcollapse/cmd/run"
	tilesetcmd "github.com/loomcollapse/loomcollapse/cmd/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/common"
)

var (
	verbose bool
	workers string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "loomcollapse",
	Short: "Wave Function Collapse engine and CLI",
	Long: `loomcollapse drives a generic wave function collapse solver over a
rectangular grid of tiles.

It provides commands for:
  - Running a single collapse attempt with live step rendering
  - Batching many seeded attempts concurrently and summarizing outcomes
  - Re-rendering a captured grid snapshot
  - Listing the built-in tilesets with their recommended kernel and grid sizes`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose

		count, err := common.ParseWorkers(workers)
		if err != nil {
			return fmt.Errorf("invalid --workers value: %w", err)
		}
		common.WorkersCount = count
		common.Verbose("Workers: %d (from flag: %s)", common.WorkersCount, workers)

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVarP(&workers, "workers", "j", "half", "number of concurrent workers (integer, 'half', or 'full')")

	rootCmd.AddCommand(runcmd.GetCommand())
	rootCmd.AddCommand(batchcmd.GetCommand())
	rootCmd.AddCommand(rendercmd.GetCommand())
	rootCmd.AddCommand(tilesetcmd.GetCommand())
}
