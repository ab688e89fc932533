// Package tileset implements the "tileset" subcommand group.
package tileset

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/loomcollapse/loomcollapse/pkg/tileset"
)

var tilesetCmd = &cobra.Command{
	Use:   "tileset",
	Short: "Inspect built-in tilesets",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in tileset names, tile counts, and recommended kernel size",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := tileset.List()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTILES\tKERNEL\tSIZE\tDESCRIPTION")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%d\t%dx%d\t%dx%d\t%s\n",
				info.Name, info.TileCount, info.RecommendedKW, info.RecommendedKH,
				info.RecommendedSize, info.RecommendedSize, info.Description)
		}
		return w.Flush()
	},
}

func init() {
	tilesetCmd.AddCommand(listCmd)
}

// GetCommand returns the tileset command for registration with root.
func GetCommand() *cobra.Command {
	return tilesetCmd
}
