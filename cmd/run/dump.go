package run

import (
	"os"

	"github.com/loomcollapse/loomcollapse/pkg/render"
	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

func dumpGrid(path string, g *wfc.Grid2D[tileset.Tile]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snap := render.Capture(tilesetName, g)
	return render.WriteJSON(f, snap)
}
