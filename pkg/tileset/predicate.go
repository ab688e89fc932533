package tileset

import "github.com/loomcollapse/loomcollapse/pkg/wfc"

// Compile turns a Ruleset into a wfc.Predicate over a Grid2D of Tile. A
// candidate tile survives at a cell if, for every von Neumann direction
// with a neighbor inside the kernel, at least one of that neighbor's
// current candidates is still compatible with the tile in that direction.
// A neighbor that has already collapsed away every compatible candidate
// vetoes the tile outright; a neighbor still holding several candidates
// only vetoes it once none of them would work, matching the "some
// consistent assignment still exists" contract the core solver requires of
// a predicate.
func Compile(rs Ruleset) wfc.Predicate[wfc.Point, Tile] {
	return func(candidate Tile, k wfc.Kernel[wfc.Point, Tile]) bool {
		gk, ok := k.(*wfc.Grid2DKernel[Tile])
		if !ok {
			return true
		}

		for _, dir := range Directions {
			neighbor, ok := gk.GetOffset(dir.DX, dir.DY)
			if !ok {
				continue
			}

			allowedSet := rs.Allowed[dir][candidate.ID]
			if len(allowedSet) == 0 {
				return false
			}

			compatible := false
			for _, c := range neighbor.Candidates() {
				if allowedSet[c.ID] {
					compatible = true
					break
				}
			}
			if !compatible {
				return false
			}
		}
		return true
	}
}

// NewCandidates returns a fresh copy of rs's tiles, suitable as the initial
// candidate set passed to wfc.NewGrid2D.
func NewCandidates(rs Ruleset) []Tile {
	out := make([]Tile, len(rs.Tiles))
	copy(out, rs.Tiles)
	return out
}

// TileByID looks up a tile by its ID, as recorded on a Ruleset.
func TileByID(rs Ruleset, id int) (Tile, bool) {
	return rs.tileByID(id)
}
