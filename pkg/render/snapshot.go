package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// Snapshot is the JSON-serializable capture of a Grid2D's state, written by
// `run --dump` and re-rendered by the render command without re-solving.
type Snapshot struct {
	Tileset string  `json:"tileset"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	KernelW int     `json:"kernel_w"`
	KernelH int     `json:"kernel_h"`
	Cells   []Cell  `json:"cells"`
}

// Cell captures one node's state: its position, whichever candidate tile
// IDs remain, and whether it is collapsed.
type Cell struct {
	X          int   `json:"x"`
	Y          int   `json:"y"`
	Candidates []int `json:"candidates"`
	Collapsed  bool  `json:"collapsed"`
}

// Capture builds a Snapshot of g's current state without mutating it.
func Capture(tilesetName string, g *wfc.Grid2D[tileset.Tile]) Snapshot {
	snap := Snapshot{
		Tileset: tilesetName,
		Width:   g.Width(),
		Height:  g.Height(),
	}
	snap.KernelW, snap.KernelH = g.KernelSize()

	for _, p := range g.IterNodeIDs() {
		node, ok := g.GetNode(p)
		if !ok {
			continue
		}
		ids := make([]int, 0, len(node.Candidates()))
		for _, c := range node.Candidates() {
			ids = append(ids, c.ID)
		}
		snap.Cells = append(snap.Cells, Cell{X: p.X, Y: p.Y, Candidates: ids, Collapsed: node.IsCollapsed()})
	}
	return snap
}

// WriteJSON writes snap to w as indented JSON.
func WriteJSON(w io.Writer, snap Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// ReadJSON reads a Snapshot previously written by WriteJSON.
func ReadJSON(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("render: decoding snapshot: %w", err)
	}
	return snap, nil
}

// Rehydrate rebuilds a Grid2D from a Snapshot against rs, restoring each
// cell's remaining candidates exactly as captured. The border policy is not
// part of the snapshot since rendering never re-propagates; Cutoff is used
// for kernel construction, matching how the render command only ever reads
// cells, never re-solves.
func Rehydrate(snap Snapshot, rs tileset.Ruleset) (*wfc.Grid2D[tileset.Tile], error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, fmt.Errorf("render: snapshot has non-positive dimensions %dx%d", snap.Width, snap.Height)
	}
	grid := wfc.NewGrid2D(snap.Width, snap.Height, snap.KernelW, snap.KernelH, wfc.Cutoff, tileset.NewCandidates(rs))

	byID := make(map[int]tileset.Tile, len(rs.Tiles))
	for _, t := range rs.Tiles {
		byID[t.ID] = t
	}

	for _, cell := range snap.Cells {
		node, ok := grid.GetNode(wfc.Point{X: cell.X, Y: cell.Y})
		if !ok {
			return nil, fmt.Errorf("render: snapshot cell (%d,%d) outside %dx%d grid", cell.X, cell.Y, snap.Width, snap.Height)
		}
		keep := make(map[int]bool, len(cell.Candidates))
		for _, id := range cell.Candidates {
			keep[id] = true
		}
		node.Restrict(func(t tileset.Tile) bool { return keep[t.ID] })

		if cell.Collapsed && len(cell.Candidates) == 1 {
			if tile, ok := byID[cell.Candidates[0]]; ok {
				node.Fix(tile)
			}
		}
	}
	return grid, nil
}
