package render

import (
	"bytes"
	"testing"

	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

func TestCaptureAndRehydrateRoundTrip(t *testing.T) {
	rs, err := tileset.Get("stripes")
	if err != nil {
		t.Fatalf("tileset.Get(stripes) error = %v", err)
	}
	g := wfc.NewGrid2D(4, 1, 3, 1, wfc.Cutoff, tileset.NewCandidates(rs))
	predicate := tileset.Compile(rs)
	shape, err := wfc.Collapse[wfc.Point, tileset.Tile](g, predicate, fixedRNG{}).Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	solved := shape.(*wfc.Grid2D[tileset.Tile])

	snap := Capture("stripes", solved)
	if snap.Width != 4 || snap.Height != 1 {
		t.Fatalf("Capture() dimensions = %dx%d, want 4x1", snap.Width, snap.Height)
	}
	if len(snap.Cells) != 4 {
		t.Fatalf("Capture() produced %d cells, want 4", len(snap.Cells))
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, snap); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	decoded, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	rehydrated, err := Rehydrate(decoded, rs)
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}

	for _, p := range solved.IterNodeIDs() {
		want, _ := solved.GetNode(p)
		got, ok := rehydrated.GetNode(p)
		if !ok {
			t.Fatalf("rehydrated grid missing node %v", p)
		}
		wantValue, wantOK := want.CollapsedValue()
		gotValue, gotOK := got.CollapsedValue()
		if wantOK != gotOK || wantValue != gotValue {
			t.Errorf("node %v collapsed value = (%v, %v), want (%v, %v)", p, gotValue, gotOK, wantValue, wantOK)
		}
	}
}

func TestRehydrateRejectsNonPositiveDimensions(t *testing.T) {
	rs, _ := tileset.Get("stripes")
	if _, err := Rehydrate(Snapshot{Width: 0, Height: 0}, rs); err == nil {
		t.Error("Rehydrate() should fail for a snapshot with non-positive dimensions")
	}
}

func TestRehydrateRejectsOutOfBoundsCell(t *testing.T) {
	rs, _ := tileset.Get("stripes")
	snap := Snapshot{
		Width: 2, Height: 1, KernelW: 3, KernelH: 1,
		Cells: []Cell{{X: 5, Y: 0, Candidates: []int{0}, Collapsed: true}},
	}
	if _, err := Rehydrate(snap, rs); err == nil {
		t.Error("Rehydrate() should fail for a cell outside the declared grid")
	}
}
