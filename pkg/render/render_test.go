package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

type fixedRNG struct{}

func (fixedRNG) Intn(n int) int { return 0 }

func solvedStripesGrid(t *testing.T) *wfc.Grid2D[tileset.Tile] {
	t.Helper()
	rs, err := tileset.Get("stripes")
	if err != nil {
		t.Fatalf("tileset.Get(stripes) error = %v", err)
	}
	g := wfc.NewGrid2D(3, 2, 3, 1, wfc.Cutoff, tileset.NewCandidates(rs))
	predicate := tileset.Compile(rs)
	shape, err := wfc.Collapse[wfc.Point, tileset.Tile](g, predicate, fixedRNG{}).Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return shape.(*wfc.Grid2D[tileset.Tile])
}

func TestGridRendersBordersAndDimensions(t *testing.T) {
	g := solvedStripesGrid(t)
	var buf bytes.Buffer
	Grid(&buf, g, Options{MaxEntropy: 2})

	out := buf.String()
	if !strings.Contains(out, "grid 3x2") {
		t.Errorf("output missing grid dimensions header:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + top border + 2 rows + bottom border = 5 lines, got %d:\n%s", len(lines), out)
	}
}

func TestGridEmptyDimensions(t *testing.T) {
	g := wfc.NewGrid2D(0, 0, 1, 1, wfc.Cutoff, []tileset.Tile{{ID: 0, Glyph: 'x'}})
	var buf bytes.Buffer
	Grid(&buf, g, Options{})
	if !strings.Contains(buf.String(), "empty grid") {
		t.Errorf("rendering a 0x0 grid should report it as empty, got:\n%s", buf.String())
	}
}

func TestEntropyGlyphBuckets(t *testing.T) {
	tests := []struct {
		entropy, max int
		want         string
	}{
		{1, 3, "."},
		{2, 3, ":"},
		{3, 3, "#"},
		{1, 1, ":"},
	}
	for _, tt := range tests {
		if got := entropyGlyph(tt.entropy, tt.max); got != tt.want {
			t.Errorf("entropyGlyph(%d, %d) = %q, want %q", tt.entropy, tt.max, got, tt.want)
		}
	}
}

func TestCellGlyphShowsTileGlyphWhenCollapsed(t *testing.T) {
	g := solvedStripesGrid(t)
	node, ok := g.GetNode(wfc.Point{X: 0, Y: 0})
	if !ok {
		t.Fatal("expected node at (0,0)")
	}
	glyph := cellGlyph(node, Options{Color: false}, false)
	if glyph != "0" && glyph != "1" {
		t.Errorf("cellGlyph() for a collapsed stripes cell = %q, want \"0\" or \"1\"", glyph)
	}
}

func TestColorAttrUnknownName(t *testing.T) {
	if _, ok := colorAttr("chartreuse"); ok {
		t.Error("colorAttr should fail for a name with no mapping")
	}
}
