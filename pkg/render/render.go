// Package render prints a Grid2D's current state to a writer: bordered, row
// by row with the highest row printed first, with optional coordinate
// gutters.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/loomcollapse/loomcollapse/pkg/tileset"
	"github.com/loomcollapse/loomcollapse/pkg/wfc"
)

// Options controls how Grid renders a shape.
type Options struct {
	// MaxEntropy is the number of tiles in the ruleset the grid was solved
	// against; it is the denominator used to bucket an uncollapsed cell's
	// entropy into a dot density.
	MaxEntropy int
	// ShowCoords prints row/column numbers in the margins.
	ShowCoords bool
	// Color disables ANSI coloring when false, for non-terminal output.
	Color bool
}

// Grid writes g's current state to w. It never mutates g.
func Grid(w io.Writer, g *wfc.Grid2D[tileset.Tile], opts Options) {
	width, height := g.Width(), g.Height()
	if width <= 0 || height <= 0 {
		fmt.Fprintf(w, "empty grid: %dx%d\n", width, height)
		return
	}

	lastID, hasLast := g.LastCollapsed()

	fmt.Fprintf(w, "grid %dx%d\n", width, height)
	printHorizontalBorder(w, width)

	for y := height - 1; y >= 0; y-- {
		if opts.ShowCoords {
			fmt.Fprintf(w, "%2d ", y)
		} else {
			fmt.Fprint(w, "   ")
		}
		fmt.Fprint(w, "| ")
		for x := 0; x < width; x++ {
			p := wfc.Point{X: x, Y: y}
			node, _ := g.GetNode(p)
			isLast := hasLast && lastID == p
			fmt.Fprintf(w, "%s ", cellGlyph(node, opts, isLast))
		}
		fmt.Fprint(w, "|\n")
	}

	printHorizontalBorder(w, width)

	if opts.ShowCoords {
		fmt.Fprint(w, "   ")
		for x := 0; x < width; x++ {
			fmt.Fprintf(w, "%2d ", x%100)
		}
		fmt.Fprint(w, "\n")
	}
}

func printHorizontalBorder(w io.Writer, width int) {
	fmt.Fprint(w, "   +")
	for x := 0; x < width; x++ {
		fmt.Fprint(w, "---")
	}
	fmt.Fprint(w, "+\n")
}

func cellGlyph(node *wfc.Node[wfc.Point, tileset.Tile], opts Options, isLast bool) string {
	switch {
	case node.IsOverspecified():
		return paint(opts, "X", color.FgRed, color.Bold)
	case node.IsCollapsed():
		value, _ := node.CollapsedValue()
		glyph := string(value.Glyph)
		attr, ok := colorAttr(value.ColorCode)
		if !ok {
			attr = color.FgWhite
		}
		if isLast {
			return paint(opts, glyph, attr, color.Bold, color.ReverseVideo)
		}
		return paint(opts, glyph, attr)
	default:
		return entropyGlyph(node.Entropy(), opts.MaxEntropy)
	}
}

// entropyGlyph buckets remaining candidates into a dot density: few
// remaining candidates (close to collapse) is sparse, many is dense.
func entropyGlyph(entropy, maxEntropy int) string {
	if maxEntropy <= 1 {
		return ":"
	}
	fraction := float64(entropy) / float64(maxEntropy)
	switch {
	case fraction <= 1.0/3.0:
		return "."
	case fraction <= 2.0/3.0:
		return ":"
	default:
		return "#"
	}
}

func paint(opts Options, text string, attrs ...color.Attribute) string {
	if !opts.Color {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

func colorAttr(name string) (color.Attribute, bool) {
	switch name {
	case "black":
		return color.FgBlack, true
	case "red":
		return color.FgRed, true
	case "green":
		return color.FgGreen, true
	case "yellow":
		return color.FgYellow, true
	case "blue":
		return color.FgBlue, true
	case "magenta":
		return color.FgMagenta, true
	case "cyan":
		return color.FgCyan, true
	case "white":
		return color.FgWhite, true
	default:
		return 0, false
	}
}
