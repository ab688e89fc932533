// Package main provides the loomcollapse CLI tool.
//
// # Overview
//
// loomcollapse is a command-line driver and reusable library for a generic
// wave function collapse constraint-propagation engine. The engine lives in
// pkg/wfc and knows nothing about tiles, grids of a particular size, or
// terminal output; everything domain-specific is supplied as an external
// collaborator through the Shape/Kernel/Predicate interfaces.
//
// # Key Features
//
//   - A generic, reusable WFC solver (pkg/wfc) over any Shape implementation
//   - A concrete Grid2D shape with cutoff or wrapping border policies
//   - A small set of built-in tilesets (pkg/tileset) exercising both
//     symmetric and Wang-style edge-matching adjacency rules
//   - Terminal rendering with entropy-density glyphs and contradiction
//     highlighting (pkg/render)
//   - A concurrent batch runner for exploring many seeds at once (pkg/batch)
//
// # Installation & Building
//
//	go build
//	./loomcollapse --help
//
// # Commands
//
// ## run
//
// Runs a single collapse attempt to completion, printing the grid after
// every outer iteration when --verbose is set, and always printing the
// final state (collapsed, or left as-is at the point of contradiction).
//
// Examples:
//
//	loomcollapse run --tileset stripes --size 8x8
//	loomcollapse run --tileset circuit --size medium --kernel wide --border wrapping
//	loomcollapse run --tileset blob --size 16x16 --seed 42 --dump run1
//
// Flags:
//
//	--tileset    Tileset name (default "stripes")
//	--size       Grid size: a preset (small, medium, large) or WxH
//	--kernel     Kernel size: a preset (vonneumannplus, wide) or WxH
//	--border     Border policy: cutoff or wrapping
//	--seed       RNG seed (0 = time-derived)
//	--coords     Print row/column coordinate gutters
//	--no-color   Disable ANSI coloring
//	--dump       Write the final grid as JSON under the output directory
//
// ## batch
//
// Runs many independent attempts concurrently across --workers goroutines
// and prints a table of per-attempt outcomes. Because the core solver never
// backtracks, a batch's only strategy against a contradiction is trying
// another seed; batch is how that retry policy is expressed.
//
// Examples:
//
//	loomcollapse batch --tileset circuit --size medium --count 50
//	loomcollapse batch --tileset stripes --count 20 --seed 1000 -j 4
//
// Flags:
//
//	--tileset, --size, --kernel, --border, --seed   same as run
//	--count, -c   number of attempts (default 10)
//
// ## render
//
// Re-renders a JSON snapshot written by 'run --dump', without driving the
// solver again.
//
// Example:
//
//	loomcollapse render run1
//
// ## tileset list
//
// Prints every built-in tileset's name, tile count, recommended kernel
// size, and recommended grid size.
//
// # Global Flags
//
//	--verbose, -v    Enable verbose step-by-step output
//	--workers, -j    Concurrent worker count: integer, "half", or "full"
//
// # Testing
//
// Unit tests live alongside their packages (pkg/wfc, pkg/tileset,
// pkg/render, pkg/config, pkg/batch), using the standard library's testing
// package and table-driven cases in the style established in pkg/wfc.
// Benchmarks for the solver and the batch runner live in
// benchmark_test.go at the repository root.
package main
