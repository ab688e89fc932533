// Package wfc implements a generic Wave Function Collapse
// constraint-propagation engine.
//
// A grid (or any Shape) starts with every cell holding the full set of
// candidate values. The Solver repeatedly selects the uncollapsed cell with
// the smallest number of remaining candidates (the lowest entropy), fixes
// it to one candidate chosen at random, and propagates that choice to
// neighboring cells through a deduplicating priority queue, filtering each
// neighbor's candidates against an external compatibility Predicate. The
// run ends when every cell is collapsed, or fails at the start of the outer
// iteration after the one that drove a cell's candidate list to empty.
//
// The package never backtracks: a contradiction is terminal for the run.
// Callers that need a solution re-run with a new RNG seed.
package wfc
