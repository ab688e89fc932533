package wfc

import "errors"

// Sentinel errors returned by a Solver run. All of them are terminal: the
// package never retries or backtracks internally.
var (
	// ErrEmptyInput is returned when the shape has zero cells.
	ErrEmptyInput = errors.New("wfc: shape has no nodes")

	// ErrInvalidSuperposition is returned when propagation drove some
	// cell's candidate list to empty. The caller should re-run with a
	// different seed or a looser predicate; the engine does not
	// backtrack.
	ErrInvalidSuperposition = errors.New("wfc: propagation produced an overspecified cell")

	// ErrNotImplemented is reserved for Shape implementations that
	// advertise an optional capability (such as LastCollapseRecorder)
	// but do not back it.
	ErrNotImplemented = errors.New("wfc: operation not implemented by this shape")

	// ErrIterationError marks a step iterator that terminated without
	// ever producing a result. A correct Solver/Step pairing never
	// returns this; it exists so Finalize has a total return type.
	ErrIterationError = errors.New("wfc: step iterator terminated without a result")
)
