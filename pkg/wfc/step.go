package wfc

// Step is a resumable handle onto one solver run. Each call to Next
// performs exactly one outer iteration (one collapse plus its full
// propagation pass) and hands back the shape so a caller can render or
// snapshot intermediate state. The iteration that completes the shape or
// empties a cell's candidate list still yields; the following call detects
// the finished or contradicted shape, terminates the run, and Next reports
// that by returning ok=false from then on.
type Step[I comparable, V comparable] struct {
	solver *Solver[I, V]
	shape  Shape[I, V]

	terminated bool
	err        error
}

// Collapse starts a new run over shape, driven by predicate and rng. No
// outer iteration has happened yet; call Next or Finalize to advance it.
func Collapse[I comparable, V comparable](shape Shape[I, V], predicate Predicate[I, V], rng RNG) *Step[I, V] {
	return &Step[I, V]{
		solver: NewSolver(shape, predicate, rng),
		shape:  shape,
	}
}

// Next advances the run by one outer iteration. It returns the shape and
// ok=true if the run is still in progress, or ok=false if this call (or an
// earlier one) terminated the run. Once terminated, Next keeps returning
// (nil, false); call Err to see why.
func (s *Step[I, V]) Next() (Shape[I, V], bool) {
	if s.terminated {
		return nil, false
	}

	result, err := s.solver.step()
	switch result {
	case outcomeYield:
		return s.shape, true
	case outcomeSucceeded:
		s.terminated = true
		return nil, false
	default: // outcomeFailed
		s.terminated = true
		s.err = err
		return nil, false
	}
}

// Finalize drains the run to termination, ignoring every intermediate
// state, and returns the finished shape or the error that stopped it.
// Calling Finalize more than once, or after the run has already terminated
// via Next, returns the same result without doing further work.
func (s *Step[I, V]) Finalize() (Shape[I, V], error) {
	for !s.terminated {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.shape, nil
}

// Done reports whether the run has terminated, successfully or not.
func (s *Step[I, V]) Done() bool { return s.terminated }

// Err returns the error that terminated the run, or nil if the run
// succeeded or is still in progress.
func (s *Step[I, V]) Err() error { return s.err }
