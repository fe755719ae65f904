package lindenmayer

import "fmt"

// GuardError reports a guard that failed to evaluate at one position. A
// failing guard is a defect in the grammar definition (an illegal downcast,
// an unresolvable expression variable), not a normal non-match, so it aborts
// the generation rather than silently passing the module through.
type GuardError struct {
	Position int
	Err      error
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("guard failed at position %d: %v", e.Position, e.Err)
}

func (e *GuardError) Unwrap() error { return e.Err }

// ProduceError reports a producer that could not compute a replacement at
// one position. The generation is not partially committed.
type ProduceError struct {
	Position int
	Err      error
}

func (e *ProduceError) Error() string {
	return fmt.Sprintf("production failed at position %d: %v", e.Position, e.Err)
}

func (e *ProduceError) Unwrap() error { return e.Err }

// EvolutionError reports which generation of a multi-step evolution failed.
// Generations count from 1 relative to the aggregate EvolveN was called on;
// the caller keeps the last good aggregate.
type EvolutionError struct {
	Generation int
	Err        error
}

func (e *EvolutionError) Error() string {
	return fmt.Sprintf("evolution failed at iteration %d: %v", e.Generation, e.Err)
}

func (e *EvolutionError) Unwrap() error { return e.Err }
