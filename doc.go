// Package lindenmayer implements a parallel term-rewriting engine for
// parametric, context-sensitive Lindenmayer systems.
//
// An LSystem aggregates an axiom, the current module sequence, and an
// ordered rule list. Each Evolve call rewrites the whole sequence in one
// synchronous pass: every position's context window is built from the
// previous generation, the first matching rule produces the replacement, and
// unmatched modules pass through unchanged. Rules may be context-sensitive
// (match on neighbor kinds), guarded (arbitrary predicate or a compiled
// expression over named values), parametric (read a shared ParameterCell),
// and stochastic (draw from a shared, seeded RNG monitor).
//
// Reproducibility is a core contract: the RNG is a position-tracked
// xoshiro256** generator behind a serializing monitor, and the engine draws
// in strict index order, so a given (seed, axiom, rules) triple always grows
// the same structure.
//
//	system := lindenmayer.New([]lindenmayer.Module{A{}}).
//		Rewrite(lindenmayer.Replace("A", A{}, B{})).
//		Rewrite(lindenmayer.Replace("B", A{}))
//	system, err := system.EvolveN(3)
//
// The engine is geometry-agnostic: it consumes and produces opaque typed
// modules. Turtle interpretation, rendering and grammar file formats are
// collaborator concerns and live outside this module.
package lindenmayer
