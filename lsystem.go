package lindenmayer

import (
	"io"
	"log/slog"
	"time"
)

// LSystem is the aggregate a grammar author works with: an axiom, the
// current state with its freshness bitmap, an ordered rule list, and
// optional shared parameter/RNG handles. LSystem is a value type: Rewrite,
// Evolve and Reset return new values and never mutate the receiver, so older
// aggregates stay valid snapshots. The ParameterCell and RNG are the
// deliberate exception: they are shared by reference across every derived
// value.
type LSystem struct {
	axiom []Module
	state []Module
	fresh []bool
	rules []Rule

	params *ParameterCell
	rng    *RNG

	logger        *slog.Logger
	maxWorkers    int
	subsectionMin int
}

// Option configures an LSystem at construction.
type Option func(*LSystem)

// WithParameters attaches a shared parameter cell.
func WithParameters(cell *ParameterCell) Option {
	return func(ls *LSystem) { ls.params = cell }
}

// WithRNG attaches a shared RNG monitor.
func WithRNG(rng *RNG) Option {
	return func(ls *LSystem) { ls.rng = rng }
}

// WithSeed attaches a fresh RNG monitor seeded with the given value.
func WithSeed(seed uint64) Option {
	return func(ls *LSystem) { ls.rng = NewRNG(seed) }
}

// WithLogger routes per-generation debug logging to the given logger. The
// default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(ls *LSystem) { ls.logger = logger }
}

// WithWorkers caps the number of parallel workers one evolution may use.
func WithWorkers(n int) Option {
	return func(ls *LSystem) {
		if n > 0 {
			ls.maxWorkers = n
		}
	}
}

// New creates an L-system at its axiom with an empty rule list. The axiom
// slice is copied; the freshness bitmap starts all true.
func New(axiom []Module, opts ...Option) LSystem {
	ls := LSystem{
		axiom:         copySequence(axiom),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxWorkers:    DefaultMaxWorkers,
		subsectionMin: DefaultSubsectionMinimumSize,
	}
	for _, opt := range opts {
		opt(&ls)
	}
	ls.state = copySequence(ls.axiom)
	ls.fresh = allFresh(len(ls.axiom))
	return ls
}

// Rewrite returns a new aggregate with the rule appended. The rule list is
// copied on append so aggregates already holding the shorter list never
// observe the new rule.
func (ls LSystem) Rewrite(rule Rule) LSystem {
	next := ls
	rules := make([]Rule, len(ls.rules)+1)
	copy(rules, ls.rules)
	rules[len(ls.rules)] = rule
	next.rules = rules
	return next
}

// Evolve performs one synchronous rewrite pass and returns the evolved
// aggregate. On failure the receiver is returned unchanged alongside the
// error; no partial generation is ever committed.
func (ls LSystem) Evolve() (LSystem, error) {
	start := time.Now()
	state, fresh, err := ls.evolveOnce()
	if err != nil {
		return ls, err
	}

	next := ls
	next.state = state
	next.fresh = fresh

	produced := 0
	for _, f := range fresh {
		if f {
			produced++
		}
	}
	ls.logger.Debug("generation evolved",
		"len", len(state),
		"produced", produced,
		"elapsed", time.Since(start),
	)
	return next, nil
}

// EvolveN folds Evolve n times, stopping at the first failing generation.
// The error reports which iteration failed; the returned aggregate is the
// last good one.
func (ls LSystem) EvolveN(n int) (LSystem, error) {
	current := ls
	for gen := 1; gen <= n; gen++ {
		next, err := current.Evolve()
		if err != nil {
			return current, &EvolutionError{Generation: gen, Err: err}
		}
		current = next
	}
	return current, nil
}

// Reset returns an aggregate back at the axiom with freshness all true. A
// shared RNG monitor is rewound to its original seed at position 0, which is
// visible to every aggregate sharing it.
func (ls LSystem) Reset() LSystem {
	next := ls
	next.state = copySequence(ls.axiom)
	next.fresh = allFresh(len(ls.axiom))
	if ls.rng != nil {
		ls.rng.Reset()
	}
	return next
}

// SetSeed reseeds the shared RNG monitor, attaching a fresh one if the
// aggregate has none. The monitor stays shared with every aggregate derived
// from this one.
func (ls LSystem) SetSeed(seed uint64) LSystem {
	next := ls
	if next.rng == nil {
		next.rng = NewRNG(seed)
	} else {
		next.rng.SetSeed(seed)
	}
	return next
}

// SetParameters replaces the contents of the shared parameter cell,
// attaching a fresh cell if the aggregate has none.
func (ls LSystem) SetParameters(value any) LSystem {
	next := ls
	if next.params == nil {
		next.params = NewParameterCell(value)
	} else {
		next.params.Update(value)
	}
	return next
}

// LimitWorkers returns a copy with the evolution worker cap adjusted.
// Values below 1 leave the cap unchanged.
func (ls LSystem) LimitWorkers(n int) LSystem {
	next := ls
	if n > 0 {
		next.maxWorkers = n
	}
	return next
}

// Len returns the length of the current state.
func (ls LSystem) Len() int {
	return len(ls.state)
}

// Module returns the module at the given position of the current state.
// Out-of-range positions panic.
func (ls LSystem) Module(i int) Module {
	return ls.state[i]
}

// Fresh reports whether the module at the given position was produced in the
// most recent rewrite. Out-of-range positions panic.
func (ls LSystem) Fresh(i int) bool {
	return ls.fresh[i]
}

// Modules returns a copy of the current state.
func (ls LSystem) Modules() []Module {
	return copySequence(ls.state)
}

// Freshness returns a copy of the freshness bitmap. Its length always equals
// Len().
func (ls LSystem) Freshness() []bool {
	out := make([]bool, len(ls.fresh))
	copy(out, ls.fresh)
	return out
}

// RuleCount returns the number of rules in the ordered rule list.
func (ls LSystem) RuleCount() int {
	return len(ls.rules)
}

// RuleDescriptions returns one human-readable kind-triple per rule, in
// priority order.
func (ls LSystem) RuleDescriptions() []string {
	out := make([]string, len(ls.rules))
	for i, r := range ls.rules {
		out[i] = r.Pattern().String()
	}
	return out
}

// Parameters returns the shared parameter cell, nil when none is attached.
func (ls LSystem) Parameters() *ParameterCell {
	return ls.params
}

// RNG returns the shared RNG monitor, nil when none is attached.
func (ls LSystem) RNG() *RNG {
	return ls.rng
}

// String renders the current state by concatenating module labels.
func (ls LSystem) String() string {
	return SequenceString(ls.state)
}

func copySequence(seq []Module) []Module {
	out := make([]Module, len(seq))
	copy(out, seq)
	return out
}

func allFresh(n int) []bool {
	fresh := make([]bool, n)
	for i := range fresh {
		fresh[i] = true
	}
	return fresh
}
