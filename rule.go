package lindenmayer

// GuardFunc is an optional predicate evaluated after a rule's kind checks
// pass. It receives the matched context and the current contents of the
// shared parameter block (nil when the system carries none). Returning an
// error marks a defect in the grammar definition and aborts the generation.
type GuardFunc func(ctx Context, params any) (bool, error)

// ProduceFunc computes the replacement for a matched position. It receives
// the matched context, the current parameter block contents, and the shared
// RNG monitor (nil when the system carries none). Returning an empty slice
// erases the module; returning an error aborts the generation.
type ProduceFunc func(ctx Context, params any, rng *RNG) ([]Module, error)

// Rule pairs a matcher with a producer. Rules never mutate state directly;
// they return a replacement list the engine splices into the next
// generation.
type Rule interface {
	// Pattern returns the kind-triple the rule dispatches on.
	Pattern() Pattern

	// Matches reports whether the rule fires for the given context. It must
	// not consume randomness; match resolution runs in parallel.
	Matches(ctx Context, params any) (bool, error)

	// Produce computes the replacement modules for a matched context.
	Produce(ctx Context, params any, rng *RNG) ([]Module, error)
}

var _ Rule = (*RewriteRule)(nil)

// RewriteRule is the general rule shape: a kind-triple pattern, an optional
// guard, and a producer. Every combination of context arity and
// parameter/RNG use is a RewriteRule whose closures ignore what they don't
// need.
type RewriteRule struct {
	pattern Pattern
	guard   GuardFunc
	produce ProduceFunc
}

// NewRule builds a rule from a pattern and a producer.
func NewRule(pattern Pattern, produce ProduceFunc) *RewriteRule {
	return &RewriteRule{pattern: pattern, produce: produce}
}

// NewGuardedRule builds a rule whose match additionally requires the guard
// to return true.
func NewGuardedRule(pattern Pattern, guard GuardFunc, produce ProduceFunc) *RewriteRule {
	return &RewriteRule{pattern: pattern, guard: guard, produce: produce}
}

// Replace builds the classic context-free rule: every module of the given
// kind is replaced by a fixed sequence.
func Replace(direct Kind, replacement ...Module) *RewriteRule {
	return ReplaceInContext(Pattern{Direct: direct}, replacement...)
}

// ReplaceInContext builds a fixed-replacement rule that only fires when the
// full pattern matches.
func ReplaceInContext(pattern Pattern, replacement ...Module) *RewriteRule {
	return &RewriteRule{
		pattern: pattern,
		produce: func(Context, any, *RNG) ([]Module, error) {
			out := make([]Module, len(replacement))
			copy(out, replacement)
			return out, nil
		},
	}
}

func (r *RewriteRule) Pattern() Pattern {
	return r.pattern
}

func (r *RewriteRule) Matches(ctx Context, params any) (bool, error) {
	if !r.pattern.Matches(ctx) {
		return false, nil
	}
	if r.guard == nil {
		return true, nil
	}
	return r.guard(ctx, params)
}

func (r *RewriteRule) Produce(ctx Context, params any, rng *RNG) ([]Module, error) {
	return r.produce(ctx, params, rng)
}
