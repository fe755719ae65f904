package lindenmayer

// Context is the neighborhood a rule observes for one position: the module
// under consideration plus its immediate neighbors in the generation being
// consumed. Left is nil at position 0 and Right is nil at the last position.
// Contexts are always built from the previous generation, never from modules
// already produced in the generation under construction.
type Context struct {
	Left   Module
	Direct Module
	Right  Module
}

// Pattern is the kind-triple a rule matches against. The zero Kind on Left
// or Right leaves that side unconstrained: the pattern then matches any
// neighbor, present or absent. Direct is required.
type Pattern struct {
	Left   Kind
	Direct Kind
	Right  Kind
}

// Matches reports whether the context satisfies the pattern. The direct kind
// is the dominant discriminator and is checked first.
func (p Pattern) Matches(ctx Context) bool {
	if ctx.Direct == nil || ctx.Direct.Kind() != p.Direct {
		return false
	}
	if p.Left != "" && (ctx.Left == nil || ctx.Left.Kind() != p.Left) {
		return false
	}
	if p.Right != "" && (ctx.Right == nil || ctx.Right.Kind() != p.Right) {
		return false
	}
	return true
}

// String renders the pattern in "left < direct > right" form, omitting
// unconstrained sides, e.g. "A < B > C", "B > C" or plain "B".
func (p Pattern) String() string {
	out := string(p.Direct)
	if p.Left != "" {
		out = string(p.Left) + " < " + out
	}
	if p.Right != "" {
		out = out + " > " + string(p.Right)
	}
	return out
}
