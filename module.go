package lindenmayer

import (
	"fmt"
	"strings"
)

// Kind identifies a module's variant type within a grammar. Rules dispatch on
// kind equality, so two module values with the same Kind are interchangeable
// as far as matching is concerned.
type Kind string

// Module is one element of the rewritten sequence. Implementations carry
// whatever data their kind needs; the engine only ever reads the kind tag.
// Modules must be treated as immutable once they enter a sequence.
//
// A Module may additionally implement fmt.Stringer for a short debug label
// and Env to expose named values to expression guards.
type Module interface {
	Kind() Kind
}

// Name returns the module's debug label: its String() form when available,
// otherwise the kind tag.
func Name(m Module) string {
	if s, ok := m.(fmt.Stringer); ok {
		return s.String()
	}
	return string(m.Kind())
}

// SequenceString renders a sequence by concatenating module labels.
func SequenceString(seq []Module) string {
	var b strings.Builder
	for _, m := range seq {
		b.WriteString(Name(m))
	}
	return b.String()
}
