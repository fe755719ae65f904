package lindenmayer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// sized is a module exposing one named value to expression guards.
type sized struct {
	size float64
}

func (sized) Kind() Kind { return "S" }

func (s sized) Get(name string) (float64, error) {
	if name == "size" {
		return s.size, nil
	}
	return 0, errors.Errorf("undefined variable %q", name)
}

// block is a parameter block exposing one named value.
type block struct {
	limit float64
}

func (b block) Get(name string) (float64, error) {
	if name == "limit" {
		return b.limit, nil
	}
	return 0, errors.Errorf("undefined parameter %q", name)
}

func TestExpressionGuardModuleValues(t *testing.T) {
	guard, err := ExpressionGuard("size > 2")
	require.NoError(t, err)

	ok, err := guard(Context{Direct: sized{size: 3}}, nil)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = guard(Context{Direct: sized{size: 1}}, nil)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExpressionGuardChainsToParameters(t *testing.T) {
	guard, err := ExpressionGuard("size < limit")
	require.NoError(t, err)

	ok, err := guard(Context{Direct: sized{size: 2}}, block{limit: 5})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = guard(Context{Direct: sized{size: 7}}, block{limit: 5})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExpressionGuardModuleShadowsParameters(t *testing.T) {
	// "size" resolves against the module first even if the block also
	// fails to define it; the chain only falls through on a miss.
	guard, err := ExpressionGuard("size == 4")
	require.NoError(t, err)

	ok, err := guard(Context{Direct: sized{size: 4}}, block{limit: 1})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestExpressionGuardUndefinedVariable(t *testing.T) {
	guard, err := ExpressionGuard("missing > 0")
	require.NoError(t, err)

	_, err = guard(Context{Direct: sized{}}, block{})
	require.Error(t, err)
}

func TestExpressionGuardParseError(t *testing.T) {
	_, err := ExpressionGuard("size >")
	require.Error(t, err)

	require.Panics(t, func() { MustExpressionGuard("size >") })
}

func TestExpressionGuardNonBooleanResult(t *testing.T) {
	guard, err := ExpressionGuard("size + 1")
	require.NoError(t, err)

	_, err = guard(Context{Direct: sized{size: 1}}, nil)
	require.Error(t, err)
}
