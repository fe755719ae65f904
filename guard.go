package lindenmayer

import (
	"github.com/Knetic/govaluate"
	"github.com/pkg/errors"
)

// Env supplies named numeric values to expression guards. Modules and
// parameter blocks opt in by implementing it; a lookup that cannot resolve
// the name returns an error so the next source in the chain is consulted.
type Env interface {
	Get(name string) (float64, error)
}

// chainEnv resolves names against the matched module first, then against the
// shared parameter block.
type chainEnv struct {
	direct Env
	params Env
}

func (env chainEnv) Get(name string) (float64, error) {
	if env.direct != nil {
		if val, err := env.direct.Get(name); err == nil {
			return val, nil
		}
	}
	if env.params != nil {
		return env.params.Get(name)
	}
	return 0, errors.Errorf("undefined variable %q", name)
}

// wrappedEnv adapts an Env to govaluate's parameter lookup.
type wrappedEnv struct {
	inner Env
}

func (w wrappedEnv) Get(name string) (interface{}, error) {
	val, err := w.inner.Get(name)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// ExpressionGuard compiles a boolean expression into a GuardFunc. Names in
// the expression resolve against the matched direct module when it
// implements Env, then against the parameter block contents when they do.
// The expression is parsed once; each evaluation works on the values current
// at match time.
//
//	guard, err := ExpressionGuard("size < limit")
func ExpressionGuard(expr string) (GuardFunc, error) {
	evaluable, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing guard expression %q", expr)
	}

	return func(ctx Context, params any) (bool, error) {
		env := chainEnv{}
		if e, ok := ctx.Direct.(Env); ok {
			env.direct = e
		}
		if e, ok := params.(Env); ok {
			env.params = e
		}

		res, err := evaluable.Eval(wrappedEnv{env})
		if err != nil {
			return false, errors.Wrapf(err, "evaluating guard expression %q", expr)
		}
		b, ok := res.(bool)
		if !ok {
			return false, errors.Errorf("guard expression %q evaluated to %T, want bool", expr, res)
		}
		return b, nil
	}, nil
}

// MustExpressionGuard is ExpressionGuard for statically known expressions;
// it panics on a parse error.
func MustExpressionGuard(expr string) GuardFunc {
	guard, err := ExpressionGuard(expr)
	if err != nil {
		panic(err)
	}
	return guard
}
