package lindenmayer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultSubsectionMinimumSize is the smallest slice of the input worth
// handing to its own worker; shorter inputs evolve on the calling goroutine.
const DefaultSubsectionMinimumSize = 64

// DefaultMaxWorkers caps evolution parallelism for aggregates built without
// WithWorkers.
var DefaultMaxWorkers = runtime.NumCPU()

// evolveOnce runs one synchronous rewrite pass over the current state and
// returns the next generation with its freshness bitmap.
//
// The pass has two phases. Matching resolves the first applicable rule per
// position against the input sequence only, so it parallelizes freely across
// subsections. Production parallelizes the same way unless an RNG monitor is
// attached: stochastic producers must draw in strict index order for the
// draw sequence to be reproducible, so that path runs sequentially.
func (ls LSystem) evolveOnce() ([]Module, []bool, error) {
	input := ls.state
	if len(input) == 0 {
		return []Module{}, []bool{}, nil
	}

	// Snapshot the parameter block once; the cell is only ever updated
	// between generations.
	var params any
	if ls.params != nil {
		params = ls.params.Unwrap()
	}

	splits, size, rem := ls.splits(len(input))

	resolved := make([]Rule, len(input))
	if splits == 1 {
		if err := ls.resolveSection(resolved, input, 0, len(input), params); err != nil {
			return nil, nil, err
		}
	} else {
		g := new(errgroup.Group)
		for i, cursor := 0, 0; i < splits; i++ {
			lo := cursor
			hi := lo + size
			if i < rem {
				hi++
			}
			cursor = hi
			g.Go(func() error {
				return ls.resolveSection(resolved, input, lo, hi, params)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	if splits == 1 || ls.rng != nil {
		return ls.produceSection(input, resolved, 0, len(input), params)
	}

	type sectionOutput struct {
		modules []Module
		fresh   []bool
	}
	outputs := make([]sectionOutput, splits)
	g := new(errgroup.Group)
	for i, cursor := 0, 0; i < splits; i++ {
		w := i
		lo := cursor
		hi := lo + size
		if i < rem {
			hi++
		}
		cursor = hi
		g.Go(func() error {
			modules, fresh, err := ls.produceSection(input, resolved, lo, hi, params)
			if err != nil {
				return err
			}
			outputs[w] = sectionOutput{modules: modules, fresh: fresh}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	total := 0
	for _, section := range outputs {
		total += len(section.modules)
	}
	modules := make([]Module, 0, total)
	fresh := make([]bool, 0, total)
	for _, section := range outputs {
		modules = append(modules, section.modules...)
		fresh = append(fresh, section.fresh...)
	}
	return modules, fresh, nil
}

// resolveSection finds, for each position in [lo, hi), the first rule in
// priority order that matches the position's context window. Positions with
// no matching rule stay nil and pass through unchanged.
func (ls LSystem) resolveSection(resolved []Rule, input []Module, lo, hi int, params any) error {
	for i := lo; i < hi; i++ {
		ctx := contextAt(input, i)
		for _, rule := range ls.rules {
			ok, err := rule.Matches(ctx, params)
			if err != nil {
				return &GuardError{Position: i, Err: err}
			}
			if ok {
				resolved[i] = rule
				break
			}
		}
	}
	return nil
}

// produceSection rewrites positions [lo, hi) into a fresh output buffer.
// Matched positions append whatever their producer returns, marked fresh;
// unmatched positions copy the input module, marked stale.
func (ls LSystem) produceSection(input []Module, resolved []Rule, lo, hi int, params any) ([]Module, []bool, error) {
	modules := make([]Module, 0, hi-lo)
	fresh := make([]bool, 0, hi-lo)
	for i := lo; i < hi; i++ {
		rule := resolved[i]
		if rule == nil {
			modules = append(modules, input[i])
			fresh = append(fresh, false)
			continue
		}

		produced, err := rule.Produce(contextAt(input, i), params, ls.rng)
		if err != nil {
			return nil, nil, &ProduceError{Position: i, Err: err}
		}
		modules = append(modules, produced...)
		for range produced {
			fresh = append(fresh, true)
		}
	}
	return modules, fresh, nil
}

// contextAt builds the context window for one position of the input
// sequence. Neighbors come from the input only, never from modules already
// produced this pass.
func contextAt(input []Module, i int) Context {
	ctx := Context{Direct: input[i]}
	if i > 0 {
		ctx.Left = input[i-1]
	}
	if i < len(input)-1 {
		ctx.Right = input[i+1]
	}
	return ctx
}

// splits sizes the worker pool the same way for both phases: enough
// subsections to keep each above the minimum size, capped by the worker
// limit.
func (ls LSystem) splits(n int) (splits, size, rem int) {
	v := n / ls.subsectionMin
	switch {
	case v <= 1:
		splits = 1
	case v < ls.maxWorkers:
		splits = v
	default:
		splits = ls.maxWorkers
	}
	return splits, n / splits, n % splits
}
