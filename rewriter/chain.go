package rewriter

import (
	"fmt"

	"github.com/arborlang/arbor/pass"
)

// Chain is sequential pass composition: Chain(p1,...,pn)(root) is
// pn(...(p2(p1(root)))...). Any failure aborts the remaining passes.
type Chain struct {
	passes []pass.Pass
}

// NewChain builds a Chain over an ordered list of passes.
func NewChain(passes ...pass.Pass) *Chain {
	return &Chain{passes: passes}
}

// Apply runs every pass in order, feeding each one's result to the
// next.
func (c *Chain) Apply(root any) (any, error) {
	v := root
	for i, p := range c.passes {
		tracer().Debugf("chain: running step %d/%d", i+1, len(c.passes))
		var err error
		v, err = p(v)
		if err != nil {
			return nil, fmt.Errorf("arbor/rewriter: chain step %d: %w", i, err)
		}
	}
	return v, nil
}

// AsPass adapts c into a pass.Pass, so a Chain can itself be a stage of
// a larger Chain (Chain associativity: Chain(Chain(a,b),c) behaves
// identically to Chain(a,Chain(b,c)) and to Chain(a,b,c), since all
// three reduce to the same sequential application).
func (c *Chain) AsPass() pass.Pass {
	return c.Apply
}
