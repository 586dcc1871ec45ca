package walk

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// RewriteWalk pairs a traversal Strategy and Direction with a
// RewriteRule. It is a Pass (arbor/pass.FromRewrite adapts it) by
// virtue of its Apply method.
type RewriteWalk struct {
	Strategy  Strategy
	Direction Direction
	Rule      rule.RewriteRule
}

// NewRewrite builds a RewriteWalk. Direction defaults to Forward; use
// Reversed to flip it.
func NewRewrite(strategy Strategy, r rule.RewriteRule) *RewriteWalk {
	return &RewriteWalk{Strategy: strategy, Direction: Forward, Rule: r}
}

// Reversed returns a copy of w with its Direction flipped to Reverse.
func (w *RewriteWalk) Reversed() *RewriteWalk {
	w2 := *w
	w2.Direction = Reverse
	return &w2
}

// Apply runs the walk over root, returning the rewritten tree.
func (w *RewriteWalk) Apply(root arbor.Node) (arbor.Node, error) {
	tracer().Infof("applying %s rewrite walk (direction=%s)", w.Strategy, w.Direction)
	switch w.Strategy {
	case Pre:
		return preWalk(w.Rule, root, w.Direction, nil)
	case Post:
		return postWalk(w.Rule, root, w.Direction)
	case In:
		if err := inWalk(w.Rule, root, w.Direction, nil); err != nil {
			return nil, err
		}
		return root, nil
	case Level:
		if err := levelWalk(w.Rule, root, w.Direction); err != nil {
			return nil, err
		}
		return root, nil
	default:
		panic("arbor/walk: unknown strategy")
	}
}
