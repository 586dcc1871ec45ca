package walk

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// preWalk implements Pre-order rewriting: the rule is invoked at N
// before any of its children. If it replaces N, the children actually
// traversed are the children of the replacement, not of the original N
// -- the walk does not re-walk a handler's own output beyond that one
// substitution (re-traversal to a fixed point is the caller's job via
// rewriter.FixedPoint).
func preWalk(r rule.RewriteRule, n arbor.Node, dir Direction, path arbor.Path) (arbor.Node, error) {
	replacement, err := invokeRewrite(r, n, path)
	if err != nil {
		return nil, err
	}
	base := n
	if replacement != nil {
		tracer().Debugf("pre: variant %q replaced at %s", n.VariantTag(), path)
		base = replacement
	}
	refs := orderedChildRefs(base, dir)
	results := make([]arbor.Node, len(refs))
	for i, ref := range refs {
		childResult, err := preWalk(r, ref.node, dir, ref.path(path))
		if err != nil {
			return nil, err
		}
		results[i] = childResult
	}
	rebuilt, err := rebuildWithResults(base, refs, results)
	if err != nil {
		return nil, arbor.NewValidationError(base.VariantTag(), path, err)
	}
	return rebuilt, nil
}
