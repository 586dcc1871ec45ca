package walk

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// inWalk implements In-order rewriting: read-only, child-interleaved
// with N. For a node with children c1...ck, the visit order is c1, N,
// c2...ck. reverse first reverses the full child-order list, then
// applies the same "first child, then N, then the rest" interleaving
// to the reversed list -- for a binary node this reduces to the
// expected left/right swap, and it is the open question's resolved
// generalization to nodes with more than two children (spec's design
// notes).
func inWalk(r rule.RewriteRule, n arbor.Node, dir Direction, path arbor.Path) error {
	refs := orderedChildRefs(n, dir)
	if len(refs) == 0 {
		return invokeReadOnly(r, n, path, In)
	}
	first, rest := refs[0], refs[1:]
	if err := inWalk(r, first.node, dir, first.path(path)); err != nil {
		return err
	}
	if err := invokeReadOnly(r, n, path, In); err != nil {
		return err
	}
	for _, ref := range rest {
		if err := inWalk(r, ref.node, dir, ref.path(path)); err != nil {
			return err
		}
	}
	return nil
}
