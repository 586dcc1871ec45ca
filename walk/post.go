package walk

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// postFrame is one level of the explicit work stack postWalk uses in
// place of recursion -- the re-architecture design notes call for to
// keep tree depth from growing the Go call stack. Grounded on the same
// classic iterative postorder algorithm terex/fp.TreeDepthFirstCh uses
// for a binary cons cell, generalized here to an arbitrary, field-
// ordered list of children.
type postFrame struct {
	node    arbor.Node
	path    arbor.Path
	refs    []childRef
	results []arbor.Node
	next    int // index of the child currently being descended into / awaited
}

// postWalk implements Post-order rewriting: the rule is invoked at N
// only after every child has been visited and its result assembled
// into a rebuilt node, which is then what the rule sees.
func postWalk(r rule.RewriteRule, root arbor.Node, dir Direction) (arbor.Node, error) {
	refs := orderedChildRefs(root, dir)
	stack := []*postFrame{{node: root, refs: refs, results: make([]arbor.Node, len(refs))}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.refs) {
			ref := top.refs[top.next]
			childPath := ref.path(top.path)
			childRefsList := orderedChildRefs(ref.node, dir)
			stack = append(stack, &postFrame{
				node:    ref.node,
				path:    childPath,
				refs:    childRefsList,
				results: make([]arbor.Node, len(childRefsList)),
			})
			continue
		}

		rebuiltFromChildren, err := rebuildWithResults(top.node, top.refs, top.results)
		if err != nil {
			return nil, arbor.NewValidationError(top.node.VariantTag(), top.path, err)
		}
		replacement, err := invokeRewrite(r, rebuiltFromChildren, top.path)
		if err != nil {
			return nil, err
		}
		result := rebuiltFromChildren
		if replacement != nil {
			tracer().Debugf("post: variant %q replaced at %s", top.node.VariantTag(), top.path)
			result = replacement
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return result, nil
		}
		parent := stack[len(stack)-1]
		parent.results[parent.next] = result
		parent.next++
	}
	panic("arbor/walk: postWalk: unreachable")
}
