package walk

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// ConvertWalk is the Post-only conversion walk: there is deliberately
// no Strategy field, so a Pre/In/Level conversion walk cannot even be
// constructed, let alone run -- conversion requires every child already
// converted before the parent handler sees them, which only Post order
// guarantees.
type ConvertWalk[R any] struct {
	Direction Direction
	Rule      rule.ConversionRule[R]
}

// NewConvert builds a ConvertWalk. Direction defaults to Forward; use
// Reversed to flip it.
func NewConvert[R any](r rule.ConversionRule[R]) *ConvertWalk[R] {
	return &ConvertWalk[R]{Direction: Forward, Rule: r}
}

// Reversed returns a copy of w with its Direction flipped to Reverse.
func (w *ConvertWalk[R]) Reversed() *ConvertWalk[R] {
	w2 := *w
	w2.Direction = Reverse
	return &w2
}

// Apply runs the walk over root, returning the terminal conversion
// result produced at the root.
func (w *ConvertWalk[R]) Apply(root arbor.Node) (R, error) {
	tracer().Infof("applying Post conversion walk (direction=%s)", w.Direction)
	return postConvert[R](w.Rule, root, w.Direction, nil)
}

// slotKey identifies one childRef's position well enough to look its
// converted result back up after traversal order (which may be
// reversed) has scrambled the order results were produced in.
type slotKey struct {
	field     string
	elemIndex int
}

// convertFrame is one level of the explicit work stack postConvert
// uses in place of recursion, mirroring postFrame in post.go --
// conversion is the highest-traffic strategy (the only legal one for
// a ConversionRule), so it gets the same iterative postorder rewrite
// rather than growing the Go call stack with tree depth.
type convertFrame[R any] struct {
	node    arbor.Node
	path    arbor.Path
	refs    []childRef
	results []R
	next    int
}

// postConvert performs the Post-order conversion traversal: every
// child is converted (in Direction order, so that rule-internal
// accumulator state observes the spec'd sequence) before the parent's
// handler is invoked with their results assembled back into
// field-shaped (and container-shaped) Results.
func postConvert[R any](r rule.ConversionRule[R], root arbor.Node, dir Direction, path arbor.Path) (R, error) {
	var zero R
	refs := orderedChildRefs(root, dir)
	stack := []*convertFrame[R]{{node: root, path: path, refs: refs, results: make([]R, len(refs))}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.refs) {
			ref := top.refs[top.next]
			childPath := ref.path(top.path)
			childRefsList := orderedChildRefs(ref.node, dir)
			stack = append(stack, &convertFrame[R]{
				node:    ref.node,
				path:    childPath,
				refs:    childRefsList,
				results: make([]R, len(childRefsList)),
			})
			continue
		}

		byKey := make(map[slotKey]R, len(top.refs))
		for i, ref := range top.refs {
			byKey[slotKey{ref.field, ref.elemIndex}] = top.results[i]
		}

		results := make(rule.Results, len(top.node.Fields()))
		for _, f := range top.node.Fields() {
			switch v := f.Value.(type) {
			case arbor.Node:
				results[f.Name] = byKey[slotKey{f.Name, -1}]
			case arbor.Container:
				results[f.Name] = convertedContainer(v, f.Name, byKey)
			default:
				results[f.Name] = f.Value
			}
		}
		value, err := invokeConvert[R](r, top.node, results, top.path)
		if err != nil {
			return zero, err
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return value, nil
		}
		parent := stack[len(stack)-1]
		parent.results[parent.next] = value
		parent.next++
	}
	panic("arbor/walk: postConvert: unreachable")
}

// convertedContainer assembles a field's converted container shape: a
// ContainerResult with Node elements replaced by their converted
// result, leaves passed through verbatim, and Keys populated (parallel
// to Elements) only for a KindMapping container -- preserving enough
// shape information that a generic handler (e.g. a pretty-printer) can
// still tell a sequence from a set from a mapping after conversion.
func convertedContainer[R any](c arbor.Container, field string, byKey map[slotKey]R) rule.ContainerResult {
	elems := c.Elements()
	out := make([]any, len(elems))
	for i, el := range elems {
		if _, ok := el.(arbor.Node); ok {
			out[i] = byKey[slotKey{field, i}]
		} else {
			out[i] = el
		}
	}
	res := rule.ContainerResult{Kind: c.Kind(), Elements: out}
	if kc, ok := c.(arbor.KeyedContainer); ok {
		res.Keys = kc.Keys()
	}
	return res
}
