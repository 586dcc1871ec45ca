package walk

import "github.com/arborlang/arbor"

// childRef locates one Node-valued child of a parent node: either a
// bare field, or one element of a Container-valued field. Leaves (and
// non-Node container elements) are never children -- they ride along
// unchanged when the parent is rebuilt.
type childRef struct {
	field     string
	container arbor.Container // nil for a bare node field
	elemIndex int             // index within container.Elements(); -1 for a bare field
	node      arbor.Node
}

func (c childRef) path(base arbor.Path) arbor.Path {
	if c.container == nil {
		return base.Append(c.field, -1)
	}
	return base.Append(c.field, c.elemIndex)
}

// childRefs flattens a node's fields, left to right in declaration
// order and container-iteration order within a field, into the single
// ordered sequence of child nodes every strategy treats as "the
// children of N". Grounded on terex/fp.children's left/right cons-cell
// child extraction, generalized to arbitrary named fields.
func childRefs(n arbor.Node) []childRef {
	var refs []childRef
	for _, f := range n.Fields() {
		switch v := f.Value.(type) {
		case arbor.Node:
			refs = append(refs, childRef{field: f.Name, elemIndex: -1, node: v})
		case arbor.Container:
			for i, el := range v.Elements() {
				if cn, ok := el.(arbor.Node); ok {
					refs = append(refs, childRef{field: f.Name, container: v, elemIndex: i, node: cn})
				}
			}
		}
	}
	return refs
}

// orderedChildRefs returns childRefs(n), reversed if dir is Reverse.
func orderedChildRefs(n arbor.Node, dir Direction) []childRef {
	refs := childRefs(n)
	if dir == Reverse {
		reverseRefs(refs)
	}
	return refs
}

func reverseRefs(refs []childRef) {
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
}

// rebuildWithResults reconstructs n from its original fields, with each
// childRef's node replaced by the corresponding entry of results
// (same length and order as refs). Container-valued fields are
// rebuilt once per field from a full copy of their original elements
// with only the Node-valued positions overwritten, then passed through
// Container.WithElements so the container can enforce its own shape
// semantics (order for a sequence, canonicalization for a set).
func rebuildWithResults(n arbor.Node, refs []childRef, results []arbor.Node) (arbor.Node, error) {
	fields := n.Fields().Clone()
	type pending struct {
		container arbor.Container
		elems     []any
	}
	byField := make(map[string]*pending)
	for i, ref := range refs {
		if ref.container == nil {
			fields = fields.With(ref.field, results[i])
			continue
		}
		p, ok := byField[ref.field]
		if !ok {
			p = &pending{container: ref.container, elems: append([]any(nil), ref.container.Elements()...)}
			byField[ref.field] = p
		}
		p.elems[ref.elemIndex] = results[i]
	}
	for field, p := range byField {
		rebuilt, err := p.container.WithElements(p.elems)
		if err != nil {
			return nil, err
		}
		fields = fields.With(field, rebuilt)
	}
	return n.Rebuild(fields)
}
