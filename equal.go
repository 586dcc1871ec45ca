package arbor

import "reflect"

// DeepEqual is the engine's reference implementation of the structural
// equality spec requires of Node.Equal. A concrete IR's Equal method can
// simply delegate here:
//
//	func (n *MyNode) Equal(other arbor.Node) bool { return arbor.DeepEqual(n, other) }
//
// It compares variant tags, then fields left to right: Node-valued
// fields recurse through DeepEqual, Container-valued fields compare
// shape-appropriately (sequences order-sensitive, sets as multisets,
// mappings by key), and leaves fall back to reflect.DeepEqual.
func DeepEqual(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.VariantTag() != b.VariantTag() {
		return false
	}
	fa, fb := a.Fields(), b.Fields()
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i].Name != fb[i].Name {
			return false
		}
		if !valueEqual(fa[i].Value, fb[i].Value) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	an, aIsNode := a.(Node)
	bn, bIsNode := b.(Node)
	if aIsNode || bIsNode {
		if !aIsNode || !bIsNode {
			return false
		}
		return DeepEqual(an, bn)
	}
	ac, aIsContainer := a.(Container)
	bc, bIsContainer := b.(Container)
	if aIsContainer || bIsContainer {
		if !aIsContainer || !bIsContainer {
			return false
		}
		return containerEqual(ac, bc)
	}
	return reflect.DeepEqual(a, b)
}

func containerEqual(a, b Container) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	ea, eb := a.Elements(), b.Elements()
	switch a.Kind() {
	case KindSequence:
		if len(ea) != len(eb) {
			return false
		}
		for i := range ea {
			if !valueEqual(ea[i], eb[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		ka, okA := a.(KeyedContainer)
		kb, okB := b.(KeyedContainer)
		if !okA || !okB {
			return false
		}
		keysA, keysB := ka.Keys(), kb.Keys()
		if len(keysA) != len(keysB) {
			return false
		}
		for i, k := range keysA {
			j := indexOf(keysB, k)
			if j < 0 || !valueEqual(ea[i], eb[j]) {
				return false
			}
		}
		return true
	case KindSet:
		if len(ea) != len(eb) {
			return false
		}
		used := make([]bool, len(eb))
		for _, x := range ea {
			found := false
			for j, y := range eb {
				if used[j] {
					continue
				}
				if valueEqual(x, y) {
					used[j] = true
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func indexOf(keys []any, k any) int {
	for i, x := range keys {
		if reflect.DeepEqual(x, k) {
			return i
		}
	}
	return -1
}
