package containers

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/arborlang/arbor"
)

// Set is an unordered collection of elements. Membership (not insertion
// order) is what matters; WithElements canonicalizes by deduplicating
// and sorting elements by their structural content hash, so that two
// sets built from the same members, in any order, always iterate
// identically -- a prerequisite for FixedPoint's structural-equality
// convergence check over trees containing set-valued fields.
type Set struct {
	elements *treeset.Set
}

var _ arbor.Container = (*Set)(nil)

// NewSet builds a canonicalized Set from the given elements.
func NewSet(elements ...any) *Set {
	ts := treeset.NewWith(byContentHash)
	for _, e := range elements {
		ts.Add(e)
	}
	return &Set{elements: ts}
}

// Kind implements arbor.Container.
func (s *Set) Kind() arbor.ContainerKind {
	return arbor.KindSet
}

// Elements implements arbor.Container, in canonical (content-hash)
// order.
func (s *Set) Elements() []any {
	return s.elements.Values()
}

// WithElements implements arbor.Container: the result is the
// deduplicated, canonically-ordered set of the given elements -- note
// that, unlike Sequence, the returned set's size may be smaller than
// len(elems) if elems contained duplicates.
func (s *Set) WithElements(elems []any) (arbor.Container, error) {
	tracer().Debugf("canonicalizing set of %d candidate elements", len(elems))
	return NewSet(elems...), nil
}

// Len reports the number of distinct elements in the set.
func (s *Set) Len() int {
	return s.elements.Size()
}

func (s *Set) String() string {
	return fmt.Sprintf("%v", s.elements.Values())
}

// byContentHash orders two arbitrary values by the lexicographic order
// of their structhash digests, giving a total, deterministic order over
// heterogeneous elements (Nodes, leaves, even nested Containers) without
// requiring them to implement a comparator themselves.
func byContentHash(a, b any) int {
	ha, hb := contentHash(a), contentHash(b)
	return strings.Compare(ha, hb)
}

func contentHash(v any) string {
	h, err := structhash.Hash(v, 1)
	if err != nil {
		// structhash can fail on values it can't reflect over (e.g. a
		// func-valued leaf); fall back to a Go-syntax representation,
		// which is still deterministic and total.
		return fmt.Sprintf("%#v", v)
	}
	return h
}

var _ utils.Comparator = byContentHash
