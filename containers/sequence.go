package containers

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/arborlang/arbor"
)

// Sequence is an ordered sequence of elements. Iteration order is the
// order elements were given; WithElements preserves that order.
type Sequence struct {
	list *arraylist.List
}

var _ arbor.Container = (*Sequence)(nil)

// NewSequence builds a Sequence holding elements in the given order.
func NewSequence(elements ...any) *Sequence {
	list := arraylist.New()
	for _, e := range elements {
		list.Add(e)
	}
	return &Sequence{list: list}
}

// Kind implements arbor.Container.
func (s *Sequence) Kind() arbor.ContainerKind {
	return arbor.KindSequence
}

// Elements implements arbor.Container.
func (s *Sequence) Elements() []any {
	return s.list.Values()
}

// WithElements implements arbor.Container, preserving order.
func (s *Sequence) WithElements(elems []any) (arbor.Container, error) {
	if len(elems) != s.list.Size() {
		return nil, fmt.Errorf("arbor/containers: Sequence.WithElements: got %d elements, want %d", len(elems), s.list.Size())
	}
	tracer().Debugf("rebuilding sequence of %d elements", len(elems))
	return NewSequence(elems...), nil
}

// Len reports the number of elements in the sequence.
func (s *Sequence) Len() int {
	return s.list.Size()
}

func (s *Sequence) String() string {
	return fmt.Sprintf("%v", s.list.Values())
}
