package containers

import (
	"fmt"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/arborlang/arbor"
)

// Mapping is a key-to-value container. Keys are preserved verbatim
// across a walk; only values are ever walked or replaced. Iteration
// order is insertion order, guaranteed deterministic by
// linkedhashmap (a plain Go map's iteration order is randomized per
// process and cannot satisfy the walk's determinism requirement).
type Mapping struct {
	m *linkedhashmap.Map
}

var _ arbor.Container = (*Mapping)(nil)
var _ arbor.KeyedContainer = (*Mapping)(nil)

// NewMapping builds a Mapping from parallel key/value slices, preserving
// the given order.
func NewMapping(keys, values []any) *Mapping {
	if len(keys) != len(values) {
		panic("arbor/containers: NewMapping: keys and values must be the same length")
	}
	m := linkedhashmap.New()
	for i, k := range keys {
		m.Put(k, values[i])
	}
	return &Mapping{m: m}
}

// Kind implements arbor.Container.
func (m *Mapping) Kind() arbor.ContainerKind {
	return arbor.KindMapping
}

// Keys implements arbor.KeyedContainer.
func (m *Mapping) Keys() []any {
	return m.m.Keys()
}

// Elements implements arbor.Container: the values, in key order.
func (m *Mapping) Elements() []any {
	return m.m.Values()
}

// WithElements implements arbor.Container: pairs the new values
// positionally with the existing keys, preserving key order.
func (m *Mapping) WithElements(values []any) (arbor.Container, error) {
	keys := m.Keys()
	if len(values) != len(keys) {
		return nil, fmt.Errorf("arbor/containers: Mapping.WithElements: got %d values, want %d", len(values), len(keys))
	}
	tracer().Debugf("rebuilding mapping of %d keys", len(keys))
	return NewMapping(keys, values), nil
}

// Get looks up a single value by key.
func (m *Mapping) Get(key any) (any, bool) {
	return m.m.Get(key)
}

// Len reports the number of keys in the mapping.
func (m *Mapping) Len() int {
	return m.m.Size()
}

func (m *Mapping) String() string {
	return fmt.Sprintf("%v", m.m)
}
