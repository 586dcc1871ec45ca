package containers

import (
	"reflect"
	"testing"

	"github.com/arborlang/arbor"
)

func TestSequencePreservesOrder(t *testing.T) {
	s := NewSequence(3, 1, 2)
	if got, want := s.Elements(), []any{3, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	if s.Kind() != arbor.KindSequence {
		t.Fatalf("Kind() = %v, want KindSequence", s.Kind())
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
}

func TestSequenceWithElementsPreservesGivenOrder(t *testing.T) {
	s := NewSequence(1, 2, 3)
	rebuilt, err := s.WithElements([]any{30, 10, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := rebuilt.Elements(), []any{30, 10, 20}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Elements() after WithElements = %v, want %v", got, want)
	}
}

func TestSequenceWithElementsRejectsLengthMismatch(t *testing.T) {
	s := NewSequence(1, 2, 3)
	if _, err := s.WithElements([]any{1, 2}); err == nil {
		t.Fatalf("WithElements accepted a shorter slice")
	}
}

func TestSetDeduplicatesOnConstruction(t *testing.T) {
	s := NewSet(1, 1, 2, 3, 3, 3)
	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3 (duplicates not deduplicated)", got)
	}
}

func TestSetCanonicalOrderIsInsertionIndependent(t *testing.T) {
	a := NewSet(1, 2, 3)
	b := NewSet(3, 2, 1)
	if got, want := a.Elements(), b.Elements(); !reflect.DeepEqual(got, want) {
		t.Fatalf("two sets with the same members built in different orders iterate differently: %v vs %v", got, want)
	}
}

func TestSetWithElementsCanonicalizesAndDedups(t *testing.T) {
	s := NewSet(1, 2, 3)
	rebuilt, err := s.WithElements([]any{5, 5, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rebuilt.(*Set).Len(); got != 2 {
		t.Fatalf("rebuilt Len() = %d, want 2 (two 5s should collapse to one)", got)
	}
	if rebuilt.Kind() != arbor.KindSet {
		t.Fatalf("Kind() = %v, want KindSet", rebuilt.Kind())
	}
}

func TestMappingPreservesKeysAndOrder(t *testing.T) {
	m := NewMapping([]any{"a", "b", "c"}, []any{1, 2, 3})
	if got, want := m.Keys(), []any{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	if got, want := m.Elements(), []any{1, 2, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Elements() = %v, want %v", got, want)
	}
	if m.Kind() != arbor.KindMapping {
		t.Fatalf("Kind() = %v, want KindMapping", m.Kind())
	}
	if v, ok := m.Get("b"); !ok || v != 2 {
		t.Fatalf("Get(b) = %v, %v, want 2, true", v, ok)
	}
}

func TestMappingWithElementsKeepsKeysPairsNewValues(t *testing.T) {
	m := NewMapping([]any{"a", "b"}, []any{1, 2})
	rebuilt, err := m.WithElements([]any{10, 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rm := rebuilt.(*Mapping)
	if got, want := rm.Keys(), []any{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys() after WithElements = %v, want %v (keys must survive untouched)", got, want)
	}
	if got, want := rm.Elements(), []any{10, 20}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Elements() after WithElements = %v, want %v", got, want)
	}
}

func TestMappingWithElementsRejectsLengthMismatch(t *testing.T) {
	m := NewMapping([]any{"a", "b"}, []any{1, 2})
	if _, err := m.WithElements([]any{1}); err == nil {
		t.Fatalf("WithElements accepted a slice shorter than the key count")
	}
}

func TestNewMappingPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("NewMapping did not panic on mismatched key/value lengths")
		}
	}()
	NewMapping([]any{"a", "b"}, []any{1})
}
