package arbor

import (
	"fmt"
	"strings"
)

// PathSegment is one step from the root of a tree to a failing node: a
// field name, and -- if that field is a Container -- the index of the
// element within it (-1 for a bare, non-container field).
type PathSegment struct {
	Field string
	Index int
}

func (s PathSegment) String() string {
	if s.Index < 0 {
		return s.Field
	}
	return fmt.Sprintf("%s[%d]", s.Field, s.Index)
}

// Path is the sequence of field names and container indices from the
// root of a walk down to a particular node. Errors attach a Path where
// feasible, per spec's propagation policy.
type Path []PathSegment

// Append returns a copy of p with one more segment appended.
func (p Path) Append(field string, index int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = PathSegment{Field: field, Index: index}
	return out
}

func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
