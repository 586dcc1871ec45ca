package stdrules

import (
	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// AssocSpec names the two bare-Node fields of a binary, associative
// operator -- e.g. Add's "left" and "right" -- that Canonicalizer may
// re-associate.
type AssocSpec struct {
	Left, Right string
}

// Canonicalizer is a RewriteRule that left-associates registered
// binary operators and leaves every other variant untouched (falling
// back to walk's identity default). Run it under a Post-order walk
// driven to a fixed point via rewriter.FixedPoint: a single pass only
// re-associates one level, but repeated passes drain a right-leaning
// chain all the way down to fully left-associated form, the same way
// S2/S3 exercise it.
//
// Set-shaped fields need no separate canonicalization step here: every
// containers.Set already canonicalizes its element order on
// construction (see containers.NewSet), so any node this
// rule rebuilds -- or any node a walk merely passes through -- carries
// canonical Set fields for free.
type Canonicalizer struct {
	assoc map[string]AssocSpec
}

// NewCanonicalizer builds an empty Canonicalizer; register operators
// with Associate.
func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{assoc: make(map[string]AssocSpec)}
}

// Associate registers tag as a binary operator over the named fields,
// eligible for left-association. Rebuild is expected to accept Fields
// with the same two names unchanged, i.e. tag's node shape is
// homogeneous under re-association.
func (c *Canonicalizer) Associate(tag string, spec AssocSpec) *Canonicalizer {
	tracer().Infof("registering associative operator %q over (%s, %s)", tag, spec.Left, spec.Right)
	c.assoc[tag] = spec
	return c
}

// HandlerFor implements rule.RewriteRule.
func (c *Canonicalizer) HandlerFor(tag string) (rule.RewriteFunc, bool) {
	spec, ok := c.assoc[tag]
	if !ok {
		return nil, false
	}
	return func(n arbor.Node) (arbor.Node, error) {
		return reassociate(n, tag, spec)
	}, true
}

// reassociate rewrites Tag(a, Tag(b, c)) into Tag(Tag(a, b), c),
// returning nil (unchanged) for every other shape, including a node
// already in left-associated form.
func reassociate(n arbor.Node, tag string, spec AssocSpec) (arbor.Node, error) {
	fields := n.Fields()
	leftValue, ok := fields.Get(spec.Left)
	if !ok {
		return nil, nil
	}
	rightValue, ok := fields.Get(spec.Right)
	if !ok {
		return nil, nil
	}
	right, ok := rightValue.(arbor.Node)
	if !ok || right.VariantTag() != tag {
		return nil, nil
	}
	rightFields := right.Fields()
	innerLeft, ok := rightFields.Get(spec.Left)
	if !ok {
		return nil, nil
	}
	innerRight, ok := rightFields.Get(spec.Right)
	if !ok {
		return nil, nil
	}

	newLeft, err := n.Rebuild(arbor.Fields{
		{Name: spec.Left, Value: leftValue},
		{Name: spec.Right, Value: innerLeft},
	})
	if err != nil {
		return nil, err
	}
	return n.Rebuild(arbor.Fields{
		{Name: spec.Left, Value: newLeft},
		{Name: spec.Right, Value: innerRight},
	})
}
