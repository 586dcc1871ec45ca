package rewriter

import (
	"reflect"

	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/pass"
)

// EqualFunc compares two pass results for FixedPoint's convergence
// test.
type EqualFunc func(a, b any) bool

// FixedPoint repeatedly applies an inner pass until equal(prev, next)
// holds, then returns next. It imposes no step cap -- if the inner
// pass never stabilizes, FixedPoint diverges by contract, exactly as
// spec says; pair it with BoundedFixedPoint if that is not acceptable.
type FixedPoint struct {
	inner pass.Pass
	equal EqualFunc
}

// NewFixedPoint builds a FixedPoint over inner, using a caller-supplied
// equality test.
func NewFixedPoint(inner pass.Pass, equal EqualFunc) *FixedPoint {
	return &FixedPoint{inner: inner, equal: equal}
}

// NewFixedPointOnNodes builds a FixedPoint whose equality test is
// Node-aware: two arbor.Node results compare via Node.Equal (spec's
// structural equality requirement), anything else via
// reflect.DeepEqual.
func NewFixedPointOnNodes(inner pass.Pass) *FixedPoint {
	return NewFixedPoint(inner, nodeAwareEqual)
}

func nodeAwareEqual(a, b any) bool {
	an, aOK := a.(arbor.Node)
	bn, bOK := b.(arbor.Node)
	if aOK && bOK {
		return an.Equal(bn)
	}
	if aOK != bOK {
		return false
	}
	return reflect.DeepEqual(a, b)
}

// Apply iterates the inner pass to a fixed point.
func (f *FixedPoint) Apply(root any) (any, error) {
	cur := root
	steps := 0
	for {
		next, err := f.inner(cur)
		if err != nil {
			return nil, err
		}
		steps++
		if f.equal(cur, next) {
			tracer().Infof("fixed point reached after %d iteration(s)", steps)
			return next, nil
		}
		cur = next
	}
}

// AsPass adapts f into a pass.Pass.
func (f *FixedPoint) AsPass() pass.Pass {
	return f.Apply
}

// BoundedFixedPoint is the external step cap spec reserves to callers:
// it behaves like FixedPoint, but fails with DivergentFixedPoint
// instead of looping forever once maxSteps applications have not
// converged.
type BoundedFixedPoint struct {
	inner    pass.Pass
	equal    EqualFunc
	maxSteps int
}

// NewBoundedFixedPoint builds a BoundedFixedPoint over inner, with the
// given equality test and step cap.
func NewBoundedFixedPoint(inner pass.Pass, equal EqualFunc, maxSteps int) *BoundedFixedPoint {
	return &BoundedFixedPoint{inner: inner, equal: equal, maxSteps: maxSteps}
}

// NewBoundedFixedPointOnNodes is the Node-aware convenience
// constructor, matching NewFixedPointOnNodes.
func NewBoundedFixedPointOnNodes(inner pass.Pass, maxSteps int) *BoundedFixedPoint {
	return NewBoundedFixedPoint(inner, nodeAwareEqual, maxSteps)
}

// Apply iterates the inner pass until convergence or until maxSteps
// applications have run without converging, in which case it returns a
// DivergentFixedPoint error.
func (f *BoundedFixedPoint) Apply(root any) (any, error) {
	cur := root
	for steps := 0; steps < f.maxSteps; steps++ {
		next, err := f.inner(cur)
		if err != nil {
			return nil, err
		}
		if f.equal(cur, next) {
			tracer().Infof("bounded fixed point reached after %d iteration(s)", steps+1)
			return next, nil
		}
		cur = next
	}
	return nil, arbor.NewDivergentFixedPoint(f.maxSteps)
}

// AsPass adapts f into a pass.Pass.
func (f *BoundedFixedPoint) AsPass() pass.Pass {
	return f.Apply
}
