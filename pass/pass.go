// Package pass defines the uniform callable contract every walk
// becomes, and the adapters that wrap a typed walk into it.
//
// A Pass is deliberately untyped (any -> any, plus error): the source
// this engine is modeled on composes passes dynamically, and spec's
// Rewriter section says as much outright -- "the engine does not
// check; type agreement is a user obligation." Chain and FixedPoint
// are therefore written once, against Pass, and work identically
// whether every stage stays within Node (the common case) or a later
// stage folds down to an unrelated result type (as in a Chain whose
// final stage is a conversion pass).
package pass

import (
	"fmt"

	"github.com/arborlang/arbor"
)

// Pass is the uniform contract a root is put through to produce a
// result. Any (Walk, Rule) pair is a Pass; FromRewrite and FromConvert
// adapt the typed walks in arbor/walk into one.
type Pass func(any) (any, error)

// rewriteWalk is the subset of *walk.RewriteWalk's API FromRewrite
// needs, named locally to avoid an import cycle (arbor/walk does not,
// and must not, depend on arbor/pass).
type rewriteWalk interface {
	Apply(arbor.Node) (arbor.Node, error)
}

// FromRewrite adapts a rewrite walk (or anything shaped like one, e.g.
// *walk.RewriteWalk) into a Pass. The Pass asserts its input is an
// arbor.Node, matching the user obligation spec's Chain/type-agreement
// note describes.
func FromRewrite(w rewriteWalk) Pass {
	return func(in any) (any, error) {
		root, ok := in.(arbor.Node)
		if !ok {
			return nil, rewritePassTypeError(in)
		}
		out, err := w.Apply(root)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// convertWalk is the subset of *walk.ConvertWalk[R]'s API FromConvert
// needs.
type convertWalk[R any] interface {
	Apply(arbor.Node) (R, error)
}

// FromConvert adapts a conversion walk into a Pass. The result is
// boxed as any, ready to feed into the next stage of a Chain -- which
// may expect a Node (if more rewriting follows) or may, like the
// result itself, be the final, non-Node value a caller inspects.
func FromConvert[R any](w convertWalk[R]) Pass {
	return func(in any) (any, error) {
		root, ok := in.(arbor.Node)
		if !ok {
			return nil, rewritePassTypeError(in)
		}
		out, err := w.Apply(root)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

func rewritePassTypeError(in any) error {
	return &arbor.Error{
		Kind: arbor.RuleFailure,
		Err:  fmt.Errorf("pass expected an arbor.Node, got %T", in),
	}
}
