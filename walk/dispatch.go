package walk

import (
	"fmt"

	"github.com/arborlang/arbor"
	"github.com/arborlang/arbor/rule"
)

// invokeRewrite calls the handler registered for n's variant tag (or
// the identity default if none is registered), recovering a handler
// panic into a RuleFailure the same way a returned error is wrapped.
// The returned Node is nil when the handler signalled "unchanged".
func invokeRewrite(r rule.RewriteRule, n arbor.Node, path arbor.Path) (replacement arbor.Node, err error) {
	handler, ok := r.HandlerFor(n.VariantTag())
	if !ok {
		tracer().Debugf("no handler for variant %q at %s, using identity", n.VariantTag(), path)
		return nil, nil
	}
	defer func() {
		if p := recover(); p != nil {
			err = arbor.NewRuleFailure(n.VariantTag(), path, fmt.Errorf("handler panicked: %v", p))
		}
	}()
	tracer().Debugf("dispatching rewrite handler for variant %q at %s", n.VariantTag(), path)
	replacement, err = handler(n)
	if err != nil {
		err = arbor.NewRuleFailure(n.VariantTag(), path, err)
	}
	return replacement, err
}

// invokeConvert calls the handler registered for n's variant tag. There
// is no identity default: an unregistered tag is UnhandledVariant.
func invokeConvert[R any](r rule.ConversionRule[R], n arbor.Node, results rule.Results, path arbor.Path) (value R, err error) {
	handler, ok := r.HandlerFor(n.VariantTag())
	if !ok {
		err = arbor.NewUnhandledVariant(n.VariantTag(), path)
		return value, err
	}
	defer func() {
		if p := recover(); p != nil {
			err = arbor.NewRuleFailure(n.VariantTag(), path, fmt.Errorf("handler panicked: %v", p))
		}
	}()
	tracer().Debugf("dispatching conversion handler for variant %q at %s", n.VariantTag(), path)
	value, err = handler(n, results)
	if err != nil {
		err = arbor.NewRuleFailure(n.VariantTag(), path, err)
	}
	return value, err
}

// invokeReadOnly calls the handler for analysis-only strategies (In,
// Level) and fails the walk with InvalidWalkForRule if the handler
// tries to replace the node -- neither strategy can change tree shape
// mid-traversal.
func invokeReadOnly(r rule.RewriteRule, n arbor.Node, path arbor.Path, strategy Strategy) error {
	replacement, err := invokeRewrite(r, n, path)
	if err != nil {
		return err
	}
	if replacement != nil {
		return arbor.NewInvalidWalkForRule(n.VariantTag(), path,
			fmt.Sprintf("%s walk is read-only, but handler returned a replacement", strategy))
	}
	return nil
}
