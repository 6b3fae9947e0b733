// Package traversal implements generic pre-order traversal and
// structure-preserving rewriting over the ast package's node schema. It
// operates entirely through the Node.Children() contract, so it never
// needs to know about individual node kinds.
package traversal

import (
	"context"
	"reflect"

	"github.com/phpscout/phpast/ast"
)

// Signal controls how Walk proceeds after a visit callback returns.
type Signal int

const (
	// Continue descends into the visited node's children.
	Continue Signal = iota
	// SkipChildren moves on to the node's siblings without visiting its
	// children.
	SkipChildren
	// Stop halts the walk entirely.
	Stop
)

// VisitFunc is called once per node in pre-order, with its 0-based
// depth from the walk's root.
type VisitFunc func(node ast.Node, depth int) Signal

// Walk performs a pre-order traversal of root and everything reachable
// through Children(), calling visit for each non-nil node.
func Walk(root ast.Node, visit VisitFunc) {
	walk(root, visit, 0)
}

func walk(n ast.Node, visit VisitFunc, depth int) Signal {
	if isNilNode(n) {
		return Continue
	}
	switch visit(n, depth) {
	case Stop:
		return Stop
	case SkipChildren:
		return Continue
	}
	for _, child := range n.Children() {
		if walk(child, visit, depth+1) == Stop {
			return Stop
		}
	}
	return Continue
}

// WalkContext is Walk with cooperative cancellation: before each visit
// it checks ctx, returning ctx.Err() as soon as the context is done
// instead of continuing to descend. Long-running rewrites over large
// trees can run this from a goroutine and cancel it from outside.
func WalkContext(ctx context.Context, root ast.Node, visit VisitFunc) error {
	_, err := walkContext(ctx, root, visit, 0)
	return err
}

func walkContext(ctx context.Context, n ast.Node, visit VisitFunc, depth int) (Signal, error) {
	if err := ctx.Err(); err != nil {
		return Stop, err
	}
	if isNilNode(n) {
		return Continue, nil
	}
	switch visit(n, depth) {
	case Stop:
		return Stop, nil
	case SkipChildren:
		return Continue, nil
	}
	for _, child := range n.Children() {
		sig, err := walkContext(ctx, child, visit, depth+1)
		if err != nil {
			return Stop, err
		}
		if sig == Stop {
			return Stop, nil
		}
	}
	return Continue, nil
}

// isNilNode reports whether n is either the nil interface or an
// interface holding a typed nil pointer (e.g. a *ast.Block field left
// unset on an abstract method), both of which Children() callers must
// treat as absent rather than calling methods on.
func isNilNode(n ast.Node) bool {
	if n == nil {
		return true
	}
	return isEffectivelyNil(reflect.ValueOf(n))
}

func isEffectivelyNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return true
		}
		return isEffectivelyNil(v.Elem())
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
