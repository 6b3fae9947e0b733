package traversal

import (
	"reflect"

	"github.com/phpscout/phpast/ast"
)

// TransformFunc is applied to every node, pre-order (a node is offered to
// fn before its children are visited, so a replacement fn returns is itself
// walked into). Returning the node unchanged leaves that part of the tree
// untouched; returning a different node replaces it and that replacement's
// children are transformed next; returning nil deletes it — from its
// containing list, or as the whole result when applied to the root.
type TransformFunc func(ast.Node) ast.Node

var nodeType = reflect.TypeOf((*ast.Node)(nil)).Elem()

// Transform walks root pre-order: fn sees a node first, then its (possibly
// fn-replaced) children are recursively transformed. The original tree is
// never mutated: Transform always produces a new node graph in which every
// visited node is a shallow copy, even where fn returned it unchanged.
func Transform(root ast.Node, fn TransformFunc) ast.Node {
	return transformNode(root, fn)
}

func transformNode(n ast.Node, fn TransformFunc) ast.Node {
	if isNilNode(n) {
		return n
	}
	replaced := fn(n)
	if isNilNode(replaced) {
		return nil
	}
	return rebuildChildren(replaced, fn)
}

// rebuildChildren returns a shallow copy of n with every Node-typed
// field (and every Node-typed slice element) replaced by its
// transformed result, via reflection over n's concrete struct so the
// rewriter needs no per-kind code.
func rebuildChildren(n ast.Node, fn TransformFunc) ast.Node {
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return n
	}
	orig := v.Elem()
	if orig.Kind() != reflect.Struct {
		return n
	}

	rebuilt := reflect.New(orig.Type())
	rebuilt.Elem().Set(orig)
	out := rebuilt.Elem()

	t := orig.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" { // unexported (the embedded base)
			continue
		}
		fv := orig.Field(i)

		switch {
		case field.Type.Implements(nodeType):
			if isEffectivelyNil(fv) {
				continue
			}
			child, ok := fv.Interface().(ast.Node)
			if !ok {
				continue
			}
			newChild := transformNode(child, fn)
			assignNodeField(out.Field(i), field.Type, newChild)

		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Implements(nodeType):
			newSlice := reflect.MakeSlice(field.Type, 0, fv.Len())
			for j := 0; j < fv.Len(); j++ {
				elem := fv.Index(j)
				if isEffectivelyNil(elem) {
					// preserve structural placeholders (e.g. a skipped
					// list()-destructuring slot) rather than dropping them.
					newSlice = reflect.Append(newSlice, elem)
					continue
				}
				child, ok := elem.Interface().(ast.Node)
				if !ok {
					newSlice = reflect.Append(newSlice, elem)
					continue
				}
				newChild := transformNode(child, fn)
				if isNilNode(newChild) {
					continue // delete this slot
				}
				nv := reflect.ValueOf(newChild)
				if !nv.Type().AssignableTo(field.Type.Elem()) {
					newSlice = reflect.Append(newSlice, elem)
					continue
				}
				newSlice = reflect.Append(newSlice, nv)
			}
			out.Field(i).Set(newSlice)
		}
	}

	return rebuilt.Interface().(ast.Node)
}

// assignNodeField sets a single Node-typed field to newChild, or to its
// zero value if newChild was deleted by the transform function.
func assignNodeField(field reflect.Value, fieldType reflect.Type, newChild ast.Node) {
	if isNilNode(newChild) {
		field.Set(reflect.Zero(fieldType))
		return
	}
	nv := reflect.ValueOf(newChild)
	if !nv.Type().AssignableTo(fieldType) {
		return
	}
	field.Set(nv)
}

// TransformAll is a convenience wrapper for the common case of
// replacing every node matching pred with the result of build(node);
// nodes for which build returns nil are deleted.
func TransformAll(root ast.Node, pred Predicate, build func(ast.Node) ast.Node) ast.Node {
	return Transform(root, func(n ast.Node) ast.Node {
		if pred(n) {
			return build(n)
		}
		return n
	})
}
