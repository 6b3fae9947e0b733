package traversal

import "github.com/phpscout/phpast/ast"

// Predicate reports whether a node matches a search.
type Predicate func(ast.Node) bool

// ByKind returns a Predicate matching nodes of exactly the given kind.
func ByKind(k ast.Kind) Predicate {
	return func(n ast.Node) bool { return n.Kind() == k }
}

// FindFirst returns the first node in pre-order matching pred, and
// whether one was found.
func FindFirst(root ast.Node, pred Predicate) (ast.Node, bool) {
	var found ast.Node
	Walk(root, func(n ast.Node, _ int) Signal {
		if pred(n) {
			found = n
			return Stop
		}
		return Continue
	})
	return found, found != nil
}

// FindAll returns every node in pre-order matching pred.
func FindAll(root ast.Node, pred Predicate) []ast.Node {
	var out []ast.Node
	Walk(root, func(n ast.Node, _ int) Signal {
		if pred(n) {
			out = append(out, n)
		}
		return Continue
	})
	return out
}

// Count returns the number of nodes matching pred.
func Count(root ast.Node, pred Predicate) int {
	n := 0
	Walk(root, func(node ast.Node, _ int) Signal {
		if pred(node) {
			n++
		}
		return Continue
	})
	return n
}

// Ancestors returns the chain of nodes from root down to (but not
// including) target, or nil if target is not reachable from root.
func Ancestors(root, target ast.Node) []ast.Node {
	var path []ast.Node
	var found bool
	var visit func(n ast.Node) bool
	visit = func(n ast.Node) bool {
		if isNilNode(n) {
			return false
		}
		if n == target {
			found = true
			return true
		}
		path = append(path, n)
		for _, c := range n.Children() {
			if visit(c) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}
	visit(root)
	if !found {
		return nil
	}
	return path
}
