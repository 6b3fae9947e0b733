package traversal_test

import (
	"context"
	"testing"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/traversal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp() ast.Span { return ast.Span{} }

func sampleExpr() ast.Expression {
	// $a + $b * 2
	a := ast.NewVariable(sp(), "a")
	b := ast.NewVariable(sp(), "b")
	two := ast.NewNumberLiteral(sp(), "2")
	mul := ast.NewBinaryExpression(sp(), "*", b, two)
	return ast.NewBinaryExpression(sp(), "+", a, mul)
}

func TestWalk_VisitsPreOrder(t *testing.T) {
	var kinds []ast.Kind
	traversal.Walk(sampleExpr(), func(n ast.Node, depth int) traversal.Signal {
		kinds = append(kinds, n.Kind())
		return traversal.Continue
	})

	require.Len(t, kinds, 5)
	assert.Equal(t, ast.KBinaryExpression, kinds[0]) // +
	assert.Equal(t, ast.KVariable, kinds[1])         // a
	assert.Equal(t, ast.KBinaryExpression, kinds[2]) // *
	assert.Equal(t, ast.KVariable, kinds[3])         // b
	assert.Equal(t, ast.KNumberLiteral, kinds[4])    // 2
}

func TestWalk_SkipChildrenPrunesSubtree(t *testing.T) {
	var kinds []ast.Kind
	root := sampleExpr()
	traversal.Walk(root, func(n ast.Node, depth int) traversal.Signal {
		kinds = append(kinds, n.Kind())
		if n.Kind() == ast.KBinaryExpression && depth == 1 {
			return traversal.SkipChildren
		}
		return traversal.Continue
	})

	// outer +, left var a, inner * (pruned before its own children)
	require.Len(t, kinds, 3)
	assert.Equal(t, ast.KBinaryExpression, kinds[2])
}

func TestWalk_StopHaltsImmediately(t *testing.T) {
	count := 0
	traversal.Walk(sampleExpr(), func(n ast.Node, depth int) traversal.Signal {
		count++
		return traversal.Stop
	})
	assert.Equal(t, 1, count)
}

func TestWalk_NilPointerFieldDoesNotPanic(t *testing.T) {
	// IfStatement.Else left nil: the generic walker must not try to call
	// Children() on a typed-nil *IfStatement hiding behind a Statement field.
	var elseClause ast.Statement
	ifStmt := ast.NewIfStatement(sp(), ast.NewBoolLiteral(sp(), true), ast.NewBlock(sp(), nil), elseClause)

	assert.NotPanics(t, func() {
		traversal.Walk(ifStmt, func(ast.Node, int) traversal.Signal { return traversal.Continue })
	})
}

func TestWalkContext_CancellationStopsEarly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	err := traversal.WalkContext(ctx, sampleExpr(), func(n ast.Node, depth int) traversal.Signal {
		count++
		if count == 2 {
			cancel()
		}
		return traversal.Continue
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.LessOrEqual(t, count, 3)
}

func TestFindFirst_LocatesMatchingNode(t *testing.T) {
	root := sampleExpr()
	found, ok := traversal.FindFirst(root, traversal.ByKind(ast.KNumberLiteral))
	require.True(t, ok)
	lit, isLit := found.(*ast.NumberLiteral)
	require.True(t, isLit)
	assert.Equal(t, "2", lit.Raw)
}

func TestFindFirst_NoMatchReturnsFalse(t *testing.T) {
	_, ok := traversal.FindFirst(sampleExpr(), traversal.ByKind(ast.KStringLiteral))
	assert.False(t, ok)
}

func TestFindAll_ReturnsEveryMatch(t *testing.T) {
	all := traversal.FindAll(sampleExpr(), traversal.ByKind(ast.KVariable))
	require.Len(t, all, 2)
	names := []string{all[0].(*ast.Variable).Name, all[1].(*ast.Variable).Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
}

func TestCount_CountsBinaryExpressions(t *testing.T) {
	n := traversal.Count(sampleExpr(), traversal.ByKind(ast.KBinaryExpression))
	assert.Equal(t, 2, n)
}

func TestAncestors_ReturnsPathExcludingTarget(t *testing.T) {
	root := sampleExpr()
	target := root.(*ast.BinaryExpression).Right.(*ast.BinaryExpression).Right // the "2" literal

	path := traversal.Ancestors(root, target)
	require.Len(t, path, 2)
	assert.Same(t, root, path[0])
	assert.Equal(t, ast.KBinaryExpression, path[1].Kind())
}

func TestAncestors_UnreachableTargetReturnsNil(t *testing.T) {
	other := ast.NewNumberLiteral(sp(), "99")
	path := traversal.Ancestors(sampleExpr(), other)
	assert.Nil(t, path)
}

func TestTransform_RenamesVariablesPreOrder(t *testing.T) {
	root := sampleExpr()
	renamed := traversal.Transform(root, func(n ast.Node) ast.Node {
		v, ok := n.(*ast.Variable)
		if !ok {
			return n
		}
		return ast.NewVariable(v.Span(), "renamed_"+v.Name)
	})

	names := traversal.FindAll(renamed, traversal.ByKind(ast.KVariable))
	require.Len(t, names, 2)
	assert.Equal(t, "renamed_a", names[0].(*ast.Variable).Name)
	assert.Equal(t, "renamed_b", names[1].(*ast.Variable).Name)

	// original tree is untouched
	original := traversal.FindAll(root, traversal.ByKind(ast.KVariable))
	assert.Equal(t, "a", original[0].(*ast.Variable).Name)
}

func TestTransform_VisitsIntoFreshlyIntroducedReplacement(t *testing.T) {
	// $a -> ($a + $a), then every Variable named "a" -> "z". Pre-order
	// means fn must see the two Variable nodes inside the replacement
	// BinaryExpression, not just the original leaf being replaced.
	root := ast.NewVariable(sp(), "a")

	seenReplacement := false
	result := traversal.Transform(root, func(n ast.Node) ast.Node {
		v, ok := n.(*ast.Variable)
		if !ok {
			return n
		}
		if v.Name == "a" && !seenReplacement {
			seenReplacement = true
			return ast.NewBinaryExpression(sp(), "+", ast.NewVariable(sp(), "a"), ast.NewVariable(sp(), "a"))
		}
		if v.Name == "a" {
			return ast.NewVariable(v.Span(), "z")
		}
		return n
	})

	bin, ok := result.(*ast.BinaryExpression)
	require.True(t, ok)
	left, ok := bin.Left.(*ast.Variable)
	require.True(t, ok)
	right, ok := bin.Right.(*ast.Variable)
	require.True(t, ok)
	assert.Equal(t, "z", left.Name)
	assert.Equal(t, "z", right.Name)
}

func TestTransform_IdentityLeavesStructureEquivalent(t *testing.T) {
	root := sampleExpr()
	same := traversal.Transform(root, func(n ast.Node) ast.Node { return n })

	var beforeKinds, afterKinds []ast.Kind
	traversal.Walk(root, func(n ast.Node, _ int) traversal.Signal {
		beforeKinds = append(beforeKinds, n.Kind())
		return traversal.Continue
	})
	traversal.Walk(same, func(n ast.Node, _ int) traversal.Signal {
		afterKinds = append(afterKinds, n.Kind())
		return traversal.Continue
	})
	assert.Equal(t, beforeKinds, afterKinds)
}

func TestTransform_DeletingArrayItemCompactsSlice(t *testing.T) {
	keep := ast.NewArrayItem(sp(), nil, ast.NewNumberLiteral(sp(), "1"), false, false)
	drop := ast.NewArrayItem(sp(), nil, ast.NewNumberLiteral(sp(), "2"), false, false)
	arr := ast.NewArrayExpression(sp(), []*ast.ArrayItem{keep, drop})

	result := traversal.Transform(arr, func(n ast.Node) ast.Node {
		if item, ok := n.(*ast.ArrayItem); ok {
			if lit, ok := item.Value.(*ast.NumberLiteral); ok && lit.Raw == "2" {
				return nil
			}
		}
		return n
	})

	rebuilt, ok := result.(*ast.ArrayExpression)
	require.True(t, ok)
	require.Len(t, rebuilt.Items, 1)
	assert.Equal(t, "1", rebuilt.Items[0].Value.(*ast.NumberLiteral).Raw)
}

func TestTransform_PreservesListExpressionSkipSlots(t *testing.T) {
	item := ast.NewArrayItem(sp(), nil, ast.NewVariable(sp(), "x"), false, false)
	list := ast.NewListExpression(sp(), []*ast.ArrayItem{nil, item, nil})

	result := traversal.Transform(list, func(n ast.Node) ast.Node { return n })

	rebuilt, ok := result.(*ast.ListExpression)
	require.True(t, ok)
	require.Len(t, rebuilt.Items, 3)
	assert.Nil(t, rebuilt.Items[0])
	assert.NotNil(t, rebuilt.Items[1])
	assert.Nil(t, rebuilt.Items[2])
}

func TestTransform_DeletingOptionalFieldClearsIt(t *testing.T) {
	thenBlock := ast.NewBlock(sp(), nil)
	elseBlock := ast.NewBlock(sp(), nil)
	ifStmt := ast.NewIfStatement(sp(), ast.NewBoolLiteral(sp(), true), thenBlock, elseBlock)

	result := traversal.Transform(ifStmt, func(n ast.Node) ast.Node {
		if n == ast.Node(elseBlock) {
			return nil
		}
		return n
	})

	rebuilt, ok := result.(*ast.IfStatement)
	require.True(t, ok)
	assert.Nil(t, rebuilt.Else)
}

func TestTransformAll_ReplacesMatchingNodesOnly(t *testing.T) {
	root := sampleExpr()
	result := traversal.TransformAll(root, traversal.ByKind(ast.KNumberLiteral), func(n ast.Node) ast.Node {
		return ast.NewNumberLiteral(n.Span(), "0")
	})

	lit, ok := traversal.FindFirst(result, traversal.ByKind(ast.KNumberLiteral))
	require.True(t, ok)
	assert.Equal(t, "0", lit.(*ast.NumberLiteral).Raw)

	vars := traversal.FindAll(result, traversal.ByKind(ast.KVariable))
	assert.Len(t, vars, 2)
}
