package ast_test

import (
	"testing"

	"github.com/phpscout/phpast/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sp() ast.Span { return ast.Span{} }

func TestProgram_ChildrenMatchStatements(t *testing.T) {
	echo := ast.NewEchoStatement(sp(), []ast.Expression{ast.NewNumberLiteral(sp(), "1")})
	prog := ast.NewProgram(sp(), []ast.Statement{echo}, nil)

	kids := prog.Children()
	require.Len(t, kids, 1)
	assert.Same(t, ast.Node(echo), kids[0])
	assert.Equal(t, ast.KProgram, prog.Kind())
}

func TestIfStatement_ElseifFoldsAsNestedIf(t *testing.T) {
	innerThen := ast.NewBlock(sp(), nil)
	elseif := ast.NewIfStatement(sp(), ast.NewBoolLiteral(sp(), false), innerThen, nil)
	outer := ast.NewIfStatement(sp(), ast.NewBoolLiteral(sp(), true), ast.NewBlock(sp(), nil), elseif)

	kids := outer.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, ast.Node(elseif), kids[2])
	assert.True(t, ast.IsStatement(outer))
}

func TestClassDeclaration_ChildrenOrderAttributesSuperInterfacesMembers(t *testing.T) {
	attr := ast.NewAttributeGroup(sp(), "#[Foo]")
	super := ast.NewName(sp(), []string{"Base"}, ast.NameUnqualified)
	iface := ast.NewName(sp(), []string{"Iface"}, ast.NameUnqualified)
	prop := ast.NewPropertyDeclaration(sp(), ast.Modifiers{Visibility: ast.VisibilityPrivate}, nil,
		[]*ast.PropertyDeclarator{ast.NewPropertyDeclarator(sp(), "x", nil)}, nil)

	cls := ast.NewClassDeclaration(sp(), "Thing", ast.Modifiers{}, super, []*ast.Name{iface},
		[]ast.ClassMember{prop}, []*ast.AttributeGroup{attr})

	kids := cls.Children()
	require.Len(t, kids, 4)
	assert.Equal(t, ast.Node(attr), kids[0])
	assert.Equal(t, ast.Node(super), kids[1])
	assert.Equal(t, ast.Node(iface), kids[2])
	assert.Equal(t, ast.Node(prop), kids[3])
	assert.True(t, ast.IsDeclaration(cls))
	assert.True(t, ast.IsStatement(cls))
}

func TestMatchExpression_ChildrenIncludeSubjectAndArms(t *testing.T) {
	arm := ast.NewMatchArm(sp(), []ast.Expression{ast.NewNumberLiteral(sp(), "1")}, ast.NewStringLiteral(sp(), `"a"`))
	def := ast.NewMatchArm(sp(), nil, ast.NewStringLiteral(sp(), `"z"`))
	m := ast.NewMatchExpression(sp(), ast.NewVariable(sp(), "x"), []*ast.MatchArm{arm, def})

	kids := m.Children()
	require.Len(t, kids, 3)
	assert.Equal(t, ast.Node(arm), kids[1])
	assert.True(t, ast.IsExpression(m))
}

func TestMatchArm_DefaultHasNoConditionChildren(t *testing.T) {
	def := ast.NewMatchArm(sp(), nil, ast.NewStringLiteral(sp(), `"z"`))
	assert.Len(t, def.Children(), 1)
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, ast.IsLiteral(ast.NewNumberLiteral(sp(), "1")))
	assert.True(t, ast.IsLiteral(ast.NewNullLiteral(sp())))
	assert.False(t, ast.IsLiteral(ast.NewVariable(sp(), "x")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BinaryExpression", ast.KBinaryExpression.String())
	assert.Equal(t, "Unknown", ast.Kind(99999).String())
}

func TestTryStatement_FinallyOptional(t *testing.T) {
	body := ast.NewBlock(sp(), nil)
	catch := ast.NewCatchClause(sp(), []ast.TypeNode{ast.NewSimpleType(sp(), "Exception")}, ast.NewVariable(sp(), "e"), ast.NewBlock(sp(), nil))
	try := ast.NewTryStatement(sp(), body, []*ast.CatchClause{catch}, nil)
	assert.Len(t, try.Children(), 2)

	finally := ast.NewBlock(sp(), nil)
	try2 := ast.NewTryStatement(sp(), body, []*ast.CatchClause{catch}, finally)
	assert.Len(t, try2.Children(), 3)
}

func TestToJSON_ProducesKindAndNestedChildren(t *testing.T) {
	inner := ast.NewNumberLiteral(sp(), "42")
	stmt := ast.NewReturnStatement(sp(), inner)
	prog := ast.NewProgram(sp(), []ast.Statement{stmt}, nil)

	out, err := ast.ToJSON(prog)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"kind": "Program"`)
	assert.Contains(t, string(out), `"kind": "ReturnStatement"`)
	assert.Contains(t, string(out), `"kind": "NumberLiteral"`)
}

func TestListExpression_SkippedSlotsOmittedFromChildren(t *testing.T) {
	item := ast.NewArrayItem(sp(), nil, ast.NewVariable(sp(), "a"), false, false)
	list := ast.NewListExpression(sp(), []*ast.ArrayItem{item, nil})
	assert.Len(t, list.Children(), 1)
}
