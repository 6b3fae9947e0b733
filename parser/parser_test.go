package parser_test

import (
	"testing"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/lexer"
	"github.com/phpscout/phpast/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string, opts parser.Options) *ast.Program {
	t.Helper()
	prog, err := parser.ParseSource(src, lexer.DefaultOptions(), opts)
	require.NoError(t, err)
	require.NotNil(t, prog)
	return prog
}

func TestParse_EchoStatement(t *testing.T) {
	prog := parse(t, `<?php echo "hello", " ", "world"; ?>`, parser.DefaultOptions())

	require.Len(t, prog.Statements, 1)
	echo, ok := prog.Statements[0].(*ast.EchoStatement)
	require.True(t, ok)
	require.Len(t, echo.Arguments, 3)

	first, ok := echo.Arguments[0].(*ast.StringLiteral)
	require.True(t, ok)
	assert.Equal(t, "hello", first.Raw)
}

func TestParse_NamespacedClassWithTraitUse_UnbracedGathersBody(t *testing.T) {
	src := `<?php
namespace App\Model;
use App\Concerns\HasTimestamps;
class User {
    use HasTimestamps;
    public function __construct(string $name) {
        $this->name = $name;
    }
}
`
	prog := parse(t, src, parser.DefaultOptions())
	require.Len(t, prog.Statements, 1)

	ns, ok := prog.Statements[0].(*ast.NamespaceDeclaration)
	require.True(t, ok)
	assert.Equal(t, "App\\Model", ns.Name)
	require.Len(t, ns.Statements, 2)

	use, ok := ns.Statements[0].(*ast.UseStatement)
	require.True(t, ok)
	require.Len(t, use.Items, 1)
	assert.Equal(t, "App\\Concerns\\HasTimestamps", use.Items[0].Name)

	class, ok := ns.Statements[1].(*ast.ClassDeclaration)
	require.True(t, ok)
	assert.Equal(t, "User", class.Name)
	require.Len(t, class.Members, 2)

	traitUse, ok := class.Members[0].(*ast.TraitUseStatement)
	require.True(t, ok)
	assert.Equal(t, []string{"HasTimestamps"}, traitUse.Traits)

	ctor, ok := class.Members[1].(*ast.ConstructorDeclaration)
	require.True(t, ok)
	require.Len(t, ctor.Params.Parameters, 1)
	assert.Equal(t, "name", ctor.Params.Parameters[0].Name)
}

func TestParse_BareNamespaceIsError(t *testing.T) {
	src := "<?php\nnamespace;\n"
	opts := parser.DefaultOptions()
	opts.ErrorRecovery = true
	prog := parse(t, src, opts)
	require.NotEmpty(t, prog.Diagnostics)
	assert.Contains(t, prog.Diagnostics[0].Message, "expected namespace name")
}

func TestParse_HeredocWithInterpolation(t *testing.T) {
	src := "<?php\n$name = 'world';\n$greeting = <<<EOT\nHello, {$name}!\nEOT;\n"
	prog := parse(t, src, parser.DefaultOptions())
	require.Len(t, prog.Statements, 2)

	assignStmt, ok := prog.Statements[1].(*ast.ExpressionStatement)
	require.True(t, ok)
	assign, ok := assignStmt.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)

	tmpl, ok := assign.Value.(*ast.TemplateStringExpression)
	require.True(t, ok, "expected heredoc with interpolation to produce a TemplateStringExpression, got %T", assign.Value)
	require.GreaterOrEqual(t, len(tmpl.Parts), 2)

	foundVar := false
	for _, part := range tmpl.Parts {
		if v, ok := part.(*ast.Variable); ok && v.Name == "name" {
			foundVar = true
		}
	}
	assert.True(t, foundVar, "expected an embedded $name reference among the heredoc parts")
}

func TestParse_ErrorRecovery_CollectsDiagnosticAndContinues(t *testing.T) {
	src := `<?php
echo 1 +;
echo 2;
`
	prog := parse(t, src, parser.Options{ErrorRecovery: true})
	assert.NotEmpty(t, prog.Diagnostics)

	var sawSecondEcho bool
	for _, stmt := range prog.Statements {
		if echo, ok := stmt.(*ast.EchoStatement); ok {
			if len(echo.Arguments) == 1 {
				if lit, ok := echo.Arguments[0].(*ast.NumberLiteral); ok && lit.Raw == "2" {
					sawSecondEcho = true
				}
			}
		}
	}
	assert.True(t, sawSecondEcho, "expected the parser to recover and still parse the second echo statement")
}

func TestParse_ErrorRecoveryDisabled_AbortsOnFirstError(t *testing.T) {
	src := `<?php
echo 1 +;
`
	_, err := parser.ParseSource(src, lexer.DefaultOptions(), parser.Options{ErrorRecovery: false})
	require.Error(t, err)

	var parseErr *parser.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestParse_InterfaceMethodsAreForcedAbstract(t *testing.T) {
	src := `<?php
interface Countable2 {
    public function count(): int;
}
`
	prog := parse(t, src, parser.DefaultOptions())
	require.Len(t, prog.Statements, 1)

	iface, ok := prog.Statements[0].(*ast.InterfaceDeclaration)
	require.True(t, ok)
	assert.Equal(t, "Countable2", iface.Name)
	require.Len(t, iface.Members, 1)

	method, ok := iface.Members[0].(*ast.MethodDeclaration)
	require.True(t, ok)
	assert.Equal(t, "count", method.Name)
	assert.True(t, method.Modifiers.Abstract)
	assert.Nil(t, method.Body)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	prog := parse(t, `<?php $r = 1 + 2 * 3 ** 2;`, parser.DefaultOptions())
	require.Len(t, prog.Statements, 1)

	stmt, ok := prog.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	assign, ok := stmt.Expression.(*ast.AssignmentExpression)
	require.True(t, ok)

	// 1 + (2 * (3 ** 2))
	plus, ok := assign.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", plus.Operator)

	one, ok := plus.Left.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "1", one.Raw)

	mul, ok := plus.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)

	two, ok := mul.Left.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "2", two.Raw)

	pow, ok := mul.Right.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "**", pow.Operator)

	three, ok := pow.Left.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "3", three.Raw)
}

func TestParse_RightAssociativePower(t *testing.T) {
	prog := parse(t, `<?php $r = 2 ** 3 ** 2;`, parser.DefaultOptions())
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expression.(*ast.AssignmentExpression)

	outer, ok := assign.Value.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "**", outer.Operator)

	two, ok := outer.Left.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, "2", two.Raw)

	inner, ok := outer.Right.(*ast.BinaryExpression)
	require.True(t, ok, "2 ** 3 ** 2 must associate as 2 ** (3 ** 2)")
	assert.Equal(t, "**", inner.Operator)
}

func TestParse_MatchExpression(t *testing.T) {
	src := `<?php
$label = match ($code) {
    200, 201 => "ok",
    404 => "missing",
    default => "error",
};
`
	prog := parse(t, src, parser.DefaultOptions())
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expression.(*ast.AssignmentExpression)

	m, ok := assign.Value.(*ast.MatchExpression)
	require.True(t, ok)
	require.Len(t, m.Arms, 3)
	assert.Len(t, m.Arms[0].Conditions, 2)
	assert.Empty(t, m.Arms[2].Conditions)
}

func TestParse_ArrowFunctionCapturesEnclosingScope(t *testing.T) {
	prog := parse(t, `<?php $double = fn($x) => $x * 2;`, parser.DefaultOptions())
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	assign := stmt.Expression.(*ast.AssignmentExpression)

	fn, ok := assign.Value.(*ast.ArrowFunctionExpression)
	require.True(t, ok)
	require.Len(t, fn.Params.Parameters, 1)
	assert.Equal(t, "x", fn.Params.Parameters[0].Name)

	body, ok := fn.Body.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "*", body.Operator)
}
