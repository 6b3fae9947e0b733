// Package ast defines the typed AST the parser produces: a closed set
// of tagged node variants (statements, declarations, expressions,
// types), each carrying a source span. Nodes are immutable once built;
// the traversal package's Transform is the only way to produce a new
// tree from an old one.
package ast

import "github.com/phpscout/phpast/lexer"

// Span bounds a node in the source. It is the same type the lexer
// attaches to tokens, so a node's span can be built directly from the
// tokens that produced it.
type Span = lexer.Span

// Kind discriminates a Node's concrete variant. The schema is closed:
// every node's Kind is one of the constants below, and the traversal
// layer's per-kind child enumeration is expected to be exhaustive.
type Kind int

// Node is the common interface of every AST variant.
type Node interface {
	Kind() Kind
	Span() Span
	// Children returns this node's direct child nodes in declaration
	// order, for the traversal layer. A nil/absent optional field (e.g.
	// an absent else-clause) contributes nothing; a present-but-empty
	// list field contributes nothing either, which is indistinguishable
	// to the generic walker but distinguishable by field-specific
	// accessors on the concrete type.
	Children() []Node
}

// Statement, Expression, Declaration, and TypeNode are marker interfaces
// used by this package's structural classifiers (IsStatement,
// IsExpression, ...) and by the parser to type-check what a production
// returns.
type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Declaration interface {
	Statement
	declarationNode()
}

type TypeNode interface {
	Node
	typeNode()
}

// ClassMember is a member of a class/interface/trait/enum body:
// property, method, constant, constructor, trait-use, or enum case.
type ClassMember interface {
	Node
	classMemberNode()
}

// base is embedded by every concrete node and implements Kind/Span.
type base struct {
	kind Kind
	span Span
}

func (b base) Kind() Kind { return b.kind }
func (b base) Span() Span { return b.span }

// Program is the root of a parsed file: a flat list of top-level
// statements (which, for files with no open tag, is a single
// InlineHTML statement).
type Program struct {
	base
	Statements  []Statement
	Diagnostics []Diagnostic
}

func NewProgram(span Span, stmts []Statement, diags []Diagnostic) *Program {
	return &Program{base: base{kind: KProgram, span: span}, Statements: stmts, Diagnostics: diags}
}

func (p *Program) Children() []Node {
	out := make([]Node, 0, len(p.Statements))
	for _, s := range p.Statements {
		out = append(out, s)
	}
	return out
}

// Diagnostic is a recovered parse error attached to a Program parsed
// under error_recovery=true.
type Diagnostic struct {
	Message string
	Span    Span
}
