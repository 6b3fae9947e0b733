package ast

// Every Expression implementor marks itself with expressionNode so the
// Expression interface is satisfied only by nodes in this file's union.

func (n *NumberLiteral) expressionNode()    {}
func (n *StringLiteral) expressionNode()    {}
func (n *BoolLiteral) expressionNode()      {}
func (n *NullLiteral) expressionNode()      {}
func (n *ArrayExpression) expressionNode()  {}
func (n *ObjectExpression) expressionNode() {}
func (n *Identifier) expressionNode()       {}
func (n *Variable) expressionNode()         {}
func (n *Name) expressionNode()             {}
func (n *BinaryExpression) expressionNode()      {}
func (n *UnaryExpression) expressionNode()       {}
func (n *UpdateExpression) expressionNode()      {}
func (n *AssignmentExpression) expressionNode()  {}
func (n *ConditionalExpression) expressionNode() {}
func (n *SequenceExpression) expressionNode()    {}
func (n *MemberExpression) expressionNode()      {}
func (n *CallExpression) expressionNode()        {}
func (n *NewExpression) expressionNode()         {}
func (n *FunctionExpression) expressionNode()    {}
func (n *ArrowFunctionExpression) expressionNode() {}
func (n *YieldExpression) expressionNode()       {}
func (n *ThrowExpression) expressionNode()       {}
func (n *CloneExpression) expressionNode()       {}
func (n *IncludeExpression) expressionNode()     {}
func (n *ListExpression) expressionNode()        {}
func (n *ReferenceExpression) expressionNode()   {}
func (n *ErrorControlExpression) expressionNode() {}
func (n *CastExpression) expressionNode()        {}
func (n *IssetExpression) expressionNode()       {}
func (n *EmptyExpression) expressionNode()       {}
func (n *EvalExpression) expressionNode()        {}
func (n *ExitExpression) expressionNode()        {}
func (n *PrintExpression) expressionNode()       {}
func (n *ShellExecExpression) expressionNode()   {}
func (n *TemplateStringExpression) expressionNode() {}
func (n *SpreadExpression) expressionNode()      {}
func (n *MatchExpression) expressionNode()       {}

// ---- literals ----

type NumberLiteral struct {
	base
	Raw string // preserves base prefix, underscores, exponent verbatim
}

func NewNumberLiteral(span Span, raw string) *NumberLiteral {
	return &NumberLiteral{base: base{kind: KNumberLiteral, span: span}, Raw: raw}
}
func (n *NumberLiteral) Children() []Node { return nil }

type StringLiteral struct {
	base
	Raw string // single-quoted/backtick: with quotes; double-quoted/heredoc: body only; escapes uninterpreted
}

func NewStringLiteral(span Span, raw string) *StringLiteral {
	return &StringLiteral{base: base{kind: KStringLiteral, span: span}, Raw: raw}
}
func (n *StringLiteral) Children() []Node { return nil }

type BoolLiteral struct {
	base
	Value bool
}

func NewBoolLiteral(span Span, value bool) *BoolLiteral {
	return &BoolLiteral{base: base{kind: KBoolLiteral, span: span}, Value: value}
}
func (n *BoolLiteral) Children() []Node { return nil }

type NullLiteral struct{ base }

func NewNullLiteral(span Span) *NullLiteral {
	return &NullLiteral{base: base{kind: KNullLiteral, span: span}}
}
func (n *NullLiteral) Children() []Node { return nil }

// ArrayItem is one `key => value` (or plain value) entry of an array
// literal or array-destructuring pattern.
type ArrayItem struct {
	base
	Key      Expression // nil if positional
	Value    Expression
	ByRef    bool
	IsSpread bool
}

func NewArrayItem(span Span, key, value Expression, byRef, spread bool) *ArrayItem {
	return &ArrayItem{base: base{kind: KArrayItem, span: span}, Key: key, Value: value, ByRef: byRef, IsSpread: spread}
}
func (n *ArrayItem) Children() []Node {
	var out []Node
	if n.Key != nil {
		out = append(out, n.Key)
	}
	if n.Value != nil {
		out = append(out, n.Value)
	}
	return out
}

type ArrayExpression struct {
	base
	Items []*ArrayItem
}

func NewArrayExpression(span Span, items []*ArrayItem) *ArrayExpression {
	return &ArrayExpression{base: base{kind: KArrayExpression, span: span}, Items: items}
}
func (n *ArrayExpression) Children() []Node {
	out := make([]Node, len(n.Items))
	for i, it := range n.Items {
		out[i] = it
	}
	return out
}

// ObjectExpression models the result of `new stdClass`-style literal
// object data the front-end may encounter in attribute/const contexts;
// it carries the same key/value items an array literal does.
type ObjectExpression struct {
	base
	Items []*ArrayItem
}

func NewObjectExpression(span Span, items []*ArrayItem) *ObjectExpression {
	return &ObjectExpression{base: base{kind: KObjectExpression, span: span}, Items: items}
}
func (n *ObjectExpression) Children() []Node {
	out := make([]Node, len(n.Items))
	for i, it := range n.Items {
		out[i] = it
	}
	return out
}

// ---- identifiers, variables, names ----

// Identifier is a bare name in a non-expression-name position (e.g. a
// function/method/property/constant name).
type Identifier struct {
	base
	Name string
}

func NewIdentifier(span Span, name string) *Identifier {
	return &Identifier{base: base{kind: KIdentifier, span: span}, Name: name}
}
func (n *Identifier) Children() []Node { return nil }

type Variable struct {
	base
	Name string // without the leading '$'
}

// NewVariable builds a Variable; a leading '$' on name is dropped.
func NewVariable(span Span, name string) *Variable {
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}
	return &Variable{base: base{kind: KVariable, span: span}, Name: name}
}
func (n *Variable) Children() []Node { return nil }

// Name is a (possibly qualified) identifier used as an expression: a
// class/function/constant reference.
type Name struct {
	base
	Parts      []string
	Qualifier  NameKind
}

func NewName(span Span, parts []string, qualifier NameKind) *Name {
	return &Name{base: base{kind: KName, span: span}, Parts: parts, Qualifier: qualifier}
}
func (n *Name) Children() []Node { return nil }

// ---- operators ----

type BinaryExpression struct {
	base
	Operator string
	Left     Expression
	Right    Expression
}

func NewBinaryExpression(span Span, op string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{base: base{kind: KBinaryExpression, span: span}, Operator: op, Left: left, Right: right}
}
func (n *BinaryExpression) Children() []Node { return []Node{n.Left, n.Right} }

type UnaryExpression struct {
	base
	Operator string
	Operand  Expression
	Prefix   bool
}

func NewUnaryExpression(span Span, op string, operand Expression, prefix bool) *UnaryExpression {
	return &UnaryExpression{base: base{kind: KUnaryExpression, span: span}, Operator: op, Operand: operand, Prefix: prefix}
}
func (n *UnaryExpression) Children() []Node { return []Node{n.Operand} }

type UpdateExpression struct {
	base
	Operator string // "++" or "--"
	Operand  Expression
	Prefix   bool
}

func NewUpdateExpression(span Span, op string, operand Expression, prefix bool) *UpdateExpression {
	return &UpdateExpression{base: base{kind: KUpdateExpression, span: span}, Operator: op, Operand: operand, Prefix: prefix}
}
func (n *UpdateExpression) Children() []Node { return []Node{n.Operand} }

type AssignmentExpression struct {
	base
	Operator string // "=", "+=", ..., "??="
	Target   Expression
	Value    Expression
	ByRef    bool
}

func NewAssignmentExpression(span Span, op string, target, value Expression, byRef bool) *AssignmentExpression {
	return &AssignmentExpression{base: base{kind: KAssignmentExpression, span: span}, Operator: op, Target: target, Value: value, ByRef: byRef}
}
func (n *AssignmentExpression) Children() []Node { return []Node{n.Target, n.Value} }

// ConditionalExpression is `cond ? then : else`; Then is nil for the
// short ternary `cond ?: else`.
type ConditionalExpression struct {
	base
	Test Expression
	Then Expression
	Else Expression
}

func NewConditionalExpression(span Span, test, then, els Expression) *ConditionalExpression {
	return &ConditionalExpression{base: base{kind: KConditionalExpression, span: span}, Test: test, Then: then, Else: els}
}
func (n *ConditionalExpression) Children() []Node {
	out := []Node{n.Test}
	if n.Then != nil {
		out = append(out, n.Then)
	}
	out = append(out, n.Else)
	return out
}

// SequenceExpression is the comma operator in a `for` init/update clause.
type SequenceExpression struct {
	base
	Expressions []Expression
}

func NewSequenceExpression(span Span, exprs []Expression) *SequenceExpression {
	return &SequenceExpression{base: base{kind: KSequenceExpression, span: span}, Expressions: exprs}
}
func (n *SequenceExpression) Children() []Node {
	out := make([]Node, len(n.Expressions))
	for i, e := range n.Expressions {
		out[i] = e
	}
	return out
}

// ---- member access, calls, new ----

// MemberExpression covers `obj->prop`, `obj?->prop`, `obj::prop`, and
// `arr[idx]`, distinguished by Computed/NullSafe/Static.
type MemberExpression struct {
	base
	Object    Expression
	Property  Node // Identifier for ->/:: access, Expression for [..] access
	Computed  bool // true for arr[idx]
	NullSafe  bool // true for ?->
	StaticRef bool // true for ::
}

func NewMemberExpression(span Span, object Expression, property Node, computed, nullSafe, static bool) *MemberExpression {
	return &MemberExpression{base: base{kind: KMemberExpression, span: span}, Object: object, Property: property, Computed: computed, NullSafe: nullSafe, StaticRef: static}
}
func (n *MemberExpression) Children() []Node {
	out := []Node{n.Object}
	if n.Property != nil {
		out = append(out, n.Property)
	}
	return out
}

// Argument is one call/new argument, preserving its surface form:
// positional, named (Name != ""), or spread.
type Argument struct {
	base
	Name     string
	Value    Expression
	IsSpread bool
}

func NewArgument(span Span, name string, value Expression, spread bool) *Argument {
	return &Argument{base: base{kind: KArgument, span: span}, Name: name, Value: value, IsSpread: spread}
}
func (n *Argument) Children() []Node { return []Node{n.Value} }

type CallExpression struct {
	base
	Callee Expression
	Args   []*Argument
}

func NewCallExpression(span Span, callee Expression, args []*Argument) *CallExpression {
	return &CallExpression{base: base{kind: KCallExpression, span: span}, Callee: callee, Args: args}
}
func (n *CallExpression) Children() []Node {
	out := []Node{n.Callee}
	for _, a := range n.Args {
		out = append(out, a)
	}
	return out
}

// NewExpression is `new Class(args)`, `new $expr(args)`, or
// `new class(args) { ... }` (AnonymousClass != nil).
type NewExpression struct {
	base
	Callee    Expression // nil when Anonymous != nil
	Args      []*Argument
	Anonymous *AnonymousClass
}

func NewNewExpression(span Span, callee Expression, args []*Argument, anon *AnonymousClass) *NewExpression {
	return &NewExpression{base: base{kind: KNewExpression, span: span}, Callee: callee, Args: args, Anonymous: anon}
}
func (n *NewExpression) Children() []Node {
	var out []Node
	if n.Callee != nil {
		out = append(out, n.Callee)
	}
	for _, a := range n.Args {
		out = append(out, a)
	}
	if n.Anonymous != nil {
		out = append(out, n.Anonymous)
	}
	return out
}

// ---- closures ----

// ClosureUse is one entry of a closure's `use (...)` clause.
type ClosureUse struct {
	base
	Variable *Variable
	ByRef    bool
}

func NewClosureUse(span Span, v *Variable, byRef bool) *ClosureUse {
	return &ClosureUse{base: base{kind: KClosureUse, span: span}, Variable: v, ByRef: byRef}
}
func (n *ClosureUse) Children() []Node { return []Node{n.Variable} }

type FunctionExpression struct {
	base
	ByRef      bool
	Static     bool
	Params     *ParameterList
	Uses       []*ClosureUse
	ReturnType TypeNode
	Body       *Block
}

func NewFunctionExpression(span Span, byRef, static bool, params *ParameterList, uses []*ClosureUse, ret TypeNode, body *Block) *FunctionExpression {
	return &FunctionExpression{base: base{kind: KFunctionExpression, span: span}, ByRef: byRef, Static: static, Params: params, Uses: uses, ReturnType: ret, Body: body}
}
func (n *FunctionExpression) Children() []Node {
	out := []Node{n.Params}
	for _, u := range n.Uses {
		out = append(out, u)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	return out
}

type ArrowFunctionExpression struct {
	base
	ByRef      bool
	Static     bool
	Params     *ParameterList
	ReturnType TypeNode
	Body       Expression
}

func NewArrowFunctionExpression(span Span, byRef, static bool, params *ParameterList, ret TypeNode, body Expression) *ArrowFunctionExpression {
	return &ArrowFunctionExpression{base: base{kind: KArrowFunctionExpression, span: span}, ByRef: byRef, Static: static, Params: params, ReturnType: ret, Body: body}
}
func (n *ArrowFunctionExpression) Children() []Node {
	out := []Node{n.Params}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	return out
}

// ---- misc expressions ----

type YieldExpression struct {
	base
	Key   Expression
	Value Expression
	From  bool
}

func NewYieldExpression(span Span, key, value Expression, from bool) *YieldExpression {
	return &YieldExpression{base: base{kind: KYieldExpression, span: span}, Key: key, Value: value, From: from}
}
func (n *YieldExpression) Children() []Node {
	var out []Node
	if n.Key != nil {
		out = append(out, n.Key)
	}
	if n.Value != nil {
		out = append(out, n.Value)
	}
	return out
}

type ThrowExpression struct {
	base
	Argument Expression
}

func NewThrowExpression(span Span, arg Expression) *ThrowExpression {
	return &ThrowExpression{base: base{kind: KThrowExpression, span: span}, Argument: arg}
}
func (n *ThrowExpression) Children() []Node { return []Node{n.Argument} }

type CloneExpression struct {
	base
	Argument Expression
}

func NewCloneExpression(span Span, arg Expression) *CloneExpression {
	return &CloneExpression{base: base{kind: KCloneExpression, span: span}, Argument: arg}
}
func (n *CloneExpression) Children() []Node { return []Node{n.Argument} }

type IncludeExpression struct {
	base
	Which    IncludeKind
	Argument Expression
}

func NewIncludeExpression(span Span, which IncludeKind, arg Expression) *IncludeExpression {
	return &IncludeExpression{base: base{kind: KIncludeExpression, span: span}, Which: which, Argument: arg}
}
func (n *IncludeExpression) Children() []Node { return []Node{n.Argument} }

// ListExpression is `list(...)` or the short `[...]` destructuring
// pattern on an assignment's left-hand side.
type ListExpression struct {
	base
	Items []*ArrayItem // Key/Value per slot; a nil item marks a skipped slot
}

func NewListExpression(span Span, items []*ArrayItem) *ListExpression {
	return &ListExpression{base: base{kind: KListExpression, span: span}, Items: items}
}
func (n *ListExpression) Children() []Node {
	out := make([]Node, 0, len(n.Items))
	for _, it := range n.Items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

type ReferenceExpression struct {
	base
	Argument Expression
}

func NewReferenceExpression(span Span, arg Expression) *ReferenceExpression {
	return &ReferenceExpression{base: base{kind: KReferenceExpression, span: span}, Argument: arg}
}
func (n *ReferenceExpression) Children() []Node { return []Node{n.Argument} }

type ErrorControlExpression struct {
	base
	Argument Expression
}

func NewErrorControlExpression(span Span, arg Expression) *ErrorControlExpression {
	return &ErrorControlExpression{base: base{kind: KErrorControlExpression, span: span}, Argument: arg}
}
func (n *ErrorControlExpression) Children() []Node { return []Node{n.Argument} }

type CastExpression struct {
	base
	To       CastKind
	Argument Expression
}

func NewCastExpression(span Span, to CastKind, arg Expression) *CastExpression {
	return &CastExpression{base: base{kind: KCastExpression, span: span}, To: to, Argument: arg}
}
func (n *CastExpression) Children() []Node { return []Node{n.Argument} }

type IssetExpression struct {
	base
	Arguments []Expression
}

func NewIssetExpression(span Span, args []Expression) *IssetExpression {
	return &IssetExpression{base: base{kind: KIssetExpression, span: span}, Arguments: args}
}
func (n *IssetExpression) Children() []Node {
	out := make([]Node, len(n.Arguments))
	for i, a := range n.Arguments {
		out[i] = a
	}
	return out
}

type EmptyExpression struct {
	base
	Argument Expression
}

func NewEmptyExpression(span Span, arg Expression) *EmptyExpression {
	return &EmptyExpression{base: base{kind: KEmptyExpression, span: span}, Argument: arg}
}
func (n *EmptyExpression) Children() []Node { return []Node{n.Argument} }

type EvalExpression struct {
	base
	Argument Expression
}

func NewEvalExpression(span Span, arg Expression) *EvalExpression {
	return &EvalExpression{base: base{kind: KEvalExpression, span: span}, Argument: arg}
}
func (n *EvalExpression) Children() []Node { return []Node{n.Argument} }

type ExitExpression struct {
	base
	Argument Expression // nil for bare `exit`/`exit()`
}

func NewExitExpression(span Span, arg Expression) *ExitExpression {
	return &ExitExpression{base: base{kind: KExitExpression, span: span}, Argument: arg}
}
func (n *ExitExpression) Children() []Node {
	if n.Argument == nil {
		return nil
	}
	return []Node{n.Argument}
}

type PrintExpression struct {
	base
	Argument Expression
}

func NewPrintExpression(span Span, arg Expression) *PrintExpression {
	return &PrintExpression{base: base{kind: KPrintExpression, span: span}, Argument: arg}
}
func (n *PrintExpression) Children() []Node { return []Node{n.Argument} }

type ShellExecExpression struct {
	base
	Raw string
}

func NewShellExecExpression(span Span, raw string) *ShellExecExpression {
	return &ShellExecExpression{base: base{kind: KShellExecExpression, span: span}, Raw: raw}
}
func (n *ShellExecExpression) Children() []Node { return nil }

// TemplateStringExpression is a double-quoted or heredoc string with
// interpolation: Parts alternate raw text and embedded expressions in
// source order.
type TemplateStringExpression struct {
	base
	Parts []Expression // *StringLiteral for literal runs, any Expression for `{$...}`/`$var` runs
}

func NewTemplateStringExpression(span Span, parts []Expression) *TemplateStringExpression {
	return &TemplateStringExpression{base: base{kind: KTemplateStringExpression, span: span}, Parts: parts}
}
func (n *TemplateStringExpression) Children() []Node {
	out := make([]Node, len(n.Parts))
	for i, p := range n.Parts {
		out[i] = p
	}
	return out
}

type SpreadExpression struct {
	base
	Argument Expression
}

func NewSpreadExpression(span Span, arg Expression) *SpreadExpression {
	return &SpreadExpression{base: base{kind: KSpreadExpression, span: span}, Argument: arg}
}
func (n *SpreadExpression) Children() []Node { return []Node{n.Argument} }

// MatchArm is one `condition => result` arm of a match expression;
// Conditions is empty for the `default` arm.
type MatchArm struct {
	base
	Conditions []Expression
	Result     Expression
}

func NewMatchArm(span Span, conditions []Expression, result Expression) *MatchArm {
	return &MatchArm{base: base{kind: KMatchArm, span: span}, Conditions: conditions, Result: result}
}
func (n *MatchArm) Children() []Node {
	out := make([]Node, 0, len(n.Conditions)+1)
	for _, c := range n.Conditions {
		out = append(out, c)
	}
	out = append(out, n.Result)
	return out
}

type MatchExpression struct {
	base
	Subject Expression
	Arms    []*MatchArm
}

func NewMatchExpression(span Span, subject Expression, arms []*MatchArm) *MatchExpression {
	return &MatchExpression{base: base{kind: KMatchExpression, span: span}, Subject: subject, Arms: arms}
}
func (n *MatchExpression) Children() []Node {
	out := []Node{n.Subject}
	for _, a := range n.Arms {
		out = append(out, a)
	}
	return out
}
