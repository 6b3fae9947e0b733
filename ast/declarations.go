package ast

func (n *FunctionDeclaration) declarationNode()      {}
func (n *ClassDeclaration) declarationNode()         {}
func (n *InterfaceDeclaration) declarationNode()     {}
func (n *TraitDeclaration) declarationNode()         {}
func (n *EnumDeclaration) declarationNode()          {}
func (n *NamespaceDeclaration) declarationNode()     {}
func (n *UseStatement) declarationNode()             {}
func (n *ConstDeclaration) declarationNode()         {}

func (n *FunctionDeclaration) statementNode()  {}
func (n *ClassDeclaration) statementNode()     {}
func (n *InterfaceDeclaration) statementNode() {}
func (n *TraitDeclaration) statementNode()     {}
func (n *EnumDeclaration) statementNode()      {}
func (n *NamespaceDeclaration) statementNode() {}
func (n *UseStatement) statementNode()         {}
func (n *ConstDeclaration) statementNode()     {}

func (n *PropertyDeclaration) classMemberNode()      {}
func (n *MethodDeclaration) classMemberNode()        {}
func (n *ClassConstantDeclaration) classMemberNode() {}
func (n *ConstructorDeclaration) classMemberNode()   {}
func (n *TraitUseStatement) classMemberNode()        {}
func (n *EnumCase) classMemberNode()                 {}

// ---- parameters ----

// Parameter is one function/method/closure parameter, including
// constructor-promotion modifiers. Promoted is non-nil whenever the
// parameter carries visibility or readonly modifiers; the parser does
// not check that the list belongs to a constructor.
type Parameter struct {
	base
	Name       string
	Type       TypeNode
	Default    Expression
	ByRef      bool
	Variadic   bool
	Promoted   *Modifiers
	Attributes []*AttributeGroup
}

func NewParameter(span Span, name string, typ TypeNode, def Expression, byRef, variadic bool, promoted *Modifiers, attrs []*AttributeGroup) *Parameter {
	return &Parameter{base: base{kind: KParameter, span: span}, Name: name, Type: typ, Default: def, ByRef: byRef, Variadic: variadic, Promoted: promoted, Attributes: attrs}
}
func (n *Parameter) Children() []Node {
	var out []Node
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	if n.Type != nil {
		out = append(out, n.Type)
	}
	if n.Default != nil {
		out = append(out, n.Default)
	}
	return out
}

type ParameterList struct {
	base
	Parameters []*Parameter
}

func NewParameterList(span Span, params []*Parameter) *ParameterList {
	return &ParameterList{base: base{kind: KParameterList, span: span}, Parameters: params}
}
func (n *ParameterList) Children() []Node {
	out := make([]Node, len(n.Parameters))
	for i, p := range n.Parameters {
		out[i] = p
	}
	return out
}

// AttributeGroup is one `#[Attr(args), Attr2]` group, kept as its raw
// bracket text; the attributes and arguments inside are not parsed.
type AttributeGroup struct {
	base
	Raw string
}

func NewAttributeGroup(span Span, raw string) *AttributeGroup {
	return &AttributeGroup{base: base{kind: KAttributeGroup, span: span}, Raw: raw}
}
func (n *AttributeGroup) Children() []Node { return nil }

// ---- functions ----

type FunctionDeclaration struct {
	base
	Name       string
	ByRef      bool
	Params     *ParameterList
	ReturnType TypeNode
	Body       *Block
	Attributes []*AttributeGroup
}

func NewFunctionDeclaration(span Span, name string, byRef bool, params *ParameterList, ret TypeNode, body *Block, attrs []*AttributeGroup) *FunctionDeclaration {
	return &FunctionDeclaration{base: base{kind: KFunctionDeclaration, span: span}, Name: name, ByRef: byRef, Params: params, ReturnType: ret, Body: body, Attributes: attrs}
}
func (n *FunctionDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Attributes)+3)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	out = append(out, n.Params)
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	return out
}

// ---- classes ----

// TraitAdaptationAlias is `Trait::method as [visibility] [alias];`.
type TraitAdaptationAlias struct {
	base
	Trait      string
	Method     string
	Visibility Visibility
	Alias      string
}

func NewTraitAdaptationAlias(span Span, trait, method string, vis Visibility, alias string) *TraitAdaptationAlias {
	return &TraitAdaptationAlias{base: base{kind: KTraitAdaptationAlias, span: span}, Trait: trait, Method: method, Visibility: vis, Alias: alias}
}
func (n *TraitAdaptationAlias) Children() []Node { return nil }

// TraitAdaptationPrecedence is `Trait::method insteadof Other, ...;`.
type TraitAdaptationPrecedence struct {
	base
	Trait       string
	Method      string
	InsteadOf   []string
}

func NewTraitAdaptationPrecedence(span Span, trait, method string, insteadOf []string) *TraitAdaptationPrecedence {
	return &TraitAdaptationPrecedence{base: base{kind: KTraitAdaptationPrecedence, span: span}, Trait: trait, Method: method, InsteadOf: insteadOf}
}
func (n *TraitAdaptationPrecedence) Children() []Node { return nil }

// TraitUseStatement is `use Trait1, Trait2 { adaptations }` inside a
// class/trait body.
type TraitUseStatement struct {
	base
	Traits      []string
	Adaptations []Node // *TraitAdaptationAlias or *TraitAdaptationPrecedence
}

func NewTraitUseStatement(span Span, traits []string, adaptations []Node) *TraitUseStatement {
	return &TraitUseStatement{base: base{kind: KTraitUseStatement, span: span}, Traits: traits, Adaptations: adaptations}
}
func (n *TraitUseStatement) Children() []Node { return n.Adaptations }

// PropertyDeclarator is one `$name [= default]` slot of a property
// declaration statement (a single statement may declare several).
type PropertyDeclarator struct {
	base
	Name    string
	Default Expression
}

func NewPropertyDeclarator(span Span, name string, def Expression) *PropertyDeclarator {
	return &PropertyDeclarator{base: base{kind: KPropertyDeclaration, span: span}, Name: name, Default: def}
}
func (n *PropertyDeclarator) Children() []Node {
	if n.Default == nil {
		return nil
	}
	return []Node{n.Default}
}

type PropertyDeclaration struct {
	base
	Modifiers   Modifiers
	Type        TypeNode
	Declarators []*PropertyDeclarator
	Attributes  []*AttributeGroup
}

func NewPropertyDeclaration(span Span, mods Modifiers, typ TypeNode, decls []*PropertyDeclarator, attrs []*AttributeGroup) *PropertyDeclaration {
	return &PropertyDeclaration{base: base{kind: KPropertyDeclaration, span: span}, Modifiers: mods, Type: typ, Declarators: decls, Attributes: attrs}
}
func (n *PropertyDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Attributes)+len(n.Declarators)+1)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	if n.Type != nil {
		out = append(out, n.Type)
	}
	for _, d := range n.Declarators {
		out = append(out, d)
	}
	return out
}

type MethodDeclaration struct {
	base
	Name       string
	Modifiers  Modifiers
	ByRef      bool
	Params     *ParameterList
	ReturnType TypeNode
	Body       *Block // nil for an abstract/interface method
	Attributes []*AttributeGroup
}

func NewMethodDeclaration(span Span, name string, mods Modifiers, byRef bool, params *ParameterList, ret TypeNode, body *Block, attrs []*AttributeGroup) *MethodDeclaration {
	return &MethodDeclaration{base: base{kind: KMethodDeclaration, span: span}, Name: name, Modifiers: mods, ByRef: byRef, Params: params, ReturnType: ret, Body: body, Attributes: attrs}
}
func (n *MethodDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Attributes)+3)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	out = append(out, n.Params)
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

// ConstructorDeclaration is split from MethodDeclaration because
// promoted-property parameters give it constructor-only semantics the
// traversal layer's consumers care about distinguishing.
type ConstructorDeclaration struct {
	base
	Modifiers  Modifiers
	Params     *ParameterList
	Body       *Block
	Attributes []*AttributeGroup
}

func NewConstructorDeclaration(span Span, mods Modifiers, params *ParameterList, body *Block, attrs []*AttributeGroup) *ConstructorDeclaration {
	return &ConstructorDeclaration{base: base{kind: KConstructorDeclaration, span: span}, Modifiers: mods, Params: params, Body: body, Attributes: attrs}
}
func (n *ConstructorDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Attributes)+2)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	out = append(out, n.Params)
	if n.Body != nil {
		out = append(out, n.Body)
	}
	return out
}

// ClassConstantDeclarator is one `NAME = value` slot of a class
// constant declaration (a single statement may declare several).
type ClassConstantDeclarator struct {
	base
	Name  string
	Value Expression
}

func NewClassConstantDeclarator(span Span, name string, value Expression) *ClassConstantDeclarator {
	return &ClassConstantDeclarator{base: base{kind: KClassConstantDeclaration, span: span}, Name: name, Value: value}
}
func (n *ClassConstantDeclarator) Children() []Node { return []Node{n.Value} }

type ClassConstantDeclaration struct {
	base
	Modifiers   Modifiers
	Type        TypeNode
	Declarators []*ClassConstantDeclarator
	Attributes  []*AttributeGroup
}

func NewClassConstantDeclaration(span Span, mods Modifiers, typ TypeNode, decls []*ClassConstantDeclarator, attrs []*AttributeGroup) *ClassConstantDeclaration {
	return &ClassConstantDeclaration{base: base{kind: KClassConstantDeclaration, span: span}, Modifiers: mods, Type: typ, Declarators: decls, Attributes: attrs}
}
func (n *ClassConstantDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Attributes)+len(n.Declarators)+1)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	if n.Type != nil {
		out = append(out, n.Type)
	}
	for _, d := range n.Declarators {
		out = append(out, d)
	}
	return out
}

// AnonymousClass is the `class(args) extends ... implements ... { }`
// body of a `new class` expression.
type AnonymousClass struct {
	base
	Args        []*Argument
	Superclass  *Name
	Interfaces  []*Name
	Members     []ClassMember
	Attributes  []*AttributeGroup
}

func NewAnonymousClass(span Span, args []*Argument, super *Name, ifaces []*Name, members []ClassMember, attrs []*AttributeGroup) *AnonymousClass {
	return &AnonymousClass{base: base{kind: KAnonymousClass, span: span}, Args: args, Superclass: super, Interfaces: ifaces, Members: members, Attributes: attrs}
}
func (n *AnonymousClass) Children() []Node {
	var out []Node
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	for _, a := range n.Args {
		out = append(out, a)
	}
	if n.Superclass != nil {
		out = append(out, n.Superclass)
	}
	for _, i := range n.Interfaces {
		out = append(out, i)
	}
	for _, m := range n.Members {
		out = append(out, m)
	}
	return out
}

type ClassDeclaration struct {
	base
	Name       string
	Modifiers  Modifiers
	Superclass *Name
	Interfaces []*Name
	Members    []ClassMember
	Attributes []*AttributeGroup
}

func NewClassDeclaration(span Span, name string, mods Modifiers, super *Name, ifaces []*Name, members []ClassMember, attrs []*AttributeGroup) *ClassDeclaration {
	return &ClassDeclaration{base: base{kind: KClassDeclaration, span: span}, Name: name, Modifiers: mods, Superclass: super, Interfaces: ifaces, Members: members, Attributes: attrs}
}
func (n *ClassDeclaration) Children() []Node {
	var out []Node
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	if n.Superclass != nil {
		out = append(out, n.Superclass)
	}
	for _, i := range n.Interfaces {
		out = append(out, i)
	}
	for _, m := range n.Members {
		out = append(out, m)
	}
	return out
}

type InterfaceDeclaration struct {
	base
	Name    string
	Extends []*Name
	Members []ClassMember
}

func NewInterfaceDeclaration(span Span, name string, extends []*Name, members []ClassMember) *InterfaceDeclaration {
	return &InterfaceDeclaration{base: base{kind: KInterfaceDeclaration, span: span}, Name: name, Extends: extends, Members: members}
}
func (n *InterfaceDeclaration) Children() []Node {
	var out []Node
	for _, e := range n.Extends {
		out = append(out, e)
	}
	for _, m := range n.Members {
		out = append(out, m)
	}
	return out
}

type TraitDeclaration struct {
	base
	Name    string
	Members []ClassMember
}

func NewTraitDeclaration(span Span, name string, members []ClassMember) *TraitDeclaration {
	return &TraitDeclaration{base: base{kind: KTraitDeclaration, span: span}, Name: name, Members: members}
}
func (n *TraitDeclaration) Children() []Node {
	out := make([]Node, len(n.Members))
	for i, m := range n.Members {
		out[i] = m
	}
	return out
}

// EnumCase is one `case Name [= value];` member of an enum body.
type EnumCase struct {
	base
	Name  string
	Value Expression // nil for a pure (non-backed) case
}

func NewEnumCase(span Span, name string, value Expression) *EnumCase {
	return &EnumCase{base: base{kind: KEnumCase, span: span}, Name: name, Value: value}
}
func (n *EnumCase) Children() []Node {
	if n.Value == nil {
		return nil
	}
	return []Node{n.Value}
}

type EnumDeclaration struct {
	base
	Name       string
	ScalarType TypeNode // nil for a non-backed enum
	Interfaces []*Name
	Members    []ClassMember
	Attributes []*AttributeGroup
}

func NewEnumDeclaration(span Span, name string, scalar TypeNode, ifaces []*Name, members []ClassMember, attrs []*AttributeGroup) *EnumDeclaration {
	return &EnumDeclaration{base: base{kind: KEnumDeclaration, span: span}, Name: name, ScalarType: scalar, Interfaces: ifaces, Members: members, Attributes: attrs}
}
func (n *EnumDeclaration) Children() []Node {
	var out []Node
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	if n.ScalarType != nil {
		out = append(out, n.ScalarType)
	}
	for _, i := range n.Interfaces {
		out = append(out, i)
	}
	for _, m := range n.Members {
		out = append(out, m)
	}
	return out
}

// ---- namespaces and use ----

// NamespaceDeclaration covers both the braced form (Name may be empty
// for the global namespace) and the unbraced statement form (Braced
// false), whose Statements are the top-level statements that follow it
// up to the next namespace declaration, close tag, or end of input.
type NamespaceDeclaration struct {
	base
	Name       string
	Statements []Statement
	Braced     bool
}

func NewNamespaceDeclaration(span Span, name string, stmts []Statement, braced bool) *NamespaceDeclaration {
	return &NamespaceDeclaration{base: base{kind: KNamespaceDeclaration, span: span}, Name: name, Statements: stmts, Braced: braced}
}
func (n *NamespaceDeclaration) Children() []Node {
	out := make([]Node, len(n.Statements))
	for i, s := range n.Statements {
		out[i] = s
	}
	return out
}

// UseItem is one imported name of a `use` statement, with its own
// optional kind (for the grouped `use Foo\{function bar, Baz}` form)
// and alias.
type UseItem struct {
	base
	Name  string
	Kind  UseKind
	Alias string
}

func NewUseItem(span Span, name string, kind UseKind, alias string) *UseItem {
	return &UseItem{base: base{kind: KUseStatement, span: span}, Name: name, Kind: kind, Alias: alias}
}
func (n *UseItem) Children() []Node { return nil }

type UseStatement struct {
	base
	Kind  UseKind
	Items []*UseItem
}

func NewUseStatement(span Span, kind UseKind, items []*UseItem) *UseStatement {
	return &UseStatement{base: base{kind: KUseStatement, span: span}, Kind: kind, Items: items}
}
func (n *UseStatement) Children() []Node {
	out := make([]Node, len(n.Items))
	for i, it := range n.Items {
		out[i] = it
	}
	return out
}

// ConstDeclaration is the top-level/namespace-level declaration form;
// statement-level `const` inside a function body is ConstStatement.
type ConstDeclaration struct {
	base
	Names  []*Identifier
	Values []Expression
}

func NewConstDeclaration(span Span, names []*Identifier, values []Expression) *ConstDeclaration {
	return &ConstDeclaration{base: base{kind: KConstDeclaration, span: span}, Names: names, Values: values}
}
func (n *ConstDeclaration) Children() []Node {
	out := make([]Node, 0, len(n.Names)+len(n.Values))
	for i := range n.Names {
		out = append(out, n.Names[i])
		if i < len(n.Values) {
			out = append(out, n.Values[i])
		}
	}
	return out
}
