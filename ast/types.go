package ast

func (n *SimpleType) typeNode()       {}
func (n *UnionType) typeNode()        {}
func (n *IntersectionType) typeNode() {}
func (n *NullableType) typeNode()     {}
func (n *ArrayType) typeNode()        {}
func (n *CallableType) typeNode()     {}

// SimpleType is a bare type name: int, string, Foo\Bar, self, etc.
type SimpleType struct {
	base
	Name string
}

func NewSimpleType(span Span, name string) *SimpleType {
	return &SimpleType{base: base{kind: KSimpleType, span: span}, Name: name}
}
func (n *SimpleType) Children() []Node { return nil }

// UnionType is `A|B|C`.
type UnionType struct {
	base
	Types []TypeNode
}

func NewUnionType(span Span, types []TypeNode) *UnionType {
	return &UnionType{base: base{kind: KUnionType, span: span}, Types: types}
}
func (n *UnionType) Children() []Node {
	out := make([]Node, len(n.Types))
	for i, t := range n.Types {
		out[i] = t
	}
	return out
}

// IntersectionType is `A&B`.
type IntersectionType struct {
	base
	Types []TypeNode
}

func NewIntersectionType(span Span, types []TypeNode) *IntersectionType {
	return &IntersectionType{base: base{kind: KIntersectionType, span: span}, Types: types}
}
func (n *IntersectionType) Children() []Node {
	out := make([]Node, len(n.Types))
	for i, t := range n.Types {
		out[i] = t
	}
	return out
}

// NullableType is `?T`.
type NullableType struct {
	base
	Inner TypeNode
}

func NewNullableType(span Span, inner TypeNode) *NullableType {
	return &NullableType{base: base{kind: KNullableType, span: span}, Inner: inner}
}
func (n *NullableType) Children() []Node { return []Node{n.Inner} }

// ArrayType is the `array` type keyword used in a type position.
type ArrayType struct {
	base
}

func NewArrayType(span Span) *ArrayType {
	return &ArrayType{base: base{kind: KArrayType, span: span}}
}
func (n *ArrayType) Children() []Node { return nil }

// CallableType is the `callable` type keyword used in a type position.
type CallableType struct {
	base
}

func NewCallableType(span Span) *CallableType {
	return &CallableType{base: base{kind: KCallableType, span: span}}
}
func (n *CallableType) Children() []Node { return nil }
