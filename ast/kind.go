package ast

const (
	KProgram Kind = iota

	// Statements
	KExpressionStatement
	KBlock
	KIfStatement
	KWhileStatement
	KDoWhileStatement
	KForStatement
	KForeachStatement
	KSwitchStatement
	KSwitchCase
	KBreakStatement
	KContinueStatement
	KReturnStatement
	KThrowStatement
	KTryStatement
	KCatchClause
	KEchoStatement
	KGlobalStatement
	KStaticStatement
	KConstStatement
	KUnsetStatement
	KGotoStatement
	KLabeledStatement
	KDeclareStatement
	KInlineHTMLStatement

	// Declarations
	KFunctionDeclaration
	KClassDeclaration
	KInterfaceDeclaration
	KTraitDeclaration
	KEnumDeclaration
	KEnumCase
	KNamespaceDeclaration
	KUseStatement
	KConstDeclaration

	// Class members
	KPropertyDeclaration
	KMethodDeclaration
	KClassConstantDeclaration
	KConstructorDeclaration
	KTraitUseStatement

	// Expressions
	KNumberLiteral
	KStringLiteral
	KBoolLiteral
	KNullLiteral
	KArrayExpression
	KArrayItem
	KObjectExpression
	KIdentifier
	KVariable
	KName
	KBinaryExpression
	KUnaryExpression
	KUpdateExpression
	KAssignmentExpression
	KConditionalExpression
	KSequenceExpression
	KMemberExpression
	KCallExpression
	KArgument
	KNewExpression
	KFunctionExpression
	KArrowFunctionExpression
	KClosureUse
	KYieldExpression
	KThrowExpression
	KCloneExpression
	KIncludeExpression
	KListExpression
	KReferenceExpression
	KErrorControlExpression
	KCastExpression
	KIssetExpression
	KEmptyExpression
	KEvalExpression
	KExitExpression
	KPrintExpression
	KShellExecExpression
	KTemplateStringExpression
	KSpreadExpression
	KMatchExpression
	KMatchArm

	// Types
	KSimpleType
	KUnionType
	KIntersectionType
	KNullableType
	KArrayType
	KCallableType

	// Supporting nodes
	KParameter
	KParameterList
	KAnonymousClass
	KAttributeGroup
	KTraitAdaptationAlias
	KTraitAdaptationPrecedence
)

var kindNames = map[Kind]string{
	KProgram:                   "Program",
	KExpressionStatement:       "ExpressionStatement",
	KBlock:                     "Block",
	KIfStatement:               "IfStatement",
	KWhileStatement:            "WhileStatement",
	KDoWhileStatement:          "DoWhileStatement",
	KForStatement:              "ForStatement",
	KForeachStatement:          "ForeachStatement",
	KSwitchStatement:           "SwitchStatement",
	KSwitchCase:                "SwitchCase",
	KBreakStatement:            "BreakStatement",
	KContinueStatement:         "ContinueStatement",
	KReturnStatement:           "ReturnStatement",
	KThrowStatement:            "ThrowStatement",
	KTryStatement:              "TryStatement",
	KCatchClause:               "CatchClause",
	KEchoStatement:             "EchoStatement",
	KGlobalStatement:           "GlobalStatement",
	KStaticStatement:           "StaticStatement",
	KConstStatement:            "ConstStatement",
	KUnsetStatement:            "UnsetStatement",
	KGotoStatement:             "GotoStatement",
	KLabeledStatement:          "LabeledStatement",
	KDeclareStatement:          "DeclareStatement",
	KInlineHTMLStatement:       "InlineHTMLStatement",
	KFunctionDeclaration:       "FunctionDeclaration",
	KClassDeclaration:          "ClassDeclaration",
	KInterfaceDeclaration:      "InterfaceDeclaration",
	KTraitDeclaration:          "TraitDeclaration",
	KEnumDeclaration:           "EnumDeclaration",
	KEnumCase:                  "EnumCase",
	KNamespaceDeclaration:      "NamespaceDeclaration",
	KUseStatement:              "UseStatement",
	KConstDeclaration:          "ConstDeclaration",
	KPropertyDeclaration:       "PropertyDeclaration",
	KMethodDeclaration:         "MethodDeclaration",
	KClassConstantDeclaration:  "ClassConstantDeclaration",
	KConstructorDeclaration:    "ConstructorDeclaration",
	KTraitUseStatement:         "TraitUseStatement",
	KNumberLiteral:             "NumberLiteral",
	KStringLiteral:             "StringLiteral",
	KBoolLiteral:               "BoolLiteral",
	KNullLiteral:               "NullLiteral",
	KArrayExpression:           "ArrayExpression",
	KArrayItem:                 "ArrayItem",
	KObjectExpression:          "ObjectExpression",
	KIdentifier:                "Identifier",
	KVariable:                  "Variable",
	KName:                      "Name",
	KBinaryExpression:          "BinaryExpression",
	KUnaryExpression:           "UnaryExpression",
	KUpdateExpression:          "UpdateExpression",
	KAssignmentExpression:      "AssignmentExpression",
	KConditionalExpression:     "ConditionalExpression",
	KSequenceExpression:        "SequenceExpression",
	KMemberExpression:          "MemberExpression",
	KCallExpression:            "CallExpression",
	KArgument:                  "Argument",
	KNewExpression:             "NewExpression",
	KFunctionExpression:        "FunctionExpression",
	KArrowFunctionExpression:   "ArrowFunctionExpression",
	KClosureUse:                "ClosureUse",
	KYieldExpression:           "YieldExpression",
	KThrowExpression:           "ThrowExpression",
	KCloneExpression:           "CloneExpression",
	KIncludeExpression:         "IncludeExpression",
	KListExpression:            "ListExpression",
	KReferenceExpression:       "ReferenceExpression",
	KErrorControlExpression:    "ErrorControlExpression",
	KCastExpression:            "CastExpression",
	KIssetExpression:           "IssetExpression",
	KEmptyExpression:           "EmptyExpression",
	KEvalExpression:            "EvalExpression",
	KExitExpression:            "ExitExpression",
	KPrintExpression:           "PrintExpression",
	KShellExecExpression:       "ShellExecExpression",
	KTemplateStringExpression:  "TemplateStringExpression",
	KSpreadExpression:          "SpreadExpression",
	KMatchExpression:           "MatchExpression",
	KMatchArm:                  "MatchArm",
	KSimpleType:                "SimpleType",
	KUnionType:                 "UnionType",
	KIntersectionType:          "IntersectionType",
	KNullableType:              "NullableType",
	KArrayType:                 "ArrayType",
	KCallableType:              "CallableType",
	KParameter:                 "Parameter",
	KParameterList:             "ParameterList",
	KAnonymousClass:            "AnonymousClass",
	KAttributeGroup:            "AttributeGroup",
	KTraitAdaptationAlias:      "TraitAdaptationAlias",
	KTraitAdaptationPrecedence: "TraitAdaptationPrecedence",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsStatement is true for any tag in the statement union, including
// declarations (every declaration is also a statement in a body).
func IsStatement(n Node) bool {
	_, ok := n.(Statement)
	return ok
}

// IsExpression is true for any tag in the expression union.
func IsExpression(n Node) bool {
	_, ok := n.(Expression)
	return ok
}

// IsDeclaration is true for function/class/interface/trait/enum/
// namespace/use/const declarations.
func IsDeclaration(n Node) bool {
	_, ok := n.(Declaration)
	return ok
}

// IsLiteral is true for number/string/bool/null literals.
func IsLiteral(n Node) bool {
	switch n.Kind() {
	case KNumberLiteral, KStringLiteral, KBoolLiteral, KNullLiteral:
		return true
	default:
		return false
	}
}
