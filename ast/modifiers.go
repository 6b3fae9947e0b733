package ast

// Visibility is the visibility modifier of a class member.
type Visibility int

const (
	VisibilityDefault Visibility = iota // not written; callers apply context-specific defaults
	VisibilityPublic
	VisibilityPrivate
	VisibilityProtected
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	case VisibilityProtected:
		return "protected"
	default:
		return ""
	}
}

// Modifiers captures the small set of flags that can prefix a class,
// property, method, or constant: at most one visibility, plus the
// independent static/abstract/final/readonly flags.
type Modifiers struct {
	Visibility Visibility
	Static     bool
	Abstract   bool
	Final      bool
	Readonly   bool
}

// NameKind distinguishes how a Name was written at the use site.
type NameKind int

const (
	NameUnqualified NameKind = iota // Foo
	NameQualified                   // Foo\Bar
	NameFullyQualified              // \Foo\Bar
	NameRelative                    // namespace\Foo\Bar
)

// UseKind distinguishes what a `use` import binds.
type UseKind int

const (
	UseNormal UseKind = iota
	UseFunction
	UseConst
)

// TraitAdaptationKind distinguishes `as` alias adaptations from
// `insteadof` precedence adaptations in a trait-use block.
type TraitAdaptationKind int

const (
	AdaptationAlias TraitAdaptationKind = iota
	AdaptationPrecedence
)

// CastKind is the target type of a `(type)` cast expression.
type CastKind int

const (
	CastInt CastKind = iota
	CastFloat
	CastString
	CastBool
	CastArray
	CastObject
	CastUnset
)

// IncludeKind distinguishes the four include/require forms.
type IncludeKind int

const (
	IncludeInclude IncludeKind = iota
	IncludeIncludeOnce
	IncludeRequire
	IncludeRequireOnce
)
