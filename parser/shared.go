package parser

import (
	"strings"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/internal/cursor"
	"github.com/phpscout/phpast/lexer"
)

var castWords = map[string]ast.CastKind{
	"int":     ast.CastInt,
	"integer": ast.CastInt,
	"float":   ast.CastFloat,
	"double":  ast.CastFloat,
	"real":    ast.CastFloat,
	"string":  ast.CastString,
	"bool":    ast.CastBool,
	"boolean": ast.CastBool,
	"array":   ast.CastArray,
	"object":  ast.CastObject,
	"unset":   ast.CastUnset,
}

// castWordAt reports whether the token at logical offset k (relative to
// the cursor) is a word usable inside a `(word)` cast, matching either
// a plain identifier or one of the two cast words that are also
// reserved keywords (array, unset).
func (p *Parser) castWordAt(k int) (string, bool) {
	tok := p.buf.PeekN(k)
	switch tok.Kind {
	case lexer.TIdentifier, lexer.TArray, lexer.TUnset:
		word := strings.ToLower(tok.Text)
		if _, ok := castWords[word]; ok {
			return word, true
		}
	}
	return "", false
}

// tryParseCast detects the 3-token `(word)` cast prefix and, on match,
// consumes it and returns the resulting CastKind.
func (p *Parser) tryParseCast() (ast.CastKind, lexer.Token, bool) {
	if !p.buf.Check(lexer.TLParen) {
		return 0, lexer.Token{}, false
	}
	word, ok := p.castWordAt(1)
	if !ok || p.buf.PeekN(2).Kind != lexer.TRParen {
		return 0, lexer.Token{}, false
	}
	open := p.buf.Advance()
	p.buf.Advance()
	p.buf.Advance()
	return castWords[word], open, true
}

func includeKindFor(kind lexer.TokenKind) ast.IncludeKind {
	switch kind {
	case lexer.TInclude:
		return ast.IncludeInclude
	case lexer.TIncludeOnce:
		return ast.IncludeIncludeOnce
	case lexer.TRequire:
		return ast.IncludeRequire
	default:
		return ast.IncludeRequireOnce
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIdentStart(b byte) bool { return cursor.IsIdentifierStart(b) }
func isIdentPart(b byte) bool  { return cursor.IsIdentifierPart(b) }

// nameString renders a parsed Name back to its surface text, used when
// a type annotation borrows the same qualified-name grammar as a
// class-reference expression.
func nameString(n *ast.Name) string {
	prefix := ""
	switch n.Qualifier {
	case ast.NameFullyQualified:
		prefix = "\\"
	case ast.NameRelative:
		prefix = "namespace\\"
	}
	return prefix + strings.Join(n.Parts, "\\")
}
