package parser

import (
	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/lexer"
)

// parseQualifiedName parses an identifier, optionally prefixed with a
// leading `\` (fully qualified) or `namespace\` (relative), and
// optionally followed by further `\`-separated segments.
func (p *Parser) parseQualifiedName() (*ast.Name, error) {
	start := p.buf.Peek().Span
	qualifier := ast.NameUnqualified

	if p.buf.Check(lexer.TBackslash) {
		p.buf.Advance()
		qualifier = ast.NameFullyQualified
	} else if p.buf.Check(lexer.TNamespace) {
		p.buf.Advance()
		if _, err := p.expect(lexer.TBackslash, "'\\'"); err != nil {
			return nil, err
		}
		qualifier = ast.NameRelative
	}

	first, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected name, found %s", lexer.TokenNames[p.buf.Peek().Kind])
	}
	parts := []string{first.Text}
	end := first.Span

	for p.buf.Check(lexer.TBackslash) {
		p.buf.Advance()
		part, ok := p.identifierText()
		if !ok {
			return nil, p.errorf(p.buf.Peek().Span, "expected name segment after '\\'")
		}
		parts = append(parts, part.Text)
		end = part.Span
	}

	if qualifier == ast.NameUnqualified && len(parts) > 1 {
		qualifier = ast.NameQualified
	}
	return ast.NewName(lexer.Merge(start, end), parts, qualifier), nil
}

// parseType parses a type annotation: an optional leading `?`
// (nullable), then a union (`|`) or intersection (`&`) of simple
// atoms, `array`, or `callable`.
func (p *Parser) parseType() (ast.TypeNode, error) {
	start := p.buf.Peek().Span
	if p.buf.Check(lexer.TQuestion) {
		p.buf.Advance()
		inner, err := p.parseTypeAtom()
		if err != nil {
			return nil, err
		}
		return ast.NewNullableType(lexer.Merge(start, inner.Span()), inner), nil
	}

	first, err := p.parseTypeAtom()
	if err != nil {
		return nil, err
	}

	if p.buf.Check(lexer.TPipe) {
		types := []ast.TypeNode{first}
		end := first.Span()
		for p.buf.Match(lexer.TPipe) {
			t, err := p.parseTypeAtom()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
			end = t.Span()
		}
		return ast.NewUnionType(lexer.Merge(start, end), types), nil
	}

	if p.buf.Check(lexer.TAmp) && p.buf.PeekN(1).Kind != lexer.TVariable && p.buf.PeekN(1).Kind != lexer.TEllipsis {
		types := []ast.TypeNode{first}
		end := first.Span()
		for p.buf.Check(lexer.TAmp) && p.buf.PeekN(1).Kind != lexer.TVariable && p.buf.PeekN(1).Kind != lexer.TEllipsis {
			p.buf.Advance()
			t, err := p.parseTypeAtom()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
			end = t.Span()
		}
		return ast.NewIntersectionType(lexer.Merge(start, end), types), nil
	}

	return first, nil
}

func (p *Parser) parseTypeAtom() (ast.TypeNode, error) {
	tok := p.buf.Peek()
	switch tok.Kind {
	case lexer.TArray:
		p.buf.Advance()
		return ast.NewArrayType(tok.Span), nil
	case lexer.TCallable:
		p.buf.Advance()
		return ast.NewCallableType(tok.Span), nil
	default:
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		return ast.NewSimpleType(name.Span(), nameString(name)), nil
	}
}
