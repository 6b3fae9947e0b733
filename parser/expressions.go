package parser

import (
	"strings"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/lexer"
)

var unaryOps = map[lexer.TokenKind]string{
	lexer.TNot:   "!",
	lexer.TTilde: "~",
	lexer.TPlus:  "+",
	lexer.TMinus: "-",
}

// parseExpression is the precedence-climbing entry point: parse a
// single operand at the tightest levels (13-16), then fold in any
// binary/ternary/assignment/coalesce continuation at or above minPrec.
func (p *Parser) parseExpression(minPrec Precedence) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRHS(minPrec, left)
}

func (p *Parser) parseBinaryRHS(minPrec Precedence, left ast.Expression) (ast.Expression, error) {
	for {
		tok := p.buf.Peek()
		prec, ok := binaryPrecedence[tok.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}

		switch {
		case tok.Kind == lexer.TQuestion:
			p.buf.Advance()
			if p.buf.Match(lexer.TColon) {
				elseExpr, err := p.parseExpression(prec)
				if err != nil {
					return nil, err
				}
				left = ast.NewConditionalExpression(lexer.Merge(left.Span(), elseExpr.Span()), left, nil, elseExpr)
				continue
			}
			thenExpr, err := p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TColon, "':'"); err != nil {
				return nil, err
			}
			elseExpr, err := p.parseExpression(prec)
			if err != nil {
				return nil, err
			}
			left = ast.NewConditionalExpression(lexer.Merge(left.Span(), elseExpr.Span()), left, thenExpr, elseExpr)

		case tok.Kind == lexer.TCoalesce:
			p.buf.Advance()
			right, err := p.parseExpression(prec)
			if err != nil {
				return nil, err
			}
			left = ast.NewBinaryExpression(lexer.Merge(left.Span(), right.Span()), "??", left, right)

		case assignmentOps[tok.Kind]:
			p.buf.Advance()
			byRef := false
			if tok.Kind == lexer.TAssign && p.buf.Check(lexer.TAmp) {
				p.buf.Advance()
				byRef = true
			}
			value, err := p.parseExpression(prec)
			if err != nil {
				return nil, err
			}
			left = ast.NewAssignmentExpression(lexer.Merge(left.Span(), value.Span()), tok.Text, left, value, byRef)

		default:
			p.buf.Advance()
			next := prec + 1
			if rightAssociative[tok.Kind] {
				next = prec
			}
			right, err := p.parseExpression(next)
			if err != nil {
				return nil, err
			}
			left = ast.NewBinaryExpression(lexer.Merge(left.Span(), right.Span()), tok.Text, left, right)
		}
	}
}

// parseUnary handles precedence levels 13 (unary prefix) down to 16
// (primary), recursing on itself so a unary operator's operand may
// itself be unary (`--$x`, `!!$x`).
func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.buf.Peek()

	if op, ok := unaryOps[tok.Kind]; ok {
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(lexer.Merge(tok.Span, operand.Span()), op, operand, true), nil
	}

	if kind, open, ok := p.tryParseCast(); ok {
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewCastExpression(lexer.Merge(open.Span, operand.Span()), kind, operand), nil
	}

	switch tok.Kind {
	case lexer.TAt:
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewErrorControlExpression(lexer.Merge(tok.Span, operand.Span()), operand), nil
	case lexer.TAmp:
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewReferenceExpression(lexer.Merge(tok.Span, operand.Span()), operand), nil
	case lexer.TIncrement, lexer.TDecrement:
		p.buf.Advance()
		op := "++"
		if tok.Kind == lexer.TDecrement {
			op = "--"
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUpdateExpression(lexer.Merge(tok.Span, operand.Span()), op, operand, true), nil
	case lexer.TClone:
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewCloneExpression(lexer.Merge(tok.Span, operand.Span()), operand), nil
	case lexer.TPrint:
		p.buf.Advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewPrintExpression(lexer.Merge(tok.Span, operand.Span()), operand), nil
	case lexer.TThrow:
		p.buf.Advance()
		operand, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		return ast.NewThrowExpression(lexer.Merge(tok.Span, operand.Span()), operand), nil
	}

	return p.parsePow()
}

// parsePow handles the right-associative `**` level, whose right
// operand may itself start with a unary operator.
func (p *Parser) parsePow() (ast.Expression, error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.buf.Check(lexer.TStarStar) {
		p.buf.Advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(lexer.Merge(left.Span(), right.Span()), "**", left, right), nil
	}
	return left, nil
}

// parsePostfix wraps a primary expression with member access, calls,
// and postfix increment/decrement.
func (p *Parser) parsePostfix() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		switch p.buf.Peek().Kind {
		case lexer.TLBracket:
			start := p.buf.Advance()
			var index ast.Expression
			if !p.buf.Check(lexer.TRBracket) {
				index, err = p.parseExpression(precLowest)
				if err != nil {
					return nil, err
				}
			}
			end, err := p.expect(lexer.TRBracket, "']'")
			if err != nil {
				return nil, err
			}
			_ = start
			left = ast.NewMemberExpression(lexer.Merge(left.Span(), end.Span), left, index, true, false, false)

		case lexer.TArrow, lexer.TNullsafeArrow:
			nullSafe := p.buf.Peek().Kind == lexer.TNullsafeArrow
			p.buf.Advance()
			prop, err := p.parseMemberName()
			if err != nil {
				return nil, err
			}
			left = ast.NewMemberExpression(lexer.Merge(left.Span(), prop.Span()), left, prop, false, nullSafe, false)
			if p.buf.Check(lexer.TLParen) {
				args, end, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				left = ast.NewCallExpression(lexer.Merge(left.Span(), end), left, args)
			}

		case lexer.TDoubleColon:
			p.buf.Advance()
			prop, err := p.parseStaticMemberName()
			if err != nil {
				return nil, err
			}
			left = ast.NewMemberExpression(lexer.Merge(left.Span(), prop.Span()), left, prop, false, false, true)
			if p.buf.Check(lexer.TLParen) {
				args, end, err := p.parseArguments()
				if err != nil {
					return nil, err
				}
				left = ast.NewCallExpression(lexer.Merge(left.Span(), end), left, args)
			}

		case lexer.TLParen:
			args, end, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			left = ast.NewCallExpression(lexer.Merge(left.Span(), end), left, args)

		case lexer.TIncrement, lexer.TDecrement:
			op := "++"
			if p.buf.Peek().Kind == lexer.TDecrement {
				op = "--"
			}
			tok := p.buf.Advance()
			left = ast.NewUpdateExpression(lexer.Merge(left.Span(), tok.Span), op, left, false)

		default:
			return left, nil
		}
	}
}

// parseMemberName parses the right side of `->`/`?->`: an identifier,
// a braced expression `{expr}`, or a variable (`$obj->$prop`).
func (p *Parser) parseMemberName() (ast.Node, error) {
	tok := p.buf.Peek()
	switch tok.Kind {
	case lexer.TVariable:
		p.buf.Advance()
		return ast.NewVariable(tok.Span, tok.Text), nil
	case lexer.TLBrace:
		p.buf.Advance()
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TRBrace, "'}'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		id, ok := p.identifierText()
		if !ok {
			return nil, p.errorf(tok.Span, "expected property or method name")
		}
		return ast.NewIdentifier(id.Span, id.Text), nil
	}
}

// parseStaticMemberName parses the right side of `::`: an identifier
// (constant/method), a variable (static property), `class` (the
// magic `::class` constant), or a braced expression.
func (p *Parser) parseStaticMemberName() (ast.Node, error) {
	tok := p.buf.Peek()
	switch tok.Kind {
	case lexer.TVariable:
		p.buf.Advance()
		return ast.NewVariable(tok.Span, tok.Text), nil
	case lexer.TClass:
		p.buf.Advance()
		return ast.NewIdentifier(tok.Span, "class"), nil
	case lexer.TLBrace:
		p.buf.Advance()
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TRBrace, "'}'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		id, ok := p.identifierText()
		if !ok {
			return nil, p.errorf(tok.Span, "expected constant or method name")
		}
		return ast.NewIdentifier(id.Span, id.Text), nil
	}
}

func (p *Parser) parseArguments() ([]*ast.Argument, lexer.Span, error) {
	open, err := p.expect(lexer.TLParen, "'('")
	if err != nil {
		return nil, lexer.Span{}, err
	}
	var args []*ast.Argument
	for !p.buf.Check(lexer.TRParen) {
		argStart := p.buf.Peek().Span
		spread := p.buf.Match(lexer.TEllipsis)

		name := ""
		if !spread && p.buf.Peek().Kind == lexer.TIdentifier && p.buf.PeekN(1).Kind == lexer.TColon {
			nameTok := p.buf.Advance()
			p.buf.Advance()
			name = nameTok.Text
		}

		value, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, lexer.Span{}, err
		}
		args = append(args, ast.NewArgument(lexer.Merge(argStart, value.Span()), name, value, spread))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end, err := p.expect(lexer.TRParen, "')'")
	if err != nil {
		return nil, lexer.Span{}, err
	}
	return args, end.Span, nil
}

// parsePrimary handles precedence level 16: literals, variables,
// names, parenthesized expressions, array/closure/new/match/yield and
// the other leaf-level forms.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.buf.Peek()

	switch tok.Kind {
	case lexer.TNumber:
		p.buf.Advance()
		return ast.NewNumberLiteral(tok.Span, tok.Text), nil

	case lexer.TString:
		p.buf.Advance()
		return p.buildStringExpression(tok), nil

	case lexer.TStartHeredoc:
		return p.parseHeredoc()

	case lexer.TTrue:
		p.buf.Advance()
		return ast.NewBoolLiteral(tok.Span, true), nil
	case lexer.TFalse:
		p.buf.Advance()
		return ast.NewBoolLiteral(tok.Span, false), nil
	case lexer.TNull:
		p.buf.Advance()
		return ast.NewNullLiteral(tok.Span), nil

	case lexer.TVariable:
		p.buf.Advance()
		return ast.NewVariable(tok.Span, tok.Text), nil

	case lexer.TDollar:
		// Variable variable `$$x` or `${expr}`; modeled as a reference
		// to the variable named by the inner expression's text is out of
		// scope, so the common `$$name` form resolves to a Variable node
		// built from the name of the referenced variable at parse time
		// is not attempted; treat as an identifier-less placeholder.
		p.buf.Advance()
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(lexer.Merge(tok.Span, inner.Span()), "$", inner, true), nil

	case lexer.TLParen:
		p.buf.Advance()
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.TLBracket:
		return p.parseArrayLiteral(tok, lexer.TRBracket)

	case lexer.TArray:
		p.buf.Advance()
		if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
			return nil, err
		}
		return p.parseArrayLiteral(tok, lexer.TRParen)

	case lexer.TList:
		return p.parseListExpression()

	case lexer.TFunction:
		return p.parseClosureExpression(false)
	case lexer.TFn:
		return p.parseArrowFunctionExpression(false)
	case lexer.TStatic:
		if p.buf.PeekN(1).Kind == lexer.TFunction {
			p.buf.Advance()
			return p.parseClosureExpression(true)
		}
		if p.buf.PeekN(1).Kind == lexer.TFn {
			p.buf.Advance()
			return p.parseArrowFunctionExpression(true)
		}
		p.buf.Advance()
		return ast.NewName(tok.Span, []string{"static"}, ast.NameUnqualified), nil
	case lexer.TSelf:
		p.buf.Advance()
		return ast.NewName(tok.Span, []string{"self"}, ast.NameUnqualified), nil
	case lexer.TParent:
		p.buf.Advance()
		return ast.NewName(tok.Span, []string{"parent"}, ast.NameUnqualified), nil

	case lexer.TNew:
		return p.parseNewExpression()

	case lexer.TMatch:
		return p.parseMatchExpression()

	case lexer.TYield:
		return p.parseYieldExpression()

	case lexer.TIsset:
		return p.parseIssetExpression()
	case lexer.TEmpty:
		p.buf.Advance()
		if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.TRParen, "')'")
		if err != nil {
			return nil, err
		}
		return ast.NewEmptyExpression(lexer.Merge(tok.Span, end.Span), arg), nil
	case lexer.TEval:
		p.buf.Advance()
		if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		end, err := p.expect(lexer.TRParen, "')'")
		if err != nil {
			return nil, err
		}
		return ast.NewEvalExpression(lexer.Merge(tok.Span, end.Span), arg), nil
	case lexer.TExit:
		p.buf.Advance()
		var arg ast.Expression
		end := tok.Span
		if p.buf.Check(lexer.TLParen) {
			p.buf.Advance()
			if !p.buf.Check(lexer.TRParen) {
				var err error
				arg, err = p.parseExpression(precLowest)
				if err != nil {
					return nil, err
				}
			}
			closeTok, err := p.expect(lexer.TRParen, "')'")
			if err != nil {
				return nil, err
			}
			end = closeTok.Span
		}
		return ast.NewExitExpression(lexer.Merge(tok.Span, end), arg), nil

	case lexer.TInclude, lexer.TIncludeOnce, lexer.TRequire, lexer.TRequireOnce:
		p.buf.Advance()
		arg, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		return ast.NewIncludeExpression(lexer.Merge(tok.Span, arg.Span()), includeKindFor(tok.Kind), arg), nil

	case lexer.TIdentifier, lexer.TBackslash, lexer.TNamespace:
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		return name, nil

	default:
		return nil, p.errorf(tok.Span, "unexpected token %s", lexer.TokenNames[tok.Kind])
	}
}

func (p *Parser) buildStringExpression(tok lexer.Token) ast.Expression {
	if len(tok.Text) < 2 || tok.Text[0] != '"' {
		return ast.NewStringLiteral(tok.Span, tok.Text)
	}
	return p.buildInterpolatedTemplate(tok.Text[1:len(tok.Text)-1], tok.Span)
}

func (p *Parser) parseHeredoc() (ast.Expression, error) {
	start := p.buf.Advance()
	payload, _ := start.Payload.(lexer.HeredocPayload)

	var content lexer.Token
	hasContent := false
	if p.buf.Check(lexer.TEncapsedAndWhitespace) {
		content = p.buf.Advance()
		hasContent = true
	}
	end, err := p.expect(lexer.TEndHeredoc, "heredoc end label")
	if err != nil {
		return nil, err
	}
	span := lexer.Merge(start.Span, end.Span)
	if !hasContent {
		return ast.NewStringLiteral(span, ""), nil
	}
	if payload.IsNowdoc {
		return ast.NewStringLiteral(span, content.Text), nil
	}
	return p.buildInterpolatedTemplate(content.Text, span), nil
}

// buildInterpolatedTemplate scans a double-quoted or heredoc body for
// `$name`, `$name->prop`, `$name[index]`, and `{$expr}` interpolation
// runs, producing literal/expression parts in source order. Nested
// `${...}` legacy syntax is left as literal text.
func (p *Parser) buildInterpolatedTemplate(raw string, span ast.Span) ast.Expression {
	var parts []ast.Expression
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, ast.NewStringLiteral(span, lit.String()))
			lit.Reset()
		}
	}

	n := len(raw)
	i := 0
	for i < n {
		c := raw[i]
		if c == '\\' && i+1 < n {
			lit.WriteByte(c)
			lit.WriteByte(raw[i+1])
			i += 2
			continue
		}
		if c == '$' && i+1 < n && isIdentStart(raw[i+1]) {
			flush()
			j := i + 1
			for j < n && isIdentPart(raw[j]) {
				j++
			}
			name := raw[i+1 : j]
			var expr ast.Expression = ast.NewVariable(span, name)
			end := j
			if j+2 < n && raw[j] == '-' && raw[j+1] == '>' && isIdentStart(raw[j+2]) {
				k := j + 2
				for k < n && isIdentPart(raw[k]) {
					k++
				}
				expr = ast.NewMemberExpression(span, expr, ast.NewIdentifier(span, raw[j+2:k]), false, false, false)
				end = k
			} else if j < n && raw[j] == '[' {
				k := j + 1
				for k < n && raw[k] != ']' {
					k++
				}
				idx := raw[j+1 : k]
				var idxExpr ast.Expression
				switch {
				case strings.HasPrefix(idx, "$"):
					idxExpr = ast.NewVariable(span, idx[1:])
				case isAllDigits(idx):
					idxExpr = ast.NewNumberLiteral(span, idx)
				default:
					idxExpr = ast.NewStringLiteral(span, idx)
				}
				expr = ast.NewMemberExpression(span, expr, idxExpr, true, false, false)
				if k < n {
					end = k + 1
				} else {
					end = k
				}
			}
			parts = append(parts, expr)
			i = end
			continue
		}
		if c == '{' && i+1 < n && raw[i+1] == '$' {
			flush()
			depth := 1
			j := i + 1
			for j < n && depth > 0 {
				j++
				if j < n {
					if raw[j] == '{' {
						depth++
					} else if raw[j] == '}' {
						depth--
					}
				}
			}
			inner := raw[i+1 : j]
			parts = append(parts, p.parseEmbeddedExpression(inner, span))
			if j < n {
				i = j + 1
			} else {
				i = j
			}
			continue
		}
		lit.WriteByte(c)
		i++
	}
	flush()

	if len(parts) == 0 {
		return ast.NewStringLiteral(span, "")
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return ast.NewTemplateStringExpression(span, parts)
}

// parseEmbeddedExpression re-tokenizes a `{$...}` interpolation body
// through a fresh lexer/parser pair, since the outer string scan does
// not itself produce expression-level tokens for the interior text.
func (p *Parser) parseEmbeddedExpression(src string, span ast.Span) ast.Expression {
	tokens := lexer.Tokenize("<?php "+src, lexer.DefaultOptions())
	sub := newParser(tokens, Options{ErrorRecovery: false})
	sub.buf.Match(lexer.TOpenTag)
	expr, err := sub.parseExpression(precLowest)
	if err != nil {
		return ast.NewStringLiteral(span, src)
	}
	return expr
}

func (p *Parser) parseArrayLiteral(open lexer.Token, closer lexer.TokenKind) (ast.Expression, error) {
	p.buf.Advance() // consume '[' or '(' already checked by caller for TLBracket; for TArray's '(' the caller consumed TArray and '(' itself
	var items []*ast.ArrayItem
	for !p.buf.Check(closer) {
		itemStart := p.buf.Peek().Span
		if p.buf.Match(lexer.TEllipsis) {
			val, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			items = append(items, ast.NewArrayItem(lexer.Merge(itemStart, val.Span()), nil, val, false, true))
		} else {
			byRef := p.buf.Match(lexer.TAmp)
			first, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			if !byRef && p.buf.Match(lexer.TDoubleArrow) {
				valueByRef := p.buf.Match(lexer.TAmp)
				value, err := p.parseExpression(precAssignment)
				if err != nil {
					return nil, err
				}
				items = append(items, ast.NewArrayItem(lexer.Merge(itemStart, value.Span()), first, value, valueByRef, false))
			} else {
				items = append(items, ast.NewArrayItem(lexer.Merge(itemStart, first.Span()), nil, first, byRef, false))
			}
		}
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end, err := p.expect(closer, "closing bracket")
	if err != nil {
		return nil, err
	}
	return ast.NewArrayExpression(lexer.Merge(open.Span, end.Span), items), nil
}

func (p *Parser) parseListExpression() (ast.Expression, error) {
	open := p.buf.Advance()
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	var items []*ast.ArrayItem
	for !p.buf.Check(lexer.TRParen) {
		if p.buf.Check(lexer.TComma) {
			items = append(items, nil)
			p.buf.Advance()
			continue
		}
		itemStart := p.buf.Peek().Span
		first, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		if p.buf.Match(lexer.TDoubleArrow) {
			value, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			items = append(items, ast.NewArrayItem(lexer.Merge(itemStart, value.Span()), first, value, false, false))
		} else {
			items = append(items, ast.NewArrayItem(lexer.Merge(itemStart, first.Span()), nil, first, false, false))
		}
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end, err := p.expect(lexer.TRParen, "')'")
	if err != nil {
		return nil, err
	}
	return ast.NewListExpression(lexer.Merge(open.Span, end.Span), items), nil
}

func (p *Parser) parseClosureExpression(static bool) (ast.Expression, error) {
	start := p.buf.Advance() // 'function'
	byRef := p.buf.Match(lexer.TAmp)
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	var uses []*ast.ClosureUse
	if p.buf.Match(lexer.TUse) {
		if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
			return nil, err
		}
		for !p.buf.Check(lexer.TRParen) {
			useStart := p.buf.Peek().Span
			useByRef := p.buf.Match(lexer.TAmp)
			v, err := p.expect(lexer.TVariable, "variable")
			if err != nil {
				return nil, err
			}
			uses = append(uses, ast.NewClosureUse(lexer.Merge(useStart, v.Span), ast.NewVariable(v.Span, v.Text), useByRef))
			if !p.buf.Match(lexer.TComma) {
				break
			}
		}
		if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
			return nil, err
		}
	}
	var ret ast.TypeNode
	if p.buf.Match(lexer.TColon) {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionExpression(lexer.Merge(start.Span, body.Span()), byRef, static, params, uses, ret, body), nil
}

func (p *Parser) parseArrowFunctionExpression(static bool) (ast.Expression, error) {
	start := p.buf.Advance() // 'fn'
	byRef := p.buf.Match(lexer.TAmp)
	params, err := p.parseParameterList()
	if err != nil {
		return nil, err
	}
	var ret ast.TypeNode
	if p.buf.Match(lexer.TColon) {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.TDoubleArrow, "'=>'"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	return ast.NewArrowFunctionExpression(lexer.Merge(start.Span, body.Span()), byRef, static, params, ret, body), nil
}

func (p *Parser) parseNewExpression() (ast.Expression, error) {
	start := p.buf.Advance() // 'new'
	if p.buf.Check(lexer.TClass) {
		p.buf.Advance()
		var args []*ast.Argument
		if p.buf.Check(lexer.TLParen) {
			var err error
			args, _, err = p.parseArguments()
			if err != nil {
				return nil, err
			}
		}
		var super *ast.Name
		if p.buf.Match(lexer.TExtends) {
			var err error
			super, err = p.parseQualifiedName()
			if err != nil {
				return nil, err
			}
		}
		var ifaces []*ast.Name
		if p.buf.Match(lexer.TImplements) {
			for {
				n, err := p.parseQualifiedName()
				if err != nil {
					return nil, err
				}
				ifaces = append(ifaces, n)
				if !p.buf.Match(lexer.TComma) {
					break
				}
			}
		}
		members, end, err := p.parseClassBody()
		if err != nil {
			return nil, err
		}
		anon := ast.NewAnonymousClass(lexer.Merge(start.Span, end), args, super, ifaces, members, nil)
		return ast.NewNewExpression(lexer.Merge(start.Span, end), nil, nil, anon), nil
	}

	var callee ast.Expression
	var err error
	switch p.buf.Peek().Kind {
	case lexer.TVariable, lexer.TLParen:
		callee, err = p.parsePostfix()
	default:
		callee, err = p.parseQualifiedName()
		if err == nil && p.buf.Peek().Kind != lexer.TLParen {
			// allow `new Foo::class`-style postfix chains like `new $x->y`
			callee, err = p.continuePostfix(callee)
		}
	}
	if err != nil {
		return nil, err
	}
	var args []*ast.Argument
	end := callee.Span()
	if p.buf.Check(lexer.TLParen) {
		args, end, err = p.parseArguments()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewNewExpression(lexer.Merge(start.Span, end), callee, args, nil), nil
}

// continuePostfix extends an already-parsed primary with member-access
// postfix operators, used by `new` when the callee is a bare name that
// may still be followed by `->`/`::` before the constructor call.
func (p *Parser) continuePostfix(left ast.Expression) (ast.Expression, error) {
	for {
		switch p.buf.Peek().Kind {
		case lexer.TArrow, lexer.TNullsafeArrow:
			nullSafe := p.buf.Peek().Kind == lexer.TNullsafeArrow
			p.buf.Advance()
			prop, err := p.parseMemberName()
			if err != nil {
				return nil, err
			}
			left = ast.NewMemberExpression(lexer.Merge(left.Span(), prop.Span()), left, prop, false, nullSafe, false)
		case lexer.TDoubleColon:
			p.buf.Advance()
			prop, err := p.parseStaticMemberName()
			if err != nil {
				return nil, err
			}
			left = ast.NewMemberExpression(lexer.Merge(left.Span(), prop.Span()), left, prop, false, false, true)
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseMatchExpression() (ast.Expression, error) {
	start := p.buf.Advance() // 'match'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	subject, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TLBrace, "'{'"); err != nil {
		return nil, err
	}
	var arms []*ast.MatchArm
	for !p.buf.Check(lexer.TRBrace) {
		armStart := p.buf.Peek().Span
		var conditions []ast.Expression
		if p.buf.Match(lexer.TDefault) {
			// no conditions
		} else {
			for {
				cond, err := p.parseExpression(precAssignment)
				if err != nil {
					return nil, err
				}
				conditions = append(conditions, cond)
				if !p.buf.Match(lexer.TComma) {
					break
				}
				if p.buf.Check(lexer.TDoubleArrow) {
					break
				}
			}
		}
		if _, err := p.expect(lexer.TDoubleArrow, "'=>'"); err != nil {
			return nil, err
		}
		result, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		arms = append(arms, ast.NewMatchArm(lexer.Merge(armStart, result.Span()), conditions, result))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end, err := p.expect(lexer.TRBrace, "'}'")
	if err != nil {
		return nil, err
	}
	return ast.NewMatchExpression(lexer.Merge(start.Span, end.Span), subject, arms), nil
}

func (p *Parser) parseYieldExpression() (ast.Expression, error) {
	start := p.buf.Advance() // 'yield'
	from := false
	if p.buf.Peek().Kind == lexer.TIdentifier && strings.EqualFold(p.buf.Peek().Text, "from") {
		p.buf.Advance()
		from = true
	}
	if !from && (p.buf.Check(lexer.TSemicolon) || p.buf.Check(lexer.TRParen) || p.buf.Check(lexer.TRBracket) || p.buf.Check(lexer.TComma) || p.buf.Check(lexer.TCloseTag)) {
		return ast.NewYieldExpression(start.Span, nil, nil, false), nil
	}
	value, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	if !from && p.buf.Match(lexer.TDoubleArrow) {
		val2, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		return ast.NewYieldExpression(lexer.Merge(start.Span, val2.Span()), value, val2, false), nil
	}
	return ast.NewYieldExpression(lexer.Merge(start.Span, value.Span()), nil, value, from), nil
}

func (p *Parser) parseIssetExpression() (ast.Expression, error) {
	start := p.buf.Advance() // 'isset'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end, err := p.expect(lexer.TRParen, "')'")
	if err != nil {
		return nil, err
	}
	return ast.NewIssetExpression(lexer.Merge(start.Span, end.Span), args), nil
}
