package parser

import (
	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/lexer"
)

// parseStatement dispatches on the current token to the statement or
// declaration production it begins, falling back to an expression
// statement when nothing more specific matches.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.buf.Peek()

	if tok.Kind == lexer.TAttribute {
		return p.parseAttributedDeclaration()
	}

	switch tok.Kind {
	case lexer.TSemicolon:
		p.buf.Advance()
		return nil, nil

	case lexer.TLBrace:
		return p.parseBlock()

	case lexer.TIf:
		return p.parseIfStatement()
	case lexer.TWhile:
		return p.parseWhileStatement()
	case lexer.TDo:
		return p.parseDoWhileStatement()
	case lexer.TFor:
		return p.parseForStatement()
	case lexer.TForeach:
		return p.parseForeachStatement()
	case lexer.TSwitch:
		return p.parseSwitchStatement()
	case lexer.TBreak:
		return p.parseBreakStatement()
	case lexer.TContinue:
		return p.parseContinueStatement()
	case lexer.TReturn:
		return p.parseReturnStatement()
	case lexer.TThrow:
		return p.parseThrowStatement()
	case lexer.TTry:
		return p.parseTryStatement()
	case lexer.TEcho:
		return p.parseEchoStatement()
	case lexer.TGlobal:
		return p.parseGlobalStatement()
	case lexer.TUnset:
		return p.parseUnsetStatement()
	case lexer.TGoto:
		return p.parseGotoStatement()
	case lexer.TConst:
		return p.parseConstStatement()
	case lexer.TDeclare:
		return p.parseDeclareStatement()
	case lexer.TInterface:
		return p.parseInterfaceDeclaration()
	case lexer.TTrait:
		return p.parseTraitDeclaration()
	case lexer.TEnum:
		return p.parseEnumDeclaration()
	case lexer.TNamespace:
		return p.parseNamespaceDeclaration()
	case lexer.TUse:
		return p.parseUseStatement()

	case lexer.TStatic:
		if p.buf.PeekN(1).Kind == lexer.TVariable {
			return p.parseStaticStatement()
		}
		return p.parseExpressionStatement()

	case lexer.TFunction:
		if p.nextBeginsFunctionDeclaration() {
			return p.parseFunctionDeclaration()
		}
		return p.parseExpressionStatement()

	case lexer.TAbstract, lexer.TFinal, lexer.TReadonly:
		if p.classModifiersAhead() {
			return p.parseClassDeclaration()
		}
		return p.parseExpressionStatement()

	case lexer.TClass:
		return p.parseClassDeclaration()

	case lexer.TIdentifier:
		if p.buf.PeekN(1).Kind == lexer.TColon {
			label := p.buf.Advance()
			p.buf.Advance()
			body, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			var bodySpan lexer.Span = label.Span
			if body != nil {
				bodySpan = body.Span()
			}
			return ast.NewLabeledStatement(lexer.Merge(label.Span, bodySpan), label.Text, body), nil
		}
		return p.parseExpressionStatement()

	default:
		return p.parseExpressionStatement()
	}
}

// parseAttributedDeclaration consumes a leading `#[...]` attribute run
// and dispatches to whichever declaration it decorates.
func (p *Parser) parseAttributedDeclaration() (ast.Statement, error) {
	start := p.buf.Peek().Span
	attrs := p.parseAttributeGroups()
	switch p.buf.Peek().Kind {
	case lexer.TFunction:
		return p.parseFunctionDeclarationWithAttrs(attrs, start)
	case lexer.TClass, lexer.TAbstract, lexer.TFinal, lexer.TReadonly:
		return p.parseClassDeclarationWithAttrs(attrs, start)
	default:
		return p.parseStatement()
	}
}

// nextBeginsFunctionDeclaration distinguishes `function name(...)` (a
// declaration) from the bare `function(...)`/`function &(...)` closure
// expression form.
func (p *Parser) nextBeginsFunctionDeclaration() bool {
	k := 1
	if p.buf.PeekN(k).Kind == lexer.TAmp {
		k++
	}
	return p.buf.PeekN(k).Kind == lexer.TIdentifier
}

// classModifiersAhead reports whether a run of class modifiers
// (abstract/final/readonly) is followed by `class`, as opposed to one
// of those words being used as a bare identifier elsewhere (not
// possible in statement-leading position for these particular
// keywords, but checked for symmetry with other ambiguous dispatches).
func (p *Parser) classModifiersAhead() bool {
	k := 0
	for {
		switch p.buf.PeekN(k).Kind {
		case lexer.TAbstract, lexer.TFinal, lexer.TReadonly:
			k++
			continue
		}
		break
	}
	return p.buf.PeekN(k).Kind == lexer.TClass
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	start := p.buf.Peek().Span
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	end := expr.Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	} else if p.buf.Check(lexer.TCloseTag) {
		// the close tag itself terminates the statement; parseTopLevel
		// consumes it on the next iteration.
	}
	return ast.NewExpressionStatement(lexer.Merge(start, end), expr), nil
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	open, err := p.expect(lexer.TLBrace, "'{'")
	if err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for !p.buf.Check(lexer.TRBrace) && !p.buf.IsAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			if !p.handleError(err) {
				return nil, p.aborted
			}
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	close, err := p.expect(lexer.TRBrace, "'}'")
	if err != nil {
		return nil, err
	}
	return ast.NewBlock(lexer.Merge(open.Span, close.Span), stmts), nil
}

// parseStatementOrBlockBody parses a single statement used as a
// control-structure body (the braced-block form is the only one
// supported; the colon/endif alternate syntax is out of scope).
func (p *Parser) parseStatementOrBlockBody() (ast.Statement, error) {
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if stmt == nil {
		return ast.NewBlock(p.buf.Previous().Span, nil), nil
	}
	return stmt, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'if'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseStatementOrBlockBody()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Statement
	end := then.Span()
	if p.buf.Match(lexer.TElseif) {
		elseStmt, err = p.parseElseifChain()
		if err != nil {
			return nil, err
		}
		end = elseStmt.Span()
	} else if p.buf.Match(lexer.TElse) {
		elseStmt, err = p.parseStatementOrBlockBody()
		if err != nil {
			return nil, err
		}
		end = elseStmt.Span()
	}
	return ast.NewIfStatement(lexer.Merge(start.Span, end), test, then, elseStmt), nil
}

// parseElseifChain parses `elseif (...) stmt [elseif ...] [else ...]`
// after the leading `elseif` has already been consumed, folding the
// chain into nested *IfStatement nodes.
func (p *Parser) parseElseifChain() (ast.Statement, error) {
	start := p.buf.Previous().Span
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	then, err := p.parseStatementOrBlockBody()
	if err != nil {
		return nil, err
	}
	var elseStmt ast.Statement
	end := then.Span()
	if p.buf.Match(lexer.TElseif) {
		elseStmt, err = p.parseElseifChain()
		if err != nil {
			return nil, err
		}
		end = elseStmt.Span()
	} else if p.buf.Match(lexer.TElse) {
		elseStmt, err = p.parseStatementOrBlockBody()
		if err != nil {
			return nil, err
		}
		end = elseStmt.Span()
	}
	return ast.NewIfStatement(lexer.Merge(start, end), test, then, elseStmt), nil
}

func (p *Parser) parseWhileStatement() (ast.Statement, error) {
	start := p.buf.Advance()
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementOrBlockBody()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(lexer.Merge(start.Span, body.Span()), test, body), nil
}

func (p *Parser) parseDoWhileStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'do'
	body, err := p.parseStatementOrBlockBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TWhile, "'while'"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	end := p.buf.Peek().Span
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewDoWhileStatement(lexer.Merge(start.Span, end), body, test), nil
}

func (p *Parser) parseExpressionListUntil(stop lexer.TokenKind) ([]ast.Expression, error) {
	var exprs []ast.Expression
	if p.buf.Check(stop) {
		return exprs, nil
	}
	for {
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	return exprs, nil
}

func (p *Parser) parseForStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'for'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	init, err := p.parseExpressionListUntil(lexer.TSemicolon)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TSemicolon, "';'"); err != nil {
		return nil, err
	}
	test, err := p.parseExpressionListUntil(lexer.TSemicolon)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TSemicolon, "';'"); err != nil {
		return nil, err
	}
	update, err := p.parseExpressionListUntil(lexer.TRParen)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementOrBlockBody()
	if err != nil {
		return nil, err
	}
	return ast.NewForStatement(lexer.Merge(start.Span, body.Span()), init, test, update, body), nil
}

func (p *Parser) parseForeachStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'foreach'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	subject, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TAs, "'as'"); err != nil {
		return nil, err
	}
	byRef := p.buf.Match(lexer.TAmp)
	first, err := p.parseExpression(precAssignment)
	if err != nil {
		return nil, err
	}
	var key, value ast.Expression
	if p.buf.Match(lexer.TDoubleArrow) {
		key = first
		byRef = p.buf.Match(lexer.TAmp)
		value, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
	} else {
		value = first
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseStatementOrBlockBody()
	if err != nil {
		return nil, err
	}
	return ast.NewForeachStatement(lexer.Merge(start.Span, body.Span()), subject, key, value, byRef, body), nil
}

func (p *Parser) parseSwitchStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'switch'
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
	var cases []*ast.SwitchCase
	for !p.buf.Check(lexer.TRBrace) && !p.buf.IsAtEnd() {
		caseStart := p.buf.Peek().Span
		var test ast.Expression
		if p.buf.Match(lexer.TCase) {
			test, err = p.parseExpression(precLowest)
			if err != nil {
				return nil, err
			}
		} else if _, err := p.expect(lexer.TDefault, "'case' or 'default'"); err != nil {
			return nil, err
		}
		if !p.buf.Match(lexer.TColon) {
			if _, err := p.expect(lexer.TSemicolon, "':'"); err != nil {
				return nil, err
			}
		}
		var stmts []ast.Statement
		for !p.buf.Check(lexer.TCase) && !p.buf.Check(lexer.TDefault) && !p.buf.Check(lexer.TRBrace) && !p.buf.IsAtEnd() {
			stmt, err := p.parseStatement()
			if err != nil {
				if !p.handleError(err) {
					return nil, p.aborted
				}
				continue
			}
			if stmt != nil {
				stmts = append(stmts, stmt)
			}
		}
		end := caseStart
		if len(stmts) > 0 {
			end = stmts[len(stmts)-1].Span()
		}
		cases = append(cases, ast.NewSwitchCase(lexer.Merge(caseStart, end), test, stmts))
	}
	close, err := p.expect(lexer.TRBrace, "'}'")
	if err != nil {
		return nil, err
	}
	return ast.NewSwitchStatement(lexer.Merge(start.Span, close.Span), subject, cases), nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	start := p.buf.Advance()
	var label ast.Expression
	end := start.Span
	if !p.buf.Check(lexer.TSemicolon) && !p.buf.Check(lexer.TCloseTag) {
		var err error
		label, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		end = label.Span()
	}
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewBreakStatement(lexer.Merge(start.Span, end), label), nil
}

func (p *Parser) parseContinueStatement() (ast.Statement, error) {
	start := p.buf.Advance()
	var label ast.Expression
	end := start.Span
	if !p.buf.Check(lexer.TSemicolon) && !p.buf.Check(lexer.TCloseTag) {
		var err error
		label, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		end = label.Span()
	}
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewContinueStatement(lexer.Merge(start.Span, end), label), nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	start := p.buf.Advance()
	var arg ast.Expression
	end := start.Span
	if !p.buf.Check(lexer.TSemicolon) && !p.buf.Check(lexer.TCloseTag) {
		var err error
		arg, err = p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		end = arg.Span()
	}
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewReturnStatement(lexer.Merge(start.Span, end), arg), nil
}

func (p *Parser) parseThrowStatement() (ast.Statement, error) {
	start := p.buf.Advance()
	arg, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	end := arg.Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewThrowStatement(lexer.Merge(start.Span, end), arg), nil
}

func (p *Parser) parseTryStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'try'
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var catches []*ast.CatchClause
	for p.buf.Check(lexer.TCatch) {
		catchStart := p.buf.Advance()
		if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
			return nil, err
		}
		types := []ast.TypeNode{}
		t, err := p.parseTypeAtom()
		if err != nil {
			return nil, err
		}
		types = append(types, t)
		for p.buf.Match(lexer.TPipe) {
			t, err := p.parseTypeAtom()
			if err != nil {
				return nil, err
			}
			types = append(types, t)
		}
		var v *ast.Variable
		if p.buf.Check(lexer.TVariable) {
			tok := p.buf.Advance()
			v = ast.NewVariable(tok.Span, tok.Text)
		}
		if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
			return nil, err
		}
		catchBody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		catches = append(catches, ast.NewCatchClause(lexer.Merge(catchStart.Span, catchBody.Span()), types, v, catchBody))
	}
	var finally *ast.Block
	end := body.Span()
	if len(catches) > 0 {
		end = catches[len(catches)-1].Span()
	}
	if p.buf.Match(lexer.TFinally) {
		finally, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		end = finally.Span()
	}
	return ast.NewTryStatement(lexer.Merge(start.Span, end), body, catches, finally), nil
}

func (p *Parser) parseEchoStatement() (ast.Statement, error) {
	start := p.buf.Advance()
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
	end := args[len(args)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewEchoStatement(lexer.Merge(start.Span, end), args), nil
}

func (p *Parser) parseGlobalStatement() (ast.Statement, error) {
	start := p.buf.Advance()
	var vars []*ast.Variable
	for {
		tok, err := p.expect(lexer.TVariable, "variable")
		if err != nil {
			return nil, err
		}
		vars = append(vars, ast.NewVariable(tok.Span, tok.Text))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end := vars[len(vars)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewGlobalStatement(lexer.Merge(start.Span, end), vars), nil
}

func (p *Parser) parseStaticStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'static'
	var decls []*ast.StaticVarDecl
	for {
		tok, err := p.expect(lexer.TVariable, "variable")
		if err != nil {
			return nil, err
		}
		v := ast.NewVariable(tok.Span, tok.Text)
		var init ast.Expression
		declEnd := tok.Span
		if p.buf.Match(lexer.TAssign) {
			init, err = p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			declEnd = init.Span()
		}
		decls = append(decls, ast.NewStaticVarDecl(lexer.Merge(tok.Span, declEnd), v, init))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end := decls[len(decls)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewStaticStatement(lexer.Merge(start.Span, end), decls), nil
}

func (p *Parser) parseConstStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'const'
	var names []*ast.Identifier
	var values []ast.Expression
	for {
		nameTok, ok := p.identifierText()
		if !ok {
			return nil, p.errorf(p.buf.Peek().Span, "expected constant name")
		}
		names = append(names, ast.NewIdentifier(nameTok.Span, nameTok.Text))
		if _, err := p.expect(lexer.TAssign, "'='"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end := values[len(values)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewConstStatement(lexer.Merge(start.Span, end), names, values), nil
}

func (p *Parser) parseUnsetStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'unset'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.buf.Check(lexer.TRParen) {
		arg, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	end := p.buf.Peek().Span
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewUnsetStatement(lexer.Merge(start.Span, end), args), nil
}

func (p *Parser) parseGotoStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'goto'
	label, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected label name")
	}
	end := label.Span
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewGotoStatement(lexer.Merge(start.Span, end), label.Text), nil
}

func (p *Parser) parseDeclareStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'declare'
	if _, err := p.expect(lexer.TLParen, "'('"); err != nil {
		return nil, err
	}
	var directives []*ast.DeclareDirective
	for {
		nameTok, ok := p.identifierText()
		if !ok {
			return nil, p.errorf(p.buf.Peek().Span, "expected directive name")
		}
		if _, err := p.expect(lexer.TAssign, "'='"); err != nil {
			return nil, err
		}
		value, err := p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		directives = append(directives, ast.NewDeclareDirective(lexer.Merge(nameTok.Span, value.Span()), nameTok.Text, value))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	if _, err := p.expect(lexer.TRParen, "')'"); err != nil {
		return nil, err
	}
	var body ast.Statement
	end := directives[len(directives)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	} else if !p.buf.Check(lexer.TCloseTag) {
		var err error
		body, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
		if body != nil {
			end = body.Span()
		}
	}
	return ast.NewDeclareStatement(lexer.Merge(start.Span, end), directives, body), nil
}
