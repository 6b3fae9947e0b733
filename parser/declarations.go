package parser

import (
	"strings"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/lexer"
)

func (p *Parser) parseAttributeGroups() []*ast.AttributeGroup {
	var groups []*ast.AttributeGroup
	for p.buf.Check(lexer.TAttribute) {
		tok := p.buf.Advance()
		groups = append(groups, ast.NewAttributeGroup(tok.Span, tok.Text))
	}
	return groups
}

func (p *Parser) parseParameterList() (*ast.ParameterList, error) {
	open, err := p.expect(lexer.TLParen, "'('")
	if err != nil {
		return nil, err
	}
	var params []*ast.Parameter
	for !p.buf.Check(lexer.TRParen) {
		attrs := p.parseAttributeGroups()
		paramStart := p.buf.Peek().Span
		if len(attrs) > 0 {
			paramStart = attrs[0].Span()
		}

		var mods ast.Modifiers
		hasMods := false
		seenVisibility := false
		seenReadonly := false
		for {
			tok := p.buf.Peek()
			switch tok.Kind {
			case lexer.TPublic, lexer.TPrivate, lexer.TProtected:
				if seenVisibility {
					return nil, p.semanticErrorf(tok.Span, "duplicate visibility modifier")
				}
				seenVisibility = true
				switch tok.Kind {
				case lexer.TPublic:
					mods.Visibility = ast.VisibilityPublic
				case lexer.TPrivate:
					mods.Visibility = ast.VisibilityPrivate
				case lexer.TProtected:
					mods.Visibility = ast.VisibilityProtected
				}
			case lexer.TReadonly:
				if seenReadonly {
					return nil, p.semanticErrorf(tok.Span, "duplicate 'readonly' modifier")
				}
				seenReadonly = true
				mods.Readonly = true
			default:
				goto modsDone
			}
			hasMods = true
			p.buf.Advance()
		}
	modsDone:

		byRef := p.buf.Match(lexer.TAmp)
		variadic := p.buf.Match(lexer.TEllipsis)

		var typ ast.TypeNode
		if !p.buf.Check(lexer.TVariable) {
			typ, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		if !byRef {
			byRef = p.buf.Match(lexer.TAmp)
		}
		if !variadic {
			variadic = p.buf.Match(lexer.TEllipsis)
		}

		nameTok, err := p.expect(lexer.TVariable, "parameter name")
		if err != nil {
			return nil, err
		}

		var def ast.Expression
		paramEnd := nameTok.Span
		if p.buf.Match(lexer.TAssign) {
			def, err = p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			paramEnd = def.Span()
		}

		var promoted *ast.Modifiers
		if hasMods {
			m := mods
			promoted = &m
		}
		params = append(params, ast.NewParameter(lexer.Merge(paramStart, paramEnd), nameTok.Text[1:], typ, def, byRef, variadic, promoted, attrs))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	close, err := p.expect(lexer.TRParen, "')'")
	if err != nil {
		return nil, err
	}
	return ast.NewParameterList(lexer.Merge(open.Span, close.Span), params), nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	return p.parseFunctionDeclarationWithAttrs(nil, p.buf.Peek().Span)
}

func (p *Parser) parseFunctionDeclarationWithAttrs(attrs []*ast.AttributeGroup, start lexer.Span) (ast.Statement, error) {
	p.buf.Advance() // 'function'
	byRef := p.buf.Match(lexer.TAmp)
	nameTok, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected function name")
	}
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
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDeclaration(lexer.Merge(start, body.Span()), nameTok.Text, byRef, params, ret, body, attrs), nil
}

// parseClassModifiers consumes a run of abstract/final/readonly
// keywords preceding `class`.
func (p *Parser) parseClassModifiers() (ast.Modifiers, error) {
	var mods ast.Modifiers
	for {
		tok := p.buf.Peek()
		switch tok.Kind {
		case lexer.TAbstract:
			if mods.Abstract {
				return mods, p.semanticErrorf(tok.Span, "duplicate 'abstract' modifier")
			}
			mods.Abstract = true
		case lexer.TFinal:
			if mods.Final {
				return mods, p.semanticErrorf(tok.Span, "duplicate 'final' modifier")
			}
			mods.Final = true
		case lexer.TReadonly:
			if mods.Readonly {
				return mods, p.semanticErrorf(tok.Span, "duplicate 'readonly' modifier")
			}
			mods.Readonly = true
		default:
			return mods, nil
		}
		p.buf.Advance()
	}
}

func (p *Parser) parseClassDeclaration() (ast.Statement, error) {
	return p.parseClassDeclarationWithAttrs(nil, p.buf.Peek().Span)
}

func (p *Parser) parseClassDeclarationWithAttrs(attrs []*ast.AttributeGroup, start lexer.Span) (ast.Statement, error) {
	mods, err := p.parseClassModifiers()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TClass, "'class'"); err != nil {
		return nil, err
	}
	nameTok, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected class name")
	}
	var super *ast.Name
	if p.buf.Match(lexer.TExtends) {
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
	return ast.NewClassDeclaration(lexer.Merge(start, end), nameTok.Text, mods, super, ifaces, members, attrs), nil
}

func (p *Parser) parseInterfaceDeclaration() (ast.Statement, error) {
	start := p.buf.Advance() // 'interface'
	nameTok, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected interface name")
	}
	var extends []*ast.Name
	if p.buf.Match(lexer.TExtends) {
		for {
			n, err := p.parseQualifiedName()
			if err != nil {
				return nil, err
			}
			extends = append(extends, n)
			if !p.buf.Match(lexer.TComma) {
				break
			}
		}
	}
	members, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if method, ok := m.(*ast.MethodDeclaration); ok {
			method.Modifiers.Abstract = true
		}
	}
	return ast.NewInterfaceDeclaration(lexer.Merge(start.Span, end), nameTok.Text, extends, members), nil
}

func (p *Parser) parseTraitDeclaration() (ast.Statement, error) {
	start := p.buf.Advance() // 'trait'
	nameTok, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected trait name")
	}
	members, end, err := p.parseClassBody()
	if err != nil {
		return nil, err
	}
	return ast.NewTraitDeclaration(lexer.Merge(start.Span, end), nameTok.Text, members), nil
}

func (p *Parser) parseEnumDeclaration() (ast.Statement, error) {
	start := p.buf.Advance() // 'enum'
	nameTok, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected enum name")
	}
	var scalar ast.TypeNode
	var err error
	if p.buf.Match(lexer.TColon) {
		scalar, err = p.parseTypeAtom()
		if err != nil {
			return nil, err
		}
		simple, ok := scalar.(*ast.SimpleType)
		if !ok || (simple.Name != "int" && simple.Name != "string") {
			return nil, p.semanticErrorf(scalar.Span(), "enum backing type must be 'int' or 'string'")
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
	return ast.NewEnumDeclaration(lexer.Merge(start.Span, end), nameTok.Text, scalar, ifaces, members, nil), nil
}

// parseClassBody parses the brace-delimited member list shared by
// class/interface/trait/enum declarations and anonymous classes.
func (p *Parser) parseClassBody() ([]ast.ClassMember, lexer.Span, error) {
	if _, err := p.expect(lexer.TLBrace, "'{'"); err != nil {
		return nil, lexer.Span{}, err
	}
	var members []ast.ClassMember
	for !p.buf.Check(lexer.TRBrace) && !p.buf.IsAtEnd() {
		if p.buf.Check(lexer.TCase) {
			member, err := p.parseEnumCase()
			if err != nil {
				return nil, lexer.Span{}, err
			}
			members = append(members, member)
			continue
		}
		if p.buf.Check(lexer.TUse) {
			member, err := p.parseTraitUseStatement()
			if err != nil {
				return nil, lexer.Span{}, err
			}
			members = append(members, member)
			continue
		}
		member, err := p.parseClassMember()
		if err != nil {
			return nil, lexer.Span{}, err
		}
		if member != nil {
			members = append(members, member)
		}
	}
	close, err := p.expect(lexer.TRBrace, "'}'")
	if err != nil {
		return nil, lexer.Span{}, err
	}
	return members, close.Span, nil
}

func (p *Parser) parseEnumCase() (ast.ClassMember, error) {
	start := p.buf.Advance() // 'case'
	nameTok, ok := p.identifierText()
	if !ok {
		return nil, p.errorf(p.buf.Peek().Span, "expected case name")
	}
	var value ast.Expression
	end := nameTok.Span
	if p.buf.Match(lexer.TAssign) {
		var err error
		value, err = p.parseExpression(precAssignment)
		if err != nil {
			return nil, err
		}
		end = value.Span()
	}
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewEnumCase(lexer.Merge(start.Span, end), nameTok.Text, value), nil
}

func (p *Parser) parseTraitUseStatement() (ast.ClassMember, error) {
	start := p.buf.Advance() // 'use'
	var traits []string
	for {
		n, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		traits = append(traits, nameString(n))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	var adaptations []ast.Node
	end := p.buf.Previous().Span
	if p.buf.Match(lexer.TLBrace) {
		for !p.buf.Check(lexer.TRBrace) && !p.buf.IsAtEnd() {
			adaptStart := p.buf.Peek().Span
			lhsTok, ok := p.identifierText()
			if !ok {
				return nil, p.errorf(p.buf.Peek().Span, "expected trait or method name")
			}
			traitName := ""
			methodName := lhsTok.Text
			if p.buf.Match(lexer.TDoubleColon) {
				traitName = lhsTok.Text
				m, ok := p.identifierText()
				if !ok {
					return nil, p.errorf(p.buf.Peek().Span, "expected method name")
				}
				methodName = m.Text
			}
			if p.buf.Match(lexer.TInsteadof) {
				if traitName == "" {
					return nil, p.semanticErrorf(adaptStart, "'insteadof' requires an explicit trait::method prefix")
				}
				var names []string
				for {
					n, err := p.parseQualifiedName()
					if err != nil {
						return nil, err
					}
					names = append(names, nameString(n))
					if !p.buf.Match(lexer.TComma) {
						break
					}
				}
				adaptEnd := p.buf.Peek().Span
				if p.buf.Check(lexer.TSemicolon) {
					adaptEnd = p.buf.Advance().Span
				}
				adaptations = append(adaptations, ast.NewTraitAdaptationPrecedence(lexer.Merge(adaptStart, adaptEnd), traitName, methodName, names))
				continue
			}
			if _, err := p.expect(lexer.TAs, "'as' or 'insteadof'"); err != nil {
				return nil, err
			}
			var vis ast.Visibility
			switch p.buf.Peek().Kind {
			case lexer.TPublic:
				vis = ast.VisibilityPublic
				p.buf.Advance()
			case lexer.TPrivate:
				vis = ast.VisibilityPrivate
				p.buf.Advance()
			case lexer.TProtected:
				vis = ast.VisibilityProtected
				p.buf.Advance()
			}
			alias := ""
			if id, ok := p.identifierText(); ok {
				alias = id.Text
			}
			adaptEnd := p.buf.Peek().Span
			if p.buf.Check(lexer.TSemicolon) {
				adaptEnd = p.buf.Advance().Span
			}
			adaptations = append(adaptations, ast.NewTraitAdaptationAlias(lexer.Merge(adaptStart, adaptEnd), traitName, methodName, vis, alias))
		}
		close, err := p.expect(lexer.TRBrace, "'}'")
		if err != nil {
			return nil, err
		}
		end = close.Span
	} else if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewTraitUseStatement(lexer.Merge(start.Span, end), traits, adaptations), nil
}

var memberModifierKinds = map[lexer.TokenKind]bool{
	lexer.TPublic: true, lexer.TPrivate: true, lexer.TProtected: true,
	lexer.TStatic: true, lexer.TAbstract: true, lexer.TFinal: true, lexer.TReadonly: true, lexer.TVar: true,
}

// parseClassMember parses one property, method, constructor, or class
// constant declaration, including its leading modifier run and
// attributes.
func (p *Parser) parseClassMember() (ast.ClassMember, error) {
	attrs := p.parseAttributeGroups()
	start := p.buf.Peek().Span
	if len(attrs) > 0 {
		start = attrs[0].Span()
	}

	var mods ast.Modifiers
	seenVisibility := false
	seenStatic := false
	seenAbstract := false
	seenFinal := false
	seenReadonly := false
	for memberModifierKinds[p.buf.Peek().Kind] {
		tok := p.buf.Advance()
		switch tok.Kind {
		case lexer.TPublic, lexer.TPrivate, lexer.TProtected, lexer.TVar:
			if seenVisibility {
				return nil, p.semanticErrorf(tok.Span, "duplicate visibility modifier")
			}
			seenVisibility = true
			switch tok.Kind {
			case lexer.TPublic, lexer.TVar:
				mods.Visibility = ast.VisibilityPublic
			case lexer.TPrivate:
				mods.Visibility = ast.VisibilityPrivate
			case lexer.TProtected:
				mods.Visibility = ast.VisibilityProtected
			}
		case lexer.TStatic:
			if seenStatic {
				return nil, p.semanticErrorf(tok.Span, "duplicate 'static' modifier")
			}
			seenStatic = true
			mods.Static = true
		case lexer.TAbstract:
			if seenAbstract {
				return nil, p.semanticErrorf(tok.Span, "duplicate 'abstract' modifier")
			}
			seenAbstract = true
			mods.Abstract = true
		case lexer.TFinal:
			if seenFinal {
				return nil, p.semanticErrorf(tok.Span, "duplicate 'final' modifier")
			}
			seenFinal = true
			mods.Final = true
		case lexer.TReadonly:
			if seenReadonly {
				return nil, p.semanticErrorf(tok.Span, "duplicate 'readonly' modifier")
			}
			seenReadonly = true
			mods.Readonly = true
		}
	}

	if p.buf.Check(lexer.TConst) {
		p.buf.Advance()
		var typ ast.TypeNode
		if !p.constNameAhead() {
			var err error
			typ, err = p.parseType()
			if err != nil {
				return nil, err
			}
		}
		var decls []*ast.ClassConstantDeclarator
		for {
			nameTok, ok := p.identifierText()
			if !ok {
				return nil, p.errorf(p.buf.Peek().Span, "expected constant name")
			}
			if _, err := p.expect(lexer.TAssign, "'='"); err != nil {
				return nil, err
			}
			value, err := p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			decls = append(decls, ast.NewClassConstantDeclarator(lexer.Merge(nameTok.Span, value.Span()), nameTok.Text, value))
			if !p.buf.Match(lexer.TComma) {
				break
			}
		}
		if len(decls) > 1 {
			return nil, p.semanticErrorf(decls[1].Span(), "multiple constant declarations in one 'const' statement are not supported")
		}
		end := decls[len(decls)-1].Span()
		if p.buf.Check(lexer.TSemicolon) {
			end = p.buf.Advance().Span
		}
		return ast.NewClassConstantDeclaration(lexer.Merge(start, end), mods, typ, decls, attrs), nil
	}

	if p.buf.Check(lexer.TFunction) {
		p.buf.Advance()
		byRef := p.buf.Match(lexer.TAmp)
		nameTok, ok := p.identifierText()
		if !ok {
			return nil, p.errorf(p.buf.Peek().Span, "expected method name")
		}
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
		var body *ast.Block
		end := params.Span()
		if ret != nil {
			end = ret.Span()
		}
		if p.buf.Check(lexer.TLBrace) {
			body, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
			end = body.Span()
		} else if p.buf.Check(lexer.TSemicolon) {
			end = p.buf.Advance().Span
		}
		if strings.EqualFold(nameTok.Text, "__construct") {
			return ast.NewConstructorDeclaration(lexer.Merge(start, end), mods, params, body, attrs), nil
		}
		return ast.NewMethodDeclaration(lexer.Merge(start, end), nameTok.Text, mods, byRef, params, ret, body, attrs), nil
	}

	// property declaration: optional type, then one or more `$name [= default]`
	var typ ast.TypeNode
	if !p.buf.Check(lexer.TVariable) {
		var err error
		typ, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	var decls []*ast.PropertyDeclarator
	for {
		nameTok, err := p.expect(lexer.TVariable, "property name")
		if err != nil {
			return nil, err
		}
		var def ast.Expression
		end := nameTok.Span
		if p.buf.Match(lexer.TAssign) {
			def, err = p.parseExpression(precAssignment)
			if err != nil {
				return nil, err
			}
			end = def.Span()
		}
		decls = append(decls, ast.NewPropertyDeclarator(lexer.Merge(nameTok.Span, end), nameTok.Text, def))
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end := decls[len(decls)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewPropertyDeclaration(lexer.Merge(start, end), mods, typ, decls, attrs), nil
}

// constNameAhead reports whether the current token is a bare constant
// name rather than the start of a type annotation, distinguishing
// `const int X = 1;` from `const X = 1;` by checking what follows.
func (p *Parser) constNameAhead() bool {
	if p.buf.Peek().Kind != lexer.TIdentifier {
		return false
	}
	return p.buf.PeekN(1).Kind == lexer.TAssign
}

func (p *Parser) parseNamespaceDeclaration() (ast.Statement, error) {
	start := p.buf.Advance() // 'namespace'
	name := ""
	if p.buf.Peek().Kind == lexer.TIdentifier {
		n, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		name = nameString(n)
	}
	if p.buf.Check(lexer.TLBrace) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewNamespaceDeclaration(lexer.Merge(start.Span, body.Span()), name, body.Statements, true), nil
	}
	if name == "" {
		return nil, p.errorf(p.buf.Peek().Span, "expected namespace name before '%s'", p.buf.Peek().Text)
	}
	end := start.Span
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	var stmts []ast.Statement
	for !p.buf.IsAtEnd() && !p.buf.Check(lexer.TNamespace) && !p.buf.Check(lexer.TCloseTag) {
		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			if !p.handleError(err) {
				break
			}
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
			end = stmt.Span()
		}
	}
	return ast.NewNamespaceDeclaration(lexer.Merge(start.Span, end), name, stmts, false), nil
}

func (p *Parser) parseUseStatement() (ast.Statement, error) {
	start := p.buf.Advance() // 'use'
	kind := ast.UseNormal
	switch p.buf.Peek().Kind {
	case lexer.TFunction:
		kind = ast.UseFunction
		p.buf.Advance()
	case lexer.TConst:
		kind = ast.UseConst
		p.buf.Advance()
	}

	first, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}

	var items []*ast.UseItem
	if p.buf.Match(lexer.TBackslash) {
		if _, err := p.expect(lexer.TLBrace, "'{'"); err != nil {
			return nil, err
		}
		prefix := nameString(first)
		for !p.buf.Check(lexer.TRBrace) {
			itemStart := p.buf.Peek().Span
			itemKind := kind
			switch p.buf.Peek().Kind {
			case lexer.TFunction:
				itemKind = ast.UseFunction
				p.buf.Advance()
			case lexer.TConst:
				itemKind = ast.UseConst
				p.buf.Advance()
			}
			n, err := p.parseQualifiedName()
			if err != nil {
				return nil, err
			}
			alias := ""
			itemEnd := n.Span()
			if p.buf.Match(lexer.TAs) {
				a, ok := p.identifierText()
				if !ok {
					return nil, p.errorf(p.buf.Peek().Span, "expected alias")
				}
				alias = a.Text
				itemEnd = a.Span
			}
			items = append(items, ast.NewUseItem(lexer.Merge(itemStart, itemEnd), prefix+"\\"+nameString(n), itemKind, alias))
			if !p.buf.Match(lexer.TComma) {
				break
			}
		}
		if _, err := p.expect(lexer.TRBrace, "'}'"); err != nil {
			return nil, err
		}
	} else {
		alias := ""
		itemEnd := first.Span()
		if p.buf.Match(lexer.TAs) {
			a, ok := p.identifierText()
			if !ok {
				return nil, p.errorf(p.buf.Peek().Span, "expected alias")
			}
			alias = a.Text
			itemEnd = a.Span
		}
		items = append(items, ast.NewUseItem(lexer.Merge(first.Span(), itemEnd), nameString(first), kind, alias))
		for p.buf.Match(lexer.TComma) {
			n, err := p.parseQualifiedName()
			if err != nil {
				return nil, err
			}
			a2 := ""
			iEnd := n.Span()
			if p.buf.Match(lexer.TAs) {
				a, ok := p.identifierText()
				if !ok {
					return nil, p.errorf(p.buf.Peek().Span, "expected alias")
				}
				a2 = a.Text
				iEnd = a.Span
			}
			items = append(items, ast.NewUseItem(lexer.Merge(n.Span(), iEnd), nameString(n), kind, a2))
		}
	}

	end := items[len(items)-1].Span()
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewUseStatement(lexer.Merge(start.Span, end), kind, items), nil
}
