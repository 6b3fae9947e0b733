// Package parser implements the recursive-descent front end that turns
// a token vector into a typed AST: declaration > statement > expression
// > primary, each level calling into the next.
package parser

import (
	"fmt"

	"github.com/phpscout/phpast/ast"
	"github.com/phpscout/phpast/errors"
	"github.com/phpscout/phpast/lexer"
	"github.com/phpscout/phpast/tokenstream"
)

// Options controls parse-time behavior.
type Options struct {
	// ErrorRecovery, when true, synchronizes past a failed declaration
	// and keeps going instead of aborting on the first error.
	ErrorRecovery bool
}

func DefaultOptions() Options {
	return Options{ErrorRecovery: true}
}

// ParseError is returned when ErrorRecovery is false and parsing hits
// the first error.
type ParseError struct {
	Message string
	Span    lexer.Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Span.Start.Line, e.Span.Start.Column)
}

// Parser threads a token buffer, the active options, and a diagnostics
// sink through a single parse. It is not reused across parses.
type Parser struct {
	buf         *tokenstream.Buffer
	opts        Options
	diagnostics []ast.Diagnostic
	aborted     error
}

func newParser(tokens []lexer.Token, opts Options) *Parser {
	return &Parser{
		buf:  tokenstream.New(tokens, true),
		opts: opts,
	}
}

// Parse builds a Program from an already-tokenized source. With
// ErrorRecovery on, parse failures inside a declaration are recorded as
// diagnostics and parsing resumes at the next synchronization point;
// otherwise the first failure aborts with a *ParseError.
func Parse(tokens []lexer.Token, opts Options) (*ast.Program, error) {
	p := newParser(tokens, opts)
	stmts := p.parseTopLevel()
	if p.aborted != nil {
		return nil, p.aborted
	}

	span := ast.Span{}
	if len(tokens) > 0 {
		span = ast.Span{Start: tokens[0].Span.Start, End: tokens[len(tokens)-1].Span.End}
	}
	return ast.NewProgram(span, stmts, p.diagnostics), nil
}

// ParseSource tokenizes and parses source in one call.
func ParseSource(source string, tokOpts lexer.Options, parseOpts Options) (*ast.Program, error) {
	tokens := lexer.Tokenize(source, tokOpts)
	return Parse(tokens, parseOpts)
}

// parseTopLevel implements the tag-cycling loop: leading inline HTML,
// an open tag, statements until a close tag or EOF, optionally trailing
// inline HTML, then repeat.
func (p *Parser) parseTopLevel() []ast.Statement {
	var stmts []ast.Statement
	for !p.buf.IsAtEnd() {
		if p.buf.Check(lexer.TInlineHTML) {
			tok := p.buf.Advance()
			stmts = append(stmts, ast.NewInlineHTMLStatement(tok.Span, tok.Text))
			continue
		}
		if p.buf.Check(lexer.TOpenTag) || p.buf.Check(lexer.TOpenTagEcho) {
			open := p.buf.Advance()
			if open.Kind == lexer.TOpenTagEcho {
				stmts = append(stmts, p.parseEchoShorthandStatement(open))
			}
			continue
		}
		if p.buf.Check(lexer.TCloseTag) {
			p.buf.Advance()
			continue
		}
		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			if !p.handleError(err) {
				return stmts
			}
			continue
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// parseEchoShorthandStatement handles `<?=` as sugar for an echo
// statement terminated by `;` or a close tag.
func (p *Parser) parseEchoShorthandStatement(open lexer.Token) ast.Statement {
	var args []ast.Expression
	for {
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			p.handleError(err)
			break
		}
		args = append(args, expr)
		if !p.buf.Match(lexer.TComma) {
			break
		}
	}
	end := p.buf.Previous().Span
	if p.buf.Check(lexer.TSemicolon) {
		end = p.buf.Advance().Span
	}
	return ast.NewEchoStatement(lexer.Merge(open.Span, end), args)
}

// parseTopLevelStatement parses one declaration or statement at the
// top level, which is the same grammar a statement body uses.
func (p *Parser) parseTopLevelStatement() (ast.Statement, error) {
	return p.parseStatement()
}

// handleError applies the configured error policy. It returns true if
// the caller should keep parsing (recovery engaged), false if the
// parse has aborted.
func (p *Parser) handleError(err error) bool {
	span := p.spanOf(err)
	if !p.opts.ErrorRecovery {
		p.aborted = &ParseError{Message: err.Error(), Span: span}
		return false
	}
	p.diagnostics = append(p.diagnostics, ast.Diagnostic{Message: err.Error(), Span: span})
	p.buf.Synchronize()
	return true
}

func (p *Parser) spanOf(err error) lexer.Span {
	switch e := err.(type) {
	case *tokenstream.UnexpectedTokenError:
		return e.Span
	case *errors.Error:
		return e.Span
	case *ParseError:
		return e.Span
	default:
		return p.buf.Peek().Span
	}
}

// expect consumes a token of the given kind or returns a syntax error.
func (p *Parser) expect(kind lexer.TokenKind, what string) (lexer.Token, error) {
	tok, err := p.buf.Consume(kind, fmt.Sprintf("expected %s, found %s", what, lexer.TokenNames[p.buf.Peek().Kind]))
	if err != nil {
		return tok, err
	}
	return tok, nil
}

func (p *Parser) errorf(span lexer.Span, format string, args ...interface{}) error {
	return errors.NewSyntaxError(fmt.Sprintf(format, args...), span)
}

func (p *Parser) semanticErrorf(span lexer.Span, format string, args ...interface{}) error {
	return errors.NewSemanticError(fmt.Sprintf(format, args...), span)
}

// identifierText accepts either a true identifier token or any
// contextual keyword used as a bare name (e.g. a method literally
// named `list` is legal PHP).
func (p *Parser) identifierText() (lexer.Token, bool) {
	tok := p.buf.Peek()
	if tok.Kind == lexer.TIdentifier {
		p.buf.Advance()
		return tok, true
	}
	if _, ok := lexer.LookupKeyword(tok.Text); ok && tok.Text != "" {
		p.buf.Advance()
		return tok, true
	}
	return tok, false
}
