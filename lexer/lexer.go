// Package lexer turns PHP source text into a flat token stream. It
// drives the source cursor, switches between HTML and PHP-tag modes,
// and streams heredoc/nowdoc bodies as a pending sub-state.
package lexer

import (
	"strings"

	"github.com/phpscout/phpast/internal/cursor"
)

// Options controls which trivia kinds survive in the token vector
// Tokenize returns. The tokenizer always scans trivia to keep its
// position tracking correct; these flags only filter what is kept.
type Options struct {
	PreserveComments   bool
	PreserveWhitespace bool
	PreserveInlineHTML bool
}

// DefaultOptions preserves every trivia kind, matching the external
// contract's default.
func DefaultOptions() Options {
	return Options{PreserveComments: true, PreserveWhitespace: true, PreserveInlineHTML: true}
}

// Lexer is a one-shot, single-threaded tokenizer over one source string.
type Lexer struct {
	cur     *cursor.Cursor
	source  string
	mode    Mode
	heredoc *heredocState

	// heredocAtLabel is set once scanPendingHeredoc has located the
	// terminator line but before the label itself has been consumed,
	// so content and label are returned as two successive tokens.
	heredocAtLabel bool
}

// New creates a lexer over source, starting in OutOfTag mode.
func New(source string) *Lexer {
	return &Lexer{cur: cursor.New(source), source: source, mode: ModeOutOfTag}
}

// Tokenize scans source to completion and returns its token vector,
// filtered according to opts. The final token is always TEOF.
func Tokenize(source string, opts Options) []Token {
	l := New(source)
	var out []Token
	for {
		tok := l.NextToken()
		if keepToken(tok, opts) {
			out = append(out, tok)
		}
		if tok.Kind == TEOF {
			break
		}
	}
	return out
}

func keepToken(tok Token, opts Options) bool {
	switch tok.Kind {
	case TComment, TDocComment:
		return opts.PreserveComments
	case TWhitespace, TNewline:
		return opts.PreserveWhitespace
	case TInlineHTML:
		return opts.PreserveInlineHTML
	default:
		return true
	}
}

// NextToken scans and returns the next raw token (including trivia),
// dispatching on the current mode.
func (l *Lexer) NextToken() Token {
	switch l.mode {
	case ModeOutOfTag:
		return l.scanOutOfTag()
	case ModePendingHeredoc:
		return l.scanPendingHeredoc()
	default:
		return l.scanInTag()
	}
}

func (l *Lexer) finish(kind TokenKind, text string, start cursor.Position) Token {
	end := l.cur.Position()
	return Token{Kind: kind, Text: text, Span: Span{Start: toPos(start), End: toPos(end)}}
}

func (l *Lexer) makeEOF(start cursor.Position) Token {
	return Token{Kind: TEOF, Text: "", Span: Span{Start: toPos(start), End: toPos(start)}}
}

func toPos(p cursor.Position) Position {
	return Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// ---- OutOfTag ----

func (l *Lexer) scanOutOfTag() Token {
	start := l.cur.Position()
	if l.cur.IsAtEnd() {
		return l.makeEOF(start)
	}

	for !l.cur.IsAtEnd() && !l.atTagStart() {
		l.cur.Advance()
	}
	end := l.cur.Position()
	if end.Offset > start.Offset {
		text := l.cur.Slice(start.Offset, end.Offset)
		return Token{Kind: TInlineHTML, Text: text, Span: Span{Start: toPos(start), End: toPos(end)}}
	}

	if l.cur.IsAtEnd() {
		return l.makeEOF(start)
	}
	return l.consumeTag(start)
}

// atTagStart reports whether a PHP tag opener begins at the cursor,
// excluding a bare "<?" that is actually the start of "<?xml".
func (l *Lexer) atTagStart() bool {
	if l.cur.MatchesFold("<?php") {
		return true
	}
	if l.cur.Matches("<?=") {
		return true
	}
	if l.cur.Matches("<?") && !l.cur.MatchesFold("<?xml") {
		return true
	}
	return false
}

func (l *Lexer) consumeTag(start cursor.Position) Token {
	var kind TokenKind
	switch {
	case l.cur.MatchesFold("<?php"):
		kind = TOpenTag
		l.cur.Skip(5)
	case l.cur.Matches("<?="):
		kind = TOpenTagEcho
		l.cur.Skip(3)
	default:
		kind = TOpenTag
		l.cur.Skip(2)
	}
	if l.cur.Peek(0) == ' ' || l.cur.Peek(0) == '\t' {
		l.cur.Advance()
	}
	end := l.cur.Position()
	l.mode = ModeInTag
	return Token{Kind: kind, Text: l.cur.Slice(start.Offset, end.Offset), Span: Span{Start: toPos(start), End: toPos(end)}}
}

// ---- InTag ----

func (l *Lexer) scanInTag() Token {
	start := l.cur.Position()
	if l.cur.IsAtEnd() {
		return l.makeEOF(start)
	}
	ch := l.cur.Peek(0)

	switch {
	case ch == ' ' || ch == '\t':
		text := l.cur.ConsumeWhile(cursor.IsWhitespace)
		return l.finish(TWhitespace, text, start)

	case ch == '\n':
		l.cur.Advance()
		return l.finish(TNewline, "\n", start)

	case ch == '\r':
		l.cur.Advance()
		if l.cur.Peek(0) == '\n' {
			l.cur.Advance()
		}
		return l.finish(TNewline, l.cur.Slice(start.Offset, l.cur.Position().Offset), start)

	case ch == '/' && l.cur.Peek(1) == '/':
		return l.scanLineComment(start)

	case ch == '#' && l.cur.Peek(1) == '[':
		return l.scanAttribute(start)

	case ch == '#':
		return l.scanLineComment(start)

	case ch == '/' && l.cur.Peek(1) == '*':
		return l.scanBlockComment(start)

	case ch == '\'' || ch == '"' || ch == '`':
		return l.scanQuotedString(start)

	case ch == '<' && l.cur.Matches("<<<"):
		return l.scanHeredocStart(start)

	case ch == '$' && cursor.IsIdentifierStart(l.cur.Peek(1)):
		return l.scanVariable(start)

	case cursor.IsDigit(ch) || (ch == '.' && cursor.IsDigit(l.cur.Peek(1))):
		return l.scanNumber(start)

	case cursor.IsIdentifierStart(ch):
		return l.scanIdentifier(start)

	default:
		return l.scanOperatorOrUnknown(start)
	}
}

func (l *Lexer) scanLineComment(start cursor.Position) Token {
	text := l.cur.ConsumeUntil(cursor.IsNewline)
	// the comment runs to the end of the line, so a "?>" on the same line
	// is kept as comment text and does not close the PHP block.
	return l.finish(TComment, text, start)
}

func (l *Lexer) scanBlockComment(start cursor.Position) Token {
	isDoc := l.cur.Matches("/**") && !l.cur.Matches("/**/")
	l.cur.Skip(2)
	for !l.cur.IsAtEnd() && !l.cur.Matches("*/") {
		l.cur.Advance()
	}
	if l.cur.Matches("*/") {
		l.cur.Skip(2)
	}
	end := l.cur.Position()
	text := l.cur.Slice(start.Offset, end.Offset)
	kind := TComment
	if isDoc {
		kind = TDocComment
	}
	return Token{Kind: kind, Text: text, Span: Span{Start: toPos(start), End: toPos(end)}}
}

func (l *Lexer) scanAttribute(start cursor.Position) Token {
	l.cur.Skip(2) // "#["
	depth := 1
	for !l.cur.IsAtEnd() && depth > 0 {
		switch l.cur.Peek(0) {
		case '[':
			depth++
			l.cur.Advance()
		case ']':
			depth--
			l.cur.Advance()
		case '\'', '"':
			l.skipStringBody(l.cur.Peek(0))
		default:
			l.cur.Advance()
		}
	}
	end := l.cur.Position()
	return Token{Kind: TAttribute, Text: l.cur.Slice(start.Offset, end.Offset), Span: Span{Start: toPos(start), End: toPos(end)}}
}

func (l *Lexer) scanQuotedString(start cursor.Position) Token {
	quote := l.cur.Peek(0)
	l.skipStringBody(quote)
	end := l.cur.Position()
	return Token{Kind: TString, Text: l.cur.Slice(start.Offset, end.Offset), Span: Span{Start: toPos(start), End: toPos(end)}}
}

// skipStringBody consumes an opening quote, its body honoring \x escapes
// by consuming two bytes at a time, and the matching closing quote. On
// unterminated input it consumes to EOF.
func (l *Lexer) skipStringBody(quote byte) {
	l.cur.Advance() // opening quote
	for !l.cur.IsAtEnd() {
		ch := l.cur.Peek(0)
		if ch == '\\' {
			l.cur.Advance()
			if !l.cur.IsAtEnd() {
				l.cur.Advance()
			}
			continue
		}
		if ch == quote {
			l.cur.Advance()
			return
		}
		l.cur.Advance()
	}
}

func (l *Lexer) scanVariable(start cursor.Position) Token {
	l.cur.Advance() // '$'
	l.cur.ConsumeWhile(cursor.IsIdentifierPart)
	end := l.cur.Position()
	return Token{Kind: TVariable, Text: l.cur.Slice(start.Offset, end.Offset), Span: Span{Start: toPos(start), End: toPos(end)}}
}

func (l *Lexer) scanIdentifier(start cursor.Position) Token {
	l.cur.ConsumeWhile(cursor.IsIdentifierPart)
	end := l.cur.Position()
	text := l.cur.Slice(start.Offset, end.Offset)
	kind := TIdentifier
	if kw, ok := LookupKeyword(text); ok {
		kind = kw
	}
	return Token{Kind: kind, Text: text, Span: Span{Start: toPos(start), End: toPos(end)}}
}

func (l *Lexer) scanOperatorOrUnknown(start cursor.Position) Token {
	window := string([]byte{l.cur.Peek(0), l.cur.Peek(1), l.cur.Peek(2)})
	if op, ok := matchOperator(window); ok {
		l.cur.Skip(len(op.lexeme))
		tok := l.finish(op.kind, op.lexeme, start)
		if op.kind == TCloseTag {
			l.mode = ModeOutOfTag
		}
		return tok
	}
	b := l.cur.Advance()
	return l.finish(TUnknown, string([]byte{b}), start)
}

// ---- Numbers ----

func isDigitOrUnderscore(b byte) bool { return cursor.IsDigit(b) || b == '_' }
func isHexOrUnderscore(b byte) bool   { return cursor.IsHexDigit(b) || b == '_' }
func isOctalOrUnderscore(b byte) bool { return cursor.IsOctalDigit(b) || b == '_' }
func isBinaryOrUnderscore(b byte) bool {
	return cursor.IsBinaryDigit(b) || b == '_'
}

func (l *Lexer) scanNumber(start cursor.Position) Token {
	if l.cur.Peek(0) == '0' && (l.cur.Peek(1) == 'x' || l.cur.Peek(1) == 'X') {
		l.cur.Skip(2)
		l.cur.ConsumeWhile(isHexOrUnderscore)
		return l.finish(TNumber, l.cur.Slice(start.Offset, l.cur.Position().Offset), start)
	}
	if l.cur.Peek(0) == '0' && (l.cur.Peek(1) == 'b' || l.cur.Peek(1) == 'B') {
		l.cur.Skip(2)
		l.cur.ConsumeWhile(isBinaryOrUnderscore)
		return l.finish(TNumber, l.cur.Slice(start.Offset, l.cur.Position().Offset), start)
	}
	if l.cur.Peek(0) == '0' && (l.cur.Peek(1) == 'o' || l.cur.Peek(1) == 'O') {
		l.cur.Skip(2)
		l.cur.ConsumeWhile(isOctalOrUnderscore)
		return l.finish(TNumber, l.cur.Slice(start.Offset, l.cur.Position().Offset), start)
	}

	// decimal (including implicit octal "0755" and ".25")
	if l.cur.Peek(0) != '.' {
		l.cur.ConsumeWhile(isDigitOrUnderscore)
	}
	if l.cur.Peek(0) == '.' && cursor.IsDigit(l.cur.Peek(1)) {
		l.cur.Advance()
		l.cur.ConsumeWhile(isDigitOrUnderscore)
	}
	if l.cur.Peek(0) == 'e' || l.cur.Peek(0) == 'E' {
		mark := l.cur.Save()
		l.cur.Advance()
		if l.cur.Peek(0) == '+' || l.cur.Peek(0) == '-' {
			l.cur.Advance()
		}
		if cursor.IsDigit(l.cur.Peek(0)) {
			l.cur.ConsumeWhile(isDigitOrUnderscore)
		} else {
			l.cur.Restore(mark)
		}
	}
	return l.finish(TNumber, l.cur.Slice(start.Offset, l.cur.Position().Offset), start)
}

// ---- Heredoc ----

func (l *Lexer) scanHeredocStart(start cursor.Position) Token {
	l.cur.Skip(3) // "<<<"
	l.cur.ConsumeWhile(cursor.IsWhitespace)

	isNowdoc := false
	var label string
	switch l.cur.Peek(0) {
	case '\'':
		isNowdoc = true
		l.cur.Advance()
		label = l.cur.ConsumeWhile(cursor.IsIdentifierPart)
		if l.cur.Peek(0) == '\'' {
			l.cur.Advance()
		}
	case '"':
		l.cur.Advance()
		label = l.cur.ConsumeWhile(cursor.IsIdentifierPart)
		if l.cur.Peek(0) == '"' {
			l.cur.Advance()
		}
	default:
		label = l.cur.ConsumeWhile(cursor.IsIdentifierPart)
	}

	// consume the terminating newline silently; it belongs to neither
	// the start token nor the content that follows.
	if l.cur.Peek(0) == '\r' {
		l.cur.Advance()
	}
	if l.cur.Peek(0) == '\n' {
		l.cur.Advance()
	}

	end := l.cur.Position()
	l.mode = ModePendingHeredoc
	l.heredoc = &heredocState{label: label, isNowdoc: isNowdoc}
	l.heredocAtLabel = false
	return Token{
		Kind:    TStartHeredoc,
		Text:    l.cur.Slice(start.Offset, end.Offset),
		Span:    Span{Start: toPos(start), End: toPos(end)},
		Payload: HeredocPayload{Label: label, IsNowdoc: isNowdoc},
	}
}

func (l *Lexer) scanPendingHeredoc() Token {
	start := l.cur.Position()

	if l.heredocAtLabel {
		l.cur.Skip(len(l.heredoc.label))
		end := l.cur.Position()
		text := l.cur.Slice(start.Offset, end.Offset)
		l.mode = ModeInTag
		l.heredoc = nil
		l.heredocAtLabel = false
		return Token{Kind: TEndHeredoc, Text: text, Span: Span{Start: toPos(start), End: toPos(end)}}
	}

	label := l.heredoc.label
	for !l.cur.IsAtEnd() && !l.atHeredocLabel(label) {
		l.cur.Advance()
	}
	end := l.cur.Position()

	if l.cur.IsAtEnd() {
		// unterminated heredoc: remaining input becomes content, no end label follows
		l.mode = ModeInTag
		l.heredoc = nil
		return Token{Kind: TEncapsedAndWhitespace, Text: l.cur.Slice(start.Offset, end.Offset), Span: Span{Start: toPos(start), End: toPos(end)}}
	}

	if end.Offset == start.Offset {
		// zero-length body: go straight to the label
		l.heredocAtLabel = true
		return l.scanPendingHeredoc()
	}

	l.heredocAtLabel = true
	return Token{Kind: TEncapsedAndWhitespace, Text: l.cur.Slice(start.Offset, end.Offset), Span: Span{Start: toPos(start), End: toPos(end)}}
}

// atHeredocLabel reports whether the cursor sits at the start of a line
// (modulo leading spaces/tabs) whose first content is label, followed by
// a non-identifier character.
func (l *Lexer) atHeredocLabel(label string) bool {
	if !l.cur.Matches(label) {
		return false
	}
	after := l.cur.Peek(len(label))
	if cursor.IsIdentifierPart(after) {
		return false
	}
	return l.atLineIndent()
}

// atLineIndent reports whether everything between the start of the
// current line and the cursor's position is horizontal whitespace, so a
// candidate label match isn't accepted when it merely occurs mid-line in
// the heredoc body.
func (l *Lexer) atLineIndent() bool {
	offset := l.cur.Position().Offset
	prefix := l.cur.Slice(0, offset)
	lineStart := strings.LastIndexAny(prefix, "\n\r") + 1
	for i := lineStart; i < len(prefix); i++ {
		if prefix[i] != ' ' && prefix[i] != '\t' {
			return false
		}
	}
	return true
}

// GetRemainingInput exposes the unscanned tail of the source, useful for
// diagnostics and for tooling that wants to resume scanning manually.
func (l *Lexer) GetRemainingInput() string {
	return l.cur.Slice(l.cur.Position().Offset, l.cur.Len())
}
