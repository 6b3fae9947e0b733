// Package tokenstream provides random-access cursor operations over a
// token vector, consumed by the parser: peek/match/consume/synchronize
// plus transparent trivia skipping.
package tokenstream

import "github.com/phpscout/phpast/lexer"

// Buffer owns a token vector produced by one tokenizer pass and a
// cursor into it. It is uniquely owned by a single parser for the
// duration of one parse.
type Buffer struct {
	tokens []lexer.Token
	pos    int

	// skipTrivia, when true, makes Peek/Advance/Previous transparently
	// step over trivia tokens. The parser toggles this around contexts
	// (like open-tag spans) where trivia is significant.
	skipTrivia bool
}

// synchronizeKinds begins a plausible statement or declaration; used by
// Synchronize to resume after a parse error.
var synchronizeKinds = map[lexer.TokenKind]bool{
	lexer.TSemicolon:  true,
	lexer.TRBrace:     true,
	lexer.TFunction:   true,
	lexer.TClass:      true,
	lexer.TInterface:  true,
	lexer.TTrait:      true,
	lexer.TEnum:       true,
	lexer.TNamespace:  true,
	lexer.TUse:        true,
	lexer.TIf:         true,
	lexer.TWhile:      true,
	lexer.TFor:        true,
	lexer.TForeach:    true,
	lexer.TReturn:     true,
	lexer.TTry:        true,
	lexer.TThrow:      true,
	lexer.TCloseTag:   true,
}

// New wraps tokens for random-access consumption. SkipTrivia controls
// whether trivia tokens are transparently skipped by Peek/Advance.
func New(tokens []lexer.Token, skipTrivia bool) *Buffer {
	return &Buffer{tokens: tokens, skipTrivia: skipTrivia}
}

// SetSkipTrivia toggles transparent trivia skipping from this point on.
func (b *Buffer) SetSkipTrivia(v bool) { b.skipTrivia = v }

func (b *Buffer) realIndex(logical int) int {
	if !b.skipTrivia {
		return b.pos + logical
	}
	i := b.pos
	remaining := logical
	for i < len(b.tokens) {
		if b.tokens[i].IsTrivia() {
			i++
			continue
		}
		if remaining == 0 {
			return i
		}
		remaining--
		i++
	}
	return i
}

// Peek returns the current token (index 0) without advancing.
func (b *Buffer) Peek() lexer.Token { return b.PeekN(0) }

// PeekN returns the token k positions ahead of the cursor, or the final
// (EOF) token if k runs past the end.
func (b *Buffer) PeekN(k int) lexer.Token {
	idx := b.realIndex(k)
	if idx >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1]
	}
	return b.tokens[idx]
}

// Previous returns the most recently consumed token.
func (b *Buffer) Previous() lexer.Token {
	if b.pos == 0 {
		return b.tokens[0]
	}
	return b.tokens[b.pos-1]
}

// IsAtEnd reports whether the cursor is on the EOF token.
func (b *Buffer) IsAtEnd() bool {
	return b.Peek().Kind == lexer.TEOF
}

// Advance consumes and returns the current token.
func (b *Buffer) Advance() lexer.Token {
	tok := b.Peek()
	if b.skipTrivia {
		for b.pos < len(b.tokens) && b.tokens[b.pos].IsTrivia() {
			b.pos++
		}
	}
	if b.pos < len(b.tokens) {
		b.pos++
	}
	return tok
}

// Check reports whether the current token has the given kind, without
// consuming it.
func (b *Buffer) Check(kind lexer.TokenKind) bool {
	return b.Peek().Kind == kind
}

// Match advances and returns true iff the current token's kind is one
// of kinds.
func (b *Buffer) Match(kinds ...lexer.TokenKind) bool {
	cur := b.Peek().Kind
	for _, k := range kinds {
		if cur == k {
			b.Advance()
			return true
		}
	}
	return false
}

// Consume advances iff the current token has kind; otherwise it returns
// a syntax error describing what was expected.
func (b *Buffer) Consume(kind lexer.TokenKind, msg string) (lexer.Token, error) {
	if b.Check(kind) {
		return b.Advance(), nil
	}
	return lexer.Token{}, &UnexpectedTokenError{
		Message:  msg,
		Span:     b.Peek().Span,
		Expected: []lexer.TokenKind{kind},
		Found:    b.Peek().Kind,
	}
}

// UnexpectedTokenError is returned by Consume on a kind mismatch.
type UnexpectedTokenError struct {
	Message  string
	Span     lexer.Span
	Expected []lexer.TokenKind
	Found    lexer.TokenKind
}

func (e *UnexpectedTokenError) Error() string { return e.Message }

// Synchronize advances to the next token that plausibly begins a new
// statement or declaration, used to resume after a parse error.
func (b *Buffer) Synchronize() {
	for !b.IsAtEnd() {
		if synchronizeKinds[b.Peek().Kind] {
			if b.Peek().Kind == lexer.TSemicolon || b.Peek().Kind == lexer.TRBrace {
				b.Advance()
			}
			return
		}
		b.Advance()
	}
}

// Mark is an opaque cursor bookmark for speculative parses (e.g. the
// class/function-vs-expression disambiguation).
type Mark int

// Save returns a bookmark of the current cursor position.
func (b *Buffer) Save() Mark { return Mark(b.pos) }

// Restore rewinds the cursor to a previously saved bookmark.
func (b *Buffer) Restore(m Mark) { b.pos = int(m) }
