package tokenstream

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phpscout/phpast/lexer"
)

func toks(kinds ...lexer.TokenKind) []lexer.Token {
	out := make([]lexer.Token, len(kinds))
	for i, k := range kinds {
		out[i] = lexer.Token{Kind: k}
	}
	return out
}

func TestBuffer_PeekAdvance(t *testing.T) {
	b := New(toks(lexer.TVariable, lexer.TAssign, lexer.TNumber, lexer.TEOF), false)
	assert.Equal(t, lexer.TVariable, b.Peek().Kind)
	assert.Equal(t, lexer.TAssign, b.PeekN(1).Kind)
	assert.Equal(t, lexer.TVariable, b.Advance().Kind)
	assert.Equal(t, lexer.TAssign, b.Peek().Kind)
	assert.Equal(t, lexer.TVariable, b.Previous().Kind)
}

func TestBuffer_MatchConsume(t *testing.T) {
	b := New(toks(lexer.TSemicolon, lexer.TEOF), false)
	assert.False(t, b.Match(lexer.TComma))
	assert.True(t, b.Match(lexer.TSemicolon))
	assert.True(t, b.IsAtEnd())

	b2 := New(toks(lexer.TSemicolon, lexer.TEOF), false)
	_, err := b2.Consume(lexer.TComma, "expected ','")
	assert.Error(t, err)
	tok, err := b2.Consume(lexer.TSemicolon, "expected ';'")
	assert.NoError(t, err)
	assert.Equal(t, lexer.TSemicolon, tok.Kind)
}

func TestBuffer_SkipsTriviaTransparently(t *testing.T) {
	b := New(toks(lexer.TWhitespace, lexer.TVariable, lexer.TWhitespace, lexer.TAssign, lexer.TEOF), true)
	assert.Equal(t, lexer.TVariable, b.Peek().Kind)
	assert.Equal(t, lexer.TAssign, b.PeekN(1).Kind)
	b.Advance()
	assert.Equal(t, lexer.TAssign, b.Peek().Kind)
}

func TestBuffer_SaveRestore(t *testing.T) {
	b := New(toks(lexer.TClass, lexer.TDoubleColon, lexer.TEOF), false)
	mark := b.Save()
	b.Advance()
	b.Advance()
	assert.True(t, b.IsAtEnd())
	b.Restore(mark)
	assert.Equal(t, lexer.TClass, b.Peek().Kind)
}

func TestBuffer_Synchronize(t *testing.T) {
	b := New(toks(lexer.TVariable, lexer.TAssign, lexer.TSemicolon, lexer.TClass, lexer.TEOF), false)
	b.Synchronize()
	assert.Equal(t, lexer.TClass, b.Peek().Kind)
}

func TestBuffer_PeekPastEndReturnsEOF(t *testing.T) {
	b := New(toks(lexer.TEOF), false)
	assert.Equal(t, lexer.TEOF, b.PeekN(50).Kind)
}
