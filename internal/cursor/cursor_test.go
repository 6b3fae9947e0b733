package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_AdvanceTracksLineColumn(t *testing.T) {
	c := New("ab\ncd")

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, c.Position())
	assert.Equal(t, byte('a'), c.Advance())
	assert.Equal(t, Position{Line: 1, Column: 2, Offset: 1}, c.Position())
	assert.Equal(t, byte('b'), c.Advance())
	assert.Equal(t, byte('\n'), c.Advance())
	assert.Equal(t, Position{Line: 2, Column: 1, Offset: 3}, c.Position())
	assert.Equal(t, byte('c'), c.Advance())
}

func TestCursor_PeekDoesNotConsume(t *testing.T) {
	c := New("xyz")
	assert.Equal(t, byte('x'), c.Peek(0))
	assert.Equal(t, byte('y'), c.Peek(1))
	assert.Equal(t, byte(0), c.Peek(10))
	assert.Equal(t, byte('x'), c.Advance())
}

func TestCursor_Matches(t *testing.T) {
	c := New("<?php echo")
	assert.True(t, c.Matches("<?php"))
	assert.False(t, c.Matches("<?="))
	assert.True(t, c.MatchesFold("<?PHP"))
}

func TestCursor_SaveRestore(t *testing.T) {
	c := New("hello world")
	c.Skip(6)
	mark := c.Save()
	c.Skip(3)
	assert.Equal(t, 9, c.Position().Offset)
	c.Restore(mark)
	assert.Equal(t, 6, c.Position().Offset)
	assert.Equal(t, "world", c.ConsumeWhile(func(b byte) bool { return b != 0 }))
}

func TestCursor_ConsumeWhileUntil(t *testing.T) {
	c := New("123abc;")
	digits := c.ConsumeWhile(IsDigit)
	assert.Equal(t, "123", digits)
	rest := c.ConsumeUntil(func(b byte) bool { return b == ';' })
	assert.Equal(t, "abc", rest)
	assert.Equal(t, byte(';'), c.Peek(0))
}

func TestCursor_IsAtEnd(t *testing.T) {
	c := New("a")
	assert.False(t, c.IsAtEnd())
	c.Advance()
	assert.True(t, c.IsAtEnd())
	assert.Equal(t, byte(0), c.Advance())
}

func TestIdentifierPredicates(t *testing.T) {
	assert.True(t, IsIdentifierStart('_'))
	assert.True(t, IsIdentifierStart('a'))
	assert.False(t, IsIdentifierStart('1'))
	assert.True(t, IsIdentifierPart('1'))
	assert.True(t, IsHexDigit('f'))
	assert.False(t, IsHexDigit('g'))
	assert.True(t, IsOctalDigit('7'))
	assert.False(t, IsOctalDigit('8'))
	assert.True(t, IsBinaryDigit('1'))
	assert.False(t, IsBinaryDigit('2'))
}
