package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenizeAll(t *testing.T, input string) []Token {
	t.Helper()
	return Tokenize(input, DefaultOptions())
}

func TestTokenize_SimpleEcho(t *testing.T) {
	toks := tokenizeAll(t, `<?php echo "hi"; ?>`)

	tests := []struct {
		kind TokenKind
		text string
	}{
		{TOpenTag, "<?php "},
		{TEcho, "echo"},
		{TWhitespace, " "},
		{TString, `"hi"`},
		{TSemicolon, ";"},
		{TWhitespace, " "},
		{TCloseTag, "?>"},
		{TEOF, ""},
	}
	if assert.Len(t, toks, len(tests)) {
		for i, tt := range tests {
			assert.Equalf(t, tt.kind, toks[i].Kind, "token[%d] kind, got %s", i, TokenNames[toks[i].Kind])
			assert.Equalf(t, tt.text, toks[i].Text, "token[%d] text", i)
		}
	}
}

func TestTokenize_NoPHPTagIsInlineHTML(t *testing.T) {
	toks := tokenizeAll(t, "<html><body>hi</body></html>")
	if assert.Len(t, toks, 2) {
		assert.Equal(t, TInlineHTML, toks[0].Kind)
		assert.Equal(t, "<html><body>hi</body></html>", toks[0].Text)
		assert.Equal(t, TEOF, toks[1].Kind)
	}
}

func TestTokenize_EmptySource(t *testing.T) {
	toks := tokenizeAll(t, "")
	if assert.Len(t, toks, 1) {
		assert.Equal(t, TEOF, toks[0].Kind)
	}
}

func TestTokenize_XMLDeclarationIsNotATag(t *testing.T) {
	toks := tokenizeAll(t, `<?xml version="1.0"?><?php echo 1; ?>`)
	assert.Equal(t, TInlineHTML, toks[0].Kind)
	assert.Equal(t, `<?xml version="1.0"?>`, toks[0].Text)
}

func TestTokenize_Variables(t *testing.T) {
	toks := Tokenize(`<?php $name = "John"; $age = 25; ?>`, Options{})
	kinds := kindsOf(toks)
	assert.Equal(t, []TokenKind{TOpenTag, TVariable, TAssign, TString, TSemicolon, TVariable, TAssign, TNumber, TSemicolon, TCloseTag, TEOF}, kinds)
}

func TestTokenize_Heredoc(t *testing.T) {
	toks := tokenizeAll(t, "<?php $s = <<<EOT\nhello\nEOT;\n")
	kinds := kindsOf(toks)
	assert.Contains(t, kinds, TStartHeredoc)
	assert.Contains(t, kinds, TEncapsedAndWhitespace)
	assert.Contains(t, kinds, TEndHeredoc)

	var start, content, end Token
	for _, tok := range toks {
		switch tok.Kind {
		case TStartHeredoc:
			start = tok
		case TEncapsedAndWhitespace:
			content = tok
		case TEndHeredoc:
			end = tok
		}
	}
	assert.Equal(t, "<<<EOT\n", start.Text)
	assert.Equal(t, "hello\n", content.Text)
	assert.Equal(t, "EOT", end.Text)
}

func TestTokenize_Nowdoc(t *testing.T) {
	toks := Tokenize("<?php $s = <<<'EOT'\nraw $x\nEOT;\n", Options{})
	var start Token
	for _, tok := range toks {
		if tok.Kind == TStartHeredoc {
			start = tok
		}
	}
	payload, ok := start.Payload.(HeredocPayload)
	if assert.True(t, ok) {
		assert.True(t, payload.IsNowdoc)
		assert.Equal(t, "EOT", payload.Label)
	}
}

func TestTokenize_HeredocLabelMidLineIsNotEnd(t *testing.T) {
	toks := tokenizeAll(t, "<?php $s = <<<EOT\nhello EOT world\nEOT;\n")
	kinds := kindsOf(toks)
	assert.Contains(t, kinds, TEndHeredoc)

	var content, end Token
	for _, tok := range toks {
		switch tok.Kind {
		case TEncapsedAndWhitespace:
			content = tok
		case TEndHeredoc:
			end = tok
		}
	}
	assert.Equal(t, "hello EOT world\n", content.Text)
	assert.Equal(t, "EOT", end.Text)
}

func TestTokenize_UnterminatedHeredoc(t *testing.T) {
	toks := Tokenize("<?php $s = <<<EOT\nhello", Options{})
	kinds := kindsOf(toks)
	assert.Contains(t, kinds, TEncapsedAndWhitespace)
	assert.NotContains(t, kinds, TEndHeredoc)
}

func TestTokenize_NumberForms(t *testing.T) {
	cases := []string{"1_000", ".25", "1e-3", "0x1A", "0b101", "0o17", "0755"}
	for _, src := range cases {
		toks := Tokenize("<?php "+src+";", Options{})
		assert.Equalf(t, TNumber, toks[1].Kind, "case %q", src)
		assert.Equalf(t, src, toks[1].Text, "case %q", src)
	}
}

func TestTokenize_Operators(t *testing.T) {
	toks := Tokenize("<?php $a <=> $b ??= $c;", Options{})
	kinds := kindsOf(toks)
	assert.Contains(t, kinds, TSpaceship)
	assert.Contains(t, kinds, TCoalesceEq)
}

func TestTokenize_DocCommentVsBlockComment(t *testing.T) {
	toks := Tokenize("<?php /** doc */ /* plain */ /**/", Options{PreserveComments: true})
	var kinds []TokenKind
	for _, tok := range toks {
		if tok.Kind == TComment || tok.Kind == TDocComment {
			kinds = append(kinds, tok.Kind)
		}
	}
	assert.Equal(t, []TokenKind{TDocComment, TComment, TComment}, kinds)
}

func TestTokenize_ControlByteInBacktickStringKeepsStreamWellFormed(t *testing.T) {
	toks := Tokenize("<?php $a = `\x01`;", Options{})
	// backtick strings scan like quoted strings, so \x01 is swallowed as
	// string content, not surfaced as Unknown; verify no panic and a
	// well-formed token stream instead.
	assert.Equal(t, TEOF, toks[len(toks)-1].Kind)
}

func TestTokenize_TrailingCloseTagSwitchesMode(t *testing.T) {
	toks := Tokenize("<?php echo 1; ?>after<?php echo 2;", Options{})
	kinds := kindsOf(toks)
	assert.Contains(t, kinds, TCloseTag)
	assert.Contains(t, kinds, TInlineHTML)
	assert.Contains(t, kinds, TOpenTag)
}

func TestTokenize_LexicalCoverageRoundTrip(t *testing.T) {
	src := "<?php\n$x = 1 + 2 * 3; // trailing\necho $x;\n?>\ntail html"
	toks := Tokenize(src, DefaultOptions())
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Text
	}
	assert.Equal(t, src, rebuilt)
}

func TestTokenize_TokenOrderMonotonic(t *testing.T) {
	toks := Tokenize("<?php $a = 1 + 2;", DefaultOptions())
	for i := 1; i < len(toks); i++ {
		assert.LessOrEqualf(t, toks[i-1].Span.End.Offset, toks[i].Span.Start.Offset, "token %d overlaps token %d", i-1, i)
	}
}

func kindsOf(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}
