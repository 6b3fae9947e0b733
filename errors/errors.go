// Package errors defines the diagnostic taxonomy used by the parser
// and by callers presenting its diagnostics: lexical surprises, syntax
// errors, and semantic constraint violations caught at parse time. The
// lexer does not use it.
package errors

import (
	"fmt"
	"strings"

	"github.com/phpscout/phpast/lexer"
)

// ErrorType classifies a diagnostic.
type ErrorType int

const (
	SyntaxError ErrorType = iota
	LexicalError
	SemanticError
)

func (t ErrorType) String() string {
	switch t {
	case SyntaxError:
		return "Syntax Error"
	case LexicalError:
		return "Lexical Error"
	case SemanticError:
		return "Semantic Error"
	default:
		return "Error"
	}
}

// Error is a single diagnostic: a message anchored to a source span.
type Error struct {
	Type   ErrorType   `json:"type"`
	Message string     `json:"message"`
	Span   lexer.Span  `json:"span"`
	Source string      `json:"source,omitempty"`
}

func NewSyntaxError(message string, span lexer.Span) *Error {
	return &Error{Type: SyntaxError, Message: message, Span: span}
}

func NewLexicalError(message string, span lexer.Span) *Error {
	return &Error{Type: LexicalError, Message: message, Span: span}
}

func NewSemanticError(message string, span lexer.Span) *Error {
	return &Error{Type: SemanticError, Message: message, Span: span}
}

func (e *Error) String() string {
	return fmt.Sprintf("%s at line %d, column %d: %s",
		e.Type, e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

func (e *Error) Error() string { return e.String() }

// WithSource attaches the full input so PrintFormatted can render the
// offending line.
func (e *Error) WithSource(source string) *Error {
	e.Source = source
	return e
}

// PrintFormatted renders the diagnostic with a source-line excerpt and
// a column caret, when source is available.
func (e *Error) PrintFormatted() string {
	if e.Source == "" {
		return e.String()
	}
	lines := strings.Split(e.Source, "\n")
	if e.Span.Start.Line <= 0 || e.Span.Start.Line > len(lines) {
		return e.String()
	}

	var b strings.Builder
	b.WriteString(e.String())
	b.WriteString("\n")
	errorLine := lines[e.Span.Start.Line-1]
	gutter := fmt.Sprintf("  %d | ", e.Span.Start.Line)
	b.WriteString(gutter)
	b.WriteString(errorLine)
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", len(gutter)-2))
	b.WriteString("| ")
	for i := 1; i < e.Span.Start.Column; i++ {
		b.WriteString(" ")
	}
	b.WriteString("^\n")
	return b.String()
}

// List is an ordered collection of diagnostics.
type List []*Error

func (l *List) Add(err *Error) { *l = append(*l, err) }

func (l List) HasErrors() bool { return len(l) > 0 }
func (l List) Count() int      { return len(l) }

func (l List) String() string {
	var b strings.Builder
	for i, err := range l {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(err.String())
	}
	return b.String()
}

func (l List) Error() string { return l.String() }

func (l List) FilterByType(t ErrorType) List {
	var out List
	for _, err := range l {
		if err.Type == t {
			out = append(out, err)
		}
	}
	return out
}

// Reporter accumulates diagnostics during a single parse, optionally
// attaching the source text to each one for formatted output.
type Reporter struct {
	errors List
	source string
}

func NewReporter(source string) *Reporter {
	return &Reporter{source: source}
}

func (r *Reporter) Report(err *Error) {
	if r.source != "" {
		err.WithSource(r.source)
	}
	r.errors.Add(err)
}

func (r *Reporter) ReportSyntaxError(message string, span lexer.Span) {
	r.Report(NewSyntaxError(message, span))
}

func (r *Reporter) ReportSemanticError(message string, span lexer.Span) {
	r.Report(NewSemanticError(message, span))
}

func (r *Reporter) Errors() List    { return r.errors }
func (r *Reporter) HasErrors() bool { return r.errors.HasErrors() }
