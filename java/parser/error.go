package parser

import (
	"fmt"

	"github.com/dhamidi/javaexpr/java/ast"
)

// Error is the failure value returned by every parse function. Got is the
// token at which the attempt stopped matching; the cursor returned alongside
// the error is always the one the attempt started from.
type Error struct {
	Message string
	Got     Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Got.Span.Start, e.Message)
}

// Incomplete reports whether the input ended before the construct did.
func (e *Error) Incomplete() bool {
	return e.Got.Kind == TokenEOF
}

func fail(in Tokens, format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Got: in.Peek()}
}

func expected(in Tokens, what string) *Error {
	return fail(in, "expected %s, got %s", what, describe(in.Peek()))
}

func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenIdent:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case TokenIntLiteral, TokenFloatLiteral, TokenCharLiteral, TokenStringLiteral, TokenTextBlock:
		return fmt.Sprintf("literal %s", tok.Literal)
	}
	return fmt.Sprintf("'%s'", tok.Literal)
}

// failWord reports an error at an already classified word.
func failWord(w ast.Word, format string, args ...any) *Error {
	id := w.Ident()
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Got:     Token{Kind: LookupKeyword(id.Name), Span: id.Span, Literal: id.Name},
	}
}

// furthest picks the error that got further into the input, so a failed
// alternative that consumed more reports its own diagnostic.
func furthest(a, b error) error {
	ea, okA := a.(*Error)
	eb, okB := b.(*Error)
	if !okA || !okB {
		return a
	}
	if eb.Got.Span.Start.Offset > ea.Got.Span.Start.Offset {
		return b
	}
	return a
}
