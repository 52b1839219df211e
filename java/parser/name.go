package parser

import "github.com/dhamidi/javaexpr/java/ast"

// word classifies the next token as a reserved *ast.Keyword or a plain
// *ast.Name. Tokens that are neither fail.
func word(in Tokens) (Tokens, ast.Word, error) {
	tok := in.Peek()
	switch {
	case tok.Kind == TokenIdent:
		return in.Next(), &ast.Name{Name: tok.Ident()}, nil
	case tok.Kind.IsReserved():
		return in.Next(), &ast.Keyword{Name: tok.Ident()}, nil
	}
	return in, nil, expected(in, "identifier")
}

func identifier(in Tokens) (Tokens, ast.Ident, error) {
	tok := in.Peek()
	if tok.Kind != TokenIdent {
		return in, ast.Ident{}, expected(in, "identifier")
	}
	return in.Next(), tok.Ident(), nil
}
