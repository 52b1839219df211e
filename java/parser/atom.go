package parser

import "github.com/dhamidi/javaexpr/java/ast"

var literalKinds = map[TokenKind]ast.LiteralKind{
	TokenIntLiteral:    ast.LiteralInt,
	TokenFloatLiteral:  ast.LiteralFloat,
	TokenCharLiteral:   ast.LiteralChar,
	TokenStringLiteral: ast.LiteralString,
	TokenTextBlock:     ast.LiteralTextBlock,
	TokenTrue:          ast.LiteralBool,
	TokenFalse:         ast.LiteralBool,
	TokenNull:          ast.LiteralNull,
}

// atom parses a primary expression: a literal, this, super, an object or
// array creation, a parenthesized expression, a name or an unqualified call.
// Primitive type names are not expressions and fail here.
func (p *Parser) atom(in Tokens) (Tokens, ast.Expr, error) {
	tok := in.Peek()
	if kind, ok := literalKinds[tok.Kind]; ok {
		return in.Next(), &ast.Literal{Kind: kind, Value: tok.Literal, Span: tok.Span}, nil
	}

	switch tok.Kind {
	case TokenThis, TokenSuper:
		rest, w, _ := word(in)
		if rest.check(TokenLParen) {
			r, expr, err := p.invocationTail(rest, nil, w, nil)
			if err != nil {
				return in, nil, err
			}
			return r, expr, nil
		}
		if tok.Kind == TokenThis {
			return rest, &ast.This{Span: tok.Span}, nil
		}
		return rest, &ast.Super{Span: tok.Span}, nil

	case TokenNew:
		if p.isNewArray(in) {
			return p.newArray(in)
		}
		rest, expr, err := p.newObjectTail(nil, in.Next())
		if err != nil {
			return in, nil, err
		}
		return rest, expr, nil

	case TokenLParen:
		rest, inner, err := p.Expression(in.Next())
		if err != nil {
			return in, nil, err
		}
		closing := rest.Peek()
		rest, err = symbol(TokenRParen)(rest)
		if err != nil {
			return in, nil, err
		}
		return rest, &ast.Paren{Expr: inner, Span: Span{Start: tok.Span.Start, End: closing.Span.End}}, nil

	case TokenIdent:
		rest, w, _ := word(in)
		if rest.check(TokenLParen) {
			r, expr, err := p.invocationTail(rest, nil, w, nil)
			if err != nil {
				return in, nil, err
			}
			return r, expr, nil
		}
		return rest, w.(*ast.Name), nil
	}

	return in, nil, expected(in, "expression")
}
