package parser

import "github.com/dhamidi/javaexpr/java/ast"

// arrayAccessTail applies every `[index]` that follows base. It leaves the
// cursor alone when no index follows, and never consumes an empty `[]`.
func (p *Parser) arrayAccessTail(in Tokens, base ast.Expr) (Tokens, ast.Expr, error) {
	rest, expr := in, base
	for rest.check(TokenLBracket) && rest.PeekN(1).Kind != TokenRBracket {
		r, index, err := p.Expression(rest.Next())
		if err != nil {
			return in, nil, err
		}
		r, err = symbol(TokenRBracket)(r)
		if err != nil {
			return in, nil, err
		}
		rest, expr = r, &ast.ArrayAccess{Array: expr, Index: index}
	}
	return rest, expr, nil
}
