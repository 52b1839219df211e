package parser

import "github.com/dhamidi/javaexpr/java/ast"

// invocation parses `<T>name(args)` after `prefix.`; in is at '<'.
func (p *Parser) invocation(in Tokens, prefix ast.Expr) (Tokens, ast.Expr, error) {
	if err := p.require(in, featureExplicitTypeArgs); err != nil {
		return in, nil, err
	}
	rest, typeArgs, err := p.typeArgs(in)
	if err != nil {
		return in, nil, err
	}
	rest, w, err := word(rest)
	if err != nil {
		return in, nil, err
	}
	if !rest.check(TokenLParen) {
		return in, nil, expected(rest, "'(' after explicit type arguments")
	}
	rest, expr, err := p.invocationTail(rest, prefix, w, typeArgs)
	if err != nil {
		return in, nil, err
	}
	return rest, expr, nil
}

// invocationTail parses the argument list of a call whose name has already
// been classified. A plain name is a method call; the keyword super is a
// superconstructor call, qualified when prefix is set; an unqualified this
// is an alternate constructor call.
func (p *Parser) invocationTail(in Tokens, prefix ast.Expr, w ast.Word, typeArgs []ast.Type) (Tokens, ast.Expr, error) {
	rest, args, err := p.arguments(in)
	if err != nil {
		return in, nil, err
	}

	if name, ok := w.(*ast.Name); ok {
		return rest, &ast.MethodCall{Prefix: prefix, TypeArgs: typeArgs, Name: name.Name, Args: args}, nil
	}

	kw := w.Ident()
	switch {
	case kw.Name == "super":
		return rest, &ast.SuperConstructorCall{Prefix: prefix, TypeArgs: typeArgs, NameSpan: kw.Span, Args: args}, nil
	case kw.Name == "this" && prefix == nil:
		return rest, &ast.ConstructorCall{TypeArgs: typeArgs, NameSpan: kw.Span, Args: args}, nil
	}
	return in, nil, failWord(w, "'%s' cannot be invoked here", kw.Name)
}

// arguments parses `(a, b, c)`. The result is never nil.
func (p *Parser) arguments(in Tokens) (Tokens, []ast.Expr, error) {
	rest, err := symbol(TokenLParen)(in)
	if err != nil {
		return in, nil, err
	}
	args := []ast.Expr{}
	if rest.check(TokenRParen) {
		return rest.Next(), args, nil
	}
	for {
		r, arg, err := p.Expression(rest)
		if err != nil {
			return in, nil, err
		}
		args = append(args, arg)
		rest = r
		if !rest.check(TokenComma) {
			break
		}
		rest = rest.Next()
	}
	rest, err = symbol(TokenRParen)(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, args, nil
}
