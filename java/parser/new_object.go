package parser

import "github.com/dhamidi/javaexpr/java/ast"

// newObjectTail parses a class instance creation after the `new` keyword.
// prefix is the enclosing instance of `outer.new Inner()`, or nil.
func (p *Parser) newObjectTail(prefix ast.Expr, in Tokens) (Tokens, ast.Expr, error) {
	rest := in
	var ctorTypeArgs []ast.Type
	if rest.check(TokenLT) {
		r, args, err := p.typeArgs(rest)
		if err != nil {
			return in, nil, err
		}
		rest, ctorTypeArgs = r, args
	}

	typeStart := rest
	rest, class, err := p.classType(rest, true)
	if err != nil {
		return in, nil, err
	}
	diamond := isDiamond(class.TypeArgs)
	if diamond {
		if err := p.require(typeStart, featureDiamond); err != nil {
			return in, nil, err
		}
	}

	rest, args, err := p.arguments(rest)
	if err != nil {
		return in, nil, err
	}

	var body *ast.ClassBody
	if rest.check(TokenLBrace) {
		if diamond {
			if err := p.require(typeStart, featureAnonymousDiamond); err != nil {
				return in, nil, err
			}
		}
		rest, body, err = classBody(rest)
		if err != nil {
			return in, nil, err
		}
	}

	return rest, &ast.NewObject{
		Prefix:              prefix,
		Type:                class,
		ConstructorTypeArgs: ctorTypeArgs,
		Args:                args,
		Body:                body,
	}, nil
}

// classBody skims a brace-balanced anonymous class body.
func classBody(in Tokens) (Tokens, *ast.ClassBody, error) {
	rest, span, count, err := braces(in, "class body")
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ClassBody{Span: span, Tokens: count}, nil
}

// arrayInit skims the `{...}` initializer of `new T[]{...}`.
func arrayInit(in Tokens) (Tokens, *ast.ArrayInit, error) {
	rest, span, count, err := braces(in, "array initializer")
	if err != nil {
		return in, nil, err
	}
	return rest, &ast.ArrayInit{Span: span, Tokens: count}, nil
}

// braces consumes a balanced `{` ... `}` group and counts the tokens
// between the outer braces.
func braces(in Tokens, what string) (Tokens, Span, int, error) {
	open := in.Peek()
	rest := in.Next()
	depth, count := 1, 0
	for {
		tok := rest.Peek()
		switch tok.Kind {
		case TokenEOF:
			return in, Span{}, 0, expected(rest, "'}' closing "+what)
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
			if depth == 0 {
				return rest.Next(), Span{Start: open.Span.Start, End: tok.Span.End}, count, nil
			}
		}
		count++
		rest = rest.Next()
	}
}

// isNewArray looks past `new` for an element type followed by '['.
func (p *Parser) isNewArray(in Tokens) bool {
	rest := in.Next()
	if rest.Peek().Kind.IsPrimitive() {
		return true
	}
	rest, _, err := p.classType(rest, false)
	return err == nil && rest.check(TokenLBracket)
}

// newArray parses `new T[a][b][]` or `new T[][]{...}`. Without a sized
// dimension the initializer is required; with one it is not allowed.
func (p *Parser) newArray(in Tokens) (Tokens, ast.Expr, error) {
	start := in.Peek().Span.Start
	rest := in.Next()

	var elem ast.Type
	if tok := rest.Peek(); tok.Kind.IsPrimitive() {
		rest, elem = rest.Next(), &ast.PrimitiveType{Name: tok.Ident()}
	} else {
		r, class, err := p.classType(rest, false)
		if err != nil {
			return in, nil, err
		}
		rest, elem = r, class
	}

	var sizes []ast.Expr
	var end Position
	for rest.check(TokenLBracket) && rest.PeekN(1).Kind != TokenRBracket {
		r, size, err := p.Expression(rest.Next())
		if err != nil {
			return in, nil, err
		}
		end = r.Peek().Span.End
		r, err = symbol(TokenRBracket)(r)
		if err != nil {
			return in, nil, err
		}
		rest, sizes = r, append(sizes, size)
	}
	dims := rest
	t := elem
	for {
		r, ok := bracketPair(rest)
		if !ok {
			break
		}
		end = rest.PeekN(1).Span.End
		rest, t = r, &ast.ArrayType{Elem: t}
	}

	var values *ast.ArrayInit
	if len(sizes) == 0 {
		if t == elem || !rest.check(TokenLBrace) {
			return in, nil, fail(dims, "array creation needs a dimension size or an initializer")
		}
		r, ai, err := arrayInit(rest)
		if err != nil {
			return in, nil, err
		}
		rest, values, end = r, ai, ai.Span.End
	}
	for i := len(sizes) - 1; i >= 0; i-- {
		t = &ast.ArrayType{Elem: t, Size: sizes[i]}
	}

	return rest, &ast.NewArray{Type: t.(*ast.ArrayType), Init: values, Span: Span{Start: start, End: end}}, nil
}
