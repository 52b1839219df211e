package parser

import "github.com/dhamidi/javaexpr/java/ast"

// typ parses a primitive or class type followed by any number of `[]`.
func (p *Parser) typ(in Tokens) (Tokens, ast.Type, error) {
	var t ast.Type
	rest := in
	if tok := in.Peek(); tok.Kind.IsPrimitive() {
		rest, t = in.Next(), &ast.PrimitiveType{Name: tok.Ident()}
	} else {
		r, class, err := p.classType(in, false)
		if err != nil {
			return in, nil, err
		}
		rest, t = r, class
	}
	rest, t = arrayDims(rest, t)
	return rest, t, nil
}

// arrayDims wraps t in one ArrayType per `[]` pair that follows.
func arrayDims(in Tokens, t ast.Type) (Tokens, ast.Type) {
	for {
		rest, ok := bracketPair(in)
		if !ok {
			return in, t
		}
		in, t = rest, &ast.ArrayType{Elem: t}
	}
}

func bracketPair(in Tokens) (Tokens, bool) {
	rest, err := symbol(TokenLBracket)(in)
	if err != nil {
		return in, false
	}
	rest, err = symbol(TokenRBracket)(rest)
	if err != nil {
		return in, false
	}
	return rest, true
}

// classType parses `a.b.C<T>.D<U>`. With diamond set the last segment may
// carry an empty `<>`.
func (p *Parser) classType(in Tokens, diamond bool) (Tokens, *ast.ClassType, error) {
	rest, name, err := identifier(in)
	if err != nil {
		return in, nil, err
	}
	var t *ast.ClassType
	for {
		r, args, err := p.optionalTypeArgs(rest, diamond)
		if err != nil {
			return in, nil, err
		}
		t = &ast.ClassType{Prefix: t, Name: name, TypeArgs: args}
		rest = r
		if !rest.check(TokenDot) || rest.PeekN(1).Kind != TokenIdent {
			break
		}
		if isDiamond(args) {
			return in, nil, fail(rest, "diamond must be on the last type name")
		}
		rest, name, _ = identifier(rest.Next())
	}
	return rest, t, nil
}

func isDiamond(args []ast.Type) bool {
	return args != nil && len(args) == 0
}

func (p *Parser) optionalTypeArgs(in Tokens, diamond bool) (Tokens, []ast.Type, error) {
	if !in.check(TokenLT) {
		return in, nil, nil
	}
	if diamond && in.PeekN(1).Kind == TokenGT {
		return in.Next().Next(), []ast.Type{}, nil
	}
	return p.typeArgs(in)
}

// typeArgs parses `<A, ? extends B, C[]>`.
func (p *Parser) typeArgs(in Tokens) (Tokens, []ast.Type, error) {
	rest, err := symbol(TokenLT)(in)
	if err != nil {
		return in, nil, err
	}
	var args []ast.Type
	for {
		r, arg, err := p.typeArg(rest)
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
	rest, err = closeAngle(rest)
	if err != nil {
		return in, nil, err
	}
	return rest, args, nil
}

func (p *Parser) typeArg(in Tokens) (Tokens, ast.Type, error) {
	if !in.check(TokenQuestion) {
		return p.typ(in)
	}
	q := in.Peek()
	rest := in.Next()
	w := &ast.Wildcard{Span: q.Span}
	if rest.check(TokenExtends) || rest.check(TokenSuper) {
		w.Super = rest.check(TokenSuper)
		r, bound, err := p.typ(rest.Next())
		if err != nil {
			return in, nil, err
		}
		rest, w.Bound = r, bound
	}
	return rest, w, nil
}
