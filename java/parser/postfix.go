package parser

import "github.com/dhamidi/javaexpr/java/ast"

// Expression parses a primary expression and every postfix construct after
// it. When no primary expression starts at in, as for `int.class` or
// `byte[].class`, it parses a type name instead, which must then be followed
// by `.this`, `.super` or `.class`.
//
// Dotted names are always read as expressions first and only reinterpreted
// as types once a following token proves it.
func (p *Parser) Expression(in Tokens) (Tokens, ast.Expr, error) {
	rest, left, atomErr := p.atom(in)
	if atomErr == nil {
		rest, expr, err := p.tail(left, rest)
		if err != nil {
			return in, nil, err
		}
		return rest, expr, nil
	}

	rest, t, err := p.typ(in)
	if err != nil {
		return in, nil, furthest(atomErr, err)
	}
	rest, expr, err := p.reservedAccess(t, rest)
	if err != nil {
		return in, nil, furthest(atomErr, err)
	}
	return rest, expr, nil
}

// tail resolves field accesses, calls, indexing, qualified this/super/class
// and inner object creation after left until nothing more applies.
func (p *Parser) tail(left ast.Expr, in Tokens) (Tokens, ast.Expr, error) {
	start, cur := in, in
	for {
		if _, ok := bracketPair(cur); ok {
			rest, expr, err := p.promoteArray(left, cur)
			if err != nil {
				return start, nil, err
			}
			return rest, expr, nil
		}

		rest, expr, err := p.arrayAccessTail(cur, left)
		if err != nil {
			return start, nil, err
		}
		if rest.pos > cur.pos {
			cur, left = rest, expr
			continue
		}
		if !rest.check(TokenDot) {
			return rest, expr, nil
		}

		rest, expr, err = p.dot(expr, rest.Next())
		if err != nil {
			return start, nil, err
		}
		cur, left = rest, expr
	}
}

// promoteArray handles `Name[]...` where Name must convert to a type. The
// array type is only legal here as the target of a reserved qualifier.
func (p *Parser) promoteArray(left ast.Expr, in Tokens) (Tokens, ast.Expr, error) {
	class, ok := convertToType(left)
	if !ok {
		return in, nil, fail(in, "'[]' must follow a type name")
	}
	rest, t := arrayDims(in, class)
	rest, expr, err := p.reservedAccess(t, rest)
	if err != nil {
		return in, nil, err
	}
	return rest, expr, nil
}

// dot resolves what follows `parent.`, in priority order: explicit type
// argument invocation, invocation, inner object creation, reserved
// qualifier, field access.
func (p *Parser) dot(parent ast.Expr, in Tokens) (Tokens, ast.Expr, error) {
	if in.check(TokenLT) {
		return p.invocation(in, parent)
	}

	rest, w, err := word(in)
	if err != nil {
		return in, nil, err
	}

	if rest.check(TokenLParen) {
		rest, expr, err := p.invocationTail(rest, parent, w, nil)
		if err != nil {
			return in, nil, err
		}
		return rest, expr, nil
	}

	kw, ok := w.(*ast.Keyword)
	if !ok {
		return rest, &ast.FieldAccess{Owner: parent, Field: w.Ident()}, nil
	}

	if kw.Name.Name == "new" {
		rest, expr, err := p.newObjectTail(parent, rest)
		if err != nil {
			return in, nil, err
		}
		return rest, expr, nil
	}

	if !isReservedQualifier(kw) {
		return in, nil, failWord(kw, "unexpected keyword '%s' after '.'", kw.Name.Name)
	}
	class, ok := convertToType(parent)
	if !ok {
		return in, nil, failWord(kw, "'.%s' must follow a type name", kw.Name.Name)
	}
	expr, err := reserved(class, kw)
	if err != nil {
		return in, nil, err
	}
	return rest, expr, nil
}

// reservedAccess parses `.this`, `.super` or `.class` after the type t and
// resolves the tail of the result.
func (p *Parser) reservedAccess(t ast.Type, in Tokens) (Tokens, ast.Expr, error) {
	rest, err := symbol(TokenDot)(in)
	if err != nil {
		return in, nil, expected(in, "'.class' after type")
	}
	rest, w, err := word(rest)
	if err != nil {
		return in, nil, err
	}
	kw, ok := w.(*ast.Keyword)
	if !ok {
		return in, nil, failWord(w, "expected this, super or class after type, got %q", w.Ident().Name)
	}
	expr, err := reserved(t, kw)
	if err != nil {
		return in, nil, err
	}
	rest, expr, err = p.tail(expr, rest)
	if err != nil {
		return in, nil, err
	}
	return rest, expr, nil
}

func isReservedQualifier(kw *ast.Keyword) bool {
	switch kw.Name.Name {
	case "this", "super", "class":
		return true
	}
	return false
}

// reserved builds the node for a reserved qualifier. t is nil only for an
// unqualified this or super.
func reserved(t ast.Type, kw *ast.Keyword) (ast.Expr, error) {
	span := kw.Name.Span
	switch kw.Name.Name {
	case "this":
		return &ast.This{Qualifier: t, Span: span}, nil
	case "super":
		return &ast.Super{Qualifier: t, Span: span}, nil
	case "class":
		if t != nil {
			return &ast.ClassLiteral{Type: t, Span: span}, nil
		}
	}
	return nil, failWord(kw, "'%s' is not a valid reserved field access", kw.Name.Name)
}
