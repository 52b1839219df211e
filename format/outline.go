package format

import "github.com/dhamidi/javaexpr/java/ast"

// node is the uniform shape shared by the tree and JSON renderings.
type node struct {
	Kind     string
	Text     string
	Role     string
	Span     *ast.Span
	Children []*node
}

func (n *node) add(role string, child *node) {
	if child == nil {
		return
	}
	child.Role = role
	n.Children = append(n.Children, child)
}

func (n *node) addTypes(role string, types []ast.Type) {
	for _, t := range types {
		n.add(role, outlineType(t))
	}
}

func (n *node) addExprs(role string, exprs []ast.Expr) {
	for _, e := range exprs {
		n.add(role, outlineExpr(e))
	}
}

func spanPtr(s ast.Span) *ast.Span {
	return &s
}

func outlineExpr(e ast.Expr) *node {
	switch e := e.(type) {
	case nil:
		return nil
	case *ast.Name:
		return &node{Kind: "Name", Text: e.Name.Name, Span: spanPtr(e.Name.Span)}
	case *ast.Literal:
		return &node{Kind: "Literal", Text: e.Value, Span: spanPtr(e.Span)}
	case *ast.FieldAccess:
		n := &node{Kind: "FieldAccess", Text: e.Field.Name, Span: spanPtr(e.Field.Span)}
		n.add("owner", outlineExpr(e.Owner))
		return n
	case *ast.This:
		n := &node{Kind: "This", Span: spanPtr(e.Span)}
		n.add("qualifier", outlineType(e.Qualifier))
		return n
	case *ast.Super:
		n := &node{Kind: "Super", Span: spanPtr(e.Span)}
		n.add("qualifier", outlineType(e.Qualifier))
		return n
	case *ast.ClassLiteral:
		n := &node{Kind: "ClassLiteral", Span: spanPtr(e.Span)}
		n.add("type", outlineType(e.Type))
		return n
	case *ast.MethodCall:
		n := &node{Kind: "MethodCall", Text: e.Name.Name, Span: spanPtr(e.Name.Span)}
		n.add("prefix", outlineExpr(e.Prefix))
		n.addTypes("typeArg", e.TypeArgs)
		n.addExprs("arg", e.Args)
		return n
	case *ast.SuperConstructorCall:
		n := &node{Kind: "SuperConstructorCall", Span: spanPtr(e.NameSpan)}
		n.add("prefix", outlineExpr(e.Prefix))
		n.addTypes("typeArg", e.TypeArgs)
		n.addExprs("arg", e.Args)
		return n
	case *ast.ConstructorCall:
		n := &node{Kind: "ConstructorCall", Span: spanPtr(e.NameSpan)}
		n.addTypes("typeArg", e.TypeArgs)
		n.addExprs("arg", e.Args)
		return n
	case *ast.NewObject:
		n := &node{Kind: "NewObject"}
		n.add("prefix", outlineExpr(e.Prefix))
		n.addTypes("typeArg", e.ConstructorTypeArgs)
		n.add("type", outlineType(e.Type))
		n.addExprs("arg", e.Args)
		if e.Body != nil {
			n.add("body", &node{Kind: "ClassBody", Span: spanPtr(e.Body.Span)})
		}
		return n
	case *ast.NewArray:
		n := &node{Kind: "NewArray", Span: spanPtr(e.Span)}
		n.add("type", outlineType(e.Type))
		if e.Init != nil {
			n.add("init", &node{Kind: "ArrayInit", Span: spanPtr(e.Init.Span)})
		}
		return n
	case *ast.ArrayAccess:
		n := &node{Kind: "ArrayAccess"}
		n.add("array", outlineExpr(e.Array))
		n.add("index", outlineExpr(e.Index))
		return n
	case *ast.Paren:
		n := &node{Kind: "Paren", Span: spanPtr(e.Span)}
		n.add("expr", outlineExpr(e.Expr))
		return n
	}
	return &node{Kind: "Unknown"}
}

func outlineType(t ast.Type) *node {
	switch t := t.(type) {
	case nil:
		return nil
	case *ast.PrimitiveType:
		return &node{Kind: "PrimitiveType", Text: t.Name.Name, Span: spanPtr(t.Name.Span)}
	case *ast.ClassType:
		if t == nil {
			return nil
		}
		n := &node{Kind: "ClassType", Text: t.Name.Name, Span: spanPtr(t.Name.Span)}
		if t.Prefix != nil {
			n.add("prefix", outlineType(t.Prefix))
		}
		if isDiamond(t.TypeArgs) {
			n.add("typeArg", &node{Kind: "Diamond"})
		}
		n.addTypes("typeArg", t.TypeArgs)
		return n
	case *ast.ArrayType:
		n := &node{Kind: "ArrayType"}
		n.add("elem", outlineType(t.Elem))
		n.add("size", outlineExpr(t.Size))
		return n
	case *ast.Wildcard:
		n := &node{Kind: "Wildcard", Span: spanPtr(t.Span)}
		if t.Super {
			n.Text = "super"
		} else if t.Bound != nil {
			n.Text = "extends"
		}
		n.add("bound", outlineType(t.Bound))
		return n
	}
	return &node{Kind: "Unknown"}
}

func isDiamond(args []ast.Type) bool {
	return args != nil && len(args) == 0
}
