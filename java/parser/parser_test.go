package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/javaexpr/format"
	"github.com/dhamidi/javaexpr/java/ast"
)

func span(col, n int) ast.Span {
	return ast.Span{
		Start: ast.Position{Offset: col - 1, Line: 1, Column: col},
		End:   ast.Position{Offset: col - 1 + n, Line: 1, Column: col + n},
	}
}

func id(col int, name string) ast.Ident {
	return ast.Ident{Name: name, Span: span(col, len(name))}
}

func name(col int, n string) *ast.Name {
	return &ast.Name{Name: id(col, n)}
}

func parse(t *testing.T, input string, opts ...Option) ast.Expr {
	t.Helper()
	expr, err := ParseExpression(strings.NewReader(input), opts...).Finish()
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return expr
}

func parseError(t *testing.T, input string, opts ...Option) *Error {
	t.Helper()
	expr, err := ParseExpression(strings.NewReader(input), opts...).Finish()
	if err == nil {
		t.Fatalf("parse %q: expected error, got\n%s", input, format.Tree(expr))
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("parse %q: expected *Error, got %T: %v", input, err, err)
	}
	return perr
}

func TestParseExpressionStructure(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.Expr
	}{
		{
			input: "a.new Test()",
			expected: &ast.NewObject{
				Prefix: name(1, "a"),
				Type:   &ast.ClassType{Name: id(7, "Test")},
				Args:   []ast.Expr{},
			},
		},
		{
			input: "test.super()",
			expected: &ast.SuperConstructorCall{
				Prefix:   name(1, "test"),
				NameSpan: span(6, 5),
				Args:     []ast.Expr{},
			},
		},
		{
			input: "Parent.Test.this.super()",
			expected: &ast.SuperConstructorCall{
				Prefix: &ast.This{
					Qualifier: &ast.ClassType{
						Prefix: &ast.ClassType{Name: id(1, "Parent")},
						Name:   id(8, "Test"),
					},
					Span: span(13, 4),
				},
				NameSpan: span(18, 5),
				Args:     []ast.Expr{},
			},
		},
		{
			input: "Parent.Test.super.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.Super{
					Qualifier: &ast.ClassType{
						Prefix: &ast.ClassType{Name: id(1, "Parent")},
						Name:   id(8, "Test"),
					},
					Span: span(13, 5),
				},
				Name: id(19, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "Parent.Test.this.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.This{
					Qualifier: &ast.ClassType{
						Prefix: &ast.ClassType{Name: id(1, "Parent")},
						Name:   id(8, "Test"),
					},
					Span: span(13, 4),
				},
				Name: id(18, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "Parent.Test.class.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.ClassLiteral{
					Type: &ast.ClassType{
						Prefix: &ast.ClassType{Name: id(1, "Parent")},
						Name:   id(8, "Test"),
					},
					Span: span(13, 5),
				},
				Name: id(19, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "Test.class.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.ClassLiteral{
					Type: &ast.ClassType{Name: id(1, "Test")},
					Span: span(6, 5),
				},
				Name: id(12, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "char.class.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.ClassLiteral{
					Type: &ast.PrimitiveType{Name: id(1, "char")},
					Span: span(6, 5),
				},
				Name: id(12, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "byte[].class.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.ClassLiteral{
					Type: &ast.ArrayType{Elem: &ast.PrimitiveType{Name: id(1, "byte")}},
					Span: span(8, 5),
				},
				Name: id(14, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "Parent.Test[].class.hashCode()",
			expected: &ast.MethodCall{
				Prefix: &ast.ClassLiteral{
					Type: &ast.ArrayType{Elem: &ast.ClassType{
						Prefix: &ast.ClassType{Name: id(1, "Parent")},
						Name:   id(8, "Test"),
					}},
					Span: span(15, 5),
				},
				Name: id(21, "hashCode"),
				Args: []ast.Expr{},
			},
		},
		{
			input: "Test[].class",
			expected: &ast.ClassLiteral{
				Type: &ast.ArrayType{Elem: &ast.ClassType{Name: id(1, "Test")}},
				Span: span(8, 5),
			},
		},
		{
			input: "int[][].class",
			expected: &ast.ClassLiteral{
				Type: &ast.ArrayType{Elem: &ast.ArrayType{Elem: &ast.PrimitiveType{Name: id(1, "int")}}},
				Span: span(9, 5),
			},
		},
		{
			input: "this.field",
			expected: &ast.FieldAccess{
				Owner: &ast.This{Span: span(1, 4)},
				Field: id(6, "field"),
			},
		},
		{
			input: "super.field",
			expected: &ast.FieldAccess{
				Owner: &ast.Super{Span: span(1, 5)},
				Field: id(7, "field"),
			},
		},
		{
			input:    "this(1)",
			expected: &ast.ConstructorCall{NameSpan: span(1, 4), Args: []ast.Expr{&ast.Literal{Kind: ast.LiteralInt, Value: "1", Span: span(6, 1)}}},
		},
		{
			input: "a.b[0].c",
			expected: &ast.FieldAccess{
				Owner: &ast.ArrayAccess{
					Array: &ast.FieldAccess{Owner: name(1, "a"), Field: id(3, "b")},
					Index: &ast.Literal{Kind: ast.LiteralInt, Value: "0", Span: span(5, 1)},
				},
				Field: id(8, "c"),
			},
		},
		{
			input: "m[i][j]",
			expected: &ast.ArrayAccess{
				Array: &ast.ArrayAccess{Array: name(1, "m"), Index: name(3, "i")},
				Index: name(6, "j"),
			},
		},
		{
			input: "x.<T>foo()",
			expected: &ast.MethodCall{
				Prefix:   name(1, "x"),
				TypeArgs: []ast.Type{&ast.ClassType{Name: id(4, "T")}},
				Name:     id(6, "foo"),
				Args:     []ast.Expr{},
			},
		},
		{
			input: "(a).b",
			expected: &ast.FieldAccess{
				Owner: &ast.Paren{Expr: name(2, "a"), Span: span(1, 3)},
				Field: id(5, "b"),
			},
		},
		{
			input: "foo(\"s\", null, true)",
			expected: &ast.MethodCall{
				Name: id(1, "foo"),
				Args: []ast.Expr{
					&ast.Literal{Kind: ast.LiteralString, Value: `"s"`, Span: span(5, 3)},
					&ast.Literal{Kind: ast.LiteralNull, Value: "null", Span: span(10, 4)},
					&ast.Literal{Kind: ast.LiteralBool, Value: "true", Span: span(16, 4)},
				},
			},
		},
		{
			input: "new int[3][]",
			expected: &ast.NewArray{
				Type: &ast.ArrayType{
					Elem: &ast.ArrayType{Elem: &ast.PrimitiveType{Name: id(5, "int")}},
					Size: &ast.Literal{Kind: ast.LiteralInt, Value: "3", Span: span(9, 1)},
				},
				Span: span(1, 12),
			},
		},
		{
			input: "new int[]{1, 2}",
			expected: &ast.NewArray{
				Type: &ast.ArrayType{Elem: &ast.PrimitiveType{Name: id(5, "int")}},
				Init: &ast.ArrayInit{Span: span(10, 6), Tokens: 3},
				Span: span(1, 15),
			},
		},
		{
			input: "new String[][]{{\"a\"}, {}}",
			expected: &ast.NewArray{
				Type: &ast.ArrayType{
					Elem: &ast.ArrayType{Elem: &ast.ClassType{Name: id(5, "String")}},
				},
				Init: &ast.ArrayInit{Span: span(15, 11), Tokens: 6},
				Span: span(1, 25),
			},
		},
		{
			input: "new ArrayList<>()",
			expected: &ast.NewObject{
				Type: &ast.ClassType{Name: id(5, "ArrayList"), TypeArgs: []ast.Type{}},
				Args: []ast.Expr{},
			},
		},
		{
			input: "new Runnable() { public void run() { x(); } }",
			expected: &ast.NewObject{
				Type: &ast.ClassType{Name: id(5, "Runnable")},
				Args: []ast.Expr{},
				Body: &ast.ClassBody{Span: span(16, 30), Tokens: 11},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parse(t, tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got:\n%s\nexpected:\n%s", format.TreeWithPositions(got), format.TreeWithPositions(tt.expected))
			}
		})
	}
}

func TestParseExpressionRoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a.b.c", "a.b.c"},
		{"a . b . c ( )", "a.b.c()"},
		{"Outer.this.new Inner(1, 2)", "Outer.this.new Inner(1, 2)"},
		{"x.<String, Integer>pair(a, b)", "x.<String, Integer>pair(a, b)"},
		{"Collections.<List<String>>emptyList()", "Collections.<List<String>>emptyList()"},
		{"x.<Map<K, List<V>>>get()", "x.<Map<K, List<V>>>get()"},
		{"new HashMap<String, List<? extends Number>>()", "new HashMap<String, List<? extends Number>>()"},
		{"new Foo<? super T>()", "new Foo<? super T>()"},
		{"new <T>Foo()", "new <T>Foo()"},
		{"new java.util.ArrayList<>()", "new java.util.ArrayList<>()"},
		{"new String[n][m][]", "new String[n][m][]"},
		{"new int[][]{{1}, {2, 3}}", "new int[][]{...}"},
		{"a[i].b()[0]", "a[i].b()[0]"},
		{"foo().bar.baz()", "foo().bar.baz()"},
		{"java.lang.String.class", "java.lang.String.class"},
		{"void.class", "void.class"},
		{"new Object() {}", "new Object() {...}"},
		{"int.class.getName().length()", "int.class.getName().length()"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := format.Java(parse(t, tt.input))
			if got != tt.expected {
				t.Errorf("got %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		input      string
		message    string
		column     int
		incomplete bool
	}{
		{"foo().this", "'.this' must follow a type name", 7, false},
		{"a[0].class", "'.class' must follow a type name", 6, false},
		{"(a).this", "'.this' must follow a type name", 5, false},
		{"a[0][]", "'[]' must follow a type name", 5, false},
		{"foo()[]", "'[]' must follow a type name", 6, false},
		{"a.if", "unexpected keyword 'if' after '.'", 3, false},
		{"x.this()", "'this' cannot be invoked here", 3, false},
		{"a.class()", "'class' cannot be invoked here", 3, false},
		{"int", "expected '.class' after type, got end of input", 4, true},
		{"int.foo", `expected this, super or class after type, got "foo"`, 5, false},
		{"a.", "expected identifier, got end of input", 3, true},
		{"foo(1,", "expected expression, got end of input", 7, true},
		{"a b", `unexpected identifier "b" after expression`, 3, false},
		{"new int[]", "array creation needs a dimension size or an initializer", 8, false},
		{"new int[]{1", "expected '}' closing array initializer, got end of input", 12, true},
		{"x.<T>foo", "expected '(' after explicit type arguments, got end of input", 9, true},
		{"new Foo<>.Bar()", "diamond must be on the last type name", 10, false},
		{"", "expected expression, got end of input", 1, true},
		{"new Runnable() {", "expected '}' closing class body, got end of input", 17, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := parseError(t, tt.input)
			if err.Message != tt.message {
				t.Errorf("message: got %q, expected %q", err.Message, tt.message)
			}
			if err.Got.Span.Start.Column != tt.column {
				t.Errorf("column: got %d, expected %d", err.Got.Span.Start.Column, tt.column)
			}
			if err.Incomplete() != tt.incomplete {
				t.Errorf("incomplete: got %v, expected %v", err.Incomplete(), tt.incomplete)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	err := parseError(t, "x.if", WithFile("x.jexpr"))
	if got, want := err.Error(), "x.jexpr:1:3: unexpected keyword 'if' after '.'"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}

	err = parseError(t, "a.\n  if", WithFile("y.jexpr"), WithStartLine(10))
	if got, want := err.Error(), "y.jexpr:11:3: unexpected keyword 'if' after '.'"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestSourceLevels(t *testing.T) {
	tests := []struct {
		input string
		level string
		ok    bool
	}{
		{"new ArrayList<>()", "6", false},
		{"new ArrayList<>()", "1.7", true},
		{"new ArrayList<>()", "7", true},
		{"new ArrayList<>() {}", "8", false},
		{"new ArrayList<>() {}", "9", true},
		{"new ArrayList<String>() {}", "1.4", true},
		{"x.<T>f()", "1.4", false},
		{"x.<T>f()", "1.5", true},
		{"x.<T>f()", "", false},
		{"x", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.input+"@"+tt.level, func(t *testing.T) {
			_, err := ParseExpression(strings.NewReader(tt.input), WithSourceLevel(tt.level)).Finish()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("expected error at source level %q", tt.level)
			}
		})
	}
}

func TestSourceLevelMessage(t *testing.T) {
	err := parseError(t, "new ArrayList<>()", WithSourceLevel("1.6"))
	want := "diamond operator requires source level 7 or later (have 1.6)"
	if err.Message != want {
		t.Errorf("got %q, expected %q", err.Message, want)
	}
	if err.Got.Span.Start.Column != 5 {
		t.Errorf("column: got %d, expected 5", err.Got.Span.Start.Column)
	}
}

func TestInvalidSourceLevel(t *testing.T) {
	_, err := NewGrammar(WithSourceLevel("abc"))
	if err == nil || !strings.Contains(err.Error(), `invalid source level "abc"`) {
		t.Fatalf("expected invalid source level error, got %v", err)
	}
}

func TestFailureReturnsInputCursor(t *testing.T) {
	p, err := NewGrammar()
	if err != nil {
		t.Fatal(err)
	}
	for _, input := range []string{"foo().this", "a.if", "int", "new int[]", "x.<T>foo"} {
		t.Run(input, func(t *testing.T) {
			in := p.Tokenize([]byte(input))
			rest, expr, err := p.Expression(in)
			if err == nil {
				t.Fatalf("expected error, got %s", format.Java(expr))
			}
			if expr != nil {
				t.Errorf("expected nil expression on failure")
			}
			if rest.pos != in.pos || rest.head != in.head {
				t.Errorf("cursor moved from %d to %d", in.pos, rest.pos)
			}
		})
	}
}

func TestTailIsIdempotent(t *testing.T) {
	p, err := NewGrammar()
	if err != nil {
		t.Fatal(err)
	}
	in := p.Tokenize([]byte("a.b(c).d"))
	rest, expr, err := p.Expression(in)
	if err != nil {
		t.Fatal(err)
	}
	again, expr2, err := p.tail(expr, rest)
	if err != nil {
		t.Fatal(err)
	}
	if again.pos != rest.pos || expr2 != expr {
		t.Errorf("tail on a finished expression changed it: %s", format.Java(expr2))
	}
}

func TestExpressionStopsBeforeUnrelatedTokens(t *testing.T) {
	p, err := NewGrammar()
	if err != nil {
		t.Fatal(err)
	}
	in := p.Tokenize([]byte("a.b + c"))
	rest, expr, err := p.Expression(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := format.Java(expr); got != "a.b" {
		t.Errorf("got %q, expected a.b", got)
	}
	if tok := rest.Peek(); tok.Kind != TokenOperator || tok.Literal != "+" {
		t.Errorf("expected cursor at '+', got %s", rest.Peek().Kind)
	}
	if rest.Remaining() != 2 {
		t.Errorf("expected 2 remaining tokens, got %d", rest.Remaining())
	}
}

func TestCloseAngleSplitsShift(t *testing.T) {
	tests := []struct {
		input     string
		remainder TokenKind
		literal   string
		column    int
	}{
		{">>", TokenGT, ">", 2},
		{">>>", TokenShr, ">>", 2},
		{">=", TokenAssign, "=", 2},
		{">>=", TokenGE, ">=", 2},
		{">>>=", TokenShrAssign, ">>=", 2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			in := NewTokens(NewLexer([]byte(tt.input), "").Tokenize())
			rest, err := closeAngle(in)
			if err != nil {
				t.Fatal(err)
			}
			head := rest.Peek()
			if head.Kind != tt.remainder || head.Literal != tt.literal || head.Span.Start.Column != tt.column {
				t.Errorf("got %s %q at %d", head.Kind, head.Literal, head.Span.Start.Column)
			}
			if !rest.Next().AtEOF() {
				t.Errorf("expected EOF after remainder")
			}
		})
	}
}

func TestWildcards(t *testing.T) {
	expr := parse(t, "x.<List<?>>f()")
	call, ok := expr.(*ast.MethodCall)
	if !ok {
		t.Fatalf("expected *ast.MethodCall, got %T", expr)
	}
	list := call.TypeArgs[0].(*ast.ClassType)
	w, ok := list.TypeArgs[0].(*ast.Wildcard)
	if !ok {
		t.Fatalf("expected wildcard, got %T", list.TypeArgs[0])
	}
	if w.Bound != nil || w.Super {
		t.Errorf("expected unbounded wildcard, got %+v", w)
	}
}
