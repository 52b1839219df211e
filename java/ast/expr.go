// Package ast defines the expression and type trees produced by the parser.
//
// Expr and Type are closed sum types: every variant is a pointer to a struct
// in this package, and the interfaces carry unexported marker methods so no
// other package can add variants. Consumers switch on the concrete type.
//
// Nodes are built once while parsing and never modified afterwards. Every
// child is owned by exactly one parent; trees contain no sharing or cycles.
package ast

type Expr interface {
	exprNode()
}

// Name is a bare identifier used as an expression.
type Name struct {
	Name Ident
}

type FieldAccess struct {
	Owner Expr
	Field Ident
}

// This is `this`, or `Outer.this` when Qualifier is set.
type This struct {
	Qualifier Type
	Span      Span
}

// Super is `super`, or `Outer.super` when Qualifier is set.
type Super struct {
	Qualifier Type
	Span      Span
}

// ClassLiteral is `T.class`. Type is never nil.
type ClassLiteral struct {
	Type Type
	Span Span
}

type MethodCall struct {
	Prefix   Expr
	TypeArgs []Type
	Name     Ident
	Args     []Expr
}

// SuperConstructorCall is `super(...)` or `prefix.super(...)`.
type SuperConstructorCall struct {
	Prefix   Expr
	TypeArgs []Type
	NameSpan Span
	Args     []Expr
}

// ConstructorCall is an unqualified `this(...)`.
type ConstructorCall struct {
	TypeArgs []Type
	NameSpan Span
	Args     []Expr
}

// NewObject is `new T(...)`, or `outer.new T(...)` when Prefix is set.
type NewObject struct {
	Prefix              Expr
	Type                *ClassType
	ConstructorTypeArgs []Type
	Args                []Expr
	Body                *ClassBody
}

// ClassBody is the body of an anonymous class. Members are not parsed;
// Tokens counts the tokens between the braces.
type ClassBody struct {
	Span   Span
	Tokens int
}

// NewArray is `new T[n]...` or `new T[]{...}`. Type.Size holds the
// outermost dimension when one is given; Init is set otherwise.
type NewArray struct {
	Type *ArrayType
	Init *ArrayInit
	Span Span
}

// ArrayInit is a skimmed array initializer, like ClassBody.
type ArrayInit struct {
	Span   Span
	Tokens int
}

type ArrayAccess struct {
	Array Expr
	Index Expr
}

type Paren struct {
	Expr Expr
	Span Span
}

type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralChar
	LiteralString
	LiteralTextBlock
	LiteralBool
	LiteralNull
)

var literalKindNames = map[LiteralKind]string{
	LiteralInt:       "int",
	LiteralFloat:     "float",
	LiteralChar:      "char",
	LiteralString:    "string",
	LiteralTextBlock: "textblock",
	LiteralBool:      "boolean",
	LiteralNull:      "null",
}

func (k LiteralKind) String() string {
	if name, ok := literalKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Literal keeps the literal exactly as written, quotes and suffixes included.
type Literal struct {
	Kind  LiteralKind
	Value string
	Span  Span
}

func (*Name) exprNode()                 {}
func (*FieldAccess) exprNode()          {}
func (*This) exprNode()                 {}
func (*Super) exprNode()                {}
func (*ClassLiteral) exprNode()         {}
func (*MethodCall) exprNode()           {}
func (*SuperConstructorCall) exprNode() {}
func (*ConstructorCall) exprNode()      {}
func (*NewObject) exprNode()            {}
func (*NewArray) exprNode()             {}
func (*ArrayAccess) exprNode()          {}
func (*Paren) exprNode()                {}
func (*Literal) exprNode()              {}
