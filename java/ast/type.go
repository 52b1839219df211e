package ast

type Type interface {
	typeNode()
}

// PrimitiveType covers the eight primitive types and void.
type PrimitiveType struct {
	Name Ident
}

// ClassType is a possibly qualified, possibly parameterized class type.
// Prefix chains run outermost first, mirroring the source order: for
// `a.b.C` the result is C with prefix b with prefix a.
//
// TypeArgs is nil when no type arguments were written and an empty,
// non-nil slice for the diamond `<>`.
type ClassType struct {
	Prefix   *ClassType
	Name     Ident
	TypeArgs []Type
}

// ArrayType is Elem[]. Size is only set for dimensions of array creation
// expressions.
type ArrayType struct {
	Elem Type
	Size Expr
}

// Wildcard is `?`, `? extends Bound` or `? super Bound` in type arguments.
type Wildcard struct {
	Bound Type
	Super bool
	Span  Span
}

func (*PrimitiveType) typeNode() {}
func (*ClassType) typeNode()     {}
func (*ArrayType) typeNode()     {}
func (*Wildcard) typeNode()      {}

// Word is the result of classifying an identifier-like token: either a
// reserved *Keyword or a plain *Name.
type Word interface {
	wordNode()
	Ident() Ident
}

type Keyword struct {
	Name Ident
}

func (*Keyword) wordNode() {}
func (*Name) wordNode()    {}

func (k *Keyword) Ident() Ident { return k.Name }
func (n *Name) Ident() Ident    { return n.Name }
