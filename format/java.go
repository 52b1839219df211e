package format

import (
	"io"
	"strings"

	"github.com/dhamidi/javaexpr/java/ast"
)

// JavaPrinter writes expressions back as canonical Java source: no comments,
// single spaces only where the grammar needs them, and anonymous class bodies
// elided to "{...}".
type JavaPrinter struct {
	w   io.Writer
	err error
}

func NewJavaPrinter(w io.Writer) *JavaPrinter {
	return &JavaPrinter{w: w}
}

// Java renders expr as canonical source text.
func Java(expr ast.Expr) string {
	var sb strings.Builder
	NewJavaPrinter(&sb).printExpr(expr)
	return sb.String()
}

// JavaType renders a type as source text.
func JavaType(t ast.Type) string {
	var sb strings.Builder
	NewJavaPrinter(&sb).printType(t)
	return sb.String()
}

func (p *JavaPrinter) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *JavaPrinter) printExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Name:
		p.write(e.Name.Name)
	case *ast.Literal:
		p.write(e.Value)
	case *ast.FieldAccess:
		p.printExpr(e.Owner)
		p.write(".")
		p.write(e.Field.Name)
	case *ast.This:
		p.printQualifier(e.Qualifier)
		p.write("this")
	case *ast.Super:
		p.printQualifier(e.Qualifier)
		p.write("super")
	case *ast.ClassLiteral:
		p.printType(e.Type)
		p.write(".class")
	case *ast.MethodCall:
		p.printPrefix(e.Prefix)
		p.printTypeArgs(e.TypeArgs)
		p.write(e.Name.Name)
		p.printArgs(e.Args)
	case *ast.SuperConstructorCall:
		p.printPrefix(e.Prefix)
		p.printTypeArgs(e.TypeArgs)
		p.write("super")
		p.printArgs(e.Args)
	case *ast.ConstructorCall:
		p.printTypeArgs(e.TypeArgs)
		p.write("this")
		p.printArgs(e.Args)
	case *ast.NewObject:
		p.printNewObject(e)
	case *ast.NewArray:
		p.printNewArray(e)
	case *ast.ArrayAccess:
		p.printExpr(e.Array)
		p.write("[")
		p.printExpr(e.Index)
		p.write("]")
	case *ast.Paren:
		p.write("(")
		p.printExpr(e.Expr)
		p.write(")")
	}
}

func (p *JavaPrinter) printQualifier(t ast.Type) {
	if t == nil {
		return
	}
	p.printType(t)
	p.write(".")
}

func (p *JavaPrinter) printPrefix(e ast.Expr) {
	if e == nil {
		return
	}
	p.printExpr(e)
	p.write(".")
}

func (p *JavaPrinter) printNewObject(e *ast.NewObject) {
	p.printPrefix(e.Prefix)
	p.write("new ")
	if len(e.ConstructorTypeArgs) > 0 {
		p.printTypeArgs(e.ConstructorTypeArgs)
	}
	p.printType(e.Type)
	p.printArgs(e.Args)
	if e.Body != nil {
		p.write(" {...}")
	}
}

func (p *JavaPrinter) printNewArray(e *ast.NewArray) {
	p.write("new ")
	var dims []ast.Expr
	var elem ast.Type = e.Type
	for {
		at, ok := elem.(*ast.ArrayType)
		if !ok {
			break
		}
		dims = append(dims, at.Size)
		elem = at.Elem
	}
	p.printType(elem)
	for _, size := range dims {
		p.write("[")
		if size != nil {
			p.printExpr(size)
		}
		p.write("]")
	}
	if e.Init != nil {
		p.write("{...}")
	}
}

func (p *JavaPrinter) printArgs(args []ast.Expr) {
	p.write("(")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(arg)
	}
	p.write(")")
}

func (p *JavaPrinter) printTypeArgs(args []ast.Type) {
	if args == nil {
		return
	}
	p.write("<")
	for i, arg := range args {
		if i > 0 {
			p.write(", ")
		}
		p.printType(arg)
	}
	p.write(">")
}

func (p *JavaPrinter) printType(t ast.Type) {
	switch t := t.(type) {
	case *ast.PrimitiveType:
		p.write(t.Name.Name)
	case *ast.ClassType:
		if t.Prefix != nil {
			p.printType(t.Prefix)
			p.write(".")
		}
		p.write(t.Name.Name)
		p.printTypeArgs(t.TypeArgs)
	case *ast.ArrayType:
		p.printType(t.Elem)
		p.write("[")
		if t.Size != nil {
			p.printExpr(t.Size)
		}
		p.write("]")
	case *ast.Wildcard:
		p.write("?")
		if t.Bound != nil {
			if t.Super {
				p.write(" super ")
			} else {
				p.write(" extends ")
			}
			p.printType(t.Bound)
		}
	}
}

type JavaEncoder struct {
	w io.Writer
}

func NewJavaEncoder(w io.Writer) *JavaEncoder {
	return &JavaEncoder{w: w}
}

func (e *JavaEncoder) Encode(expr ast.Expr) error {
	p := NewJavaPrinter(e.w)
	p.printExpr(expr)
	p.write("\n")
	return p.err
}
