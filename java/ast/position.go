package ast

import "fmt"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Position
	End   Position
}

type Ident struct {
	Name string
	Span Span
}
