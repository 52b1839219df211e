package format

import (
	"io"
	"strings"

	"github.com/dhamidi/javaexpr/java/ast"
)

// Tree renders expr as an indented outline, one node per line. Children are
// labelled with the role they play in their parent:
//
//	MethodCall hashCode
//	  prefix: ClassLiteral
//	    type: PrimitiveType char
func Tree(expr ast.Expr) string {
	var sb strings.Builder
	writeTree(&sb, outlineExpr(expr), 0, false)
	return sb.String()
}

// TreeWithPositions is Tree with each node's source span appended.
func TreeWithPositions(expr ast.Expr) string {
	var sb strings.Builder
	writeTree(&sb, outlineExpr(expr), 0, true)
	return sb.String()
}

func writeTree(sb *strings.Builder, n *node, indent int, showPositions bool) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", indent))
	if n.Role != "" {
		sb.WriteString(n.Role + ": ")
	}
	sb.WriteString(n.Kind)
	if n.Text != "" {
		sb.WriteString(" " + n.Text)
	}
	if showPositions && n.Span != nil {
		sb.WriteString(" [" + n.Span.Start.String() + "-" + n.Span.End.String() + "]")
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		writeTree(sb, child, indent+1, showPositions)
	}
}

type TreeEncoder struct {
	w io.Writer
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(expr ast.Expr) error {
	_, err := io.WriteString(e.w, Tree(expr))
	return err
}
