package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/javaexpr/java/ast"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(expr ast.Expr) error {
	text, err := e.MarshalText(expr)
	if err != nil {
		return err
	}
	text = append(text, '\n')
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(expr ast.Expr) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(outlineExpr(expr)), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Role     string      `json:"role,omitempty"`
	Text     string      `json:"text,omitempty"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func nodeToJSON(n *node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Kind: n.Kind,
		Role: n.Role,
		Text: n.Text,
	}
	if n.Span != nil {
		jn.Span = &jsonSpan{
			Start: jsonPosition{Line: n.Span.Start.Line, Column: n.Span.Start.Column},
			End:   jsonPosition{Line: n.Span.End.Line, Column: n.Span.End.Column},
		}
	}
	for _, child := range n.Children {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}
	return jn
}
