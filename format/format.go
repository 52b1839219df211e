// Package format renders ast trees as Java source, as an indented outline
// and as JSON.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/javaexpr/java/ast"
)

type Encoder interface {
	Encode(expr ast.Expr) error
}

// NewEncoder returns the encoder for one of the names "java", "tree" or "json".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "java":
		return NewJavaEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s (expected java, tree or json)", name)
}
