package parser

import "github.com/dhamidi/javaexpr/java/ast"

// convertToType reinterprets a dotted-name chain as the class type it spells.
// Only Name and FieldAccess chains convert; calls, indexing, literals and the
// rest cannot denote a type.
func convertToType(e ast.Expr) (*ast.ClassType, bool) {
	switch e := e.(type) {
	case *ast.Name:
		return &ast.ClassType{Name: e.Name}, true
	case *ast.FieldAccess:
		prefix, ok := convertToType(e.Owner)
		if !ok {
			return nil, false
		}
		return &ast.ClassType{Prefix: prefix, Name: e.Field}, true
	}
	return nil, false
}
