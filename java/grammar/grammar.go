// Package grammar carries the EBNF description of the expression language
// accepted by java/parser and checks EBNF grammar files.
package grammar

import (
	_ "embed"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Start is the production every expression is parsed from.
const Start = "Expression"

//go:embed expression.ebnf
var source string

// Source returns the grammar text.
func Source() string {
	return source
}

// Load parses and verifies the built-in grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("expression.ebnf", strings.NewReader(source))
	if err != nil {
		return nil, err
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, err
	}
	return g, nil
}

// Check parses the grammar in r and, when start is non-empty, verifies that
// every production is defined and reachable from start.
func Check(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, err
	}
	return g, nil
}

// Errors flattens the error lists returned by ebnf.Parse and ebnf.Verify.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	errs := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			errs = append(errs, e)
		} else {
			errs = append(errs, fmt.Errorf("%v", v.Index(i).Interface()))
		}
	}
	return errs
}

// Productions lists the production names of g in source order.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return g[names[i]].Pos().Offset < g[names[j]].Pos().Offset
	})
	return names
}
