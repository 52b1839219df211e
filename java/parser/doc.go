// Package parser parses Java expressions into the trees of package ast.
//
// # Overview
//
// The parser is hand-written recursive descent over an immutable token
// cursor. Its centre is postfix resolution: after a primary expression it
// resolves field accesses, calls, indexing, qualified this/super/class and
// inner object creation, disambiguating constructs that look the same until
// several tokens later.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Tokens    │
//	│  (bytes)    │     │  (tokens)   │     │  (cursor)   │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                    ┌─────────────┐     ┌─────────────┐
//	                    │  ast.Expr   │◀────│  Postfix    │
//	                    │             │     │  tail loop  │
//	                    └─────────────┘     └─────────────┘
//
// # Deferred disambiguation
//
// A dotted chain such as Parent.Test is both a valid expression (field
// accesses on a name) and a valid type name. The parser always reads it as
// an expression first. When a later token shows it was a type (.this,
// .super, .class or an empty []), the expression built so far is converted
// to the equivalent ast.ClassType:
//
//	Parent.Test.this.super()
//	└─ SuperConstructorCall
//	   └─ This (qualifier Parent.Test)
//
// Only chains of names and field accesses convert; a qualifier after a call
// or index result is an error.
//
// # Failure and backtracking
//
// Every grammar function takes a Tokens value and returns (Tokens, T, error).
// On failure the returned cursor is the one passed in and the error is a
// *Error naming the offending token. Alternatives are tried by simply
// calling the next function with the same cursor. There is no error
// recovery and no partial tree: an expression is fully built or not at all.
//
// Recursion depth follows the nesting of the input and is not limited.
//
// # Entry point
//
//	p := parser.ParseExpression(strings.NewReader("Outer.this.x"), parser.WithFile("A.java"))
//	expr, err := p.Finish()
//
// Finish requires the whole input to be one expression. To parse an
// expression in the middle of a token stream, use NewGrammar and Expression.
//
// # Source levels
//
// WithSourceLevel rejects constructs newer than the given Java release:
// explicit type arguments need 5, the diamond needs 7, and a diamond with an
// anonymous class body needs 9.
package parser
