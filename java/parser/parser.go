package parser

import (
	"fmt"
	"io"

	"github.com/dhamidi/javaexpr/java/ast"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

func WithStartLine(line int) Option {
	return func(p *Parser) {
		p.startLine = line
	}
}

// WithSourceLevel restricts the parser to constructs available in the
// given Java release, written as "8", "1.8", "17" and so on.
func WithSourceLevel(level string) Option {
	return func(p *Parser) {
		p.sourceLevel = level
	}
}

// Parser holds the configuration for one parse. The grammar methods never
// modify it; all parse state lives in Tokens values.
type Parser struct {
	file        string
	startLine   int
	sourceLevel string
	reader      io.Reader
	level       *level
}

func ParseExpression(r io.Reader, opts ...Option) *Parser {
	p := &Parser{
		startLine:   1,
		sourceLevel: DefaultSourceLevel,
		reader:      r,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Finish reads the whole input and parses it as a single expression. Any
// tokens left after the expression are an error.
func (p *Parser) Finish() (ast.Expr, error) {
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	lvl, err := parseLevel(p.sourceLevel)
	if err != nil {
		return nil, err
	}
	p.level = lvl

	in := NewTokens(p.tokenize(data))
	rest, expr, err := p.Expression(in)
	if err != nil {
		return nil, err
	}
	if !rest.AtEOF() {
		return nil, fail(rest, "unexpected %s after expression", describe(rest.Peek()))
	}
	return expr, nil
}

func (p *Parser) tokenize(data []byte) []Token {
	lexer := NewLexer(data, p.file)
	lexer.line = p.startLine
	return lexer.Tokenize()
}

// Tokenize lexes src with the parser's file and start line, for callers that
// drive Expression directly.
func (p *Parser) Tokenize(src []byte) Tokens {
	return NewTokens(p.tokenize(src))
}
