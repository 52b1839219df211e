package parser

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	return l.peekN(0)
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	if l.input[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

// Tokenize returns all significant tokens, dropping whitespace and
// comments. The result always ends with an EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		switch tok.Kind {
		case TokenWhitespace, TokenComment, TokenLineComment:
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() Token {
	start := l.Position()
	ch := l.peek()

	switch {
	case l.pos >= len(l.input):
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}
	case ch == '/' && l.peekN(1) == '/':
		for l.peek() != 0 && l.peek() != '\n' {
			l.advance()
		}
		return l.token(TokenLineComment, start)
	case ch == '/' && l.peekN(1) == '*':
		l.advanceN(2)
		for l.pos < len(l.input) && !(l.peek() == '*' && l.peekN(1) == '/') {
			l.advance()
		}
		l.advanceN(2)
		return l.token(TokenComment, start)
	case isSpace(ch):
		for isSpace(l.peek()) {
			l.advance()
		}
		return l.token(TokenWhitespace, start)
	case isDigit(ch), ch == '.' && isDigit(l.peekN(1)):
		return l.scanNumber(start)
	case ch == '\'':
		l.scanQuoted('\'')
		return l.token(TokenCharLiteral, start)
	case ch == '"' && l.peekN(1) == '"' && l.peekN(2) == '"':
		l.scanTextBlock()
		return l.token(TokenTextBlock, start)
	case ch == '"':
		l.scanQuoted('"')
		return l.token(TokenStringLiteral, start)
	}

	if l.identStart() {
		for l.identPart() {
			l.advanceRune()
		}
		tok := l.token(TokenIdent, start)
		tok.Kind = LookupKeyword(tok.Literal)
		return tok
	}

	return l.scanOperator(start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' {
		switch l.peekN(1) | 0x20 {
		case 'x':
			return l.scanHexNumber(start)
		case 'b':
			l.advanceN(2)
			for l.peek() == '0' || l.peek() == '1' || l.peek() == '_' {
				l.advance()
			}
			l.suffix('l')
			return l.token(TokenIntLiteral, start)
		}
	}

	kind := TokenIntLiteral
	l.digits()
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		kind = TokenFloatLiteral
		l.advance()
		l.digits()
	}
	if l.peek()|0x20 == 'e' {
		kind = TokenFloatLiteral
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		l.digits()
	}
	switch l.peek() | 0x20 {
	case 'f', 'd':
		kind = TokenFloatLiteral
		l.advance()
	case 'l':
		l.advance()
	}
	return l.token(kind, start)
}

// scanHexNumber reads a hex integer, or a hex floating-point literal
// when a binary exponent follows: 0x1p3, 0x1.8p1, 0x.8P-2f.
func (l *Lexer) scanHexNumber(start Position) Token {
	l.advanceN(2)
	l.hexDigits()
	mark := *l
	if l.peek() == '.' {
		l.advance()
		l.hexDigits()
	}
	if l.peek()|0x20 != 'p' {
		*l = mark
		l.suffix('l')
		return l.token(TokenIntLiteral, start)
	}
	l.advance()
	if l.peek() == '+' || l.peek() == '-' {
		l.advance()
	}
	l.digits()
	l.suffix('f', 'd')
	return l.token(TokenFloatLiteral, start)
}

// suffix consumes one of the given lower-case letters in either case.
func (l *Lexer) suffix(letters ...byte) {
	for _, c := range letters {
		if l.peek()|0x20 == c {
			l.advance()
			return
		}
	}
}

func (l *Lexer) hexDigits() {
	for isHexDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

func (l *Lexer) digits() {
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
}

// scanQuoted consumes a char or string literal. An unterminated string stops
// at the end of the line.
func (l *Lexer) scanQuoted(quote byte) {
	l.advance()
	for l.peek() != 0 && l.peek() != quote && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == quote {
		l.advance()
	}
}

func (l *Lexer) scanTextBlock() {
	l.advanceN(3)
	for l.pos < len(l.input) {
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			return
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
}

// operators is ordered longest first so the first prefix match wins.
var operators = []struct {
	text string
	kind TokenKind
}{
	{">>>=", TokenUShrAssign},
	{"<<=", TokenOperator},
	{">>=", TokenShrAssign},
	{">>>", TokenUShr},
	{"...", TokenOperator},
	{">=", TokenGE},
	{">>", TokenShr},
	{"::", TokenOperator},
	{"->", TokenOperator},
	{"==", TokenOperator},
	{"!=", TokenOperator},
	{"<=", TokenOperator},
	{"&&", TokenOperator},
	{"||", TokenOperator},
	{"<<", TokenOperator},
	{"++", TokenOperator},
	{"--", TokenOperator},
	{"+=", TokenOperator},
	{"-=", TokenOperator},
	{"*=", TokenOperator},
	{"/=", TokenOperator},
	{"%=", TokenOperator},
	{"&=", TokenOperator},
	{"|=", TokenOperator},
	{"^=", TokenOperator},
	{"(", TokenLParen},
	{")", TokenRParen},
	{"{", TokenLBrace},
	{"}", TokenRBrace},
	{"[", TokenLBracket},
	{"]", TokenRBracket},
	{",", TokenComma},
	{".", TokenDot},
	{"?", TokenQuestion},
	{"<", TokenLT},
	{">", TokenGT},
	{"=", TokenAssign},
	{";", TokenOperator},
	{"@", TokenOperator},
	{"!", TokenOperator},
	{"&", TokenOperator},
	{"|", TokenOperator},
	{"^", TokenOperator},
	{"~", TokenOperator},
	{"+", TokenOperator},
	{"-", TokenOperator},
	{"*", TokenOperator},
	{"/", TokenOperator},
	{"%", TokenOperator},
	{":", TokenOperator},
}

func (l *Lexer) scanOperator(start Position) Token {
	rest := l.input[l.pos:]
	for _, op := range operators {
		if bytes.HasPrefix(rest, []byte(op.text)) {
			l.advanceN(len(op.text))
			return l.token(op.kind, start)
		}
	}
	l.advanceRune()
	return l.token(TokenError, start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: string(l.input[start.Offset:end.Offset]),
	}
}

func (l *Lexer) rune() rune {
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return r
}

func (l *Lexer) advanceRune() {
	_, size := utf8.DecodeRune(l.input[l.pos:])
	l.advanceN(size)
}

func (l *Lexer) identStart() bool {
	if l.pos >= len(l.input) {
		return false
	}
	r := l.rune()
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func (l *Lexer) identPart() bool {
	if l.pos >= len(l.input) {
		return false
	}
	r := l.rune()
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch|0x20 >= 'a' && ch|0x20 <= 'f')
}
