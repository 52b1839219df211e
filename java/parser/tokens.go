package parser

// Tokens is an immutable cursor into a token slice. Copying a Tokens value
// is cheap and every parse function returns a new cursor instead of moving
// a shared one, so backtracking is simply reusing an older value.
type Tokens struct {
	toks []Token
	pos  int
	// head replaces toks[pos] when a compound '>' token was split.
	head *Token
}

func NewTokens(toks []Token) Tokens {
	if len(toks) == 0 || toks[len(toks)-1].Kind != TokenEOF {
		var end Position
		if len(toks) > 0 {
			end = toks[len(toks)-1].Span.End
		}
		toks = append(toks[:len(toks):len(toks)], Token{Kind: TokenEOF, Span: Span{Start: end, End: end}})
	}
	return Tokens{toks: toks}
}

func (in Tokens) Peek() Token {
	if in.head != nil {
		return *in.head
	}
	if in.pos >= len(in.toks) {
		return in.toks[len(in.toks)-1]
	}
	return in.toks[in.pos]
}

// PeekN looks n tokens ahead of Peek.
func (in Tokens) PeekN(n int) Token {
	if n == 0 {
		return in.Peek()
	}
	i := in.pos + n
	if i >= len(in.toks) {
		return in.toks[len(in.toks)-1]
	}
	return in.toks[i]
}

func (in Tokens) Next() Tokens {
	if in.pos < len(in.toks)-1 {
		in.pos++
	}
	in.head = nil
	return in
}

func (in Tokens) AtEOF() bool {
	return in.Peek().Kind == TokenEOF
}

func (in Tokens) check(kind TokenKind) bool {
	return in.Peek().Kind == kind
}

// Remaining is the number of tokens left before EOF.
func (in Tokens) Remaining() int {
	return len(in.toks) - 1 - in.pos
}

// symbol consumes exactly one token of the given kind.
func symbol(kind TokenKind) func(Tokens) (Tokens, error) {
	return func(in Tokens) (Tokens, error) {
		if !in.check(kind) {
			return in, expected(in, kind.String())
		}
		return in.Next(), nil
	}
}

// gtSplits maps tokens starting with '>' to what remains after taking one '>'.
var gtSplits = map[TokenKind]TokenKind{
	TokenShr:        TokenGT,
	TokenUShr:       TokenShr,
	TokenGE:         TokenAssign,
	TokenShrAssign:  TokenGE,
	TokenUShrAssign: TokenShrAssign,
}

// closeAngle consumes a single '>' closing a type argument list. When the
// lexer produced a longer token such as '>>', the remainder becomes the
// cursor head.
func closeAngle(in Tokens) (Tokens, error) {
	tok := in.Peek()
	if tok.Kind == TokenGT {
		return in.Next(), nil
	}
	remainder, ok := gtSplits[tok.Kind]
	if !ok {
		return in, expected(in, ">")
	}
	start := tok.Span.Start
	start.Offset++
	start.Column++
	rest := Token{
		Kind:    remainder,
		Literal: tok.Literal[1:],
		Span:    Span{Start: start, End: tok.Span.End},
	}
	in.head = &rest
	return in, nil
}
