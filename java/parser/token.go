package parser

import (
	"strings"

	"github.com/dhamidi/javaexpr/java/ast"
)

type (
	Position = ast.Position
	Span     = ast.Span
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment

	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral
	TokenTextBlock

	// Reserved words run from TokenTrue to TokenVoid. Keywords with no
	// role in a primary expression all lex as TokenKeyword.
	TokenTrue
	TokenFalse
	TokenNull
	TokenKeyword
	TokenClass
	TokenExtends
	TokenNew
	TokenSuper
	TokenThis
	TokenBoolean
	TokenByte
	TokenChar
	TokenShort
	TokenInt
	TokenLong
	TokenFloat
	TokenDouble
	TokenVoid

	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenDot
	TokenQuestion
	TokenLT
	TokenGT

	// Closing a type argument list splits these into a '>' and the rest.
	TokenAssign
	TokenGE
	TokenShr
	TokenUShr
	TokenShrAssign
	TokenUShrAssign

	// Any other operator or separator.
	TokenOperator
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenWhitespace:    "Whitespace",
	TokenComment:       "Comment",
	TokenLineComment:   "LineComment",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTextBlock:     "TextBlock",
	TokenKeyword:       "Keyword",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenQuestion:      "?",
	TokenLT:            "<",
	TokenGT:            ">",
	TokenAssign:        "=",
	TokenGE:            ">=",
	TokenShr:           ">>",
	TokenUShr:          ">>>",
	TokenShrAssign:     ">>=",
	TokenUShrAssign:    ">>>=",
	TokenOperator:      "Operator",
}

var keywords = map[string]TokenKind{
	"true":    TokenTrue,
	"false":   TokenFalse,
	"null":    TokenNull,
	"class":   TokenClass,
	"extends": TokenExtends,
	"new":     TokenNew,
	"super":   TokenSuper,
	"this":    TokenThis,
	"boolean": TokenBoolean,
	"byte":    TokenByte,
	"char":    TokenChar,
	"short":   TokenShort,
	"int":     TokenInt,
	"long":    TokenLong,
	"float":   TokenFloat,
	"double":  TokenDouble,
	"void":    TokenVoid,
}

var otherKeywords = strings.Fields(`
	abstract assert break case catch const continue default do else enum
	final finally for goto if implements import instanceof interface native
	package private protected public return static strictfp switch
	synchronized throw throws transient try volatile while`)

func init() {
	for word, kind := range keywords {
		tokenKindNames[kind] = word
	}
	for _, word := range otherKeywords {
		keywords[word] = TokenKeyword
	}
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsReserved reports whether k is a reserved word: a keyword or one of the
// literals true, false and null. Contextual keywords such as var or record
// are lexed as identifiers and are not reserved.
func (k TokenKind) IsReserved() bool {
	return k >= TokenTrue && k <= TokenVoid
}

func (k TokenKind) IsPrimitive() bool {
	switch k {
	case TokenBoolean, TokenByte, TokenChar, TokenShort,
		TokenInt, TokenLong, TokenFloat, TokenDouble, TokenVoid:
		return true
	}
	return false
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

func (t Token) Ident() ast.Ident {
	return ast.Ident{Name: t.Literal, Span: t.Span}
}

// LookupKeyword returns the keyword kind for ident, or TokenIdent.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
