package lume

import "fmt"

type TokenType uint64

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	TokenEOF TokenType = iota

	TokenLeftParen
	TokenRightParen
	TokenComma
	TokenDot
	TokenMinus
	TokenPlus
	TokenSemicolon
	TokenSlash
	TokenStar

	TokenBang
	TokenBangEqual
	TokenEqual
	TokenEqualEqual
	TokenGreater
	TokenGreaterEqual
	TokenLess
	TokenLessEqual

	TokenIdentifier
	TokenString
	TokenNumber

	TokenClass
	TokenFun
	TokenVar
	TokenFor
	TokenIf
	TokenWhile
	TokenPrint
	TokenReturn
	TokenTrue
	TokenFalse
	TokenNil
)

// Token is one lexical unit as produced by an external scanner. Literal
// carries the decoded value for number and string tokens and is nil for
// everything else. Tokens are never modified by the parser.
type Token struct {
	Typ     TokenType
	Lexeme  string
	Literal interface{}
	Line    int
}

func (t Token) String() string {
	if t.Typ == TokenEOF {
		return "end of input"
	}

	return fmt.Sprintf("'%s'", t.Lexeme)
}
