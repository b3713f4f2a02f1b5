package lambda

import (
	"fmt"
	"math/big"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenVar
	TokenNumber
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenLambda:
		return "LAMBDA"
	case TokenDot:
		return "DOT"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	case TokenVar:
		return "VAR"
	case TokenNumber:
		return "NUMBER"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexeme. Pos is the byte offset of the token in the
// scanned line.
type Token struct {
	Kind  TokenKind
	Text  string
	Pos   int
	Name  byte     // TokenVar
	Value *big.Int // TokenNumber
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)@%d", t.Kind, t.Text, t.Pos)
}
