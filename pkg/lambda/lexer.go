package lambda

import (
	"fmt"
	"iter"
	"math/big"
	"unicode"
	"unicode/utf8"
)

// LexError reports a character that does not start any token. The lexer
// skips it and keeps scanning.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	if unicode.IsUpper(e.Char) {
		return fmt.Sprintf("illegal character '%c' at position %d: character must be lowercase", e.Char, e.Pos)
	}
	return fmt.Sprintf("illegal character '%c' at position %d", e.Char, e.Pos)
}

// Lexer scans one line into tokens on demand.
type Lexer struct {
	input string
	pos   int
	errs  []*LexError
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Reset restarts the lexer on a fresh input and drops collected errors.
func (l *Lexer) Reset(input string) {
	l.input = input
	l.pos = 0
	l.errs = nil
}

// Errors returns the lexical errors seen so far, in scan order.
func (l *Lexer) Errors() []*LexError {
	return l.errs
}

// Next returns the next token. Once the input is exhausted it keeps
// returning a TokenEOF positioned at the end of the input.
func (l *Lexer) Next() Token {
	for l.pos < len(l.input) {
		start := l.pos
		ch := l.input[l.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.pos++
		case ch == '#':
			l.pos++
			return Token{Kind: TokenLambda, Text: "#", Pos: start}
		case ch == '.':
			l.pos++
			return Token{Kind: TokenDot, Text: ".", Pos: start}
		case ch == '(':
			l.pos++
			return Token{Kind: TokenLParen, Text: "(", Pos: start}
		case ch == ')':
			l.pos++
			return Token{Kind: TokenRParen, Text: ")", Pos: start}
		case ch >= 'a' && ch <= 'z':
			l.pos++
			return Token{Kind: TokenVar, Text: string(ch), Pos: start, Name: ch}
		case isDigit(ch):
			for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
				l.pos++
			}
			lit := l.input[start:l.pos]
			v, _ := new(big.Int).SetString(lit, 10)
			return Token{Kind: TokenNumber, Text: lit, Pos: start, Value: v}
		default:
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			l.errs = append(l.errs, &LexError{Pos: start, Char: r})
			debugf("lex: skipping %q at %d", r, start)
			l.pos += size
		}
	}
	return Token{Kind: TokenEOF, Pos: len(l.input)}
}

// Tokens yields the tokens of input, excluding the final EOF. Each range
// over the sequence scans input from the start.
func Tokens(input string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		l := NewLexer(input)
		for {
			tok := l.Next()
			if tok.Kind == TokenEOF || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize scans the whole input and returns its tokens (without EOF)
// together with any lexical errors.
func Tokenize(input string) ([]Token, []*LexError) {
	l := NewLexer(input)
	var toks []Token
	for {
		tok := l.Next()
		if tok.Kind == TokenEOF {
			return toks, l.Errors()
		}
		toks = append(toks, tok)
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
