package lambda

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/slices"
)

// SyntaxError reports a token that does not fit the grammar. A Token of
// kind TokenEOF means the input ended too early.
type SyntaxError struct {
	Token Token
}

func (e *SyntaxError) Error() string {
	if e.Token.Kind == TokenEOF {
		return "syntax error: unexpected end of input"
	}
	return fmt.Sprintf("syntax error: unexpected token '%s' at position %d", e.Token.Text, e.Token.Pos)
}

// DotNumberError reports a number directly after a stray '.', as in ".3".
type DotNumberError struct {
	Value *big.Int
	Pos   int
}

func (e *DotNumberError) Error() string {
	return fmt.Sprintf("syntax error: unexpected number '%s' after '.' at position %d", e.Value, e.Pos)
}

// Tokens that may begin an operand. Dot is here only so that ".3" reaches
// its dedicated error.
var operandStart = []TokenKind{TokenVar, TokenNumber, TokenLParen, TokenLambda, TokenDot}

type Parser struct {
	lexer   *Lexer
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{lexer: NewLexer(input)}
	p.next()
	return p
}

func (p *Parser) next() {
	p.current = p.lexer.Next()
}

// LexErrors returns the lexical errors met while parsing. They never stop
// the parse.
func (p *Parser) LexErrors() []*LexError {
	return p.lexer.Errors()
}

// Parse parses a whole line. Any syntax error aborts the parse and no term
// is returned.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != TokenEOF {
		return nil, p.unexpected()
	}
	return term, nil
}

func (p *Parser) unexpected() error {
	debugf("parse: unexpected %v", p.current)
	return &SyntaxError{Token: p.current}
}

// Term ::= Operand { Operand }
//
// Juxtaposition is left-associative. An abstraction operand swallows the
// rest of the term, so the loop ends right after one.
func (p *Parser) parseTerm() (Term, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for slices.Contains(operandStart, p.current.Kind) {
		right, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
	return left, nil
}

// Operand ::= Var | Number | '(' Term ')' | '#' Var '.' Term | '.' Number
func (p *Parser) parseOperand() (Term, error) {
	tok := p.current
	switch tok.Kind {
	case TokenVar:
		p.next()
		return Var{Name: tok.Name}, nil
	case TokenNumber:
		p.next()
		return Num{Value: tok.Value}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Kind != TokenRParen {
			return nil, p.unexpected()
		}
		p.next()
		return term, nil
	case TokenLambda:
		return p.parseAbs()
	case TokenDot:
		p.next()
		if p.current.Kind == TokenNumber {
			return nil, &DotNumberError{Value: p.current.Value, Pos: p.current.Pos}
		}
		return nil, p.unexpected()
	default:
		return nil, p.unexpected()
	}
}

func (p *Parser) parseAbs() (Term, error) {
	p.next() // consume '#'
	if p.current.Kind != TokenVar {
		return nil, p.unexpected()
	}
	arg := p.current.Name
	p.next()
	if p.current.Kind != TokenDot {
		return nil, p.unexpected()
	}
	p.next()

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Arg: arg, Body: body}, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// MustParse is like Parse but panics on a syntax error.
func MustParse(input string) Term {
	term, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return term
}
