package lambda

import (
	"fmt"
	"math/big"
	"strings"
)

// Term represents a lambda calculus term. The set of variants is closed:
// Var, Num, Abs and App.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage. Names are single lowercase letters.
type Var struct {
	Name byte
}

// Num represents a non-negative integer literal.
type Num struct {
	Value *big.Int
}

// Abs represents an abstraction, written #x.body.
type Abs struct {
	Arg  byte
	Body Term
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (Var) term() {}
func (Num) term() {}
func (Abs) term() {}
func (App) term() {}

func (v Var) String() string { return Render(v) }
func (n Num) String() string { return Render(n) }
func (a Abs) String() string { return Render(a) }
func (a App) String() string { return Render(a) }

// NewNum returns a Num holding v.
func NewNum(v int64) Num {
	return Num{Value: big.NewInt(v)}
}

// Render prints t in surface syntax. Applications are always fully
// parenthesized; abstractions are not.
func Render(t Term) string {
	var sb strings.Builder
	render(&sb, t)
	return sb.String()
}

func render(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		sb.WriteByte(t.Name)
	case Num:
		sb.WriteString(t.Value.String())
	case Abs:
		sb.WriteByte('#')
		sb.WriteByte(t.Arg)
		sb.WriteByte('.')
		render(sb, t.Body)
	case App:
		sb.WriteByte('(')
		render(sb, t.Fun)
		sb.WriteByte(' ')
		render(sb, t.Arg)
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("lambda: unexpected term %T", t))
	}
}

// Dump prints the internal structure of t, e.g. App(Var('a'), Num(1)).
func Dump(t Term) string {
	switch t := t.(type) {
	case Var:
		return fmt.Sprintf("Var('%c')", t.Name)
	case Num:
		return fmt.Sprintf("Num(%s)", t.Value)
	case Abs:
		return fmt.Sprintf("Abs('%c', %s)", t.Arg, Dump(t.Body))
	case App:
		return fmt.Sprintf("App(%s, %s)", Dump(t.Fun), Dump(t.Arg))
	}
	panic(fmt.Sprintf("lambda: unexpected term %T", t))
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Term) bool {
	switch a := a.(type) {
	case Var:
		b, ok := b.(Var)
		return ok && a.Name == b.Name
	case Num:
		b, ok := b.(Num)
		return ok && a.Value.Cmp(b.Value) == 0
	case Abs:
		b, ok := b.(Abs)
		return ok && a.Arg == b.Arg && Equal(a.Body, b.Body)
	case App:
		b, ok := b.(App)
		return ok && Equal(a.Fun, b.Fun) && Equal(a.Arg, b.Arg)
	}
	return false
}
