package lambda

import (
	"errors"
	"testing"
)

func v(name byte) Var { return Var{Name: name} }

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  Term
	}{
		{"x", v('x')},
		{"7", NewNum(7)},
		{"a b c", App{Fun: App{Fun: v('a'), Arg: v('b')}, Arg: v('c')}},
		{"a (b c)", App{Fun: v('a'), Arg: App{Fun: v('b'), Arg: v('c')}}},
		{"#x.y z", Abs{Arg: 'x', Body: App{Fun: v('y'), Arg: v('z')}}},
		{"(#x.y) z", App{Fun: Abs{Arg: 'x', Body: v('y')}, Arg: v('z')}},
		{"(#x.x) 5", App{Fun: Abs{Arg: 'x', Body: v('x')}, Arg: NewNum(5)}},
		{"#x.#y.x", Abs{Arg: 'x', Body: Abs{Arg: 'y', Body: v('x')}}},
		{"a #x.x b", App{Fun: v('a'), Arg: Abs{Arg: 'x', Body: App{Fun: v('x'), Arg: v('b')}}}},
		{"#x.3", Abs{Arg: 'x', Body: NewNum(3)}},
		{"((x))", v('x')},
		{"xy", App{Fun: v('x'), Arg: v('y')}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.input, err)
			continue
		}
		if !Equal(got, tc.want) {
			t.Errorf("Parse(%q) = %s, want %s", tc.input, Dump(got), Dump(tc.want))
		}
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	cases := []struct {
		input string
		msg   string
	}{
		{"", "syntax error: unexpected end of input"},
		{"#x.", "syntax error: unexpected end of input"},
		{"(a b", "syntax error: unexpected end of input"},
		{"a b)", "syntax error: unexpected token ')' at position 3"},
		{"#3.x", "syntax error: unexpected token '3' at position 1"},
		{"#x y", "syntax error: unexpected token 'y' at position 3"},
		{"()", "syntax error: unexpected token ')' at position 1"},
		{". x", "syntax error: unexpected token 'x' at position 2"},
	}
	for _, tc := range cases {
		term, err := Parse(tc.input)
		if err == nil {
			t.Errorf("Parse(%q) = %s, want error", tc.input, term)
			continue
		}
		if term != nil {
			t.Errorf("Parse(%q) returned partial term %s", tc.input, term)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%q): got %T, want *SyntaxError", tc.input, err)
		}
		if err.Error() != tc.msg {
			t.Errorf("Parse(%q): got %q, want %q", tc.input, err, tc.msg)
		}
	}
}

func TestParseDotNumber(t *testing.T) {
	for _, input := range []string{". 3", "a .3", "#x..3"} {
		term, err := Parse(input)
		if term != nil {
			t.Errorf("Parse(%q) returned %s, want no term", input, term)
		}
		var dn *DotNumberError
		if !errors.As(err, &dn) {
			t.Fatalf("Parse(%q): got %v, want *DotNumberError", input, err)
		}
		if dn.Value.Int64() != 3 {
			t.Errorf("Parse(%q): got number %v, want 3", input, dn.Value)
		}
	}

	_, err := Parse(". 3")
	want := "syntax error: unexpected number '3' after '.' at position 2"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err, want)
	}
}

func TestParserKeepsLexErrors(t *testing.T) {
	p := NewParser("#x.A1")
	term, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Equal(term, Abs{Arg: 'x', Body: NewNum(1)}) {
		t.Errorf("got %s, want #x.1", term)
	}
	if errs := p.LexErrors(); len(errs) != 1 || errs[0].Char != 'A' {
		t.Errorf("got lexical errors %v, want one for 'A'", errs)
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustParse did not panic")
		}
	}()
	MustParse("(")
}

// Rendering then parsing gives back the same tree, as long as no
// abstraction sits in function position: "(#x.x y)" reads back as #x.(x y).
func TestRenderRoundTrip(t *testing.T) {
	terms := []Term{
		v('a'),
		NewNum(0),
		App{Fun: App{Fun: v('a'), Arg: v('b')}, Arg: v('c')},
		App{Fun: v('a'), Arg: App{Fun: v('b'), Arg: v('c')}},
		Abs{Arg: 'x', Body: App{Fun: v('x'), Arg: NewNum(12)}},
		App{Fun: v('f'), Arg: Abs{Arg: 'x', Body: Abs{Arg: 'y', Body: App{Fun: v('y'), Arg: v('x')}}}},
	}
	for _, term := range terms {
		got, err := Parse(Render(term))
		if err != nil {
			t.Errorf("Parse(%q): %v", Render(term), err)
			continue
		}
		if !Equal(got, term) {
			t.Errorf("round trip of %s gave %s", Dump(term), Dump(got))
		}
	}

	redex := App{Fun: Abs{Arg: 'x', Body: v('x')}, Arg: v('y')}
	if got := MustParse(Render(redex)); Equal(got, redex) {
		t.Errorf("expected %q to read back as an abstraction, got %s", Render(redex), Dump(got))
	}
}
