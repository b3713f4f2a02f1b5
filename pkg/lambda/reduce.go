package lambda

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStepLimit        = errors.New("lambda: step limit reached")
	ErrContractionLimit = errors.New("lambda: contraction limit reached")
)

// Substitute replaces the free occurrences of name in t with repl.
//
// An abstraction binding name stops the descent. Nothing is renamed, so a
// free variable of repl can be captured by a binder inside t.
func Substitute(name byte, t Term, repl Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == name {
			return repl
		}
		return t
	case Num:
		return t
	case Abs:
		if t.Arg == name {
			return t
		}
		return Abs{Arg: t.Arg, Body: Substitute(name, t.Body, repl)}
	case App:
		return App{Fun: Substitute(name, t.Fun, repl), Arg: Substitute(name, t.Arg, repl)}
	}
	panic(fmt.Sprintf("lambda: unexpected term %T", t))
}

// BetaStep performs one outermost, left-to-right pass over t. Every redex
// met is contracted, and the contractum is reduced again within the same
// pass. Applications that are not redexes get both sides reduced.
//
// BetaStep does not return for terms whose contraction chain never ends;
// use a Reducer with limits for untrusted input.
func BetaStep(t Term) Term {
	var s stepper
	res, _ := s.step(t)
	return res
}

// NormalForm applies BetaStep until a pass leaves the term unchanged and
// returns that term with the number of passes that changed it. A result of
// zero means t was already in normal form. There is no bound on the number
// of passes.
func NormalForm(t Term) (Term, int) {
	var r Reducer
	res, steps, _ := r.Normalize(context.Background(), t)
	return res, steps
}

// Stats holds reduction statistics of the last Normalize call.
type Stats struct {
	Passes       int // BetaStep passes, including the final unchanged one
	Contractions int // redexes contracted
}

// Reducer normalizes terms with optional bounds. The zero value is
// unbounded. A Reducer must not be used concurrently.
type Reducer struct {
	MaxSteps        int // passes that change the term; 0 means no limit
	MaxContractions int // contracted redexes; 0 means no limit

	stats Stats
	trace traceBuf
}

// GetStats returns statistics of the last Normalize call.
func (r *Reducer) GetStats() Stats {
	return r.stats
}

// Normalize reduces t to normal form, counting the passes that changed the
// term. When a limit is reached or ctx is done it returns the last term
// produced by a complete pass, the count so far and the matching error.
func (r *Reducer) Normalize(ctx context.Context, t Term) (Term, int, error) {
	r.stats = Stats{}
	r.trace.reset()
	s := stepper{ctx: ctx, limit: r.MaxContractions}

	prev := t
	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return prev, steps, err
		}

		before := s.count
		next, err := s.step(prev)
		r.stats.Passes++
		r.stats.Contractions = s.count
		if err != nil {
			return prev, steps, err
		}
		if Equal(next, prev) {
			return next, steps, nil
		}

		if r.MaxSteps > 0 && steps >= r.MaxSteps {
			return prev, steps, ErrStepLimit
		}
		steps++
		r.trace.record(TraceEvent{Step: steps, Contractions: s.count - before, Term: next})
		debugf("reduce: step %d: %s", steps, next)
		prev = next
	}
}

type stepper struct {
	ctx   context.Context
	limit int
	count int
}

func (s *stepper) contract() error {
	if s.limit > 0 && s.count >= s.limit {
		return ErrContractionLimit
	}
	if s.ctx != nil {
		if err := s.ctx.Err(); err != nil {
			return err
		}
	}
	s.count++
	return nil
}

func (s *stepper) step(t Term) (Term, error) {
	// Contract along the spine iteratively; a chain of redexes can be
	// arbitrarily long.
	for {
		app, ok := t.(App)
		if !ok {
			break
		}
		abs, ok := app.Fun.(Abs)
		if !ok {
			break
		}
		if err := s.contract(); err != nil {
			return t, err
		}
		t = Substitute(abs.Arg, abs.Body, app.Arg)
	}

	switch t := t.(type) {
	case Var, Num:
		return t, nil
	case Abs:
		body, err := s.step(t.Body)
		if err != nil {
			return t, err
		}
		return Abs{Arg: t.Arg, Body: body}, nil
	case App:
		fun, err := s.step(t.Fun)
		if err != nil {
			return t, err
		}
		arg, err := s.step(t.Arg)
		if err != nil {
			return t, err
		}
		return App{Fun: fun, Arg: arg}, nil
	}
	panic(fmt.Sprintf("lambda: unexpected term %T", t))
}
