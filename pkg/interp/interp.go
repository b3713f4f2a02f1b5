// Package interp runs one interpretation request: scan, parse, reduce,
// render and optionally explain a single line.
package interp

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/vic/hashlam/pkg/explain"
	"github.com/vic/hashlam/pkg/lambda"
)

// Interpreter holds the settings fixed at startup. It keeps no state
// between calls to Interpret.
type Interpreter struct {
	MaxSteps        int           // 0 means no limit
	MaxContractions int           // 0 means no limit
	Timeout         time.Duration // per line; 0 means none
	TraceCapacity   int           // passes recorded per line; 0 disables

	Explainer explain.Explainer // optional
	Logger    *log.Logger       // optional
}

// Result is everything produced for one line.
type Result struct {
	Input     string
	Tokens    []lambda.Token
	LexErrors []*lambda.LexError

	Term     lambda.Term // nil when parsing failed
	ParseErr error

	Normal    lambda.Term // last term reached, set whenever Term is
	Steps     int
	ReduceErr error // limit or cancellation; Normal is then partial
	Stats     lambda.Stats
	Trace     []lambda.TraceEvent

	Explanation string
	ExplainErr  error
}

// Reduced reports whether at least one step was taken and reduction ran to
// normal form.
func (r *Result) Reduced() bool {
	return r.Term != nil && r.ReduceErr == nil && r.Steps > 0
}

func (in *Interpreter) logger() *log.Logger {
	if in.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return in.Logger
}

// Interpret processes one line. Lexical errors are collected and do not
// stop parsing; a syntax error stops the line before reduction.
func (in *Interpreter) Interpret(ctx context.Context, line string) *Result {
	logger := in.logger()
	res := &Result{Input: line}

	res.Tokens, res.LexErrors = lambda.Tokenize(line)
	for _, err := range res.LexErrors {
		logger.Printf("lex: %v", err)
	}

	res.Term, res.ParseErr = lambda.NewParser(line).Parse()
	if res.ParseErr != nil {
		logger.Printf("parse %q: %v", line, res.ParseErr)
		return res
	}

	if in.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, in.Timeout)
		defer cancel()
	}

	r := lambda.Reducer{MaxSteps: in.MaxSteps, MaxContractions: in.MaxContractions}
	if in.TraceCapacity > 0 {
		r.EnableTrace(in.TraceCapacity)
	}
	res.Normal, res.Steps, res.ReduceErr = r.Normalize(ctx, res.Term)
	res.Stats = r.GetStats()
	res.Trace = r.TraceSnapshot()
	if res.ReduceErr != nil {
		logger.Printf("reduce %q: stopped after %d steps: %v", line, res.Steps, res.ReduceErr)
		return res
	}
	logger.Printf("reduce %q: %d steps, %d contractions", line, res.Steps, res.Stats.Contractions)

	if res.Reduced() && in.Explainer != nil {
		res.Explanation, res.ExplainErr = in.explain(ctx, line, lambda.Render(res.Normal))
		if res.ExplainErr != nil {
			logger.Printf("explain %q: %v", line, res.ExplainErr)
		}
	}
	return res
}

func (in *Interpreter) explain(ctx context.Context, input, reduced string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("explain: panic: %v", r)
		}
	}()
	return in.Explainer.Explain(ctx, input, reduced)
}
