// Package explain asks an external collaborator to describe, in prose, how
// an expression reached its normal form. Explanations are best effort: the
// interpreter never lets a failure here change a reduction result.
package explain

import (
	"context"
	"fmt"
)

// Explainer describes how input reduced to reduced.
type Explainer interface {
	Explain(ctx context.Context, input, reduced string) (string, error)
}

// Func adapts an ordinary function to an Explainer.
type Func func(ctx context.Context, input, reduced string) (string, error)

func (f Func) Explain(ctx context.Context, input, reduced string) (string, error) {
	return f(ctx, input, reduced)
}

// Prompt is the question put to the collaborator.
func Prompt(input, reduced string) string {
	return fmt.Sprintf("(Imagine that the '#' is a Lambda symbol). "+
		"Explain how we got to %s from %s in terms of BETA reduction from Lambda Calculus.",
		reduced, input)
}
