package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/vic/hashlam/pkg/lambda"
)

// Write prints res the way the interactive session shows it. Token lines
// are included when tokens is set.
func Write(w io.Writer, res *Result, tokens bool) {
	for _, err := range res.LexErrors {
		fmt.Fprintf(w, "[Lex] %v\n", err)
	}
	if tokens {
		for _, line := range tokenLines(res.Tokens) {
			fmt.Fprintln(w, line)
		}
	}

	if res.ParseErr != nil {
		fmt.Fprintln(w, res.ParseErr)
		fmt.Fprintln(w, "Failed to parse the expression. No reduction performed.")
		return
	}
	fmt.Fprintf(w, "Original AST: %s\n", lambda.Dump(res.Term))

	for _, ev := range res.Trace {
		fmt.Fprintf(w, "  step %d (%d contractions): %s\n", ev.Step, ev.Contractions, ev.Term)
	}

	if res.ReduceErr != nil {
		fmt.Fprintf(w, "Reduction stopped after %d steps: %v\n", res.Steps, res.ReduceErr)
		fmt.Fprintf(w, "Last expression: %s\n", res.Normal)
		return
	}
	if res.Steps == 0 {
		fmt.Fprintln(w, "The expression is already in normal form. Cannot be reduced.")
		return
	}

	fmt.Fprintf(w, "Reduced AST: %s\n", lambda.Dump(res.Normal))
	fmt.Fprintf(w, "Reduced Expression in Normal Form: %s\n", res.Normal)
	fmt.Fprintf(w, "Reduction steps: %d\n", res.Steps)
	if free := lambda.FreeVars(res.Normal); len(free) > 0 {
		names := lo.Map(free, func(name byte, _ int) string { return string(name) })
		fmt.Fprintf(w, "Free variables: %s\n", strings.Join(names, " "))
	}

	switch {
	case res.ExplainErr != nil:
		fmt.Fprintf(w, "Explanation unavailable: %v\n", res.ExplainErr)
	case res.Explanation != "":
		fmt.Fprintln(w, res.Explanation)
	}
}

func tokenLines(toks []lambda.Token) []string {
	return lo.Map(toks, func(tok lambda.Token, _ int) string {
		return fmt.Sprintf("Token: %s → %s", tok.Kind, tok.Text)
	})
}
