package gentests

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vic/hashlam/pkg/lambda"
)

// Fixtures are small; anything above this is a runaway reduction.
const maxContractions = 10000

func CheckReduction(t *testing.T, testName string, inputStr string, outputStr string, wantSteps int) {
	t.Helper()

	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	r := lambda.Reducer{MaxContractions: maxContractions}
	start := time.Now()
	actualTerm, steps, err := r.Normalize(context.Background(), term)
	elapsed := time.Since(start)
	if err != nil {
		t.Fatalf("%s: reduction stopped after %d steps: %v", testName, steps, err)
	}

	// Compare rendered forms; the expected output went through Render when
	// the fixture was generated.
	if lambda.Render(actualTerm) != lambda.Render(expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s", testName, inputStr, expectedTerm, actualTerm)
	}
	if steps != wantSteps {
		t.Errorf("%s: got %d steps, want %d", testName, steps, wantSteps)
	}

	stats := r.GetStats()
	t.Logf("%s: %d passes, %d contractions in %v", testName, stats.Passes, stats.Contractions, elapsed)
}
