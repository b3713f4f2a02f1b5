package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/hashlam/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
	Steps  int
}

const testTemplate = `
package gentests
import _ "embed"
import "testing"
import "github.com/vic/hashlam/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
func Test_%s_Reduction(t *testing.T) {
	gentests.CheckReduction(t, "%s", input, output, %d)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "#x.x", "#x.x", 0},
		{"002_id_num", "(#x.x) 5", "5", 1},

		// K Combinator (Erasure)
		{"003_k", "(#x.#y.x) a b", "a", 2},
		{"004_k_star", "(#x.#y.y) a b", "b", 2},

		// S Combinator
		{"005_s_k_k", "(#x.#y.#z.x z (y z)) (#a.#b.a) (#c.#d.c) e", "e", 3},

		// Church Numerals
		{"006_succ_zero", "(#n.#f.#x.f (n f x)) (#f.#x.x) s z", "s z", 3},
		{"007_two_id", "(#f.#x.f (f x)) (#y.y) 3", "3", 2},

		// Pairs
		{"008_pair_fst", "(#p.p (#x.#y.x)) ((#x.#y.#f.f x y) a b)", "a", 4},

		// Free variables
		{"009_free_app", "x y", "x y", 0},

		// Capture: the free x of the argument ends up bound
		{"010_capture", "(#y.#x.y) x", "#x.x", 1},
	}

	baseDir := "cmd/gentests/generated"
	os.MkdirAll(baseDir, 0755)

	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)
		os.MkdirAll(dir, 0755)

		// Inputs are kept verbatim: rendering would put abstractions in
		// function position, which do not read back the same.
		if _, err := lambda.Parse(tc.Input); err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}

		// Normalize Output
		outTerm, err := lambda.Parse(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name, tc.Steps)

		os.WriteFile(filepath.Join(dir, "input.lam"), []byte(tc.Input+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.lam"), []byte(outTerm.String()+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
