
package gentests
import _ "embed"
import "testing"
import "github.com/vic/hashlam/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
func Test_003_k_Reduction(t *testing.T) {
	gentests.CheckReduction(t, "003_k", input, output, 2)
}
