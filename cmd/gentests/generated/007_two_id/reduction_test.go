
package gentests
import _ "embed"
import "testing"
import "github.com/vic/hashlam/cmd/gentests/helper"
//go:embed input.lam
var input string
//go:embed output.lam
var output string
func Test_007_two_id_Reduction(t *testing.T) {
	gentests.CheckReduction(t, "007_two_id", input, output, 2)
}
