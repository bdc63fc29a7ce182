package field_test

import (
	"fmt"

	"github.com/katalvlaran/tmatrom/field"
	"github.com/katalvlaran/tmatrom/wavefunction"
)

// ExampleTimes combines basis functions with the operator-style helpers and
// extracts the coefficients of the result.
func ExampleTimes() {
	j0, _ := wavefunction.NewRegular(0, 1, 0)
	j1, _ := wavefunction.NewRegular(1, 1, 0)

	scaled, err := field.Times(2, j1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sum, err := field.Plus(j0, scaled)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c, err := sum.Coefficients(0, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Vector, c.Complete)
	// Output: [(0+0i) (1+0i) (2+0i)] true
}
