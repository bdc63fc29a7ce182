package polar_test

import (
	"fmt"

	"github.com/katalvlaran/tmatrom/polar"
)

// ExampleSum evaluates J₀(k·r) on the unit circle.
func ExampleSum() {
	vals, err := polar.Sum([]complex128{1}, 0, 1, []complex128{1, 1i}, polar.Regular, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.6f %.6f\n", real(vals[0]), real(vals[1]))
	// Output: 0.765198 0.765198
}
