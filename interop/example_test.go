// SPDX-License-Identifier: MIT

package interop_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/interop"
	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/mat"
)

// ExampleNewView hands an engine matrix to gonum without copying.
func ExampleNewView() {
	m, _ := matrix.FromRows([][]float64{{2, 1}, {1, 3}})

	fmt.Printf("det=%.0f trace=%.0f\n", mat.Det(interop.NewView(m)), mat.Trace(interop.NewView(m)))
	// Output:
	// det=5 trace=5
}

// ExampleFromMatrix brings a gonum result back into the engine.
func ExampleFromMatrix() {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	var inv mat.Dense
	if err := inv.Inverse(a); err != nil {
		fmt.Println("error:", err)

		return
	}

	m := interop.FromMatrix(&inv)
	fmt.Printf("%.1f\n", m.Values())
	// Output:
	// [[-2.0 1.0] [1.5 -0.5]]
}
