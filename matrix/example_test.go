package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/microstate/matrix"
)

// ExampleVector turns energies into normalized Boltzmann weights with the
// in-place kernels (RT = 1 for readability).
func ExampleVector() {
	v, _ := matrix.NewVectorFrom([]float64{2, 1, 1})
	v.AddScalar(-1) // shift by the minimum
	v.Scale(-1)     // -(E-Emin)/RT
	v.Exp()
	v.Scale(1 / v.Sum())
	fmt.Printf("%.3f\n", v.Values())
	// Output:
	// [0.155 0.422 0.422]
}

// ExampleNewDenseFromRows builds a symmetric interaction table and validates it.
func ExampleNewDenseFromRows() {
	w, err := matrix.NewDenseFromRows([][]float64{
		{0, 0.5},
		{0.5, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(w)
	fmt.Println(matrix.ValidateSymmetric(w, matrix.DefaultEpsilon))
	// Output:
	// [0, 0.5]
	// [0.5, 0]
	// <nil>
}
