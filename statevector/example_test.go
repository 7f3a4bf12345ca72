package statevector_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/microstate/matrix"
	"github.com/katalvlaran/microstate/statevector"
)

// ExampleStateVector_Increment walks a 2×3 odometer; site 0 is the fastest digit.
func ExampleStateVector_Increment() {
	sv, _ := statevector.NewWithRanges([]int{0, 2}, []int{1, 4})
	var visited []string
	for more := true; more; more = sv.Increment() {
		visited = append(visited, sv.String())
	}
	fmt.Println(strings.Join(visited, " "))
	fmt.Println("after wrap:", sv)
	// Output:
	// [0 2] [1 2] [0 3] [1 3] [0 4] [1 4]
	// after wrap: [0 2]
}

// ExampleStateVector_CalculateProbabilitiesAnalytically computes the
// probabilities of a single site whose two instances have equal intrinsic
// energy; at pH 0 the proton term vanishes and both are equally likely.
func ExampleStateVector_CalculateProbabilitiesAnalytically() {
	protons, _ := matrix.NewIntVectorFrom([]int{1, 0})
	intrinsic, _ := matrix.NewVectorFrom([]float64{0, 0})
	interactions, _ := matrix.NewDense(2, 2)
	tables := statevector.Tables{Protons: protons, Intrinsic: intrinsic, Interactions: interactions}

	sv, _ := statevector.NewWithRanges([]int{0}, []int{1})
	n, _ := sv.NumStates()
	out, _ := matrix.NewVector(2)

	c := statevector.Conditions{PH: 0, Temperature: 300}
	if err := sv.CalculateProbabilitiesAnalytically(tables, c, n, out); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", out.Values())
	// Output:
	// [0.50 0.50]
}
