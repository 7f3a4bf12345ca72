package statevector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/microstate/matrix"
	"github.com/katalvlaran/microstate/statevector"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance used for floating-point comparisons.
const tol = 1e-9

// system is a raw description of a titratable system used to build tables
// and to compute reference values independently of the package under test.
type system struct {
	mins, maxs   []int
	protons      []int
	intrinsic    []float64
	interactions [][]float64
}

// twoSites returns a 2-site system with disjoint global ranges [0,1] and [2,3].
// Instance 0 and 2 are the protonated forms.
func twoSites() system {
	return system{
		mins:      []int{0, 2},
		maxs:      []int{1, 3},
		protons:   []int{1, 0, 1, 0},
		intrinsic: []float64{0.0, 1.2, 0.0, -0.5},
		interactions: [][]float64{
			{0.0, 0.0, 0.3, 0.1},
			{0.0, 0.0, -0.2, 0.8},
			{0.3, -0.2, 0.0, 0.0},
			{0.1, 0.8, 0.0, 0.0},
		},
	}
}

// threeSites returns a 3-site system with radices 2, 3 and 2.
func threeSites() system {
	return system{
		mins:      []int{0, 2, 5},
		maxs:      []int{1, 4, 6},
		protons:   []int{1, 0, 2, 1, 0, 1, 0},
		intrinsic: []float64{0.4, -0.3, 1.1, 0.2, -0.7, 0.0, 0.9},
		interactions: [][]float64{
			{0, 0, 0.5, 0.2, 0.1, 0.3, -0.1},
			{0, 0, -0.4, 0.0, 0.6, 0.2, 0.2},
			{0.5, -0.4, 0, 0, 0, 0.7, 0.1},
			{0.2, 0.0, 0, 0, 0, -0.3, 0.4},
			{0.1, 0.6, 0, 0, 0, 0.0, 0.2},
			{0.3, 0.2, 0.7, -0.3, 0.0, 0, 0},
			{-0.1, 0.2, 0.1, 0.4, 0.2, 0, 0},
		},
	}
}

// tables converts s into matrix-backed Tables.
func (s system) tables(t *testing.T) statevector.Tables {
	t.Helper()
	p, err := matrix.NewIntVectorFrom(s.protons)
	require.NoError(t, err)
	g, err := matrix.NewVectorFrom(s.intrinsic)
	require.NoError(t, err)
	w, err := matrix.NewDenseFromRows(s.interactions)
	require.NoError(t, err)

	return statevector.Tables{Protons: p, Intrinsic: g, Interactions: w}
}

// vector builds a StateVector at its first state.
func (s system) vector(t *testing.T) *statevector.StateVector {
	t.Helper()
	sv, err := statevector.NewWithRanges(s.mins, s.maxs)
	require.NoError(t, err)

	return sv
}

// energy is the reference microstate energy for global instances a.
func (s system) energy(a []int, c statevector.Conditions) float64 {
	var g, w float64
	var n int
	for i := range a {
		g += s.intrinsic[a[i]]
		n += s.protons[a[i]]
		for j := 0; j < i; j++ {
			w += s.interactions[a[i]][a[j]]
		}
	}
	mu := -statevector.MolarGasKcal * c.Temperature * math.Ln10 * c.PH

	return g - float64(n)*mu + w
}

// states lists every microstate in odometer order (site 0 fastest).
func (s system) states() [][]int {
	out := [][]int{append([]int(nil), s.mins...)}
	cur := append([]int(nil), s.mins...)
	for {
		i := 0
		for ; i < len(cur); i++ {
			if cur[i] < s.maxs[i] {
				cur[i]++
				break
			}
			cur[i] = s.mins[i]
		}
		if i == len(cur) {
			return out
		}
		out = append(out, append([]int(nil), cur...))
	}
}

// probabilities is the reference Boltzmann average computed without the
// minimum-energy shift.
func (s system) probabilities(c statevector.Conditions) []float64 {
	out := make([]float64, len(s.protons))
	var z float64
	for _, a := range s.states() {
		b := math.Exp(-s.energy(a, c) / (statevector.MolarGasKcal * c.Temperature))
		z += b
		for _, x := range a {
			out[x] += b
		}
	}
	for i := range out {
		out[i] /= z
	}

	return out
}

// actual reads every site's global instance.
func actual(t *testing.T, sv *statevector.StateVector) []int {
	t.Helper()
	out := make([]int, sv.Len())
	for i := range out {
		v, err := sv.ActualItem(i)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}
