package statevector_test

import (
	"testing"

	"github.com/katalvlaran/microstate/matrix"
	"github.com/katalvlaran/microstate/statevector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProbabilities_TwoSites checks the 4-state system against the reference
// and verifies each site's instance probabilities sum to 1.
func TestProbabilities_TwoSites(t *testing.T) {
	s := twoSites()
	sv := s.vector(t)
	c := statevector.Conditions{PH: 7, Temperature: 300}

	out, err := matrix.NewVector(4)
	require.NoError(t, err)
	require.NoError(t, sv.CalculateProbabilitiesAnalytically(s.tables(t), c, 4, out))

	got := out.Values()
	assert.InDeltaSlice(t, s.probabilities(c), got, tol)
	assert.InDelta(t, 1.0, got[0]+got[1], tol, "site 0")
	assert.InDelta(t, 1.0, got[2]+got[3], tol, "site 1")
	assert.Equal(t, s.mins, actual(t, sv), "vector ends at its first state")
}

// TestProbabilities_SharedRanges sums to the number of sites when every site
// draws from the same instance range.
func TestProbabilities_SharedRanges(t *testing.T) {
	protons, _ := matrix.NewIntVectorFrom([]int{1, 0})
	intrinsic, _ := matrix.NewVectorFrom([]float64{0.0, -0.3})
	interactions, _ := matrix.NewDenseFromRows([][]float64{{0.5, 0.0}, {0.0, 0.5}})
	tables := statevector.Tables{Protons: protons, Intrinsic: intrinsic, Interactions: interactions}

	sv, err := statevector.NewWithRanges([]int{0, 0}, []int{1, 1})
	require.NoError(t, err)
	out, err := matrix.NewVector(2)
	require.NoError(t, err)

	require.NoError(t, sv.CalculateProbabilitiesAnalytically(tables, statevector.DefaultConditions(), 4, out))
	assert.InDelta(t, 2.0, out.Sum(), tol)
}

// TestProbabilities_ThreeSites uses the convenience wrapper on a 12-state system
// across several pH values.
func TestProbabilities_ThreeSites(t *testing.T) {
	s := threeSites()
	sv := s.vector(t)
	tables := s.tables(t)

	for _, ph := range []float64{2, 7, 12} {
		c := statevector.Conditions{PH: ph, Temperature: 300}
		require.NoError(t, sv.SetItem(1, 2), "start state is irrelevant for Probabilities")

		out, err := sv.Probabilities(tables, c)
		require.NoError(t, err)
		assert.InDeltaSlice(t, s.probabilities(c), out.Values(), tol, "pH %g", ph)
		assert.InDelta(t, 3.0, out.Sum(), tol)
	}
}

// TestProbabilities_LargeEnergies stays finite where a naive exp would overflow.
func TestProbabilities_LargeEnergies(t *testing.T) {
	protons, _ := matrix.NewIntVectorFrom([]int{0, 0})
	intrinsic, _ := matrix.NewVectorFrom([]float64{-1000, -1000.5})
	interactions, _ := matrix.NewDense(2, 2)
	tables := statevector.Tables{Protons: protons, Intrinsic: intrinsic, Interactions: interactions}

	sv, err := statevector.NewWithRanges([]int{0}, []int{1})
	require.NoError(t, err)
	out, err := sv.Probabilities(tables, statevector.DefaultConditions())
	require.NoError(t, err)

	got := out.Values()
	assert.InDelta(t, 1.0, got[0]+got[1], tol)
	assert.Greater(t, got[1], got[0], "lower energy is more probable")
}

// TestProbabilities_StateCountMismatch rejects a wrong nstates before writing.
func TestProbabilities_StateCountMismatch(t *testing.T) {
	s := twoSites()
	sv := s.vector(t)
	out, err := matrix.NewVector(4)
	require.NoError(t, err)
	out.Fill(7)

	for _, n := range []int{3, 5, 0} {
		err = sv.CalculateProbabilitiesAnalytically(s.tables(t), statevector.DefaultConditions(), n, out)
		assert.ErrorIs(t, err, statevector.ErrStateCountMismatch, "nstates %d", n)
	}
	assert.Equal(t, []float64{7, 7, 7, 7}, out.Values(), "output untouched")
}

// TestProbabilities_OutputTooShort rejects an accumulator that misses instances.
func TestProbabilities_OutputTooShort(t *testing.T) {
	s := twoSites()
	sv := s.vector(t)
	out, err := matrix.NewVector(3)
	require.NoError(t, err)

	err = sv.CalculateProbabilitiesAnalytically(s.tables(t), statevector.DefaultConditions(), 4, out)
	assert.ErrorIs(t, err, statevector.ErrOutputTooShort)
}

// TestProbabilities_Errors covers nil receiver, nil output and empty vectors.
func TestProbabilities_Errors(t *testing.T) {
	s := twoSites()
	var nilSV *statevector.StateVector

	err := nilSV.CalculateProbabilitiesAnalytically(s.tables(t), statevector.DefaultConditions(), 4, nil)
	assert.ErrorIs(t, err, statevector.ErrNilStateVector)

	err = s.vector(t).CalculateProbabilitiesAnalytically(s.tables(t), statevector.DefaultConditions(), 4, nil)
	assert.ErrorIs(t, err, statevector.ErrNilTable)

	empty, err := statevector.New(0)
	require.NoError(t, err)
	_, err = empty.Probabilities(s.tables(t), statevector.DefaultConditions())
	assert.ErrorIs(t, err, statevector.ErrInvalidLength)
}
