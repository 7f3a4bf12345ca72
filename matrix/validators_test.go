// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/microstate/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSymmetric covers nil, non-square, bad tolerance and asymmetry.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	build := func(rows [][]float64) matrix.Matrix {
		m, err := matrix.NewDenseFromRows(rows)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		m       matrix.Matrix
		tol     float64
		wantErr error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"non-square", build([][]float64{{1, 2, 3}, {4, 5, 6}}), 0, matrix.ErrNonSquare},
		{"bad tol", build([][]float64{{1}}), math.NaN(), matrix.ErrNaNInf},
		{"symmetric", build([][]float64{{0, 0.3}, {0.3, 0}}), 0, nil},
		{"within tol", build([][]float64{{0, 0.3}, {0.3 + 1e-12, 0}}), 1e-9, nil},
		{"negative tol", build([][]float64{{0, 0.3}, {0.3 + 1e-12, 0}}), -1e-9, nil},
		{"asymmetric", build([][]float64{{0, 0.3}, {0.4, 0}}), 1e-9, matrix.ErrAsymmetry},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateFinite rejects matrices holding NaN/Inf.
func TestValidateFinite(t *testing.T) {
	m, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(m))

	require.NoError(t, m.Set(1, 0, math.Inf(1)))
	require.ErrorIs(t, matrix.ValidateFinite(m), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

// TestOptionsOrder verifies later options override earlier ones and nil is skipped.
func TestOptionsOrder(t *testing.T) {
	v, err := matrix.NewVector(1, matrix.WithNoValidateNaNInf(), nil, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, v.Set(0, math.NaN()), matrix.ErrNaNInf)

	v, err = matrix.NewVector(1, matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, v.Set(0, math.NaN()))
}
