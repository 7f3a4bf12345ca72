// SPDX-License-Identifier: MIT

// Package matrix - Vector: a one-dimensional float64 container.
//
// Purpose:
//   - Hold per-instance real data (intrinsic energies, occupancy probabilities,
//     Boltzmann factors) with the same safety guarantees as Dense.
//   - Offer the in-place element-wise kernels the Boltzmann summation needs:
//     Fill, AddScalar, Scale, Exp, Sum, AddAt.
//
// Determinism:
//   - All kernels walk the buffer in fixed 0..n-1 order; Sum is a plain
//     left-to-right accumulation so results are bit-reproducible.
package matrix

import (
	"fmt"
	"math"
)

const (
	ctxVecAt    = "At"
	ctxVecSet   = "Set"
	ctxVecAddAt = "AddAt"
)

// vectorErrorf wraps an error with "Vector.<method>(i): <err>".
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is a dense float64 vector.
type Vector struct {
	data           []float64 // len == n
	validateNaNInf bool      // reject NaN/Inf in Set/AddAt when true
}

// NewVector creates a zero vector of length n (n > 0).
// Returns ErrInvalidDimensions for n <= 0.
// Complexity: O(n).
func NewVector(n int, opts ...Option) (*Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Vector{data: make([]float64, n), validateNaNInf: o.validateNaNInf}, nil
}

// NewVectorFrom copies values into a new Vector, applying the numeric policy
// to every element.
func NewVectorFrom(values []float64, opts ...Option) (*Vector, error) {
	v, err := NewVector(len(values), opts...)
	if err != nil {
		return nil, err
	}
	for i, x := range values {
		if err = v.Set(i, x); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vectorErrorf(ctxVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at i. Errors: ErrOutOfRange, ErrNaNInf (under the policy).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecSet, i, ErrOutOfRange)
	}
	if v.validateNaNInf && isNonFinite(x) {
		return vectorErrorf(ctxVecSet, i, ErrNaNInf)
	}
	v.data[i] = x

	return nil
}

// AddAt accumulates x into element i (data[i] += x).
// The element is left untouched on error.
func (v *Vector) AddAt(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vectorErrorf(ctxVecAddAt, i, ErrOutOfRange)
	}
	sum := v.data[i] + x
	if v.validateNaNInf && isNonFinite(sum) {
		return vectorErrorf(ctxVecAddAt, i, ErrNaNInf)
	}
	v.data[i] = sum

	return nil
}

// Fill sets every element to x.
func (v *Vector) Fill(x float64) {
	for i := range v.data {
		v.data[i] = x
	}
}

// AddScalar adds s to every element in place.
func (v *Vector) AddScalar(s float64) {
	for i := range v.data {
		v.data[i] += s
	}
}

// Scale multiplies every element by f in place.
func (v *Vector) Scale(f float64) {
	for i := range v.data {
		v.data[i] *= f
	}
}

// Exp replaces every element x by e^x in place.
func (v *Vector) Exp() {
	for i := range v.data {
		v.data[i] = math.Exp(v.data[i])
	}
}

// Sum returns the left-to-right sum of all elements.
func (v *Vector) Sum() float64 {
	var s float64
	for _, x := range v.data {
		s += x
	}

	return s
}

// Values returns a copy of the underlying data.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy with the same numeric policy.
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Values(), validateNaNInf: v.validateNaNInf}
}
