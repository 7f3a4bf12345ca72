// SPDX-License-Identifier: MIT

// Package matrix - IntVector: a one-dimensional int container.
// Used for per-instance proton counts.
package matrix

import "fmt"

// IntVector is a dense int vector with bounds-checked access.
type IntVector struct {
	data []int
}

// NewIntVector creates a zero vector of length n (n > 0).
func NewIntVector(n int) (*IntVector, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &IntVector{data: make([]int, n)}, nil
}

// NewIntVectorFrom copies values into a new IntVector.
func NewIntVectorFrom(values []int) (*IntVector, error) {
	v, err := NewIntVector(len(values))
	if err != nil {
		return nil, err
	}
	copy(v.data, values)

	return v, nil
}

// Len returns the number of elements.
func (v *IntVector) Len() int { return len(v.data) }

// At returns element i or ErrOutOfRange.
func (v *IntVector) At(i int) (int, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("IntVector.At(%d): %w", i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Set stores x at i or returns ErrOutOfRange.
func (v *IntVector) Set(i int, x int) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("IntVector.Set(%d): %w", i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}
