// SPDX-License-Identifier: MIT

// Package statevector - lifecycle & accessors.
//
// Construction is staged: New sizes the three parallel slices, SetRange (or
// NewWithRanges) fills each site's [min, max] and places the site at its
// minimum. Every accessor bounds-checks and returns ErrOutOfRange instead of
// a sentinel value; failed writes never mutate the vector.
package statevector

import (
	"fmt"
	"strings"
)

const (
	ctxItem          = "Item"
	ctxSetItem       = "SetItem"
	ctxActualItem    = "ActualItem"
	ctxSetActualItem = "SetActualItem"
	ctxSetRange      = "SetRange"
)

// New allocates a StateVector with length sites.
//
// Behavior highlights:
//   - length == 0 yields a valid vector with no backing slices.
//   - All sites start with the range [0, 0]; call SetRange before enumerating.
//
// Errors:
//   - ErrInvalidLength when length < 0. Nothing is returned on failure.
//
// Complexity: O(length).
func New(length int) (*StateVector, error) {
	if length < 0 {
		return nil, fmt.Errorf("New(%d): %w", length, ErrInvalidLength)
	}
	sv := &StateVector{length: length}
	if length > 0 {
		sv.vector = make([]int, length)
		sv.minvector = make([]int, length)
		sv.maxvector = make([]int, length)
	}

	return sv, nil
}

// NewWithRanges allocates a StateVector and sets site i's range to
// [mins[i], maxs[i]]. The vector starts at its first state (all minimums).
//
// Errors:
//   - ErrInvalidRange when len(mins) != len(maxs) or any range is invalid.
func NewWithRanges(mins, maxs []int) (*StateVector, error) {
	if len(mins) != len(maxs) {
		return nil, fmt.Errorf("NewWithRanges(%d,%d): %w", len(mins), len(maxs), ErrInvalidRange)
	}
	sv, err := New(len(mins))
	if err != nil {
		return nil, err
	}
	for i := range mins {
		if err = sv.SetRange(i, mins[i], maxs[i]); err != nil {
			return nil, err
		}
	}

	return sv, nil
}

// SetRange fixes the admissible global instance range of a site and moves the
// site to min. Ranges are meant to be set once, before enumeration starts.
//
// Errors:
//   - ErrOutOfRange for a bad site index.
//   - ErrInvalidRange when min < 0 or min > max.
func (sv *StateVector) SetRange(site, min, max int) error {
	if site < 0 || site >= sv.length {
		return svErrorf(ctxSetRange, site, ErrOutOfRange)
	}
	if min < 0 || min > max {
		return svErrorf(ctxSetRange, site, fmt.Errorf("[%d,%d]: %w", min, max, ErrInvalidRange))
	}
	sv.minvector[site] = min
	sv.maxvector[site] = max
	sv.vector[site] = min

	return nil
}

// Release drops the vector, its ranges and its substate together. The
// StateVector then behaves as an empty vector. Safe on nil and idempotent.
func (sv *StateVector) Release() {
	if sv == nil {
		return
	}
	sv.maxvector = nil
	sv.minvector = nil
	sv.vector = nil
	sv.substate = nil
	sv.length = 0
}

// Len returns the number of sites.
func (sv *StateVector) Len() int { return sv.length }

// Min returns the lower bound of site i, or ErrOutOfRange.
func (sv *StateVector) Min(i int) (int, error) {
	if i < 0 || i >= sv.length {
		return 0, svErrorf("Min", i, ErrOutOfRange)
	}

	return sv.minvector[i], nil
}

// Max returns the upper bound of site i, or ErrOutOfRange.
func (sv *StateVector) Max(i int) (int, error) {
	if i < 0 || i >= sv.length {
		return 0, svErrorf("Max", i, ErrOutOfRange)
	}

	return sv.maxvector[i], nil
}

// Radix returns the number of instances of site i (max-min+1), or ErrOutOfRange.
func (sv *StateVector) Radix(i int) (int, error) {
	if i < 0 || i >= sv.length {
		return 0, svErrorf("Radix", i, ErrOutOfRange)
	}

	return sv.maxvector[i] - sv.minvector[i] + 1, nil
}

// Reset returns the vector to its first state: every site at its minimum.
func (sv *StateVector) Reset() {
	copy(sv.vector, sv.minvector)
}

// ResetToMaximum moves the vector to its last state: every site at its maximum.
func (sv *StateVector) ResetToMaximum() {
	copy(sv.vector, sv.maxvector)
}

// Item returns the local instance index of site i, i.e. vector[i]-min[i],
// usually 0 or 1 for most sites and 0..3 for histidines.
func (sv *StateVector) Item(i int) (int, error) {
	if i < 0 || i >= sv.length {
		return 0, svErrorf(ctxItem, i, ErrOutOfRange)
	}

	return sv.vector[i] - sv.minvector[i], nil
}

// SetItem activates local instance value at site i.
// Fails without mutation when i or value+min[i] is out of range.
func (sv *StateVector) SetItem(i, value int) error {
	if i < 0 || i >= sv.length {
		return svErrorf(ctxSetItem, i, ErrOutOfRange)
	}
	actual := value + sv.minvector[i]
	if actual < sv.minvector[i] || actual > sv.maxvector[i] {
		return svErrorf(ctxSetItem, i, fmt.Errorf("value %d: %w", value, ErrOutOfRange))
	}
	sv.vector[i] = actual

	return nil
}

// ActualItem returns the global instance index active at site i.
func (sv *StateVector) ActualItem(i int) (int, error) {
	if i < 0 || i >= sv.length {
		return 0, svErrorf(ctxActualItem, i, ErrOutOfRange)
	}

	return sv.vector[i], nil
}

// SetActualItem activates global instance value at site i.
// Fails without mutation when i is out of range or value lies outside [min[i], max[i]].
func (sv *StateVector) SetActualItem(i, value int) error {
	if i < 0 || i >= sv.length {
		return svErrorf(ctxSetActualItem, i, ErrOutOfRange)
	}
	if value < sv.minvector[i] || value > sv.maxvector[i] {
		return svErrorf(ctxSetActualItem, i, fmt.Errorf("value %d: %w", value, ErrOutOfRange))
	}
	sv.vector[i] = value

	return nil
}

// Clone returns a deep copy, substate included.
func (sv *StateVector) Clone() *StateVector {
	cp := &StateVector{length: sv.length}
	if sv.length > 0 {
		cp.vector = append([]int(nil), sv.vector...)
		cp.minvector = append([]int(nil), sv.minvector...)
		cp.maxvector = append([]int(nil), sv.maxvector...)
	}
	if sv.substate != nil {
		cp.substate = append(make([]int, 0, len(sv.substate)), sv.substate...)
	}

	return cp
}

// maxInstance returns the largest reachable global instance index, -1 when empty.
func (sv *StateVector) maxInstance() int {
	m := -1
	for _, v := range sv.maxvector {
		if v > m {
			m = v
		}
	}

	return m
}

// String renders the active global instances, e.g. "[0 3 5]".
func (sv *StateVector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range sv.vector {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteByte(']')

	return b.String()
}
