// SPDX-License-Identifier: MIT

// Package statevector - odometer (full and substate-restricted enumeration).
//
// Algorithm Outline (Increment):
//  1. For site i = 0..length-1:
//     if vector[i] < max[i]: vector[i]++ and report a new state;
//     else: vector[i] = min[i] and carry into site i+1.
//  2. Carrying past the last site leaves every site at its minimum and
//     reports exhaustion.
//
// Starting from Reset, exactly ∏(max[i]-min[i]+1) states are visited before
// Increment returns false, and the vector is back at its first state, ready
// to restart. IncrementSubstate runs the same counter over substate sites only.
package statevector

import (
	"fmt"
	"math"
)

// Increment advances the vector to the next combination, site 0 being the
// fastest-changing digit. Returns false when the odometer wraps around.
// Complexity: amortized O(1), worst case O(length).
func (sv *StateVector) Increment() bool {
	for i := 0; i < sv.length; i++ {
		if sv.vector[i] < sv.maxvector[i] {
			sv.vector[i]++
			return true
		}
		sv.vector[i] = sv.minvector[i] // carry
	}

	return false
}

// NumStates returns the odometer period ∏(max[i]-min[i]+1); 1 for an empty vector.
// Errors: ErrTooManyStates when the product overflows int.
func (sv *StateVector) NumStates() (int, error) {
	return sv.period(sv.sites())
}

// NumSubstates returns the substate odometer period.
// Errors: ErrNoSubstate, ErrIncompleteSubstate, ErrTooManyStates.
func (sv *StateVector) NumSubstates() (int, error) {
	if sv.substate == nil {
		return 0, fmt.Errorf("NumSubstates: %w", ErrNoSubstate)
	}
	for k, s := range sv.substate {
		if s == unsetSite {
			return 0, svErrorf("NumSubstates", k, ErrIncompleteSubstate)
		}
	}

	return sv.period(sv.substate)
}

// sites returns the identity site list 0..length-1.
func (sv *StateVector) sites() []int {
	s := make([]int, sv.length)
	for i := range s {
		s[i] = i
	}

	return s
}

// period multiplies the radices of the given sites with an overflow guard.
func (sv *StateVector) period(sites []int) (int, error) {
	n := 1
	for _, s := range sites {
		r := sv.maxvector[s] - sv.minvector[s] + 1
		if n > math.MaxInt/r {
			return 0, fmt.Errorf("site %d: %w", s, ErrTooManyStates)
		}
		n *= r
	}

	return n, nil
}

// unsetSite marks a substate position not yet filled by SetSubstateItem.
const unsetSite = -1

// AllocateSubstate reserves a substate of nsites positions, all initially
// unset. A StateVector holds at most one substate for its whole lifetime.
//
// Errors:
//   - ErrSubstateExists when called twice; the first substate is untouched.
//   - ErrInvalidLength when nsites < 0.
func (sv *StateVector) AllocateSubstate(nsites int) error {
	if sv.substate != nil {
		return fmt.Errorf("AllocateSubstate(%d): %w", nsites, ErrSubstateExists)
	}
	if nsites < 0 {
		return fmt.Errorf("AllocateSubstate(%d): %w", nsites, ErrInvalidLength)
	}
	sv.substate = make([]int, nsites)
	for k := range sv.substate {
		sv.substate[k] = unsetSite
	}

	return nil
}

// SubstateLen returns the substate size; 0 when no substate is allocated.
func (sv *StateVector) SubstateLen() int { return len(sv.substate) }

// HasSubstate reports whether AllocateSubstate has succeeded.
func (sv *StateVector) HasSubstate() bool { return sv.substate != nil }

// SetSubstateItem stores site at position index of the substate.
// A site may appear at one position only; the odometer would never wrap
// with a site listed twice.
//
// Errors (the substate is left unmodified):
//   - ErrOutOfRange when index is outside [0, SubstateLen()) or site is
//     outside [0, Len()).
//   - ErrDuplicateSite when site is already stored at another position.
func (sv *StateVector) SetSubstateItem(site, index int) error {
	if index < 0 || index >= len(sv.substate) {
		return svErrorf("SetSubstateItem", index, ErrOutOfRange)
	}
	if site < 0 || site >= sv.length {
		return svErrorf("SetSubstateItem", index, fmt.Errorf("site %d: %w", site, ErrOutOfRange))
	}
	for k, s := range sv.substate {
		if s == site && k != index {
			return svErrorf("SetSubstateItem", index, fmt.Errorf("site %d at %d: %w", site, k, ErrDuplicateSite))
		}
	}
	sv.substate[index] = site

	return nil
}

// SubstateItem returns the site stored at position index of the substate.
// Errors: ErrOutOfRange, ErrIncompleteSubstate for a position never set.
func (sv *StateVector) SubstateItem(index int) (int, error) {
	if index < 0 || index >= len(sv.substate) {
		return 0, svErrorf("SubstateItem", index, ErrOutOfRange)
	}
	if sv.substate[index] == unsetSite {
		return 0, svErrorf("SubstateItem", index, ErrIncompleteSubstate)
	}

	return sv.substate[index], nil
}

// ResetSubstate moves every substate site to its minimum. Unset positions
// are skipped; no-op without a substate.
func (sv *StateVector) ResetSubstate() {
	for _, s := range sv.substate {
		if s != unsetSite {
			sv.vector[s] = sv.minvector[s]
		}
	}
}

// IncrementSubstate is Increment restricted to the substate sites, in
// substate order. Sites outside the substate never change. Returns false
// (and leaves the substate sites at their minimum) on wrap-around, and false
// without doing anything when no substate is allocated. Unset positions
// are skipped.
func (sv *StateVector) IncrementSubstate() bool {
	for _, s := range sv.substate {
		if s == unsetSite {
			continue
		}
		if sv.vector[s] < sv.maxvector[s] {
			sv.vector[s]++
			return true
		}
		sv.vector[s] = sv.minvector[s]
	}

	return false
}
