// SPDX-License-Identifier: MIT

package statevector

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ScanSubstate enumerates every combination of the substate sites, with all
// other sites held at their current instances, and returns the microstates
// sorted by ascending energy, ties ordered lexicographically by Instances.
//
// Instances holds the local instance index of each substate site in substate
// order. The substate sites are left at their minimum afterwards.
//
// Errors: ErrNoSubstate, ErrIncompleteSubstate, ErrNilTable,
// ErrInvalidConditions, ErrTooManyStates and wrapped table errors.
// Complexity: O(nsub·length²) time, O(nsub·k) memory for a substate of k
// sites with nsub combinations.
func (sv *StateVector) ScanSubstate(t Tables, c Conditions) ([]Microstate, error) {
	if sv.substate == nil {
		return nil, fmt.Errorf("ScanSubstate: %w", ErrNoSubstate)
	}
	if err := t.validate(); err != nil {
		return nil, fmt.Errorf("ScanSubstate: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("ScanSubstate: %w", err)
	}
	n, err := sv.NumSubstates()
	if err != nil {
		return nil, fmt.Errorf("ScanSubstate: %w", err)
	}

	mu := c.protonPotential()
	states := make([]Microstate, 0, n)
	sv.ResetSubstate()
	for more := true; more && len(states) < n; more = sv.IncrementSubstate() {
		energy, err := sv.microstateEnergy(t, mu)
		if err != nil {
			sv.ResetSubstate()
			return nil, fmt.Errorf("ScanSubstate: state %d: %w", len(states), err)
		}
		local := make([]int, len(sv.substate))
		for k, s := range sv.substate {
			local[k] = sv.vector[s] - sv.minvector[s]
		}
		states = append(states, Microstate{Energy: energy, Instances: local})
	}

	sv.ResetSubstate()

	slices.SortStableFunc(states, func(a, b Microstate) bool {
		if a.Energy != b.Energy {
			return a.Energy < b.Energy
		}
		return slices.Compare(a.Instances, b.Instances) < 0
	})

	return states, nil
}
