// SPDX-License-Identifier: MIT

package statevector

import "fmt"

// MicrostateEnergy returns the free energy of the current microstate:
//
//	G = Gintr - nprotons·(-R·T·ln10·pH) + W
//
// where Gintr and nprotons sum the intrinsic energy and proton count of each
// site's active instance, and W sums interactions[a_i, a_j] over site pairs
// j < i, each pair counted once.
//
// The vector is not modified. Errors from the tables are returned wrapped;
// invalid conditions return ErrInvalidConditions.
// Complexity: O(length²).
func (sv *StateVector) MicrostateEnergy(t Tables, c Conditions) (float64, error) {
	if err := t.validate(); err != nil {
		return 0, fmt.Errorf("MicrostateEnergy: %w", err)
	}
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("MicrostateEnergy: %w", err)
	}

	return sv.microstateEnergy(t, c.protonPotential())
}

// microstateEnergy is MicrostateEnergy without argument validation; mu is the
// precomputed per-proton potential.
func (sv *StateVector) microstateEnergy(t Tables, mu float64) (float64, error) {
	var (
		gintr, w float64
		nprotons int
		i, j, a  int
		g, wij   float64
		protons  int
		err      error
	)
	for i = 0; i < sv.length; i++ {
		a = sv.vector[i]
		if protons, err = t.Protons.At(a); err != nil {
			return 0, fmt.Errorf("site %d: protons: %w", i, err)
		}
		if g, err = t.Intrinsic.At(a); err != nil {
			return 0, fmt.Errorf("site %d: intrinsic: %w", i, err)
		}
		nprotons += protons
		gintr += g

		// strict lower triangle: every unordered pair once
		for j = 0; j < i; j++ {
			if wij, err = t.Interactions.At(a, sv.vector[j]); err != nil {
				return 0, fmt.Errorf("sites %d,%d: interactions: %w", i, j, err)
			}
			w += wij
		}
	}

	return gintr - float64(nprotons)*mu + w, nil
}
