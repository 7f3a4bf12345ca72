// SPDX-License-Identifier: MIT

// Package statevector - exhaustive (analytic) probability calculation.
//
// Algorithm Outline:
//  1. Check nstates against the odometer period and the accumulator length
//     against the largest reachable instance index.
//  2. Pass 1, from the current state: record nstates energies (nstates-1
//     increments) and their minimum Emin.
//  3. bfactor[s] = exp(-(E[s]-Emin)/RT). Shifting by Emin keeps every
//     exponent <= 0, so nothing overflows and relative weights are unchanged.
//  4. Zero the accumulator, Reset, pass 2: add bfactor[s] into
//     out[a_i] for every site i of microstate s.
//  5. Divide by the partition function Σ bfactor.
//
// Both passes walk the same odometer order, which is what ties bfactor[s] to
// microstate s in pass 2. Pass 1 therefore must start at the first state.
package statevector

import (
	"fmt"

	"github.com/katalvlaran/microstate/matrix"
)

const ctxProbabilities = "CalculateProbabilitiesAnalytically"

// CalculateProbabilitiesAnalytically fills out with the Boltzmann-averaged
// probability that each global instance is active, enumerating all nstates
// microstates. The vector is expected to be at its first state (see Reset)
// and is left there on success.
//
// Errors (all reported before out is touched):
//   - ErrNilTable for a missing table or accumulator.
//   - ErrInvalidConditions for bad pH/temperature.
//   - ErrStateCountMismatch when nstates != NumStates().
//   - ErrTooManyStates when the period overflows int.
//   - ErrOutputTooShort when out.Len() <= the largest reachable instance.
//
// A table read error during pass 1 leaves out untouched; the vector is then
// at an intermediate state.
//
// Complexity: O(nstates·length²) time, O(nstates) extra memory.
func (sv *StateVector) CalculateProbabilitiesAnalytically(t Tables, c Conditions, nstates int, out Accumulator) error {
	if sv == nil {
		return fmt.Errorf("%s: %w", ctxProbabilities, ErrNilStateVector)
	}
	if err := t.validate(); err != nil {
		return fmt.Errorf("%s: %w", ctxProbabilities, err)
	}
	if out == nil {
		return fmt.Errorf("%s: output: %w", ctxProbabilities, ErrNilTable)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("%s: %w", ctxProbabilities, err)
	}
	period, err := sv.NumStates()
	if err != nil {
		return fmt.Errorf("%s: %w", ctxProbabilities, err)
	}
	if nstates != period {
		return fmt.Errorf("%s: nstates=%d, period=%d: %w", ctxProbabilities, nstates, period, ErrStateCountMismatch)
	}
	if need := sv.maxInstance() + 1; out.Len() < need {
		return fmt.Errorf("%s: len=%d, need %d: %w", ctxProbabilities, out.Len(), need, ErrOutputTooShort)
	}

	// Scratch buffer: energies first, Boltzmann factors after the transform.
	bfactors, err := matrix.NewVector(nstates, matrix.WithNoValidateNaNInf())
	if err != nil {
		return fmt.Errorf("%s: %w", ctxProbabilities, err)
	}

	mu := c.protonPotential()
	var (
		s                  int
		energy, energyZero float64
	)
	for s = 0; s < nstates; s++ {
		if energy, err = sv.microstateEnergy(t, mu); err != nil {
			return fmt.Errorf("%s: state %d: %w", ctxProbabilities, s, err)
		}
		if s == 0 || energy < energyZero {
			energyZero = energy
		}
		_ = bfactors.Set(s, energy) // s < nstates == Len
		if s < nstates-1 {
			sv.Increment()
		}
	}

	bfactors.AddScalar(-energyZero)
	bfactors.Scale(-1 / c.RT())
	bfactors.Exp()

	out.Fill(0)
	sv.Reset()

	var (
		i       int
		bfactor float64
	)
	for s = 0; s < nstates; s++ {
		bfactor, _ = bfactors.At(s)
		for i = 0; i < sv.length; i++ {
			if err = out.AddAt(sv.vector[i], bfactor); err != nil {
				return fmt.Errorf("%s: state %d site %d: %w", ctxProbabilities, s, i, err)
			}
		}
		sv.Increment()
	}

	// bsum >= 1: the lowest microstate contributes exp(0).
	out.Scale(1 / bfactors.Sum())

	return nil
}

// Probabilities resets the vector, sizes a fresh output to cover every
// reachable instance, and runs CalculateProbabilitiesAnalytically over the
// full period.
//
// Errors: those of CalculateProbabilitiesAnalytically, plus ErrInvalidLength
// for an empty vector.
func (sv *StateVector) Probabilities(t Tables, c Conditions) (*matrix.Vector, error) {
	if sv == nil {
		return nil, fmt.Errorf("Probabilities: %w", ErrNilStateVector)
	}
	if sv.length == 0 {
		return nil, fmt.Errorf("Probabilities: %w", ErrInvalidLength)
	}
	nstates, err := sv.NumStates()
	if err != nil {
		return nil, fmt.Errorf("Probabilities: %w", err)
	}
	out, err := matrix.NewVector(sv.maxInstance() + 1)
	if err != nil {
		return nil, fmt.Errorf("Probabilities: %w", err)
	}

	sv.Reset()
	if err = sv.CalculateProbabilitiesAnalytically(t, c, nstates, out); err != nil {
		return nil, err
	}

	return out, nil
}
