// SPDX-License-Identifier: MIT

// Package statevector: domain types, physical constants, sentinel errors and
// the read-only table interfaces the energy functional consumes.
package statevector

import (
	"errors"
	"fmt"
	"math"
)

// Physical constants.
const (
	// MolarGasKcal is the molar gas constant R in kcal/(mol·K).
	MolarGasKcal = 1.987165392e-3

	// Ln10 is the natural logarithm of 10.
	Ln10 = math.Ln10
)

// Defaults for Conditions.
const (
	// DefaultPH is the pH used by DefaultConditions.
	DefaultPH = 7.0

	// DefaultTemperature is the temperature in Kelvin used by DefaultConditions.
	DefaultTemperature = 300.0
)

var (
	// ErrNilStateVector indicates a method was called on a nil *StateVector.
	ErrNilStateVector = errors.New("statevector: nil state vector")

	// ErrInvalidLength indicates a negative site count or substate size.
	ErrInvalidLength = errors.New("statevector: length must be >= 0")

	// ErrInvalidRange indicates a site range with min < 0 or min > max,
	// or min/max slices of different lengths.
	ErrInvalidRange = errors.New("statevector: invalid instance range")

	// ErrOutOfRange indicates a site index, substate index or instance value
	// outside its admissible bounds. The state vector is left unmodified.
	ErrOutOfRange = errors.New("statevector: index out of range")

	// ErrSubstateExists is returned by AllocateSubstate when a substate is
	// already present; the existing substate is untouched.
	ErrSubstateExists = errors.New("statevector: substate already allocated")

	// ErrNoSubstate indicates an operation that requires a substate was called
	// before AllocateSubstate.
	ErrNoSubstate = errors.New("statevector: substate not allocated")

	// ErrDuplicateSite is returned by SetSubstateItem when the site is already
	// stored at another substate position.
	ErrDuplicateSite = errors.New("statevector: site already in substate")

	// ErrIncompleteSubstate indicates a substate position that was never set.
	ErrIncompleteSubstate = errors.New("statevector: substate position not set")

	// ErrTooManyStates indicates that the product of site radices overflows int.
	ErrTooManyStates = errors.New("statevector: number of states overflows int")

	// ErrStateCountMismatch indicates that the nstates passed to
	// CalculateProbabilitiesAnalytically differs from the odometer period.
	ErrStateCountMismatch = errors.New("statevector: nstates does not match odometer period")

	// ErrOutputTooShort indicates that the probability accumulator cannot hold
	// every reachable instance index.
	ErrOutputTooShort = errors.New("statevector: output shorter than instance range")

	// ErrNilTable indicates a missing proton, intrinsic, interaction or output table.
	ErrNilTable = errors.New("statevector: nil table")

	// ErrInvalidConditions indicates a non-finite pH or a non-positive or
	// non-finite temperature.
	ErrInvalidConditions = errors.New("statevector: invalid conditions")
)

// svErrorf wraps err with "StateVector.<method>(<arg>): <err>".
func svErrorf(method string, arg int, err error) error {
	return fmt.Errorf("StateVector.%s(%d): %w", method, arg, err)
}

// StateVector is one point of the combinatorial state space of a multi-site
// system plus the per-site admissible instance ranges.
//
//   - vector[i] is the global instance index active at site i.
//   - minvector[i]..maxvector[i] is the inclusive range of site i.
//   - substate lists distinct site indices enumerated by IncrementSubstate;
//     unsetSite marks a position not yet filled by SetSubstateItem.
//
// Invariant: minvector[i] <= vector[i] <= maxvector[i] for every site.
type StateVector struct {
	vector    []int // active global instance per site
	minvector []int // inclusive lower bound per site
	maxvector []int // inclusive upper bound per site
	substate  []int // selected site indices; nil when absent
	length    int   // number of sites; fixed at construction
}

// ProtonTable maps a global instance index to the protons it carries.
// *matrix.IntVector satisfies it.
type ProtonTable interface {
	At(i int) (int, error)
}

// EnergyTable maps a global instance index to its intrinsic energy.
// *matrix.Vector satisfies it.
type EnergyTable interface {
	At(i int) (float64, error)
}

// InteractionTable maps a pair of global instance indices to their
// interaction energy. Only At(a_i, a_j) with site j < site i is queried.
// *matrix.Dense satisfies it.
type InteractionTable interface {
	At(i, j int) (float64, error)
}

// Accumulator receives per-instance probability mass.
// *matrix.Vector satisfies it.
type Accumulator interface {
	Len() int
	Fill(v float64)
	AddAt(i int, v float64) error
	Scale(f float64)
}

// Tables bundles the three read-only data tables of the energy functional.
type Tables struct {
	Protons      ProtonTable
	Intrinsic    EnergyTable
	Interactions InteractionTable
}

// validate reports ErrNilTable when any table is missing.
func (t Tables) validate() error {
	switch {
	case t.Protons == nil:
		return fmt.Errorf("protons: %w", ErrNilTable)
	case t.Intrinsic == nil:
		return fmt.Errorf("intrinsic: %w", ErrNilTable)
	case t.Interactions == nil:
		return fmt.Errorf("interactions: %w", ErrNilTable)
	}

	return nil
}

// Conditions are the physical parameters of an energy evaluation.
type Conditions struct {
	PH          float64 // log proton activity, unitless
	Temperature float64 // Kelvin
}

// DefaultConditions returns pH DefaultPH at DefaultTemperature.
func DefaultConditions() Conditions {
	return Conditions{PH: DefaultPH, Temperature: DefaultTemperature}
}

// Validate rejects a non-finite pH and a non-finite or non-positive temperature.
func (c Conditions) Validate() error {
	if math.IsNaN(c.PH) || math.IsInf(c.PH, 0) {
		return fmt.Errorf("pH=%g: %w", c.PH, ErrInvalidConditions)
	}
	if math.IsNaN(c.Temperature) || math.IsInf(c.Temperature, 0) || c.Temperature <= 0 {
		return fmt.Errorf("temperature=%g: %w", c.Temperature, ErrInvalidConditions)
	}

	return nil
}

// RT returns R·T in kcal/mol.
func (c Conditions) RT() float64 {
	return MolarGasKcal * c.Temperature
}

// protonPotential is the per-proton chemical potential term -R·T·ln10·pH.
func (c Conditions) protonPotential() float64 {
	return -MolarGasKcal * c.Temperature * Ln10 * c.PH
}

// Microstate is one entry of a substate scan: the microstate energy and the
// local instance index of every substate site, in substate order.
type Microstate struct {
	Energy    float64
	Instances []int
}
