// SPDX-License-Identifier: MIT

// Package model - describes a titratable system in chemical terms (sites with
// labelled instances, intrinsic energies, pairwise interactions) and maps it
// onto the flat tables and StateVector ranges the statevector package works on.
//
// Global instance indices are assigned site by site in declaration order, so
// site k owns the contiguous range [first_k, first_k + len(instances_k) - 1].

package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/microstate/matrix"
	"github.com/katalvlaran/microstate/statevector"
)

var (
	// ErrInvalidModel indicates a structurally or numerically invalid model.
	ErrInvalidModel = errors.New("model: invalid model")

	// ErrUnknownSite indicates a site selection that matches no site.
	ErrUnknownSite = errors.New("model: unknown site")

	// ErrNotCalculated indicates probabilities were requested before
	// CalculateProbabilities succeeded.
	ErrNotCalculated = errors.New("model: probabilities not calculated")
)

// modelErrorf wraps err with an operation tag.
func modelErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Instance is one protonation or tautomeric form of a site.
type Instance struct {
	Label   string  `yaml:"label"`
	Protons int     `yaml:"protons"`
	Energy  float64 `yaml:"energy"` // intrinsic free energy, kcal/mol

	// Probability is filled by CalculateProbabilities.
	Probability float64 `yaml:"-"`
}

// Site is one titratable residue.
type Site struct {
	Segment   string     `yaml:"segment"`
	Residue   string     `yaml:"residue"`
	Serial    int        `yaml:"serial"`
	Instances []Instance `yaml:"instances"`
}

// Name renders the site as "SEGMENT RESIDUE SERIAL".
func (s Site) Name() string {
	return fmt.Sprintf("%s %s %d", s.Segment, s.Residue, s.Serial)
}

// Model is a complete titratable system.
//
// Interactions is a square matrix over global instance indices; an empty
// matrix means no site-site interactions.
type Model struct {
	Sites        []Site      `yaml:"sites"`
	Interactions [][]float64 `yaml:"interactions"`

	calculated bool
	conditions statevector.Conditions
}

// NumInstances returns the total number of instances over all sites.
func (m *Model) NumInstances() int {
	n := 0
	for _, s := range m.Sites {
		n += len(s.Instances)
	}

	return n
}

// Validate checks the model shape and values.
//
// Errors (all wrap ErrInvalidModel):
//   - no sites, or a site without instances;
//   - non-finite intrinsic energies or a negative proton count;
//   - an interaction matrix that is not n×n (n = NumInstances), holds NaN/Inf,
//     or is not symmetric within matrix.DefaultEpsilon (the matrix sentinel
//     is wrapped as well).
func (m *Model) Validate() error {
	if len(m.Sites) == 0 {
		return fmt.Errorf("%w: no sites", ErrInvalidModel)
	}
	for k, s := range m.Sites {
		if len(s.Instances) == 0 {
			return fmt.Errorf("%w: site %d (%s) has no instances", ErrInvalidModel, k, s.Name())
		}
		for j, in := range s.Instances {
			if math.IsNaN(in.Energy) || math.IsInf(in.Energy, 0) {
				return fmt.Errorf("%w: site %d instance %d: %w", ErrInvalidModel, k, j, matrix.ErrNaNInf)
			}
			if in.Protons < 0 {
				return fmt.Errorf("%w: site %d instance %d: negative protons", ErrInvalidModel, k, j)
			}
		}
	}
	if len(m.Interactions) == 0 {
		return nil
	}

	n := m.NumInstances()
	if len(m.Interactions) != n {
		return fmt.Errorf("%w: interactions have %d rows, want %d: %w", ErrInvalidModel, len(m.Interactions), n, matrix.ErrDimensionMismatch)
	}
	w, err := matrix.NewDenseFromRows(m.Interactions, matrix.WithNoValidateNaNInf())
	if err != nil {
		return fmt.Errorf("%w: interactions: %w", ErrInvalidModel, err)
	}
	if err = matrix.ValidateFinite(w); err != nil {
		return fmt.Errorf("%w: interactions: %w", ErrInvalidModel, err)
	}
	if err = matrix.ValidateSymmetric(w, matrix.DefaultEpsilon); err != nil {
		return fmt.Errorf("%w: interactions: %w", ErrInvalidModel, err)
	}

	return nil
}

// ranges returns the global [min, max] instance range of every site.
func (m *Model) ranges() (mins, maxs []int) {
	mins = make([]int, len(m.Sites))
	maxs = make([]int, len(m.Sites))
	first := 0
	for k, s := range m.Sites {
		mins[k] = first
		maxs[k] = first + len(s.Instances) - 1
		first += len(s.Instances)
	}

	return mins, maxs
}

// Tables validates the model and assembles the proton, intrinsic-energy and
// interaction tables indexed by global instance index.
func (m *Model) Tables() (statevector.Tables, error) {
	if err := m.Validate(); err != nil {
		return statevector.Tables{}, err
	}
	n := m.NumInstances()
	protons, err := matrix.NewIntVector(n)
	if err != nil {
		return statevector.Tables{}, modelErrorf("Tables", err)
	}
	intrinsic, err := matrix.NewVector(n)
	if err != nil {
		return statevector.Tables{}, modelErrorf("Tables", err)
	}

	a := 0
	for _, s := range m.Sites {
		for _, in := range s.Instances {
			_ = protons.Set(a, in.Protons)  // a < n
			_ = intrinsic.Set(a, in.Energy) // finite, checked by Validate
			a++
		}
	}

	var interactions *matrix.Dense
	if len(m.Interactions) == 0 {
		interactions, err = matrix.NewDense(n, n)
	} else {
		interactions, err = matrix.NewDenseFromRows(m.Interactions)
	}
	if err != nil {
		return statevector.Tables{}, modelErrorf("Tables", err)
	}

	return statevector.Tables{Protons: protons, Intrinsic: intrinsic, Interactions: interactions}, nil
}

// NewStateVector returns a StateVector spanning every site's instance range,
// positioned at its first state.
func (m *Model) NewStateVector() (*statevector.StateVector, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	mins, maxs := m.ranges()

	return statevector.NewWithRanges(mins, maxs)
}

// CalculateProbabilities enumerates every microstate under c and stores each
// instance's probability in Instance.Probability.
func (m *Model) CalculateProbabilities(c statevector.Conditions) error {
	tables, err := m.Tables()
	if err != nil {
		return err
	}
	sv, err := m.NewStateVector()
	if err != nil {
		return err
	}
	defer sv.Release()

	out, err := sv.Probabilities(tables, c)
	if err != nil {
		return modelErrorf("CalculateProbabilities", err)
	}

	a := 0
	for k := range m.Sites {
		for j := range m.Sites[k].Instances {
			m.Sites[k].Instances[j].Probability, _ = out.At(a)
			a++
		}
	}
	m.calculated = true
	m.conditions = c

	return nil
}

// IsCalculated reports whether CalculateProbabilities has succeeded.
func (m *Model) IsCalculated() bool { return m.calculated }

// Conditions returns the conditions of the last successful CalculateProbabilities.
func (m *Model) Conditions() statevector.Conditions { return m.conditions }

// MostProbableVector returns a StateVector with every site at its most
// probable instance. Ties go to the later instance.
func (m *Model) MostProbableVector() (*statevector.StateVector, error) {
	if !m.calculated {
		return nil, modelErrorf("MostProbableVector", ErrNotCalculated)
	}
	sv, err := m.NewStateVector()
	if err != nil {
		return nil, err
	}
	for k, s := range m.Sites {
		best := 0
		for j, in := range s.Instances {
			if in.Probability >= s.Instances[best].Probability {
				best = j
			}
		}
		if err = sv.SetItem(k, best); err != nil {
			return nil, modelErrorf("MostProbableVector", err)
		}
	}

	return sv, nil
}
