// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/microstate/statevector"

	"golang.org/x/exp/slices"
)

// SiteKey selects a site by segment and residue serial. Residue is optional;
// when set it must match as well.
type SiteKey struct {
	Segment string
	Residue string
	Serial  int
}

// ParseSiteKey parses "SEGMENT:RESIDUE:SERIAL" or "SEGMENT:SERIAL".
func ParseSiteKey(s string) (SiteKey, error) {
	parts := strings.Split(s, ":")
	var key SiteKey
	switch len(parts) {
	case 2:
		key.Segment = parts[0]
	case 3:
		key.Segment, key.Residue = parts[0], parts[1]
	default:
		return SiteKey{}, fmt.Errorf("ParseSiteKey(%q): %w", s, ErrUnknownSite)
	}
	serial, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return SiteKey{}, fmt.Errorf("ParseSiteKey(%q): serial: %w", s, err)
	}
	key.Serial = serial

	return key, nil
}

// SiteIndex returns the index of the first site matching key.
func (m *Model) SiteIndex(key SiteKey) (int, error) {
	for k, s := range m.Sites {
		if s.Segment != key.Segment || s.Serial != key.Serial {
			continue
		}
		if key.Residue != "" && key.Residue != s.Residue {
			continue
		}
		return k, nil
	}

	return 0, fmt.Errorf("SiteIndex(%s:%s:%d): %w", key.Segment, key.Residue, key.Serial, ErrUnknownSite)
}

// Substate is the energy landscape of a few selected sites with every other
// site held at its most probable instance.
type Substate struct {
	model      *Model
	sites      []int
	vector     *statevector.StateVector
	conditions statevector.Conditions

	states     []statevector.Microstate
	zeroEnergy float64
}

// NewSubstate selects sites on a model whose probabilities are calculated.
// The background vector is the model's most probable vector.
//
// Errors: ErrNotCalculated, ErrUnknownSite, statevector.ErrInvalidConditions,
// statevector.ErrDuplicateSite when two keys select the same site.
func (m *Model) NewSubstate(selected []SiteKey, c statevector.Conditions) (*Substate, error) {
	if err := c.Validate(); err != nil {
		return nil, modelErrorf("NewSubstate", err)
	}
	sites := make([]int, 0, len(selected))
	for _, key := range selected {
		k, err := m.SiteIndex(key)
		if err != nil {
			return nil, modelErrorf("NewSubstate", err)
		}
		if slices.Contains(sites, k) {
			return nil, fmt.Errorf("NewSubstate(%s): %w", m.Sites[k].Name(), statevector.ErrDuplicateSite)
		}
		sites = append(sites, k)
	}

	sv, err := m.MostProbableVector()
	if err != nil {
		return nil, modelErrorf("NewSubstate", err)
	}
	if err = sv.AllocateSubstate(len(sites)); err != nil {
		return nil, modelErrorf("NewSubstate", err)
	}
	for i, k := range sites {
		if err = sv.SetSubstateItem(k, i); err != nil {
			return nil, modelErrorf("NewSubstate", err)
		}
	}

	return &Substate{model: m, sites: sites, vector: sv, conditions: c}, nil
}

// Calculate scans every combination of the selected sites once; later calls
// are no-ops.
func (s *Substate) Calculate() error {
	if s.states != nil {
		return nil
	}
	tables, err := s.model.Tables()
	if err != nil {
		return err
	}
	states, err := s.vector.ScanSubstate(tables, s.conditions)
	if err != nil {
		return modelErrorf("Substate.Calculate", err)
	}
	s.states = states
	s.zeroEnergy = states[0].Energy

	return nil
}

// States returns the scanned microstates sorted by ascending energy.
func (s *Substate) States() []statevector.Microstate { return s.states }

// ZeroEnergy returns the lowest substate energy.
func (s *Substate) ZeroEnergy() float64 { return s.zeroEnergy }

// Summary writes one row per substate microstate: its rank, its energy
// (relative to the lowest one when relative is set) and the label of each
// selected site's instance.
//
// Errors: ErrNotCalculated before Calculate, and write errors.
func (s *Substate) Summary(w io.Writer, relative bool) error {
	if s.states == nil {
		return modelErrorf("Substate.Summary", ErrNotCalculated)
	}
	header := []string{"State", "Gmicro"}
	for _, k := range s.sites {
		header = append(header, s.model.Sites[k].Name())
	}
	tab := newTable(header, alignRight, alignRight)

	for rank, st := range s.states {
		energy := st.Energy
		if relative {
			energy -= s.zeroEnergy
		}
		row := []string{strconv.Itoa(rank + 1), fmt.Sprintf("%.2f", energy)}
		for i, k := range s.sites {
			row = append(row, s.model.Sites[k].Instances[st.Instances[i]].Label)
		}
		tab.add(row...)
	}

	return tab.write(w)
}
