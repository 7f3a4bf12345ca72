// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML model from r and validates it. Unknown keys are rejected.
//
//	sites:
//	  - segment: PRTA
//	    residue: GLU
//	    serial: 35
//	    instances:
//	      - {label: p, protons: 1, energy: 0.0}
//	      - {label: d, protons: 0, energy: -4.6}
//	interactions:
//	  - [0, 0]
//	  - [0, 0]
func Load(r io.Reader) (*Model, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Model
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}

	return &m, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// SummaryProbabilities writes one row per site with the probability of each
// of its instances, labelled "label=probability".
//
// Errors: ErrNotCalculated before CalculateProbabilities, and write errors.
func (m *Model) SummaryProbabilities(w io.Writer) error {
	if !m.calculated {
		return modelErrorf("SummaryProbabilities", ErrNotCalculated)
	}
	most := 0
	for _, s := range m.Sites {
		if len(s.Instances) > most {
			most = len(s.Instances)
		}
	}
	header := []string{"Site"}
	for j := 0; j < most; j++ {
		header = append(header, "Instance "+strconv.Itoa(j+1))
	}
	align := make([]int, most+1)
	for i := range align {
		align[i] = alignLeft
	}
	tab := newTable(header, align...)

	for _, s := range m.Sites {
		row := []string{s.Name()}
		for _, in := range s.Instances {
			row = append(row, fmt.Sprintf("%s=%.4f", in.Label, in.Probability))
		}
		tab.add(row...)
	}

	return tab.write(w)
}
