// Package model wraps the statevector core in a chemical vocabulary.
//
// A Model lists titratable sites (segment, residue, serial), each with its
// instances (label, bound protons, intrinsic energy), plus the symmetric
// instance×instance interaction matrix. From it the package builds the flat
// tables and StateVector ranges the enumerator consumes, stores computed
// probabilities back on the instances, and reproduces the substate workflow:
// pick a few sites, hold the rest at their most probable instance, and list
// every combination of the picked sites by energy.
//
// Models are usually decoded from YAML (Load, LoadFile); see
// testdata/two_sites.yaml for the format.
package model
