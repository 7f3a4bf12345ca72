// Package microstate computes protonation-state probabilities of multi-site
// titratable systems (proteins, ligands) by exhaustive enumeration of every
// microstate and Boltzmann summation of their free energies.
//
// What is a microstate?
//
//	Each titratable site has a small set of instances (protonated,
//	deprotonated, tautomers). A microstate picks one instance per site;
//	its free energy is
//
//		G = Σ Gintr(a) − n·(−R·T·ln10·pH) + Σ_{a>b} W(a,b)
//
//	summed over the active instances a, b with n the total proton count.
//
// The module is organized under three packages and one command:
//
//	matrix/            Dense, Vector and IntVector containers + validators
//	statevector/       the StateVector odometer, energies, probabilities, substates
//	model/             YAML system description, per-site summaries
//	cmd/microstates/   command line front end
//
// Quick example, a glutamate/lysine salt bridge:
//
//	Glu35 ── W = −1.0 kcal/mol ── Lys61
//
//	microstates probabilities --model two_sites.yaml --ph 7
//
// The number of microstates is the product of the per-site instance counts,
// so exhaustive enumeration is meant for systems of up to a few dozen sites.
//
//	go get github.com/katalvlaran/microstate/statevector
package microstate
