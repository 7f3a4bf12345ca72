// Package statevector enumerates the microstates of a multi-site titratable
// system and derives per-instance protonation probabilities by exhaustive
// Boltzmann summation.
//
// 🚀 What is a StateVector?
//
//	A StateVector holds, for every titratable site, the global index of the
//	instance (protonation/tautomer variant) that is currently active, together
//	with the inclusive range [min, max] of instance indices that site may adopt.
//	Global indices address three caller-owned tables: protons per instance,
//	intrinsic energy per instance and the instance×instance interaction matrix.
//
// ✨ Key features:
//   - Odometer enumeration: Increment is a ripple-carry counter over
//     heterogeneous radices (max-min+1), site 0 being the fastest digit.
//   - Substates: restrict the odometer to a chosen subset of sites while all
//     other sites stay fixed (AllocateSubstate, IncrementSubstate).
//   - Microstate energy:
//     G = Σ Gintr(a_i) + n_H·R·T·ln10·pH + Σ_{j<i} W(a_i, a_j)
//   - Analytic probabilities: two full odometer passes, energies shifted by
//     their minimum before exponentiation so exp never overflows.
//
// ⚙️ Usage:
//
//	sv, _ := statevector.NewWithRanges([]int{0, 2}, []int{1, 3})
//	n, _ := sv.NumStates()
//	out, _ := matrix.NewVector(4)
//	err := sv.CalculateProbabilitiesAnalytically(tables, statevector.DefaultConditions(), n, out)
//
// Performance:
//
//   - Increment: amortized O(1), worst case O(length).
//   - MicrostateEnergy: O(length²).
//   - CalculateProbabilitiesAnalytically: O(nstates·length²) time, O(nstates) memory.
//
// A StateVector is not safe for concurrent mutation; use one instance per goroutine.
package statevector
