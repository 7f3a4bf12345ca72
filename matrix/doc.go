// Package matrix provides the numeric containers the microstate enumerator
// reads from and writes into.
//
// The matrix package provides:
//
//   - IntVector for per-instance integer data (proton counts).
//   - Vector for per-instance real data (intrinsic energies, occupancy
//     probabilities) with in-place kernels: Fill, AddScalar, Scale, Exp, Sum.
//   - Dense, a row-major square-or-rectangular float64 matrix used for the
//     pairwise instance–instance interaction energies.
//
// Every indexer returns ErrOutOfRange instead of panicking; Set and AddAt
// reject NaN/±Inf unless the container was created WithNoValidateNaNInf.
//
// See the examples in this package for usage patterns.
package matrix
