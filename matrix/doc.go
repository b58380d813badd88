// Package matrix is the exact-integer linear-algebra engine behind chemical
// equation balancing.
//
// The matrix package provides:
//
//   - Matrix / Dense: a row-major int64 matrix with bounds-checked accessors.
//   - RowReduce: fraction-free Gaussian elimination to row-echelon form,
//     returning the rank. Pivots of least absolute value keep coefficient
//     growth in check.
//   - Solve: classifies the null space of a reduced matrix (none / unique /
//     infinite) and returns minimal, coprime integer vectors.
//   - Normalize, MulVec: sign/gcd normalisation and conservation checks.
//
// No routine ever divides a matrix entry: every elimination step scales by
// gcd-derived factors, so all intermediate values stay exact integers.
// Overflow of int64 is detected and reported as ErrOverflow.
//
// See the examples in this package for usage patterns.
package matrix
