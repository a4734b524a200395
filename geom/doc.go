// Package geom provides fixed-size 3-vector and 3×3 matrix primitives for
// the CShM engine: the handful of linear-algebra operations the rest of
// the engine needs (transpose, multiply, determinant, matrix-vector apply)
// plus a Jacobi-rotation based singular value decomposition of a general
// 3×3 matrix.
//
// The package specializes the teacher's general n×n Jacobi eigen routine
// (lvlath's matrix/ops.Eigen, which diagonalizes a symmetric n×n matrix by
// cyclic Jacobi rotations) down to the fixed 3×3 case that dominates this
// engine's hot path: every rotation candidate, every covariance matrix, and
// every reference/actual point is three-dimensional, so a specialized,
// allocation-free representation pays for itself many times over.
package geom
