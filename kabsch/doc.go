// Package kabsch computes the optimal rotation between two ordered,
// equal-length 3-D point sets using the Kabsch algorithm: form the
// cross-covariance matrix, take its SVD (geom.SVD3), and assemble the
// proper rotation R = V·Uᵀ, correcting the sign of the last column of V
// when the naive product would be a reflection (det<0).
//
// Failure is never propagated as a panic or error up through the
// optimizer: a size mismatch or a non-converging SVD falls back to the
// identity rotation and logs a warning, exactly as spec.md §4.2 requires —
// the caller detects the anomaly because the resulting CShM will simply be
// worse than other candidate orientations, not because an exception
// unwound the search.
package kabsch
