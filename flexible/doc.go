// Package flexible extends a converged rigid optimizer result with an
// anisotropic (sx, sy, sz) scale search applied to the reference cloud in
// the rigid best rotation's fixed frame.
//
// For each scale triple the reference is stretched componentwise, the
// assignment is re-solved via package shapeeval, and the resulting measure
// is compared against the rigid one. The search itself is simulated
// annealing in 3D, structurally the same proposal/acceptance/cooling shape
// as package optimizer's Stage 3, just over a 3-dimensional scale vector
// instead of SO(3).
package flexible
