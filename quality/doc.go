// Package quality derives a handful of scalar statistics from an
// analyzed coordination sphere and its best-matching reference geometry:
// bond-length and inter-ligand angle distributions, an angular distortion
// index against the reference's own ideal angles, bond-length uniformity,
// an approximate unit-sphere RMSD, and a single overall score.
package quality
