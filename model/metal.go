package model

// DefaultMetalIndicators names the element symbols treated as default
// metal centers by the CLI and by coordination.SuggestCenters. Per
// spec.md §6.2 this is advisory only — the core accepts any atom index as
// a center regardless of whether its element appears here.
var DefaultMetalIndicators = map[string]bool{
	"Li": true, "Be": true, "Na": true, "Mg": true, "Al": true,
	"K": true, "Ca": true, "Sc": true, "Ti": true, "V": true,
	"Cr": true, "Mn": true, "Fe": true, "Co": true, "Ni": true,
	"Cu": true, "Zn": true, "Ga": true, "Rb": true, "Sr": true,
	"Y": true, "Zr": true, "Nb": true, "Mo": true, "Tc": true,
	"Ru": true, "Rh": true, "Pd": true, "Ag": true, "Cd": true,
	"In": true, "Sn": true, "Cs": true, "Ba": true, "La": true,
	"Ce": true, "Pr": true, "Nd": true, "Sm": true, "Eu": true,
	"Gd": true, "Tb": true, "Dy": true, "Ho": true, "Er": true,
	"Tm": true, "Yb": true, "Lu": true, "Hf": true, "Ta": true,
	"W": true, "Re": true, "Os": true, "Ir": true, "Pt": true,
	"Au": true, "Hg": true, "Tl": true, "Pb": true, "Bi": true,
	"U": true, "Th": true,
}

// IsMetalIndicator reports whether element is in DefaultMetalIndicators.
func IsMetalIndicator(element string) bool {
	return DefaultMetalIndicators[element]
}
