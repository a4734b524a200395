package shapeeval

// Variant selects the normalization used when reducing assigned squared
// distances to a single measure.
type Variant int

const (
	// VariantOptimalScale fits a free least-squares scale per candidate
	// rotation before computing the measure — the canonical default (see
	// DESIGN.md Open Question (a)).
	VariantOptimalScale Variant = iota

	// VariantRigid fixes scale at 1 and never rescales the reference.
	VariantRigid
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	if v == VariantRigid {
		return "rigid"
	}
	return "optimal-scale"
}
