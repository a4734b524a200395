package analyzer

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cshm/model"
)

// Fingerprint builds the stable cache key described in spec.md §6:
// "<mode>-cn<N>-[flex]-<e1><d1>-<e2><d2>-…", atoms ordered by ascending
// distance (ligand rank) with distances formatted to exactly 3 decimals.
// The "-flex" segment is present only when the flexible extension is in
// use; it is simply absent for a rigid analysis.
func Fingerprint(mode model.Mode, cn int, flexibleExt bool, atoms []model.CoordAtom) string {
	var b strings.Builder
	b.WriteString(mode.String())
	fmt.Fprintf(&b, "-cn%d", cn)
	if flexibleExt {
		b.WriteString("-flex")
	}
	for _, a := range atoms {
		fmt.Fprintf(&b, "-%s%.3f", a.Element, a.Distance)
	}
	return b.String()
}
