package reflib_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cshm/reflib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centroidAndRMS(t *testing.T, g reflib.ReferenceGeometry) (float64, float64) {
	t.Helper()
	n := float64(g.N())
	var cx, cy, cz float64
	for _, p := range g.Points {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	cx /= n
	cy /= n
	cz /= n
	centroidNorm := math.Sqrt(cx*cx + cy*cy + cz*cz)

	var sumSq float64
	for _, p := range g.Points {
		sumSq += p.X*p.X + p.Y*p.Y + p.Z*p.Z
	}
	return centroidNorm, math.Sqrt(sumSq / n)
}

func TestLibrary_AllEntriesNormalized(t *testing.T) {
	lib := reflib.Default()
	for _, cn := range lib.CoordinationNumbers() {
		for _, g := range lib.ForCN(cn) {
			g := g
			t.Run(g.Code, func(t *testing.T) {
				centroidNorm, rms := centroidAndRMS(t, g)
				assert.InDelta(t, 1, rms, 1e-9, "RMS distance from origin must be 1")
				if !g.CentralAtom {
					assert.InDelta(t, 0, centroidNorm, 1e-9, "centroid must be at origin")
					return
				}
				last := g.Points[len(g.Points)-1]
				assert.InDelta(t, 0, last.X, 1e-9, "central-atom point must be pinned at the origin")
				assert.InDelta(t, 0, last.Y, 1e-9, "central-atom point must be pinned at the origin")
				assert.InDelta(t, 0, last.Z, 1e-9, "central-atom point must be pinned at the origin")
			})
		}
	}
}

func TestLibrary_PointCountMatchesCN(t *testing.T) {
	lib := reflib.Default()
	for _, cn := range lib.CoordinationNumbers() {
		for _, g := range lib.ForCN(cn) {
			want := cn
			if g.CentralAtom {
				want = cn + 1
			}
			assert.Equal(t, want, g.N(), "code %s under CN=%d", g.Code, cn)
		}
	}
}

func TestLibrary_Get_KnownCodes(t *testing.T) {
	lib := reflib.Default()

	g, err := lib.Get(6, "OC-6")
	require.NoError(t, err)
	assert.Equal(t, "OC-6", g.Code)
	assert.Len(t, g.Points, 6)

	g, err = lib.Get(4, "T-4")
	require.NoError(t, err)
	assert.Len(t, g.Points, 4)
}

func TestLibrary_Get_UnknownCN(t *testing.T) {
	lib := reflib.Default()
	_, err := lib.Get(999, "X-1")
	assert.ErrorIs(t, err, reflib.ErrNoReference)
}

func TestLibrary_Get_UnknownCode(t *testing.T) {
	lib := reflib.Default()
	_, err := lib.Get(6, "NOT-A-CODE")
	assert.ErrorIs(t, err, reflib.ErrUnknownCode)
}

func TestLibrary_ForCN_SortedAndNonEmpty(t *testing.T) {
	lib := reflib.Default()
	for _, cn := range []int{2, 3, 4, 5, 6, 7, 8, 9, 12} {
		entries := lib.ForCN(cn)
		require.NotEmpty(t, entries, "CN=%d should have entries", cn)
		for i := 1; i < len(entries); i++ {
			assert.Less(t, entries[i-1].Code, entries[i].Code)
		}
	}
}

func TestLibrary_Default_IsSingleton(t *testing.T) {
	assert.Same(t, reflib.Default(), reflib.Default())
}
