package kabsch

import (
	"errors"
	"log/slog"
	"math"

	"github.com/katalvlaran/cshm/geom"
)

// convergedThreshold bounds the per-point distance below which all pairs
// (p_i, q_i) are considered already aligned — Align then short-circuits to
// the identity rotation rather than running an SVD on a near-zero
// covariance matrix.
const convergedThreshold = 1e-10

// Align returns the proper rotation R minimizing Σ‖R·p_i − q_i‖² over the
// ordered point sets p and q (equal length N≥1).
//
// Stage 1 (Validate): size mismatch or empty input returns identity plus a
// sentinel error, logged as a warning — never a panic.
// Stage 2 (Early-exit): if every pair is already within convergedThreshold,
// return identity directly.
// Stage 3 (Covariance + SVD): optionally subtract centroids, form
// H = Pᵀ·Q, decompose H = U·Σ·Vᵀ.
// Stage 4 (Assemble): R = V·Uᵀ; if det(R) < 0, flip the sign of V's last
// column and recompute R so the result is always a proper rotation
// (det ≈ +1), never a reflection.
func Align(p, q []geom.Vec3, subtractCentroids bool) (geom.Mat3, error) {
	if len(p) != len(q) {
		slog.Warn("kabsch: size mismatch, falling back to identity", "lenP", len(p), "lenQ", len(q))
		return geom.Identity3(), ErrSizeMismatch
	}
	if len(p) == 0 {
		slog.Warn("kabsch: empty point sets, falling back to identity")
		return geom.Identity3(), ErrEmptyInput
	}

	pp, qq := p, q
	if subtractCentroids {
		pp, qq = centered(p), centered(q)
	}

	if allWithin(pp, qq, convergedThreshold) {
		return geom.Identity3(), nil
	}

	h := covariance(pp, qq)
	svd, err := geom.SVD3(h)
	if err != nil {
		slog.Warn("kabsch: covariance SVD did not converge, falling back to identity", "err", err)
		return geom.Identity3(), errors.Join(ErrSVDFailed, err)
	}

	r := svd.V.Mul(svd.U.Transpose())
	if r.Det() < 0 {
		flippedV := svd.V.SetCol(2, svd.V.Col(2).Scale(-1))
		r = flippedV.Mul(svd.U.Transpose())
	}

	return r, nil
}

// covariance forms H = Pᵀ·Q (3×3) from the ordered point lists p and q.
func covariance(p, q []geom.Vec3) geom.Mat3 {
	var h geom.Mat3
	for i := range p {
		h.Rows[0].X += p[i].X * q[i].X
		h.Rows[0].Y += p[i].X * q[i].Y
		h.Rows[0].Z += p[i].X * q[i].Z
		h.Rows[1].X += p[i].Y * q[i].X
		h.Rows[1].Y += p[i].Y * q[i].Y
		h.Rows[1].Z += p[i].Y * q[i].Z
		h.Rows[2].X += p[i].Z * q[i].X
		h.Rows[2].Y += p[i].Z * q[i].Y
		h.Rows[2].Z += p[i].Z * q[i].Z
	}
	return h
}

// centered returns pts shifted so their centroid is the origin.
func centered(pts []geom.Vec3) []geom.Vec3 {
	var c geom.Vec3
	for _, v := range pts {
		c = c.Add(v)
	}
	c = c.Scale(1 / float64(len(pts)))
	out := make([]geom.Vec3, len(pts))
	for i, v := range pts {
		out[i] = v.Sub(c)
	}
	return out
}

// allWithin reports whether every pair (p_i, q_i) is within tol of each
// other, in which case Align can skip the SVD and return identity.
func allWithin(p, q []geom.Vec3, tol float64) bool {
	for i := range p {
		if math.Sqrt(p[i].DistanceSq(q[i])) >= tol {
			return false
		}
	}
	return true
}
