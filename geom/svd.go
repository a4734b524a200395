package geom

import (
	"math"
	"sort"
)

// DefaultSVDTol and DefaultSVDMaxIter are the convergence parameters used
// by SVD3 when a caller does not supply its own via SVD3WithTolerance.
// They mirror matrix/ops.Eigen's defaults (tol=1e-10, MAX_ITER=50).
const (
	DefaultSVDTol     = 1e-10
	DefaultSVDMaxIter = 50
)

// SVD3Result holds the singular value decomposition A = U·Σ·Vᵀ of a
// general 3×3 matrix: U and V are orthonormal, and Values holds the three
// non-negative singular values in descending order.
type SVD3Result struct {
	U      Mat3
	Values [3]float64
	V      Mat3
}

// SVD3 computes the singular value decomposition of a general 3×3 matrix A
// using DefaultSVDTol and DefaultSVDMaxIter.
func SVD3(a Mat3) (SVD3Result, error) {
	return SVD3WithTolerance(a, DefaultSVDTol, DefaultSVDMaxIter)
}

// SVD3WithTolerance computes the SVD of a with an explicit Jacobi
// convergence tolerance and iteration cap.
//
// Stage 1 (Prepare): form B = AᵀA, a symmetric positive semi-definite
// matrix whose eigendecomposition gives V (eigenvectors) and the squared
// singular values (eigenvalues).
// Stage 2 (Diagonalize): cyclic Jacobi rotations, pivoting on the largest
// off-diagonal entry of the working copy of B, until it drops below tol or
// maxIter sweeps have run.
// Stage 3 (Recover U): U = A·V·diag(1/σᵢ) for σᵢ>tol; columns with a
// ~zero singular value are filled by Gram-Schmidt completion (with a
// cross-product fallback) so U stays orthonormal even when A is rank
// deficient.
// Stage 4 (Finalize): sort by descending singular value; return
// ErrSVDNotConverged if the Jacobi sweep exhausted maxIter without
// reaching tol.
func SVD3WithTolerance(a Mat3, tol float64, maxIter int) (SVD3Result, error) {
	b := a.Transpose().Mul(a) // symmetric PSD

	eigvals, v, converged := jacobiEigen3(b, tol, maxIter)
	if !converged {
		return SVD3Result{}, ErrSVDNotConverged
	}

	// Sort eigenpairs by descending eigenvalue (== descending singular value).
	order := []int{0, 1, 2}
	sort.Slice(order, func(i, j int) bool { return eigvals[order[i]] > eigvals[order[j]] })

	var sigma [3]float64
	var sortedV Mat3
	for rank, idx := range order {
		sigma[rank] = math.Sqrt(math.Max(0, eigvals[idx]))
		sortedV = sortedV.SetCol(rank, v.Col(idx))
	}

	// Recover U column by column; defer degenerate columns to the end so
	// orthogonalizeColumn can see every already-resolved column.
	var u Mat3
	var resolved []Vec3
	var degenerate []int
	for col := 0; col < 3; col++ {
		if sigma[col] > tol {
			uCol := a.Apply(sortedV.Col(col)).Scale(1 / sigma[col])
			u = u.SetCol(col, uCol)
			resolved = append(resolved, uCol)
		} else {
			degenerate = append(degenerate, col)
		}
	}
	for _, col := range degenerate {
		uCol := orthogonalizeColumn(resolved...)
		u = u.SetCol(col, uCol)
		resolved = append(resolved, uCol)
	}

	return SVD3Result{U: u, Values: sigma, V: sortedV}, nil
}

// jacobiEigen3 diagonalizes the symmetric 3×3 matrix sym by cyclic Jacobi
// rotations, pivoting each sweep on the largest-magnitude off-diagonal
// entry, in the manner of matrix/ops.Eigen specialized to a fixed 3×3
// working array (avoiding that routine's general n×n allocation). Returns
// the eigenvalues, the accumulated eigenvector matrix (as columns), and
// whether the sweep converged within maxIter iterations.
func jacobiEigen3(sym Mat3, tol float64, maxIter int) (eigvals [3]float64, v Mat3, converged bool) {
	var a [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = sym.At(i, j)
		}
	}
	var q [3][3]float64
	q[0][0], q[1][1], q[2][2] = 1, 1, 1

	offDiag := [3][2]int{{0, 1}, {0, 2}, {1, 2}}

	for iter := 0; iter < maxIter; iter++ {
		// Find the largest-magnitude off-diagonal entry.
		p, qIdx := 0, 1
		maxOff := 0.0
		for _, pq := range offDiag {
			i, j := pq[0], pq[1]
			val := math.Abs(a[i][j])
			if val > maxOff {
				maxOff, p, qIdx = val, i, j
			}
		}
		if maxOff < tol {
			converged = true
			break
		}

		app, aqq, apq := a[p][p], a[qIdx][qIdx], a[p][qIdx]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1 / math.Sqrt(t*t+1)
		s := t * c

		// Similarity transform A' = JᵀAJ restricted to rows/cols p,qIdx.
		for k := 0; k < 3; k++ {
			if k != p && k != qIdx {
				akp, akq := a[k][p], a[k][qIdx]
				a[k][p], a[p][k] = c*akp-s*akq, c*akp-s*akq
				a[k][qIdx], a[qIdx][k] = s*akp+c*akq, s*akp+c*akq
			}
		}
		a[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[qIdx][qIdx] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p][qIdx] = 0
		a[qIdx][p] = 0

		// Accumulate the rotation into the eigenvector matrix Q = Q·J.
		for k := 0; k < 3; k++ {
			qkp, qkq := q[k][p], q[k][qIdx]
			q[k][p] = c*qkp - s*qkq
			q[k][qIdx] = s*qkp + c*qkq
		}
	}

	eigvals = [3]float64{a[0][0], a[1][1], a[2][2]}
	v = FromCols(
		Vec3{X: q[0][0], Y: q[1][0], Z: q[2][0]},
		Vec3{X: q[0][1], Y: q[1][1], Z: q[2][1]},
		Vec3{X: q[0][2], Y: q[1][2], Z: q[2][2]},
	)
	return eigvals, v, converged
}
