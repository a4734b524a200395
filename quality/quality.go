package quality

import (
	"math"

	"github.com/katalvlaran/cshm/geom"
	"github.com/katalvlaran/cshm/model"
)

// BondStats derives mean/std-dev/min/max bond-length and inter-ligand
// angle statistics from atoms.
func BondStats(atoms []model.CoordAtom) model.BondStats {
	distances := make([]float64, len(atoms))
	vecs := make([]geom.Vec3, len(atoms))
	for i, a := range atoms {
		distances[i] = a.Distance
		vecs[i] = a.Vec
	}
	dMean, dStd, dMin, dMax := meanStdMinMax(distances)

	angles := pairwiseAngles(vecs)
	aMean, aStd, aMin, aMax := meanStdMinMax(angles)

	return model.BondStats{
		DistanceMean:   dMean,
		DistanceStdDev: dStd,
		DistanceMin:    dMin,
		DistanceMax:    dMax,
		AngleCount:     len(angles),
		AngleMean:      aMean,
		AngleStdDev:    aStd,
		AngleMin:       aMin,
		AngleMax:       aMax,
	}
}

// Compute derives QualityMetrics from atoms, the ligand-only reference
// points of the best-matching geometry (excluding any CentralAtom point),
// and the geometry's shape measure S.
func Compute(atoms []model.CoordAtom, referenceLigandPoints []geom.Vec3, shapeMeasure float64) model.QualityMetrics {
	vecs := make([]geom.Vec3, len(atoms))
	distances := make([]float64, len(atoms))
	for i, a := range atoms {
		vecs[i] = a.Vec
		distances[i] = a.Distance
	}

	actualAngles := pairwiseAngles(vecs)
	idealAngles := pairwiseAngles(referenceLigandPoints)
	angularDistortion := angularDistortionIndex(idealAngles, actualAngles)
	if math.IsNaN(angularDistortion) || math.IsNaN(shapeMeasure) {
		// spec.md §4.9: "NaN inputs propagate to a null result" — every
		// field stays at its zero value rather than carrying a NaN out.
		return model.QualityMetrics{}
	}

	uniformity := bondLengthUniformity(distances)
	approxRMSD := math.Sqrt(shapeMeasure / 100)

	score := 100 - 2*shapeMeasure - 0.5*angularDistortion - 0.3*(100-uniformity)
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return model.QualityMetrics{
		AngularDistortionIndex: angularDistortion,
		BondLengthUniformity:   uniformity,
		ApproxRMSD:             approxRMSD,
		OverallScore:           score,
	}
}

// bondLengthUniformity returns 100 * (1 - mean_i |d_i - mean| / mean), or
// 0 if distances is empty or its mean is zero.
func bondLengthUniformity(distances []float64) float64 {
	mean, _, _, _ := meanStdMinMax(distances)
	if len(distances) == 0 || mean == 0 {
		return 0
	}
	var sumAbs float64
	for _, d := range distances {
		sumAbs += math.Abs(d - mean)
	}
	return 100 * (1 - sumAbs/float64(len(distances))/mean)
}
