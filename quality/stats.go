package quality

import "math"

// meanStdMinMax returns the mean, population standard deviation, min, and
// max of vals. Returns all-zero for an empty slice.
func meanStdMinMax(vals []float64) (mean, stddev, min, max float64) {
	if len(vals) == 0 {
		return 0, 0, 0, 0
	}
	min, max = vals[0], vals[0]
	sum := 0.0
	for _, v := range vals {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean = sum / float64(len(vals))

	var sumSq float64
	for _, v := range vals {
		d := v - mean
		sumSq += d * d
	}
	stddev = math.Sqrt(sumSq / float64(len(vals)))
	return mean, stddev, min, max
}
