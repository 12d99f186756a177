// business/recommender/math.go
package recommender

import "math"

// dot over the fixed-size feature vector.
func dot(a, b [featureDim]float64) float64 {
	sum := 0.0
	for i := range featureDim {
		sum += a[i] * b[i]
	}
	return sum
}

// dotVec over variable-length rating vectors.
func dotVec(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// vecNorm is the Euclidean (L2) norm.
func vecNorm(a []float64) float64 {
	sum := 0.0
	for _, v := range a {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
