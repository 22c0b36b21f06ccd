package reindex

import "math"

// NormalizeVector scales a vector to unit length so cosine similarity
// reduces to a dot product. Zero vectors pass through unchanged.
func NormalizeVector(vector []float32) []float32 {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return vector
	}

	norm := float32(1 / math.Sqrt(sumSquares))
	normalized := make([]float32, len(vector))
	for i, v := range vector {
		normalized[i] = v * norm
	}
	return normalized
}
