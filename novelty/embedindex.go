package novelty

import (
	"math"

	"github.com/poiesic/curator/core"
)

// embedIndex holds all indexed embedding vectors keyed by record.
type embedIndex struct {
	keys    []core.ID
	vectors [][]float32
}

func (idx *embedIndex) add(key core.ID, vector []float32) {
	idx.keys = append(idx.keys, key)
	idx.vectors = append(idx.vectors, vector)
}

func (idx *embedIndex) snapshot() *core.EmbeddingSnapshot {
	return &core.EmbeddingSnapshot{
		Keys:    append([]core.ID{}, idx.keys...),
		Vectors: append([][]float32{}, idx.vectors...),
	}
}

func embedFromSnapshot(snap *core.EmbeddingSnapshot) *embedIndex {
	if snap == nil {
		return &embedIndex{}
	}
	return &embedIndex{keys: snap.Keys, vectors: snap.Vectors}
}

// Cosine computes cosine similarity between two vectors. Mismatched
// lengths or zero-magnitude vectors score 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
