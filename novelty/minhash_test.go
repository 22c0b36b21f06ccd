package novelty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature_Deterministic(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog"
	a := Signature(text)
	b := Signature(text)
	assert.Equal(t, a, b)
	assert.Len(t, a, SignatureSize)
}

func TestSignatureSimilarity_Identical(t *testing.T) {
	sig := Signature("identical content across both signatures every time")
	assert.Equal(t, 1.0, SignatureSimilarity(sig, sig))
}

func TestSignatureSimilarity_Disjoint(t *testing.T) {
	a := Signature("distributed consensus algorithms and replicated state machines")
	b := Signature("sourdough bread recipes with overnight cold fermentation steps")
	assert.Less(t, SignatureSimilarity(a, b), 0.2)
}

func TestSignatureSimilarity_NearDuplicate(t *testing.T) {
	base := strings.Repeat("the raft consensus algorithm decomposes the problem into leader election log replication and safety ", 5)
	// One word changed out of a long text keeps shingle overlap near 1.
	variant := strings.Replace(base, "safety", "liveness", 1)

	sim := SignatureSimilarity(Signature(base), Signature(variant))
	assert.Greater(t, sim, 0.8, "near-duplicate paraphrase must score high")
}

func TestSignature_ShortText(t *testing.T) {
	// Texts shorter than one shingle window still produce signatures.
	assert.Len(t, Signature("single"), SignatureSize)
	assert.Len(t, Signature(""), SignatureSize)
	assert.Equal(t, 1.0, SignatureSimilarity(Signature("one two"), Signature("one two")))
}

func TestSignatureSimilarity_MismatchedLengths(t *testing.T) {
	assert.Zero(t, SignatureSimilarity([]uint64{1, 2}, []uint64{1}))
	assert.Zero(t, SignatureSimilarity(nil, nil))
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)
	assert.Zero(t, Cosine([]float32{0, 0}, []float32{1, 0}))
	assert.Zero(t, Cosine([]float32{1}, []float32{1, 0}))
}
