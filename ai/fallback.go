// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"context"
	"hash/fnv"
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode"
)

// FallbackDim is the dimensionality of structural embeddings.
const FallbackDim = 384

// Reserved leading slots for document-level statistics; the rest of
// the vector is a hashed bag of words and character trigrams.
const statSlots = 8

// Fallback is a deterministic structural embedder. It derives a vector
// from length, character and word-frequency features without any
// external service, so similarity checks keep working when the
// embedding service is unreachable. The vectors are unit-length.
type Fallback struct{}

var _ Embedder = (*Fallback)(nil)

// NewFallback creates the structural embedder.
func NewFallback() *Fallback {
	return &Fallback{}
}

// EmbedText derives a structural vector for one text.
func (f *Fallback) EmbedText(_ context.Context, text string) ([]float32, error) {
	return structuralVector(text), nil
}

// EmbedTexts derives structural vectors for a batch.
func (f *Fallback) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = structuralVector(text)
	}
	return vectors, nil
}

func structuralVector(text string) []float32 {
	vector := make([]float32, FallbackDim)

	var letters, digits, uppers, puncts int
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			letters++
			if unicode.IsUpper(r) {
				uppers++
			}
		case unicode.IsDigit(r):
			digits++
		case unicode.IsPunct(r):
			puncts++
		}
	}

	words := strings.Fields(strings.ToLower(text))
	total := float64(len(text))
	if total == 0 {
		total = 1
	}

	// Document statistics in the reserved slots, squashed to (0,1).
	vector[0] = squash(float64(len(text)) / 1000)
	vector[1] = squash(float64(len(words)) / 200)
	vector[2] = float32(float64(letters) / total)
	vector[3] = float32(float64(digits) / total)
	vector[4] = float32(float64(uppers) / total)
	vector[5] = float32(float64(puncts) / total)
	if len(words) > 0 {
		vector[6] = squash(avgWordLen(words) / 10)
		vector[7] = float32(float64(uniqueCount(words)) / float64(len(words)))
	}

	// Hashed bag of words
	for _, word := range words {
		vector[statSlots+hashSlot(word, (FallbackDim-statSlots)/2)] += 1
	}

	// Hashed character trigrams capture near-duplicate phrasing that
	// word hashing misses.
	lower := strings.ToLower(text)
	offset := statSlots + (FallbackDim-statSlots)/2
	runes := []rune(lower)
	for i := 0; i+3 <= len(runes); i++ {
		vector[offset+hashSlot(string(runes[i:i+3]), (FallbackDim-statSlots)/2)] += 1
	}

	normalize(vector)
	return vector
}

func hashSlot(s string, buckets int) int {
	h := fnv.New32a()
	h.Write([]byte(s))
	return int(h.Sum32() % uint32(buckets))
}

func avgWordLen(words []string) float64 {
	total := 0
	for _, w := range words {
		total += len(w)
	}
	return float64(total) / float64(len(words))
}

func uniqueCount(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}

func squash(v float64) float32 {
	return float32(v / (1 + v))
}

func normalize(vector []float32) {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return
	}
	norm := float32(1 / math.Sqrt(sumSquares))
	for i := range vector {
		vector[i] *= norm
	}
}

// Bounded wraps a primary embedder with a per-call timeout and the
// structural fallback. A slow or failing service degrades similarity
// quality instead of stalling the pipeline.
type Bounded struct {
	primary  Embedder
	fallback *Fallback
	timeout  time.Duration
	logger   *slog.Logger
}

var _ Embedder = (*Bounded)(nil)

// NewBounded wraps primary with the given per-call timeout.
func NewBounded(primary Embedder, timeout time.Duration, logger *slog.Logger) *Bounded {
	return &Bounded{
		primary:  primary,
		fallback: NewFallback(),
		timeout:  timeout,
		logger:   logger.With("component", "bounded-embedder"),
	}
}

// EmbedText calls the primary embedder under the timeout, falling back
// to the structural embedder on error or expiry.
func (b *Bounded) EmbedText(ctx context.Context, text string) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	vector, err := b.primary.EmbedText(callCtx, text)
	if err != nil {
		b.logger.Warn("primary embedder failed, using structural fallback", "err", err)
		return b.fallback.EmbedText(ctx, text)
	}
	return vector, nil
}

// EmbedTexts calls the primary embedder under the timeout, falling
// back to the structural embedder on error or expiry.
func (b *Bounded) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	vectors, err := b.primary.EmbedTexts(callCtx, texts)
	if err != nil {
		b.logger.Warn("primary embedder failed, using structural fallback",
			"count", len(texts), "err", err)
		return b.fallback.EmbedTexts(ctx, texts)
	}
	return vectors, nil
}
