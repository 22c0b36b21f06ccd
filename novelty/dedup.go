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

package novelty

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// DefaultThreshold is the similarity at or above which a record is a
// duplicate.
const DefaultThreshold = 0.8

// topSimilar is how many most-similar items a result reports for
// audit.
const topSimilar = 5

// Confidence reported with a result: higher when both detectors ran,
// lower when the embedding detector was unavailable.
const (
	confidenceHybrid      = 0.9
	confidenceMinHashOnly = 0.7
)

const (
	persistAttempts  = 3
	persistBaseDelay = 100 * time.Millisecond
)

// Deduplicator performs the hybrid cross-corpus novelty check. Both
// detector indexes live in memory; every mutation persists a full
// snapshot inside the same critical section, so concurrent writers can
// never lose updates to a racing snapshot write.
type Deduplicator struct {
	threshold float64
	embedder  ai.Embedder
	snapshots storage.SnapshotRepository
	logger    *slog.Logger

	// guards both indexes and snapshot persistence
	mu      sync.Mutex
	minhash *minhashIndex
	embeds  *embedIndex
}

// NewDeduplicator loads both detector snapshots and builds the
// in-memory indexes. A corrupt snapshot logs the loss and starts that
// detector empty instead of failing.
func NewDeduplicator(ctx context.Context, threshold float64, embedder ai.Embedder, snapshots storage.SnapshotRepository, logger *slog.Logger) (*Deduplicator, error) {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	d := &Deduplicator{
		threshold: threshold,
		embedder:  embedder,
		snapshots: snapshots,
		logger:    logger.With("component", "novelty-dedup"),
	}

	minhashSnap, err := snapshots.LoadMinHashSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, err
		}
		d.logger.Error("minhash snapshot corrupt, starting with empty index", "err", err)
		minhashSnap = nil
	}
	d.minhash = minhashFromSnapshot(minhashSnap)

	embedSnap, err := snapshots.LoadEmbeddingSnapshot(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptSnapshot) {
			return nil, err
		}
		d.logger.Error("embedding snapshot corrupt, starting with empty index", "err", err)
		embedSnap = nil
	}
	d.embeds = embedFromSnapshot(embedSnap)

	d.logger.Info("novelty indexes loaded",
		"minhash", len(d.minhash.keys), "embeddings", len(d.embeds.keys))
	return d, nil
}

// Size returns the number of indexed records.
func (d *Deduplicator) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.minhash.keys)
}

// Check computes the novelty of a record against everything indexed so
// far without mutating the indexes.
func (d *Deduplicator) Check(ctx context.Context, record *core.ContentRecord) (core.NoveltyResult, error) {
	signature, vector, confidence := d.represent(ctx, record)

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.evaluate(signature, vector, confidence), nil
}

// Process checks a record and, when it is novel, indexes it and
// persists both snapshots as one atomic step. This is the pipeline's
// entry point: check-then-index under a single lock prevents two
// copies of the same content racing past each other.
func (d *Deduplicator) Process(ctx context.Context, record *core.ContentRecord) (core.NoveltyResult, error) {
	signature, vector, confidence := d.represent(ctx, record)

	d.mu.Lock()
	defer d.mu.Unlock()

	result := d.evaluate(signature, vector, confidence)
	if !result.IsNovel {
		return result, nil
	}
	if slices.Contains(d.minhash.keys, record.Key) {
		return result, ErrAlreadyIndexed
	}

	d.minhash.add(record.Key, signature)
	if vector != nil {
		d.embeds.add(record.Key, vector)
	}

	if err := d.persistLocked(ctx); err != nil {
		// In-memory state remains the source of truth until the next
		// successful write.
		d.logger.Error("failed to persist novelty snapshots", "err", err)
		return result, err
	}
	return result, nil
}

// represent computes the detector inputs for a record. An embedding
// failure degrades to the minhash-only confidence rather than failing
// the check.
func (d *Deduplicator) represent(ctx context.Context, record *core.ContentRecord) ([]uint64, []float32, float64) {
	text := record.Title + "\n" + record.Body
	signature := Signature(text)

	vector, err := d.embedder.EmbedText(ctx, text)
	if err != nil || len(vector) == 0 {
		d.logger.Warn("embedding unavailable, minhash-only novelty check",
			"key", record.Key, "err", err)
		return signature, nil, confidenceMinHashOnly
	}
	return signature, vector, confidenceHybrid
}

// evaluate scores a record against both indexes. Caller holds the lock.
func (d *Deduplicator) evaluate(signature []uint64, vector []float32, confidence float64) core.NoveltyResult {
	similarities := make(map[core.ID]float64)

	for i, key := range d.minhash.keys {
		if sim := SignatureSimilarity(signature, d.minhash.signatures[i]); sim > similarities[key] {
			similarities[key] = sim
		}
	}
	if vector != nil {
		for i, key := range d.embeds.keys {
			if sim := Cosine(vector, d.embeds.vectors[i]); sim > similarities[key] {
				similarities[key] = sim
			}
		}
	}

	maxSimilarity := 0.0
	similar := make([]core.SimilarItem, 0, len(similarities))
	for key, sim := range similarities {
		if sim > maxSimilarity {
			maxSimilarity = sim
		}
		if sim > 0 {
			similar = append(similar, core.SimilarItem{Key: key, Similarity: sim})
		}
	}
	slices.SortFunc(similar, func(a, b core.SimilarItem) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		default:
			return 0
		}
	})
	if len(similar) > topSimilar {
		similar = similar[:topSimilar]
	}

	return core.NoveltyResult{
		IsNovel:       maxSimilarity < d.threshold,
		Score:         1 - maxSimilarity,
		MaxSimilarity: maxSimilarity,
		SimilarItems:  similar,
		Confidence:    confidence,
	}
}

// persistLocked writes both snapshots with bounded retries. Caller
// holds the lock.
func (d *Deduplicator) persistLocked(ctx context.Context) error {
	minhashSnap := d.minhash.snapshot()
	embedSnap := d.embeds.snapshot()

	err := storage.RetryWithBackoff(ctx, func() error {
		return d.snapshots.SaveMinHashSnapshot(ctx, minhashSnap)
	}, persistAttempts, persistBaseDelay)
	if err != nil {
		return err
	}

	return storage.RetryWithBackoff(ctx, func() error {
		return d.snapshots.SaveEmbeddingSnapshot(ctx, embedSnap)
	}, persistAttempts, persistBaseDelay)
}
