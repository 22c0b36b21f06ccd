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

package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
	"github.com/poiesic/curator/storage"
)

// IndexReport summarizes one record's indexing outcome.
type IndexReport struct {
	Chunks          int
	ClaimsExtracted int
	// ClaimsAdded excludes candidates dropped by hash deduplication.
	ClaimsAdded int
}

// Indexer populates the vector store and the claims store from
// approved records. Writes serialize through one lock; reads (search,
// claim queries) run unrestricted.
type Indexer struct {
	chunks     storage.ChunkRepository
	claims     storage.ClaimRepository
	sources    storage.SourceRepository
	embedder   ai.Embedder
	extractor  *Extractor
	chunkWords int
	logger     *slog.Logger

	mu sync.Mutex
}

// NewIndexer wires the indexer over its repositories.
func NewIndexer(p *policy.Policy, chunks storage.ChunkRepository, claims storage.ClaimRepository, sources storage.SourceRepository, embedder ai.Embedder, logger *slog.Logger) *Indexer {
	return &Indexer{
		chunks:     chunks,
		claims:     claims,
		sources:    sources,
		embedder:   embedder,
		extractor:  NewExtractor(p),
		chunkWords: p.Indexing.ChunkWords,
		logger:     logger.With("component", "knowledge-indexer"),
	}
}

// IndexRecord chunks, embeds and stores an approved record, extracts
// its claims and folds the source statistics. Re-indexing the same
// record replaces its chunks rather than duplicating them.
func (ix *Indexer) IndexRecord(ctx context.Context, record *core.ContentRecord, quality float64) (*IndexReport, error) {
	texts := SplitWords(record.Text(), ix.chunkWords)
	if len(texts) == 0 {
		return nil, fmt.Errorf("%w: record %d", ErrEmptyText, record.Key)
	}

	vectors, err := ix.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding chunks: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(texts))
	}

	chunks := make([]*core.VectorChunk, len(texts))
	for i, text := range texts {
		chunks[i] = &core.VectorChunk{
			RecordKey:    record.Key,
			ChunkIndex:   i,
			TotalChunks:  len(texts),
			Title:        record.Title,
			URL:          record.URL,
			SourceDomain: record.SourceDomain,
			Text:         text,
			Vector:       vectors[i],
		}
	}

	candidates := ix.extractor.Extract(record)

	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ix.chunks.DeleteChunksByRecord(ctx, record.Key); err != nil {
		return nil, fmt.Errorf("clearing previous chunks: %w", err)
	}
	if _, err := ix.chunks.AddChunks(ctx, chunks...); err != nil {
		return nil, fmt.Errorf("storing chunks: %w", err)
	}

	added, err := ix.claims.AddClaims(ctx, candidates...)
	if err != nil {
		return nil, fmt.Errorf("storing claims: %w", err)
	}

	indexedAt := record.PublishedAt
	if indexedAt.IsZero() {
		indexedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	if _, err := ix.sources.RecordIndexed(ctx, record.SourceDomain, quality, indexedAt); err != nil {
		return nil, fmt.Errorf("updating source stats: %w", err)
	}

	report := &IndexReport{
		Chunks:          len(chunks),
		ClaimsExtracted: len(candidates),
		ClaimsAdded:     len(added),
	}
	ix.logger.Info("record indexed", "key", record.Key,
		"chunks", report.Chunks, "claims", report.ClaimsAdded)
	return report, nil
}

// Search embeds the query and returns the top-k most similar chunks at
// or above minSimilarity, sorted descending.
func (ix *Indexer) Search(ctx context.Context, query string, topK int, minSimilarity float32) ([]*core.SearchResult, error) {
	vector, err := ix.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	return ix.chunks.FindSimilar(ctx, vector, minSimilarity, topK)
}

// QueryClaims runs a filtered lookup against the claims store.
func (ix *Indexer) QueryClaims(ctx context.Context, filter storage.ClaimFilter) ([]*core.KnowledgeClaim, error) {
	return ix.claims.QueryClaims(ctx, filter)
}

// Sources lists the per-domain indexing statistics.
func (ix *Indexer) Sources(ctx context.Context) ([]*core.SourceStat, error) {
	return ix.sources.ListSources(ctx)
}

// DeleteRecord removes a record's chunks and claims, for operator
// cleanup of content indexed in error.
func (ix *Indexer) DeleteRecord(ctx context.Context, key core.ID) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if err := ix.chunks.DeleteChunksByRecord(ctx, key); err != nil {
		return fmt.Errorf("deleting chunks: %w", err)
	}
	if err := ix.claims.DeleteClaimsByRecord(ctx, key); err != nil {
		return fmt.Errorf("deleting claims: %w", err)
	}
	return nil
}
