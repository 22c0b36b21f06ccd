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

// Package curator assembles the content curation pipeline: license,
// risk and quality gates, cross-corpus novelty deduplication, the
// durable approval queue, and the knowledge indexer with its vector
// and claims stores. The Curator type is the operator-facing surface.
package curator

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/poiesic/curator/ai"
	"github.com/poiesic/curator/ai/openai"
	"github.com/poiesic/curator/approval"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/knowledge"
	"github.com/poiesic/curator/novelty"
	"github.com/poiesic/curator/pipeline"
	"github.com/poiesic/curator/policy"
	"github.com/poiesic/curator/reindex"
	"github.com/poiesic/curator/storage"
	"github.com/poiesic/curator/storage/badger"
)

// Curator owns the full curation pipeline over one durable store.
type Curator struct {
	policy       *policy.Policy
	stores       *badger.Stores
	provider     ai.Provider
	dedup        *novelty.Deduplicator
	queue        *approval.Queue
	indexer      *knowledge.Indexer
	orchestrator *pipeline.Orchestrator
	logger       *slog.Logger

	// serializes approve-then-index so a decided record indexes once
	decideMu sync.Mutex
}

// Option configures a Curator.
type Option func(*curatorOptions)

type curatorOptions struct {
	aiConfig   *ai.Config
	policyPath string
	provider   ai.Provider
	inMemory   bool
	poolSize   int
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(config *ai.Config) Option {
	return func(o *curatorOptions) {
		o.aiConfig = config
	}
}

// WithPolicyPath sets the path of the policy document. An absent or
// invalid document falls back to the built-in defaults.
func WithPolicyPath(path string) Option {
	return func(o *curatorOptions) {
		o.policyPath = path
	}
}

// WithProvider injects an embedding provider, replacing the default
// OpenAI-compatible one. Used by tests and embedded deployments.
func WithProvider(provider ai.Provider) Option {
	return func(o *curatorOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps all storage in memory. Used by tests.
func WithInMemory() Option {
	return func(o *curatorOptions) {
		o.inMemory = true
	}
}

// WithPoolSize sets the gate worker pool size.
func WithPoolSize(size int) Option {
	return func(o *curatorOptions) {
		o.poolSize = size
	}
}

// New opens the durable store at filePath and wires the pipeline.
func New(ctx context.Context, filePath string, opts ...Option) (*Curator, error) {
	options := &curatorOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	p := policy.Load(options.policyPath)
	logger := slog.Default()

	stores, err := badger.OpenStores(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			stores.Close()
			return nil, err
		}
	}

	dedup, err := novelty.NewDeduplicator(ctx, p.Novelty.Threshold,
		provider.Embedder(), stores.Snapshots, logger)
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}

	queue := approval.NewQueue(p, stores.Approval, logger)
	indexer := knowledge.NewIndexer(p, stores.Chunks, stores.Claims,
		stores.Sources, provider.Embedder(), logger)

	orchestratorOpts := []pipeline.Option{pipeline.WithLogger(logger)}
	if options.poolSize > 0 {
		orchestratorOpts = append(orchestratorOpts, pipeline.WithPoolSize(options.poolSize))
	}
	orchestrator, err := pipeline.NewOrchestrator(p, dedup, queue, orchestratorOpts...)
	if err != nil {
		provider.Close()
		stores.Close()
		return nil, err
	}

	return &Curator{
		policy:       p,
		stores:       stores,
		provider:     provider,
		dedup:        dedup,
		queue:        queue,
		indexer:      indexer,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}

// Close releases the worker pool, the embedding provider and the
// store.
func (c *Curator) Close() error {
	c.orchestrator.Release()
	if err := c.provider.Close(); err != nil {
		c.logger.Error("error closing embedding provider", "err", err)
	}
	if err := c.stores.Close(); err != nil {
		c.logger.Error("error closing stores", "err", err)
		return err
	}
	return nil
}

// Ingest runs a batch of records through the gates. Records that clear
// every gate wait in the approval queue; the report carries per-record
// outcomes and errors.
func (c *Curator) Ingest(ctx context.Context, records []*core.ContentRecord) (*pipeline.Report, error) {
	return c.orchestrator.Process(ctx, records)
}

// Approve marks a pending item approved and indexes its record into
// the knowledge stores. Approving an already-decided item is a no-op
// that does not re-index.
func (c *Curator) Approve(ctx context.Context, key core.ID, approver string) (*core.ApprovalItem, error) {
	c.decideMu.Lock()
	defer c.decideMu.Unlock()

	existing, err := c.queue.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing.Status.Terminal() {
		return existing, nil
	}

	item, err := c.queue.Approve(ctx, key, approver)
	if err != nil {
		return nil, err
	}

	if _, err := c.indexer.IndexRecord(ctx, &item.Record, item.Quality.Overall); err != nil {
		// The approval stands even when indexing fails
		c.logger.Error("approved record failed to index", "key", key, "err", err)
		return item, err
	}
	return item, nil
}

// Reject marks a pending item rejected with a reason. Rejecting an
// already-decided item is a no-op.
func (c *Curator) Reject(ctx context.Context, key core.ID, approver, reason string) (*core.ApprovalItem, error) {
	c.decideMu.Lock()
	defer c.decideMu.Unlock()
	return c.queue.Reject(ctx, key, approver, reason)
}

// Pending lists items awaiting a decision, newest first.
func (c *Curator) Pending(ctx context.Context, limit int) ([]*core.ApprovalItem, error) {
	return c.queue.List(ctx, core.StatusPending, limit)
}

// TopRecommendations lists the best pending items up to the daily
// quota.
func (c *Curator) TopRecommendations(ctx context.Context) ([]*core.ApprovalItem, error) {
	return c.queue.TopRecommendations(ctx)
}

// Search runs a similarity search against the indexed chunks.
func (c *Curator) Search(ctx context.Context, query string, topK int, minSimilarity float32) ([]*core.SearchResult, error) {
	return c.indexer.Search(ctx, query, topK, minSimilarity)
}

// QueryClaims runs a filtered lookup against the claims store.
func (c *Curator) QueryClaims(ctx context.Context, filter storage.ClaimFilter) ([]*core.KnowledgeClaim, error) {
	return c.indexer.QueryClaims(ctx, filter)
}

// Sources lists per-domain indexing statistics.
func (c *Curator) Sources(ctx context.Context) ([]*core.SourceStat, error) {
	return c.indexer.Sources(ctx)
}

// Stats reports queue counts, average quality, risk distribution and
// knowledge store sizes.
func (c *Curator) Stats(ctx context.Context) (*Report, error) {
	queueStats, err := c.queue.Stats(ctx)
	if err != nil {
		return nil, err
	}
	chunks, err := c.stores.Chunks.CountChunks(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := c.stores.Claims.CountClaims(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		Queue:          *queueStats,
		IndexedRecords: c.dedup.Size(),
		Chunks:         chunks,
		Claims:         claims,
	}, nil
}

// Report aggregates operator-facing statistics.
type Report struct {
	Queue approval.Stats
	// IndexedRecords counts records seen by the novelty deduplicator.
	IndexedRecords int
	Chunks         int
	Claims         int
}

// NewReindexer builds a reindexer over this curator's chunk store,
// writing progress to the given writer.
func (c *Curator) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(c.stores.Chunks, c.provider.Embedder(), config, progress)
}
