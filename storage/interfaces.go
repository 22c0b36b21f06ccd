package storage

import (
	"context"
	"time"

	"github.com/poiesic/curator/core"
)

// Repository provides lifecycle operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// Close closes the repository and releases resources.
	Close() error
}

// ApprovalRepository persists approval-queue items. Every mutation of an
// item is written through immediately so the queue survives restarts.
type ApprovalRepository interface {
	Repository

	// PutItem inserts or overwrites an approval item, maintaining the
	// status and date indexes. The item key is the record's derived key.
	PutItem(ctx context.Context, item *core.ApprovalItem) error

	// GetItem retrieves an approval item by key.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, key core.ID) (*core.ApprovalItem, error)

	// ListItems retrieves items filtered by status, newest first.
	// A zero status returns items in every state. A limit <= 0 returns all.
	ListItems(ctx context.Context, status core.ApprovalStatus, limit int) ([]*core.ApprovalItem, error)
}

// ChunkRepository persists vector chunks and serves similarity search.
type ChunkRepository interface {
	Repository

	// AddChunks adds one or more vector chunks to storage.
	// Generates new IDs from sequence and sets InsertedAt.
	// Returns the chunks with IDs and timestamps populated.
	AddChunks(ctx context.Context, chunks ...*core.VectorChunk) ([]*core.VectorChunk, error)

	// GetChunk retrieves a single chunk by ID.
	// Returns ErrNotFound if the chunk doesn't exist.
	GetChunk(ctx context.Context, id core.ID) (*core.VectorChunk, error)

	// UpdateChunks overwrites existing chunks. Reserved for bulk
	// re-embedding; chunk text and identity never change.
	// Returns ErrNotFound if any chunk doesn't exist.
	UpdateChunks(ctx context.Context, chunks ...*core.VectorChunk) ([]*core.VectorChunk, error)

	// DeleteChunksByRecord removes all chunks derived from a record.
	DeleteChunksByRecord(ctx context.Context, recordKey core.ID) error

	// ListChunks retrieves up to limit chunks with ID greater than afterID,
	// ordered by ID. Used for batched iteration over the whole store.
	ListChunks(ctx context.Context, afterID core.ID, limit int) ([]*core.VectorChunk, error)

	// FindSimilar finds chunks similar to the given vector.
	// Returns chunks with similarity >= minSimilarity, up to limit results,
	// ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// CountChunks returns the number of stored chunks.
	CountChunks(ctx context.Context) (int, error)
}

// ClaimFilter narrows a claim query. Empty string fields and a zero
// MinConfidence match everything; filters combine with AND.
type ClaimFilter struct {
	Subject       string
	Predicate     string
	Object        string
	SourceDomain  string
	MinConfidence float64
	Limit         int // <= 0 means no limit
}

// ClaimRepository persists knowledge claims indexed by subject,
// predicate, object, source domain, date and content hash.
type ClaimRepository interface {
	Repository

	// AddClaims adds claims to storage, skipping any claim whose
	// content hash already exists (first write wins).
	// Returns only the claims that were actually stored.
	AddClaims(ctx context.Context, claims ...*core.KnowledgeClaim) ([]*core.KnowledgeClaim, error)

	// GetClaim retrieves a claim by ID (its content hash).
	// Returns ErrNotFound if the claim doesn't exist.
	GetClaim(ctx context.Context, id core.ID) (*core.KnowledgeClaim, error)

	// HasClaim reports whether a claim with the given content hash exists.
	HasClaim(ctx context.Context, hash core.ID) (bool, error)

	// QueryClaims retrieves claims matching the filter,
	// ordered by confidence descending.
	QueryClaims(ctx context.Context, filter ClaimFilter) ([]*core.KnowledgeClaim, error)

	// DeleteClaimsByRecord removes all claims extracted from a record.
	DeleteClaimsByRecord(ctx context.Context, recordKey core.ID) error

	// CountClaims returns the number of stored claims.
	CountClaims(ctx context.Context) (int, error)
}

// SourceRepository maintains per-domain aggregates over indexed records.
type SourceRepository interface {
	Repository

	// RecordIndexed folds one indexed record into the domain's aggregate,
	// creating the aggregate on first sight.
	RecordIndexed(ctx context.Context, domain string, quality float64, seen time.Time) (*core.SourceStat, error)

	// GetSource retrieves the aggregate for a domain.
	// Returns ErrNotFound if the domain has never been indexed.
	GetSource(ctx context.Context, domain string) (*core.SourceStat, error)

	// ListSources retrieves all source aggregates, ordered by domain.
	ListSources(ctx context.Context) ([]*core.SourceStat, error)
}

// SnapshotRepository persists the novelty detector indexes as full
// snapshots, one per detector.
type SnapshotRepository interface {
	Repository

	// SaveMinHashSnapshot overwrites the persisted MinHash index state.
	SaveMinHashSnapshot(ctx context.Context, snapshot *core.MinHashSnapshot) error

	// LoadMinHashSnapshot retrieves the persisted MinHash index state.
	// Returns nil, nil when no snapshot has been saved yet and
	// ErrCorruptSnapshot when the stored bytes cannot be decoded.
	LoadMinHashSnapshot(ctx context.Context) (*core.MinHashSnapshot, error)

	// SaveEmbeddingSnapshot overwrites the persisted embedding index state.
	SaveEmbeddingSnapshot(ctx context.Context, snapshot *core.EmbeddingSnapshot) error

	// LoadEmbeddingSnapshot retrieves the persisted embedding index state.
	// Same absent/corrupt semantics as LoadMinHashSnapshot.
	LoadEmbeddingSnapshot(ctx context.Context) (*core.EmbeddingSnapshot, error)
}
