package knowledge

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/poiesic/curator/ai/mock"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
	"github.com/poiesic/curator/storage"
	badgerstore "github.com/poiesic/curator/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndexer(t *testing.T) (*Indexer, *badgerstore.Stores) {
	t.Helper()
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	ix := NewIndexer(policy.Default(), stores.Chunks, stores.Claims,
		stores.Sources, mock.NewMockEmbedder(), slog.Default())
	return ix, stores
}

func indexableRecord(title, body, domain string) *core.ContentRecord {
	url := "https://" + domain + "/" + strings.ReplaceAll(title, " ", "-")
	return &core.ContentRecord{
		Key:          core.RecordKey(url, title),
		Title:        title,
		URL:          url,
		Body:         body,
		SourceDomain: domain,
	}
}

func TestIndexer_IndexRecord(t *testing.T) {
	ix, stores := newTestIndexer(t)
	ctx := context.Background()

	record := indexableRecord("Raft overview",
		"Raft is a consensus algorithm for managing a replicated log across servers.",
		"arxiv.org")

	report, err := ix.IndexRecord(ctx, record, 0.8)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Chunks)
	assert.Equal(t, 1, report.ClaimsAdded)

	count, err := stores.Chunks.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	chunks, err := stores.Chunks.ListChunks(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, record.Key, chunks[0].RecordKey)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
	assert.Equal(t, 1, chunks[0].TotalChunks)
	assert.NotEmpty(t, chunks[0].Vector)

	stat, err := stores.Sources.GetSource(ctx, "arxiv.org")
	require.NoError(t, err)
	assert.Equal(t, 1, stat.Records)
	assert.InDelta(t, 0.8, stat.AvgQuality(), 1e-9)
}

func TestIndexer_ChunksLongRecords(t *testing.T) {
	ix, _ := newTestIndexer(t)

	body := strings.Repeat("word ", 1100)
	record := indexableRecord("Long record", body, "example.org")

	report, err := ix.IndexRecord(context.Background(), record, 0.6)
	require.NoError(t, err)
	// 1102 words with the title makes three 512-word-bounded chunks
	assert.Equal(t, 3, report.Chunks)
}

func TestIndexer_ClaimDedupAcrossRecords(t *testing.T) {
	ix, stores := newTestIndexer(t)
	ctx := context.Background()

	body := "Raft is a consensus algorithm for managing a replicated log across servers."
	first := indexableRecord("From arxiv", body, "arxiv.org")
	second := indexableRecord("From a blog", body, "random.blog")

	reportA, err := ix.IndexRecord(ctx, first, 0.8)
	require.NoError(t, err)
	assert.Equal(t, 1, reportA.ClaimsAdded)

	// Same subject-predicate-object from a different source: extracted
	// again, stored never.
	reportB, err := ix.IndexRecord(ctx, second, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 1, reportB.ClaimsExtracted)
	assert.Zero(t, reportB.ClaimsAdded)

	count, err := stores.Claims.CountClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// First write wins on the source domain
	claims, err := stores.Claims.QueryClaims(ctx, storage.ClaimFilter{Subject: "raft"})
	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "arxiv.org", claims[0].SourceDomain)
}

func TestIndexer_ReindexReplacesChunks(t *testing.T) {
	ix, stores := newTestIndexer(t)
	ctx := context.Background()

	record := indexableRecord("Stable title", "Original body of the record.", "example.org")
	_, err := ix.IndexRecord(ctx, record, 0.6)
	require.NoError(t, err)

	record.Body = "Revised body of the record with different words."
	_, err = ix.IndexRecord(ctx, record, 0.6)
	require.NoError(t, err)

	count, err := stores.Chunks.CountChunks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "re-indexing must replace, not duplicate")
}

func TestIndexer_Search(t *testing.T) {
	ix, _ := newTestIndexer(t)
	ctx := context.Background()

	record := indexableRecord("Searchable", "Some unique content about vector search.", "example.org")
	_, err := ix.IndexRecord(ctx, record, 0.7)
	require.NoError(t, err)

	// The mock embedder is deterministic, so querying with the chunk's
	// own text scores 1.0.
	chunkText := strings.Join(strings.Fields(record.Text()), " ")
	results, err := ix.Search(ctx, chunkText, 5, 0.9)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.InDelta(t, 1.0, float64(results[0].Score), 1e-5)
	assert.Equal(t, record.Key, results[0].Chunk.RecordKey)
}

func TestIndexer_EmptyRecord(t *testing.T) {
	ix, _ := newTestIndexer(t)

	record := &core.ContentRecord{Key: 1, SourceDomain: "example.org"}
	_, err := ix.IndexRecord(context.Background(), record, 0.5)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestIndexer_DeleteRecord(t *testing.T) {
	ix, stores := newTestIndexer(t)
	ctx := context.Background()

	record := indexableRecord("Doomed",
		"Paxos is a protocol for agreement among unreliable processors.", "example.org")
	_, err := ix.IndexRecord(ctx, record, 0.6)
	require.NoError(t, err)

	require.NoError(t, ix.DeleteRecord(ctx, record.Key))

	count, err := stores.Chunks.CountChunks(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	claimCount, err := stores.Claims.CountClaims(ctx)
	require.NoError(t, err)
	assert.Zero(t, claimCount)
}
