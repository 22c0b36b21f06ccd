package novelty

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/poiesic/curator/ai/mock"
	"github.com/poiesic/curator/core"
	badgerstore "github.com/poiesic/curator/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDedup(t *testing.T) (*Deduplicator, *badgerstore.Stores) {
	t.Helper()
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	d, err := NewDeduplicator(context.Background(), DefaultThreshold,
		mock.NewMockEmbedder(), stores.Snapshots, slog.Default())
	require.NoError(t, err)
	return d, stores
}

func testRecord(title, body string) *core.ContentRecord {
	return &core.ContentRecord{
		Key:   core.RecordKey("https://example.org/"+title, title),
		Title: title,
		Body:  body,
	}
}

func TestDeduplicator_IdenticalContentIsDuplicate(t *testing.T) {
	d, _ := newTestDedup(t)
	ctx := context.Background()

	body := "the raft consensus algorithm decomposes consensus into leader election and log replication"
	first := testRecord("Raft explained", body)
	second := testRecord("Raft explained", body)
	second.Key = core.RecordKey("https://other.org/raft", "Raft explained")

	result, err := d.Process(ctx, first)
	require.NoError(t, err)
	assert.True(t, result.IsNovel)
	assert.Zero(t, result.MaxSimilarity)

	result, err = d.Process(ctx, second)
	require.NoError(t, err)
	assert.False(t, result.IsNovel)
	assert.InDelta(t, 1.0, result.MaxSimilarity, 1e-6)
	assert.InDelta(t, 0.0, result.Score, 1e-6)
	require.NotEmpty(t, result.SimilarItems)
	assert.Equal(t, first.Key, result.SimilarItems[0].Key)
}

func TestDeduplicator_DistinctContentIsNovel(t *testing.T) {
	d, _ := newTestDedup(t)
	ctx := context.Background()

	_, err := d.Process(ctx, testRecord("Consensus algorithms",
		"raft and paxos solve distributed consensus with replicated logs and quorum voting"))
	require.NoError(t, err)

	result, err := d.Process(ctx, testRecord("Bread baking",
		"sourdough fermentation develops flavor through wild yeast and long cold proofing"))
	require.NoError(t, err)
	assert.True(t, result.IsNovel)
	assert.Equal(t, 2, d.Size())
}

func TestDeduplicator_CheckDoesNotMutate(t *testing.T) {
	d, _ := newTestDedup(t)
	ctx := context.Background()

	record := testRecord("A title", "some body text for the novelty check")
	result, err := d.Check(ctx, record)
	require.NoError(t, err)
	assert.True(t, result.IsNovel)
	assert.Zero(t, d.Size())
}

func TestDeduplicator_SnapshotPersistence(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()
	embedder := mock.NewMockEmbedder()

	d, err := NewDeduplicator(ctx, DefaultThreshold, embedder, stores.Snapshots, slog.Default())
	require.NoError(t, err)

	record := testRecord("Persisted record",
		"this content survives a restart through the snapshot tables")
	_, err = d.Process(ctx, record)
	require.NoError(t, err)

	// A fresh deduplicator over the same stores sees the indexed record.
	reloaded, err := NewDeduplicator(ctx, DefaultThreshold, embedder, stores.Snapshots, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Size())

	duplicate := testRecord("Persisted record",
		"this content survives a restart through the snapshot tables")
	duplicate.Key = core.RecordKey("https://elsewhere.org/x", "Persisted record")
	result, err := reloaded.Process(ctx, duplicate)
	require.NoError(t, err)
	assert.False(t, result.IsNovel)
}

func TestDeduplicator_MinHashOnlyConfidence(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
		return nil, errors.New("embedding service down")
	}

	d, err := NewDeduplicator(context.Background(), DefaultThreshold,
		embedder, stores.Snapshots, slog.Default())
	require.NoError(t, err)

	result, err := d.Process(context.Background(), testRecord("Title", "body words here"))
	require.NoError(t, err)
	assert.Equal(t, 0.7, result.Confidence)
}

func TestDeduplicator_TopSimilarBounded(t *testing.T) {
	d, _ := newTestDedup(t)
	ctx := context.Background()

	base := "shared phrasing about consensus algorithms and replication strategies number"
	for i := 0; i < 8; i++ {
		record := testRecord(fmt.Sprintf("Title %d", i), fmt.Sprintf("%s %d", base, i))
		_, err := d.Process(ctx, record)
		require.NoError(t, err)
	}

	result, err := d.Check(ctx, testRecord("Another", base+" final"))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(result.SimilarItems), 5)
}
