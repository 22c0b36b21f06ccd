package reindex

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/poiesic/curator/ai/mock"
	"github.com/poiesic/curator/core"
	badgerstore "github.com/poiesic/curator/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedChunks(t *testing.T, stores *badgerstore.Stores, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < n; i++ {
		_, err := stores.Chunks.AddChunks(ctx, &core.VectorChunk{
			RecordKey: core.IDFromContent(fmt.Sprintf("record-%d", i)),
			Text:      fmt.Sprintf("chunk text number %d", i),
			Vector:    []float32{1, 0, 0},
		})
		require.NoError(t, err)
	}
}

func TestReindexer_Run(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	seedChunks(t, stores, 7)

	var out bytes.Buffer
	config := DefaultConfig()
	config.BatchSize = 3
	r := NewReindexer(stores.Chunks, mock.NewMockEmbedder(), config, &out)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "Reindex complete. Processed 7 chunks")

	// Every chunk now carries a fresh, non-placeholder vector
	chunks, err := stores.Chunks.ListChunks(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Len(t, chunks, 7)
	for _, chunk := range chunks {
		assert.NotEqual(t, []float32{1, 0, 0}, chunk.Vector)
		assert.Len(t, chunk.Vector, 384)
	}
}

func TestReindexer_EmptyStore(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	var out bytes.Buffer
	r := NewReindexer(stores.Chunks, mock.NewMockEmbedder(), nil, &out)

	require.NoError(t, r.Run(context.Background()))
	assert.Contains(t, out.String(), "No chunks found")
}

func TestReindexer_EmbedderFailureSurfaces(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	seedChunks(t, stores, 2)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(context.Context, []string) ([][]float32, error) {
		return nil, errors.New("service down")
	}

	var out bytes.Buffer
	config := DefaultConfig()
	config.MaxRetries = 2
	config.RetryDelay = 0
	r := NewReindexer(stores.Chunks, embedder, config, &out)

	err = r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service down")
}

func TestChunkIterator_Batches(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	seedChunks(t, stores, 5)

	it := NewChunkIterator(stores.Chunks, 2)
	var sizes []int
	var lastID core.ID
	err = it.ForEach(context.Background(), func(batch []*core.VectorChunk) error {
		sizes = append(sizes, len(batch))
		for _, chunk := range batch {
			require.Greater(t, uint64(chunk.Id), uint64(lastID), "chunks must stream in ID order")
			lastID = chunk.Id
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestNormalizeVector(t *testing.T) {
	normalized := NormalizeVector([]float32{3, 4})
	assert.InDelta(t, 0.6, float64(normalized[0]), 1e-6)
	assert.InDelta(t, 0.8, float64(normalized[1]), 1e-6)

	zero := NormalizeVector([]float32{0, 0})
	assert.Equal(t, []float32{0, 0}, zero)
}
