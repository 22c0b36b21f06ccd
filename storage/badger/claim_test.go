package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClaim(subject, predicate, object, domain string, confidence float64) *core.KnowledgeClaim {
	return &core.KnowledgeClaim{
		Subject:      subject,
		Predicate:    predicate,
		Object:       object,
		RecordKey:    core.IDFromContent(domain + subject),
		SourceDomain: domain,
		Date:         time.Now().UTC().Truncate(time.Microsecond),
		Confidence:   confidence,
	}
}

func TestClaimRepository_AddAndDedup(t *testing.T) {
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()

	first := newClaim("Raft", "is", "a consensus algorithm", "arxiv.org", 0.8)
	added, err := stores.Claims.AddClaims(ctx, first)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, first.ContentHash, first.Id)

	// Same triple from a different source must be dropped; first write wins.
	second := newClaim("raft", "IS", "a consensus algorithm", "example.org", 0.9)
	added, err = stores.Claims.AddClaims(ctx, second)
	require.NoError(t, err)
	assert.Empty(t, added)

	count, err := stores.Claims.CountClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	stored, err := stores.Claims.GetClaim(ctx, first.Id)
	require.NoError(t, err)
	assert.Equal(t, "arxiv.org", stored.SourceDomain)

	has, err := stores.Claims.HasClaim(ctx, core.ClaimHash("Raft", "is", "a consensus algorithm"))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestClaimRepository_Query(t *testing.T) {
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()

	claims := []*core.KnowledgeClaim{
		newClaim("Raft", "is", "a consensus algorithm", "arxiv.org", 0.9),
		newClaim("Raft", "requires", "a stable leader", "arxiv.org", 0.6),
		newClaim("Paxos", "is", "a consensus algorithm", "example.org", 0.7),
	}
	_, err = stores.Claims.AddClaims(ctx, claims...)
	require.NoError(t, err)

	// By subject, ordered by confidence descending
	results, err := stores.Claims.QueryClaims(ctx, storage.ClaimFilter{Subject: "raft"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "is", results[0].Predicate)
	assert.Equal(t, "requires", results[1].Predicate)

	// By predicate
	results, err = stores.Claims.QueryClaims(ctx, storage.ClaimFilter{Predicate: "is"})
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// By source domain
	results, err = stores.Claims.QueryClaims(ctx, storage.ClaimFilter{SourceDomain: "example.org"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Paxos", results[0].Subject)

	// Combined filters
	results, err = stores.Claims.QueryClaims(ctx, storage.ClaimFilter{
		Subject:       "raft",
		MinConfidence: 0.8,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "is", results[0].Predicate)

	// No filters scans everything
	results, err = stores.Claims.QueryClaims(ctx, storage.ClaimFilter{})
	require.NoError(t, err)
	assert.Len(t, results, 3)

	// Limit
	results, err = stores.Claims.QueryClaims(ctx, storage.ClaimFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestClaimRepository_DeleteByRecord(t *testing.T) {
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()

	keep := newClaim("Raft", "is", "a consensus algorithm", "arxiv.org", 0.9)
	drop := newClaim("Paxos", "is", "notoriously subtle", "example.org", 0.7)
	_, err = stores.Claims.AddClaims(ctx, keep, drop)
	require.NoError(t, err)

	require.NoError(t, stores.Claims.DeleteClaimsByRecord(ctx, drop.RecordKey))

	count, err := stores.Claims.CountClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Index entries for the deleted claim are gone too.
	results, err := stores.Claims.QueryClaims(ctx, storage.ClaimFilter{Subject: "paxos"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSourceRepository_Aggregates(t *testing.T) {
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()
	day1 := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	_, err = stores.Sources.RecordIndexed(ctx, "arxiv.org", 0.8, day2)
	require.NoError(t, err)
	stat, err := stores.Sources.RecordIndexed(ctx, "arxiv.org", 0.6, day1)
	require.NoError(t, err)

	assert.Equal(t, 2, stat.Records)
	assert.InDelta(t, 0.7, stat.AvgQuality(), 1e-9)
	assert.Equal(t, day1, stat.FirstSeen)
	assert.Equal(t, day2, stat.LastSeen)

	got, err := stores.Sources.GetSource(ctx, "arxiv.org")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Records)

	list, err := stores.Sources.ListSources(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()

	// Absent snapshots load as nil without error
	loaded, err := stores.Snapshots.LoadMinHashSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	minhash := &core.MinHashSnapshot{
		Keys:       []core.ID{1, 2},
		Signatures: [][]uint64{{3, 4}, {5, 6}},
	}
	require.NoError(t, stores.Snapshots.SaveMinHashSnapshot(ctx, minhash))

	loaded, err = stores.Snapshots.LoadMinHashSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, minhash, loaded)

	embed := &core.EmbeddingSnapshot{
		Keys:    []core.ID{7},
		Vectors: [][]float32{{0.5, 0.25}},
	}
	require.NoError(t, stores.Snapshots.SaveEmbeddingSnapshot(ctx, embed))

	loadedEmbed, err := stores.Snapshots.LoadEmbeddingSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, embed, loadedEmbed)
}
