package approval

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
	badgerstore "github.com/poiesic/curator/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*Queue, *badgerstore.Stores) {
	t.Helper()
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	return NewQueue(policy.Default(), stores.Approval, slog.Default()), stores
}

func queueRecord(title string) *core.ContentRecord {
	url := "https://arxiv.org/abs/" + title
	return &core.ContentRecord{
		Key:          core.RecordKey(url, title),
		Title:        title,
		URL:          url,
		Body:         "body",
		SourceDomain: "arxiv.org",
	}
}

func passingInputs(quality, noveltyScore float64) (core.QualityScore, core.LicenseDecision, core.RiskAssessment, core.NoveltyResult) {
	return core.QualityScore{Overall: quality},
		core.LicenseDecision{Allowed: true, Confidence: 1.0},
		core.RiskAssessment{Level: core.RiskLow, Safe: true},
		core.NoveltyResult{IsNovel: true, Score: noveltyScore, Confidence: 0.9}
}

func TestQueue_AddSynthesizesVerdict(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	quality, license, risk, nov := passingInputs(0.85, 0.9)
	item, err := q.Add(ctx, queueRecord("good-paper"), quality, license, risk, nov)
	require.NoError(t, err)

	assert.Equal(t, core.VerdictApprove, item.Verdict)
	assert.Contains(t, item.Recommendation, "APPROVE")
	assert.Contains(t, item.Recommendation, "excellent quality")
	assert.Equal(t, core.StatusPending, item.Status)
	assert.False(t, item.CreatedAt.IsZero())
}

func TestQueue_VerdictTiers(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	// Decent quality but unsafe risk: no APPROVE, no REVIEW
	quality, license, _, nov := passingInputs(0.75, 0.9)
	risk := core.RiskAssessment{Level: core.RiskCritical, Score: 0.9, Safe: false}
	item, err := q.Add(ctx, queueRecord("risky"), quality, license, risk, nov)
	require.NoError(t, err)
	assert.Equal(t, core.VerdictReject, item.Verdict)

	// Mid quality, licensed, low risk: REVIEW
	quality, license, risk2, nov := passingInputs(0.55, 0.9)
	item, err = q.Add(ctx, queueRecord("middling"), quality, license, risk2, nov)
	require.NoError(t, err)
	assert.Equal(t, core.VerdictReview, item.Verdict)

	// Stale novelty blocks APPROVE but not REVIEW
	quality, license, risk3, _ := passingInputs(0.9, 0.0)
	nov = core.NoveltyResult{IsNovel: true, Score: 0.1}
	item, err = q.Add(ctx, queueRecord("stale"), quality, license, risk3, nov)
	require.NoError(t, err)
	assert.Equal(t, core.VerdictReview, item.Verdict)
}

func TestQueue_DuplicatePendingBlocked(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	record := queueRecord("once")
	quality, license, risk, nov := passingInputs(0.8, 0.8)

	_, err := q.Add(ctx, record, quality, license, risk, nov)
	require.NoError(t, err)

	_, err = q.Add(ctx, record, quality, license, risk, nov)
	assert.True(t, errors.Is(err, ErrDuplicatePending))
}

func TestQueue_ApproveIdempotent(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	quality, license, risk, nov := passingInputs(0.8, 0.8)
	item, err := q.Add(ctx, queueRecord("to-approve"), quality, license, risk, nov)
	require.NoError(t, err)

	approved, err := q.Approve(ctx, item.Key, "operator-1")
	require.NoError(t, err)
	assert.Equal(t, core.StatusApproved, approved.Status)
	assert.Equal(t, "operator-1", approved.ApprovedBy)
	assert.False(t, approved.DecidedAt.IsZero())

	// Second approve is a no-op preserving the original approver.
	again, err := q.Approve(ctx, item.Key, "operator-2")
	require.NoError(t, err)
	assert.Equal(t, "operator-1", again.ApprovedBy)
	assert.Equal(t, approved.DecidedAt, again.DecidedAt)

	// Rejecting an approved item never returns it to pending.
	rejected, err := q.Reject(ctx, item.Key, "operator-2", "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, core.StatusApproved, rejected.Status)
	assert.Empty(t, rejected.RejectionReason)
}

func TestQueue_RejectCarriesReason(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	quality, license, risk, nov := passingInputs(0.8, 0.8)
	item, err := q.Add(ctx, queueRecord("to-reject"), quality, license, risk, nov)
	require.NoError(t, err)

	rejected, err := q.Reject(ctx, item.Key, "operator-1", "low editorial value")
	require.NoError(t, err)
	assert.Equal(t, core.StatusRejected, rejected.Status)
	assert.Equal(t, "low editorial value", rejected.RejectionReason)
}

func TestQueue_MissingItem(t *testing.T) {
	q, _ := newTestQueue(t)

	_, err := q.Approve(context.Background(), core.ID(404), "operator")
	assert.True(t, errors.Is(err, ErrItemNotFound))
}

func TestQueue_TopRecommendations(t *testing.T) {
	p := policy.Default()
	p.Approval.DailyQuota = 2

	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()
	q := NewQueue(p, stores.Approval, slog.Default())
	ctx := context.Background()

	cases := []struct {
		title   string
		quality float64
		novelty float64
	}{
		{"best", 0.95, 0.9},
		{"second", 0.85, 0.9},
		{"third", 0.75, 0.9},
		{"review-only", 0.55, 0.9},
	}
	for _, c := range cases {
		quality, license, risk, nov := passingInputs(c.quality, c.novelty)
		_, err := q.Add(ctx, queueRecord(c.title), quality, license, risk, nov)
		require.NoError(t, err)
	}

	top, err := q.TopRecommendations(ctx)
	require.NoError(t, err)
	require.Len(t, top, 2, "daily quota caps recommendations")
	assert.Equal(t, "best", top[0].Record.Title)
	assert.Equal(t, "second", top[1].Record.Title)
}

func TestQueue_Stats(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	quality, license, risk, nov := passingInputs(0.8, 0.8)
	a, err := q.Add(ctx, queueRecord("a"), quality, license, risk, nov)
	require.NoError(t, err)
	quality2, license2, _, nov2 := passingInputs(0.6, 0.8)
	risk2 := core.RiskAssessment{Level: core.RiskMedium, Score: 0.3, Safe: true}
	_, err = q.Add(ctx, queueRecord("b"), quality2, license2, risk2, nov2)
	require.NoError(t, err)

	_, err = q.Approve(ctx, a.Key, "operator")
	require.NoError(t, err)

	stats, err := q.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Approved)
	assert.Zero(t, stats.Rejected)
	assert.InDelta(t, 0.7, stats.AvgQuality, 1e-9)
	assert.Equal(t, 1, stats.RiskDistribution["low"])
	assert.Equal(t, 1, stats.RiskDistribution["medium"])
}

func TestQueue_PersistenceRoundTrip(t *testing.T) {
	stores, err := badgerstore.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	ctx := context.Background()
	q := NewQueue(policy.Default(), stores.Approval, slog.Default())

	quality, license, risk, nov := passingInputs(0.8, 0.8)
	item, err := q.Add(ctx, queueRecord("durable"), quality, license, risk, nov)
	require.NoError(t, err)

	// A fresh queue over the same repository sees identical state.
	fresh := NewQueue(policy.Default(), stores.Approval, slog.Default())
	got, err := fresh.Get(ctx, item.Key)
	require.NoError(t, err)
	assert.Equal(t, item.Recommendation, got.Recommendation)
	assert.Equal(t, item.Verdict, got.Verdict)
	assert.Equal(t, core.StatusPending, got.Status)
}
