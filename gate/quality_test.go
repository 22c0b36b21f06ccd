package gate

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedOverall_Exact(t *testing.T) {
	w := policy.Default().Quality.Weights
	score := core.QualityScore{
		Reputation: 0.9,
		Relevance:  0.8,
		Novelty:    0.5,
		Evidence:   0.7,
		TechDepth:  0.6,
		Recency:    1.0,
	}

	// 0.30*0.9 + 0.25*0.8 + 0.15*0.5 + 0.15*0.7 + 0.10*0.6 + 0.05*1.0
	got := weightedOverall(w, score)
	assert.InDelta(t, 0.76, got, 1e-9)
}

func TestWeightedOverall_Property(t *testing.T) {
	w := policy.Default().Quality.Weights
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		score := core.QualityScore{
			Reputation: rng.Float64(),
			Relevance:  rng.Float64(),
			Novelty:    rng.Float64(),
			Evidence:   rng.Float64(),
			TechDepth:  rng.Float64(),
			Recency:    rng.Float64(),
			Penalty:    rng.Float64() * 0.5,
		}

		got := weightedOverall(w, score)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 1.0)

		expected := w.Reputation*score.Reputation + w.Relevance*score.Relevance +
			w.Novelty*score.Novelty + w.Evidence*score.Evidence +
			w.TechDepth*score.TechDepth + w.Recency*score.Recency - score.Penalty
		require.InDelta(t, math.Min(math.Max(expected, 0), 1), got, 1e-12)
	}
}

func TestQualityScorer_ScoreBounds(t *testing.T) {
	s := NewQualityScorer(policy.Default())

	record := &core.ContentRecord{
		Title:        "Benchmarking consensus algorithm throughput",
		Body:         strings.Repeat("The algorithm shows measurable throughput gains. ", 50),
		Author:       "J. Researcher",
		SourceDomain: "arxiv.org",
		ContentType:  "paper",
		License:      "CC-BY-4.0",
		PublishedAt:  time.Now().Add(-48 * time.Hour),
		WordCount:    350,
	}

	score := s.Score(record, nil, -1)
	assert.GreaterOrEqual(t, score.Overall, 0.0)
	assert.LessOrEqual(t, score.Overall, 1.0)
	assert.Zero(t, score.Penalty)
	// Reputable domain, paper type, author present
	assert.Greater(t, score.Reputation, 0.9)
}

func TestQualityScorer_Penalties(t *testing.T) {
	s := NewQualityScorer(policy.Default())

	record := &core.ContentRecord{
		Title:        "Top 10 shocking tricks",
		Body:         "short",
		SourceDomain: "random.blog",
		WordCount:    20,
	}

	score := s.Score(record, nil, -1)
	// Short content 0.3 + clickbait 0.2 + no author 0.1 + no license
	// 0.1, capped at 0.5
	assert.InDelta(t, 0.5, score.Penalty, 1e-9)
}

func TestQualityScorer_LocalNovelty(t *testing.T) {
	s := NewQualityScorer(policy.Default())

	record := &core.ContentRecord{
		Title:        "Raft consensus explained in depth",
		Body:         "body",
		SourceDomain: "example.org",
		WordCount:    300,
	}

	alone := s.Score(record, nil, -1)
	crowded := s.Score(record, []string{
		record.Title,
		"Raft consensus explained in full depth",
		"Unrelated quantum chemistry paper",
	}, 0)

	assert.Greater(t, alone.Novelty, crowded.Novelty,
		"a near-identical title in the batch must lower local novelty")
}

func TestQualityScorer_LocalNoveltySameTitleTwice(t *testing.T) {
	s := NewQualityScorer(policy.Default())

	record := &core.ContentRecord{
		Title:        "Raft consensus explained",
		Body:         "body",
		SourceDomain: "example.org",
		WordCount:    300,
	}
	batch := []string{record.Title, record.Title}

	// Only the record's own slot is excluded, so a second record with
	// the identical title fully overlaps it.
	score := s.Score(record, batch, 0)
	assert.InDelta(t, 0.0, score.Novelty, 1e-9)
}

func TestRecencySteps(t *testing.T) {
	now := time.Now()
	cases := []struct {
		age      time.Duration
		expected float64
	}{
		{12 * time.Hour, 1.0},
		{3 * 24 * time.Hour, 0.9},
		{20 * 24 * time.Hour, 0.8},
		{60 * 24 * time.Hour, 0.6},
		{200 * 24 * time.Hour, 0.4},
		{800 * 24 * time.Hour, 0.2},
	}
	for _, c := range cases {
		if got := recencyScore(now.Add(-c.age)); got != c.expected {
			t.Fatalf("age %v: expected %v, got %v", c.age, c.expected, got)
		}
	}
	if got := recencyScore(time.Time{}); got != 0.5 {
		t.Fatalf("unknown date: expected 0.5, got %v", got)
	}
}
