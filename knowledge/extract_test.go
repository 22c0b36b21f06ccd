package knowledge

import (
	"testing"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractionRecord(body, domain string) *core.ContentRecord {
	return &core.ContentRecord{
		Key:          core.IDFromContent(body),
		Title:        "Untitled",
		Body:         body,
		SourceDomain: domain,
	}
}

func TestExtractor_BasicClaim(t *testing.T) {
	e := NewExtractor(policy.Default())

	claims := e.Extract(extractionRecord(
		"Raft is a consensus algorithm designed for understandability and correctness.", "arxiv.org"))

	require.Len(t, claims, 1)
	claim := claims[0]
	assert.Equal(t, "Raft", claim.Subject)
	assert.Equal(t, "is", claim.Predicate)
	assert.Contains(t, claim.Object, "a consensus algorithm")
	assert.Equal(t, "arxiv.org", claim.SourceDomain)
	assert.Equal(t, core.ClaimHash(claim.Subject, claim.Predicate, claim.Object), claim.ContentHash)
	assert.Greater(t, claim.Confidence, 0.5)
	assert.LessOrEqual(t, claim.Confidence, 1.0)
}

func TestExtractor_EvidentialPredicateScoresHigher(t *testing.T) {
	e := NewExtractor(policy.Default())

	copula := e.Extract(extractionRecord(
		"The Benchmark is a useful measure of real system throughput today.", "example.org"))
	evidential := e.Extract(extractionRecord(
		"The Benchmark demonstrates a useful measure of real system throughput today.", "example.org"))

	require.Len(t, copula, 1)
	require.Len(t, evidential, 1)
	assert.Greater(t, evidential[0].Confidence, copula[0].Confidence)
}

func TestExtractor_ReputationBonus(t *testing.T) {
	e := NewExtractor(policy.Default())
	body := "Paxos is a protocol for reaching agreement among unreliable processors."

	reputable := e.Extract(extractionRecord(body, "arxiv.org"))
	unknown := e.Extract(extractionRecord(body, "nobody-knows.example"))

	require.Len(t, reputable, 1)
	require.Len(t, unknown, 1)
	assert.Greater(t, reputable[0].Confidence, unknown[0].Confidence)
}

func TestExtractor_IgnoresNonClaims(t *testing.T) {
	e := NewExtractor(policy.Default())

	claims := e.Extract(extractionRecord(
		"the lowercase start never matches. What about questions here? running along without structure", "example.org"))
	assert.Empty(t, claims)
}

func TestExtractor_SubjectLengthBounded(t *testing.T) {
	e := NewExtractor(policy.Default())

	// A run of capitalized words longer than the subject bound is not
	// a claim candidate.
	claims := e.Extract(extractionRecord(
		"One Two Three Four Five Six Seven Eight is too long a subject to trust.", "example.org"))
	assert.Empty(t, claims)
}

func TestExtractor_MultipleSentences(t *testing.T) {
	e := NewExtractor(policy.Default())

	claims := e.Extract(extractionRecord(
		"Raft is a consensus algorithm for replicated logs. "+
			"Leader election requires randomized timeouts to avoid split votes. "+
			"It was raining outside.", "arxiv.org"))

	require.Len(t, claims, 2)
	assert.Equal(t, "Raft", claims[0].Subject)
	assert.Equal(t, "Leader election", claims[1].Subject)
	assert.Equal(t, "requires", claims[1].Predicate)
}
