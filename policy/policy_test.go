package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyIsValid(t *testing.T) {
	p := Default()
	require.NoError(t, p.Validate())
	assert.InDelta(t, 1.0, p.Quality.Weights.Sum(), 1e-9)
	assert.Equal(t, 0.8, p.Novelty.Threshold)
	assert.Equal(t, 512, p.Indexing.ChunkWords)
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NotNil(t, p)
	assert.Equal(t, Default().Novelty.Threshold, p.Novelty.Threshold)
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o600))

	p := Load(path)
	require.NotNil(t, p)
	require.NoError(t, p.Validate())
}

func TestLoadPartialDocumentMergesDefaults(t *testing.T) {
	doc := `
novelty:
  threshold: 0.9
quality:
  reputation:
    Example.ORG: 0.75
`
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	p, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 0.9, p.Novelty.Threshold)
	// Reputation lookups are case-insensitive on domain
	assert.Equal(t, 0.75, p.Quality.ReputationOf("example.org"))
	// Untouched sections come from the default policy
	assert.NotEmpty(t, p.Licenses.Allowed)
	assert.NotEmpty(t, p.Risk.Patterns)
	assert.InDelta(t, 1.0, p.Quality.Weights.Sum(), 1e-9)
}

func TestLoadFileRejectsBadWeights(t *testing.T) {
	doc := `
quality:
  weights:
    reputation: 0.5
    relevance: 0.1
`
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileRejectsBadPattern(t *testing.T) {
	doc := `
risk:
  patterns:
    - type: injection
      pattern: "("
      severity: high
`
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestReputationDefaultsForUnknownDomain(t *testing.T) {
	p := Default()
	assert.Equal(t, 0.5, p.Quality.ReputationOf("never-seen.example"))
	assert.Equal(t, 0.95, p.Quality.ReputationOf("arxiv.org"))
}
