package mock

import "github.com/poiesic/curator/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	MockEmbedder *MockEmbedder
	closed       bool
}

var _ ai.Provider = (*MockProvider)(nil)

// NewMockProvider creates a provider backed by a deterministic mock
// embedder.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MockEmbedder: NewMockEmbedder(),
	}
}

// Embedder returns the mock embedding service.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.MockEmbedder
}

// Close marks the provider closed.
func (p *MockProvider) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close was called.
func (p *MockProvider) Closed() bool {
	return p.closed
}
