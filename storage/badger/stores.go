package badger

import (
	"github.com/poiesic/curator/storage"
)

// Stores bundles the backend with every repository the curation
// pipeline persists through.
type Stores struct {
	Backend   *Backend
	Approval  storage.ApprovalRepository
	Chunks    storage.ChunkRepository
	Claims    storage.ClaimRepository
	Sources   storage.SourceRepository
	Snapshots storage.SnapshotRepository
}

// OpenStores opens a BadgerDB database and wires all repositories over it.
func OpenStores(filePath string, inMemory bool) (*Stores, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	chunks, err := NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Stores{
		Backend:   backend,
		Approval:  NewApprovalRepository(backend),
		Chunks:    chunks,
		Claims:    NewClaimRepository(backend),
		Sources:   NewSourceRepository(backend),
		Snapshots: NewSnapshotRepository(backend),
	}, nil
}

// Close closes every repository and the backend.
func (s *Stores) Close() error {
	s.Approval.Close()
	s.Chunks.Close()
	s.Claims.Close()
	s.Sources.Close()
	s.Snapshots.Close()
	return s.Backend.Close()
}
