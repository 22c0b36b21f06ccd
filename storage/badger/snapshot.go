// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

const (
	minhashDetector   = "minhash"
	embeddingDetector = "embed"
)

// SnapshotRepository implements storage.SnapshotRepository for BadgerDB.
type SnapshotRepository struct {
	backend *Backend
}

var _ storage.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(backend *Backend) *SnapshotRepository {
	return &SnapshotRepository{backend: backend}
}

// Close is a no-op; the repository owns no resources beyond the backend.
func (r *SnapshotRepository) Close() error {
	return nil
}

// SaveMinHashSnapshot overwrites the persisted MinHash index state.
func (r *SnapshotRepository) SaveMinHashSnapshot(ctx context.Context, snapshot *core.MinHashSnapshot) error {
	return r.save(makeSnapshotKey(minhashDetector), storage.MarshalMinHashSnapshot(snapshot))
}

// LoadMinHashSnapshot retrieves the persisted MinHash index state.
func (r *SnapshotRepository) LoadMinHashSnapshot(ctx context.Context) (*core.MinHashSnapshot, error) {
	data, err := r.load(makeSnapshotKey(minhashDetector))
	if err != nil || data == nil {
		return nil, err
	}
	snapshot, err := storage.UnmarshalMinHashSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
	}
	return snapshot, nil
}

// SaveEmbeddingSnapshot overwrites the persisted embedding index state.
func (r *SnapshotRepository) SaveEmbeddingSnapshot(ctx context.Context, snapshot *core.EmbeddingSnapshot) error {
	return r.save(makeSnapshotKey(embeddingDetector), storage.MarshalEmbeddingSnapshot(snapshot))
}

// LoadEmbeddingSnapshot retrieves the persisted embedding index state.
func (r *SnapshotRepository) LoadEmbeddingSnapshot(ctx context.Context) (*core.EmbeddingSnapshot, error) {
	data, err := r.load(makeSnapshotKey(embeddingDetector))
	if err != nil || data == nil {
		return nil, err
	}
	snapshot, err := storage.UnmarshalEmbeddingSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrCorruptSnapshot, err)
	}
	return snapshot, nil
}

func (r *SnapshotRepository) save(key, value []byte) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// load returns nil, nil when no snapshot exists under the key.
func (r *SnapshotRepository) load(key []byte) ([]byte, error) {
	var data []byte
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	return data, nil
}
