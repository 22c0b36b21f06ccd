package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) (*ChunkRepository, error) {
	idSeq, err := backend.GetSequence(chunkIDSeq)
	if err != nil {
		return nil, err
	}

	return &ChunkRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ChunkRepository) Close() error {
	return r.idSeq.Release()
}

// FindSimilar delegates to the backend.
func (r *ChunkRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// AddChunks adds one or more vector chunks to storage.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.VectorChunk) ([]*core.VectorChunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			chunk.Id = core.ID(nextID)
			// Microsecond precision, matching the serialized form
			chunk.InsertedAt = time.Now().UTC().Truncate(time.Microsecond)

			key := makeChunkKey(chunk.Id)
			value := storage.MarshalVectorChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			recordKey := makeChunkRecordKey(chunk.RecordKey, chunk.Id)
			if err := tx.Set(recordKey, storage.MarshalID(chunk.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// GetChunk retrieves a single chunk by ID.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ID) (*core.VectorChunk, error) {
	var chunk *core.VectorChunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		chunk, err = r.readChunk(tx, makeChunkKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if chunk == nil {
		return nil, storage.ErrNotFound
	}
	return chunk, nil
}

// UpdateChunks overwrites existing chunks.
func (r *ChunkRepository) UpdateChunks(ctx context.Context, chunks ...*core.VectorChunk) ([]*core.VectorChunk, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(chunk.Id)

			old, err := r.readChunk(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			value := storage.MarshalVectorChunk(chunk)
			if err := tx.Set(key, value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return chunks, err
}

// DeleteChunksByRecord removes all chunks derived from a record.
func (r *ChunkRepository) DeleteChunksByRecord(ctx context.Context, recordKey core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialChunkRecordKey(recordKey)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)

		var indexKeys [][]byte
		var chunkIDs []core.ID
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || !slices.Equal(key[:len(startKey)], startKey) {
				break
			}

			var chunkID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				chunkID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				iter.Close()
				return err
			}
			indexKeys = append(indexKeys, slices.Clone(key))
			chunkIDs = append(chunkIDs, chunkID)
		}
		iter.Close()

		for i, chunkID := range chunkIDs {
			if err := tx.Delete(makeChunkKey(chunkID)); err != nil {
				return err
			}
			if err := tx.Delete(indexKeys[i]); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// ListChunks retrieves up to limit chunks with ID greater than afterID,
// ordered by ID.
func (r *ChunkRepository) ListChunks(ctx context.Context, afterID core.ID, limit int) ([]*core.VectorChunk, error) {
	prefix := []byte(chunkPrefix + ":")

	var results []*core.VectorChunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		startKey := makeChunkKey(afterID + 1)
		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || !slices.Equal(key[:len(prefix)], prefix) {
				break
			}

			var chunk *core.VectorChunk
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				chunk, err = storage.UnmarshalVectorChunk(val)
				return err
			}); err != nil {
				return err
			}
			if chunk != nil {
				results = append(results, chunk)
				if limit > 0 && len(results) >= limit {
					break
				}
			}
		}
		return nil
	}, false)

	return results, err
}

// CountChunks returns the number of stored chunks.
func (r *ChunkRepository) CountChunks(ctx context.Context) (int, error) {
	prefix := []byte(chunkPrefix + ":")

	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)

	return count, err
}

// readChunk reads and unmarshals a chunk inside a transaction.
// Returns nil, nil when the key is absent.
func (r *ChunkRepository) readChunk(tx *badger.Txn, key []byte) (*core.VectorChunk, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var chunk *core.VectorChunk
	err = entry.Value(func(val []byte) error {
		var err error
		chunk, err = storage.UnmarshalVectorChunk(val)
		return err
	})
	return chunk, err
}
