package badger

import (
	"context"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// ApprovalRepository implements storage.ApprovalRepository for BadgerDB.
type ApprovalRepository struct {
	backend *Backend
}

var _ storage.ApprovalRepository = (*ApprovalRepository)(nil)

// NewApprovalRepository creates a new ApprovalRepository.
func NewApprovalRepository(backend *Backend) *ApprovalRepository {
	return &ApprovalRepository{backend: backend}
}

// Close is a no-op; the repository owns no resources beyond the backend.
func (r *ApprovalRepository) Close() error {
	return nil
}

// PutItem inserts or overwrites an approval item.
func (r *ApprovalRepository) PutItem(ctx context.Context, item *core.ApprovalItem) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeApprovalKey(item.Key)

		// Read old item to maintain the status index across transitions
		old, err := r.readItem(tx, key)
		if err != nil {
			return err
		}
		if old != nil && old.Status != item.Status {
			oldStatusKey := makeApprovalStatusKey(old.Status, old.CreatedAt, old.Key)
			if err := tx.Delete(oldStatusKey); err != nil {
				return err
			}
		}

		value := storage.MarshalApprovalItem(item)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		statusKey := makeApprovalStatusKey(item.Status, item.CreatedAt, item.Key)
		if err := tx.Set(statusKey, storage.MarshalID(item.Key)); err != nil {
			return err
		}

		dateKey := makeApprovalDateKey(item.CreatedAt, item.Key)
		if err := tx.Set(dateKey, storage.MarshalID(item.Key)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// GetItem retrieves an approval item by key.
func (r *ApprovalRepository) GetItem(ctx context.Context, key core.ID) (*core.ApprovalItem, error) {
	var item *core.ApprovalItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		item, err = r.readItem(tx, makeApprovalKey(key))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, storage.ErrNotFound
	}
	return item, nil
}

// ListItems retrieves items filtered by status, newest first.
func (r *ApprovalRepository) ListItems(ctx context.Context, status core.ApprovalStatus, limit int) ([]*core.ApprovalItem, error) {
	var prefix []byte
	if status == 0 {
		prefix = []byte(approvalDatePrefix + ":")
	} else {
		prefix = makePartialApprovalStatusKey(status)
	}

	var results []*core.ApprovalItem
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek past the last possible key under the prefix
		startKey := append(slices.Clone(prefix), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || !slices.Equal(key[:len(prefix)], prefix) {
				break
			}

			var itemKey core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				itemKey, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			item, err := r.readItem(tx, makeApprovalKey(itemKey))
			if err != nil {
				return err
			}
			if item != nil {
				results = append(results, item)
				if limit > 0 && len(results) >= limit {
					break
				}
			}
		}
		return nil
	}, false)

	return results, err
}

// readItem reads and unmarshals an approval item inside a transaction.
// Returns nil, nil when the key is absent.
func (r *ApprovalRepository) readItem(tx *badger.Txn, key []byte) (*core.ApprovalItem, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var item *core.ApprovalItem
	err = entry.Value(func(val []byte) error {
		var err error
		item, err = storage.UnmarshalApprovalItem(val)
		return err
	})
	return item, err
}
