package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// SourceRepository implements storage.SourceRepository for BadgerDB.
type SourceRepository struct {
	backend *Backend
}

var _ storage.SourceRepository = (*SourceRepository)(nil)

// NewSourceRepository creates a new SourceRepository.
func NewSourceRepository(backend *Backend) *SourceRepository {
	return &SourceRepository{backend: backend}
}

// Close is a no-op; the repository owns no resources beyond the backend.
func (r *SourceRepository) Close() error {
	return nil
}

// RecordIndexed folds one indexed record into the domain's aggregate.
func (r *SourceRepository) RecordIndexed(ctx context.Context, domain string, quality float64, seen time.Time) (*core.SourceStat, error) {
	var stat *core.SourceStat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeSourceKey(domain)

		var err error
		stat, err = r.readStat(tx, key)
		if err != nil {
			return err
		}
		if stat == nil {
			stat = &core.SourceStat{
				Domain:    domain,
				FirstSeen: seen,
			}
		}

		stat.Records++
		stat.TotalQuality += quality
		if seen.Before(stat.FirstSeen) {
			stat.FirstSeen = seen
		}
		if seen.After(stat.LastSeen) {
			stat.LastSeen = seen
		}

		if err := tx.Set(key, storage.MarshalSourceStat(stat)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return stat, err
}

// GetSource retrieves the aggregate for a domain.
func (r *SourceRepository) GetSource(ctx context.Context, domain string) (*core.SourceStat, error) {
	var stat *core.SourceStat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		stat, err = r.readStat(tx, makeSourceKey(domain))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		return nil, storage.ErrNotFound
	}
	return stat, nil
}

// ListSources retrieves all source aggregates, ordered by domain.
func (r *SourceRepository) ListSources(ctx context.Context) ([]*core.SourceStat, error) {
	var results []*core.SourceStat
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(sourcePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var stat *core.SourceStat
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				stat, err = storage.UnmarshalSourceStat(val)
				return err
			}); err != nil {
				return err
			}
			if stat != nil {
				results = append(results, stat)
			}
		}
		return nil
	}, false)

	return results, err
}

// readStat reads and unmarshals a source aggregate inside a transaction.
// Returns nil, nil when the key is absent.
func (r *SourceRepository) readStat(tx *badger.Txn, key []byte) (*core.SourceStat, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var stat *core.SourceStat
	err = entry.Value(func(val []byte) error {
		var err error
		stat, err = storage.UnmarshalSourceStat(val)
		return err
	})
	return stat, err
}
