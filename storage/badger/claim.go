package badger

import (
	"context"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/storage"
)

// ClaimRepository implements storage.ClaimRepository for BadgerDB.
type ClaimRepository struct {
	backend *Backend
}

var _ storage.ClaimRepository = (*ClaimRepository)(nil)

// NewClaimRepository creates a new ClaimRepository.
func NewClaimRepository(backend *Backend) *ClaimRepository {
	return &ClaimRepository{backend: backend}
}

// Close is a no-op; the repository owns no resources beyond the backend.
func (r *ClaimRepository) Close() error {
	return nil
}

// AddClaims adds claims to storage, skipping any claim whose content
// hash already exists. First write wins.
func (r *ClaimRepository) AddClaims(ctx context.Context, claims ...*core.KnowledgeClaim) ([]*core.KnowledgeClaim, error) {
	var added []*core.KnowledgeClaim
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, claim := range claims {
			if claim.ContentHash == 0 {
				claim.ContentHash = core.ClaimHash(claim.Subject, claim.Predicate, claim.Object)
			}
			claim.Id = claim.ContentHash

			key := makeClaimKey(claim.Id)
			if _, err := tx.Get(key); err == nil {
				// Hash already present, drop the new claim
				continue
			} else if err != badger.ErrKeyNotFound {
				return err
			}

			value := storage.MarshalKnowledgeClaim(claim)
			if err := tx.Set(key, value); err != nil {
				return err
			}
			if err := r.writeIndexes(tx, claim); err != nil {
				return err
			}
			added = append(added, claim)
		}
		return tx.Commit()
	}, true)

	return added, err
}

// GetClaim retrieves a claim by ID (its content hash).
func (r *ClaimRepository) GetClaim(ctx context.Context, id core.ID) (*core.KnowledgeClaim, error) {
	var claim *core.KnowledgeClaim
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		claim, err = r.readClaim(tx, makeClaimKey(id))
		return err
	}, false)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, storage.ErrNotFound
	}
	return claim, nil
}

// HasClaim reports whether a claim with the given content hash exists.
func (r *ClaimRepository) HasClaim(ctx context.Context, hash core.ID) (bool, error) {
	exists := false
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		_, err := tx.Get(makeClaimKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	}, false)
	return exists, err
}

// QueryClaims retrieves claims matching the filter, ordered by
// confidence descending. The most selective available term index
// narrows the scan; remaining filters apply in memory.
func (r *ClaimRepository) QueryClaims(ctx context.Context, filter storage.ClaimFilter) ([]*core.KnowledgeClaim, error) {
	var results []*core.KnowledgeClaim
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		ids, scanAll, err := r.candidateIDs(tx, filter)
		if err != nil {
			return err
		}

		match := func(claim *core.KnowledgeClaim) bool {
			if filter.Subject != "" && !strings.EqualFold(claim.Subject, filter.Subject) {
				return false
			}
			if filter.Predicate != "" && !strings.EqualFold(claim.Predicate, filter.Predicate) {
				return false
			}
			if filter.Object != "" && !strings.EqualFold(claim.Object, filter.Object) {
				return false
			}
			if filter.SourceDomain != "" && !strings.EqualFold(claim.SourceDomain, filter.SourceDomain) {
				return false
			}
			if claim.Confidence < filter.MinConfidence {
				return false
			}
			return true
		}

		if scanAll {
			prefix := []byte(claimPrefix + ":")
			opts := badger.DefaultIteratorOptions
			opts.Prefix = prefix
			iter := tx.NewIterator(opts)
			defer iter.Close()

			for iter.Rewind(); iter.Valid(); iter.Next() {
				var claim *core.KnowledgeClaim
				if err := iter.Item().Value(func(val []byte) error {
					var err error
					claim, err = storage.UnmarshalKnowledgeClaim(val)
					return err
				}); err != nil {
					return err
				}
				if claim != nil && match(claim) {
					results = append(results, claim)
				}
			}
			return nil
		}

		for _, id := range ids {
			claim, err := r.readClaim(tx, makeClaimKey(id))
			if err != nil {
				return err
			}
			if claim != nil && match(claim) {
				results = append(results, claim)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.KnowledgeClaim) int {
		if a.Confidence > b.Confidence {
			return -1
		}
		if a.Confidence < b.Confidence {
			return 1
		}
		return 0
	})

	if filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}
	return results, nil
}

// DeleteClaimsByRecord removes all claims extracted from a record.
func (r *ClaimRepository) DeleteClaimsByRecord(ctx context.Context, recordKey core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		ids, err := r.scanTermIndex(tx, makePartialClaimRecordKey(recordKey))
		if err != nil {
			return err
		}

		for _, id := range ids {
			claim, err := r.readClaim(tx, makeClaimKey(id))
			if err != nil {
				return err
			}
			if claim == nil {
				continue
			}
			if err := r.deleteIndexes(tx, claim); err != nil {
				return err
			}
			if err := tx.Delete(makeClaimKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountClaims returns the number of stored claims.
func (r *ClaimRepository) CountClaims(ctx context.Context) (int, error) {
	prefix := []byte(claimPrefix + ":")

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

// candidateIDs picks the best term index for the filter. scanAll is true
// when no term filter is set and the whole claim space must be scanned.
func (r *ClaimRepository) candidateIDs(tx *badger.Txn, filter storage.ClaimFilter) ([]core.ID, bool, error) {
	var prefix []byte
	switch {
	case filter.Subject != "":
		prefix = makePartialClaimTermKey(claimSubjectPrefix, strings.ToLower(filter.Subject))
	case filter.Predicate != "":
		prefix = makePartialClaimTermKey(claimPredicatePrefix, strings.ToLower(filter.Predicate))
	case filter.Object != "":
		prefix = makePartialClaimTermKey(claimObjectPrefix, strings.ToLower(filter.Object))
	case filter.SourceDomain != "":
		prefix = makePartialClaimTermKey(claimSourcePrefix, strings.ToLower(filter.SourceDomain))
	default:
		return nil, true, nil
	}

	ids, err := r.scanTermIndex(tx, prefix)
	return ids, false, err
}

// scanTermIndex collects claim IDs under an index prefix.
func (r *ClaimRepository) scanTermIndex(tx *badger.Txn, prefix []byte) ([]core.ID, error) {
	iter := tx.NewIterator(badger.DefaultIteratorOptions)
	defer iter.Close()

	var ids []core.ID
	for iter.Seek(prefix); iter.Valid(); iter.Next() {
		key := iter.Item().Key()
		if len(key) < len(prefix) || !slices.Equal(key[:len(prefix)], prefix) {
			break
		}

		var id core.ID
		if err := iter.Item().Value(func(val []byte) error {
			var err error
			id, err = storage.UnmarshalID(val)
			return err
		}); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// writeIndexes writes all secondary index entries for a claim.
func (r *ClaimRepository) writeIndexes(tx *badger.Txn, claim *core.KnowledgeClaim) error {
	id := storage.MarshalID(claim.Id)
	keys := [][]byte{
		makeClaimTermKey(claimSubjectPrefix, strings.ToLower(claim.Subject), claim.Id),
		makeClaimTermKey(claimPredicatePrefix, strings.ToLower(claim.Predicate), claim.Id),
		makeClaimTermKey(claimObjectPrefix, strings.ToLower(claim.Object), claim.Id),
		makeClaimTermKey(claimSourcePrefix, strings.ToLower(claim.SourceDomain), claim.Id),
		makeClaimDateKey(claim.Date, claim.Id),
		makeClaimRecordKey(claim.RecordKey, claim.Id),
	}
	for _, key := range keys {
		if err := tx.Set(key, id); err != nil {
			return err
		}
	}
	return nil
}

// deleteIndexes removes all secondary index entries for a claim.
func (r *ClaimRepository) deleteIndexes(tx *badger.Txn, claim *core.KnowledgeClaim) error {
	keys := [][]byte{
		makeClaimTermKey(claimSubjectPrefix, strings.ToLower(claim.Subject), claim.Id),
		makeClaimTermKey(claimPredicatePrefix, strings.ToLower(claim.Predicate), claim.Id),
		makeClaimTermKey(claimObjectPrefix, strings.ToLower(claim.Object), claim.Id),
		makeClaimTermKey(claimSourcePrefix, strings.ToLower(claim.SourceDomain), claim.Id),
		makeClaimDateKey(claim.Date, claim.Id),
		makeClaimRecordKey(claim.RecordKey, claim.Id),
	}
	for _, key := range keys {
		if err := tx.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// readClaim reads and unmarshals a claim inside a transaction.
// Returns nil, nil when the key is absent.
func (r *ClaimRepository) readClaim(tx *badger.Txn, key []byte) (*core.KnowledgeClaim, error) {
	entry, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var claim *core.KnowledgeClaim
	err = entry.Value(func(val []byte) error {
		var err error
		claim, err = storage.UnmarshalKnowledgeClaim(val)
		return err
	})
	return claim, err
}
