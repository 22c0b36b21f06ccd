package novelty

import "errors"

var (
	// ErrAlreadyIndexed indicates a record key is already present in
	// the novelty indexes.
	ErrAlreadyIndexed = errors.New("record already indexed")
)
