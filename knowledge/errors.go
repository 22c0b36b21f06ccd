package knowledge

import "errors"

var (
	// ErrEmptyText indicates a record carries no indexable text.
	ErrEmptyText = errors.New("no text to index")
)
