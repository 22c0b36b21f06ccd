package reindex

import "errors"

var (
	// ErrEmbeddingMismatch indicates the embedder returned a vector
	// count different from the batch size.
	ErrEmbeddingMismatch = errors.New("embedding count mismatch")
)
