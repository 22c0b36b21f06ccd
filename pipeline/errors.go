package pipeline

import "errors"

var (
	// ErrQueueRequired indicates no approval queue was provided.
	ErrQueueRequired = errors.New("approval queue is required")
	// ErrDeduplicatorRequired indicates no deduplicator was provided.
	ErrDeduplicatorRequired = errors.New("novelty deduplicator is required")
	// ErrPolicyRequired indicates no policy was provided.
	ErrPolicyRequired = errors.New("policy is required")
)
