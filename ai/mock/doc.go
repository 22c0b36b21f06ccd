// Package mock provides test doubles for the ai interfaces.
// The mock embedder is deterministic: the same text always yields the
// same unit vector, so similarity-dependent tests are reproducible.
package mock
