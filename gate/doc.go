// Package gate implements the read-only evaluation stages of the
// curation pipeline: the license gate, the risk scanner and the
// quality scorer. All three are pure functions of a record and the
// loaded policy, safe for concurrent use across a worker pool.
package gate
