// Package approval implements the durable approval queue. Items enter
// pending after a record clears all gates, carrying a synthesized
// verdict and recommendation; operators move them to approved or
// rejected. Terminal states are write-once: approving or rejecting a
// non-pending item is an idempotent no-op.
package approval
