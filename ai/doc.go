// Package ai defines the embedding abstraction used by the novelty
// deduplicator and the knowledge indexer, along with its
// configuration.
//
// Two implementations ship with the curator: an OpenAI-compatible
// client (subpackage openai) for real embedding services, and a
// deterministic structural embedder (Fallback) used when no service is
// reachable. Bounded wraps any embedder with a timeout and the
// structural fallback so the pipeline never stalls on a slow or dead
// embedding service.
//
// Subpackage mock provides a test double with injectable behavior.
package ai
