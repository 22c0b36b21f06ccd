// Package reindex re-embeds every stored vector chunk with the
// current embedder. Operators run it after switching embedding models
// so similarity search compares vectors from a single model. Chunks
// stream in ID-ordered batches; embedding calls retry with exponential
// backoff and progress reports to a writer.
package reindex
