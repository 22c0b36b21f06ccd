// Package novelty decides whether a record is new relative to
// everything previously indexed. It combines two independent
// detectors over in-memory indexes of all seen records:
//
//   - MinHash signatures over sliding word shingles, approximating
//     Jaccard set similarity in signature-length time.
//   - Cosine similarity between dense embeddings of title and body.
//
// The maximum similarity across both detectors against every indexed
// item decides novelty. Each detector's index persists as a full
// snapshot in durable storage; a corrupt snapshot at load time falls
// back to an empty index rather than failing startup.
package novelty
