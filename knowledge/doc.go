// Package knowledge turns approved records into searchable knowledge.
// The indexer splits record text into word-bounded chunks, embeds and
// stores them for similarity search, extracts structured
// subject-predicate-object claims via structural pattern matching, and
// folds per-source statistics. Both sub-stores are populated only on
// approval.
package knowledge
