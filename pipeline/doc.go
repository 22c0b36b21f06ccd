// Package pipeline orchestrates the curation gates over batches of
// content records. Each record flows through license, risk and quality
// evaluation concurrently on a worker pool; the novelty check and
// queue insertion serialize on their own locks. A record's failure
// never aborts the rest of the batch, and the batch report always
// carries partial results plus a per-record error list.
package pipeline
