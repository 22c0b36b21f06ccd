package badger

import (
	"encoding/binary"
	"time"

	"github.com/poiesic/curator/core"
)

// Key prefixes for different data types
const (
	approvalPrefix       = "appitm"
	approvalStatusPrefix = "appsta"
	approvalDatePrefix   = "appdat"
	chunkPrefix          = "vchunk"
	chunkRecordPrefix    = "vchrec"
	chunkIDSeq           = "vchunkidseq"
	claimPrefix          = "klclam"
	claimSubjectPrefix   = "klcsub"
	claimPredicatePrefix = "klcprd"
	claimObjectPrefix    = "klcobj"
	claimSourcePrefix    = "klcsrc"
	claimDatePrefix      = "klcdat"
	claimRecordPrefix    = "klcrec"
	sourcePrefix         = "srcsta"
	snapshotPrefix       = "novsnp"
)

// appendUint64 appends a BigEndian uint64 so lexicographic sort
// matches numeric order.
func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

// makeApprovalKey generates a key for an approval item by its record key.
func makeApprovalKey(key core.ID) []byte {
	return appendUint64([]byte(approvalPrefix+":"), uint64(key))
}

// makeApprovalStatusKey generates a composite key for the status index.
// Format: prefix:status:createdAt:key
func makeApprovalStatusKey(status core.ApprovalStatus, createdAt time.Time, key core.ID) []byte {
	buf := append([]byte(approvalStatusPrefix+":"), byte(status))
	buf = appendUint64(buf, uint64(createdAt.UnixMicro()))
	return appendUint64(buf, uint64(key))
}

// makePartialApprovalStatusKey generates a partial key for scanning one status.
func makePartialApprovalStatusKey(status core.ApprovalStatus) []byte {
	return append([]byte(approvalStatusPrefix+":"), byte(status))
}

// makeApprovalDateKey generates a composite key for the creation-date index.
// Format: prefix:createdAt:key
func makeApprovalDateKey(createdAt time.Time, key core.ID) []byte {
	buf := appendUint64([]byte(approvalDatePrefix+":"), uint64(createdAt.UnixMicro()))
	return appendUint64(buf, uint64(key))
}

// makeChunkKey generates a key for a vector chunk by ID.
// BigEndian so ListChunks iterates in ID order.
func makeChunkKey(id core.ID) []byte {
	return appendUint64([]byte(chunkPrefix+":"), uint64(id))
}

// makeChunkRecordKey generates a composite key for the record index.
// Format: prefix:recordKey:chunkID
func makeChunkRecordKey(recordKey, chunkID core.ID) []byte {
	buf := appendUint64([]byte(chunkRecordPrefix+":"), uint64(recordKey))
	return appendUint64(buf, uint64(chunkID))
}

// makePartialChunkRecordKey generates a partial key for per-record queries.
func makePartialChunkRecordKey(recordKey core.ID) []byte {
	return appendUint64([]byte(chunkRecordPrefix+":"), uint64(recordKey))
}

// makeClaimKey generates a key for a claim by ID (its content hash).
func makeClaimKey(id core.ID) []byte {
	return appendUint64([]byte(claimPrefix+":"), uint64(id))
}

// makeClaimTermKey generates a composite key for the subject, predicate,
// object and source indexes. The term is stored lowercase, NUL-terminated
// so one term is never a prefix of another.
// Format: prefix:term\x00:claimID
func makeClaimTermKey(prefix, term string, id core.ID) []byte {
	buf := append([]byte(prefix+":"), []byte(term)...)
	buf = append(buf, 0)
	return appendUint64(buf, uint64(id))
}

// makePartialClaimTermKey generates a partial key for term queries.
func makePartialClaimTermKey(prefix, term string) []byte {
	buf := append([]byte(prefix+":"), []byte(term)...)
	return append(buf, 0)
}

// makeClaimDateKey generates a composite key for the claim date index.
// Format: prefix:date:claimID
func makeClaimDateKey(date time.Time, id core.ID) []byte {
	buf := appendUint64([]byte(claimDatePrefix+":"), uint64(date.UnixMicro()))
	return appendUint64(buf, uint64(id))
}

// makeClaimRecordKey generates a composite key for the claim record index.
// Format: prefix:recordKey:claimID
func makeClaimRecordKey(recordKey, id core.ID) []byte {
	buf := appendUint64([]byte(claimRecordPrefix+":"), uint64(recordKey))
	return appendUint64(buf, uint64(id))
}

// makePartialClaimRecordKey generates a partial key for per-record queries.
func makePartialClaimRecordKey(recordKey core.ID) []byte {
	return appendUint64([]byte(claimRecordPrefix+":"), uint64(recordKey))
}

// makeSourceKey generates a key for a source aggregate by domain.
func makeSourceKey(domain string) []byte {
	return append([]byte(sourcePrefix+":"), []byte(domain)...)
}

// makeSnapshotKey generates a key for a novelty index snapshot.
func makeSnapshotKey(detector string) []byte {
	return append([]byte(snapshotPrefix+":"), []byte(detector)...)
}
