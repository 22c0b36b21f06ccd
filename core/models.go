package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated by content-based hashing so identical content
// always produces the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RecordKey derives the stable external key of a content record from its
// URL and title. The same URL+title pair always maps to the same key,
// which is what prevents a record from entering the approval queue twice.
func RecordKey(url, title string) ID {
	return IDFromContent(strings.TrimSpace(url) + "\n" + strings.TrimSpace(title))
}

// ContentRecord is the normalized unit of content flowing through the
// curation pipeline. Records are immutable once created; enrichment
// results (license, risk, quality, novelty) live alongside the record
// in an ApprovalItem, never inside it.
type ContentRecord struct {
	Key          ID // derived from (URL, Title), see RecordKey
	Title        string
	URL          string
	Body         string
	Summary      string
	Author       string    // empty when unknown
	PublishedAt  time.Time // zero when unknown
	SourceName   string
	SourceDomain string
	ContentType  string // e.g. "paper", "blog", "news", "docs"
	Tags         []string
	License      string // declared license string, empty when unknown
	WordCount    int
}

// Text returns the searchable text of the record: title, body and summary.
func (r *ContentRecord) Text() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{r.Title, r.Body, r.Summary} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// LicenseDecision is the outcome of the license gate for a record.
type LicenseDecision struct {
	Allowed    bool
	License    string // the license the decision was based on
	Reason     string
	Confidence float64
	Violations []string
}

// DetectionType identifies the detector that produced a risk detection.
type DetectionType int

const (
	// DetectionInjection flags instruction-override phrases.
	DetectionInjection DetectionType = iota + 1
	// DetectionKeyword flags high-risk keyword occurrences.
	DetectionKeyword
	// DetectionPII flags personal-data patterns.
	DetectionPII
)

// String returns the detection type name.
func (t DetectionType) String() string {
	switch t {
	case DetectionInjection:
		return "injection"
	case DetectionKeyword:
		return "keyword"
	case DetectionPII:
		return "pii"
	default:
		return "unknown"
	}
}

// RiskLevel grades the severity of a risk assessment or detection.
type RiskLevel int

const (
	RiskLow RiskLevel = iota + 1
	RiskMedium
	RiskHigh
	RiskCritical
)

// String returns the risk level name.
func (l RiskLevel) String() string {
	switch l {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseRiskLevel parses a risk level name as used in policy documents.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, true
	case "medium":
		return RiskMedium, true
	case "high":
		return RiskHigh, true
	case "critical":
		return RiskCritical, true
	default:
		return 0, false
	}
}

// Detection is a single finding from the risk scanner. Matched text is
// masked before it is recorded, so personal data never round-trips
// through reports or storage.
type Detection struct {
	Type       DetectionType
	Severity   RiskLevel
	Confidence float64
	Matched    string // masked excerpt of the matching text
}

// RiskAssessment is the aggregate result of scanning a record's text.
type RiskAssessment struct {
	Score      float64 // weighted detection score in [0,1]
	Level      RiskLevel
	Detections []Detection
	Safe       bool
}

// QualityScore holds the weighted rubric score for a record.
// Overall = 0.30*Reputation + 0.25*Relevance + 0.15*Novelty +
// 0.15*Evidence + 0.10*TechDepth + 0.05*Recency - Penalty,
// floored at 0 and capped at 1.
type QualityScore struct {
	Overall    float64
	Reputation float64
	Relevance  float64
	Novelty    float64 // within-batch title novelty, not the cross-corpus check
	Evidence   float64
	TechDepth  float64
	Recency    float64
	Penalty    float64
}

// SimilarItem references an already-indexed record with its similarity
// to the record under test.
type SimilarItem struct {
	Key        ID
	Similarity float64
}

// NoveltyResult is the outcome of the cross-corpus novelty check.
type NoveltyResult struct {
	IsNovel       bool
	Score         float64 // 1 - MaxSimilarity
	MaxSimilarity float64
	SimilarItems  []SimilarItem // top matches, highest similarity first
	Confidence    float64
}

// ApprovalStatus is the workflow state of an approval item.
type ApprovalStatus int

const (
	StatusPending ApprovalStatus = iota + 1
	StatusApproved
	StatusRejected
)

// String returns the status name.
func (s ApprovalStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is a terminal workflow state.
// Items never transition out of a terminal state.
func (s ApprovalStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Verdict is the machine-readable recommendation accompanying the
// human-readable recommendation text of an approval item.
type Verdict int

const (
	VerdictApprove Verdict = iota + 1
	VerdictReview
	VerdictReject
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictApprove:
		return "APPROVE"
	case VerdictReview:
		return "REVIEW"
	case VerdictReject:
		return "REJECT"
	default:
		return "UNKNOWN"
	}
}

// ApprovalItem is a record awaiting or having received an ingestion
// decision, together with every gate result that informed it.
type ApprovalItem struct {
	Key             ID // same as Record.Key
	Record          ContentRecord
	Quality         QualityScore
	License         LicenseDecision
	Risk            RiskAssessment
	Novelty         NoveltyResult
	Verdict         Verdict
	Recommendation  string
	Status          ApprovalStatus
	ApprovedBy      string // operator id, set on approve or reject
	DecidedAt       time.Time
	RejectionReason string
	CreatedAt       time.Time
}

// VectorChunk is an embedded slice of an approved record's text.
// Chunks are created only by the knowledge indexer and are never
// mutated, only deleted.
type VectorChunk struct {
	Id           ID
	RecordKey    ID
	ChunkIndex   int
	TotalChunks  int
	Title        string
	URL          string
	SourceDomain string
	Text         string
	Vector       []float32
	InsertedAt   time.Time
}

// KnowledgeClaim is a structured subject-predicate-object fact extracted
// from an approved record. ContentHash derives from the claim triple
// alone, ignoring the source, and is the deduplication key: a claim
// whose hash already exists is dropped, not overwritten.
type KnowledgeClaim struct {
	Id           ID // equal to ContentHash
	Subject      string
	Predicate    string
	Object       string
	RecordKey    ID
	SourceDomain string
	Date         time.Time
	Confidence   float64
	ContentHash  ID
}

// ClaimHash computes the source-independent deduplication hash of a
// claim triple.
func ClaimHash(subject, predicate, object string) ID {
	return IDFromContent(strings.ToLower(strings.TrimSpace(subject)) + "|" +
		strings.ToLower(strings.TrimSpace(predicate)) + "|" +
		strings.ToLower(strings.TrimSpace(object)))
}

// SourceStat is the per-domain aggregate maintained as records are
// approved and indexed.
type SourceStat struct {
	Domain       string
	Records      int
	TotalQuality float64
	FirstSeen    time.Time
	LastSeen     time.Time
}

// AvgQuality returns the average quality of indexed records from the source.
func (s *SourceStat) AvgQuality() float64 {
	if s.Records == 0 {
		return 0
	}
	return s.TotalQuality / float64(s.Records)
}

// SearchResult is a vector search hit with its similarity score.
type SearchResult struct {
	Chunk *VectorChunk
	Score float32
}

// MinHashSnapshot is the persisted state of the MinHash novelty index.
type MinHashSnapshot struct {
	Keys       []ID
	Signatures [][]uint64
}

// EmbeddingSnapshot is the persisted state of the embedding novelty index.
type EmbeddingSnapshot struct {
	Keys    []ID
	Vectors [][]float32
}
