package policy

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"regexp"
	"strings"

	"github.com/poiesic/curator/core"
	"gopkg.in/yaml.v3"
)

// Policy is the declarative curation policy document. It is loaded once
// at startup; every gate treats it as read-only.
type Policy struct {
	Licenses LicensePolicy  `yaml:"licenses"`
	Risk     RiskPolicy     `yaml:"risk"`
	Quality  QualityPolicy  `yaml:"quality"`
	Novelty  NoveltyPolicy  `yaml:"novelty"`
	Approval ApprovalPolicy `yaml:"approval"`
	Indexing IndexingPolicy `yaml:"indexing"`
}

// LicensePolicy declares which license strings are admissible and which
// domains are trusted when a record carries no license at all.
type LicensePolicy struct {
	// Allowed licenses admit a record outright.
	Allowed []string `yaml:"allowed"`
	// Rejected licenses reject a record outright.
	Rejected []string `yaml:"rejected"`
	// DomainExceptions admit unknown-license records from known
	// open-access domains, at reduced confidence.
	DomainExceptions []DomainException `yaml:"domainExceptions"`
}

// DomainException marks a source domain whose content is admissible
// even without a declared license.
type DomainException struct {
	Domain string `yaml:"domain"`
	Reason string `yaml:"reason"`
}

// RiskPattern is one data-driven detection rule. Patterns live in the
// policy document so rule changes do not require a redeployment.
type RiskPattern struct {
	Type     string `yaml:"type"`     // "injection" or "pii"
	Pattern  string `yaml:"pattern"`  // Go regexp
	Severity string `yaml:"severity"` // low, medium, high, critical
}

// RiskPolicy declares the detection rules for the risk scanner.
type RiskPolicy struct {
	Patterns []RiskPattern `yaml:"patterns"`
	// Keywords are high-risk terms counted per record; severity
	// escalates with the repeat count.
	Keywords []string `yaml:"keywords"`
}

// Weights are the fixed quality rubric weights. They must sum to 1.0.
type Weights struct {
	Reputation float64 `yaml:"reputation"`
	Relevance  float64 `yaml:"relevance"`
	Novelty    float64 `yaml:"novelty"`
	Evidence   float64 `yaml:"evidence"`
	TechDepth  float64 `yaml:"techDepth"`
	Recency    float64 `yaml:"recency"`
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Reputation + w.Relevance + w.Novelty + w.Evidence + w.TechDepth + w.Recency
}

// QualityPolicy declares the rubric weights, the domain reputation
// table and the topic keyword list used by the quality scorer.
type QualityPolicy struct {
	Weights    Weights            `yaml:"weights"`
	Reputation map[string]float64 `yaml:"reputation"` // domain -> [0,1]
	Topics     []string           `yaml:"topics"`
}

// ReputationOf looks up a domain's reputation, defaulting to 0.5 for
// unknown domains.
func (q *QualityPolicy) ReputationOf(domain string) float64 {
	if score, ok := q.Reputation[strings.ToLower(domain)]; ok {
		return score
	}
	return 0.5
}

// NoveltyPolicy declares the cross-corpus duplicate threshold.
type NoveltyPolicy struct {
	// Threshold is the similarity at or above which a record is
	// considered a duplicate. Default 0.8.
	Threshold float64 `yaml:"threshold"`
}

// ApprovalPolicy declares the queue thresholds and the daily quota.
type ApprovalPolicy struct {
	// DailyQuota bounds how many top recommendations are surfaced.
	DailyQuota int `yaml:"dailyQuota"`
	// ApproveQuality is the quality bar for an APPROVE verdict.
	ApproveQuality float64 `yaml:"approveQuality"`
	// ReviewQuality is the quality bar for a REVIEW verdict.
	ReviewQuality float64 `yaml:"reviewQuality"`
	// NoveltyBar is the minimum novelty score for an APPROVE verdict.
	NoveltyBar float64 `yaml:"noveltyBar"`
}

// IndexingPolicy declares knowledge-indexer parameters.
type IndexingPolicy struct {
	// ChunkWords bounds chunk size in words. Default 512.
	ChunkWords int `yaml:"chunkWords"`
	// MinClaimConfidence drops extracted claims below the bar.
	MinClaimConfidence float64 `yaml:"minClaimConfidence"`
}

// Default returns the built-in policy used when no document is
// provided or the provided one is unusable.
func Default() *Policy {
	return &Policy{
		Licenses: LicensePolicy{
			Allowed: []string{
				"CC0", "CC0-1.0", "CC-BY", "CC-BY-4.0", "CC-BY-SA", "CC-BY-SA-4.0",
				"MIT", "Apache-2.0", "BSD-3-Clause", "public domain", "open-access",
			},
			Rejected: []string{
				"All Rights Reserved", "proprietary", "CC-BY-NC", "CC-BY-NC-4.0",
				"CC-BY-ND", "CC-BY-NC-ND",
			},
			DomainExceptions: []DomainException{
				{Domain: "arxiv.org", Reason: "open-access preprint server"},
				{Domain: "en.wikipedia.org", Reason: "CC-BY-SA by site policy"},
				{Domain: "github.com", Reason: "public repositories carry their own licenses"},
			},
		},
		Risk: RiskPolicy{
			Patterns: []RiskPattern{
				{Type: "injection", Pattern: `(?i)ignore\s+(all\s+)?(previous|prior|above)\s+(instructions|prompts)`, Severity: "high"},
				{Type: "injection", Pattern: `(?i)disregard\s+(all\s+)?(previous|prior|your)\s+(instructions|rules|guidelines)`, Severity: "high"},
				{Type: "injection", Pattern: `(?i)you\s+are\s+now\s+(a|an|in)\s`, Severity: "medium"},
				{Type: "injection", Pattern: `(?i)system\s+prompt\s*:`, Severity: "high"},
				{Type: "injection", Pattern: `(?i)do\s+anything\s+now`, Severity: "medium"},
				{Type: "pii", Pattern: `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`, Severity: "medium"},
				{Type: "pii", Pattern: `\+?\d{1,3}[\s\-.]?\(?\d{2,4}\)?[\s\-.]?\d{3,4}[\s\-.]?\d{3,4}`, Severity: "medium"},
				{Type: "pii", Pattern: `\b(?:\d[ \-]*?){13,16}\b`, Severity: "high"},
				{Type: "pii", Pattern: `(?i)\b\d{1,5}\s+[A-Za-z]+\s+(street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr)\b`, Severity: "medium"},
			},
			Keywords: []string{
				"exploit", "malware", "ransomware", "keylogger", "botnet",
				"credential stuffing", "zero-day", "backdoor", "rootkit",
			},
		},
		Quality: QualityPolicy{
			Weights: Weights{
				Reputation: 0.30,
				Relevance:  0.25,
				Novelty:    0.15,
				Evidence:   0.15,
				TechDepth:  0.10,
				Recency:    0.05,
			},
			Reputation: map[string]float64{
				"arxiv.org":           0.95,
				"acm.org":             0.95,
				"ieee.org":            0.9,
				"nature.com":          0.9,
				"en.wikipedia.org":    0.8,
				"github.com":          0.7,
				"lwn.net":             0.8,
				"research.google":     0.85,
				"openai.com":          0.7,
				"news.ycombinator.com": 0.5,
				"medium.com":          0.4,
				"random.blog":         0.2,
			},
			Topics: []string{
				"machine learning", "neural network", "transformer", "embedding",
				"distributed systems", "consensus", "database", "compiler",
				"operating system", "cryptography", "algorithm", "optimization",
				"reinforcement learning", "language model", "information retrieval",
				"vector search",
			},
		},
		Novelty: NoveltyPolicy{
			Threshold: 0.8,
		},
		Approval: ApprovalPolicy{
			DailyQuota:     10,
			ApproveQuality: 0.7,
			ReviewQuality:  0.5,
			NoveltyBar:     0.3,
		},
		Indexing: IndexingPolicy{
			ChunkWords:         512,
			MinClaimConfidence: 0.4,
		},
	}
}

// Load reads a policy document from path, falling back to the default
// policy when the file is absent, unreadable or invalid. Loading never
// fails: the pipeline always starts with a usable policy.
func Load(path string) *Policy {
	if path == "" {
		return Default()
	}
	p, err := LoadFile(path)
	if err != nil {
		slog.Warn("falling back to default policy", "path", path, "err", err)
		return Default()
	}
	return p
}

// LoadFile reads and validates a policy document from path.
func LoadFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := &Policy{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing policy: %w", err)
	}

	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// normalize fills absent sections from the default policy so partial
// documents only override what they declare.
func (p *Policy) normalize() {
	def := Default()

	if len(p.Licenses.Allowed) == 0 && len(p.Licenses.Rejected) == 0 {
		p.Licenses = def.Licenses
	}
	if len(p.Risk.Patterns) == 0 {
		p.Risk.Patterns = def.Risk.Patterns
	}
	if len(p.Risk.Keywords) == 0 {
		p.Risk.Keywords = def.Risk.Keywords
	}
	if p.Quality.Weights.Sum() == 0 {
		p.Quality.Weights = def.Quality.Weights
	}
	if len(p.Quality.Reputation) == 0 {
		p.Quality.Reputation = def.Quality.Reputation
	}
	if len(p.Quality.Topics) == 0 {
		p.Quality.Topics = def.Quality.Topics
	}
	if p.Novelty.Threshold == 0 {
		p.Novelty.Threshold = def.Novelty.Threshold
	}
	if p.Approval.DailyQuota == 0 {
		p.Approval.DailyQuota = def.Approval.DailyQuota
	}
	if p.Approval.ApproveQuality == 0 {
		p.Approval.ApproveQuality = def.Approval.ApproveQuality
	}
	if p.Approval.ReviewQuality == 0 {
		p.Approval.ReviewQuality = def.Approval.ReviewQuality
	}
	if p.Approval.NoveltyBar == 0 {
		p.Approval.NoveltyBar = def.Approval.NoveltyBar
	}
	if p.Indexing.ChunkWords == 0 {
		p.Indexing.ChunkWords = def.Indexing.ChunkWords
	}
	if p.Indexing.MinClaimConfidence == 0 {
		p.Indexing.MinClaimConfidence = def.Indexing.MinClaimConfidence
	}

	// Reputation lookups are lowercase
	lowered := make(map[string]float64, len(p.Quality.Reputation))
	for domain, score := range p.Quality.Reputation {
		lowered[strings.ToLower(domain)] = score
	}
	p.Quality.Reputation = lowered
}

// Validate checks that the policy is internally consistent: weights sum
// to 1.0, all patterns compile and severities parse.
func (p *Policy) Validate() error {
	if math.Abs(p.Quality.Weights.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("quality weights must sum to 1.0, got %.4f", p.Quality.Weights.Sum())
	}

	for _, pattern := range p.Risk.Patterns {
		if pattern.Type != "injection" && pattern.Type != "pii" {
			return fmt.Errorf("unknown risk pattern type %q", pattern.Type)
		}
		if _, err := regexp.Compile(pattern.Pattern); err != nil {
			return fmt.Errorf("invalid risk pattern %q: %w", pattern.Pattern, err)
		}
		if _, ok := core.ParseRiskLevel(pattern.Severity); !ok {
			return fmt.Errorf("invalid risk severity %q", pattern.Severity)
		}
	}

	for domain, score := range p.Quality.Reputation {
		if score < 0 || score > 1 {
			return fmt.Errorf("reputation for %q outside [0,1]: %.2f", domain, score)
		}
	}

	if p.Novelty.Threshold <= 0 || p.Novelty.Threshold > 1 {
		return fmt.Errorf("novelty threshold outside (0,1]: %.2f", p.Novelty.Threshold)
	}
	if p.Approval.DailyQuota < 1 {
		return fmt.Errorf("daily quota must be positive, got %d", p.Approval.DailyQuota)
	}
	if p.Indexing.ChunkWords < 1 {
		return fmt.Errorf("chunk size must be positive, got %d", p.Indexing.ChunkWords)
	}

	return nil
}
