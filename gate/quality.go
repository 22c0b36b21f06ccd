// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gate

import (
	"regexp"
	"strings"
	"time"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
)

// Lexical signals for the evidence and depth sub-scores. These are
// structural heuristics, not a model.
var (
	bracketRefPattern = regexp.MustCompile(`\[\d+\]`)
	authorYearPattern = regexp.MustCompile(`\([A-Z][a-z]+(?:\s+et\s+al\.?)?,?\s+\d{4}\)`)
	urlPattern        = regexp.MustCompile(`https?://\S+`)
	doiPattern        = regexp.MustCompile(`\b10\.\d{4,}/\S+|doi\.org/\S+`)
	clickbaitPattern  = regexp.MustCompile(`(?i)you won't believe|top \d+ |shocking|mind.?blowing|this one (trick|weird)|what happened next|will surprise you`)
	mathPattern       = regexp.MustCompile(`[∑∏∈≤≥≈∇αβγλθ]|O\([a-zA-Z0-9 ]*\)|\\(frac|sum|int)\b`)
	codePattern       = regexp.MustCompile("```|\\bfunc \\w+\\(|\\bdef \\w+\\(|\\bclass \\w+|\\breturn\\b")

	depthTerms = []string{
		"algorithm", "architecture", "complexity", "theorem", "proof",
		"invariant", "formal", "consistency", "throughput", "latency",
		"implementation", "tradeoff", "benchmark",
	}
	shallowTerms = []string{
		"tutorial", "beginner", "introduction", "getting started",
		"overview", "listicle", "cheat sheet",
	}
	evidenceTerms = []string{
		"dataset", "experiment", "measurement", "evaluation", "results show",
		"we measured", "github.com",
	}
	qualityTerms = []string{
		"peer-reviewed", "reproducible", "rigorous", "empirical",
	}
)

// QualityScorer computes the six-part weighted rubric score for a
// record. Scoring is read-only and safe for concurrent use; the batch
// titles argument provides context for the local novelty sub-score.
type QualityScorer struct {
	weights       policy.Weights
	quality       *policy.QualityPolicy
	knownLicenses []string
}

// NewQualityScorer builds a scorer from the loaded policy.
func NewQualityScorer(p *policy.Policy) *QualityScorer {
	return &QualityScorer{
		weights:       p.Quality.Weights,
		quality:       &p.Quality,
		knownLicenses: append(append([]string{}, p.Licenses.Allowed...), p.Licenses.Rejected...),
	}
}

// Score computes the rubric for one record. batchTitles are the titles
// of the records in the same batch and self is the record's own index
// in it; pass nil and -1 when scoring a record in isolation. Excluding
// the record by index, not by title text, keeps two same-titled records
// visible to each other's local novelty.
func (s *QualityScorer) Score(record *core.ContentRecord, batchTitles []string, self int) core.QualityScore {
	text := record.Text()
	lower := strings.ToLower(text)

	score := core.QualityScore{
		Reputation: s.reputationScore(record),
		Relevance:  s.relevanceScore(record, lower),
		Novelty:    s.localNoveltyScore(record, batchTitles, self),
		Evidence:   evidenceScore(text, lower),
		TechDepth:  techDepthScore(text, lower),
		Recency:    recencyScore(record.PublishedAt),
		Penalty:    s.penalty(record),
	}

	score.Overall = weightedOverall(s.weights, score)

	return score
}

// weightedOverall applies the rubric weights minus the penalty,
// clamped to [0,1].
func weightedOverall(w policy.Weights, score core.QualityScore) float64 {
	overall := w.Reputation*score.Reputation +
		w.Relevance*score.Relevance +
		w.Novelty*score.Novelty +
		w.Evidence*score.Evidence +
		w.TechDepth*score.TechDepth +
		w.Recency*score.Recency -
		score.Penalty
	return clamp01(overall)
}

func (s *QualityScorer) reputationScore(record *core.ContentRecord) float64 {
	score := s.quality.ReputationOf(record.SourceDomain)
	switch strings.ToLower(record.ContentType) {
	case "paper", "research", "documentation":
		score += 0.05
	case "social", "forum":
		score -= 0.05
	}
	if strings.TrimSpace(record.Author) != "" {
		score += 0.05
	}
	return clamp01(score)
}

// relevanceScore is the fraction of policy topics present in the text
// or tags, plus a small bonus for generic quality markers.
func (s *QualityScorer) relevanceScore(record *core.ContentRecord, lower string) float64 {
	if len(s.quality.Topics) == 0 {
		return 0.5
	}

	tags := strings.ToLower(strings.Join(record.Tags, " "))
	matched := 0
	for _, topic := range s.quality.Topics {
		topic = strings.ToLower(topic)
		if strings.Contains(lower, topic) || strings.Contains(tags, topic) {
			matched++
		}
	}
	score := float64(matched) / float64(len(s.quality.Topics))

	for _, term := range qualityTerms {
		if strings.Contains(lower, term) {
			score += 0.1
			break
		}
	}
	return clamp01(score)
}

// localNoveltyScore is the title-token Jaccard distance against the
// rest of the batch. It is independent of the cross-corpus duplicate
// check that runs later in the pipeline.
func (s *QualityScorer) localNoveltyScore(record *core.ContentRecord, batchTitles []string, self int) float64 {
	tokens := titleTokens(record.Title)

	maxOverlap := 0.0
	for i, other := range batchTitles {
		if i == self {
			continue
		}
		if overlap := jaccard(tokens, titleTokens(other)); overlap > maxOverlap {
			maxOverlap = overlap
		}
	}

	score := 1.0 - maxOverlap
	if !record.PublishedAt.IsZero() && time.Since(record.PublishedAt) <= 30*24*time.Hour {
		score += 0.1
	}
	return clamp01(score)
}

func evidenceScore(text, lower string) float64 {
	count := len(bracketRefPattern.FindAllString(text, -1)) +
		len(authorYearPattern.FindAllString(text, -1)) +
		len(urlPattern.FindAllString(text, -1)) +
		len(doiPattern.FindAllString(text, -1))

	score := 0.1 * float64(count)
	for _, term := range evidenceTerms {
		if strings.Contains(lower, term) {
			score += 0.2
			break
		}
	}
	return clamp01(score)
}

func techDepthScore(text, lower string) float64 {
	score := 0.5
	for _, term := range depthTerms {
		if strings.Contains(lower, term) {
			score += 0.1
		}
	}
	for _, term := range shallowTerms {
		if strings.Contains(lower, term) {
			score -= 0.1
		}
	}
	if mathPattern.MatchString(text) {
		score += 0.1
	}
	if codePattern.MatchString(text) {
		score += 0.1
	}
	return clamp01(score)
}

// recencyScore is a step function of age in days. An unknown date
// scores the neutral 0.5.
func recencyScore(published time.Time) float64 {
	if published.IsZero() {
		return 0.5
	}
	age := time.Since(published)
	switch {
	case age <= 24*time.Hour:
		return 1.0
	case age <= 7*24*time.Hour:
		return 0.9
	case age <= 30*24*time.Hour:
		return 0.8
	case age <= 90*24*time.Hour:
		return 0.6
	case age <= 365*24*time.Hour:
		return 0.4
	default:
		return 0.2
	}
}

// penalty is additive and capped at 0.5.
func (s *QualityScorer) penalty(record *core.ContentRecord) float64 {
	penalty := 0.0
	switch {
	case record.WordCount < 100:
		penalty += 0.3
	case record.WordCount < 200:
		penalty += 0.1
	}
	if clickbaitPattern.MatchString(record.Title) {
		penalty += 0.2
	}
	if strings.TrimSpace(record.Author) == "" {
		penalty += 0.1
	}
	if license := strings.TrimSpace(record.License); license == "" || findLicense(s.knownLicenses, license) == "" {
		penalty += 0.1
	}
	return min(penalty, 0.5)
}

func titleTokens(title string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(title)) {
		field = strings.Trim(field, ".,:;!?\"'()[]")
		if field != "" {
			tokens[field] = struct{}{}
		}
	}
	return tokens
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
