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

package knowledge

import (
	"regexp"
	"strings"
	"time"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
)

// claimPattern matches a subject phrase starting with a capitalized
// word, a recognized copula, modal or evidential predicate, and an
// object running to the end of the sentence.
var claimPattern = regexp.MustCompile(
	`^([A-Z][\w'-]*(?:[ \t]+[\w'-]+)*?)[ \t]+` +
		`(is|are|was|were|has|have|requires|require|enables|enable|` +
		`shows|show|demonstrates|demonstrate|proves|prove|suggests|suggest|` +
		`indicates|indicate|provides|provide|supports|support|` +
		`reduces|reduce|improves|improve|causes|cause|` +
		`can|cannot|must|should|will)[ \t]+(.+)$`)

var sentenceSplit = regexp.MustCompile(`[.!?]+(?:\s+|$)|\n+`)

// Pronoun subjects carry no referent outside their sentence and never
// make standalone claims.
var pronounSubjects = map[string]bool{
	"It": true, "He": true, "She": true, "We": true, "I": true,
	"They": true, "This": true, "That": true, "These": true,
	"Those": true, "There": true, "You": true,
}

// Evidential predicates carry a confidence bonus: a sentence claiming
// demonstrated evidence is a stronger fact candidate than a bare
// copula.
var evidentialPredicates = map[string]bool{
	"shows": true, "show": true,
	"demonstrates": true, "demonstrate": true,
	"proves": true, "prove": true,
	"suggests": true, "suggest": true,
	"indicates": true, "indicate": true,
}

var properNounPattern = regexp.MustCompile(`\b[A-Z][a-z]+`)

const (
	baseConfidence  = 0.5
	lengthBonus     = 0.15
	properNounBonus = 0.1
	evidentialBonus = 0.1
	maxSubjectWords = 5
	sweetRangeMin   = 8
	sweetRangeMax   = 30
)

// Extractor derives structured claims from record text via structural
// pattern matching. No model is involved; every signal is lexical.
type Extractor struct {
	quality       *policy.QualityPolicy
	minConfidence float64
}

// NewExtractor builds an extractor from the loaded policy.
func NewExtractor(p *policy.Policy) *Extractor {
	return &Extractor{
		quality:       &p.Quality,
		minConfidence: p.Indexing.MinClaimConfidence,
	}
}

// Extract returns the claim candidates found in a record's text that
// meet the confidence bar. Claims carry the subject-predicate-object
// content hash used for source-independent deduplication downstream.
func (e *Extractor) Extract(record *core.ContentRecord) []*core.KnowledgeClaim {
	date := record.PublishedAt
	if date.IsZero() {
		date = time.Now().UTC().Truncate(time.Microsecond)
	}
	reputationBonus := e.reputationBonus(record.SourceDomain)

	var claims []*core.KnowledgeClaim
	for _, sentence := range sentenceSplit.Split(record.Text(), -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		match := claimPattern.FindStringSubmatch(sentence)
		if match == nil {
			continue
		}
		subject, predicate, object := strings.TrimSpace(match[1]), match[2], strings.TrimSpace(match[3])
		if len(strings.Fields(subject)) > maxSubjectWords || object == "" {
			continue
		}
		if pronounSubjects[subject] {
			continue
		}

		confidence := claimConfidence(sentence, predicate, object) + reputationBonus
		confidence = min(confidence, 1.0)
		if confidence < e.minConfidence {
			continue
		}

		claims = append(claims, &core.KnowledgeClaim{
			Subject:      subject,
			Predicate:    predicate,
			Object:       object,
			RecordKey:    record.Key,
			SourceDomain: record.SourceDomain,
			Date:         date,
			Confidence:   confidence,
			ContentHash:  core.ClaimHash(subject, predicate, object),
		})
	}
	return claims
}

// claimConfidence scores structural signals: sentence length in the
// sweet range, a proper noun in the object, an evidential predicate.
func claimConfidence(sentence, predicate, object string) float64 {
	confidence := baseConfidence

	words := len(strings.Fields(sentence))
	if words >= sweetRangeMin && words <= sweetRangeMax {
		confidence += lengthBonus
	}
	if properNounPattern.MatchString(object) {
		confidence += properNounBonus
	}
	if evidentialPredicates[predicate] {
		confidence += evidentialBonus
	}
	return confidence
}

func (e *Extractor) reputationBonus(domain string) float64 {
	reputation := e.quality.ReputationOf(domain)
	switch {
	case reputation >= 0.8:
		return 0.1
	case reputation >= 0.5:
		return 0.05
	default:
		return 0
	}
}
