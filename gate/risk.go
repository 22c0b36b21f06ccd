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
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/poiesic/curator/core"
	"github.com/poiesic/curator/policy"
)

// Detector type weights. Injection attempts dominate the score,
// keyword density next, personal data last.
var typeWeights = map[core.DetectionType]float64{
	core.DetectionInjection: 0.5,
	core.DetectionKeyword:   0.3,
	core.DetectionPII:       0.2,
}

// Severity weights per risk level.
var severityWeights = map[core.RiskLevel]float64{
	core.RiskLow:      0.1,
	core.RiskMedium:   0.3,
	core.RiskHigh:     0.6,
	core.RiskCritical: 1.0,
}

// Fixed confidences per detector. Pattern matches are near-certain,
// keyword counts slightly less so.
const (
	injectionConfidence = 0.9
	keywordConfidence   = 0.85
	piiConfidence       = 0.8
)

type compiledPattern struct {
	re       *regexp.Regexp
	severity core.RiskLevel
}

// RiskScanner flags unsafe content with three independent detectors:
// injection-style instruction overrides, high-risk keyword counting
// and personal-data patterns. Scanning never fails open: any internal
// panic is converted to a critical, unsafe assessment.
type RiskScanner struct {
	injection []compiledPattern
	pii       []compiledPattern
	keywords  []string
	logger    *slog.Logger
}

// NewRiskScanner compiles the policy's detection rules.
func NewRiskScanner(p *policy.Policy, logger *slog.Logger) (*RiskScanner, error) {
	s := &RiskScanner{
		keywords: p.Risk.Keywords,
		logger:   logger.With("component", "risk-scanner"),
	}

	for _, rule := range p.Risk.Patterns {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, rule.Pattern, err)
		}
		severity, ok := core.ParseRiskLevel(rule.Severity)
		if !ok {
			return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalidPattern, rule.Severity)
		}
		compiled := compiledPattern{re: re, severity: severity}
		switch rule.Type {
		case "injection":
			s.injection = append(s.injection, compiled)
		case "pii":
			s.pii = append(s.pii, compiled)
		default:
			return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidPattern, rule.Type)
		}
	}

	return s, nil
}

// Scan assesses a record's full text. A detector crash yields a
// critical, unsafe result rather than dropping the record.
func (s *RiskScanner) Scan(record *core.ContentRecord) (assessment core.RiskAssessment) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("risk scan failed, treating record as unsafe",
				"key", record.Key, "panic", r)
			assessment = core.RiskAssessment{
				Score: 1.0,
				Level: core.RiskCritical,
				Safe:  false,
				Detections: []core.Detection{{
					Type:       core.DetectionInjection,
					Severity:   core.RiskCritical,
					Confidence: 1.0,
					Matched:    "scan failure",
				}},
			}
		}
	}()

	text := record.Text()
	var detections []core.Detection
	detections = append(detections, s.scanInjection(text)...)
	detections = append(detections, s.scanKeywords(text)...)
	detections = append(detections, s.scanPII(text)...)

	score := riskScore(detections)
	level := riskLevel(detections, score)

	return core.RiskAssessment{
		Score:      score,
		Level:      level,
		Detections: detections,
		Safe:       (level == core.RiskLow || level == core.RiskMedium) && score < 0.5,
	}
}

func (s *RiskScanner) scanInjection(text string) []core.Detection {
	var detections []core.Detection
	for _, p := range s.injection {
		if match := p.re.FindString(text); match != "" {
			detections = append(detections, core.Detection{
				Type:       core.DetectionInjection,
				Severity:   p.severity,
				Confidence: injectionConfidence,
				Matched:    match,
			})
		}
	}
	return detections
}

// scanKeywords counts occurrences per keyword; severity escalates with
// the repeat count.
func (s *RiskScanner) scanKeywords(text string) []core.Detection {
	lower := strings.ToLower(text)
	var detections []core.Detection
	for _, keyword := range s.keywords {
		count := strings.Count(lower, strings.ToLower(keyword))
		if count == 0 {
			continue
		}
		severity := core.RiskMedium
		switch {
		case count >= 4:
			severity = core.RiskCritical
		case count >= 2:
			severity = core.RiskHigh
		}
		detections = append(detections, core.Detection{
			Type:       core.DetectionKeyword,
			Severity:   severity,
			Confidence: keywordConfidence,
			Matched:    fmt.Sprintf("%s (x%d)", keyword, count),
		})
	}
	return detections
}

func (s *RiskScanner) scanPII(text string) []core.Detection {
	var detections []core.Detection
	for _, p := range s.pii {
		if match := p.re.FindString(text); match != "" {
			detections = append(detections, core.Detection{
				Type:       core.DetectionPII,
				Severity:   p.severity,
				Confidence: piiConfidence,
				Matched:    maskMatch(match),
			})
		}
	}
	return detections
}

// riskScore is the weighted average of per-type scores over the types
// actually present, clamped to [0,1]. The per-type score averages
// severity weight times confidence across that type's detections.
func riskScore(detections []core.Detection) float64 {
	if len(detections) == 0 {
		return 0
	}

	sums := make(map[core.DetectionType]float64)
	counts := make(map[core.DetectionType]int)
	for _, d := range detections {
		sums[d.Type] += severityWeights[d.Severity] * d.Confidence
		counts[d.Type]++
	}

	var weighted, totalWeight float64
	for detType, sum := range sums {
		weighted += typeWeights[detType] * (sum / float64(counts[detType]))
		totalWeight += typeWeights[detType]
	}

	score := weighted / totalWeight
	return min(max(score, 0), 1)
}

func riskLevel(detections []core.Detection, score float64) core.RiskLevel {
	var highs, mediums int
	for _, d := range detections {
		switch d.Severity {
		case core.RiskCritical:
			return core.RiskCritical
		case core.RiskHigh:
			highs++
		case core.RiskMedium:
			mediums++
		}
	}
	switch {
	case highs >= 3 || score >= 0.8:
		return core.RiskHigh
	case mediums >= 2 || score >= 0.5:
		return core.RiskMedium
	default:
		return core.RiskLow
	}
}

// maskMatch redacts all but the first and last rune of a matched
// string so reports never carry raw personal data.
func maskMatch(match string) string {
	runes := []rune(match)
	if len(runes) <= 2 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
}
