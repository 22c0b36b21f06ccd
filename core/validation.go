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


package core

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// ValidateRecord validates a ContentRecord according to domain rules.
//
// Validation rules:
//   - Title, URL, Body and SourceDomain must not be empty
//   - PublishedAt, when set, must not be in the future
//
// Not validated (optional fields):
//   - Author, License, Summary, Tags (may be absent)
//   - Key (0 means not yet derived; NormalizeRecord fills it in)
func ValidateRecord(record *ContentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if strings.TrimSpace(record.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyTitle)
	}

	if strings.TrimSpace(record.URL) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyURL)
	}

	if strings.TrimSpace(record.Body) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyBody)
	}

	if strings.TrimSpace(record.SourceDomain) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptySourceDomain)
	}

	if !IsValidTimestamp(record.PublishedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrInvalidTimestamp)
	}

	return nil
}

// NormalizeRecord canonicalizes a record once at the pipeline boundary.
// Downstream stages may assume the key is derived, the domain is
// lowercase and the word count is populated.
func NormalizeRecord(record *ContentRecord) {
	record.Title = strings.TrimSpace(record.Title)
	record.URL = strings.TrimSpace(record.URL)
	record.SourceDomain = strings.ToLower(strings.TrimSpace(record.SourceDomain))
	record.License = strings.TrimSpace(record.License)
	if record.Key == 0 {
		record.Key = RecordKey(record.URL, record.Title)
	}
	if record.WordCount == 0 {
		record.WordCount = CountWords(record.Body)
	}
}

// ValidateClaim validates a KnowledgeClaim according to domain rules.
//
// Validation rules:
//   - Subject, Predicate and Object must not be empty
//   - Confidence must be within [0,1]
func ValidateClaim(claim *KnowledgeClaim) error {
	if claim == nil {
		return fmt.Errorf("%w: claim is nil", ErrInvalidClaim)
	}

	if strings.TrimSpace(claim.Subject) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClaim, ErrEmptySubject)
	}

	if strings.TrimSpace(claim.Predicate) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClaim, ErrEmptyPredicate)
	}

	if strings.TrimSpace(claim.Object) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidClaim, ErrEmptyObject)
	}

	if claim.Confidence < 0 || claim.Confidence > 1 {
		return fmt.Errorf("%w: confidence %.2f outside [0,1]", ErrInvalidClaim, claim.Confidence)
	}

	return nil
}

// IsValidTimestamp reports whether a timestamp is usable: either unset
// or not in the future (with small tolerance for clock skew).
func IsValidTimestamp(t time.Time) bool {
	if t.IsZero() {
		return true
	}
	return !t.After(time.Now().Add(5 * time.Minute))
}

// CountWords counts whitespace-separated words in text.
func CountWords(text string) int {
	count := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			count++
		}
	}
	return count
}
