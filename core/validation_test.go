package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateRecord(t *testing.T) {
	validTime := time.Now().Add(-24 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	valid := func() *ContentRecord {
		return &ContentRecord{
			Title:        "Understanding Raft",
			URL:          "https://example.org/raft",
			Body:         "Raft is a consensus algorithm designed for understandability.",
			SourceDomain: "example.org",
			PublishedAt:  validTime,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*ContentRecord)
		wantErr error
	}{
		{
			name:    "valid record",
			mutate:  func(r *ContentRecord) {},
			wantErr: nil,
		},
		{
			name:    "unknown published date is valid",
			mutate:  func(r *ContentRecord) { r.PublishedAt = time.Time{} },
			wantErr: nil,
		},
		{
			name:    "empty title",
			mutate:  func(r *ContentRecord) { r.Title = "  " },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "empty url",
			mutate:  func(r *ContentRecord) { r.URL = "" },
			wantErr: ErrEmptyURL,
		},
		{
			name:    "empty body",
			mutate:  func(r *ContentRecord) { r.Body = "" },
			wantErr: ErrEmptyBody,
		},
		{
			name:    "empty source domain",
			mutate:  func(r *ContentRecord) { r.SourceDomain = "" },
			wantErr: ErrEmptySourceDomain,
		},
		{
			name:    "future published date",
			mutate:  func(r *ContentRecord) { r.PublishedAt = futureTime },
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := valid()
			tt.mutate(record)
			err := ValidateRecord(record)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateRecord() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidRecord) {
				t.Fatalf("ValidateRecord() error should wrap ErrInvalidRecord, got %v", err)
			}
		})
	}

	if err := ValidateRecord(nil); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("ValidateRecord(nil) error = %v", err)
	}
}

func TestNormalizeRecord(t *testing.T) {
	record := &ContentRecord{
		Title:        "  Paper Title ",
		URL:          " https://arxiv.org/abs/1234 ",
		Body:         "one two three four",
		SourceDomain: " ArXiv.Org ",
		License:      " CC-BY-4.0 ",
	}
	NormalizeRecord(record)

	if record.Title != "Paper Title" {
		t.Errorf("title not trimmed: %q", record.Title)
	}
	if record.SourceDomain != "arxiv.org" {
		t.Errorf("domain not lowercased: %q", record.SourceDomain)
	}
	if record.License != "CC-BY-4.0" {
		t.Errorf("license not trimmed: %q", record.License)
	}
	if record.Key != RecordKey(record.URL, record.Title) {
		t.Error("key not derived from url and title")
	}
	if record.WordCount != 4 {
		t.Errorf("word count = %d, want 4", record.WordCount)
	}

	// Normalizing again must not change the key.
	key := record.Key
	NormalizeRecord(record)
	if record.Key != key {
		t.Error("key changed on second normalization")
	}
}

func TestValidateClaim(t *testing.T) {
	tests := []struct {
		name    string
		claim   *KnowledgeClaim
		wantErr error
	}{
		{
			name: "valid claim",
			claim: &KnowledgeClaim{
				Subject:    "Raft",
				Predicate:  "is",
				Object:     "a consensus algorithm",
				Confidence: 0.8,
			},
			wantErr: nil,
		},
		{
			name:    "empty subject",
			claim:   &KnowledgeClaim{Predicate: "is", Object: "x", Confidence: 0.5},
			wantErr: ErrEmptySubject,
		},
		{
			name:    "empty predicate",
			claim:   &KnowledgeClaim{Subject: "Raft", Object: "x", Confidence: 0.5},
			wantErr: ErrEmptyPredicate,
		},
		{
			name:    "empty object",
			claim:   &KnowledgeClaim{Subject: "Raft", Predicate: "is", Confidence: 0.5},
			wantErr: ErrEmptyObject,
		},
		{
			name: "confidence out of range",
			claim: &KnowledgeClaim{
				Subject:    "Raft",
				Predicate:  "is",
				Object:     "x",
				Confidence: 1.5,
			},
			wantErr: ErrInvalidClaim,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClaim(tt.claim)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateClaim() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateClaim() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"one", 1},
		{"one two three", 3},
		{"  spaced\tout\nwords  ", 3},
	}
	for _, tt := range tests {
		if got := CountWords(tt.text); got != tt.want {
			t.Errorf("CountWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
