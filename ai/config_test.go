package ai

import (
	"testing"
	"time"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.EmbeddingHost != "http://localhost:11434/v1" {
		t.Fatalf("Unexpected default host: %s", cfg.EmbeddingHost)
	}
	if cfg.EmbeddingModel != "embeddinggemma" {
		t.Fatalf("Unexpected default model: %s", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("Unexpected default timeout: %v", cfg.Timeout)
	}
}

func TestNewConfigOptions(t *testing.T) {
	cfg := NewConfig(
		WithHost("http://example.com:9100"),
		WithEmbeddingModel("text-embedding-3-small"),
		WithTimeout(2*time.Second),
	)
	if cfg.EmbeddingHost != "http://example.com:9100" {
		t.Fatalf("Unexpected host: %s", cfg.EmbeddingHost)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Fatalf("Unexpected model: %s", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("Unexpected timeout: %v", cfg.Timeout)
	}
}

func TestNormalizeAddsV1Suffix(t *testing.T) {
	cases := []struct {
		host     string
		expected string
	}{
		{"http://localhost:11434", "http://localhost:11434/v1"},
		{"http://localhost:11434/", "http://localhost:11434/v1"},
		{"http://localhost:11434/v1", "http://localhost:11434/v1"},
	}
	for _, c := range cases {
		cfg := NewConfig(WithHost(c.host))
		cfg.Normalize()
		if cfg.EmbeddingHost != c.expected {
			t.Fatalf("Host %q: expected %q, got %q", c.host, c.expected, cfg.EmbeddingHost)
		}
	}
}

func TestValidateRejectsIncomplete(t *testing.T) {
	cfg := NewConfig()
	cfg.EmbeddingModel = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for empty model")
	}

	cfg = NewConfig()
	cfg.EmbeddingHost = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected validation error for empty host")
	}
}
