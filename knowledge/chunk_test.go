package knowledge

import (
	"strings"
	"testing"
)

func TestSplitWords_Empty(t *testing.T) {
	if chunks := SplitWords("", 512); chunks != nil {
		t.Fatalf("Expected nil for empty text, got %v", chunks)
	}
	if chunks := SplitWords("   \n\t ", 512); chunks != nil {
		t.Fatalf("Expected nil for whitespace-only text, got %v", chunks)
	}
}

func TestSplitWords_SingleChunk(t *testing.T) {
	chunks := SplitWords("a short piece of text", 512)
	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0] != "a short piece of text" {
		t.Fatalf("Unexpected chunk content: %q", chunks[0])
	}
}

func TestSplitWords_Bounds(t *testing.T) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = "word"
	}
	text := strings.Join(words, " ")

	chunks := SplitWords(text, 512)
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks for 1000 words, got %d", len(chunks))
	}
	if got := len(strings.Fields(chunks[0])); got != 512 {
		t.Fatalf("Expected first chunk of 512 words, got %d", got)
	}
	if got := len(strings.Fields(chunks[1])); got != 488 {
		t.Fatalf("Expected second chunk of 488 words, got %d", got)
	}
}

func TestSplitWords_NoWordSplitting(t *testing.T) {
	chunks := SplitWords("alpha beta gamma delta epsilon", 2)
	expected := []string{"alpha beta", "gamma delta", "epsilon"}
	if len(chunks) != len(expected) {
		t.Fatalf("Expected %d chunks, got %d", len(expected), len(chunks))
	}
	for i := range expected {
		if chunks[i] != expected[i] {
			t.Fatalf("Chunk %d: expected %q, got %q", i, expected[i], chunks[i])
		}
	}
}

func TestSplitWords_InvalidSizeUsesDefault(t *testing.T) {
	chunks := SplitWords("one two three", 0)
	if len(chunks) != 1 {
		t.Fatalf("Expected size fallback to default, got %d chunks", len(chunks))
	}
}
