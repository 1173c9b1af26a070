package chunk

import (
	"strings"
	"testing"
)

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	tests := []struct {
		name string
		text string
		size int
	}{
		{"empty string", "", 10},
		{"shorter than size", "hello", 10},
		{"exactly size", "0123456789", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.size, 2)
			if len(got) != 1 {
				t.Fatalf("Split returned %d chunks, want 1", len(got))
			}
			if got[0] != tt.text {
				t.Errorf("chunk = %q, want input unchanged %q", got[0], tt.text)
			}
		})
	}
}

func TestSplit_WindowsAndOverlap(t *testing.T) {
	text := "abcdefghijklmnopqrstuvwxyz"
	size, overlap := 10, 3

	chunks := Split(text, size, overlap)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// All but the last chunk are exactly size characters.
	for i, c := range chunks[:len(chunks)-1] {
		if len(c) != size {
			t.Errorf("chunk %d length = %d, want %d", i, len(c), size)
		}
	}

	// Consecutive chunks share exactly overlap characters.
	for i := 0; i < len(chunks)-1; i++ {
		suffix := chunks[i][len(chunks[i])-overlap:]
		prefix := chunks[i+1][:overlap]
		if suffix != prefix {
			t.Errorf("chunks %d/%d overlap mismatch: %q vs %q", i, i+1, suffix, prefix)
		}
	}
}

func TestSplit_NoDegenerateTailChunk(t *testing.T) {
	// 26 chars, size 10, overlap 3: windows start at 0, 7, 14 and the window
	// at 14 reaches 24 < 26, so one more at 21 covers the tail.
	chunks := Split("abcdefghijklmnopqrstuvwxyz", 10, 3)

	last := chunks[len(chunks)-1]
	if len(last) <= 3 {
		t.Errorf("last chunk %q is a degenerate tail", last)
	}
	if !strings.HasSuffix(last, "z") {
		t.Errorf("last chunk %q must reach the end of the text", last)
	}
}

func TestSplit_CoversAllText(t *testing.T) {
	text := strings.Repeat("0123456789", 50)
	size, overlap := 17, 5

	chunks := Split(text, size, overlap)

	// Reassembling with the overlap dropped must reproduce the input.
	var b strings.Builder
	b.WriteString(chunks[0])
	for _, c := range chunks[1:] {
		b.WriteString(c[overlap:])
	}
	if b.String() != text {
		t.Error("reassembled chunks do not reproduce the input text")
	}
}

func TestSplit_AlwaysAtLeastOneChunk(t *testing.T) {
	for _, text := range []string{"", "a", strings.Repeat("a", 1000)} {
		if got := Split(text, 100, 10); len(got) < 1 {
			t.Errorf("Split(%d chars) returned zero chunks", len(text))
		}
	}
}

func TestSplit_DefaultsSingleChunkForTypicalDocs(t *testing.T) {
	text := strings.Repeat("word ", 10_000)
	got := Split(text, DefaultSize, DefaultOverlap)
	if len(got) != 1 {
		t.Errorf("typical document split into %d chunks, want 1", len(got))
	}
}
