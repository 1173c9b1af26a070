package truncate

import (
	"strings"
	"testing"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		s    string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello"},
		{"empty", "", 5, ""},
		{"zero max", "hello", 0, ""},
		{"negative max", "hello", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preview(tt.s, tt.max); got != tt.want {
				t.Errorf("Preview(%q, %d) = %q, want %q", tt.s, tt.max, got, tt.want)
			}
		})
	}
}

func TestPreview_MultibyteSafe(t *testing.T) {
	s := "héllo wörld"
	got := Preview(s, 6)
	if got != "héllo " {
		t.Errorf("Preview = %q, want %q", got, "héllo ")
	}
}

func TestFallback(t *testing.T) {
	long := strings.Repeat("a", 1000)
	if got := Fallback(long); len(got) != FallbackLen {
		t.Errorf("Fallback length = %d, want %d", len(got), FallbackLen)
	}
	if got := Fallback("short"); got != "short" {
		t.Errorf("Fallback(short) = %q", got)
	}
}
