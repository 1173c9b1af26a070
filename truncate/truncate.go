package truncate

// Preview lengths used across the toolkit for degraded model replies.
const (
	// FallbackLen bounds raw-text fallbacks when a structured reply fails
	// to parse.
	FallbackLen = 500

	// ComparisonLen bounds per-model response previews in comparisons.
	ComparisonLen = 200
)

// Preview returns at most max characters of s, counted in runes so a
// multi-byte character is never split. No ellipsis is appended: the result is
// a plain prefix, as consumed by fallback fields.
func Preview(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Fallback is Preview at the standard fallback length.
func Fallback(s string) string {
	return Preview(s, FallbackLen)
}
