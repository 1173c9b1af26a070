package chunk

// Defaults for document summarization: ~100k tokens per chunk at 4 chars per
// token, with a small overlap so sentences cut at a boundary survive whole in
// the next window.
const (
	DefaultSize    = 400_000
	DefaultOverlap = 2_000
)

// Split divides text into overlapping windows of size characters.
//
// Text no longer than size comes back as a single chunk, unchanged; the
// result is never empty, even for empty input. Otherwise consecutive windows
// advance by size-overlap characters, so the last overlap characters of each
// chunk equal the first overlap characters of the next. The loop stops once a
// window reaches the end of the text, so no degenerate near-empty tail chunk
// is emitted.
func Split(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	start := 0
	for start < len(runes) {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if start+size >= len(runes) {
			break
		}
		start += size - overlap
	}
	return chunks
}
