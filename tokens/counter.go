package tokens

// DefaultCharsPerToken is the default character-to-token ratio.
const DefaultCharsPerToken = 4

// Counter estimates token counts for text.
type Counter struct {
	// CharsPerToken is the average characters per token. Zero or negative
	// values fall back to the default ratio.
	CharsPerToken int
}

// NewCounter creates a token counter with the default ratio.
func NewCounter() *Counter {
	return &Counter{CharsPerToken: DefaultCharsPerToken}
}

// Count estimates the number of tokens in text by integer division of its
// length by the character ratio.
func (c *Counter) Count(text string) int {
	ratio := c.CharsPerToken
	if ratio <= 0 {
		ratio = DefaultCharsPerToken
	}
	return len(text) / ratio
}

// FitsInLimit reports whether text fits within the token limit.
func (c *Counter) FitsInLimit(text string, limit int) bool {
	return c.Count(text) <= limit
}

// Estimate is a convenience function using the default ratio.
func Estimate(text string) int {
	return NewCounter().Count(text)
}
