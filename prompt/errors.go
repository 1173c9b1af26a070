package prompt

import "errors"

// Sentinel errors for prompt operations.
var (
	// ErrTemplate indicates a missing or malformed template document.
	ErrTemplate = errors.New("invalid prompt template")

	// ErrNotFound indicates a missing template file or version snapshot.
	ErrNotFound = errors.New("prompt not found")

	// ErrQuota indicates the free-tier version ceiling was reached.
	ErrQuota = errors.New("free tier version limit reached")
)
