// Package tokens estimates token counts from text length.
//
// The estimate is a fixed character ratio, not a tokenizer: roughly 4
// characters per token for English text. Ceiling checks built on it are
// deliberately conservative approximations.
package tokens
