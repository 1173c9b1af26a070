// Package chunk splits oversized text into overlapping character windows so
// each window fits within a generation call's context limit.
package chunk
