// Package document reads and analyzes document files through the API:
// structured analysis, question answering with prompt caching, and executive
// summaries. Documents that exceed the context ceiling are summarized via a
// sequential map-reduce pass over overlapping chunks.
package document
