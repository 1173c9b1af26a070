// Package promptctl is a command-line toolkit for prompt engineering
// against the Anthropic API.
//
// Each subpackage can be used independently:
//
//   - client: Anthropic API wrapper (plain, tool-use, and streaming sends)
//   - prompt: YAML prompt templates: load, interpolate, run, version, compare
//   - lint: local static linting of prompt template files (rules L001-L008)
//   - document: document analysis, question answering, and summarization
//   - review: structured code review over files or staged git diffs
//   - chunk: overlapping character-window splitting for oversized text
//   - license: offline PCTL license key validation and Pro feature gating
//   - model: model identifiers, per-million-token pricing, usage tracking
//   - parser: extract JSON from fenced model replies
//   - tokens: character-ratio token estimation
//   - truncate: response preview truncation
//
// # Quick Start
//
// Lint a template:
//
//	import "github.com/randalmurphal/promptctl/lint"
//	report, _ := lint.Check("greeting.yaml")
//
// Run a prompt template:
//
//	import "github.com/randalmurphal/promptctl/prompt"
//	runner := prompt.NewRunner(apiClient, cfg)
//	result, _ := runner.Run(ctx, "greeting.yaml", prompt.RunOptions{})
//
// # Design Philosophy
//
//   - Each package usable independently
//   - Model output is untrusted: JSON parsing degrades to previews, never panics
//   - Failures surface as wrapped sentinel errors (errors.Is friendly)
//   - Interfaces at the API boundary, concrete types everywhere else
package promptctl
