// Package parser extracts structured JSON from LLM responses.
//
// Model replies asked for "ONLY valid JSON" frequently arrive wrapped in
// markdown code fences anyway. Fence stripping happens here, as a single
// testable step ahead of json.Unmarshal, so no call site does its own string
// slicing. Parse failures return nil rather than an error: model output is
// untrusted and callers degrade to raw-text fallbacks.
package parser
