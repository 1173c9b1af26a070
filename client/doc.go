// Package client wraps the Anthropic API for promptctl.
//
// Three send variants share one request/result shape: Send (plain text),
// SendWithTools (returns extracted tool invocations), and SendStream (invokes
// a callback per text fragment while still returning the aggregate result).
// All failures are wrapped in ErrAPI uniformly; callers propagate them.
// There is no retry or backoff at this layer.
//
// The Client interface exists for the packages that orchestrate sends
// (prompt, document, review, lint); Mock implements it for their tests.
package client
