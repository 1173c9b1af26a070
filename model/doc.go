// Package model defines the supported Claude model identifiers, their
// per-million-token pricing, and token usage accumulation.
package model
