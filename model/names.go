package model

// Name is a Claude model identifier.
type Name string

// Supported model identifiers.
const (
	Opus   Name = "claude-opus-4-20250514"
	Sonnet Name = "claude-sonnet-4-20250514"
	Haiku  Name = "claude-haiku-4-5-20251001"
)

// Defaults applied when neither the template nor the config overrides them.
const (
	Default            = Sonnet
	DefaultTemperature = 1.0
	DefaultMaxTokens   = 4096
)
