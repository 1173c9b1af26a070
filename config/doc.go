// Package config manages the on-disk promptctl configuration.
//
// The config is a YAML document at $PROMPTCTL_DIR/config.yaml (default
// ~/.promptctl/config.yaml) holding the default model, temperature, max
// tokens, and optionally an API key. It is read-most and lazily created.
package config
