package license

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	prefix = "PCTL"
	salt   = "promptctl-v1"

	// EnvVar is the environment variable holding the license key.
	EnvVar = "PROMPTCTL_LICENSE"

	// MaxFreeVersions is the per-prompt snapshot ceiling on the free tier.
	MaxFreeVersions = 5

	// defaultBody is the key body used by GenerateKey when none is given.
	defaultBody = "TEST-KEY0"
)

// Tier is a license level.
type Tier string

// License tiers.
const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// Sentinel errors for license operations.
var (
	// ErrInvalidKey indicates a malformed or failed-checksum key.
	ErrInvalidKey = errors.New("invalid license key")

	// ErrProRequired indicates a Pro-gated feature was invoked on the free tier.
	ErrProRequired = errors.New("pro license required")
)

// Info is parsed license information. It is recomputed per process from the
// environment and never persisted.
type Info struct {
	Tier Tier
	Key  string
}

// IsPro reports whether the license grants Pro features.
func (i Info) IsPro() bool {
	return i.Tier == TierPro
}

// Checksum derives the key checksum for a body: the first 4 hex characters of
// SHA-256("<salt>:<body>"), uppercased. Issued keys depend on this exact
// construction, so the hash and truncation must not change.
func Checksum(body string) string {
	sum := sha256.Sum256([]byte(salt + ":" + body))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:4])
}

// Validate parses and verifies a PCTL license key.
//
// Format: PCTL-XXXX-XXXX-XXXX, where the last segment is the checksum of the
// two body segments. The checksum comparison is case-insensitive.
func Validate(key string) (Info, error) {
	if key == "" {
		return Info{}, fmt.Errorf("%w: empty license key", ErrInvalidKey)
	}

	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 4 {
		return Info{}, fmt.Errorf("%w: expected %s-XXXX-XXXX-XXXX, got %d segments",
			ErrInvalidKey, prefix, len(parts))
	}

	if parts[0] != prefix {
		return Info{}, fmt.Errorf("%w: expected prefix %q, got %q", ErrInvalidKey, prefix, parts[0])
	}

	body := parts[1] + "-" + parts[2]
	if strings.ToUpper(parts[3]) != Checksum(body) {
		return Info{}, fmt.Errorf("%w: checksum mismatch", ErrInvalidKey)
	}

	return Info{Tier: TierPro, Key: key}, nil
}

// Current returns the license read from the environment. A missing or invalid
// key yields the free tier, never an error: ambient resolution swallows
// validation failures.
func Current() Info {
	key := os.Getenv(EnvVar)
	if key == "" {
		return Info{Tier: TierFree}
	}
	info, err := Validate(key)
	if err != nil {
		return Info{Tier: TierFree}
	}
	return info
}

// GenerateKey constructs a well-formed key with a correct checksum for the
// given body, for administrative and test use. An empty body uses a fixed
// placeholder.
func GenerateKey(body string) string {
	if body == "" {
		body = defaultBody
	}
	return fmt.Sprintf("%s-%s-%s", prefix, body, Checksum(body))
}
