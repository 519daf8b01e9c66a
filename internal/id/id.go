// Package id generates the synthetic identifiers and timestamps used by the
// mock platform API. Identifiers are UUID-derived and probabilistically
// unique; no record of issued values is kept anywhere.
package id

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Token returns a prefixed opaque identifier such as "key_1a2b3c4d".
// The suffix is the first 8 hex characters of a random UUID.
func Token(prefix string) string {
	return prefix + "_" + hexUUID()[:8]
}

// Secret returns a prefixed secret value, the full 32 hex characters of a
// random UUID. Secrets are handed out exactly once and never stored, so
// there is nothing to compare them against later.
func Secret(prefix string) string {
	return prefix + hexUUID()
}

// DeploymentID derives a deployment identifier from its name. The upstream
// fixture derives these deterministically rather than randomly, so a client
// can predict the identifier from its own input.
func DeploymentID(name string) string {
	return "dep_" + strings.ToLower(name) + "_123"
}

// Timestamp formats t as an ISO-8601 (RFC 3339) UTC string.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Now returns the current time as an ISO-8601 string.
func Now() string {
	return Timestamp(time.Now())
}

func hexUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
