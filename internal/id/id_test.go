package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	tok := Token("key")
	require.Len(t, tok, len("key_")+8)
	assert.Regexp(t, `^key_[0-9a-f]{8}$`, tok)
}

func TestTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := Token("acc")
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}

func TestSecret(t *testing.T) {
	sec := Secret("sk_")
	assert.Regexp(t, `^sk_[0-9a-f]{32}$`, sec)
	assert.NotEqual(t, sec, Secret("sk_"))
}

func TestDeploymentID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"logging", "dep_logging_123"},
		{"Logging", "dep_logging_123"},
		{"MY-CLUSTER", "dep_my-cluster_123"},
		{"a b", "dep_a b_123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeploymentID(tt.name))
	}
}

func TestTimestamp(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	ts := Timestamp(time.Date(2024, 3, 15, 13, 30, 0, 0, loc))
	assert.Equal(t, "2024-03-15T12:30:00Z", ts)

	// Now must parse back as RFC 3339.
	_, err := time.Parse(time.RFC3339, Now())
	require.NoError(t, err)
}
