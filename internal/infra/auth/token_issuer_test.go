package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
)

func TestTokenIssuer_KeysAreHexAndUnique(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer(&config.Config{})

	seen := make(map[string]struct{})
	for range 32 {
		key, err := issuer.NewKey()
		require.NoError(t, err)
		assert.Len(t, key, 40)

		_, err = hex.DecodeString(key)
		require.NoError(t, err)

		_, dup := seen[key]
		assert.False(t, dup, "keys must not repeat")
		seen[key] = struct{}{}
	}
}

func TestTokenIssuer_ConfiguredLength(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{TokenLength: 32}

	issuer := NewTokenIssuer(cfg)

	key, err := issuer.NewKey()
	require.NoError(t, err)
	assert.Len(t, key, 64)
}
