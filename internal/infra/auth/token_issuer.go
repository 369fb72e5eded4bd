package auth

import (
	"crypto/rand"
	"encoding/hex"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

const defaultTokenLength = 20

// randomTokenIssuer generates opaque keys from the system entropy source.
// A 20 byte key serializes to 40 hex characters, matching the upstream
// token format.
type randomTokenIssuer struct {
	length int
}

// NewTokenIssuer is the constructor for randomTokenIssuer.
func NewTokenIssuer(cfg *config.Config) service.TokenIssuer {
	length := defaultTokenLength
	if cfg.Auth != nil && cfg.Auth.TokenLength > 0 {
		length = cfg.Auth.TokenLength
	}

	return &randomTokenIssuer{length: length}
}

// NewKey returns a fresh random hex key.
func (i *randomTokenIssuer) NewKey() (string, error) {
	buf := make([]byte, i.length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
