package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/config"
	"bazaar/internal/domain/service"
)

func newTestHasher() service.PasswordHasher {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}

	return NewBcryptHasher(cfg)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()

	hash, err := hasher.Hash("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.True(t, hasher.Check("correct-horse-battery", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	t.Parallel()

	hasher := newTestHasher()
	hints := service.IdentityHints{
		FirstName: "Evgeny",
		LastName:  "Petrov",
		Email:     "epetrov@example.com",
	}

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "acceptable", password: "correct-horse-battery"},
		{name: "too short", password: "abc1234", wantErr: "at least"},
		{name: "entirely numeric", password: "467295013", wantErr: "numeric"},
		{name: "common password", password: "Password123", wantErr: "too common"},
		{name: "contains last name", password: "petrov-secret-99", wantErr: "similar"},
		{name: "contains email local part", password: "xx-epetrov-xx", wantErr: "similar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := hasher.ValidatePasswordStrength(tt.password, hints)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBcryptHasher_PolicyCanBeRelaxed(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{MinLength: 4}

	hasher := NewBcryptHasher(cfg)

	assert.NoError(t, hasher.ValidatePasswordStrength("1234", service.IdentityHints{}))
}
