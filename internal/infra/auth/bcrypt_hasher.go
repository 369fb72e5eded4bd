// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{
		MinLength:         8,
		MaxLength:         128,
		RejectNumericOnly: true,
		RejectCommon:      true,
		RejectSimilar:     true,
	}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength applies the configured policy: minimum and maximum
// length, not fully numeric, not a known common password, and not too similar
// to the user's own name or email.
func (h *bcryptHasher) ValidatePasswordStrength(password string, hints service.IdentityHints) error {
	if h.policy.MinLength > 0 && len(password) < h.policy.MinLength {
		return errors.Errorf("password must be at least %d characters long", h.policy.MinLength)
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return errors.Errorf("password must be at most %d characters long", h.policy.MaxLength)
	}

	if h.policy.RejectNumericOnly && isEntirelyNumeric(password) {
		return errors.New("password cannot be entirely numeric")
	}

	if h.policy.RejectCommon {
		if _, found := commonPasswords[strings.ToLower(password)]; found {
			return errors.New("password is too common")
		}
	}

	if h.policy.RejectSimilar {
		lowered := strings.ToLower(password)
		for _, hint := range identityTokens(hints) {
			if hint != "" && strings.Contains(lowered, hint) {
				return errors.New("password is too similar to personal information")
			}
		}
	}

	return nil
}

func isEntirelyNumeric(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}

// identityTokens extracts the comparable fragments of the identity hints:
// names as-is, the email both whole and by its local part.
func identityTokens(hints service.IdentityHints) []string {
	tokens := make([]string, 0, 4)
	for _, raw := range []string{hints.FirstName, hints.LastName} {
		raw = strings.ToLower(strings.TrimSpace(raw))
		if len(raw) >= 3 {
			tokens = append(tokens, raw)
		}
	}

	email := strings.ToLower(strings.TrimSpace(hints.Email))
	if email != "" {
		tokens = append(tokens, email)
		if local, _, ok := strings.Cut(email, "@"); ok && len(local) >= 3 {
			tokens = append(tokens, local)
		}
	}

	return tokens
}

// commonPasswords is a short deny list of the perennial offenders. A full
// corpus lives with the operators; this catches the worst cases offline.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"passw0rd":    {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"admin123":    {},
	"letmein":     {},
	"welcome1":    {},
	"sunshine":    {},
	"football":    {},
	"monkey123":   {},
	"dragon123":   {},
	"baseball":    {},
	"superman":    {},
	"trustno1":    {},
	"1q2w3e4r":    {},
	"qazwsxedc":   {},
	"password123": {},
}
