// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// ConfirmEmailToken is a one-shot key mailed to a freshly registered user.
// Presenting it together with the matching email flips the account active.
// All of a user's confirmation tokens are removed once one of them succeeds.
type ConfirmEmailToken struct {
	ID        uint      // Numeric identifier of the token record.
	UserID    uint      // Links the token to the User it confirms.
	Key       string    // Random opaque hex key, unique across all tokens.
	CreatedAt time.Time // Timestamp of when this token was generated.
}

// AccessToken is the opaque bearer credential issued on login.
// There is exactly one per user and it is reused across logins.
type AccessToken struct {
	ID        uint      // Numeric identifier of the token record.
	UserID    uint      // Links the credential to the User it authenticates.
	Key       string    // Random opaque hex key, unique across all tokens.
	CreatedAt time.Time // Timestamp of when this credential was issued.
}
