package service

// TokenIssuer generates the opaque keys used for both the email confirmation
// tokens and the bearer credentials. Keys are random hex strings; resolving a
// key back to a user happens in the persistence layer, not here.
type TokenIssuer interface {
	// NewKey returns a fresh random key.
	NewKey() (string, error)
}
