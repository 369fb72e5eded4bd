// Package entity contains the core business objects of the project.
package entity

// Identity is the authenticated caller of a request. It is resolved once by
// the auth middleware and passed explicitly into every gated handler.
type Identity struct {
	UserID uint     // The authenticated user.
	Type   UserType // buyer or shop, used for role gates.
	Email  string   // Login identity, handy for notifications.
}

// IsShop reports whether the identity belongs to a shop account.
func (i Identity) IsShop() bool {
	return i.Type == UserTypeShop
}
