// Package entity contains the core business objects of the project.
package entity

// UserType represents the kind of account a user registered as.
type UserType string

const (
	// UserTypeBuyer indicates a purchasing account.
	UserTypeBuyer UserType = "buyer"
	// UserTypeShop indicates a seller account that publishes a catalog.
	UserTypeShop UserType = "shop"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// IsValid checks if the UserType is a valid value.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeBuyer, UserTypeShop:
		return true
	default:
		return false
	}
}
