// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a registered account.
// The email address doubles as the login identity.
type User struct {
	ID           uint      // Numeric identifier of the user.
	FirstName    string    // The user's given name.
	LastName     string    // The user's family name.
	Email        string    // Unique login identity.
	PasswordHash string    // bcrypt hash of the user's password.
	Company      string    // Optional company name.
	Position     string    // Optional job position.
	Type         UserType  // Either a buyer or a shop account.
	IsActive     bool      // False until the email address has been confirmed.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// FullName joins the first and last name for display purposes.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
