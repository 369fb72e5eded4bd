// Package entity contains the core business objects of the project.
package entity

// Contact holds the delivery address and phone of a user.
// Each user has at most one contact record.
type Contact struct {
	ID        uint   // Numeric identifier of the contact.
	UserID    uint   // The owning user.
	City      string // City of the delivery address.
	Street    string // Street of the delivery address.
	House     string // House number.
	Structure string // Optional structure designation.
	Building  string // Optional building designation.
	Apartment string // Optional apartment number.
	Phone     string // Contact phone number.
}
