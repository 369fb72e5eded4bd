// Package entity contains the core business objects of the project.
package entity

// Shop is a seller storefront. It may be owned by a user of type "shop";
// ownerless shops can exist when a catalog was loaded administratively.
type Shop struct {
	ID     uint   // Numeric identifier of the shop.
	Name   string // Unique shop name, also the upsert key during feed imports.
	URL    string // Link to the shop site, may be empty.
	UserID *uint  // Optional owning user, nil for ownerless shops.
	Status bool   // Whether the shop is currently accepting orders.
}
