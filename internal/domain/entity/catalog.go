// Package entity contains the core business objects of the project.
package entity

// Category groups products. Its identifier comes from the partner feed,
// so the same category id means the same thing across every shop.
type Category struct {
	ID   uint   // Feed-supplied identifier.
	Name string // Display name, refreshed on every import.
}

// Product is a dictionary entry shared across shops. Rows accumulate over
// imports and are never deleted by a catalog replacement.
type Product struct {
	ID         uint   // Numeric identifier of the product.
	Name       string // Product name, upsert key together with the category.
	CategoryID uint   // The category this product belongs to.
}

// ProductInfo is the per-shop listing of a Product: what a concrete shop
// currently offers, at which price and in which quantity.
type ProductInfo struct {
	ID        uint   // Numeric identifier of the listing.
	ProductID uint   // The product being listed.
	ShopID    uint   // The shop carrying it.
	Name      string // Listing name as given by the feed.
	Model     string // Model designation from the feed.
	Quantity  uint   // Units in stock.
	Price     int64  // Price in minor currency units.
	PriceRRC  *int64 // Recommended retail price, optional.

	Product    *Product           // The dictionary entry, populated on reads.
	Parameters []ProductParameter // Attribute values attached to this listing.
}

// Parameter is a named attribute dictionary entry, e.g. "color".
// Like products, parameters accumulate and are shared across shops.
type Parameter struct {
	ID   uint   // Numeric identifier of the parameter.
	Name string // Unique attribute name.
}

// ProductParameter binds a Parameter to a ProductInfo with a value.
// The value is a non-negative integer, a constraint inherited from the
// upstream schema even though attributes are not always numeric.
type ProductParameter struct {
	ID            uint   // Numeric identifier of the binding.
	ProductInfoID uint   // The listing this value belongs to.
	ParameterID   uint   // The attribute being valued.
	ParameterName string // Attribute name, populated on reads.
	Value         uint   // Non-negative attribute value.
}
