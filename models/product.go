package models

// Product is a catalog entry. Price is an integer in the smallest currency
// unit, so arithmetic on it never loses precision.
type Product struct {
	// ID is the server-assigned unique identifier of the product.
	ID int64 `json:"id"`

	// ProductName is the display name of the product.
	ProductName string `json:"product_name"`

	// Description is free text describing the product.
	Description string `json:"description"`

	// Price is the product price in the smallest currency unit.
	Price int64 `json:"price"`
}

// ProductIn is the inbound shape for creating or fully replacing a product.
type ProductIn struct {
	ProductName string `json:"product_name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}
