package catalog

import "github.com/shopspring/decimal"

// Category is a flat catalog grouping.
type Category struct {
	ID   int64
	Name string
}

// Subcategory is an independent flat list. It carries no link to
// Category.
type Subcategory struct {
	ID   int64
	Name string
}

// Product carries the full products-table schema. Food items use the
// literal subcategory "food" and populate the four food-only fields;
// for everything else those fields stay empty.
type Product struct {
	ID                  int64
	Name                string
	Brand               string
	Description         string
	Price               decimal.Decimal
	MemberPrice         decimal.Decimal
	Quantity            int
	Category            string
	Subcategory         string
	Expiry              string
	Ingredients         string
	StorageInstructions string
	Allergens           string
}

// ProductInput carries the raw answers collected for a new product.
// Price, member price and quantity arrive as entered; they are stored
// as text.
type ProductInput struct {
	Name                string
	Brand               string
	Description         string
	Price               string
	MemberPrice         string
	Quantity            string
	Category            string
	IsFood              bool
	Subcategory         string // ignored for food items
	Expiry              string
	Ingredients         string
	StorageInstructions string
	Allergens           string
}
