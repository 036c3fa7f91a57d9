package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Product is the slim inventory view owned by the Ledger between loads.
// Quantity here is the single source of truth until Persist writes it
// back to the products table.
type Product struct {
	ID          int64
	Name        string
	Brand       string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// Line is one reservation in the cart. The same product may appear in
// several lines; aggregation merges them by name at display time.
type Line struct {
	Product  *Product
	Quantity int
}

// Summary is the per-name aggregate of cart lines. UnitPrice is
// TotalPrice divided by Quantity, a blended average when lines for one
// name carry different unit prices.
type Summary struct {
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// Fulfilment enumerates how the customer receives the order. The
// choice is presentational only; it never changes totals or what gets
// persisted.
type Fulfilment string

const (
	// FulfilmentDelivery delivers to an address supplied at checkout.
	FulfilmentDelivery Fulfilment = "delivery"
	// FulfilmentPickup leaves the order at the store for collection.
	FulfilmentPickup Fulfilment = "pickup"
)

// CheckoutRequest carries the fulfilment choice collected by the shell.
type CheckoutRequest struct {
	Fulfilment Fulfilment
	Address    string // informational, delivery only
}

// Receipt is produced by a successful checkout.
type Receipt struct {
	Reference  string
	Lines      []Summary
	Total      decimal.Decimal
	Fulfilment Fulfilment
	Address    string
}

// ErrEmptyCart rejects checkout with no lines.
var ErrEmptyCart = errors.New("cart: cart is empty")

// ErrNonPositiveQuantity rejects zero or negative reservations. Callers
// treat it as a silent no-op.
var ErrNonPositiveQuantity = errors.New("cart: quantity must be positive")

// ErrProductNotFound indicates the product id is not in the ledger.
var ErrProductNotFound = errors.New("cart: product not found")

// ErrInvalidFulfilment indicates an unrecognized fulfilment choice.
var ErrInvalidFulfilment = errors.New("cart: invalid fulfilment choice")

// ShortfallError reports a reservation exceeding available stock. The
// caller re-prompts for a smaller quantity; stock is never driven
// negative.
type ShortfallError struct {
	Name      string
	Requested int
	Available int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("cart: %s is low on stock, only %d available", e.Name, e.Available)
}
