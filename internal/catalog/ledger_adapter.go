package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/monash-merchant/merchant/internal/cart"
)

// LedgerAdapter exposes the products table to the cart ledger as its
// durable store. Quantities are saved through a whole-table rewrite
// that touches only the product_quantity column, so every other field
// survives untouched.
type LedgerAdapter struct {
	repo Repository
}

// NewLedgerAdapter constructs a LedgerAdapter over repo.
func NewLedgerAdapter(repo Repository) *LedgerAdapter {
	return &LedgerAdapter{repo: repo}
}

// LoadProducts reads the products table into the slim inventory view.
func (a *LedgerAdapter) LoadProducts() ([]*cart.Product, error) {
	rows, err := a.repo.ReadProducts()
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	products := make([]*cart.Product, 0, len(rows))
	for _, row := range rows {
		id, err := strconv.ParseInt(row["product_id"], 10, 64)
		if err != nil {
			continue
		}
		quantity, _ := strconv.Atoi(row["product_quantity"])
		price, _ := decimal.NewFromString(strings.TrimSpace(row["product_price"]))
		products = append(products, &cart.Product{
			ID:          id,
			Name:        row["product_name"],
			Brand:       row["product_brand"],
			Description: row["product_description"],
			Price:       price,
			Quantity:    quantity,
		})
	}
	return products, nil
}

// SaveQuantities writes the given quantities back to matching rows.
func (a *LedgerAdapter) SaveQuantities(quantities map[int64]int) error {
	rows, err := a.repo.ReadProducts()
	if err != nil {
		return fmt.Errorf("read products: %w", err)
	}
	for _, row := range rows {
		id, err := strconv.ParseInt(row["product_id"], 10, 64)
		if err != nil {
			continue
		}
		if quantity, ok := quantities[id]; ok {
			row["product_quantity"] = strconv.Itoa(quantity)
		}
	}
	if err := a.repo.WriteProducts(rows); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}
