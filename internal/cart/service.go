package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart accumulates reservations against a Ledger and drives checkout.
// Reservation is pessimistic: stock is committed when a line is added,
// not when the sale closes.
type Cart struct {
	logger *slog.Logger
	ledger *Ledger
	lines  []Line
}

// New constructs a Cart over ledger.
func New(logger *slog.Logger, ledger *Ledger) *Cart {
	return &Cart{logger: logger, ledger: ledger}
}

// ParseQuantity validates raw quantity input. Non-numeric text and
// non-positive values are rejected; the caller owns the retry loop.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("cart: quantity must be a whole number: %q", raw)
	}
	if n <= 0 {
		return 0, ErrNonPositiveQuantity
	}
	return n, nil
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	return c.lines
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Reserve commits quantity units of the product to the cart and
// decrements the ledger immediately. A request beyond available stock
// returns a ShortfallError and changes nothing; the shell solicits a
// replacement quantity and calls again.
func (c *Cart) Reserve(productID int64, quantity int) error {
	if quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	product := c.ledger.Find(productID)
	if product == nil {
		return ErrProductNotFound
	}
	if quantity > product.Quantity {
		return &ShortfallError{
			Name:      product.Name,
			Requested: quantity,
			Available: product.Quantity,
		}
	}
	product.Quantity -= quantity
	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	return nil
}

// Aggregate groups cart lines by product name, summing quantity and
// line totals per group. Groups follow first-appearance order; the
// totals per name are independent of insertion order.
func (c *Cart) Aggregate() []Summary {
	index := make(map[string]int)
	var summaries []Summary
	for _, line := range c.lines {
		i, ok := index[line.Product.Name]
		if !ok {
			i = len(summaries)
			index[line.Product.Name] = i
			summaries = append(summaries, Summary{Name: line.Product.Name})
		}
		lineTotal := line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		summaries[i].Quantity += line.Quantity
		summaries[i].TotalPrice = summaries[i].TotalPrice.Add(lineTotal)
	}
	for i := range summaries {
		summaries[i].UnitPrice = summaries[i].TotalPrice.Div(decimal.NewFromInt(int64(summaries[i].Quantity)))
	}
	return summaries
}

// Total sums price times quantity over every line.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Checkout persists the ledger, clears the cart and returns a receipt.
// An empty cart fails without persisting anything. The fulfilment
// choice is echoed on the receipt and has no other effect.
func (c *Cart) Checkout(req CheckoutRequest) (*Receipt, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}
	if req.Fulfilment != FulfilmentDelivery && req.Fulfilment != FulfilmentPickup {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFulfilment, req.Fulfilment)
	}

	receipt := &Receipt{
		Reference:  uuid.NewString(),
		Lines:      c.Aggregate(),
		Total:      c.Total(),
		Fulfilment: req.Fulfilment,
		Address:    req.Address,
	}

	if err := c.ledger.Persist(); err != nil {
		return nil, fmt.Errorf("persist ledger: %w", err)
	}

	// Stale lines would double-count on the next aggregate.
	c.lines = nil

	if c.logger != nil {
		c.logger.Info("checkout complete",
			slog.String("reference", receipt.Reference),
			slog.String("total", receipt.Total.StringFixed(2)),
			slog.String("fulfilment", string(receipt.Fulfilment)))
	}
	return receipt, nil
}

// IsShortfall reports the shortfall details when err is a stock
// shortfall.
func IsShortfall(err error) (*ShortfallError, bool) {
	var shortfall *ShortfallError
	if errors.As(err, &shortfall) {
		return shortfall, true
	}
	return nil, false
}
