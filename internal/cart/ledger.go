package cart

import "fmt"

// StorePort abstracts the durable side of the ledger.
type StorePort interface {
	LoadProducts() ([]*Product, error)
	SaveQuantities(quantities map[int64]int) error
}

// Ledger exclusively owns in-memory product quantities between loads.
// The backing table is read fully on Reload and written on Persist;
// nothing syncs in between.
type Ledger struct {
	store    StorePort
	products []*Product
}

// NewLedger builds an empty Ledger over store. Call Reload before use.
func NewLedger(store StorePort) *Ledger {
	return &Ledger{store: store}
}

// Reload replaces the in-memory view with the table contents.
func (l *Ledger) Reload() error {
	products, err := l.store.LoadProducts()
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	l.products = products
	return nil
}

// Products returns the in-memory view in table order.
func (l *Ledger) Products() []*Product {
	return l.products
}

// Find returns the product with the given id, or nil.
func (l *Ledger) Find(id int64) *Product {
	for _, p := range l.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Persist writes the current quantities back to the backing table.
func (l *Ledger) Persist() error {
	quantities := make(map[int64]int, len(l.products))
	for _, p := range l.products {
		quantities[p.ID] = p.Quantity
	}
	if err := l.store.SaveQuantities(quantities); err != nil {
		return fmt.Errorf("save quantities: %w", err)
	}
	return nil
}
