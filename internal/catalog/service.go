package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/monash-merchant/merchant/internal/csvtable"
)

// Service implements catalog maintenance: identifier assignment,
// duplicate-name rejection and whole-table persistence for categories,
// subcategories and products.
type Service struct {
	repo Repository
}

// NewService constructs a Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddCategory appends a category with the next free identifier.
// Re-adding an existing name fails without touching the table.
func (s *Service) AddCategory(name string) (Category, error) {
	if err := validateName(name); err != nil {
		return Category{}, err
	}
	rows, err := s.repo.ReadCategories()
	if err != nil {
		return Category{}, fmt.Errorf("read categories: %w", err)
	}
	for _, row := range rows {
		if row["category_name"] == name {
			return Category{}, ErrDuplicateCategory
		}
	}
	id := nextID(rows, "category_id")
	rows = append(rows, csvtable.Row{
		"category_id":   strconv.FormatInt(id, 10),
		"category_name": name,
	})
	if err := s.repo.WriteCategories(rows); err != nil {
		return Category{}, fmt.Errorf("write categories: %w", err)
	}
	return Category{ID: id, Name: name}, nil
}

// AddSubcategory appends a sub-category with the next free identifier.
// Subcategories are a flat list independent of categories.
func (s *Service) AddSubcategory(name string) (Subcategory, error) {
	if err := validateName(name); err != nil {
		return Subcategory{}, err
	}
	rows, err := s.repo.ReadSubcategories()
	if err != nil {
		return Subcategory{}, fmt.Errorf("read subcategories: %w", err)
	}
	for _, row := range rows {
		if row["subcategory_name"] == name {
			return Subcategory{}, ErrDuplicateSubcategory
		}
	}
	id := nextID(rows, "subcategory_id")
	rows = append(rows, csvtable.Row{
		"subcategory_id":   strconv.FormatInt(id, 10),
		"subcategory_name": name,
	})
	if err := s.repo.WriteSubcategories(rows); err != nil {
		return Subcategory{}, fmt.Errorf("write subcategories: %w", err)
	}
	return Subcategory{ID: id, Name: name}, nil
}

// AddProduct appends a product with the next free identifier. Food
// items get the fixed sub-category "food"; non-food items keep the four
// food-only fields empty.
func (s *Service) AddProduct(input ProductInput) (Product, error) {
	if err := validateName(input.Name); err != nil {
		return Product{}, err
	}
	rows, err := s.repo.ReadProducts()
	if err != nil {
		return Product{}, fmt.Errorf("read products: %w", err)
	}
	for _, row := range rows {
		if row["product_name"] == input.Name {
			return Product{}, ErrDuplicateProduct
		}
	}
	id := nextID(rows, "product_id")

	row := csvtable.Row{
		"product_id":                   strconv.FormatInt(id, 10),
		"product_name":                 input.Name,
		"product_brand":                input.Brand,
		"product_description":          input.Description,
		"product_price":                input.Price,
		"product_member_price":         input.MemberPrice,
		"product_quantity":             input.Quantity,
		"product_category":             input.Category,
		"product_storage_instructions": input.StorageInstructions,
		"product_allergens":            input.Allergens,
		// The header spells this column "product_ingridients", so the
		// value stored under the field name is dropped on write.
		FieldIngredients: input.Ingredients,
	}
	if input.IsFood {
		row["product_sub_category"] = "food"
		row["product_expiry"] = input.Expiry
	} else {
		row["product_sub_category"] = input.Subcategory
		row["product_expiry"] = ""
		row[FieldIngredients] = ""
		row["product_storage_instructions"] = ""
		row["product_allergens"] = ""
	}

	rows = append(rows, row)
	if err := s.repo.WriteProducts(rows); err != nil {
		return Product{}, fmt.Errorf("write products: %w", err)
	}
	return rowToProduct(row), nil
}

// ListProducts returns every product in table order. Columns missing
// from a row default to the empty string.
func (s *Service) ListProducts() ([]Product, error) {
	rows, err := s.repo.ReadProducts()
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, rowToProduct(row))
	}
	return products, nil
}

// UpdateProductField overwrites field with the raw text value on every
// row matching id. The new value is not type-checked.
func (s *Service) UpdateProductField(id int64, field, value string) error {
	rows, err := s.repo.ReadProducts()
	if err != nil {
		return fmt.Errorf("read products: %w", err)
	}
	key := strconv.FormatInt(id, 10)
	matched := false
	for _, row := range rows {
		if row["product_id"] == key {
			matched = true
			break
		}
	}
	if !matched {
		return ErrProductNotFound
	}
	if !knownField(s.repo.ProductColumns(), field) {
		return ErrUnknownField
	}
	for _, row := range rows {
		if row["product_id"] == key {
			row[field] = value
		}
	}
	if err := s.repo.WriteProducts(rows); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}

// DeleteProduct removes every row matching id. Carts already holding
// the product are not touched.
func (s *Service) DeleteProduct(id int64) error {
	rows, err := s.repo.ReadProducts()
	if err != nil {
		return fmt.Errorf("read products: %w", err)
	}
	key := strconv.FormatInt(id, 10)
	kept := rows[:0]
	matched := false
	for _, row := range rows {
		if row["product_id"] == key {
			matched = true
			continue
		}
		kept = append(kept, row)
	}
	if !matched {
		return ErrProductNotFound
	}
	if err := s.repo.WriteProducts(kept); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	return nil
}

// nextID returns max existing identifier + 1, or 1 for an empty table.
// Safe only under the single-writer assumption.
func nextID(rows []csvtable.Row, column string) int64 {
	var max int64
	for _, row := range rows {
		id, err := strconv.ParseInt(row[column], 10, 64)
		if err != nil {
			continue
		}
		if id > max {
			max = id
		}
	}
	return max + 1
}

func knownField(columns []string, field string) bool {
	for _, col := range columns {
		if col == field {
			return true
		}
	}
	return false
}

func rowToProduct(row csvtable.Row) Product {
	id, _ := strconv.ParseInt(row["product_id"], 10, 64)
	quantity, _ := strconv.Atoi(row["product_quantity"])
	price, _ := decimal.NewFromString(strings.TrimSpace(row["product_price"]))
	memberPrice, _ := decimal.NewFromString(strings.TrimSpace(row["product_member_price"]))
	return Product{
		ID:                  id,
		Name:                row["product_name"],
		Brand:               row["product_brand"],
		Description:         row["product_description"],
		Price:               price,
		MemberPrice:         memberPrice,
		Quantity:            quantity,
		Category:            row["product_category"],
		Subcategory:         row["product_sub_category"],
		Expiry:              row["product_expiry"],
		Ingredients:         row[FieldIngredients],
		StorageInstructions: row["product_storage_instructions"],
		Allergens:           row["product_allergens"],
	}
}
