package catalog

import (
	"fmt"

	"github.com/monash-merchant/merchant/internal/csvtable"
)

// CategoryColumns is the categories table schema.
var CategoryColumns = []string{"category_id", "category_name"}

// SubcategoryColumns is the subcategories table schema.
var SubcategoryColumns = []string{"subcategory_id", "subcategory_name"}

// ProductColumns is the products table schema as shipped, including the
// misspelled ingredients column. Rows are written under the field name
// FieldIngredients, which matches no header column, so ingredient input
// never reaches disk. Kept as-is until the intended spelling is settled.
var ProductColumns = []string{
	"product_id", "product_name", "product_brand", "product_description",
	"product_price", "product_member_price", "product_quantity",
	"product_category", "product_sub_category", "product_expiry",
	"product_ingridients", "product_storage_instructions", "product_allergens",
}

// FieldIngredients is the ingredients field name used when building rows.
const FieldIngredients = "product_ingredients"

// Repository abstracts whole-table access for the catalog tables. Every
// mutation is a full read-modify-rewrite; a single writer is assumed.
type Repository interface {
	ReadCategories() ([]csvtable.Row, error)
	WriteCategories(rows []csvtable.Row) error
	ReadSubcategories() ([]csvtable.Row, error)
	WriteSubcategories(rows []csvtable.Row) error
	ReadProducts() ([]csvtable.Row, error)
	WriteProducts(rows []csvtable.Row) error
	ProductColumns() []string
}

type repository struct {
	categories    *csvtable.Table
	subcategories *csvtable.Table
	products      *csvtable.Table
}

// NewRepository opens the three catalog tables under dir, creating any
// missing files with their headers.
func NewRepository(dir string) (Repository, error) {
	categories, err := csvtable.Open("categories", CategoryColumns, dir)
	if err != nil {
		return nil, fmt.Errorf("open categories table: %w", err)
	}
	subcategories, err := csvtable.Open("subcategories", SubcategoryColumns, dir)
	if err != nil {
		return nil, fmt.Errorf("open subcategories table: %w", err)
	}
	products, err := csvtable.Open("products", ProductColumns, dir)
	if err != nil {
		return nil, fmt.Errorf("open products table: %w", err)
	}
	return &repository{
		categories:    categories,
		subcategories: subcategories,
		products:      products,
	}, nil
}

func (r *repository) ReadCategories() ([]csvtable.Row, error) {
	return r.categories.Select(nil)
}

func (r *repository) WriteCategories(rows []csvtable.Row) error {
	return r.categories.WriteRows(rows)
}

func (r *repository) ReadSubcategories() ([]csvtable.Row, error) {
	return r.subcategories.Select(nil)
}

func (r *repository) WriteSubcategories(rows []csvtable.Row) error {
	return r.subcategories.WriteRows(rows)
}

func (r *repository) ReadProducts() ([]csvtable.Row, error) {
	return r.products.Select(nil)
}

func (r *repository) WriteProducts(rows []csvtable.Row) error {
	return r.products.WriteRows(rows)
}

func (r *repository) ProductColumns() []string {
	return r.products.Columns()
}
