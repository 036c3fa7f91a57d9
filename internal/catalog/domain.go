package catalog

import "errors"

// ErrNameRequired rejects blank entity names.
var ErrNameRequired = errors.New("catalog: name must not be empty")

// ErrDuplicateCategory indicates the category name is already taken.
var ErrDuplicateCategory = errors.New("catalog: category already exists")

// ErrDuplicateSubcategory indicates the sub-category name is already taken.
var ErrDuplicateSubcategory = errors.New("catalog: sub-category already exists")

// ErrDuplicateProduct indicates the product name is already taken.
var ErrDuplicateProduct = errors.New("catalog: product already exists")

// ErrProductNotFound indicates no row matches the product id.
var ErrProductNotFound = errors.New("catalog: product does not exist")

// ErrUnknownField indicates a field name outside the products schema.
var ErrUnknownField = errors.New("catalog: incorrect field name")
