package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/monash-merchant/merchant/internal/catalog"
)

// adminLoop dispatches the administrator menu. Returns false when input
// ended and the whole shell should stop.
func (s *Shell) adminLoop() bool {
	for {
		action, ok := OptionsScreen{
			Title: "Admin account",
			Options: []string{
				"update / delete existing product",
				"add a new product",
				"add a new category",
				"add a new subcategory",
				"log out",
			},
		}.Display(s.prompter)
		if !ok {
			return false
		}

		switch action {
		case "log out":
			return true
		case "update / delete existing product":
			if !s.manageProducts() {
				return false
			}
		case "add a new product":
			if !s.addProductFlow() {
				return false
			}
		case "add a new category":
			if !s.addCategoryFlow() {
				return false
			}
		case "add a new subcategory":
			if !s.addSubcategoryFlow() {
				return false
			}
		}
	}
}

func (s *Shell) manageProducts() bool {
	for {
		action, ok := OptionsScreen{
			Title: "Manage products",
			Options: []string{
				"update a product",
				"delete a product",
				"go back",
			},
		}.Display(s.prompter)
		if !ok {
			return false
		}
		switch action {
		case "go back":
			return true
		case "update a product":
			if !s.updateProductFlow() {
				return false
			}
		case "delete a product":
			if !s.deleteProductFlow() {
				return false
			}
		}
	}
}

// askField prompts for one admin field. Entering the cancel token X
// aborts the flow; both cancellation and end of input return ok=false.
func (s *Shell) askField(label string) (string, bool) {
	raw, ok := s.prompter.Ask(fmt.Sprintf("Enter %s (or X to cancel): ", label))
	if !ok {
		return "", false
	}
	if isCancel(raw) {
		return "", false
	}
	return raw, true
}

// askValidatedField re-prompts until the validator accepts or the flow
// is cancelled.
func (s *Shell) askValidatedField(label string, valid Validator, hint string) (string, bool) {
	for {
		raw, ok := s.askField(label)
		if !ok {
			return "", false
		}
		if err := valid(raw); err != nil {
			fmt.Fprintln(s.out, hint)
			continue
		}
		return raw, true
	}
}

func isCancel(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), "x")
}

func (s *Shell) addCategoryFlow() bool {
	name, ok := s.askField("new Category Name")
	if !ok {
		return true
	}
	_, err := s.catalog.AddCategory(name)
	switch {
	case errors.Is(err, catalog.ErrDuplicateCategory):
		fmt.Fprintln(s.out, "Category already exists!!")
	case errors.Is(err, catalog.ErrNameRequired):
		fmt.Fprintln(s.out, "Category name must not be empty.")
	case err != nil:
		s.logger.Error("add category", "error", err)
		fmt.Fprintln(s.out, "Could not add category.")
	default:
		fmt.Fprintf(s.out, "Successfully added category: %s\n", name)
	}
	return true
}

func (s *Shell) addSubcategoryFlow() bool {
	name, ok := s.askField("new Sub-Category Name")
	if !ok {
		return true
	}
	_, err := s.catalog.AddSubcategory(name)
	switch {
	case errors.Is(err, catalog.ErrDuplicateSubcategory):
		fmt.Fprintln(s.out, "Sub-Category already exists!!")
	case errors.Is(err, catalog.ErrNameRequired):
		fmt.Fprintln(s.out, "Sub-Category name must not be empty.")
	case err != nil:
		s.logger.Error("add subcategory", "error", err)
		fmt.Fprintln(s.out, "Could not add sub-category.")
	default:
		fmt.Fprintf(s.out, "Successfully added sub-category: %s\n", name)
	}
	return true
}

func (s *Shell) addProductFlow() bool {
	fmt.Fprintln(s.out, "----------------")
	fmt.Fprintln(s.out, "Add a new Product")
	fmt.Fprintln(s.out, "----------------")

	var isFood bool
	for {
		raw, ok := s.prompter.Ask("Is Product sub-category food? (Y/n): ")
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			isFood = true
		case "n", "no":
			isFood = false
		default:
			fmt.Fprintln(s.out, "PLEASE ENTER A VALID RESPONSE (Y/n)")
			continue
		}
		break
	}

	input := catalog.ProductInput{IsFood: isFood}
	var ok bool
	if input.Name, ok = s.askField("Product Name"); !ok {
		return true
	}
	if input.Brand, ok = s.askField("Product Brand"); !ok {
		return true
	}
	if input.Description, ok = s.askField("Product Description"); !ok {
		return true
	}
	if input.Price, ok = s.askValidatedField("Product Price", ValidDecimal, "Please enter a valid price."); !ok {
		return true
	}
	if input.MemberPrice, ok = s.askValidatedField("Product Member Price", ValidDecimal, "Please enter a valid price."); !ok {
		return true
	}
	if input.Quantity, ok = s.askValidatedField("Product Quantity", ValidInteger, "Please enter a whole number."); !ok {
		return true
	}
	if input.Category, ok = s.askField("Product Category"); !ok {
		return true
	}

	if isFood {
		if input.Expiry, ok = s.askField("Product Expiry Date"); !ok {
			return true
		}
		if input.Ingredients, ok = s.askField("Product Ingredients"); !ok {
			return true
		}
		if input.StorageInstructions, ok = s.askField("Product Storage Instructions"); !ok {
			return true
		}
		if input.Allergens, ok = s.askField("Product Allergens (if any)"); !ok {
			return true
		}
	} else {
		if input.Subcategory, ok = s.askField("Product Sub-Category"); !ok {
			return true
		}
	}

	_, err := s.catalog.AddProduct(input)
	switch {
	case errors.Is(err, catalog.ErrDuplicateProduct):
		fmt.Fprintln(s.out, "Product already exists!")
	case errors.Is(err, catalog.ErrNameRequired):
		fmt.Fprintln(s.out, "Product name must not be empty.")
	case err != nil:
		s.logger.Error("add product", "error", err)
		fmt.Fprintln(s.out, "Could not add product.")
	default:
		fmt.Fprintf(s.out, "Successfully added product: %s\n", input.Name)
	}
	return true
}

// displayCatalog prints the full product table in admin form.
func (s *Shell) displayCatalog() {
	products, err := s.catalog.ListProducts()
	if err != nil {
		s.logger.Error("list products", "error", err)
		fmt.Fprintln(s.out, "Could not load products.")
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products available.")
		return
	}
	fmt.Fprintln(s.out, "\nAvailable Products:\n-------------------")
	for _, p := range products {
		fmt.Fprintf(s.out, "ID: %d\n", p.ID)
		fmt.Fprintf(s.out, "Name: %s\n", p.Name)
		fmt.Fprintf(s.out, "Brand: %s\n", p.Brand)
		fmt.Fprintf(s.out, "Description: %s\n", p.Description)
		fmt.Fprintf(s.out, "Price: %s\n", s.price(p.Price))
		fmt.Fprintf(s.out, "Member Price: %s\n", s.price(p.MemberPrice))
		fmt.Fprintf(s.out, "Quantity: %d\n", p.Quantity)
		fmt.Fprintf(s.out, "Category: %s\n", p.Category)
		fmt.Fprintf(s.out, "Sub-Category: %s\n", p.Subcategory)
		fmt.Fprintf(s.out, "Expiry: %s\n", p.Expiry)
		fmt.Fprintf(s.out, "Ingredients: %s\n", p.Ingredients)
		fmt.Fprintf(s.out, "Storage Instructions: %s\n", p.StorageInstructions)
		fmt.Fprintf(s.out, "Allergens: %s\n", p.Allergens)
		fmt.Fprintln(s.out, "-------------------")
	}
}

// askProductID prompts for a product id with the cancel token.
func (s *Shell) askProductID(verb string) (int64, bool) {
	for {
		raw, ok := s.prompter.Ask(fmt.Sprintf("Enter the Product ID you want to %s (or X to cancel): ", verb))
		if !ok {
			return 0, false
		}
		if isCancel(raw) {
			return 0, false
		}
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid integer for the product ID.")
			continue
		}
		return id, true
	}
}

func (s *Shell) updateProductFlow() bool {
	s.displayCatalog()
	id, ok := s.askProductID("update")
	if !ok {
		return true
	}

	fmt.Fprintln(s.out, "Enter the name of the field you want to update (or X to cancel): ")
	for _, column := range catalog.ProductColumns {
		fmt.Fprintln(s.out, column)
	}
	field, ok := s.prompter.Ask("")
	if !ok {
		return false
	}
	field = strings.TrimSpace(field)
	if isCancel(field) {
		return true
	}

	value, ok := s.prompter.Ask(fmt.Sprintf("Enter new value for %s (or X to cancel): ", field))
	if !ok {
		return false
	}
	if isCancel(value) {
		return true
	}

	err := s.catalog.UpdateProductField(id, field, value)
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		fmt.Fprintln(s.out, "Product ID does not exist.")
	case errors.Is(err, catalog.ErrUnknownField):
		fmt.Fprintln(s.out, "Operation cancelled or incorrect field name.")
	case err != nil:
		s.logger.Error("update product", "error", err)
		fmt.Fprintln(s.out, "Could not update product.")
	default:
		fmt.Fprintf(s.out, "Product with ID %d has been updated.\n", id)
	}
	return true
}

func (s *Shell) deleteProductFlow() bool {
	s.displayCatalog()
	id, ok := s.askProductID("delete")
	if !ok {
		return true
	}
	err := s.catalog.DeleteProduct(id)
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		fmt.Fprintln(s.out, "Product ID does not exist.")
	case err != nil:
		s.logger.Error("delete product", "error", err)
		fmt.Fprintln(s.out, "Could not delete product.")
	default:
		fmt.Fprintf(s.out, "Product with ID %d has been deleted.\n", id)
	}
	return true
}
