package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/monash-merchant/merchant/internal/auth"
	"github.com/monash-merchant/merchant/internal/cart"
	"github.com/monash-merchant/merchant/internal/catalog"
	"github.com/monash-merchant/merchant/internal/shell"
)

const usersFixture = "user_id,role,email,password\n" +
	"1,customer,member@student.monash.edu,Monash1234\n" +
	"2,administrator,admin@merchant.monash.edu,12345678\n"

const customersFixture = "user_id,first_name,last_name,date_of_birth,gender,mobile_number,address,fund,membership\n" +
	"1,Mona,Member,2001-03-04,female,0400000000,1 Example St,250.00,true\n"

func seedShop(t *testing.T) (string, catalog.Repository) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "users.csv"), []byte(usersFixture), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "customer.csv"), []byte(customersFixture), 0o644))

	repo, err := catalog.NewRepository(dir)
	require.NoError(t, err)
	svc := catalog.NewService(repo)
	_, err = svc.AddProduct(catalog.ProductInput{
		Name:        "Muesli",
		Brand:       "Acme",
		Description: "toasted oats",
		Price:       "3.20",
		MemberPrice: "3.00",
		Quantity:    "5",
		Category:    "groceries",
		IsFood:      true,
		Expiry:      "2026-12-01",
	})
	require.NoError(t, err)
	return dir, repo
}

func runShell(t *testing.T, dir string, repo catalog.Repository, script string) string {
	t.Helper()
	var out bytes.Buffer
	catalogSvc := catalog.NewService(repo)
	authSvc := auth.NewService(nil, dir)
	ledger := cart.NewLedger(catalog.NewLedgerAdapter(repo))
	require.NoError(t, ledger.Reload())

	sh := shell.New(nil, strings.NewReader(script), &out, catalogSvc, authSvc, ledger)
	require.NoError(t, sh.Run())
	return out.String()
}

func TestCustomerShopsAndChecksOut(t *testing.T) {
	dir, repo := seedShop(t)

	script := strings.Join([]string{
		"1",                         // Login
		"member@student.monash.edu", // email
		"Monash1234",                // password
		"3",                         // go to shopping cart
		"1",                         // add a product to your cart
		"1",                         // product ID
		"99",                        // quantity beyond stock
		"2",                         // corrected quantity
		"2",                         // view your cart
		"3",                         // proceed to checkout
		"2",                         // pickup
		"4",                         // return to Main Menu
		"4",                         // log out
		"2",                         // Exit
	}, "\n") + "\n"

	out := runShell(t, dir, repo, script)

	require.Contains(t, out, "Logged in as customer.")
	require.Contains(t, out, "Mona Member (member@student.monash.edu)")
	require.Contains(t, out, "Error: Muesli is low on stock. Only 5 available.")
	require.Contains(t, out, "Added 2 of Muesli to the cart.")
	require.Contains(t, out, "2 x Muesli at $3.20 each (Total: $6.40)")
	require.Contains(t, out, "Total due: $6.40")
	require.Contains(t, out, "Your order will be ready for pickup at the store.")
	require.Contains(t, out, "Checkout complete. Thank you for your purchase!")

	// Checkout persisted the decremented quantity.
	rows, err := repo.ReadProducts()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "3", rows[0]["product_quantity"])
}

func TestCheckoutWithEmptyCartLeavesStorageAlone(t *testing.T) {
	dir, repo := seedShop(t)

	script := strings.Join([]string{
		"1",
		"member@student.monash.edu",
		"Monash1234",
		"3", // go to shopping cart
		"3", // proceed to checkout with nothing in the cart
		"4", // return to Main Menu
		"4", // log out
		"2", // Exit
	}, "\n") + "\n"

	out := runShell(t, dir, repo, script)
	require.Contains(t, out, "Your cart is empty. Please add some products before checking out.")

	rows, err := repo.ReadProducts()
	require.NoError(t, err)
	require.Equal(t, "5", rows[0]["product_quantity"])
}

func TestAdminAddsCategoryAndSubcategory(t *testing.T) {
	dir, repo := seedShop(t)

	script := strings.Join([]string{
		"1",
		"admin@merchant.monash.edu",
		"12345678",
		"3",       // add a new category
		"Bakery",  // category name
		"3",       // add a new category again
		"Bakery",  // duplicate
		"4",       // add a new subcategory
		"Pastry",  // subcategory name
		"5",       // log out
		"2",       // Exit
	}, "\n") + "\n"

	out := runShell(t, dir, repo, script)
	require.Contains(t, out, "Logged in as administrator.")
	require.Contains(t, out, "Successfully added category: Bakery")
	require.Contains(t, out, "Category already exists!!")
	require.Contains(t, out, "Successfully added sub-category: Pastry")

	rows, err := repo.ReadCategories()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "1", rows[0]["category_id"])
}

func TestFailedLoginReturnsToWelcome(t *testing.T) {
	dir, repo := seedShop(t)

	script := strings.Join([]string{
		"1",
		"nobody@nowhere.test",
		"x",
		"2", // Exit
	}, "\n") + "\n"

	out := runShell(t, dir, repo, script)
	require.Contains(t, out, "Login failed")
	require.Contains(t, out, "Invalid email or password")
}
