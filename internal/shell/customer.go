package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/monash-merchant/merchant/internal/auth"
	"github.com/monash-merchant/merchant/internal/cart"
)

// customerLoop dispatches the customer menu. The product ledger is
// reloaded once per session so admin edits from earlier sessions are
// visible; the cart lives for the session only. Returns false when
// input ended and the whole shell should stop.
func (s *Shell) customerLoop(user *auth.User) bool {
	if err := s.ledger.Reload(); err != nil {
		s.logger.Error("reload ledger", "error", err)
		fmt.Fprintln(s.out, "Could not load products.")
		return true
	}
	s.cart = cart.New(s.logger, s.ledger)

	title := fmt.Sprintf("%s %s (%s)\nWelcome to Monash Merchant supermarket",
		user.Profile.FirstName, user.Profile.LastName, user.Email)

	for {
		action, ok := OptionsScreen{
			Title: title,
			Options: []string{
				"go to Account Management",
				"go to Products",
				"go to shopping cart",
				"log out",
			},
		}.Display(s.prompter)
		if !ok {
			return false
		}

		switch action {
		case "log out":
			return true
		case "go to Account Management":
			// Not available yet.
			continue
		case "go to Products":
			s.displayShelf()
		case "go to shopping cart":
			if !s.shoppingLoop() {
				return false
			}
		}
	}
}

// displayShelf prints the customer view of the shelf from the ledger.
func (s *Shell) displayShelf() {
	fmt.Fprintln(s.out, "\nAvailable Products:")
	for _, p := range s.ledger.Products() {
		fmt.Fprintf(s.out, "%d. %s - Brand: %s - Description: %s - Price: %s - Available: %d\n",
			p.ID, p.Name, p.Brand, p.Description, s.price(p.Price), p.Quantity)
	}
}

// shoppingLoop runs the cart menu: add, view, checkout, return.
func (s *Shell) shoppingLoop() bool {
	for {
		s.displayShelf()
		action, ok := OptionsScreen{
			Title: "Shopping cart",
			Options: []string{
				"add a product to your cart",
				"view your cart",
				"proceed to checkout",
				"return to Main Menu",
			},
		}.Display(s.prompter)
		if !ok {
			return false
		}

		switch action {
		case "return to Main Menu":
			return true
		case "add a product to your cart":
			if !s.addToCartFlow() {
				return false
			}
		case "view your cart":
			s.viewCart()
		case "proceed to checkout":
			if !s.checkoutFlow() {
				return false
			}
		}
	}
}

func (s *Shell) askInt(prompt, rejection string) (int64, bool) {
	for {
		raw, ok := s.prompter.Ask(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			fmt.Fprintln(s.out, rejection)
			continue
		}
		return n, true
	}
}

// addToCartFlow collects a product id and quantity, then drives the
// reservation retry loop: on a shortfall the customer is asked for a
// replacement quantity until the reservation fits.
func (s *Shell) addToCartFlow() bool {
	productID, ok := s.askInt("\nEnter the product ID: ",
		"Invalid input. Please enter a valid integer for the product ID.")
	if !ok {
		return false
	}
	quantity64, ok := s.askInt("Enter the quantity: ",
		"Invalid input. Please enter a valid integer for the quantity.")
	if !ok {
		return false
	}
	quantity := int(quantity64)

	product := s.ledger.Find(productID)
	if product == nil {
		fmt.Fprintln(s.out, "Product not found.")
		return true
	}

	for {
		err := s.cart.Reserve(productID, quantity)
		if err == nil {
			fmt.Fprintf(s.out, "\nAdded %d of %s to the cart.\n", quantity, product.Name)
			return true
		}
		if errors.Is(err, cart.ErrNonPositiveQuantity) {
			// Matches the store behavior: nothing added, nothing said.
			return true
		}
		shortfall, ok := cart.IsShortfall(err)
		if !ok {
			s.logger.Error("reserve", "error", err)
			return true
		}

		fmt.Fprintf(s.out, "Error: %s is low on stock. Only %d available.\n",
			shortfall.Name, shortfall.Available)
		for {
			raw, asked := s.prompter.Ask(fmt.Sprintf("Please enter a new quantity (available: %d): ", shortfall.Available))
			if !asked {
				return false
			}
			n, perr := cart.ParseQuantity(raw)
			if perr != nil {
				if !errors.Is(perr, cart.ErrNonPositiveQuantity) {
					fmt.Fprintln(s.out, "Invalid input. Please enter a valid integer for the quantity.")
				}
				continue
			}
			quantity = n
			break
		}
	}
}

func (s *Shell) viewCart() {
	if s.cart.Empty() {
		fmt.Fprintln(s.out, "Your cart is empty.")
		return
	}
	fmt.Fprintln(s.out, "\nCart Contents:")
	for _, summary := range s.cart.Aggregate() {
		fmt.Fprintf(s.out, "%d x %s at %s each (Total: %s)\n",
			summary.Quantity, summary.Name, s.price(summary.UnitPrice), s.price(summary.TotalPrice))
	}
	fmt.Fprintf(s.out, "Total due: %s\n", s.price(s.cart.Total()))
}

// checkoutFlow collects the fulfilment choice and closes the sale.
func (s *Shell) checkoutFlow() bool {
	if s.cart.Empty() {
		fmt.Fprintln(s.out, "Your cart is empty. Please add some products before checking out.")
		return true
	}
	s.viewCart()

	req := cart.CheckoutRequest{}
	for {
		fmt.Fprintln(s.out, "\nChoose an option to receive your order:")
		fmt.Fprintln(s.out, "1. Delivery")
		fmt.Fprintln(s.out, "2. Pickup")
		raw, ok := s.prompter.Ask("Enter your choice (1 for Delivery, 2 for Pickup): ")
		if !ok {
			return false
		}
		switch strings.TrimSpace(raw) {
		case "1":
			fmt.Fprintln(s.out, "\nYou have selected Delivery.")
			address, ok := s.prompter.Ask("Please enter your delivery address: ")
			if !ok {
				return false
			}
			req.Fulfilment = cart.FulfilmentDelivery
			req.Address = address
			fmt.Fprintf(s.out, "Your order will be delivered to: %s\n", address)
		case "2":
			fmt.Fprintln(s.out, "\nYou have selected Pickup.")
			fmt.Fprintln(s.out, "Your order will be ready for pickup at the store.")
			req.Fulfilment = cart.FulfilmentPickup
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1 or 2.")
			continue
		}
		break
	}

	receipt, err := s.cart.Checkout(req)
	if err != nil {
		if errors.Is(err, cart.ErrEmptyCart) {
			fmt.Fprintln(s.out, "Your cart is empty. Please add some products before checking out.")
			return true
		}
		s.logger.Error("checkout", "error", err)
		fmt.Fprintln(s.out, "Checkout failed. Please try again.")
		return true
	}

	fmt.Fprintln(s.out, "\nProduct quantities updated.")
	fmt.Fprintf(s.out, "\nCheckout complete. Thank you for your purchase!\nOrder reference: %s\n", receipt.Reference)
	return true
}
