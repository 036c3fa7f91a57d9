package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/monash-merchant/merchant/internal/auth"
	"github.com/monash-merchant/merchant/internal/cart"
	"github.com/monash-merchant/merchant/internal/catalog"
)

// Shell runs the interactive menu loops on top of the core services.
type Shell struct {
	logger   *slog.Logger
	prompter *Prompter
	out      io.Writer
	catalog  *catalog.Service
	auth     *auth.Service
	ledger   *cart.Ledger
	cart     *cart.Cart
	money    *message.Printer
}

// New constructs a Shell reading from in and writing to out. A fresh
// cart is built per customer session.
func New(logger *slog.Logger, in io.Reader, out io.Writer, catalogSvc *catalog.Service, authSvc *auth.Service, ledger *cart.Ledger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		logger:   logger,
		prompter: NewPrompter(in, out),
		out:      out,
		catalog:  catalogSvc,
		auth:     authSvc,
		ledger:   ledger,
		money:    message.NewPrinter(language.English),
	}
}

// Run drives the top-level loop until the user exits or input ends.
// Only storage failures and data-integrity failures propagate as
// errors; everything recoverable re-prompts.
func (s *Shell) Run() error {
	for {
		action, ok := OptionsScreen{
			Title:   "Welcome to Monash Merchant",
			Options: []string{"Login", "Exit"},
		}.Display(s.prompter)
		if !ok || action == "Exit" {
			return nil
		}

		user, ok, err := s.login()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if user == nil {
			fmt.Fprintln(s.out, "Invalid email or password")
			continue
		}

		switch user.Role {
		case auth.RoleAdministrator:
			if !s.adminLoop() {
				return nil
			}
		case auth.RoleCustomer:
			if !s.customerLoop(user) {
				return nil
			}
		}
	}
}

// login collects credentials and resolves them. A failed match returns
// a nil user; integrity and storage failures are returned as errors.
func (s *Shell) login() (*auth.User, bool, error) {
	answers, ok := QuestionnaireScreen{
		Title: "Login",
		Questions: []Question{
			{Label: "email", Validate: ValidEmail, Hint: "Please enter a valid email address."},
			{Label: "password"},
		},
	}.Display(s.prompter)
	if !ok {
		return nil, false, nil
	}

	user, err := s.auth.Login(answers["email"], answers["password"])
	if err != nil {
		if errors.Is(err, auth.ErrNoSuchUser) {
			fmt.Fprintln(s.out, "Login failed")
			return nil, true, nil
		}
		return nil, false, err
	}
	fmt.Fprintf(s.out, "Logged in as %s.\n", user.Role)
	return user, true, nil
}

func (s *Shell) price(amount decimal.Decimal) string {
	return s.money.Sprintf("$%.2f", amount.InexactFloat64())
}
