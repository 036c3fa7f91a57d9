package auth

import (
	"fmt"
	"log/slog"

	"github.com/monash-merchant/merchant/internal/csvtable"
)

var userColumns = []string{"user_id", "role", "email", "password"}

var customerColumns = []string{
	"user_id", "first_name", "last_name", "date_of_birth",
	"gender", "mobile_number", "address", "fund", "membership",
}

// Service resolves credentials to a role-qualified identity against the
// users table.
type Service struct {
	logger  *slog.Logger
	dataDir string
}

// NewService constructs a Service reading tables under dataDir.
func NewService(logger *slog.Logger, dataDir string) *Service {
	return &Service{logger: logger, dataDir: dataDir}
}

// Login performs one exact-match lookup on email and password, both
// compared as stored, in plain text. Duplicate matches resolve to the
// first row in file order.
func (s *Service) Login(email, password string) (*User, error) {
	users, err := csvtable.Open("users", userColumns, s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("open users table: %w", err)
	}
	rows, err := users.Select(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoSuchUser
	}

	row := rows[0]
	user := &User{
		ID:       row["user_id"],
		Email:    row["email"],
		Password: row["password"],
	}

	switch Role(row["role"]) {
	case RoleCustomer:
		user.Role = RoleCustomer
		profile, err := s.loadProfile(user.ID)
		if err != nil {
			return nil, err
		}
		user.Profile = profile
	case RoleAdministrator:
		user.Role = RoleAdministrator
	default:
		if s.logger != nil {
			s.logger.Error("unrecognized role in users table",
				slog.String("role", row["role"]),
				slog.String("user_id", row["user_id"]))
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, row["role"])
	}
	return user, nil
}

// loadProfile joins the customer table on user_id. A missing profile
// row still yields a usable customer with every field empty.
func (s *Service) loadProfile(userID string) (*Profile, error) {
	table, err := csvtable.Open("customer", customerColumns, s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("open customer table: %w", err)
	}
	rows, err := table.Select(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("select customer: %w", err)
	}

	profile := &Profile{}
	if len(rows) > 0 {
		row := rows[0]
		profile.FirstName = row["first_name"]
		profile.LastName = row["last_name"]
		profile.DateOfBirth = row["date_of_birth"]
		profile.Gender = row["gender"]
		profile.MobileNumber = row["mobile_number"]
		profile.Address = row["address"]
		profile.Fund = row["fund"]
		profile.Membership = row["membership"]
	}
	return profile, nil
}
