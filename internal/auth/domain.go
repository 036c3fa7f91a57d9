package auth

import "errors"

// Role tags a user identity.
type Role string

const (
	// RoleCustomer marks a shopping customer.
	RoleCustomer Role = "customer"
	// RoleAdministrator marks a catalog administrator.
	RoleAdministrator Role = "administrator"
)

// Profile carries the customer-only payload joined from the customer
// table. Every field stays an empty string when no profile row exists.
type Profile struct {
	FirstName    string
	LastName     string
	DateOfBirth  string
	Gender       string
	MobileNumber string
	Address      string
	Fund         string
	Membership   string
}

// User is a role-tagged identity. Profile is non-nil only for the
// customer role.
type User struct {
	ID       string
	Role     Role
	Email    string
	Password string
	Profile  *Profile
}

// ErrNoSuchUser indicates no row matched the credentials. Callers print
// a generic login failure.
var ErrNoSuchUser = errors.New("auth: no such user")

// ErrInvalidRole indicates a role value outside the known set. This is
// corrupted or hand-edited data, not a bad login, and is surfaced
// rather than defaulted.
var ErrInvalidRole = errors.New("auth: invalid role")
