package domain

import "errors"

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrWrongPassword      = errors.New("incorrect password")
	ErrEmailNotFound      = errors.New("email not found")
)

// Principal is the authenticated identity held by the session store.
// Exactly one principal is active per client at a time.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Credential is one entry in the static login table. The table is a mock
// credential store: it is never mutated at runtime and passwords are kept
// in the clear on purpose (real authentication is out of scope).
type Credential struct {
	Email    string
	Password string
	Name     string
	Role     Role
}

// MockCredentials is the built-in credential table used to validate login
// attempts when no external table is supplied.
var MockCredentials = []Credential{
	{Email: "admin@test.com", Password: "admin123", Name: "Admin User", Role: RoleAdmin},
	{Email: "manager@test.com", Password: "manager123", Name: "Manager User", Role: RoleManager},
	{Email: "user@test.com", Password: "user123", Name: "Normal User", Role: RoleUser},
}
