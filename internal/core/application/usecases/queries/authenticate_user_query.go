package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery checks a set of credentials against the stored
// account and, on success, yields the identity the API layer mints a
// token for.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a credentials check for the given
// email and password.
func NewAuthenticateUserQuery(email string, password string) (AuthenticateUserQuery, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the query was properly constructed.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the email the credentials belong to.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}
