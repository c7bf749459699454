package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned when the email is unknown, the
// password does not match, or the account is not active. The cases are
// deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticatedUser is the identity established by a successful
// credentials check.
type AuthenticatedUser struct {
	ID    kernel.UUID
	Name  string
	Email string
	Role  user.Role
}

// AuthenticateUserQueryHandler verifies credentials against the users
// table.
type AuthenticateUserQueryHandler struct {
	db *gorm.DB
}

// NewAuthenticateUserQueryHandler creates a query handler.
func NewAuthenticateUserQueryHandler(db *gorm.DB) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{db: db}
}

// Handle executes the query.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticatedUser, error) {
	if err := query.Validate(); err != nil {
		return AuthenticatedUser{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, email, password_hash, role, status
		FROM users
		WHERE email = ?
	`, query.Email()).Rows()
	if err != nil {
		return AuthenticatedUser{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		return AuthenticatedUser{}, ErrInvalidCredentials
	}

	var (
		id                   uuid.UUID
		name, email          string
		passwordHash         string
		roleText, statusText string
	)
	if err = rows.Scan(&id, &name, &email, &passwordHash, &roleText, &statusText); err != nil {
		return AuthenticatedUser{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(query.Password())); err != nil {
		return AuthenticatedUser{}, ErrInvalidCredentials
	}

	status, err := user.AccountStatusFromString(statusText)
	if err != nil {
		return AuthenticatedUser{}, err
	}
	if status != user.StatusActive {
		return AuthenticatedUser{}, ErrInvalidCredentials
	}

	role, err := user.RoleFromString(roleText)
	if err != nil {
		return AuthenticatedUser{}, err
	}
	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AuthenticatedUser{}, err
	}

	return AuthenticatedUser{
		ID:    userID,
		Name:  name,
		Email: email,
		Role:  role,
	}, nil
}
