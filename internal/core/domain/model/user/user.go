package user

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// NameMaxLength bounds a user's display name.
	NameMaxLength = 200
	// EmailMaxLength bounds a user's email address.
	EmailMaxLength = 320
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when using an improperly
	// initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")
	// ErrVehicleIsRequired is returned when creating a driver without a
	// vehicle identifier.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrLicenseIsRequired is returned when creating a driver without a
	// license identifier.
	ErrLicenseIsRequired = errs.NewValueIsRequiredError("license")
)

// Position is a driver's last reported geographic position.
// Unlike kernel.Location it carries no address, only coordinates and the
// moment they were recorded.
type Position struct {
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}

// Validate checks the position coordinates against geographic bounds.
func (p Position) Validate() error {
	if p.Latitude < kernel.LatitudeMin || p.Latitude > kernel.LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", p.Latitude, kernel.LatitudeMin, kernel.LatitudeMax)
	}
	if p.Longitude < kernel.LongitudeMin || p.Longitude > kernel.LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", p.Longitude, kernel.LongitudeMin, kernel.LongitudeMax)
	}
	return nil
}

// User represents a marketplace identity. It is an aggregate root covering
// all three roles: admins, drivers, and customers.
//
// Business rules:
//   - Must have a valid UUID, non-empty name and email, and a password hash
//   - Role and account status must be defined values
//   - Driver-role users must carry non-empty vehicle and license identifiers
//   - Only active users may authenticate or act on orders
//
// The credential hash is opaque to the aggregate: hashing and verification
// live in the authentication service, the aggregate only stores the result.
type User struct {
	// id uniquely identifies the user
	id kernel.UUID
	// name is the human-readable display name
	name string
	// email is the unique login identifier
	email string
	// passwordHash is the bcrypt hash of the user's password
	passwordHash string
	// role determines what the user may do
	role Role
	// status determines whether the user may act at all
	status AccountStatus
	// vehicle and license identify the driver's vehicle (driver role only)
	vehicle string
	license string
	// position is the last reported location (drivers, optional)
	position *Position
	// profileImageURL points at the stored profile image, if any
	profileImageURL string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the user was created via a constructor
	isConstructed bool
}

// NewUser creates a new User with validation. New accounts start active:
// the marketplace activates customers and drivers on registration and relies
// on suspension for moderation.
//
// Parameters:
//   - id: unique identifier (must be valid UUID)
//   - name: display name (non-empty, bounded)
//   - email: login identifier (non-empty, bounded)
//   - passwordHash: bcrypt hash of the password (non-empty)
//   - role: admin, driver, or customer
//   - vehicle, license: required non-empty for drivers, must be empty otherwise
//
// Returns:
//   - *User: the created user if all validations pass
//   - error: validation error if any parameter is invalid
func NewUser(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	vehicle string,
	license string,
) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
		user.setVehicle(role, vehicle, license),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage,
// including account status, driver credentials, last position, and
// profile image.
func RestoreUser(
	id kernel.UUID,
	name string,
	email string,
	passwordHash string,
	role Role,
	status AccountStatus,
	vehicle string,
	license string,
	position *Position,
	profileImageURL string,
	createdAt time.Time,
	updatedAt time.Time,
) (*User, error) {
	user := &User{
		profileImageURL: profileImageURL,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		user.setRole(role),
		user.setVehicle(role, vehicle, license),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if position != nil {
		if err := position.Validate(); err != nil {
			return nil, err
		}
		p := *position
		user.position = &p
	}

	user.status = status
	return user, nil
}

// Validate ensures the User instance was properly constructed through a
// factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the login identifier.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Status returns the account status.
func (u *User) Status() AccountStatus {
	return u.status
}

// Vehicle returns the driver's vehicle identifier (empty for non-drivers).
func (u *User) Vehicle() string {
	return u.vehicle
}

// License returns the driver's license identifier (empty for non-drivers).
func (u *User) License() string {
	return u.license
}

// Position returns the last reported position, or nil if never reported.
func (u *User) Position() *Position {
	return u.position
}

// ProfileImageURL returns the stored profile image URL, or empty.
func (u *User) ProfileImageURL() string {
	return u.profileImageURL
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// UpdatedAt returns when the account was last mutated.
func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// IsActive reports whether the account may authenticate and act.
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// SetStatus changes the account status. Restricting this operation to
// admins is the caller's responsibility.
func (u *User) SetStatus(status AccountStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	u.touch()
	return nil
}

// ReportPosition records the user's current coordinates. Used by driver
// clients during active deliveries.
func (u *User) ReportPosition(latitude float64, longitude float64, at time.Time) error {
	position := Position{Latitude: latitude, Longitude: longitude, RecordedAt: at}
	if err := position.Validate(); err != nil {
		return err
	}
	u.position = &position
	u.touch()
	return nil
}

// SetProfileImageURL stores the public URL of an uploaded profile image.
func (u *User) SetProfileImageURL(url string) {
	u.profileImageURL = url
	u.touch()
}

// ClearProfileImage removes the stored profile image reference.
func (u *User) ClearProfileImage() {
	u.profileImageURL = ""
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, NameMaxLength)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > EmailMaxLength {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 1, EmailMaxLength)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// setVehicle enforces the driver invariant: drivers must carry non-empty
// vehicle and license identifiers, other roles must not carry them.
func (u *User) setVehicle(role Role, vehicle string, license string) error {
	if role == RoleDriver {
		if vehicle == "" {
			return ErrVehicleIsRequired
		}
		if license == "" {
			return ErrLicenseIsRequired
		}
		u.vehicle = vehicle
		u.license = license
		return nil
	}

	if vehicle != "" || license != "" {
		return errs.NewValueIsInvalidErrorWithCause("vehicle",
			errors.New(role.String()+" cannot carry vehicle or license identifiers"))
	}
	return nil
}
