package kernel

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Geographic coordinate bounds for pickup and dropoff locations.
const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin float64 = -90
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax float64 = 90
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin float64 = -180
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax float64 = 180
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation to ensure
// the address and coordinates were validated.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location represents a validated geographic point with its street address.
// Location is an immutable value object: the address must be non-empty and
// the coordinates must lie within valid latitude/longitude bounds.
// The zero value of Location is invalid and will fail validation.
//
// Example:
//
//	loc, err := kernel.NewLocation("120 Broadway, New York", 40.0, -74.0)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc) // Output: 120 Broadway, New York (40.000000,-74.000000)
type Location struct { //nolint:recvcheck //using for validation
	address   string
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with the specified address and coordinates.
// The latitude must be within [LatitudeMin..LatitudeMax] and the longitude
// within [LongitudeMin..LongitudeMax]; the address must be non-empty.
//
// Parameters:
//   - address: human-readable street address (must be non-empty)
//   - latitude: degrees north, in [-90, 90]
//   - longitude: degrees east, in [-180, 180]
//
// Returns:
//   - Location: a valid location instance
//   - error: validation error if the address is empty or a coordinate is out of bounds
func NewLocation(address string, latitude float64, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed via NewLocation.
// The zero value of Location is invalid and fails this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Address returns the street address of the location.
func (l Location) Address() string {
	return l.address
}

// Latitude returns the latitude in degrees.
// Guaranteed to be within [-90, 90] for properly constructed instances.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in degrees.
// Guaranteed to be within [-180, 180] for properly constructed instances.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String returns a human-readable representation of the Location in the form
// "address (latitude,longitude)". Implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("%s (%f,%f)", l.address, l.latitude, l.longitude)
}

// IsEqual compares two locations for equality.
// Two locations are equal if they share the same address and coordinates.
// Both locations must be properly constructed for the comparison to succeed.
//
// Returns:
//   - bool: true if the locations are equal
//   - error: validation error if either location is improperly constructed
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// setAddress sets the address with validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers. These private setters enable self-encapsulated validation
// of business requirements during object construction.
func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	l.address = address
	return nil
}

// setLatitude sets the latitude with range validation.
func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}
