package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role represents the capability class of a marketplace identity.
// Every authenticated actor carries exactly one role, and the authorization
// policy keys its decisions on it.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin may read and mutate any order and manage users.
	RoleAdmin

	// RoleDriver delivers orders: may read assigned orders and update their
	// delivery status.
	RoleDriver

	// RoleCustomer places orders: may read and manage their own orders while
	// they are pending, and cancel them before completion.
	RoleCustomer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleAdmin:    "admin",
		RoleDriver:   "driver",
		RoleCustomer: "customer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:    "admin",
		RoleDriver:   "driver",
		RoleCustomer: "customer",
	}
}

// RoleFromString parses a wire representation into a Role.
// Returns an error for anything outside the three defined roles.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the three defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation: "admin", "driver", or "customer".
// Returns "unknown" for invalid values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
