package user

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// AccountStatus represents the standing of a user account.
// Only active users may authenticate or act on orders.
type AccountStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized AccountStatus values.
	StatusUnknown AccountStatus = iota

	// StatusActive accounts may authenticate and act.
	StatusActive

	// StatusInactive accounts are disabled, typically at the user's request.
	StatusInactive

	// StatusSuspended accounts were disabled administratively.
	StatusSuspended

	// StatusPending accounts await approval and cannot act yet.
	StatusPending
)

func getAccountStatusStrings() map[AccountStatus]string {
	return map[AccountStatus]string{
		StatusUnknown:   "unknown",
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusSuspended: "suspended",
		StatusPending:   "pending",
	}
}

func getValidAccountStatusStrings() map[AccountStatus]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[AccountStatus]string{
		StatusActive:    "active",
		StatusInactive:  "inactive",
		StatusSuspended: "suspended",
		StatusPending:   "pending",
	}
}

// AccountStatusFromString parses a wire representation into an AccountStatus.
func AccountStatusFromString(s string) (AccountStatus, error) {
	for status, str := range getValidAccountStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("account status",
		fmt.Errorf("%q is not a valid account status", s))
}

// Validate checks if the AccountStatus value is one of the four defined statuses.
func (s AccountStatus) Validate() error {
	if _, ok := getValidAccountStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("account status",
			fmt.Errorf("%d is not a valid account status", s))
	}
	return nil
}

// String returns the wire representation: "active", "inactive", "suspended",
// or "pending". Returns "unknown" for invalid values.
func (s AccountStatus) String() string {
	if str, ok := getAccountStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
