package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus represents the independent lifecycle of monetary settlement
// for an order. Unlike DeliveryStatus it carries no ordering constraints:
// only admins may change it, and any defined value may be set at any time.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized PaymentStatus values.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial status: settlement has not happened yet.
	PaymentPending

	// PaymentPaid indicates settlement completed successfully.
	PaymentPaid

	// PaymentFailed indicates settlement was attempted and failed.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown: "unknown",
		PaymentPending: "pending",
		PaymentPaid:    "paid",
		PaymentFailed:  "failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending: "pending",
		PaymentPaid:    "paid",
		PaymentFailed:  "failed",
	}
}

// PaymentStatusFromString parses a wire representation into a PaymentStatus.
// Returns an error for anything outside the three defined values.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is one of the three defined
// statuses. PaymentUnknown (0) and any other values are invalid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire representation of the status: "pending", "paid",
// or "failed". Returns "unknown" for invalid values.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
