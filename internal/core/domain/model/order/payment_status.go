package order

import (
	"fmt"

	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"
)

// PaymentStatus tracks the verification state of an order's payment.
//
// Submission sets PaymentPendingVerification when a payment screenshot was
// provided and PaymentPending otherwise. Accepting an order marks the payment
// Verified; rejecting it marks the payment Failed. Delivery leaves the payment
// status untouched.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no payment proof was supplied with the order.
	PaymentPending

	// PaymentPendingVerification means a payment screenshot awaits review.
	PaymentPendingVerification

	// PaymentVerified means the administrator accepted the payment proof.
	PaymentVerified

	// PaymentFailed means the payment was not accepted and the order was cancelled.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:             "unknown",
		PaymentPending:             "pending",
		PaymentPendingVerification: "pending_verification",
		PaymentVerified:            "verified",
		PaymentFailed:              "failed",
	}
}

func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentPending:             "pending",
		PaymentPendingVerification: "pending_verification",
		PaymentVerified:            "verified",
		PaymentFailed:              "failed",
	}
}

// PaymentStatusFromString parses the persisted string form of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is valid.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the persisted, lowercase name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
