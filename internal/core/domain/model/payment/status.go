package payment

import (
	"storefront/internal/pkg/errs"
)

// Status represents the state of a payment in its lifecycle.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the payment was created and awaits gateway
	// authorization.
	StatusPending

	// StatusAuthorized means the gateway approved the payment.
	StatusAuthorized

	// StatusCaptured means the authorized funds were collected.
	StatusCaptured

	// StatusFailed means the gateway declined the payment or a later step
	// failed.
	StatusFailed

	// StatusRefunded means captured funds were returned to the customer.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusAuthorized: "Authorized",
		StatusCaptured:   "Captured",
		StatusFailed:     "Failed",
		StatusRefunded:   "Refunded",
	}
}

// Authorize transitions the payment to Authorized. The gateway answer is
// accepted from any state; the workflow only authorizes pending payments.
func (s Status) Authorize() (Status, error) {
	return StatusAuthorized, nil
}

// Capture transitions Authorized to Captured.
func (s Status) Capture() (Status, error) {
	if s != StatusAuthorized {
		return StatusUnknown, newTransitionError("capture", s)
	}
	return StatusCaptured, nil
}

// Fail transitions any non-terminal status to Failed.
func (s Status) Fail() (Status, error) {
	if s == StatusCaptured || s == StatusRefunded {
		return StatusUnknown, newTransitionError("fail", s)
	}
	return StatusFailed, nil
}

// Refund transitions Captured to Refunded.
func (s Status) Refund() (Status, error) {
	if s != StatusCaptured {
		return StatusUnknown, newTransitionError("refund", s)
	}
	return StatusRefunded, nil
}

// Validate checks the Status is one of the defined values.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusRefunded {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func newTransitionError(operation string, status Status) error {
	return errs.NewInvalidStateError(operation, status.String())
}
