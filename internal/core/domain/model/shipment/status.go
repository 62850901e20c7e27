package shipment

import (
	"storefront/internal/pkg/errs"
)

// Status represents the state of a shipment in its lifecycle.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the shipment was created and awaits pickup.
	StatusPending

	// StatusPickedUp means the carrier collected the parcel.
	StatusPickedUp

	// StatusInTransit means the parcel is on its way to the customer.
	StatusInTransit

	// StatusDelivered means the parcel reached the customer.
	StatusDelivered

	// StatusReturned means the parcel came back to the warehouse.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusPickedUp:  "PickedUp",
		StatusInTransit: "InTransit",
		StatusDelivered: "Delivered",
		StatusReturned:  "Returned",
	}
}

// PickUp transitions Pending to PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != StatusPending {
		return StatusUnknown, newTransitionError("pick up", s)
	}
	return StatusPickedUp, nil
}

// Ship transitions Pending or PickedUp to InTransit.
func (s Status) Ship() (Status, error) {
	if s != StatusPending && s != StatusPickedUp {
		return StatusUnknown, newTransitionError("ship", s)
	}
	return StatusInTransit, nil
}

// MarkDelivered transitions InTransit to Delivered.
func (s Status) MarkDelivered() (Status, error) {
	if s != StatusInTransit {
		return StatusUnknown, newTransitionError("mark delivered", s)
	}
	return StatusDelivered, nil
}

// Return transitions InTransit or Delivered to Returned.
func (s Status) Return() (Status, error) {
	if s != StatusInTransit && s != StatusDelivered {
		return StatusUnknown, newTransitionError("return", s)
	}
	return StatusReturned, nil
}

// Validate checks the Status is one of the defined values.
func (s Status) Validate() error {
	if s < StatusPending || s > StatusReturned {
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
