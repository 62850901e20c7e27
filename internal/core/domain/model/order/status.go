package order

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Draft --AddLine--> Draft
//	Draft --Place--> Placed
//	Placed --MarkPaid--> Paid
//	Paid --MarkShipped--> Shipped
//	Shipped --MarkDelivered--> Delivered
//	{Draft,Placed,Paid} --Cancel--> Cancelled
//
// Delivered and Cancelled are terminal. Orders that have shipped can no
// longer be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status. Lines may only be added while the
	// order is a draft.
	Draft

	// Placed indicates the order has been submitted with a shipping
	// address and its lines are frozen.
	Placed

	// Paid indicates payment for the order has been authorized.
	Paid

	// Shipped indicates the order's stock has left the warehouse.
	Shipped

	// Delivered is a terminal status: the shipment reached the customer.
	Delivered

	// Cancelled is a terminal status reachable from Draft, Placed, or Paid.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Placed:    "Placed",
		Paid:      "Paid",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks the Status is one of the defined values (Unknown excluded).
func (s Status) Validate() error {
	if s < Draft || s > Cancelled {
		return newTransitionError("validate", s)
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Place transitions Draft to Placed.
func (s Status) Place() (Status, error) {
	if s != Draft {
		return 0, newTransitionError("place", s)
	}
	return Placed, nil
}

// MarkPaid transitions Placed to Paid.
func (s Status) MarkPaid() (Status, error) {
	if s != Placed {
		return 0, newTransitionError("mark paid", s)
	}
	return Paid, nil
}

// MarkShipped transitions Paid to Shipped.
func (s Status) MarkShipped() (Status, error) {
	if s != Paid {
		return 0, newTransitionError("mark shipped", s)
	}
	return Shipped, nil
}

// MarkDelivered transitions Shipped to Delivered.
func (s Status) MarkDelivered() (Status, error) {
	if s != Shipped {
		return 0, newTransitionError("mark delivered", s)
	}
	return Delivered, nil
}

// Cancel transitions Draft, Placed, or Paid to Cancelled. Orders that have
// shipped cannot be cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Placed && s != Paid {
		return 0, newTransitionError("cancel", s)
	}
	return Cancelled, nil
}
