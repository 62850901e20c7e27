// Package order contains the Order aggregate: line items, the order status
// machine, and total computation. The aggregate owns its own transitions;
// sequencing against inventory, payment, and shipment is the job of the
// application layer.
package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ErrOrderHasNoLines is returned when placing an order without any lines.
var ErrOrderHasNoLines = errors.New("cannot place an order with no lines")

func newTransitionError(operation string, current Status) error {
	return errs.NewInvalidStateError(operation, current.String())
}

// NewOrderNumber generates a human-readable order number of the form
// "ORD-XXXXXXXX".
func NewOrderNumber() string {
	return "ORD-" + strings.ToUpper(kernel.NewUUID().String()[:8])
}

// Order is the aggregate root for a customer order. It holds an ordered
// list of immutable line snapshots, a derived total recomputed from scratch
// on every line change, and one timestamp per lifecycle transition.
//
// Invariants:
//   - the total always equals the sum of the line totals in the order's currency
//   - lines are immutable once the order leaves Draft
//   - status transitions follow the machine documented on Status
type Order struct {
	id                 kernel.UUID
	orderNumber        string
	customerID         kernel.UUID
	currency           string
	lines              []OrderLine
	status             Status
	total              kernel.Money
	shippingAddress    *kernel.Address
	placedAt           *time.Time
	paidAt             *time.Time
	shippedAt          *time.Time
	deliveredAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason string

	isConstructed bool
}

// NewOrder creates an empty order in Draft status for the given customer.
// The currency fixes the unit for every line and for the total; lines in a
// different currency are rejected when added.
func NewOrder(id kernel.UUID, orderNumber string, customerID kernel.UUID, currency string) (*Order, error) {
	total, err := kernel.NewMoneyZero(currency)
	if err != nil {
		return nil, err
	}

	o := &Order{
		status:        Draft,
		currency:      total.Currency(),
		total:         total,
		isConstructed: true,
	}

	if err = errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The total is
// recomputed from the lines rather than trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	currency string,
	lines []OrderLine,
	status Status,
	shippingAddress *kernel.Address,
	placedAt, paidAt, shippedAt, deliveredAt, cancelledAt *time.Time,
	cancellationReason string,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, customerID, currency)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
	}
	o.lines = append(o.lines, lines...)
	if err = o.recalculateTotal(); err != nil {
		return nil, err
	}

	if shippingAddress != nil {
		if err = shippingAddress.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.shippingAddress = shippingAddress
	o.placedAt = placedAt
	o.paidAt = paidAt
	o.shippedAt = shippedAt
	o.deliveredAt = deliveredAt
	o.cancelledAt = cancelledAt
	o.cancellationReason = cancellationReason

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Currency returns the currency code shared by the total and every line.
func (o *Order) Currency() string {
	return o.currency
}

// Lines returns a copy of the order's line snapshots.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the derived order total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// ShippingAddress returns the address snapshot captured at placement,
// or nil for orders still in Draft.
func (o *Order) ShippingAddress() *kernel.Address {
	return o.shippingAddress
}

// PlacedAt returns the placement timestamp, or nil.
func (o *Order) PlacedAt() *time.Time {
	return o.placedAt
}

// PaidAt returns the payment timestamp, or nil.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// ShippedAt returns the shipping timestamp, or nil.
func (o *Order) ShippedAt() *time.Time {
	return o.shippedAt
}

// DeliveredAt returns the delivery timestamp, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the cancellation timestamp, or nil.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancellationReason returns the reason recorded at cancellation.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// AddLine appends a line snapshot and recomputes the total from scratch.
// Fails when the order is no longer in Draft or when the line's currency
// differs from the order's.
func (o *Order) AddLine(line OrderLine) error {
	if o.status != Draft {
		return newTransitionError("add line", o.status)
	}
	if err := line.Validate(); err != nil {
		return err
	}
	if line.UnitPrice().Currency() != o.currency {
		return errs.NewValueIsInvalidErrorWithCause("line currency",
			errors.New(line.UnitPrice().Currency()+" does not match order currency "+o.currency))
	}

	o.lines = append(o.lines, line)
	return o.recalculateTotal()
}

// Place transitions the order from Draft to Placed, capturing the shipping
// address snapshot and stamping placedAt. An order without lines cannot be
// placed.
func (o *Order) Place(shippingAddress kernel.Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	if len(o.lines) == 0 {
		return ErrOrderHasNoLines
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.shippingAddress = &shippingAddress
	o.placedAt = &now
	return nil
}

// MarkPaid transitions the order from Placed to Paid and stamps paidAt.
func (o *Order) MarkPaid() error {
	newStatus, err := o.status.MarkPaid()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.paidAt = &now
	return nil
}

// MarkShipped transitions the order from Paid to Shipped and stamps shippedAt.
func (o *Order) MarkShipped() error {
	newStatus, err := o.status.MarkShipped()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.shippedAt = &now
	return nil
}

// MarkDelivered transitions the order from Shipped to Delivered and stamps
// deliveredAt.
func (o *Order) MarkDelivered() error {
	newStatus, err := o.status.MarkDelivered()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel transitions the order to Cancelled, recording the reason. Orders
// that have shipped or been delivered cannot be cancelled.
func (o *Order) Cancel(reason string) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	now := time.Now()
	o.status = newStatus
	o.cancelledAt = &now
	o.cancellationReason = reason
	return nil
}

// recalculateTotal recomputes the total from scratch by summing line
// totals, avoiding incremental-accumulation drift.
func (o *Order) recalculateTotal() error {
	total, err := kernel.NewMoneyZero(o.currency)
	if err != nil {
		return err
	}

	for _, line := range o.lines {
		total, err = total.Add(line.LineTotal())
		if err != nil {
			return err
		}
	}

	o.total = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if strings.TrimSpace(orderNumber) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}
