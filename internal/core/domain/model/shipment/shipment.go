package shipment

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when validating a zero-value
// Shipment.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment constructor")

// Shipment tracks one parcel for an order from warehouse to customer. The
// destination address is snapshotted from the order at creation time so later
// address changes never redirect a parcel already in flight.
type Shipment struct {
	id             kernel.UUID
	trackingNumber string
	orderID        kernel.UUID
	carrier        string
	status         Status
	shippingCost   kernel.Money
	destination    kernel.Address
	pickedUpAt     *time.Time
	shippedAt      *time.Time
	deliveredAt    *time.Time
	returnedAt     *time.Time

	isConstructed bool
}

// NewShipment creates a pending shipment for an order.
func NewShipment(
	id kernel.UUID,
	trackingNumber string,
	orderID kernel.UUID,
	carrier string,
	shippingCost kernel.Money,
	destination kernel.Address,
) (*Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(trackingNumber) == "" {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(carrier) == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}
	if err := shippingCost.Validate(); err != nil {
		return nil, err
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	return &Shipment{
		id:             id,
		trackingNumber: trackingNumber,
		orderID:        orderID,
		carrier:        carrier,
		status:         StatusPending,
		shippingCost:   shippingCost,
		destination:    destination,
		isConstructed:  true,
	}, nil
}

// RestoreShipment reconstructs a shipment from persistence.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber string,
	orderID kernel.UUID,
	carrier string,
	status Status,
	shippingCost kernel.Money,
	destination kernel.Address,
	pickedUpAt *time.Time,
	shippedAt *time.Time,
	deliveredAt *time.Time,
	returnedAt *time.Time,
) (*Shipment, error) {
	shipment, err := NewShipment(id, trackingNumber, orderID, carrier, shippingCost, destination)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	shipment.status = status
	shipment.pickedUpAt = pickedUpAt
	shipment.shippedAt = shippedAt
	shipment.deliveredAt = deliveredAt
	shipment.returnedAt = returnedAt
	return shipment, nil
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the customer-facing tracking code.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// OrderID returns the shipped order's identifier.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// Carrier returns the carrier handling the parcel.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// Status returns the shipment's current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// ShippingCost returns the charged shipping cost.
func (s *Shipment) ShippingCost() kernel.Money {
	return s.shippingCost
}

// Destination returns the delivery address snapshot.
func (s *Shipment) Destination() kernel.Address {
	return s.destination
}

// PickedUpAt returns when the carrier collected the parcel, nil before.
func (s *Shipment) PickedUpAt() *time.Time {
	return s.pickedUpAt
}

// ShippedAt returns when the parcel left the warehouse, nil before.
func (s *Shipment) ShippedAt() *time.Time {
	return s.shippedAt
}

// DeliveredAt returns when the parcel reached the customer, nil before.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// ReturnedAt returns when the parcel came back, nil unless returned.
func (s *Shipment) ReturnedAt() *time.Time {
	return s.returnedAt
}

// PickUp records the carrier collecting the parcel.
func (s *Shipment) PickUp() error {
	status, err := s.status.PickUp()
	if err != nil {
		return err
	}

	now := time.Now()
	s.status = status
	s.pickedUpAt = &now
	return nil
}

// Ship sends the parcel on its way.
func (s *Shipment) Ship() error {
	status, err := s.status.Ship()
	if err != nil {
		return err
	}

	now := time.Now()
	s.status = status
	s.shippedAt = &now
	return nil
}

// MarkDelivered records the parcel reaching the customer.
func (s *Shipment) MarkDelivered() error {
	status, err := s.status.MarkDelivered()
	if err != nil {
		return err
	}

	now := time.Now()
	s.status = status
	s.deliveredAt = &now
	return nil
}

// Return records the parcel coming back to the warehouse.
func (s *Shipment) Return() error {
	status, err := s.status.Return()
	if err != nil {
		return err
	}

	now := time.Now()
	s.status = status
	s.returnedAt = &now
	return nil
}

// Validate checks the shipment was created via a constructor.
func (s *Shipment) Validate() error {
	if !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// NewTrackingNumber generates a tracking code like TRACK-1A2B3C4D-5E.
func NewTrackingNumber() string {
	return "TRACK-" + strings.ToUpper(kernel.NewUUID().String()[:10])
}
