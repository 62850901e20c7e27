package inventory

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrInventoryIsNotConstructed is returned when validating a zero-value
// Inventory.
var ErrInventoryIsNotConstructed = errors.New(
	"Inventory must be created via NewInventory constructor")

// Movement reasons recorded in the ledger.
const (
	ReasonInitialStock     = "Initial stock"
	ReasonOrderReservation = "Order reservation"
	ReasonOrderCancelled   = "Order cancellation"
	ReasonOrderShipped     = "Order shipped"
)

// DefaultReorderThreshold is applied when no threshold is supplied at
// initialization.
const DefaultReorderThreshold = 10

// Inventory tracks stock for a single product. quantityOnHand counts units
// physically in the warehouse and reservedQuantity counts the part of those
// units that is held for placed orders, so 0 <= reserved <= onHand always
// holds. Every change to the counters appends a StockMovement.
type Inventory struct {
	id               kernel.UUID
	productID        kernel.UUID
	quantityOnHand   kernel.Quantity
	reservedQuantity kernel.Quantity
	reorderThreshold kernel.Quantity
	movements        []StockMovement

	isConstructed bool
}

// NewInventory creates an inventory record for a product with its initial
// stock and records the opening movement.
func NewInventory(
	id kernel.UUID,
	productID kernel.UUID,
	initialQuantity kernel.Quantity,
	reorderThreshold kernel.Quantity,
) (*Inventory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if err := initialQuantity.Validate(); err != nil {
		return nil, err
	}
	if err := reorderThreshold.Validate(); err != nil {
		return nil, err
	}

	zero, err := kernel.NewQuantity(0)
	if err != nil {
		return nil, err
	}

	inv := &Inventory{
		id:               id,
		productID:        productID,
		quantityOnHand:   initialQuantity,
		reservedQuantity: zero,
		reorderThreshold: reorderThreshold,
		isConstructed:    true,
	}

	if initialQuantity.Value() > 0 {
		if err := inv.appendMovement(MovementReceived, initialQuantity, ReasonInitialStock); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

// RestoreInventory reconstructs an inventory record from persistence together
// with its movement history.
func RestoreInventory(
	id kernel.UUID,
	productID kernel.UUID,
	quantityOnHand kernel.Quantity,
	reservedQuantity kernel.Quantity,
	reorderThreshold kernel.Quantity,
	movements []StockMovement,
) (*Inventory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if err := quantityOnHand.Validate(); err != nil {
		return nil, err
	}
	if err := reservedQuantity.Validate(); err != nil {
		return nil, err
	}
	if err := reorderThreshold.Validate(); err != nil {
		return nil, err
	}
	if reservedQuantity.Value() > quantityOnHand.Value() {
		return nil, errs.NewValueIsInvalidError("reservedQuantity")
	}
	for _, m := range movements {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}

	return &Inventory{
		id:               id,
		productID:        productID,
		quantityOnHand:   quantityOnHand,
		reservedQuantity: reservedQuantity,
		reorderThreshold: reorderThreshold,
		movements:        movements,
		isConstructed:    true,
	}, nil
}

// ID returns the inventory record's unique identifier.
func (i *Inventory) ID() kernel.UUID {
	return i.id
}

// ProductID returns the product this record tracks.
func (i *Inventory) ProductID() kernel.UUID {
	return i.productID
}

// QuantityOnHand returns the units physically in stock.
func (i *Inventory) QuantityOnHand() kernel.Quantity {
	return i.quantityOnHand
}

// ReservedQuantity returns the units held for placed orders.
func (i *Inventory) ReservedQuantity() kernel.Quantity {
	return i.reservedQuantity
}

// ReorderThreshold returns the level below which the product needs reordering.
func (i *Inventory) ReorderThreshold() kernel.Quantity {
	return i.reorderThreshold
}

// Movements returns the append-only ledger in recording order.
func (i *Inventory) Movements() []StockMovement {
	return i.movements
}

// AvailableQuantity returns on-hand stock not held by reservations.
func (i *Inventory) AvailableQuantity() kernel.Quantity {
	qty, _ := kernel.NewQuantity(i.quantityOnHand.Value() - i.reservedQuantity.Value())
	return qty
}

// NeedsReorder reports whether available stock has fallen to the reorder
// threshold or below.
func (i *Inventory) NeedsReorder() bool {
	return i.AvailableQuantity().Value() <= i.reorderThreshold.Value()
}

// Reserve places a hold on available stock for an order. It fails when fewer
// units are available than requested.
func (i *Inventory) Reserve(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.Value() == 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	available := i.AvailableQuantity()
	if quantity.Value() > available.Value() {
		return errs.NewInsufficientStockError(
			i.productID.String(), quantity.Value(), available.Value())
	}

	reserved, err := kernel.NewQuantity(i.reservedQuantity.Value() + quantity.Value())
	if err != nil {
		return err
	}
	i.reservedQuantity = reserved
	return i.appendMovement(MovementReserved, quantity, ReasonOrderReservation)
}

// Release gives back a reservation, for example when an order is cancelled.
// The reserved counter never goes below zero even if the release is larger
// than the current hold.
func (i *Inventory) Release(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.Value() == 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	remaining := i.reservedQuantity.Value() - quantity.Value()
	if remaining < 0 {
		remaining = 0
	}
	reserved, err := kernel.NewQuantity(remaining)
	if err != nil {
		return err
	}
	i.reservedQuantity = reserved
	return i.appendMovement(MovementReleased, quantity, ReasonOrderCancelled)
}

// Ship removes reserved units from the warehouse when an order leaves. Both
// counters decrease; the reserved counter is clamped at zero.
func (i *Inventory) Ship(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	if quantity.Value() == 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if quantity.Value() > i.quantityOnHand.Value() {
		return errs.NewInsufficientStockError(
			i.productID.String(), quantity.Value(), i.quantityOnHand.Value())
	}

	onHand, err := kernel.NewQuantity(i.quantityOnHand.Value() - quantity.Value())
	if err != nil {
		return err
	}
	remaining := i.reservedQuantity.Value() - quantity.Value()
	if remaining < 0 {
		remaining = 0
	}
	reserved, err := kernel.NewQuantity(remaining)
	if err != nil {
		return err
	}

	i.quantityOnHand = onHand
	i.reservedQuantity = reserved
	return i.appendMovement(MovementShipped, quantity, ReasonOrderShipped)
}

// Adjust applies a manual stock correction of the on-hand counter. delta may
// be negative; the result must stay at or above the reserved counter.
func (i *Inventory) Adjust(delta int, reason string) error {
	if delta == 0 {
		return errs.NewValueIsInvalidError("delta")
	}

	newOnHand := i.quantityOnHand.Value() + delta
	if newOnHand < i.reservedQuantity.Value() {
		return errs.NewValueIsInvalidError("delta")
	}
	onHand, err := kernel.NewQuantity(newOnHand)
	if err != nil {
		return err
	}

	moved := delta
	if moved < 0 {
		moved = -moved
	}
	movedQty, err := kernel.NewQuantity(moved)
	if err != nil {
		return err
	}

	i.quantityOnHand = onHand
	return i.appendMovement(MovementAdjusted, movedQty, reason)
}

// Validate checks the inventory record was created via a constructor.
func (i *Inventory) Validate() error {
	if !i.isConstructed {
		return ErrInventoryIsNotConstructed
	}
	return nil
}

func (i *Inventory) appendMovement(
	movementType MovementType,
	quantity kernel.Quantity,
	reason string,
) error {
	movement, err := NewStockMovement(movementType, quantity, reason)
	if err != nil {
		return err
	}
	i.movements = append(i.movements, movement)
	return nil
}
