package inventory

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrStockMovementIsNotConstructed is returned when validating a zero-value
// StockMovement.
var ErrStockMovementIsNotConstructed = errors.New(
	"StockMovement must be created via NewStockMovement constructor")

// MovementType classifies a stock ledger entry.
type MovementType int

const (
	// MovementUnknown represents an invalid or undefined movement type.
	MovementUnknown MovementType = iota

	// MovementReceived records stock entering the warehouse.
	MovementReceived

	// MovementReserved records a provisional hold for an order.
	MovementReserved

	// MovementReleased records a reservation being given back.
	MovementReleased

	// MovementShipped records on-hand stock leaving the warehouse.
	MovementShipped

	// MovementAdjusted records a manual stock correction.
	MovementAdjusted
)

func getMovementTypeStrings() map[MovementType]string {
	return map[MovementType]string{
		MovementUnknown:  "Unknown",
		MovementReceived: "Received",
		MovementReserved: "Reserved",
		MovementReleased: "Released",
		MovementShipped:  "Shipped",
		MovementAdjusted: "Adjusted",
	}
}

// Validate checks the MovementType is one of the defined values.
func (t MovementType) Validate() error {
	if t < MovementReceived || t > MovementAdjusted {
		return errs.NewValueIsInvalidError("movementType")
	}
	return nil
}

// String implements fmt.Stringer.
func (t MovementType) String() string {
	if str, ok := getMovementTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// StockMovement is one immutable entry in an inventory record's append-only
// ledger. Every mutation of the counters appends exactly one movement; a
// movement is never changed or removed once recorded.
type StockMovement struct {
	id           kernel.UUID
	movementType MovementType
	quantity     kernel.Quantity
	reason       string
	occurredAt   time.Time

	guard guard.ConstructorGuard
}

// NewStockMovement creates a ledger entry stamped with the current time.
func NewStockMovement(
	movementType MovementType,
	quantity kernel.Quantity,
	reason string,
) (StockMovement, error) {
	return RestoreStockMovement(kernel.NewUUID(), movementType, quantity, reason, time.Now())
}

// RestoreStockMovement reconstructs a ledger entry from persistence.
func RestoreStockMovement(
	id kernel.UUID,
	movementType MovementType,
	quantity kernel.Quantity,
	reason string,
	occurredAt time.Time,
) (StockMovement, error) {
	if err := id.Validate(); err != nil {
		return StockMovement{}, err
	}
	if err := movementType.Validate(); err != nil {
		return StockMovement{}, err
	}
	if err := quantity.Validate(); err != nil {
		return StockMovement{}, err
	}
	if strings.TrimSpace(reason) == "" {
		return StockMovement{}, errs.NewValueIsRequiredError("reason")
	}

	return StockMovement{
		id:           id,
		movementType: movementType,
		quantity:     quantity,
		reason:       reason,
		occurredAt:   occurredAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// ID returns the movement's unique identifier.
func (m StockMovement) ID() kernel.UUID {
	return m.id
}

// Type returns the movement classification.
func (m StockMovement) Type() MovementType {
	return m.movementType
}

// Quantity returns the moved quantity.
func (m StockMovement) Quantity() kernel.Quantity {
	return m.quantity
}

// Reason returns the recorded reason.
func (m StockMovement) Reason() string {
	return m.reason
}

// OccurredAt returns the recording timestamp.
func (m StockMovement) OccurredAt() time.Time {
	return m.occurredAt
}

// Validate checks the movement was created via a constructor.
func (m StockMovement) Validate() error {
	return m.guard.Validate(ErrStockMovementIsNotConstructed)
}
