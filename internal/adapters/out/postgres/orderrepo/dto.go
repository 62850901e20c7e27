// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The monetary total is denormalized so the read side never recomputes it from
// lines. The shipping address columns are null until the order is placed.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber        string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Currency           string    `gorm:"type:varchar(3);not null"`
	Status             int       `gorm:"type:int;not null;index"`
	Total              decimal.Decimal
	Street             *string `gorm:"type:varchar(255)"`
	City               *string `gorm:"type:varchar(255)"`
	ZipCode            *string `gorm:"type:varchar(32)"`
	Country            *string `gorm:"type:varchar(64)"`
	PlacedAt           *time.Time
	PaidAt             *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string        `gorm:"type:varchar(255)"`
	Lines              []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one immutable order line row.
// Product name and unit price are snapshots taken at ordering time.
type OrderLineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:          line.ID().Bytes(),
			OrderID:     orderID,
			ProductID:   line.ProductID().Bytes(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity().Value(),
			UnitPrice:   line.UnitPrice().Amount(),
		})
	}

	dto := OrderDTO{
		ID:          orderID,
		OrderNumber: aggregate.OrderNumber(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Currency:    aggregate.Currency(),
		Status:      int(aggregate.Status()),
		Total:       aggregate.Total().Amount(),
		PlacedAt:    aggregate.PlacedAt(),
		PaidAt:      aggregate.PaidAt(),
		ShippedAt:   aggregate.ShippedAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		CancelledAt: aggregate.CancelledAt(),
		Lines:       lines,
	}

	if addr := aggregate.ShippingAddress(); addr != nil {
		street := addr.Street()
		city := addr.City()
		zipCode := addr.ZipCode()
		country := addr.Country()
		dto.Street = &street
		dto.City = &city
		dto.ZipCode = &zipCode
		dto.Country = &country
	}

	if reason := aggregate.CancellationReason(); reason != "" {
		dto.CancellationReason = &reason
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO, dto.Currency)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	var shippingAddress *kernel.Address
	if dto.Street != nil && dto.City != nil && dto.ZipCode != nil && dto.Country != nil {
		addr, addrErr := kernel.NewAddress(*dto.Street, *dto.City, *dto.ZipCode, *dto.Country)
		if addrErr != nil {
			return nil, addrErr
		}
		shippingAddress = &addr
	}

	var cancellationReason string
	if dto.CancellationReason != nil {
		cancellationReason = *dto.CancellationReason
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		dto.Currency,
		lines,
		order.Status(dto.Status),
		shippingAddress,
		dto.PlacedAt,
		dto.PaidAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.CancelledAt,
		cancellationReason,
	)
}

// lineToDomain converts an order line DTO to the domain value object.
func lineToDomain(dto OrderLineDTO, currency string) (order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderLine{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.OrderLine{}, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return order.OrderLine{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return order.OrderLine{}, err
	}

	return order.NewOrderLine(id, productID, dto.ProductName, quantity, unitPrice)
}
