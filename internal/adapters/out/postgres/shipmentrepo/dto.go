// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. This package implements the repository pattern for the
// shipment domain aggregate, handling the conversion between domain entities
// and database representations.
package shipmentrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The destination address is embedded; it is mandatory at creation time.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Carrier        string    `gorm:"type:varchar(64);not null"`
	Status         int       `gorm:"type:int;not null;index"`
	ShippingCost   decimal.Decimal
	Currency       string `gorm:"type:varchar(3);not null"`
	Street         string `gorm:"type:varchar(255);not null"`
	City           string `gorm:"type:varchar(255);not null"`
	ZipCode        string `gorm:"type:varchar(32);not null"`
	Country        string `gorm:"type:varchar(64);not null"`
	PickedUpAt     *time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	ReturnedAt     *time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	destination := aggregate.Destination()

	return ShipmentDTO{
		ID:             aggregate.ID().Bytes(),
		TrackingNumber: aggregate.TrackingNumber(),
		OrderID:        aggregate.OrderID().Bytes(),
		Carrier:        aggregate.Carrier(),
		Status:         int(aggregate.Status()),
		ShippingCost:   aggregate.ShippingCost().Amount(),
		Currency:       aggregate.ShippingCost().Currency(),
		Street:         destination.Street(),
		City:           destination.City(),
		ZipCode:        destination.ZipCode(),
		Country:        destination.Country(),
		PickedUpAt:     aggregate.PickedUpAt(),
		ShippedAt:      aggregate.ShippedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
		ReturnedAt:     aggregate.ReturnedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost, dto.Currency)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewAddress(dto.Street, dto.City, dto.ZipCode, dto.Country)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingNumber,
		orderID,
		dto.Carrier,
		shipment.Status(dto.Status),
		shippingCost,
		destination,
		dto.PickedUpAt,
		dto.ShippedAt,
		dto.DeliveredAt,
		dto.ReturnedAt,
	)
}
