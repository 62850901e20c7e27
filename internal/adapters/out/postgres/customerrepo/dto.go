// Package customerrepo provides data transfer objects and mapping functions for
// customer persistence. This package implements the repository pattern for the
// customer domain aggregate, handling the conversion between domain entities
// and database representations.
package customerrepo

import (
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// The default address columns are null until the customer saves one.
type CustomerDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:varchar(255);not null"`
	LastName  string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(32)"`
	Street    *string   `gorm:"type:varchar(255)"`
	City      *string   `gorm:"type:varchar(255)"`
	ZipCode   *string   `gorm:"type:varchar(32)"`
	Country   *string   `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:        aggregate.ID().Bytes(),
		FirstName: aggregate.FirstName(),
		LastName:  aggregate.LastName(),
		Email:     aggregate.Email().Value(),
		Phone:     aggregate.Phone(),
	}

	if addr := aggregate.Address(); addr != nil {
		street := addr.Street()
		city := addr.City()
		zipCode := addr.ZipCode()
		country := addr.Country()
		dto.Street = &street
		dto.City = &city
		dto.ZipCode = &zipCode
		dto.Country = &country
	}

	return dto
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var address *kernel.Address
	if dto.Street != nil && dto.City != nil && dto.ZipCode != nil && dto.Country != nil {
		addr, addrErr := kernel.NewAddress(*dto.Street, *dto.City, *dto.ZipCode, *dto.Country)
		if addrErr != nil {
			return nil, addrErr
		}
		address = &addr
	}

	return customer.RestoreCustomer(id, dto.FirstName, dto.LastName, email, dto.Phone, address)
}
