// Package productrepo provides data transfer objects and mapping functions for
// product persistence. This package implements the repository pattern for the
// product domain aggregate, handling the conversion between domain entities
// and database representations.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       decimal.Decimal
	Currency    string `gorm:"type:varchar(3);not null"`
	SKU         string `gorm:"type:varchar(64);not null;uniqueIndex"`
	Category    string `gorm:"type:varchar(128);not null;index"`
	Active      bool   `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		Currency:    aggregate.Price().Currency(),
		SKU:         aggregate.SKU(),
		Category:    aggregate.Category(),
		Active:      aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price, dto.Currency)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.SKU,
		dto.Category,
		dto.Active,
	)
}
