// Package paymentrepo provides data transfer objects and mapping functions for
// payment persistence. This package implements the repository pattern for the
// payment domain aggregate, handling the conversion between domain entities
// and database representations.
package paymentrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
// Lifecycle timestamps stay null until the payment reaches the matching status.
type PaymentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentReference string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount           decimal.Decimal
	Currency         string  `gorm:"type:varchar(3);not null"`
	PaymentMethod    string  `gorm:"type:varchar(64);not null"`
	Status           int     `gorm:"type:int;not null;index"`
	TransactionID    *string `gorm:"type:varchar(64)"`
	AuthorizedAt     *time.Time
	CapturedAt       *time.Time
	FailedAt         *time.Time
	RefundedAt       *time.Time
	FailureReason    *string `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for payment entities.
// Overrides GORM's default naming convention to use "payments".
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	dto := PaymentDTO{
		ID:               aggregate.ID().Bytes(),
		PaymentReference: aggregate.PaymentReference(),
		OrderID:          aggregate.OrderID().Bytes(),
		Amount:           aggregate.Amount().Amount(),
		Currency:         aggregate.Amount().Currency(),
		PaymentMethod:    aggregate.PaymentMethod(),
		Status:           int(aggregate.Status()),
		AuthorizedAt:     aggregate.AuthorizedAt(),
		CapturedAt:       aggregate.CapturedAt(),
		FailedAt:         aggregate.FailedAt(),
		RefundedAt:       aggregate.RefundedAt(),
	}

	if txn := aggregate.TransactionID(); txn != "" {
		dto.TransactionID = &txn
	}
	if reason := aggregate.FailureReason(); reason != "" {
		dto.FailureReason = &reason
	}

	return dto
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	var transactionID string
	if dto.TransactionID != nil {
		transactionID = *dto.TransactionID
	}

	var failureReason string
	if dto.FailureReason != nil {
		failureReason = *dto.FailureReason
	}

	return payment.RestorePayment(
		id,
		dto.PaymentReference,
		orderID,
		amount,
		dto.PaymentMethod,
		payment.Status(dto.Status),
		transactionID,
		dto.AuthorizedAt,
		dto.CapturedAt,
		dto.FailedAt,
		dto.RefundedAt,
		failureReason,
	)
}
