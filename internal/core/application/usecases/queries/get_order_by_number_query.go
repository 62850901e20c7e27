// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderByNumberQueryIsNotConstructed = errors.New(
		"GetOrderByNumberQuery must be created via NewGetOrderByNumberQuery constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// GetOrderByNumberQuery retrieves a single order by its public order number.
// Returns the full order read model including lines and lifecycle timestamps.
//
// Example:
//
//	query, err := queries.NewGetOrderByNumberQuery("ORD-1A2B3C4D")
//	if err != nil {
//	    return err
//	}
//
//	order, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s %s\n", order.OrderNumber, order.Total, order.Currency)
type GetOrderByNumberQuery struct {
	orderNumber string

	guard guard.ConstructorGuard
}

// NewGetOrderByNumberQuery creates a query for the given order number.
// The number is the customer-facing reference, not the internal identifier.
func NewGetOrderByNumberQuery(orderNumber string) (GetOrderByNumberQuery, error) {
	if strings.TrimSpace(orderNumber) == "" {
		return GetOrderByNumberQuery{}, ErrOrderNumberIsRequired
	}

	return GetOrderByNumberQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// OrderNumber returns the order number to look up.
func (q GetOrderByNumberQuery) OrderNumber() string {
	return q.orderNumber
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderByNumberQueryIsNotConstructed if validation fails.
func (q GetOrderByNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByNumberQueryIsNotConstructed)
}

// OrderLineResponse represents one line of an order in the read model.
type OrderLineResponse struct {
	ID          kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// GetOrderByNumberQueryResponse represents the complete order read model.
// Timestamps are nil until the order reaches the corresponding status.
type GetOrderByNumberQueryResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	CustomerID         kernel.UUID
	Status             string
	Currency           string
	Total              decimal.Decimal
	Lines              []OrderLineResponse
	PlacedAt           *time.Time
	PaidAt             *time.Time
	ShippedAt          *time.Time
	DeliveredAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason string
}
