package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// GetCustomerOrdersQuery retrieves the order history of a single customer.
// Returns order summaries without line detail, newest first.
//
// Example:
//
//	query, err := queries.NewGetCustomerOrdersQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order history: %w", err)
//	}
//
//	fmt.Printf("Customer has %d orders\n", len(orders))
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, ErrCustomerIDIsRequired
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CustomerID returns the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerOrdersQueryIsNotConstructed if validation fails.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// GetCustomerOrdersQueryResponse is one order summary in a customer's history.
type GetCustomerOrdersQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Status      string
	Currency    string
	Total       decimal.Decimal
	LineCount   int
	PlacedAt    *time.Time
}
