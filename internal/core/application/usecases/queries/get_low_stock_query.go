package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetLowStockQueryIsNotConstructed = errors.New(
		"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
	)
)

// GetLowStockQuery lists inventory records whose available quantity has
// fallen to or below the reorder threshold. Used by the replenishment job
// and the back-office dashboard.
//
// Example:
//
//	query := queries.NewGetLowStockQuery()
//	low, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("low stock check failed: %w", err)
//	}
//
//	for _, item := range low {
//	    fmt.Printf("%s: %d available, threshold %d\n",
//	        item.SKU, item.AvailableQuantity, item.ReorderThreshold)
//	}
type GetLowStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLowStockQuery creates a query for items needing replenishment.
// This is a parameterless query covering the whole inventory.
func NewGetLowStockQuery() GetLowStockQuery {
	return GetLowStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowStockQueryIsNotConstructed if validation fails.
func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}

// GetLowStockQueryResponse is one inventory record below its threshold.
// AvailableQuantity is on-hand stock minus active reservations.
type GetLowStockQueryResponse struct {
	InventoryID       kernel.UUID
	ProductID         kernel.UUID
	ProductName       string
	SKU               string
	QuantityOnHand    int
	ReservedQuantity  int
	AvailableQuantity int
	ReorderThreshold  int
}
