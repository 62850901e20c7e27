package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockQueryHandler finds inventory at or below the reorder threshold.
type GetLowStockQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockQueryHandler creates a handler for low stock reports.
// Requires a GORM database connection for query execution.
func NewGetLowStockQueryHandler(db *gorm.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

// Handle executes the report. Availability is computed in SQL so the cutoff
// matches what the reservation path sees.
func (h GetLowStockQueryHandler) Handle(
	ctx context.Context,
	query GetLowStockQuery,
) ([]GetLowStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.product_id,
			p.name,
			p.sku,
			i.quantity_on_hand,
			i.reserved_quantity,
			i.reorder_threshold
		FROM inventories i
		JOIN products p ON p.id = i.product_id
		WHERE i.quantity_on_hand - i.reserved_quantity <= i.reorder_threshold
		ORDER BY p.sku
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetLowStockQueryResponse, 0)
	for rows.Next() {
		var resp GetLowStockQueryResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&resp.ProductName,
			&resp.SKU,
			&resp.QuantityOnHand,
			&resp.ReservedQuantity,
			&resp.ReorderThreshold,
		)
		if err != nil {
			return nil, err
		}

		inventoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.InventoryID = inventoryID
		resp.ProductID = prodID
		resp.AvailableQuantity = resp.QuantityOnHand - resp.ReservedQuantity
		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
