package queries

import (
	"context"
	"database/sql"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders from the database.
// Line counts are aggregated in SQL so the handler never loads line rows.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order history.
// Requires a GORM database connection for query execution.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query. An unknown customer yields an empty slice, not
// an error; existence checks belong to the command side.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.currency,
			o.total,
			o.placed_at,
			COUNT(l.id) AS line_count
		FROM orders o
		LEFT JOIN order_lines l ON l.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.order_number, o.status, o.currency, o.total, o.placed_at
		ORDER BY o.placed_at DESC NULLS LAST, o.order_number
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetCustomerOrdersQueryResponse
		var id uuid.UUID
		var status int
		var total decimal.Decimal
		var placedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&resp.Currency,
			&total,
			&placedAt,
			&resp.LineCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.Total = total
		resp.PlacedAt = nullableTime(placedAt)
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
