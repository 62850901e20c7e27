package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderByNumberQueryHandler loads a single order read model from the database.
// Reads bypass the aggregate and query the tables directly.
type GetOrderByNumberQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByNumberQueryHandler creates a handler for order lookups by number.
// Requires a GORM database connection for query execution.
func NewGetOrderByNumberQueryHandler(db *gorm.DB) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// carries the requested number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (GetOrderByNumberQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	resp, err := h.scanOrder(ctx, query.OrderNumber())
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	lines, err := h.scanLines(ctx, resp.ID)
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetOrderByNumberQueryHandler) scanOrder(
	ctx context.Context,
	orderNumber string,
) (GetOrderByNumberQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			status,
			currency,
			total,
			placed_at,
			paid_at,
			shipped_at,
			delivered_at,
			cancelled_at,
			cancellation_reason
		FROM orders
		WHERE order_number = ?
	`, orderNumber).Row()

	var resp GetOrderByNumberQueryResponse
	var id, customerID uuid.UUID
	var status int
	var total decimal.Decimal
	var placedAt, paidAt, shippedAt, deliveredAt, cancelledAt sql.NullTime
	var cancellationReason sql.NullString

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&customerID,
		&status,
		&resp.Currency,
		&total,
		&placedAt,
		&paidAt,
		&shippedAt,
		&deliveredAt,
		&cancelledAt,
		&cancellationReason,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderByNumberQueryResponse{},
			errs.NewObjectNotFoundError("order", orderNumber)
	}
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}
	buyerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderByNumberQueryResponse{}, err
	}

	resp.ID = orderID
	resp.CustomerID = buyerID
	resp.Status = order.Status(status).String()
	resp.Total = total
	resp.PlacedAt = nullableTime(placedAt)
	resp.PaidAt = nullableTime(paidAt)
	resp.ShippedAt = nullableTime(shippedAt)
	resp.DeliveredAt = nullableTime(deliveredAt)
	resp.CancelledAt = nullableTime(cancelledAt)
	resp.CancellationReason = cancellationReason.String

	return resp, nil
}

func (h GetOrderByNumberQueryHandler) scanLines(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var line OrderLineResponse
		var id, productID uuid.UUID

		err = rows.Scan(
			&id,
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		line.ID = lineID
		line.ProductID = prodID
		line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
