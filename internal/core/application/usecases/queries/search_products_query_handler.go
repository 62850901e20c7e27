package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SearchProductsQueryHandler searches the product catalog in the database.
type SearchProductsQueryHandler struct {
	db *gorm.DB
}

// NewSearchProductsQueryHandler creates a handler for catalog searches.
// Requires a GORM database connection for query execution.
func NewSearchProductsQueryHandler(db *gorm.DB) SearchProductsQueryHandler {
	return SearchProductsQueryHandler{db: db}
}

// Handle executes the search. Filters are combined with AND; results are
// sorted by name for stable paging on the caller side.
func (h SearchProductsQueryHandler) Handle(
	ctx context.Context,
	query SearchProductsQuery,
) ([]SearchProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			id,
			name,
			description,
			sku,
			category,
			price,
			currency,
			active
		FROM products
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.Term() != "" {
		sqlText += " AND (name ILIKE ? OR sku ILIKE ?)"
		pattern := "%" + query.Term() + "%"
		args = append(args, pattern, pattern)
	}
	if query.Category() != "" {
		sqlText += " AND category = ?"
		args = append(args, query.Category())
	}
	if query.ActiveOnly() {
		sqlText += " AND active"
	}
	sqlText += " ORDER BY name"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]SearchProductsQueryResponse, 0)
	for rows.Next() {
		var resp SearchProductsQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&resp.SKU,
			&resp.Category,
			&price,
			&resp.Currency,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = productID
		resp.Price = price
		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
