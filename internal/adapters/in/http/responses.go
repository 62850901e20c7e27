package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// orderResponse is the full order representation returned by the order lookup.
type orderResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	CustomerID         string              `json:"customerId"`
	Status             string              `json:"status"`
	Currency           string              `json:"currency"`
	Total              string              `json:"total"`
	Lines              []orderLineResponse `json:"lines"`
	PlacedAt           *time.Time          `json:"placedAt,omitempty"`
	PaidAt             *time.Time          `json:"paidAt,omitempty"`
	ShippedAt          *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt        *time.Time          `json:"deliveredAt,omitempty"`
	CancelledAt        *time.Time          `json:"cancelledAt,omitempty"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
}

type orderLineResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	LineTotal   string `json:"lineTotal"`
}

// orderSummaryResponse is one entry of a customer's order history.
type orderSummaryResponse struct {
	ID          string     `json:"id"`
	OrderNumber string     `json:"orderNumber"`
	Status      string     `json:"status"`
	Currency    string     `json:"currency"`
	Total       string     `json:"total"`
	LineCount   int        `json:"lineCount"`
	PlacedAt    *time.Time `json:"placedAt,omitempty"`
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SKU         string `json:"sku"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
}

type lowStockResponse struct {
	InventoryID       string `json:"inventoryId"`
	ProductID         string `json:"productId"`
	ProductName       string `json:"productName"`
	SKU               string `json:"sku"`
	QuantityOnHand    int    `json:"quantityOnHand"`
	ReservedQuantity  int    `json:"reservedQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
	ReorderThreshold  int    `json:"reorderThreshold"`
}

func toOrderResponse(result queries.GetOrderByNumberQueryResponse) orderResponse {
	lines := make([]orderLineResponse, len(result.Lines))
	for i, line := range result.Lines {
		lines[i] = orderLineResponse{
			ID:          line.ID.String(),
			ProductID:   line.ProductID.String(),
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice.StringFixed(2),
			LineTotal:   line.LineTotal.StringFixed(2),
		}
	}

	return orderResponse{
		ID:                 result.ID.String(),
		OrderNumber:        result.OrderNumber,
		CustomerID:         result.CustomerID.String(),
		Status:             result.Status,
		Currency:           result.Currency,
		Total:              result.Total.StringFixed(2),
		Lines:              lines,
		PlacedAt:           result.PlacedAt,
		PaidAt:             result.PaidAt,
		ShippedAt:          result.ShippedAt,
		DeliveredAt:        result.DeliveredAt,
		CancelledAt:        result.CancelledAt,
		CancellationReason: result.CancellationReason,
	}
}

func toOrderSummaryResponse(result queries.GetCustomerOrdersQueryResponse) orderSummaryResponse {
	return orderSummaryResponse{
		ID:          result.ID.String(),
		OrderNumber: result.OrderNumber,
		Status:      result.Status,
		Currency:    result.Currency,
		Total:       result.Total.StringFixed(2),
		LineCount:   result.LineCount,
		PlacedAt:    result.PlacedAt,
	}
}
