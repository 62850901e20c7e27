package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSearchProductsQueryIsNotConstructed = errors.New(
		"SearchProductsQuery must be created via NewSearchProductsQuery constructor",
	)
)

// SearchProductsQuery finds products in the catalog by name and category.
// Both filters are optional; an empty query lists the whole catalog.
//
// Example:
//
//	query := queries.NewSearchProductsQuery("espresso", "Coffee", true)
//	products, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("search failed: %w", err)
//	}
//
//	for _, product := range products {
//	    fmt.Printf("%s (%s): %s %s\n", product.Name, product.SKU, product.Price, product.Currency)
//	}
type SearchProductsQuery struct {
	term       string
	category   string
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewSearchProductsQuery creates a catalog search. The term matches product
// name and SKU case-insensitively, category matches exactly, and activeOnly
// hides deactivated products.
func NewSearchProductsQuery(term string, category string, activeOnly bool) SearchProductsQuery {
	return SearchProductsQuery{
		term:       strings.TrimSpace(term),
		category:   strings.TrimSpace(category),
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Term returns the free-text filter, empty when unset.
func (q SearchProductsQuery) Term() string {
	return q.term
}

// Category returns the category filter, empty when unset.
func (q SearchProductsQuery) Category() string {
	return q.category
}

// ActiveOnly reports whether deactivated products are excluded.
func (q SearchProductsQuery) ActiveOnly() bool {
	return q.activeOnly
}

// Validate ensures the query was created through the constructor.
// Returns ErrSearchProductsQueryIsNotConstructed if validation fails.
func (q SearchProductsQuery) Validate() error {
	return q.guard.Validate(ErrSearchProductsQueryIsNotConstructed)
}

// SearchProductsQueryResponse is one catalog entry in the search result.
type SearchProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	SKU         string
	Category    string
	Price       decimal.Decimal
	Currency    string
	Active      bool
}
