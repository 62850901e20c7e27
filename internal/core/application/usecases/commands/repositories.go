// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InventoryRepoFactory provides access to the inventory repository within a transaction.
	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to the product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for catalog-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// StockUoW manages transactions touching inventory records, with catalog
	// access to verify the tracked product.
	StockUoW interface {
		TxManager
		InventoryRepoFactory
		ProductRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	// Reservation and release run one unit of work per order line, so a
	// partial failure can be compensated line by line.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// CheckoutUoW manages transactions for order creation, which reads the
	// customer and catalog before writing the order.
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order aggregate operations with
	// customer lookups for address fallback and notifications.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CancellationUoW manages transactions spanning the order and its
	// inventory reservations.
	CancellationUoW interface {
		TxManager
		OrderRepoFactory
		InventoryRepoFactory
	}

	// CancellationUoWFactory creates new cancellation unit of work instances.
	CancellationUoWFactory interface {
		Create() CancellationUoW
	}

	// PaymentUoW manages transactions spanning payments and their order.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// ShippingUoW manages transactions spanning shipments, the shipped
	// order, its inventory, and the customer to notify.
	ShippingUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
		InventoryRepoFactory
		CustomerRepoFactory
	}

	// ShippingUoWFactory creates new shipping unit of work instances.
	ShippingUoWFactory interface {
		Create() ShippingUoW
	}
)
