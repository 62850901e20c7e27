package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/shipment"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(amount), "EUR")
	require.NoError(t, err)
	return m
}

func testQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return q
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Musterstrasse 12", "Berlin", "10115", "DE")
	require.NoError(t, err)
	return address
}

func testCustomer(t *testing.T, id kernel.UUID) *customer.Customer {
	t.Helper()
	email, err := kernel.NewEmail("jane.doe@example.com")
	require.NoError(t, err)
	buyer, err := customer.NewCustomer(id, "Jane", "Doe", email)
	require.NoError(t, err)
	require.NoError(t, buyer.UpdateAddress(testAddress(t)))
	return buyer
}

func testProduct(t *testing.T, id kernel.UUID, price string) *product.Product {
	t.Helper()
	item, err := product.NewProduct(
		id, "Espresso Beans 1kg", "Dark roast arabica",
		testMoney(t, price), "COF-ESP-1KG", "Coffee")
	require.NoError(t, err)
	return item
}

func testInventory(t *testing.T, productID kernel.UUID, onHand int) *inventory.Inventory {
	t.Helper()
	stock, err := inventory.NewInventory(
		kernel.NewUUID(), productID,
		testQuantity(t, onHand), testQuantity(t, inventory.DefaultReorderThreshold))
	require.NoError(t, err)
	return stock
}

func testOrderLine(t *testing.T, productID kernel.UUID, quantity int, price string) order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(
		kernel.NewUUID(), productID, "Espresso Beans 1kg",
		testQuantity(t, quantity), testMoney(t, price))
	require.NoError(t, err)
	return line
}

func testOrderInStatus(
	t *testing.T,
	orderID, customerID kernel.UUID,
	lines []order.OrderLine,
	status order.Status,
) *order.Order {
	t.Helper()
	address := testAddress(t)
	now := time.Now()
	aggregate, err := order.RestoreOrder(
		orderID, order.NewOrderNumber(), customerID, "EUR",
		lines, status, &address, &now, nil, nil, nil, nil, "")
	require.NoError(t, err)
	return aggregate
}

func testPendingShipment(t *testing.T, orderID kernel.UUID) *shipment.Shipment {
	t.Helper()
	cost, err := shipment.DefaultShippingRate().CalculateCost(1, "EUR")
	require.NoError(t, err)
	parcel, err := shipment.NewShipment(
		kernel.NewUUID(), shipment.NewTrackingNumber(),
		orderID, "DHL", cost, testAddress(t))
	require.NoError(t, err)
	return parcel
}

func testAuthorizedPayment(t *testing.T, orderID kernel.UUID) *payment.Payment {
	t.Helper()
	attempt, err := payment.NewPayment(
		kernel.NewUUID(), payment.NewPaymentReference(),
		orderID, testMoney(t, "49.99"), "CREDIT_CARD")
	require.NoError(t, err)
	require.NoError(t, attempt.Authorize(payment.NewTransactionID()))
	return attempt
}
