package shipment_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/pkg/errs"
)

func testDestination(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress("Musterstrasse 12", "Berlin", "10115", "DE")
	require.NoError(t, err)
	return address
}

func pendingShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	cost, err := shipment.DefaultShippingRate().CalculateCost(2, "EUR")
	require.NoError(t, err)
	s, err := shipment.NewShipment(
		kernel.NewUUID(), shipment.NewTrackingNumber(),
		kernel.NewUUID(), "DHL", cost, testDestination(t))
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		s := pendingShipment(t)

		assert.Equal(t, shipment.StatusPending, s.Status())
		assert.Nil(t, s.ShippedAt())
		assert.Nil(t, s.DeliveredAt())
	})

	t.Run("requires a carrier", func(t *testing.T) {
		cost, err := shipment.DefaultShippingRate().CalculateCost(1, "EUR")
		require.NoError(t, err)

		_, err = shipment.NewShipment(
			kernel.NewUUID(), shipment.NewTrackingNumber(),
			kernel.NewUUID(), " ", cost, testDestination(t))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a tracking number", func(t *testing.T) {
		cost, err := shipment.DefaultShippingRate().CalculateCost(1, "EUR")
		require.NoError(t, err)

		_, err = shipment.NewShipment(
			kernel.NewUUID(), "", kernel.NewUUID(), "DHL", cost, testDestination(t))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestShipmentLifecycle(t *testing.T) {
	t.Run("ship then deliver", func(t *testing.T) {
		s := pendingShipment(t)

		require.NoError(t, s.Ship())
		assert.Equal(t, shipment.StatusInTransit, s.Status())
		assert.NotNil(t, s.ShippedAt())

		require.NoError(t, s.MarkDelivered())
		assert.Equal(t, shipment.StatusDelivered, s.Status())
		assert.NotNil(t, s.DeliveredAt())
	})

	t.Run("pick up before shipping", func(t *testing.T) {
		s := pendingShipment(t)

		require.NoError(t, s.PickUp())
		assert.Equal(t, shipment.StatusPickedUp, s.Status())
		assert.NotNil(t, s.PickedUpAt())

		require.NoError(t, s.Ship())
		assert.Equal(t, shipment.StatusInTransit, s.Status())
	})

	t.Run("return after delivery", func(t *testing.T) {
		s := pendingShipment(t)
		require.NoError(t, s.Ship())
		require.NoError(t, s.MarkDelivered())

		require.NoError(t, s.Return())
		assert.Equal(t, shipment.StatusReturned, s.Status())
		assert.NotNil(t, s.ReturnedAt())
	})
}

func TestShipmentInvalidTransitions(t *testing.T) {
	t.Run("shipping twice fails", func(t *testing.T) {
		s := pendingShipment(t)
		require.NoError(t, s.Ship())

		assert.ErrorIs(t, s.Ship(), errs.ErrInvalidState)
	})

	t.Run("delivering a pending shipment fails", func(t *testing.T) {
		s := pendingShipment(t)

		err := s.MarkDelivered()

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, shipment.StatusPending, s.Status())
	})

	t.Run("returning a pending shipment fails", func(t *testing.T) {
		s := pendingShipment(t)
		assert.ErrorIs(t, s.Return(), errs.ErrInvalidState)
	})

	t.Run("picking up an in-transit shipment fails", func(t *testing.T) {
		s := pendingShipment(t)
		require.NoError(t, s.Ship())

		assert.ErrorIs(t, s.PickUp(), errs.ErrInvalidState)
	})
}

func TestShippingRate(t *testing.T) {
	t.Run("charges a flat amount per line", func(t *testing.T) {
		cost, err := shipment.DefaultShippingRate().CalculateCost(3, "EUR")

		require.NoError(t, err)
		assert.Equal(t, "17.97 EUR", cost.String())
	})

	t.Run("single line pays the base rate", func(t *testing.T) {
		cost, err := shipment.DefaultShippingRate().CalculateCost(1, "USD")

		require.NoError(t, err)
		assert.Equal(t, "5.99 USD", cost.String())
	})

	t.Run("rejects a zero line count", func(t *testing.T) {
		_, err := shipment.DefaultShippingRate().CalculateCost(0, "EUR")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects a non-positive custom rate", func(t *testing.T) {
		_, err := shipment.NewShippingRate(decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewTrackingNumber(t *testing.T) {
	tracking := shipment.NewTrackingNumber()

	assert.True(t, strings.HasPrefix(tracking, "TRACK-"))
	assert.Len(t, tracking, 16)
	assert.Equal(t, strings.ToUpper(tracking), tracking)
}

func TestShipmentValidate(t *testing.T) {
	var s shipment.Shipment
	assert.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)

	assert.NoError(t, pendingShipment(t).Validate())
}
