package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/shipment"
	"storefront/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for opening a
// shipment on a paid order. Computes the flat per-line shipping cost and
// snapshots the order's destination address.
type CreateShipmentCommandHandler struct {
	uowFactory ShippingUoWFactory
	rate       shipment.ShippingRate
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShippingUoWFactory,
	rate shipment.ShippingRate,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		rate:       rate,
	}
}

// Handle processes the shipment creation command. Fails with an invalid-state
// error unless the order is currently paid.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Status() != order.Paid {
		return errs.NewInvalidStateError("create shipment", aggregate.Status().String())
	}
	if aggregate.ShippingAddress() == nil {
		return ErrShippingAddressIsRequired
	}

	cost, err := h.rate.CalculateCost(len(aggregate.Lines()), aggregate.Currency())
	if err != nil {
		return err
	}

	parcel, err := shipment.NewShipment(
		cmd.ShipmentID(), shipment.NewTrackingNumber(),
		cmd.OrderID(), cmd.Carrier(), cost, *aggregate.ShippingAddress())
	if err != nil {
		return err
	}

	if err := uow.ShipmentRepository().Add(ctx, parcel); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
