package commands

import (
	"context"
)

// MarkDeliveredCommandHandler handles the business logic for recording a
// delivery. Transitions the shipment to Delivered and the order to Delivered.
type MarkDeliveredCommandHandler struct {
	uowFactory ShippingUoWFactory
}

// NewMarkDeliveredCommandHandler creates a handler for delivery recording.
func NewMarkDeliveredCommandHandler(uowFactory ShippingUoWFactory) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command. The shipment must be in transit;
// delivering a never-shipped parcel is rejected.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	shipmentRepo := uow.ShipmentRepository()
	parcel, err := shipmentRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}
	if err := parcel.MarkDelivered(); err != nil {
		return err
	}
	if err := shipmentRepo.Update(ctx, parcel); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, parcel.OrderID())
	if err != nil {
		return err
	}
	if err := aggregate.MarkDelivered(); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
