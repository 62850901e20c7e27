package commands

import (
	"context"

	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// CapturePaymentCommandHandler handles the business logic for collecting
// authorized funds. Does not touch the order.
type CapturePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
}

// NewCapturePaymentCommandHandler creates a handler for payment capture.
func NewCapturePaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
) CapturePaymentCommandHandler {
	return CapturePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the capture command. Fails with an invalid-state error
// unless the payment is currently authorized; a gateway refusal marks the
// payment Failed.
func (h *CapturePaymentCommandHandler) Handle(ctx context.Context, cmd CapturePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	attempt, err := h.loadAuthorizedPayment(ctx, cmd.PaymentReference())
	if err != nil {
		return err
	}

	approved, err := h.gateway.Capture(ctx, attempt.PaymentReference(), attempt.Amount())
	if err != nil {
		return err
	}

	if approved {
		return h.saveOutcome(ctx, attempt, attempt.Capture)
	}
	return h.saveOutcome(ctx, attempt, func() error {
		return attempt.Fail("Capture failed")
	})
}

func (h *CapturePaymentCommandHandler) loadAuthorizedPayment(
	ctx context.Context, paymentReference string,
) (*payment.Payment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	attempt, err := uow.PaymentRepository().GetByReference(ctx, paymentReference)
	if err != nil {
		return nil, err
	}
	if attempt.Status() != payment.StatusAuthorized {
		return nil, errs.NewInvalidStateError("capture", attempt.Status().String())
	}

	return attempt, nil
}

func (h *CapturePaymentCommandHandler) saveOutcome(
	ctx context.Context, attempt *payment.Payment, transition func() error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := transition(); err != nil {
		return err
	}
	if err := uow.PaymentRepository().Update(ctx, attempt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
