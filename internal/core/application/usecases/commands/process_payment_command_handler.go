package commands

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/payment"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ProcessPaymentCommandHandler handles the business logic for charging an
// order. Creates a pending payment attempt, calls the gateway outside the
// transaction, and records the outcome.
//
// A gateway decline is not an error: the payment ends up Failed, the order
// stays Placed, and the workflow can retry with a fresh attempt.
type ProcessPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	gateway    ports.PaymentGateway
	logger     *slog.Logger
}

// NewProcessPaymentCommandHandler creates a handler for payment processing.
func NewProcessPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	gateway ports.PaymentGateway,
	logger *slog.Logger,
) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		logger:     logger.With("component", "ProcessPaymentCommandHandler"),
	}
}

// Handle processes the payment command. The pending payment commits before
// the gateway call and the authorization commits before the order turns Paid,
// so a crash never leaves an order Paid without an authorized payment.
func (h *ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	attempt, err := h.createPendingPayment(ctx, cmd)
	if err != nil {
		return err
	}

	approved, gatewayErr := h.gateway.Authorize(
		ctx, attempt.PaymentReference(), attempt.Amount(), attempt.PaymentMethod())

	if gatewayErr != nil {
		if err := h.recordFailure(ctx, attempt, gatewayErr.Error()); err != nil {
			h.logger.Error("recording gateway failure failed",
				"paymentReference", attempt.PaymentReference(), "error", err)
		}
		return gatewayErr
	}

	if !approved {
		h.logger.Info("authorization declined",
			"paymentReference", attempt.PaymentReference(),
			"orderID", attempt.OrderID().String())
		return h.recordFailure(ctx, attempt, "Authorization declined")
	}

	return h.recordAuthorization(ctx, attempt)
}

func (h *ProcessPaymentCommandHandler) createPendingPayment(
	ctx context.Context, cmd ProcessPaymentCommand,
) (*payment.Payment, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if aggregate.Status() != order.Placed {
		return nil, errs.NewInvalidStateError("process payment", aggregate.Status().String())
	}

	attempt, err := payment.NewPayment(
		cmd.PaymentID(), payment.NewPaymentReference(),
		cmd.OrderID(), aggregate.Total(), cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	if err := uow.PaymentRepository().Add(ctx, attempt); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return attempt, nil
}

func (h *ProcessPaymentCommandHandler) recordAuthorization(
	ctx context.Context, attempt *payment.Payment,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := attempt.Authorize(payment.NewTransactionID()); err != nil {
		return err
	}
	if err := uow.PaymentRepository().Update(ctx, attempt); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, attempt.OrderID())
	if err != nil {
		return err
	}
	if err := aggregate.MarkPaid(); err != nil {
		return err
	}
	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *ProcessPaymentCommandHandler) recordFailure(
	ctx context.Context, attempt *payment.Payment, reason string,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := attempt.Fail(reason); err != nil {
		return err
	}
	if err := uow.PaymentRepository().Update(ctx, attempt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
