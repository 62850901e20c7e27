package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/customer"
)

// ErrEmailAlreadyRegistered is returned when a registration email is taken.
var ErrEmailAlreadyRegistered = errors.New("email is already registered")

// RegisterCustomerCommandHandler handles the business logic for customer
// registration, enforcing email uniqueness.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command. Rejects the registration when
// another customer already holds the email.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()
	taken, err := customerRepo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailAlreadyRegistered
	}

	aggregate, err := customer.NewCustomer(
		cmd.CustomerID(), cmd.FirstName(), cmd.LastName(), cmd.Email())
	if err != nil {
		return err
	}

	if err := customerRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
