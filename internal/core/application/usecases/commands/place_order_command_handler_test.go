package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

type placeOrderWorld struct {
	uow          *MockUoW
	orderRepo    *MockOrderRepository
	customerRepo *MockCustomerRepository
	notifier     *MockNotificationSender
	handler      commands.PlaceOrderCommandHandler
}

func newPlaceOrderWorld(t *testing.T) *placeOrderWorld {
	t.Helper()
	w := &placeOrderWorld{
		uow:          new(MockUoW),
		orderRepo:    new(MockOrderRepository),
		customerRepo: new(MockCustomerRepository),
		notifier:     new(MockNotificationSender),
	}

	w.uow.On("Begin", mock.Anything).Return(nil)
	w.uow.On("Commit", mock.Anything).Return(nil)
	w.uow.On("Rollback", mock.Anything).Return(nil)
	w.uow.On("OrderRepository").Return(w.orderRepo)
	w.uow.On("CustomerRepository").Return(w.customerRepo)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(w.uow)

	w.handler = commands.NewPlaceOrderCommandHandler(factory, w.notifier, discardLogger())
	return w
}

func testDraftOrder(t *testing.T, orderID, customerID kernel.UUID) *order.Order {
	t.Helper()
	draft, err := order.NewOrder(orderID, order.NewOrderNumber(), customerID, "EUR")
	require.NoError(t, err)
	require.NoError(t, draft.AddLine(testOrderLine(t, kernel.NewUUID(), 2, "14.90")))
	return draft
}

func TestPlaceOrderCommandHandler_Handle_UsesRequestedAddress(t *testing.T) {
	ctx := t.Context()
	w := newPlaceOrderWorld(t)

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	draft := testDraftOrder(t, orderID, customerID)
	buyer := testCustomer(t, customerID)

	requested, err := kernel.NewAddress("Hauptplatz 3", "Graz", "8010", "AT")
	require.NoError(t, err)

	w.orderRepo.On("Get", ctx, orderID).Return(draft, nil).Once()
	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	w.orderRepo.On("Update", ctx, draft).Return(nil).Once()
	w.notifier.On("SendOrderConfirmation",
		ctx, buyer.Email(), draft.OrderNumber(), draft.Total()).Return(nil).Once()

	cmd, err := commands.NewPlaceOrderCommand(orderID, &requested)
	require.NoError(t, err)

	require.NoError(t, w.handler.Handle(ctx, cmd))

	assert.Equal(t, order.Placed, draft.Status())
	require.NotNil(t, draft.ShippingAddress())
	assert.True(t, requested.IsEqual(*draft.ShippingAddress()))
	w.uow.AssertCalled(t, "Commit", mock.Anything)
	w.notifier.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_FallsBackToCustomerAddress(t *testing.T) {
	ctx := t.Context()
	w := newPlaceOrderWorld(t)

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	draft := testDraftOrder(t, orderID, customerID)
	buyer := testCustomer(t, customerID)

	w.orderRepo.On("Get", ctx, orderID).Return(draft, nil).Once()
	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	w.orderRepo.On("Update", ctx, draft).Return(nil).Once()
	w.notifier.On("SendOrderConfirmation",
		ctx, buyer.Email(), draft.OrderNumber(), draft.Total()).Return(nil).Once()

	cmd, err := commands.NewPlaceOrderCommand(orderID, nil)
	require.NoError(t, err)

	require.NoError(t, w.handler.Handle(ctx, cmd))

	assert.Equal(t, order.Placed, draft.Status())
	require.NotNil(t, draft.ShippingAddress())
	assert.True(t, buyer.Address().IsEqual(*draft.ShippingAddress()))
}

func TestPlaceOrderCommandHandler_Handle_NoAddressAnywhere(t *testing.T) {
	ctx := t.Context()
	w := newPlaceOrderWorld(t)

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	draft := testDraftOrder(t, orderID, customerID)

	email, err := kernel.NewEmail("jane.doe@example.com")
	require.NoError(t, err)
	buyer, err := customer.NewCustomer(customerID, "Jane", "Doe", email)
	require.NoError(t, err)

	w.orderRepo.On("Get", ctx, orderID).Return(draft, nil).Once()
	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()

	cmd, err := commands.NewPlaceOrderCommand(orderID, nil)
	require.NoError(t, err)

	err = w.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrShippingAddressIsRequired)
	assert.Equal(t, order.Draft, draft.Status())
	w.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	w.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_NotificationFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	w := newPlaceOrderWorld(t)

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	draft := testDraftOrder(t, orderID, customerID)
	buyer := testCustomer(t, customerID)

	w.orderRepo.On("Get", ctx, orderID).Return(draft, nil).Once()
	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	w.orderRepo.On("Update", ctx, draft).Return(nil).Once()
	w.notifier.On("SendOrderConfirmation",
		ctx, buyer.Email(), draft.OrderNumber(), draft.Total()).
		Return(errors.New("smtp unavailable")).Once()

	cmd, err := commands.NewPlaceOrderCommand(orderID, nil)
	require.NoError(t, err)

	require.NoError(t, w.handler.Handle(ctx, cmd))
	assert.Equal(t, order.Placed, draft.Status())
	w.uow.AssertCalled(t, "Commit", mock.Anything)
}
