package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

type createOrderWorld struct {
	checkoutUoW  *MockUoW
	stockUoW     *MockUoW
	orderRepo    *MockOrderRepository
	customerRepo *MockCustomerRepository
	productRepo  *MockProductRepository
	invRepo      *MockInventoryRepository
	notifier     *MockNotificationSender
	handler      commands.CreateOrderCommandHandler
}

func newCreateOrderWorld(t *testing.T) *createOrderWorld {
	t.Helper()
	w := &createOrderWorld{
		checkoutUoW:  new(MockUoW),
		stockUoW:     new(MockUoW),
		orderRepo:    new(MockOrderRepository),
		customerRepo: new(MockCustomerRepository),
		productRepo:  new(MockProductRepository),
		invRepo:      new(MockInventoryRepository),
		notifier:     new(MockNotificationSender),
	}

	w.checkoutUoW.On("Begin", mock.Anything).Return(nil)
	w.checkoutUoW.On("Commit", mock.Anything).Return(nil)
	w.checkoutUoW.On("Rollback", mock.Anything).Return(nil)
	w.checkoutUoW.On("OrderRepository").Return(w.orderRepo)
	w.checkoutUoW.On("CustomerRepository").Return(w.customerRepo)
	w.checkoutUoW.On("ProductRepository").Return(w.productRepo)

	w.stockUoW.On("Begin", mock.Anything).Return(nil)
	w.stockUoW.On("Commit", mock.Anything).Return(nil)
	w.stockUoW.On("Rollback", mock.Anything).Return(nil)
	w.stockUoW.On("InventoryRepository").Return(w.invRepo)

	checkoutFactory := new(MockCheckoutUoWFactory)
	checkoutFactory.On("Create").Return(w.checkoutUoW)
	stockFactory := new(MockStockUoWFactory)
	stockFactory.On("Create").Return(w.stockUoW)

	w.handler = commands.NewCreateOrderCommandHandler(
		checkoutFactory, stockFactory, w.notifier, discardLogger())
	return w
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	w := newCreateOrderWorld(t)

	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	buyer := testCustomer(t, customerID)
	item := testProduct(t, productID, "14.90")
	stock := testInventory(t, productID, 10)

	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	w.productRepo.On("Get", ctx, productID).Return(item, nil).Once()
	w.invRepo.On("GetByProductID", ctx, productID).Return(stock, nil).Once()
	w.invRepo.On("Update", ctx, stock).Return(nil).Once()
	w.orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	w.notifier.On("SendOrderConfirmation",
		ctx, buyer.Email(), mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, "EUR",
		[]commands.CreateOrderLine{{ProductID: productID, Quantity: 4}}, nil)
	require.NoError(t, err)

	require.NoError(t, w.handler.Handle(ctx, cmd))

	assert.Equal(t, 4, stock.ReservedQuantity().Value())
	assert.Equal(t, 6, stock.AvailableQuantity().Value())

	persisted := w.orderRepo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Placed, persisted.Status())
	assert.Equal(t, "59.60 EUR", persisted.Total().String())
	w.orderRepo.AssertExpectations(t)
	w.invRepo.AssertExpectations(t)
	w.notifier.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InsufficientStockCompensates(t *testing.T) {
	ctx := t.Context()
	w := newCreateOrderWorld(t)

	customerID := kernel.NewUUID()
	firstProductID := kernel.NewUUID()
	secondProductID := kernel.NewUUID()
	buyer := testCustomer(t, customerID)
	firstItem := testProduct(t, firstProductID, "14.90")
	secondItem := testProduct(t, secondProductID, "9.50")
	firstStock := testInventory(t, firstProductID, 10)
	secondStock := testInventory(t, secondProductID, 2)

	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	w.productRepo.On("Get", ctx, firstProductID).Return(firstItem, nil).Once()
	w.productRepo.On("Get", ctx, secondProductID).Return(secondItem, nil).Once()
	w.invRepo.On("GetByProductID", ctx, firstProductID).Return(firstStock, nil).Times(2)
	w.invRepo.On("GetByProductID", ctx, secondProductID).Return(secondStock, nil).Once()
	w.invRepo.On("Update", ctx, firstStock).Return(nil).Times(2)

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, "EUR",
		[]commands.CreateOrderLine{
			{ProductID: firstProductID, Quantity: 4},
			{ProductID: secondProductID, Quantity: 5},
		}, nil)
	require.NoError(t, err)

	err = w.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, 0, firstStock.ReservedQuantity().Value())
	assert.Equal(t, 0, secondStock.ReservedQuantity().Value())
	w.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	w.notifier.AssertNotCalled(t, "SendOrderConfirmation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	w.invRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactiveProduct(t *testing.T) {
	ctx := t.Context()
	w := newCreateOrderWorld(t)

	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	buyer := testCustomer(t, customerID)
	item := testProduct(t, productID, "14.90")
	item.Deactivate()

	w.customerRepo.On("Get", ctx, customerID).Return(buyer, nil).Once()
	w.productRepo.On("Get", ctx, productID).Return(item, nil).Once()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, "EUR",
		[]commands.CreateOrderLine{{ProductID: productID, Quantity: 1}}, nil)
	require.NoError(t, err)

	err = w.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrProductIsNotActive)
	w.invRepo.AssertNotCalled(t, "GetByProductID", mock.Anything, mock.Anything)
	w.orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CustomerNotFound(t *testing.T) {
	ctx := t.Context()
	w := newCreateOrderWorld(t)

	customerID := kernel.NewUUID()
	w.customerRepo.On("Get", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("customerID", customerID.String())).Once()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customerID, "EUR",
		[]commands.CreateOrderLine{{ProductID: kernel.NewUUID(), Quantity: 1}}, nil)
	require.NoError(t, err)

	err = w.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	w.productRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	w := newCreateOrderWorld(t)

	err := w.handler.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	w.customerRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
