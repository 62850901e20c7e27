// Package http exposes the order fulfillment workflow over a REST API.
// Handlers are thin: they parse the request, build a command or query, and
// translate domain errors into HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	registerCustomerHandler commands.RegisterCustomerCommandHandler
	addProductHandler       commands.AddProductCommandHandler
	initializeStockHandler  commands.InitializeStockCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	processPaymentHandler   commands.ProcessPaymentCommandHandler
	capturePaymentHandler   commands.CapturePaymentCommandHandler
	createShipmentHandler   commands.CreateShipmentCommandHandler
	shipOrderHandler        commands.ShipOrderCommandHandler
	markDeliveredHandler    commands.MarkDeliveredCommandHandler

	getOrderByNumberHandler  queries.GetOrderByNumberQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler
	searchProductsHandler    queries.SearchProductsQueryHandler
	getLowStockHandler       queries.GetLowStockQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerCustomerHandler commands.RegisterCustomerCommandHandler,
	addProductHandler commands.AddProductCommandHandler,
	initializeStockHandler commands.InitializeStockCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	capturePaymentHandler commands.CapturePaymentCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	markDeliveredHandler commands.MarkDeliveredCommandHandler,
	getOrderByNumberHandler queries.GetOrderByNumberQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	searchProductsHandler queries.SearchProductsQueryHandler,
	getLowStockHandler queries.GetLowStockQueryHandler,
) *Server {
	return &Server{
		registerCustomerHandler:  registerCustomerHandler,
		addProductHandler:        addProductHandler,
		initializeStockHandler:   initializeStockHandler,
		createOrderHandler:       createOrderHandler,
		placeOrderHandler:        placeOrderHandler,
		cancelOrderHandler:       cancelOrderHandler,
		processPaymentHandler:    processPaymentHandler,
		capturePaymentHandler:    capturePaymentHandler,
		createShipmentHandler:    createShipmentHandler,
		shipOrderHandler:         shipOrderHandler,
		markDeliveredHandler:     markDeliveredHandler,
		getOrderByNumberHandler:  getOrderByNumberHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		searchProductsHandler:    searchProductsHandler,
		getLowStockHandler:       getLowStockHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/customers", s.RegisterCustomer)
	v1.GET("/customers/:customerId/orders", s.GetCustomerOrders)

	v1.POST("/products", s.AddProduct)
	v1.GET("/products", s.SearchProducts)
	v1.POST("/products/:productId/stock", s.InitializeStock)
	v1.GET("/inventory/low-stock", s.GetLowStock)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:orderNumber", s.GetOrderByNumber)
	v1.POST("/orders/:orderId/place", s.PlaceOrder)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
	v1.POST("/orders/:orderId/payments", s.ProcessPayment)
	v1.POST("/orders/:orderId/shipments", s.CreateShipment)

	v1.POST("/payments/:paymentReference/capture", s.CapturePayment)

	v1.POST("/shipments/:trackingNumber/ship", s.ShipOrder)
	v1.POST("/shipments/:trackingNumber/delivered", s.MarkDelivered)
}

// errorResponse is the uniform error body returned by every endpoint.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// addressRequest carries an optional postal address in request bodies.
type addressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (a *addressRequest) toDomain() (*kernel.Address, error) {
	if a == nil {
		return nil, nil
	}

	addr, err := kernel.NewAddress(a.Street, a.City, a.ZipCode, a.Country)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// writeError maps a use case error onto an HTTP status code.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, commands.ErrShippingAddressIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrInsufficientStock),
		errors.Is(err, commands.ErrEmailAlreadyRegistered),
		errors.Is(err, commands.ErrSKUAlreadyExists),
		errors.Is(err, commands.ErrProductIsNotActive):
		code = http.StatusConflict
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return badRequest(ctx, "Invalid email: "+err.Error())
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, req.FirstName, req.LastName, email)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if err = s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"customerId": customerID.String()})
}

// AddProduct handles POST /api/v1/products.
func (s *Server) AddProduct(ctx echo.Context) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       string `json:"price"`
		Currency    string `json:"currency"`
		SKU         string `json:"sku"`
		Category    string `json:"category"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	price, err := kernel.NewMoney(amount, req.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewAddProductCommand(
		productID, req.Name, req.Description, price, req.SKU, req.Category)
	if err != nil {
		return badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err = s.addProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"productId": productID.String()})
}

// InitializeStock handles POST /api/v1/products/:productId/stock.
func (s *Server) InitializeStock(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var req struct {
		InitialQuantity  int `json:"initialQuantity"`
		ReorderThreshold int `json:"reorderThreshold"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	inventoryID := kernel.NewUUID()
	cmd, err := commands.NewInitializeStockCommand(
		inventoryID, productID, req.InitialQuantity, req.ReorderThreshold)
	if err != nil {
		return badRequest(ctx, "Invalid stock data: "+err.Error())
	}

	if err = s.initializeStockHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"inventoryId": inventoryID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		CustomerID string `json:"customerId"`
		Currency   string `json:"currency"`
		Lines      []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		} `json:"lines"`
		ShippingAddress *addressRequest `json:"shippingAddress"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	lines := make([]commands.CreateOrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product id")
		}
		lines = append(lines, commands.CreateOrderLine{
			ProductID: productID,
			Quantity:  line.Quantity,
		})
	}

	shippingAddress, err := req.ShippingAddress.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, req.Currency, lines, shippingAddress)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// PlaceOrder handles POST /api/v1/orders/:orderId/place.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		ShippingAddress *addressRequest `json:"shippingAddress"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shippingAddress, err := req.ShippingAddress.toDomain()
	if err != nil {
		return badRequest(ctx, "Invalid shipping address: "+err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, shippingAddress)
	if err != nil {
		return badRequest(ctx, "Invalid placement data: "+err.Error())
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ProcessPayment handles POST /api/v1/orders/:orderId/payments.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewProcessPaymentCommand(paymentID, orderID, req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment data: "+err.Error())
	}

	if err = s.processPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"paymentId": paymentID.String()})
}

// CapturePayment handles POST /api/v1/payments/:paymentReference/capture.
func (s *Server) CapturePayment(ctx echo.Context) error {
	cmd, err := commands.NewCapturePaymentCommand(ctx.Param("paymentReference"))
	if err != nil {
		return badRequest(ctx, "Invalid payment reference: "+err.Error())
	}

	if err = s.capturePaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateShipment handles POST /api/v1/orders/:orderId/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req struct {
		Carrier string `json:"carrier"`
	}
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateShipmentCommand(shipmentID, orderID, req.Carrier)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if err = s.createShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"shipmentId": shipmentID.String()})
}

// ShipOrder handles POST /api/v1/shipments/:trackingNumber/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	cmd, err := commands.NewShipOrderCommand(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	if err = s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/shipments/:trackingNumber/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	cmd, err := commands.NewMarkDeliveredCommand(ctx.Param("trackingNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking number: "+err.Error())
	}

	if err = s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderByNumber handles GET /api/v1/orders/:orderNumber.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("orderNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid order number: "+err.Error())
	}

	result, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	results, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(results))
	for i, summary := range results {
		response[i] = toOrderSummaryResponse(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// SearchProducts handles GET /api/v1/products.
func (s *Server) SearchProducts(ctx echo.Context) error {
	activeOnly := ctx.QueryParam("activeOnly") == "true"
	query := queries.NewSearchProductsQuery(
		ctx.QueryParam("query"),
		ctx.QueryParam("category"),
		activeOnly,
	)

	results, err := s.searchProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]productResponse, len(results))
	for i, item := range results {
		response[i] = productResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			SKU:         item.SKU,
			Category:    item.Category,
			Price:       item.Price.StringFixed(2),
			Currency:    item.Currency,
			Active:      item.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStock handles GET /api/v1/inventory/low-stock.
func (s *Server) GetLowStock(ctx echo.Context) error {
	results, err := s.getLowStockHandler.Handle(ctx.Request().Context(), queries.NewGetLowStockQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]lowStockResponse, len(results))
	for i, item := range results {
		response[i] = lowStockResponse{
			InventoryID:       item.InventoryID.String(),
			ProductID:         item.ProductID.String(),
			ProductName:       item.ProductName,
			SKU:               item.SKU,
			QuantityOnHand:    item.QuantityOnHand,
			ReservedQuantity:  item.ReservedQuantity,
			AvailableQuantity: item.AvailableQuantity,
			ReorderThreshold:  item.ReorderThreshold,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
