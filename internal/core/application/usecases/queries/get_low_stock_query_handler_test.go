package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLowStockQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetLowStockQueryHandler
}

func (suite *GetLowStockQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&inventoryrepo.InventoryDTO{},
		&inventoryrepo.StockMovementDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLowStockQueryHandler(db)
}

func (suite *GetLowStockQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLowStockQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products, inventories CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetLowStockQueryHandlerTestSuite) TestHandle_NoLowStock_ReturnsEmptySlice() {
	suite.seedStock("Espresso Beans 1kg", "COF-001", 50, 10)

	results, err := suite.handler.Handle(context.Background(), queries.NewGetLowStockQuery())

	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *GetLowStockQueryHandlerTestSuite) TestHandle_ReportsItemsAtOrBelowThreshold() {
	suite.seedStock("Espresso Beans 1kg", "COF-001", 50, 10)
	suite.seedStock("Filter Papers", "FLT-001", 10, 10)
	suite.seedStock("Ceramic Mug", "MUG-001", 3, 10)

	results, err := suite.handler.Handle(context.Background(), queries.NewGetLowStockQuery())

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)

	// Ordered by SKU.
	suite.Equal("FLT-001", results[0].SKU)
	suite.Equal("MUG-001", results[1].SKU)
	suite.Equal("Ceramic Mug", results[1].ProductName)
	suite.Equal(3, results[1].QuantityOnHand)
	suite.Equal(0, results[1].ReservedQuantity)
	suite.Equal(3, results[1].AvailableQuantity)
	suite.Equal(10, results[1].ReorderThreshold)
}

func (suite *GetLowStockQueryHandlerTestSuite) TestHandle_ReservationsLowerAvailability() {
	productID := suite.seedStock("Espresso Beans 1kg", "COF-001", 15, 10)

	repo := inventoryrepo.NewGormInventoryRepository(suite.db, noopTracker{})
	stock, err := repo.GetByProductID(context.Background(), productID)
	suite.Require().NoError(err)

	reserve, err := kernel.NewQuantity(7)
	suite.Require().NoError(err)
	suite.Require().NoError(stock.Reserve(reserve))
	suite.Require().NoError(repo.Update(context.Background(), stock))

	results, err := suite.handler.Handle(context.Background(), queries.NewGetLowStockQuery())

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(15, results[0].QuantityOnHand)
	suite.Equal(7, results[0].ReservedQuantity)
	suite.Equal(8, results[0].AvailableQuantity)
}

func (suite *GetLowStockQueryHandlerTestSuite) seedStock(name string, sku string, onHand int, threshold int) kernel.UUID {
	price, err := kernel.NewMoney(decimal.RequireFromString("14.90"), "EUR")
	suite.Require().NoError(err)

	aggregate, err := product.NewProduct(kernel.NewUUID(), name, "", price, sku, "coffee")
	suite.Require().NoError(err)

	productRepo := productrepo.NewGormProductRepository(suite.db, noopTracker{})
	suite.Require().NoError(productRepo.Add(context.Background(), aggregate))

	quantity, err := kernel.NewQuantity(onHand)
	suite.Require().NoError(err)
	reorderThreshold, err := kernel.NewQuantity(threshold)
	suite.Require().NoError(err)

	stock, err := inventory.NewInventory(kernel.NewUUID(), aggregate.ID(), quantity, reorderThreshold)
	suite.Require().NoError(err)

	inventoryRepo := inventoryrepo.NewGormInventoryRepository(suite.db, noopTracker{})
	suite.Require().NoError(inventoryRepo.Add(context.Background(), stock))

	return aggregate.ID()
}

func TestGetLowStockQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLowStockQueryHandlerTestSuite))
}
