package postgres_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/paymentrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/shipmentrepo"
	"storefront/internal/core/domain/model/customer"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across
// repositories sharing one unit of work.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&inventoryrepo.InventoryDTO{},
		&inventoryrepo.StockMovementDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{},
		&shipmentrepo.ShipmentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range []string{"customers", "products", "inventories", "orders", "payments", "shipments"} {
		suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	item := suite.createProduct()
	stock := suite.createInventory(item.ID())
	suite.Require().NoError(uow.ProductRepository().Add(ctx, item))
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, stock))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertRowCount("products", 1)
	suite.assertRowCount("inventories", 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	item := suite.createProduct()
	stock := suite.createInventory(item.ID())
	suite.Require().NoError(uow.ProductRepository().Add(ctx, item))
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, stock))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertRowCount("products", 0)
	suite.assertRowCount("inventories", 0)
	suite.assertRowCount("stock_movements", 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_WithoutTransaction_WorkDirectly() {
	ctx := context.Background()
	uow := suite.factory.Create()

	email, err := kernel.NewEmail("anna.schmidt@example.com")
	suite.Require().NoError(err)

	buyer, err := customer.NewCustomer(kernel.NewUUID(), "Anna", "Schmidt", email)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.CustomerRepository().Add(ctx, buyer))
	suite.assertRowCount("customers", 1)

	exists, err := uow.CustomerRepository().ExistsByEmail(ctx, email)
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) createProduct() *product.Product {
	price, err := kernel.NewMoney(decimal.RequireFromString("14.90"), "EUR")
	suite.Require().NoError(err)

	item, err := product.NewProduct(
		kernel.NewUUID(),
		"Espresso Beans 1kg",
		"Dark roast arabica",
		price,
		"COF-ESP-1KG",
		"Coffee",
	)
	suite.Require().NoError(err)

	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) createInventory(productID kernel.UUID) *inventory.Inventory {
	quantity, err := kernel.NewQuantity(20)
	suite.Require().NoError(err)

	threshold, err := kernel.NewQuantity(inventory.DefaultReorderThreshold)
	suite.Require().NoError(err)

	stock, err := inventory.NewInventory(kernel.NewUUID(), productID, quantity, threshold)
	suite.Require().NoError(err)

	return stock
}

func (suite *UnitOfWorkIntegrationTestSuite) assertRowCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
