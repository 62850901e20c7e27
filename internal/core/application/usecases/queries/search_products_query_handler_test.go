package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/queries"
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

type SearchProductsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.SearchProductsQueryHandler
}

func (suite *SearchProductsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewSearchProductsQueryHandler(db)
}

func (suite *SearchProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SearchProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products CASCADE").Error
	suite.Require().NoError(err)

	suite.seedProduct("Espresso Beans 1kg", "COF-001", "coffee", true)
	suite.seedProduct("Decaf Espresso Beans", "COF-002", "coffee", true)
	suite.seedProduct("Ceramic Mug", "MUG-001", "accessories", true)
	suite.seedProduct("Legacy Grinder", "GRD-001", "accessories", false)
}

func (suite *SearchProductsQueryHandlerTestSuite) TestHandle_EmptyQuery_ReturnsAllProducts() {
	query := queries.NewSearchProductsQuery("", "", false)

	results, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(results, 4)
}

func (suite *SearchProductsQueryHandlerTestSuite) TestHandle_TermMatchesNameAndSKU() {
	byName := queries.NewSearchProductsQuery("espresso", "", false)
	bySKU := queries.NewSearchProductsQuery("mug-0", "", false)

	nameResults, err := suite.handler.Handle(context.Background(), byName)
	suite.Require().NoError(err)
	skuResults, err := suite.handler.Handle(context.Background(), bySKU)
	suite.Require().NoError(err)

	suite.Len(nameResults, 2)
	suite.Require().Len(skuResults, 1)
	suite.Equal("Ceramic Mug", skuResults[0].Name)
}

func (suite *SearchProductsQueryHandlerTestSuite) TestHandle_CategoryFilter() {
	query := queries.NewSearchProductsQuery("", "accessories", false)

	results, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(results, 2)
	for _, item := range results {
		suite.Equal("accessories", item.Category)
	}
}

func (suite *SearchProductsQueryHandlerTestSuite) TestHandle_ActiveOnlyExcludesDeactivated() {
	query := queries.NewSearchProductsQuery("", "accessories", true)

	results, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal("MUG-001", results[0].SKU)
	suite.True(results[0].Active)
}

func (suite *SearchProductsQueryHandlerTestSuite) TestHandle_NoMatches_ReturnsEmptySlice() {
	query := queries.NewSearchProductsQuery("teapot", "", false)

	results, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *SearchProductsQueryHandlerTestSuite) seedProduct(name string, sku string, category string, active bool) {
	price, err := kernel.NewMoney(decimal.RequireFromString("14.90"), "EUR")
	suite.Require().NoError(err)

	aggregate, err := product.NewProduct(kernel.NewUUID(), name, "", price, sku, category)
	suite.Require().NoError(err)
	if !active {
		aggregate.Deactivate()
	}

	repo := productrepo.NewGormProductRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
}

func TestSearchProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchProductsQueryHandlerTestSuite))
}
