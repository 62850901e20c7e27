package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"storefront/cmd"
	adapterhttp "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/paymentrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/adapters/out/postgres/shipmentrepo"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := connectDB(configs)
	migrateSchema(db)

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := jobs.NewJobManager(app.CreateGetLowStockQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		GatewayDeclinePrefix: os.Getenv("GATEWAY_DECLINE_PREFIX"),
		ShippingRatePerLine:  os.Getenv("SHIPPING_RATE_PER_LINE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	return db
}

func migrateSchema(db *gorm.DB) {
	err := db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&inventoryrepo.InventoryDTO{},
		&inventoryrepo.StockMovementDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&paymentrepo.PaymentDTO{},
		&shipmentrepo.ShipmentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateAddProductCommandHandler(),
		app.CreateInitializeStockCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateProcessPaymentCommandHandler(),
		app.CreateCapturePaymentCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateShipOrderCommandHandler(),
		app.CreateMarkDeliveredCommandHandler(),
		app.CreateGetOrderByNumberQueryHandler(),
		app.CreateGetCustomerOrdersQueryHandler(),
		app.CreateSearchProductsQueryHandler(),
		app.CreateGetLowStockQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
