package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"logistics/cmd"
	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/incidentrepo"
	"logistics/internal/adapters/out/postgres/invoicerepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/tariffrepo"
	"logistics/internal/adapters/out/postgres/vehiclerepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	if err := ensureDatabase(configs); err != nil {
		log.Fatalf("Error preparing database: %v", err)
	}

	gormDB, err := openGorm(configs)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// ensureDatabase creates the application database when it does not exist
// yet, connecting to the maintenance database to check.
func ensureDatabase(configs cmd.Config) error {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName))
	return err
}

func openGorm(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&tariffrepo.DestinationDTO{},
		&tariffrepo.TariffDTO{},
		&shipmentrepo.ShipmentDTO{},
		&driverrepo.DriverDTO{},
		&vehiclerepo.VehicleDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteShipmentDTO{},
		&incidentrepo.IncidentDTO{},
		&invoicerepo.InvoiceDTO{},
		&invoicerepo.InvoiceLinkDTO{},
		&invoicerepo.PaymentDTO{},
	)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(httpin.ServerHandlers{
		CreateShipment:  app.CreateCreateShipmentCommandHandler(),
		UpdateShipment:  app.CreateUpdateShipmentCommandHandler(),
		DeleteShipment:  app.CreateDeleteShipmentCommandHandler(),
		RegisterDriver:  app.CreateRegisterDriverCommandHandler(),
		RegisterVehicle: app.CreateRegisterVehicleCommandHandler(),
		CreateRoute:     app.CreateCreateRouteCommandHandler(),
		UpdateRoute:     app.CreateUpdateRouteCommandHandler(),
		CloseRoute:      app.CreateCloseRouteCommandHandler(),
		CreateIncident:  app.CreateCreateIncidentCommandHandler(),
		ResolveIncident: app.CreateResolveIncidentCommandHandler(),
		CreateInvoice:   app.CreateCreateInvoiceCommandHandler(),
		DeleteInvoice:   app.CreateDeleteInvoiceCommandHandler(),
		LinkShipment:    app.CreateLinkShipmentCommandHandler(),
		UnlinkShipment:  app.CreateUnlinkShipmentCommandHandler(),
		RecordPayment:   app.CreateRecordPaymentCommandHandler(),
		DeletePayment:   app.CreateDeletePaymentCommandHandler(),

		GetShipmentEstimate: app.CreateGetShipmentEstimateQueryHandler(),
		GetUnpaidInvoices:   app.CreateGetUnpaidInvoicesQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
