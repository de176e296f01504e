package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"pipetgo/cmd"
	httpin "pipetgo/internal/adapters/in/http"
	"pipetgo/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		jobs.NewStaleQuoteRequestJob(
			app.CreateGetStaleQuoteOrdersQueryHandler(),
			configs.StaleQuoteSweepSchedule,
			staleQuoteMaxAge(configs),
			logger,
		),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		StaleQuoteSweepSchedule: goDotEnvVariable("STALE_QUOTE_SWEEP_SCHEDULE"),
		StaleQuoteMaxAgeHours:   goDotEnvVariable("STALE_QUOTE_MAX_AGE_HOURS"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func staleQuoteMaxAge(configs cmd.Config) time.Duration {
	hours, err := strconv.Atoi(configs.StaleQuoteMaxAgeHours)
	if err != nil || hours < 1 {
		log.Fatalf("Invalid STALE_QUOTE_MAX_AGE_HOURS: %q", configs.StaleQuoteMaxAgeHours)
	}
	return time.Duration(hours) * time.Hour
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateProvideQuoteCommandHandler(),
		app.CreateDecideQuoteCommandHandler(),
		app.CreateRequestCustomQuoteCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateCreateLabServiceCommandHandler(),
		app.CreateUpdateLabServiceCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
		app.CreateGetLabServicesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
