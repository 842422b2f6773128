package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/stock-sheets-api/internal/application/stock"
	infrasheets "github.com/jhoicas/stock-sheets-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/stock-sheets-api/internal/interfaces/http"
	"github.com/jhoicas/stock-sheets-api/pkg/config"
	"github.com/jhoicas/stock-sheets-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("spreadsheet_id", cfg.Sheets.SpreadsheetID).
		Msg("iniciando aplicación")

	ctx := context.Background()
	sheetsClient, err := infrasheets.NewClient(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Google Sheets")
	}

	stockRepo := infrasheets.NewStockRepository(sheetsClient, cfg.Sheets.StockSheet)
	logRepo := infrasheets.NewTransactionLogRepository(sheetsClient, cfg.Sheets.TransactionSheet)

	queryUC := stock.NewQueryUseCase(stockRepo, log.Zerolog())
	updateUC := stock.NewUpdateStockUseCase(stockRepo, logRepo, log.Zerolog())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	// CORS abierto para que el frontend pueda consumir la API
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stock Sheets API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockQuery:  queryUC,
		StockUpdate: updateUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Frontend estático (index.html y assets)
	app.Static("/", cfg.HTTP.FrontendDir)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
