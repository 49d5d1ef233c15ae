package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jhoicas/Oficina-api/internal/application/analytics"
	"github.com/jhoicas/Oficina-api/internal/application/auth"
	"github.com/jhoicas/Oficina-api/internal/application/servicing"
	"github.com/jhoicas/Oficina-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Oficina-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Oficina-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Oficina-api/internal/interfaces/http"
	"github.com/jhoicas/Oficina-api/pkg/config"
	"github.com/jhoicas/Oficina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool, cfg.Business.SalesTable)
	fileRepo := postgres.NewFileRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Términos de garantía: settings.warranty_text o el texto por defecto de config
	termsSvc := servicing.NewTermsService(settingsRepo, cfg.Business.DefaultWarranty)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	orderUC := servicing.NewOrderUseCase(
		orderRepo, fileRepo, productRepo, serviceRepo, userRepo,
		termsSvc, txRunner, pdfGenerator, log,
	)
	saleUC := servicing.NewSaleUseCase(saleRepo, productRepo, serviceRepo, userRepo, termsSvc, log)
	dashboardUC := appanalytics.NewDashboardUseCase(clientRepo, productRepo, serviceRepo, orderRepo, transactionRepo)
	financeUC := appanalytics.NewFinanceUseCase(transactionRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	catalogUC := usecase.NewCatalogUseCase(productRepo, serviceRepo, clientRepo)
	fileUC := servicing.NewFileUseCase(fileRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Oficina API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Auth:      authUC,
		Orders:    orderUC,
		Sales:     saleUC,
		Dashboard: dashboardUC,
		Finance:   financeUC,
		Users:     userUC,
		Catalog:   catalogUC,
		Files:     fileUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		addr := cfg.HTTP.Addr()
		log.Info().Str("addr", addr).Msg("servidor HTTP escuchando")
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor HTTP detenido")
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
