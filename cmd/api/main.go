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

	"github.com/jhoicas/Libreria-api/internal/application/auth"
	"github.com/jhoicas/Libreria-api/internal/application/inventory"
	"github.com/jhoicas/Libreria-api/internal/application/sales"
	"github.com/jhoicas/Libreria-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Libreria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Libreria-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/Libreria-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/Libreria-api/internal/interfaces/http"
	"github.com/jhoicas/Libreria-api/pkg/config"
	"github.com/jhoicas/Libreria-api/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	redisClient, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisClient.Close()

	// Repos sobre el pool (lecturas y escrituras simples);
	// las operaciones transaccionales van por el TxRunner.
	bookRepo := postgres.NewBookRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	sessions := infraredis.NewSessionStore(
		redisClient,
		time.Duration(cfg.Session.InactivityMinutes)*time.Minute,
	)

	ledger := inventory.NewLedger()
	adjustUC := inventory.NewAdjustStockUseCase(txRunner, ledger, movRepo)
	saleUC := sales.NewSaleUseCase(txRunner, ledger, bookRepo, clientRepo, saleRepo)

	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptUC := sales.NewReceiptPDFUseCase(saleRepo, clientRepo, bookRepo, pdfGenerator)

	bookUC := usecase.NewBookUseCase(bookRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo, txRunner)
	reportUC := usecase.NewReportUseCase(bookRepo)

	authUC := auth.NewAuthUseCase(userRepo, sessions, auth.JWTConfig{
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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		BookUC:     bookUC,
		CategoryUC: categoryUC,
		ClientUC:   clientUC,
		UserUC:     userUC,
		ReportUC:   reportUC,
		SaleUC:     saleUC,
		ReceiptUC:  receiptUC,
		AdjustUC:   adjustUC,
		Sessions:   sessions,
		JWTSecret:  cfg.JWT.Secret,
	})

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
