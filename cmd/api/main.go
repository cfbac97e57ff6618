package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
	"github.com/bunx-io/salonx-api/internal/application/auth"
	"github.com/bunx-io/salonx-api/internal/application/sales"
	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
	"github.com/bunx-io/salonx-api/internal/infrastructure/cache"
	"github.com/bunx-io/salonx-api/internal/infrastructure/postgres"
	httpRouter "github.com/bunx-io/salonx-api/internal/interfaces/http"
	"github.com/bunx-io/salonx-api/migrations"
	"github.com/bunx-io/salonx-api/pkg/config"
	"github.com/bunx-io/salonx-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Valores monetários saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true

	if err := migrations.Up(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	professionalRepo := postgres.NewProfessionalRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	clientNoteRepo := postgres.NewClientNoteRepository(pool)
	clientInteractionRepo := postgres.NewClientInteractionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	movementUC := stock.NewMovementUseCase(txRunner, productRepo, movementRepo)

	// CHECKOUT_ATOMIC=false reproduz a sequência sem transação do sistema de
	// origem; o default envolve o fechamento inteiro numa transação.
	var checkoutRunner sales.TxRunner = txRunner
	if !cfg.Checkout.Atomic {
		log.Warn().Msg("checkout em modo sequencial (sem transação)")
		checkoutRunner = postgres.NewSequentialRunner(pool)
	}
	checkoutUC := sales.NewCheckoutUseCase(checkoutRunner, movementUC, saleRepo)

	var dashboardCache analytics.DashboardCache = cache.NewNoop()
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis indisponível; dashboard sem cache")
		} else {
			defer redisCache.Close()
			dashboardCache = redisCache
		}
	}

	productUC := usecase.NewProductUseCase(productRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, saleRepo)
	clientCRMUC := usecase.NewClientCRMUseCase(clientRepo, clientNoteRepo, clientInteractionRepo)
	professionalUC := usecase.NewProfessionalUseCase(professionalRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, clientRepo, professionalRepo, serviceRepo)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo, dashboardCache)
	reportsUC := analytics.NewReportsUseCase(analyticsRepo)
	commissionsUC := analytics.NewCommissionsUseCase(analyticsRepo, professionalRepo)
	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CheckoutUC:     checkoutUC,
		MovementUC:     movementUC,
		ProductUC:      productUC,
		ClientUC:       clientUC,
		ClientCRMUC:    clientCRMUC,
		ProfessionalUC: professionalUC,
		ServiceUC:      serviceUC,
		AppointmentUC:  appointmentUC,
		TransactionUC:  transactionUC,
		UserUC:         userUC,
		SettingsUC:     settingsUC,
		DashboardUC:    dashboardUC,
		ReportsUC:      reportsUC,
		CommissionsUC:  commissionsUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
