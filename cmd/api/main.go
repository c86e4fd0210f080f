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

	"github.com/farmapos/farmapos-api/internal/application/auth"
	"github.com/farmapos/farmapos-api/internal/application/inventory"
	"github.com/farmapos/farmapos-api/internal/application/purchases"
	"github.com/farmapos/farmapos-api/internal/application/quota"
	"github.com/farmapos/farmapos-api/internal/application/reports"
	"github.com/farmapos/farmapos-api/internal/application/sales"
	"github.com/farmapos/farmapos-api/internal/application/subscription"
	"github.com/farmapos/farmapos-api/internal/application/usecase"
	infrapdf "github.com/farmapos/farmapos-api/internal/infrastructure/pdf"
	"github.com/farmapos/farmapos-api/internal/infrastructure/postgres"
	"github.com/farmapos/farmapos-api/internal/infrastructure/salesbook"
	httpRouter "github.com/farmapos/farmapos-api/internal/interfaces/http"
	"github.com/farmapos/farmapos-api/pkg/config"
	"github.com/farmapos/farmapos-api/pkg/logger"
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

	// Repositorios sobre el pool (las tx crean los suyos vía TxRunner)
	companyRepo := postgres.NewCompanyRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	reportsRepo := postgres.NewReportsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cupos del plan: una sola instancia compartida por todos los creates
	quotaResolver := quota.NewResolver(
		subscriptionRepo, planRepo, branchRepo, userRepo, productRepo, supplierRepo,
	)

	inventoryUC := inventory.NewUseCase(txRunner, inventoryRepo, productRepo, branchRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo, quotaResolver)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, quotaResolver)
	productUC := usecase.NewProductUseCase(productRepo, quotaResolver, inventoryUC)
	userUC := usecase.NewUserUseCase(userRepo, quotaResolver)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	planUC := usecase.NewPlanUseCase(planRepo)
	subscriptionUC := subscription.NewUseCase(subscriptionRepo, planRepo, companyRepo)

	checkoutUC := sales.NewCheckoutUseCase(txRunner, saleRepo, productRepo, branchRepo, customerRepo)
	receiptUC := sales.NewReceiptUseCase(
		saleRepo, productRepo, branchRepo, companyRepo,
		infrapdf.NewMarotoReceiptGenerator(),
	)
	purchaseUC := purchases.NewUseCase(txRunner, purchaseRepo, productRepo, supplierRepo, branchRepo)
	reportsUC := reports.NewUseCase(
		reportsRepo, companyRepo, subscriptionRepo, planRepo,
		salesbook.NewBuilderService(),
	)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, companyRepo, auth.JWTConfig{
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
		Title:    "FarmaPOS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		PlanUC:         planUC,
		BranchUC:       branchUC,
		SupplierUC:     supplierUC,
		ProductUC:      productUC,
		UserUC:         userUC,
		CustomerUC:     customerUC,
		InventoryUC:    inventoryUC,
		SubscriptionUC: subscriptionUC,
		QuotaResolver:  quotaResolver,
		CheckoutUC:     checkoutUC,
		ReceiptUC:      receiptUC,
		PurchaseUC:     purchaseUC,
		ReportsUC:      reportsUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
