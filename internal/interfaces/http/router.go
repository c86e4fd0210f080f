package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmapos/farmapos-api/internal/application/auth"
	"github.com/farmapos/farmapos-api/internal/application/inventory"
	"github.com/farmapos/farmapos-api/internal/application/purchases"
	"github.com/farmapos/farmapos-api/internal/application/quota"
	"github.com/farmapos/farmapos-api/internal/application/reports"
	"github.com/farmapos/farmapos-api/internal/application/sales"
	"github.com/farmapos/farmapos-api/internal/application/subscription"
	"github.com/farmapos/farmapos-api/internal/application/usecase"
	"github.com/farmapos/farmapos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	PlanUC         *usecase.PlanUseCase
	BranchUC       *usecase.BranchUseCase
	SupplierUC     *usecase.SupplierUseCase
	ProductUC      *usecase.ProductUseCase
	UserUC         *usecase.UserUseCase
	CustomerUC     *usecase.CustomerUseCase
	InventoryUC    *inventory.UseCase
	SubscriptionUC *subscription.UseCase
	QuotaResolver  *quota.Resolver
	CheckoutUC     *sales.CheckoutUseCase
	ReceiptUC      *sales.ReceiptUseCase
	PurchaseUC     *purchases.UseCase
	ReportsUC      *reports.UseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Planes visibles para cualquier usuario autenticado
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC, deps.PlanUC, deps.QuotaResolver)
	protected.Get("/plans", subscriptionHandler.ListPlans)

	// Suscripción del tenant: lectura para todos, cambios solo admin_cliente
	subGroup := protected.Group("/subscription")
	subGroup.Get("/", subscriptionHandler.Get)
	subGroup.Get("/quota", subscriptionHandler.QuotaOverview)
	subGroup.Post("/:plan_id", RequireRole(entity.RoleAdminCliente), subscriptionHandler.Subscribe)
	subGroup.Delete("/", RequireRole(entity.RoleAdminCliente), subscriptionHandler.Cancel)

	// Sucursales (con cupo del plan)
	branches := protected.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/:id", branchHandler.GetByID)
	branches.Put("/:id", branchHandler.Update)
	branches.Delete("/:id", branchHandler.Delete)

	// Proveedores (con cupo del plan)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Productos (con cupo del plan) + stock manual
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.InventoryUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/stock", productHandler.AdjustStock)
	products.Get("/:id/stock", productHandler.GetStock)

	// Inventario por sucursal
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/branches/:branch_id", inventoryHandler.ListByBranch)

	// Equipo (con cupo del plan): solo el admin del tenant
	team := protected.Group("/team", RequireRole(entity.RoleAdminCliente))
	userHandler := NewUserHandler(deps.UserUC)
	team.Post("/", userHandler.Create)
	team.Get("/", userHandler.List)
	team.Get("/:id", userHandler.GetByID)
	team.Put("/:id", userHandler.Update)
	team.Delete("/:id", userHandler.Delete)

	// Clientes (sin cupo)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Ventas: checkout atómico + lectura + boleta PDF
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.ReceiptUC)
	salesGroup.Post("/checkout", saleHandler.Checkout)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.Receipt)

	// Compras a proveedores
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)

	// Reportes
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/", reportHandler.Dashboard)
	reportsGroup.Get("/stock-by-branch", reportHandler.StockByBranch)
	reportsGroup.Get("/supplier-purchases", reportHandler.SupplierPurchases)
	reportsGroup.Get("/sales-book", reportHandler.SalesBook)

	// Administración de la plataforma (solo super_admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleSuperAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.UserUC)
	adminCompanies := admin.Group("/companies")
	adminCompanies.Post("/", companyHandler.Create)
	adminCompanies.Get("/", companyHandler.List)
	adminCompanies.Get("/:id", companyHandler.GetByID)
	adminCompanies.Put("/:id", companyHandler.Update)
	adminCompanies.Delete("/:id", companyHandler.Delete)
	adminCompanies.Get("/:id/users", companyHandler.ListUsers)
	adminCompanies.Post("/:id/users", companyHandler.CreateUser)
	adminCompanies.Put("/:id/users/:user_id", companyHandler.UpdateUser)
	adminCompanies.Delete("/:id/users/:user_id", companyHandler.DeleteUser)

	planHandler := NewPlanHandler(deps.PlanUC)
	adminPlans := admin.Group("/plans")
	adminPlans.Post("/", planHandler.Create)
	adminPlans.Get("/", planHandler.List)
	adminPlans.Get("/:id", planHandler.GetByID)
	adminPlans.Put("/:id", planHandler.Update)
	adminPlans.Delete("/:id", planHandler.Delete)
}
