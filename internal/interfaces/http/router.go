package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Oficina-api/internal/domain/entity"
	"github.com/jhoicas/Oficina-api/internal/domain/permission"
)

type authService interface {
	loginService
	actorLoader
}

// RouterDeps dependencias para el router. Los casos de uso de aplicación
// (*auth.AuthUseCase, *servicing.OrderUseCase, ...) cumplen estas interfaces.
type RouterDeps struct {
	Auth      authService
	Orders    orderService
	Sales     saleService
	Dashboard dashboardService
	Finance   financeService
	Users     userService
	Catalog   catalogService
	Files     fileService
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: Bearer Token + actor con permisos vigentes
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), ActorMiddleware(deps.Auth))
	protected.Get("/me/permissions", authHandler.Permissions)

	orderHandler := NewOrderHandler(deps.Orders)
	protected.Get("/terms", orderHandler.Terms)
	protected.Get("/responsibles", orderHandler.Responsibles)

	orders := protected.Group("/orders")
	orders.Get("/", RequireCapability(entity.ModuleOrders, permission.ActionView), orderHandler.List)
	orders.Post("/", RequireCapability(entity.ModuleOrders, permission.ActionAdd), orderHandler.Create)
	orders.Get("/:id", RequireCapability(entity.ModuleOrders, permission.ActionView), orderHandler.GetByID)
	orders.Put("/:id", RequireCapability(entity.ModuleOrders, permission.ActionEdit), orderHandler.Update)
	orders.Delete("/:id", RequireCapability(entity.ModuleOrders, permission.ActionDelete), orderHandler.Delete)
	orders.Get("/:id/pdf", RequireCapability(entity.ModuleOrders, permission.ActionView), orderHandler.PDF)

	saleHandler := NewSaleHandler(deps.Sales)
	sales := protected.Group("/sales")
	sales.Get("/", RequireCapability(entity.ModuleSales, permission.ActionView), saleHandler.List)
	sales.Post("/", RequireCapability(entity.ModuleSales, permission.ActionAdd), saleHandler.Create)
	sales.Get("/:id", RequireCapability(entity.ModuleSales, permission.ActionView), saleHandler.GetByID)
	sales.Put("/:id", RequireCapability(entity.ModuleSales, permission.ActionEdit), saleHandler.Update)
	sales.Delete("/:id", RequireCapability(entity.ModuleSales, permission.ActionDelete), saleHandler.Delete)

	dashboardHandler := NewDashboardHandler(deps.Dashboard, deps.Finance)
	protected.Get("/dashboard", RequireCapability(entity.ModuleDashboard, permission.ActionView), dashboardHandler.GetStats)
	protected.Get("/finance/summary", RequireCapability(entity.ModuleFinance, permission.ActionView), dashboardHandler.FinanceSummary)

	catalogHandler := NewCatalogHandler(deps.Catalog)
	protected.Get("/products", catalogHandler.Products)
	protected.Get("/services", catalogHandler.Services)
	protected.Get("/clients", catalogHandler.Clients)

	fileHandler := NewFileHandler(deps.Files)
	protected.Get("/files", RequireCapability(entity.ModuleFiles, permission.ActionView), fileHandler.List)

	userHandler := NewUserHandler(deps.Users)
	users := protected.Group("/users")
	users.Get("/", RequireCapability(entity.ModuleUsers, permission.ActionView), userHandler.List)
	users.Post("/", RequireCapability(entity.ModuleUsers, permission.ActionAdd), userHandler.Create)
}
