package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bunx-io/salonx-api/internal/application/analytics"
	"github.com/bunx-io/salonx-api/internal/application/auth"
	"github.com/bunx-io/salonx-api/internal/application/sales"
	"github.com/bunx-io/salonx-api/internal/application/stock"
	"github.com/bunx-io/salonx-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	CheckoutUC     *sales.CheckoutUseCase
	MovementUC     *stock.MovementUseCase
	ProductUC      *usecase.ProductUseCase
	ClientUC       *usecase.ClientUseCase
	ClientCRMUC    *usecase.ClientCRMUseCase
	ProfessionalUC *usecase.ProfessionalUseCase
	ServiceUC      *usecase.ServiceUseCase
	AppointmentUC  *usecase.AppointmentUseCase
	TransactionUC  *usecase.TransactionUseCase
	UserUC         *usecase.UserUseCase
	SettingsUC     *usecase.SettingsUseCase
	DashboardUC    *analytics.DashboardUseCase
	ReportsUC      *analytics.ReportsUseCase
	CommissionsUC  *analytics.CommissionsUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Vendas (PDV)
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)

	// Movimentações de estoque
	movements := api.Group("/stock-movements")
	stockHandler := NewStockHandler(deps.MovementUC)
	movements.Post("/", stockHandler.Create)
	movements.Get("/", stockHandler.List)

	// Produtos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clientes
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Deactivate)
	clients.Post("/:id/reconcile", clientHandler.Reconcile)

	clientCRMHandler := NewClientCRMHandler(deps.ClientCRMUC)
	clients.Get("/:id/notes", clientCRMHandler.ListNotes)
	clients.Post("/:id/notes", clientCRMHandler.CreateNote)
	clients.Get("/:id/interactions", clientCRMHandler.ListInteractions)

	// Profissionais
	professionals := api.Group("/professionals")
	professionalHandler := NewProfessionalHandler(deps.ProfessionalUC)
	professionals.Post("/", professionalHandler.Create)
	professionals.Get("/", professionalHandler.List)
	professionals.Get("/:id", professionalHandler.GetByID)
	professionals.Put("/:id", professionalHandler.Update)
	professionals.Delete("/:id", professionalHandler.Deactivate)

	// Serviços
	services := api.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Deactivate)

	// Agenda
	appointments := api.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Financeiro
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	// Usuários
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Configurações
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Post("/", settingsHandler.Create)
	settings.Put("/", settingsHandler.BulkUpdate)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/metrics", dashboardHandler.Metrics)

	// Relatórios
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	api.Get("/reports", reportsHandler.Generate)

	// Comissões
	commissions := api.Group("/commissions")
	commissionsHandler := NewCommissionsHandler(deps.CommissionsUC)
	commissions.Get("/", commissionsHandler.Get)
	commissions.Post("/", commissionsHandler.Calculate)
	commissions.Put("/", commissionsHandler.UpdateRate)
}
