package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/auth"
	"github.com/tu-usuario/ventas-pro/internal/application/orders"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	ClientUC   *usecase.ClientUseCase
	ReportUC   *usecase.ReportUseCase
	PlaceOrder *orders.PlaceOrderUseCase
	OrderUC    *orders.OrderUseCase
	OrderPDF   *orders.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. El middleware de auth es opcional en
// todo el árbol: deja la identidad en locals si hay token válido y cada
// handler decide si la exige.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", OptionalAuthMiddleware(deps.JWTSecret))

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authHandler.Me)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Clients
	clients := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/seller", clientHandler.ListBySeller)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Orders
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.PlaceOrder, deps.OrderUC, deps.OrderPDF)
	ordersGroup.Post("/", orderHandler.Place)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/seller", orderHandler.ListBySeller)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Delete("/:id", orderHandler.Delete)
	ordersGroup.Get("/:id/pdf", orderHandler.DownloadPDF)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/top-clients", reportHandler.TopClients)
	reports.Get("/top-sellers", reportHandler.TopSellers)
}
