package main

import (
	"os"
	"os/signal"
	"syscall"

	"go-retail-backoffice/internal/handler"
	"go-retail-backoffice/internal/model"
	"go-retail-backoffice/internal/repository"
	"go-retail-backoffice/internal/service"
	"go-retail-backoffice/internal/ws"
	"go-retail-backoffice/pkg/database"
	"go-retail-backoffice/pkg/logging"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	log := logging.GetLogger()

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found")
	}

	// Monetary values cross the API as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Product{}, &model.Customer{}, &model.Order{}, &model.BusinessSettings{}); err != nil {
		log.Fatal("migration failed: ", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	catalogSvc := service.NewCatalogService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	orderSvc := service.NewOrderService(orderRepo, productRepo, wsHub)
	financeSvc := service.NewFinanceService(orderRepo, productRepo)
	settingsSvc := service.NewSettingsService(settingsRepo)
	labelSvc := service.NewLabelService(orderRepo, settingsSvc)
	exportSvc := service.NewExportService(orderRepo)
	dashboardSvc := service.NewDashboardService(orderRepo, financeSvc, catalogSvc)

	productHandler := handler.NewProductHandler(catalogSvc)
	customerHandler := handler.NewCustomerHandler(customerSvc)
	orderHandler := handler.NewOrderHandler(orderSvc, labelSvc, exportSvc)
	financeHandler := handler.NewFinanceHandler(financeSvc)
	settingsHandler := handler.NewSettingsHandler(settingsSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Retail Back Office v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api")

	// Products. low-stock must be registered before :id.
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/low-stock", productHandler.GetLowStockProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	// Customers
	api.Post("/customers", customerHandler.CreateCustomer)
	api.Get("/customers", customerHandler.GetCustomers)
	api.Get("/customers/:id", customerHandler.GetCustomer)
	api.Put("/customers/:id", customerHandler.UpdateCustomer)
	api.Delete("/customers/:id", customerHandler.DeleteCustomer)

	// Orders
	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders", orderHandler.GetOrders)
	api.Post("/orders/export-csv", orderHandler.ExportOrdersCSV)
	api.Post("/orders/bulk-labels", orderHandler.GetBulkShippingLabels)
	api.Get("/orders/:id", orderHandler.GetOrder)
	api.Put("/orders/:id", orderHandler.UpdateOrder)
	api.Delete("/orders/:id", orderHandler.DeleteOrder)
	api.Put("/orders/:id/status", orderHandler.UpdateOrderStatus)
	api.Get("/orders/:id/shipping-label", orderHandler.GetShippingLabel)

	// Finance
	api.Get("/finance/daily-sales", financeHandler.GetDailySales)
	api.Get("/finance/profit-loss", financeHandler.GetProfitLoss)

	// Settings + Dashboard
	api.Get("/settings", settingsHandler.GetSettings)
	api.Put("/settings", settingsHandler.UpdateSettings)
	api.Get("/dashboard", dashboardHandler.GetDashboard)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Info("Server exited")
}
