package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-pos-backend/internal/config"
	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/middleware"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"
	"go-pos-backend/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load Env
	envErr := godotenv.Load()

	cfg := config.Load()
	logger.Init("pos-api", cfg.Env == "development")
	if envErr != nil {
		logger.Logger.Warn().Msg(".env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.Product{},
		&model.InventoryChange{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("auto-migrate failed")
	}

	// 3. Seed default admin user
	seedAdminUser(repository.NewUserRepo(db))

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	changeRepo := repository.NewChangeRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, wsHub)
	changeService := service.NewChangeLogService(changeRepo)
	txService := service.NewTransactionService(txRepo, wsHub)
	authService := service.NewAuthService(userRepo)
	uploadService := service.NewUploadService(cfg.UploadDir)

	invHandler := handler.NewInventoryHandler(invService)
	changeHandler := handler.NewChangeLogHandler(changeService)
	txHandler := handler.NewTransactionHandler(txService)
	authHandler := handler.NewAuthHandler(authService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(fiberlogger.New()) // Logging request
	app.Use(recover.New())     // Panic recovery
	app.Use(cors.New())        // CORS
	app.Use(middleware.Metrics())

	// 7. Routes
	app.Post("/auth/login", authHandler.Login)

	app.Get("/inventory", invHandler.GetInventory)
	app.Post("/inventory", invHandler.PostInventory)
	app.Delete("/inventory/delete", invHandler.DeleteInventory)
	app.Post("/inventory/delete", invHandler.DeleteInventory)
	app.Put("/inventory/stock", invHandler.UpdateStock)
	app.Put("/inventory/update", invHandler.UpdateInventory)

	app.Get("/inventory_changes", changeHandler.GetChanges)
	app.Post("/inventory_changes", changeHandler.CreateChange)

	app.Get("/transactions", txHandler.GetTransactions)
	app.Post("/transactions", txHandler.CreateTransaction)

	app.Post("/upload", uploadHandler.Upload)
	app.All("/upload", handler.MethodNotAllowed)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Static("/uploads", cfg.UploadDir)

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

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("shutting down server")
	if err := app.Shutdown(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("forced shutdown")
	}

	logger.Logger.Info().Msg("server exited")
}

// seedAdminUser creates the default admin credentials when the users table
// has no admin row yet. The users table is otherwise externally managed.
func seedAdminUser(userRepo repository.UserRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := userRepo.FindByUsername(ctx, "admin")
	if err == nil {
		return
	}
	if !repository.IsNotFound(err) {
		logger.Logger.Warn().Err(err).Msg("admin lookup failed, skipping seed")
		return
	}

	admin := &model.User{Username: "admin", Role: "admin"}
	if err := admin.SetPassword("admin123"); err != nil {
		logger.Logger.Warn().Err(err).Msg("failed to hash admin password")
		return
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		logger.Logger.Warn().Err(err).Msg("failed to create admin user")
		return
	}
	logger.Logger.Info().Msg("admin user created: admin / admin123")
}
