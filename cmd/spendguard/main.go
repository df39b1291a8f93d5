package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"spendguard/internal/api"
	"spendguard/internal/api/handlers"
	"spendguard/internal/repository"
	"spendguard/internal/service"
	"spendguard/pkg/auth"
	"spendguard/pkg/config"
	"spendguard/pkg/logger"
	"spendguard/pkg/postgres"

	"go.uber.org/zap"
)

// @title SpendGuard API
// @version 1.0
// @description Personal finance service: daily spending limits, AI-categorized purchases and savings goal distribution
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@spendguard.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting SpendGuard service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(db, appLogger)
	savedRepo := repository.NewSavedPurchaseRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	categorizationService := service.NewCategorizationService(llmService, appLogger)
	purchaseService := service.NewPurchaseService(purchaseRepo, categorizationService, appLogger)
	spendingService := service.NewSpendingService(goalRepo, purchaseRepo, llmService, appLogger)
	distributionService := service.NewDistributionService(goalRepo, savedRepo, appLogger)
	savingsService := service.NewSavingsService(savedRepo, appLogger)
	goalService := service.NewGoalService(goalRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	goalHandler := handlers.NewGoalHandler(goalService, appLogger)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, spendingService, categorizationService, appLogger)
	savingsHandler := handlers.NewSavingsHandler(distributionService, savingsService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, goalHandler, purchaseHandler, savingsHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
