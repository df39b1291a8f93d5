package main

import (
	"context"
	"log"
	"time"

	"spendguard/internal/models"
	"spendguard/internal/repository"
	"spendguard/pkg/auth"
	"spendguard/pkg/config"
	"spendguard/pkg/logger"
	"spendguard/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeds a demo account with goals, purchases and saved purchases so the API
// has data to play with right after a fresh migration.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	goalRepo := repository.NewGoalRepository(db, appLogger)
	purchaseRepo := repository.NewPurchaseRepository(db, appLogger)
	savedRepo := repository.NewSavedPurchaseRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	now := time.Now()

	// Demo user
	if existing, err := userRepo.GetByEmail(ctx, "demo@spendguard.app"); err == nil && existing != nil {
		appLogger.Info("Demo user already exists, nothing to do", zap.String("email", existing.Email))
		return
	}

	passwordHash, err := auth.HashPassword("demo1234")
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	user := &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     "demo@spendguard.app",
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}
	appLogger.Info("Created demo user", zap.String("email", user.Email))

	// Goals: the default daily limit plus a couple of savings targets
	goals := []*models.Goal{
		{
			ID:           uuid.New(),
			UserID:       user.ID,
			Name:         "Daily Spending Limit",
			Type:         models.GoalTypeDailySpending,
			TargetAmount: 100,
			Period:       models.PeriodDaily,
			IsDefault:    true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:            uuid.New(),
			UserID:        user.ID,
			Name:          "Vacation Fund",
			Type:          models.GoalTypeSavings,
			TargetAmount:  2000,
			CurrentAmount: 150,
			Period:        models.PeriodYearly,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		{
			ID:            uuid.New(),
			UserID:        user.ID,
			Name:          "New Laptop",
			Type:          models.GoalTypeSavings,
			TargetAmount:  1200,
			CurrentAmount: 300,
			Period:        models.PeriodOneTime,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
	for _, goal := range goals {
		if err := goalRepo.Create(ctx, goal); err != nil {
			appLogger.Fatal("Failed to create goal", zap.String("name", goal.Name), zap.Error(err))
		}
		appLogger.Info("Created goal", zap.String("name", goal.Name))
	}

	// A few purchases spread across recent days
	purchases := []*models.Purchase{
		{
			ItemName:     "Lunch burrito",
			Price:        12.50,
			Category:     models.CategoryFood,
			Website:      "doordash.com",
			PurchaseDate: now.Add(-2 * time.Hour),
		},
		{
			ItemName:     "Bus pass",
			Price:        25,
			Category:     models.CategoryTransport,
			Website:      "transit.app",
			PurchaseDate: now.AddDate(0, 0, -1),
		},
		{
			ItemName:     "Movie tickets",
			Price:        32,
			Category:     models.CategoryEntertainment,
			Website:      "fandango.com",
			PurchaseDate: now.AddDate(0, 0, -2),
		},
		{
			ItemName:     "Running shoes",
			Price:        89.99,
			Category:     models.CategoryFashion,
			Website:      "amazon.com",
			PurchaseDate: now.AddDate(0, 0, -4),
		},
	}
	for _, p := range purchases {
		p.ID = uuid.New()
		p.UserID = user.ID
		p.Currency = "USD"
		p.CreatedAt = now
		if err := purchaseRepo.Create(ctx, p); err != nil {
			appLogger.Fatal("Failed to create purchase", zap.String("item", p.ItemName), zap.Error(err))
		}
		appLogger.Info("Created purchase", zap.String("item", p.ItemName))
	}

	// One avoided purchase already distributed across the savings goals
	saved := &models.SavedPurchase{
		ID:                 uuid.New(),
		UserID:             user.ID,
		ItemName:           "Mechanical keyboard",
		AmountSaved:        150,
		Currency:           "USD",
		Website:            "amazon.com",
		SavedDate:          now.AddDate(0, 0, -1),
		DistributionMethod: models.DistributionEqual,
		GoalsUpdated:       []string{goals[1].ID.String(), goals[2].ID.String()},
		CreatedAt:          now,
	}
	if err := savedRepo.Create(ctx, saved); err != nil {
		appLogger.Fatal("Failed to create saved purchase", zap.Error(err))
	}
	appLogger.Info("Created saved purchase", zap.String("item", saved.ItemName))

	appLogger.Info("Database seeding completed successfully!")
}
