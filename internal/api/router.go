package api

import (
	"spendguard/docs"
	"spendguard/internal/api/handlers"
	"spendguard/pkg/auth"
	"spendguard/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	goalHandler *handlers.GoalHandler,
	purchaseHandler *handlers.PurchaseHandler,
	savingsHandler *handlers.SavingsHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger docs are registered by the docs package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes (public)
	userGroup := app.Group("/user")
	authGroup := userGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	goals := protected.Group("/goals")
	goals.Get("", goalHandler.ListGoals)
	goals.Post("", goalHandler.CreateGoal)
	goals.Post("/initialize", goalHandler.InitializeDefaultGoal)
	goals.Post("/reset-daily", goalHandler.ResetDailyGoals)
	goals.Put("/:id", goalHandler.UpdateGoal)

	purchases := protected.Group("/purchases")
	purchases.Post("", purchaseHandler.AddPurchase)
	purchases.Get("", purchaseHandler.ListPurchases)
	purchases.Post("/check-spending", purchaseHandler.CheckSpending)

	savings := protected.Group("/savings")
	savings.Post("/distribute", savingsHandler.Distribute)
	savings.Get("/daily", savingsHandler.DailySavings)
	savings.Get("/stats", savingsHandler.SavingsStats)

	protected.Post("/categorize", purchaseHandler.Categorize)

	return app
}
