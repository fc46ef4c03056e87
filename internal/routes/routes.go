package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/shoplist/backend/internal/config"
	"github.com/shoplist/backend/internal/handlers"
	"github.com/shoplist/backend/internal/middleware"
	"github.com/shoplist/backend/internal/models"
	"github.com/shoplist/backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	itemHandler *handlers.ItemHandler,
	listHandler *handlers.ListHandler,
	listItemHandler *handlers.ListItemHandler,
	seedHandler *handlers.SeedHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Seed bypasses authorization; the service itself refuses on prod
	api.Post("/seed", seedHandler.Execute)

	// Auth — public, with a stricter rate limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a verified token resolved to an active user
	protected := api.Group("", middleware.JWTProtected(cfg), middleware.CurrentUser(authService))

	protected.Get("/auth/revalidate", authHandler.Revalidate)

	protected.Post("/items", itemHandler.Create)
	protected.Get("/items", itemHandler.List)
	protected.Get("/items/count", itemHandler.Count)
	protected.Get("/items/:id", itemHandler.Get)
	protected.Put("/items/:id", itemHandler.Update)
	protected.Delete("/items/:id", itemHandler.Delete)

	protected.Post("/lists", listHandler.Create)
	protected.Get("/lists", listHandler.List)
	protected.Get("/lists/count", listHandler.Count)
	protected.Get("/lists/:id", listHandler.Get)
	protected.Get("/lists/:id/items", listHandler.ListItems)
	protected.Get("/lists/:id/items/count", listHandler.CountItems)
	protected.Put("/lists/:id", listHandler.Update)
	protected.Delete("/lists/:id", listHandler.Delete)

	protected.Post("/list-items", listItemHandler.Create)
	protected.Get("/list-items/:id", listItemHandler.Get)
	protected.Put("/list-items/:id", listItemHandler.Update)
	protected.Delete("/list-items/:id", listItemHandler.Delete)

	// Admin user management
	admin := protected.Group("/users", middleware.RoleRequired(models.RoleAdmin, models.RoleSuperUser))
	admin.Get("/", userHandler.List)
	admin.Get("/:id", userHandler.Get)
	admin.Put("/:id", userHandler.Update)
	admin.Post("/:id/block", userHandler.Block)
}
