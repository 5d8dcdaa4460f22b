package routes

import (
	"time"

	"github.com/bookhaven/bookhaven-backend/internal/config"
	"github.com/bookhaven/bookhaven-backend/internal/handlers"
	"github.com/bookhaven/bookhaven-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	booksHandler *handlers.BooksHandler,
	paymentHandler *handlers.PaymentHandler,
	orderHandler *handlers.OrderHandler,
	healthHandler *handlers.HealthHandler,
	configHandler *handlers.StoreConfigHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Public
	api.Get("/health", healthHandler.Check)
	api.Get("/config", configHandler.GetConfig)

	// Auth — public, with a stricter limiter: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Everything else requires the bearer credential
	api.Get("/auth/verify", middleware.Protected(cfg), authHandler.Verify)
	api.Get("/products", middleware.Protected(cfg), catalogHandler.List)
	api.Get("/external-books", middleware.Protected(cfg), booksHandler.Search)
	api.Post("/payment", middleware.Protected(cfg), paymentHandler.Charge)
	api.Post("/orders", middleware.Protected(cfg), orderHandler.Checkout)
	api.Get("/orders", middleware.Protected(cfg), orderHandler.List)
}
