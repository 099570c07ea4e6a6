package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/olimjonbek/savdo-backend/internal/config"
	"github.com/olimjonbek/savdo-backend/internal/handlers"
	"github.com/olimjonbek/savdo-backend/internal/middleware"
	"gorm.io/gorm"
)

// Setup mounts the storefront routes. Paths mirror the site the
// frontend was built against, including the historical /dashbord
// spelling.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	catalogHandler *handlers.CatalogHandler,
	authHandler *handlers.AuthHandler,
	orderHandler *handlers.OrderHandler,
	profileHandler *handlers.ProfileHandler,
	cabinetHandler *handlers.CabinetHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)

	// Public catalog
	app.Get("/", catalogHandler.Home)
	app.Get("/product-list", catalogHandler.ProductList)
	app.Get("/product-detail/:slug", catalogHandler.ProductDetail)
	app.Get("/aloqa/", cabinetHandler.Aloqa)

	// Auth: stricter rate limit, 10 req/min per IP
	auth := app.Group("/accounts")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Get("/login/", authHandler.LoginPage)
	auth.Post("/login/", authHandler.Login)
	auth.Post("/refresh/", authHandler.Refresh)

	app.Post("/logout", authHandler.Logout)

	// Authenticated storefront actions
	loginRequired := middleware.LoginRequired(cfg)
	app.Post("/product-detail/:slug/order", loginRequired, orderHandler.Submit)
	app.Post("/comments", loginRequired, orderHandler.Comment)
	app.Get("/profile", loginRequired, profileHandler.Page)
	app.Post("/profile", loginRequired, profileHandler.Update)

	// Seller cabinet
	app.Get("/dashbord", loginRequired, cabinetHandler.Dashboard)
	app.Get("/market", loginRequired, cabinetHandler.Market)
	app.Get("/stream", loginRequired, cabinetHandler.Stream)
	app.Get("/statistics", loginRequired, cabinetHandler.Statistics)
	app.Get("/payment", loginRequired, cabinetHandler.Payment)

	// Admin catalog registration
	admin := app.Group("/admin", loginRequired, middleware.AdminRequired(db))
	admin.Post("/categories", adminHandler.CreateCategory)
	admin.Post("/products", adminHandler.CreateProduct)
	admin.Post("/stores", adminHandler.CreateStore)
	admin.Post("/regions", adminHandler.CreateRegion)
	admin.Get("/regions", adminHandler.ListRegions)
}
