package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juliotite/vendas-crm/internal/config"
	"github.com/juliotite/vendas-crm/internal/presentation/http/handler"
	"github.com/juliotite/vendas-crm/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Seller    *handler.SellerHandler
	Customer  *handler.CustomerHandler
	Product   *handler.ProductHandler
	Quote     *handler.QuoteHandler
	Alert     *handler.AlertHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Message   *handler.MessageHandler
	Email     *handler.EmailHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerSellerRoutes(v1, h)
		registerCustomerRoutes(v1, h)
		registerProductRoutes(v1, h)
		registerQuoteRoutes(v1, h)
		registerAlertRoutes(v1, h)
		registerMessageRoutes(v1, h)
		registerEmailRoutes(v1, h)

		v1.GET("/dashboard", h.Dashboard.GetStats)
		v1.GET("/reports", h.Report.GetReport)
	}

	return router
}

func registerSellerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	sellers := v1.Group("/sellers")
	{
		sellers.GET("", h.Seller.List)
		sellers.POST("", h.Seller.Create)
		sellers.GET("/:id", h.Seller.Get)
		sellers.PUT("/:id", h.Seller.Update)
		sellers.DELETE("/:id", h.Seller.Delete)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerQuoteRoutes(v1 *gin.RouterGroup, h *Handlers) {
	quotes := v1.Group("/quotes")
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("", h.Quote.Create)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PATCH("/:id/status", h.Quote.UpdateStatus)
		quotes.PATCH("/:id/notes", h.Quote.UpdateNotes)
		quotes.DELETE("/:id", h.Quote.Cancel)
	}
}

func registerAlertRoutes(v1 *gin.RouterGroup, h *Handlers) {
	alerts := v1.Group("/alerts")
	{
		alerts.GET("", h.Alert.List)
		alerts.GET("/:id", h.Alert.Get)
		alerts.POST("/generate", h.Alert.Generate)
		alerts.PATCH("/:id/resolve", h.Alert.Resolve)
	}
}

func registerMessageRoutes(v1 *gin.RouterGroup, h *Handlers) {
	messages := v1.Group("/messages")
	{
		messages.GET("", h.Message.List)
		messages.POST("/personalize", h.Message.Personalize)
	}
}

func registerEmailRoutes(v1 *gin.RouterGroup, h *Handlers) {
	emails := v1.Group("/email")
	{
		emails.POST("/alerts/:id", h.Email.SendAlert)
		emails.POST("/test", h.Email.SendTest)
	}
}
