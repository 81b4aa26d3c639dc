package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juliotite/vendas-crm/internal/application/service"
	"github.com/juliotite/vendas-crm/internal/config"
	"github.com/juliotite/vendas-crm/internal/infrastructure/database"
	"github.com/juliotite/vendas-crm/internal/infrastructure/repository"
	"github.com/juliotite/vendas-crm/internal/presentation/http/handler"
	"github.com/juliotite/vendas-crm/internal/presentation/http/routes"
	"github.com/juliotite/vendas-crm/pkg/email"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// All alert date arithmetic runs in this zone
	loc, err := time.LoadLocation(cfg.Alerts.Timezone)
	if err != nil {
		log.Fatalf("Invalid alert timezone %q: %v", cfg.Alerts.Timezone, err)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed demo data when requested
	if cfg.App.SeedDemo {
		if err := database.SeedDemoData(db); err != nil {
			log.Printf("Warning: Failed to seed demo data: %v", err)
		}
	}

	// Initialize repositories
	sellerRepo := repository.NewSellerRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize services
	sellerService := service.NewSellerService(sellerRepo)
	customerService := service.NewCustomerService(customerRepo, sellerRepo)
	productService := service.NewProductService(productRepo)
	quoteService := service.NewQuoteService(quoteRepo, customerRepo, productRepo)
	alertService := service.NewAlertService(alertRepo)
	alertGenerator := service.NewAlertGenerator(alertRepo, customerRepo, quoteRepo, loc)
	dashboardService := service.NewDashboardService(customerRepo, quoteRepo, alertRepo, loc)
	reportService := service.NewReportService(customerRepo, quoteRepo, loc)
	outreachService := service.NewOutreachService(alertRepo, quoteRepo, emailService, loc)
	messageService := service.NewMessageService()

	// Initialize handlers
	handlers := &routes.Handlers{
		Seller:    handler.NewSellerHandler(sellerService),
		Customer:  handler.NewCustomerHandler(customerService),
		Product:   handler.NewProductHandler(productService),
		Quote:     handler.NewQuoteHandler(quoteService),
		Alert:     handler.NewAlertHandler(alertService, alertGenerator),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Message:   handler.NewMessageHandler(messageService),
		Email:     handler.NewEmailHandler(outreachService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
