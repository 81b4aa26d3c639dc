package database

import (
	"fmt"
	"log"
	"time"

	"github.com/juliotite/vendas-crm/internal/config"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Seller{},
		&entity.Customer{},
		&entity.Product{},
		&entity.Quote{},
		&entity.QuoteItem{},
		&entity.Alert{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDemoData seeds the database with a sample seller, customers and
// products so a fresh install has something to show on the dashboard.
func SeedDemoData(db *gorm.DB) error {
	log.Println("Seeding demo data...")

	var sellerCount int64
	if err := db.Model(&entity.Seller{}).Count(&sellerCount).Error; err != nil {
		return fmt.Errorf("failed to count sellers: %w", err)
	}
	if sellerCount > 0 {
		log.Println("Demo data already present, skipping seed")
		return nil
	}

	sellerEmail := "carlos@exemplo.com.br"
	seller := entity.Seller{
		Name:   "Carlos Mendes",
		Email:  &sellerEmail,
		Phone:  "+55 11 98765-4321",
		Active: true,
	}
	if err := db.Create(&seller).Error; err != nil {
		return fmt.Errorf("failed to seed seller: %w", err)
	}

	products := []entity.Product{
		{Name: "Cimento CP-II 50kg", Category: "Construção", Price: 3890, Active: true},
		{Name: "Tinta Acrílica Branca 18L", Category: "Pintura", Price: 24990, Active: true},
		{Name: "Furadeira de Impacto 650W", Category: "Ferramentas", Price: 18900, Active: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", products[i].Name, err)
		}
	}

	birthDate := time.Date(1985, time.March, 12, 0, 0, 0, 0, time.UTC)
	customerEmail := "maria@exemplo.com.br"
	customer := entity.Customer{
		SellerID:  seller.ID,
		Name:      "Maria Silva",
		Phone:     "+55 11 91234-5678",
		Email:     &customerEmail,
		BirthDate: &birthDate,
		Active:    true,
	}
	if err := db.Create(&customer).Error; err != nil {
		log.Printf("Warning: failed to seed customer: %v", err)
	}

	log.Println("Demo data seeding completed")
	return nil
}
