package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/pkg/pagination"
)

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.QuoteStatus
	CustomerID *uuid.UUID
	SellerID   *uuid.UUID
}

// SellerSales aggregates closed-quote revenue per seller
type SellerSales struct {
	SellerID   uuid.UUID `json:"seller_id"`
	SellerName string    `json:"seller_name"`
	Total      int64     `json:"-"` // cents
	Count      int64     `json:"count"`
}

// ProductSales aggregates sold quantity per product
type ProductSales struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
}

// QuoteRepository defines the interface for quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) error
	List(ctx context.Context, params *QuoteFilterParams) ([]entity.Quote, int64, error)

	// ListOpenPlacedBetween returns OPEN quotes whose placement date
	// falls inside [start, end], with customers preloaded.
	ListOpenPlacedBetween(ctx context.Context, start, end time.Time) ([]entity.Quote, error)
	// GetLatestOpenByCustomer returns the customer's most recently
	// placed OPEN quote, or nil when there is none.
	GetLatestOpenByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Quote, error)

	// Aggregations consumed by the dashboard and reports.
	CountOpen(ctx context.Context) (int64, error)
	CountOpenPlacedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ListOpenWithCustomer(ctx context.Context) ([]entity.Quote, error)
	SumClosedSince(ctx context.Context, since time.Time) (int64, error)
	TopSellersSince(ctx context.Context, since time.Time, limit int) ([]SellerSales, error)
	TopProducts(ctx context.Context, limit int) ([]ProductSales, error)
	SellerPerformance(ctx context.Context) ([]SellerSales, error)
}
