package service

import (
	"context"
	"time"

	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
)

// DashboardService aggregates read-only stats for the landing view.
// It never creates alerts; the pending alerts it shows are whatever
// the generator last produced.
type DashboardService struct {
	customerRepo repository.CustomerRepository
	quoteRepo    repository.QuoteRepository
	alertRepo    repository.AlertRepository
	loc          *time.Location
	nowFn        func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repository.CustomerRepository,
	quoteRepo repository.QuoteRepository,
	alertRepo repository.AlertRepository,
	loc *time.Location,
) *DashboardService {
	return &DashboardService{
		customerRepo: customerRepo,
		quoteRepo:    quoteRepo,
		alertRepo:    alertRepo,
		loc:          loc,
		nowFn:        time.Now,
	}
}

// SellerSummary is one row of the top-sellers ranking
type SellerSummary struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// ProductSummary is one row of the top-products ranking
type ProductSummary struct {
	Name string `json:"name"`
	Sold int64  `json:"sold"`
}

// DashboardStats is the aggregate payload for the dashboard
type DashboardStats struct {
	InactiveCustomers int64            `json:"inactive_customers"`
	OpenQuotes        int64            `json:"open_quotes"`
	MonthSales        float64          `json:"month_sales"`
	TopSellers        []SellerSummary  `json:"top_sellers"`
	TopProducts       []ProductSummary `json:"top_products"`
	PendingAlerts     []entity.Alert   `json:"pending_alerts"`
}

// GetStats builds the dashboard aggregate: customers inactive for 30+
// days, open quote count, closed sales since the start of the current
// month, top sellers over the last 6 months and top products all-time.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := s.nowFn().In(s.loc)

	inactive, err := s.customerRepo.CountInactiveSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	openQuotes, err := s.quoteRepo.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	monthSales, err := s.quoteRepo.SumClosedSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}

	topSellers, err := s.quoteRepo.TopSellersSince(ctx, now.AddDate(0, -6, 0), 5)
	if err != nil {
		return nil, err
	}

	topProducts, err := s.quoteRepo.TopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}

	pendingStatus := enum.AlertStatusPending
	alerts, err := s.alertRepo.List(ctx, &repository.AlertFilterParams{
		Status: &pendingStatus,
		Limit:  10,
	})
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		InactiveCustomers: inactive,
		OpenQuotes:        openQuotes,
		MonthSales:        float64(monthSales) / 100,
		TopSellers:        make([]SellerSummary, 0, len(topSellers)),
		TopProducts:       make([]ProductSummary, 0, len(topProducts)),
		PendingAlerts:     alerts,
	}
	for _, seller := range topSellers {
		stats.TopSellers = append(stats.TopSellers, SellerSummary{
			Name:  seller.SellerName,
			Sales: float64(seller.Total) / 100,
		})
	}
	for _, product := range topProducts {
		stats.TopProducts = append(stats.TopProducts, ProductSummary{
			Name: product.ProductName,
			Sold: product.Quantity,
		})
	}

	return stats, nil
}
