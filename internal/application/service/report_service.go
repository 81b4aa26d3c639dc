package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
)

// daysInactiveUnknown marks customers that never purchased.
const daysInactiveUnknown = 999

// ReportService builds the follow-up report: inactivity breakdowns,
// aging open quotes and per-seller performance. Read-only.
type ReportService struct {
	customerRepo repository.CustomerRepository
	quoteRepo    repository.QuoteRepository
	loc          *time.Location
	nowFn        func() time.Time
}

// NewReportService creates a new report service
func NewReportService(
	customerRepo repository.CustomerRepository,
	quoteRepo repository.QuoteRepository,
	loc *time.Location,
) *ReportService {
	return &ReportService{
		customerRepo: customerRepo,
		quoteRepo:    quoteRepo,
		loc:          loc,
		nowFn:        time.Now,
	}
}

// SellerPerformanceEntry is one seller's closed-quote totals
type SellerPerformanceEntry struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

// InactiveCustomerEntry details one inactive customer
type InactiveCustomerEntry struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Email        *string    `json:"email"`
	LastPurchase *time.Time `json:"last_purchase"`
	DaysInactive int        `json:"days_inactive"`
	Seller       string     `json:"seller"`
}

// OpenQuoteEntry details one aging open quote
type OpenQuoteEntry struct {
	ID            uuid.UUID `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	SellerName    string    `json:"seller_name"`
	Value         float64   `json:"value"`
	PlacedAt      time.Time `json:"placed_at"`
	DaysOpen      int       `json:"days_open"`
}

// ReportData is the full report payload
type ReportData struct {
	Inactive30        int64                    `json:"inactive_30"`
	Inactive60        int64                    `json:"inactive_60"`
	Inactive90        int64                    `json:"inactive_90"`
	OpenQuotes7       int64                    `json:"open_quotes_7"`
	OpenQuotes14      int64                    `json:"open_quotes_14"`
	OpenQuotes30      int64                    `json:"open_quotes_30"`
	SellerPerformance []SellerPerformanceEntry `json:"seller_performance"`
	InactiveCustomers []InactiveCustomerEntry  `json:"inactive_customers"`
	OpenQuotes        []OpenQuoteEntry         `json:"open_quotes"`
}

// GetReport builds the follow-up report
func (s *ReportService) GetReport(ctx context.Context) (*ReportData, error) {
	now := s.nowFn().In(s.loc)
	report := &ReportData{}

	inactivityCutoffs := []struct {
		days  int
		count *int64
	}{
		{30, &report.Inactive30},
		{60, &report.Inactive60},
		{90, &report.Inactive90},
	}
	for _, c := range inactivityCutoffs {
		count, err := s.customerRepo.CountInactiveSince(ctx, now.AddDate(0, 0, -c.days))
		if err != nil {
			return nil, err
		}
		*c.count = count
	}

	quoteCutoffs := []struct {
		days  int
		count *int64
	}{
		{7, &report.OpenQuotes7},
		{14, &report.OpenQuotes14},
		{30, &report.OpenQuotes30},
	}
	for _, c := range quoteCutoffs {
		count, err := s.quoteRepo.CountOpenPlacedBefore(ctx, now.AddDate(0, 0, -c.days))
		if err != nil {
			return nil, err
		}
		*c.count = count
	}

	performance, err := s.quoteRepo.SellerPerformance(ctx)
	if err != nil {
		return nil, err
	}
	report.SellerPerformance = make([]SellerPerformanceEntry, 0, len(performance))
	for _, seller := range performance {
		report.SellerPerformance = append(report.SellerPerformance, SellerPerformanceEntry{
			Name:  seller.SellerName,
			Total: float64(seller.Total) / 100,
			Count: seller.Count,
		})
	}

	inactiveCustomers, err := s.customerRepo.ListInactiveSince(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	report.InactiveCustomers = make([]InactiveCustomerEntry, 0, len(inactiveCustomers))
	for i := range inactiveCustomers {
		customer := &inactiveCustomers[i]

		daysInactive := daysInactiveUnknown
		if customer.LastPurchaseDate != nil {
			daysInactive = int(now.Sub(*customer.LastPurchaseDate).Hours() / 24)
		}

		report.InactiveCustomers = append(report.InactiveCustomers, InactiveCustomerEntry{
			ID:           customer.ID,
			Name:         customer.Name,
			Phone:        customer.Phone,
			Email:        customer.Email,
			LastPurchase: customer.LastPurchaseDate,
			DaysInactive: daysInactive,
			Seller:       customer.Seller.Name,
		})
	}

	openQuotes, err := s.quoteRepo.ListOpenWithCustomer(ctx)
	if err != nil {
		return nil, err
	}
	report.OpenQuotes = make([]OpenQuoteEntry, 0, len(openQuotes))
	for i := range openQuotes {
		quote := &openQuotes[i]
		report.OpenQuotes = append(report.OpenQuotes, OpenQuoteEntry{
			ID:            quote.ID,
			CustomerName:  quote.Customer.Name,
			CustomerPhone: quote.Customer.Phone,
			SellerName:    quote.Seller.Name,
			Value:         quote.GetTotalDecimal(),
			PlacedAt:      quote.PlacedAt,
			DaysOpen:      int(now.Sub(quote.PlacedAt).Hours() / 24),
		})
	}

	return report, nil
}
