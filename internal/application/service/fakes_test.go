package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/pagination"
)

// In-memory repository fakes backing the engine tests.

type fakeAlertRepo struct {
	alerts []entity.Alert
}

func (f *fakeAlertRepo) Create(_ context.Context, alert *entity.Alert) error {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	f.alerts = append(f.alerts, *alert)
	return nil
}

func (f *fakeAlertRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Alert, error) {
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			alert := f.alerts[i]
			return &alert, nil
		}
	}
	return nil, nil
}

func (f *fakeAlertRepo) List(_ context.Context, params *repository.AlertFilterParams) ([]entity.Alert, error) {
	var out []entity.Alert
	for _, alert := range f.alerts {
		if params.Status != nil && alert.Status != *params.Status {
			continue
		}
		out = append(out, alert)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return urgencyRank(out[i].Urgency) < urgencyRank(out[j].Urgency)
	})
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func urgencyRank(u enum.AlertUrgency) int {
	switch u {
	case enum.AlertUrgencyHigh:
		return 0
	case enum.AlertUrgencyMedium:
		return 1
	default:
		return 2
	}
}

func (f *fakeAlertRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.AlertStatus) error {
	for i := range f.alerts {
		if f.alerts[i].ID == id {
			f.alerts[i].Status = status
		}
	}
	return nil
}

func (f *fakeAlertRepo) ExistsPending(_ context.Context, customerID uuid.UUID, alertType enum.AlertType, thresholdDays int) (bool, error) {
	for _, alert := range f.alerts {
		if alert.CustomerID == customerID && alert.Type == alertType &&
			alert.Status == enum.AlertStatusPending && alert.ThresholdDays == thresholdDays {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAlertRepo) DeleteByTypeAndStatus(_ context.Context, alertType enum.AlertType, status enum.AlertStatus) (int64, error) {
	var kept []entity.Alert
	var removed int64
	for _, alert := range f.alerts {
		if alert.Type == alertType && alert.Status == status {
			removed++
			continue
		}
		kept = append(kept, alert)
	}
	f.alerts = kept
	return removed, nil
}

func (f *fakeAlertRepo) DeleteResolvedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []entity.Alert
	var removed int64
	for _, alert := range f.alerts {
		if alert.Status == enum.AlertStatusResolved && alert.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, alert)
	}
	f.alerts = kept
	return removed, nil
}

func (f *fakeAlertRepo) pendingOf(customerID uuid.UUID, alertType enum.AlertType) []entity.Alert {
	var out []entity.Alert
	for _, alert := range f.alerts {
		if alert.CustomerID == customerID && alert.Type == alertType && alert.Status == enum.AlertStatusPending {
			out = append(out, alert)
		}
	}
	return out
}

type fakeCustomerRepo struct {
	customers []entity.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers = append(f.customers, *customer)
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	for i := range f.customers {
		if f.customers[i].ID == id {
			customer := f.customers[i]
			return &customer, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	for i := range f.customers {
		if f.customers[i].ID == customer.ID {
			f.customers[i] = *customer
		}
	}
	return nil
}

func (f *fakeCustomerRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for i := range f.customers {
		if f.customers[i].ID == id {
			f.customers[i].Active = false
		}
	}
	return nil
}

func (f *fakeCustomerRepo) SetLastPurchaseDate(_ context.Context, id uuid.UUID, at time.Time) error {
	for i := range f.customers {
		if f.customers[i].ID == id {
			stamped := at
			f.customers[i].LastPurchaseDate = &stamped
		}
	}
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, customer := range f.customers {
		if search == "" || strings.Contains(strings.ToLower(customer.Name), strings.ToLower(search)) {
			out = append(out, customer)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) ListActiveWithBirthDate(_ context.Context) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, customer := range f.customers {
		if customer.Active && customer.BirthDate != nil {
			out = append(out, customer)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) ListInactiveBetween(_ context.Context, start, end time.Time) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, customer := range f.customers {
		if !customer.Active {
			continue
		}
		ref := customer.InactivityReference()
		if !ref.Before(start) && !ref.After(end) {
			out = append(out, customer)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) CountInactiveSince(_ context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for _, customer := range f.customers {
		if customer.Active && customer.InactivityReference().Before(cutoff) {
			count++
		}
	}
	return count, nil
}

func (f *fakeCustomerRepo) ListInactiveSince(_ context.Context, cutoff time.Time) ([]entity.Customer, error) {
	var out []entity.Customer
	for _, customer := range f.customers {
		if customer.Active && customer.InactivityReference().Before(cutoff) {
			out = append(out, customer)
		}
	}
	return out, nil
}

type fakeQuoteRepo struct {
	quotes []entity.Quote
}

func (f *fakeQuoteRepo) Create(_ context.Context, quote *entity.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	f.quotes = append(f.quotes, *quote)
	return nil
}

func (f *fakeQuoteRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			quote := f.quotes[i]
			return &quote, nil
		}
	}
	return nil, nil
}

func (f *fakeQuoteRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes[i].Status = status
		}
	}
	return nil
}

func (f *fakeQuoteRepo) UpdateNotes(_ context.Context, id uuid.UUID, notes *string) error {
	for i := range f.quotes {
		if f.quotes[i].ID == id {
			f.quotes[i].Notes = notes
		}
	}
	return nil
}

func (f *fakeQuoteRepo) List(_ context.Context, params *repository.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var out []entity.Quote
	for _, quote := range f.quotes {
		if params.Status != nil && quote.Status != *params.Status {
			continue
		}
		if params.CustomerID != nil && quote.CustomerID != *params.CustomerID {
			continue
		}
		out = append(out, quote)
	}
	return out, int64(len(out)), nil
}

func (f *fakeQuoteRepo) ListOpenPlacedBetween(_ context.Context, start, end time.Time) ([]entity.Quote, error) {
	var out []entity.Quote
	for _, quote := range f.quotes {
		if quote.Status != enum.QuoteStatusOpen {
			continue
		}
		if !quote.PlacedAt.Before(start) && !quote.PlacedAt.After(end) {
			out = append(out, quote)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) GetLatestOpenByCustomer(_ context.Context, customerID uuid.UUID) (*entity.Quote, error) {
	var latest *entity.Quote
	for i := range f.quotes {
		quote := f.quotes[i]
		if quote.CustomerID != customerID || quote.Status != enum.QuoteStatusOpen {
			continue
		}
		if latest == nil || quote.PlacedAt.After(latest.PlacedAt) {
			latest = &quote
		}
	}
	return latest, nil
}

func (f *fakeQuoteRepo) CountOpen(_ context.Context) (int64, error) {
	var count int64
	for _, quote := range f.quotes {
		if quote.Status == enum.QuoteStatusOpen {
			count++
		}
	}
	return count, nil
}

func (f *fakeQuoteRepo) CountOpenPlacedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for _, quote := range f.quotes {
		if quote.Status == enum.QuoteStatusOpen && quote.PlacedAt.Before(cutoff) {
			count++
		}
	}
	return count, nil
}

func (f *fakeQuoteRepo) ListOpenWithCustomer(_ context.Context) ([]entity.Quote, error) {
	var out []entity.Quote
	for _, quote := range f.quotes {
		if quote.Status == enum.QuoteStatusOpen {
			out = append(out, quote)
		}
	}
	return out, nil
}

func (f *fakeQuoteRepo) SumClosedSince(_ context.Context, since time.Time) (int64, error) {
	var total int64
	for _, quote := range f.quotes {
		if quote.Status == enum.QuoteStatusClosed && !quote.PlacedAt.Before(since) {
			total += quote.Total
		}
	}
	return total, nil
}

func (f *fakeQuoteRepo) TopSellersSince(_ context.Context, _ time.Time, _ int) ([]repository.SellerSales, error) {
	return nil, nil
}

func (f *fakeQuoteRepo) TopProducts(_ context.Context, _ int) ([]repository.ProductSales, error) {
	return nil, nil
}

func (f *fakeQuoteRepo) SellerPerformance(_ context.Context) ([]repository.SellerSales, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products []entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			product := f.products[i]
			return &product, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = *product
		}
	}
	return nil
}

func (f *fakeProductRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Active = false
		}
	}
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ *pagination.PaginationParams, _, _ string) ([]entity.Product, int64, error) {
	return f.products, int64(len(f.products)), nil
}
