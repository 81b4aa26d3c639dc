package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed clock for all generator tests: a Sunday mid-morning.
var testNow = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestGenerator(alerts *fakeAlertRepo, customers *fakeCustomerRepo, quotes *fakeQuoteRepo) *AlertGenerator {
	g := NewAlertGenerator(alerts, customers, quotes, time.UTC)
	g.nowFn = func() time.Time { return testNow }
	return g
}

func activeCustomer(name string) entity.Customer {
	return entity.Customer{
		ID:     uuid.New(),
		Name:   name,
		Phone:  "+55 11 91234-5678",
		Active: true,
	}
}

func midnightDaysAgo(days int) time.Time {
	today := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -days)
}

func TestGenerateAllBirthdayBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		daysUntil   int
		wantAlert   bool
		wantUrgency enum.AlertUrgency
		wantMessage string
	}{
		{"today", 0, true, enum.AlertUrgencyHigh, "🎂 Aniversário de Ana hoje!"},
		{"tomorrow", 1, true, enum.AlertUrgencyHigh, "🎂 Aniversário de Ana amanhã!"},
		{"in two days", 2, true, enum.AlertUrgencyMedium, "🎂 Aniversário de Ana em 2 dias!"},
		{"in three days", 3, true, enum.AlertUrgencyMedium, "🎂 Aniversário de Ana em 3 dias!"},
		{"in four days", 4, true, enum.AlertUrgencyLow, "🎂 Aniversário de Ana em 4 dias!"},
		{"in seven days", 7, true, enum.AlertUrgencyLow, "🎂 Aniversário de Ana em 7 dias!"},
		{"in eight days", 8, false, "", ""},
		{"yesterday", -1, false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anniversary := midnightDaysAgo(-tt.daysUntil)
			birthDate := time.Date(1990, anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, time.UTC)

			customer := activeCustomer("Ana")
			customer.BirthDate = &birthDate

			alerts := &fakeAlertRepo{}
			customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
			g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

			summary, err := g.GenerateAll(context.Background())
			require.NoError(t, err)

			pending := alerts.pendingOf(customer.ID, enum.AlertTypeBirthday)
			if !tt.wantAlert {
				assert.Empty(t, pending)
				assert.Equal(t, 0, summary.BirthdayAlerts)
				return
			}

			require.Len(t, pending, 1)
			assert.Equal(t, tt.wantUrgency, pending[0].Urgency)
			assert.Equal(t, tt.wantMessage, pending[0].Message)
			assert.Equal(t, 0, pending[0].ThresholdDays)
			assert.Equal(t, 1, summary.BirthdayAlerts)
		})
	}
}

func TestGenerateAllBirthdayFeb29NonLeapYear(t *testing.T) {
	// 2026 is not a leap year, so a Feb 29 birth date is observed on
	// Feb 28.
	alerts := &fakeAlertRepo{}
	birthDate := time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC)
	customer := activeCustomer("Bruno")
	customer.BirthDate = &birthDate

	customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
	g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})
	g.nowFn = func() time.Time {
		return time.Date(2026, time.February, 25, 9, 0, 0, 0, time.UTC)
	}

	_, err := g.GenerateAll(context.Background())
	require.NoError(t, err)

	pending := alerts.pendingOf(customer.ID, enum.AlertTypeBirthday)
	require.Len(t, pending, 1)
	assert.Equal(t, enum.AlertUrgencyMedium, pending[0].Urgency)
	assert.Equal(t, "🎂 Aniversário de Bruno em 3 dias!", pending[0].Message)
}

func TestGenerateAllBirthdayResetKeepsSingleAlert(t *testing.T) {
	anniversary := midnightDaysAgo(-3)
	birthDate := time.Date(1985, anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, time.UTC)
	customer := activeCustomer("Carla")
	customer.BirthDate = &birthDate

	alerts := &fakeAlertRepo{}
	customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
	g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

	first, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.BirthdayReset)
	assert.Equal(t, 1, first.BirthdayAlerts)

	second, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.BirthdayReset)
	assert.Equal(t, 1, second.BirthdayAlerts)

	assert.Len(t, alerts.pendingOf(customer.ID, enum.AlertTypeBirthday), 1)
}

func TestGenerateAllInactivityWindow(t *testing.T) {
	tests := []struct {
		name        string
		daysAgo     int
		wantAlert   bool
		wantDays    int
		wantUrgency enum.AlertUrgency
	}{
		{"exactly 30 days", 30, true, 30, enum.AlertUrgencyLow},
		{"29 days is too recent", 29, false, 0, ""},
		{"31 days missed the window", 31, false, 0, ""},
		{"exactly 60 days", 60, true, 60, enum.AlertUrgencyMedium},
		{"exactly 90 days", 90, true, 90, enum.AlertUrgencyHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lastPurchase := midnightDaysAgo(tt.daysAgo)
			customer := activeCustomer("Davi")
			customer.LastPurchaseDate = &lastPurchase

			alerts := &fakeAlertRepo{}
			customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
			g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

			summary, err := g.GenerateAll(context.Background())
			require.NoError(t, err)

			pending := alerts.pendingOf(customer.ID, enum.AlertTypeInactiveCustomer)
			if !tt.wantAlert {
				assert.Empty(t, pending)
				assert.Equal(t, 0, summary.InactiveAlerts)
				return
			}

			require.Len(t, pending, 1)
			assert.Equal(t, tt.wantDays, pending[0].ThresholdDays)
			assert.Equal(t, tt.wantUrgency, pending[0].Urgency)
			assert.Equal(t, fmt.Sprintf("⏰ Cliente Davi sem comprar há %d dias", tt.wantDays), pending[0].Message)
		})
	}
}

func TestGenerateAllInactivityFallsBackToCreationDate(t *testing.T) {
	// Never purchased: the creation date drives the inactivity clock.
	customer := activeCustomer("Elisa")
	customer.CreatedAt = midnightDaysAgo(60)

	alerts := &fakeAlertRepo{}
	customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
	g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

	_, err := g.GenerateAll(context.Background())
	require.NoError(t, err)

	pending := alerts.pendingOf(customer.ID, enum.AlertTypeInactiveCustomer)
	require.Len(t, pending, 1)
	assert.Equal(t, 60, pending[0].ThresholdDays)
	assert.Equal(t, enum.AlertUrgencyMedium, pending[0].Urgency)
}

func TestGenerateAllInactivityIgnoresInactiveCustomers(t *testing.T) {
	lastPurchase := midnightDaysAgo(30)
	customer := activeCustomer("Fabio")
	customer.Active = false
	customer.LastPurchaseDate = &lastPurchase

	alerts := &fakeAlertRepo{}
	customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
	g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

	_, err := g.GenerateAll(context.Background())
	require.NoError(t, err)

	assert.Empty(t, alerts.pendingOf(customer.ID, enum.AlertTypeInactiveCustomer))
}

func TestGenerateAllStaleQuoteThresholds(t *testing.T) {
	tests := []struct {
		name        string
		daysAgo     int
		status      enum.QuoteStatus
		wantAlert   bool
		wantUrgency enum.AlertUrgency
	}{
		{"open for exactly 3 days", 3, enum.QuoteStatusOpen, true, enum.AlertUrgencyLow},
		{"open for exactly 7 days", 7, enum.QuoteStatusOpen, true, enum.AlertUrgencyMedium},
		{"open for exactly 15 days", 15, enum.QuoteStatusOpen, true, enum.AlertUrgencyHigh},
		{"open for 5 days is between windows", 5, enum.QuoteStatusOpen, false, ""},
		{"closed quotes never alert", 15, enum.QuoteStatusClosed, false, ""},
		{"cancelled quotes never alert", 15, enum.QuoteStatusCancelled, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := activeCustomer("Gustavo")
			quote := entity.Quote{
				ID:         uuid.New(),
				CustomerID: customer.ID,
				Status:     tt.status,
				Total:      123450, // cents
				PlacedAt:   midnightDaysAgo(tt.daysAgo),
				Customer:   customer,
			}

			alerts := &fakeAlertRepo{}
			customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
			quotes := &fakeQuoteRepo{quotes: []entity.Quote{quote}}
			g := newTestGenerator(alerts, customers, quotes)

			summary, err := g.GenerateAll(context.Background())
			require.NoError(t, err)

			pending := alerts.pendingOf(customer.ID, enum.AlertTypeOpenQuote)
			if !tt.wantAlert {
				assert.Empty(t, pending)
				assert.Equal(t, 0, summary.QuoteAlerts)
				return
			}

			require.Len(t, pending, 1)
			assert.Equal(t, tt.daysAgo, pending[0].ThresholdDays)
			assert.Equal(t, tt.wantUrgency, pending[0].Urgency)
			assert.Equal(t, fmt.Sprintf("📋 Orçamento de Gustavo aberto há %d dias (R$ 1234.50)", tt.daysAgo), pending[0].Message)
		})
	}
}

func TestGenerateAllThresholdBucketsAreIndependent(t *testing.T) {
	// A pending 60-day alert does not block the 90-day bucket, and the
	// 60-day bucket is not duplicated.
	lastPurchase := midnightDaysAgo(90)
	customer := activeCustomer("Helena")
	customer.LastPurchaseDate = &lastPurchase

	alerts := &fakeAlertRepo{}
	alerts.alerts = append(alerts.alerts, entity.Alert{
		ID:            uuid.New(),
		CustomerID:    customer.ID,
		Type:          enum.AlertTypeInactiveCustomer,
		Status:        enum.AlertStatusPending,
		ThresholdDays: 60,
		Urgency:       enum.AlertUrgencyMedium,
		Message:       "⏰ Cliente Helena sem comprar há 60 dias",
		CreatedAt:     testNow.AddDate(0, 0, -30),
	})

	customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
	g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

	summary, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.InactiveAlerts)

	pending := alerts.pendingOf(customer.ID, enum.AlertTypeInactiveCustomer)
	require.Len(t, pending, 2)

	buckets := map[int]int{}
	for _, alert := range pending {
		buckets[alert.ThresholdDays]++
	}
	assert.Equal(t, map[int]int{60: 1, 90: 1}, buckets)
}

func TestGenerateAllIsIdempotent(t *testing.T) {
	anniversary := midnightDaysAgo(-2)
	birthDate := time.Date(1992, anniversary.Month(), anniversary.Day(), 0, 0, 0, 0, time.UTC)
	lastPurchase := midnightDaysAgo(30)

	birthdayCustomer := activeCustomer("Igor")
	birthdayCustomer.BirthDate = &birthDate
	inactiveCustomer := activeCustomer("Julia")
	inactiveCustomer.LastPurchaseDate = &lastPurchase

	quoteCustomer := activeCustomer("Karen")
	quote := entity.Quote{
		ID:         uuid.New(),
		CustomerID: quoteCustomer.ID,
		Status:     enum.QuoteStatusOpen,
		Total:      50000,
		PlacedAt:   midnightDaysAgo(7),
		Customer:   quoteCustomer,
	}

	alerts := &fakeAlertRepo{}
	customers := &fakeCustomerRepo{customers: []entity.Customer{birthdayCustomer, inactiveCustomer, quoteCustomer}}
	quotes := &fakeQuoteRepo{quotes: []entity.Quote{quote}}
	g := newTestGenerator(alerts, customers, quotes)

	first, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.BirthdayAlerts)
	assert.Equal(t, 1, first.InactiveAlerts)
	assert.Equal(t, 1, first.QuoteAlerts)

	second, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.InactiveAlerts)
	assert.Equal(t, 0, second.QuoteAlerts)

	// The birthday pass resets and recreates; the net state is still
	// one alert per customer.
	assert.Len(t, alerts.pendingOf(birthdayCustomer.ID, enum.AlertTypeBirthday), 1)
	assert.Len(t, alerts.pendingOf(inactiveCustomer.ID, enum.AlertTypeInactiveCustomer), 1)
	assert.Len(t, alerts.pendingOf(quoteCustomer.ID, enum.AlertTypeOpenQuote), 1)
}

func TestGenerateAllRetentionSweep(t *testing.T) {
	customer := activeCustomer("Lara")

	newAlert := func(status enum.AlertStatus, ageDays int) entity.Alert {
		return entity.Alert{
			ID:         uuid.New(),
			CustomerID: customer.ID,
			Type:       enum.AlertTypeInactiveCustomer,
			Status:     status,
			Urgency:    enum.AlertUrgencyLow,
			Message:    "⏰ Cliente Lara sem comprar há 30 dias",
			CreatedAt:  testNow.AddDate(0, 0, -ageDays),
		}
	}

	alerts := &fakeAlertRepo{alerts: []entity.Alert{
		newAlert(enum.AlertStatusResolved, 31),
		newAlert(enum.AlertStatusResolved, 29),
		newAlert(enum.AlertStatusPending, 40),
	}}
	customers := &fakeCustomerRepo{customers: []entity.Customer{customer}}
	g := newTestGenerator(alerts, customers, &fakeQuoteRepo{})

	summary, err := g.GenerateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.RemovedResolved)

	// Only the resolved alert past the retention window is gone.
	assert.Len(t, alerts.alerts, 2)
	for _, alert := range alerts.alerts {
		if alert.Status == enum.AlertStatusResolved {
			assert.True(t, alert.CreatedAt.After(testNow.AddDate(0, 0, -30)))
		}
	}
}

func TestGenerateAllRejectsConcurrentRuns(t *testing.T) {
	alerts := &fakeAlertRepo{}
	g := newTestGenerator(alerts, &fakeCustomerRepo{}, &fakeQuoteRepo{})

	g.mu.Lock()
	defer g.mu.Unlock()

	_, err := g.GenerateAll(context.Background())
	assert.ErrorIs(t, err, ErrGenerationRunning)
}
