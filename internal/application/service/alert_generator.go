package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
)

// ErrGenerationRunning is returned when a generation run is triggered
// while another one is still in flight.
var ErrGenerationRunning = errors.New("alert generation already running")

const (
	// birthdayHorizonDays is how many days ahead the birthday pass
	// looks: birthdays today through 7 days out produce an alert.
	birthdayHorizonDays = 7
	// retentionDays is how long RESOLVED alerts are kept before the
	// sweep deletes them.
	retentionDays = 30
)

// Threshold schedules for the windowed passes. Each threshold is an
// independent dedup bucket: a customer can hold a 60-day and a 90-day
// inactivity alert at the same time, but never two at the same bucket.
var (
	inactivityThresholds = []int{30, 60, 90}
	staleQuoteThresholds = []int{3, 7, 15}
)

// GenerationSummary reports what a single generation run did.
type GenerationSummary struct {
	RemovedResolved int64 `json:"removed_resolved"`
	BirthdayReset   int64 `json:"birthday_reset"`
	BirthdayAlerts  int   `json:"birthday_alerts"`
	InactiveAlerts  int   `json:"inactive_alerts"`
	QuoteAlerts     int   `json:"quote_alerts"`
}

// AlertGenerator produces the three alert types from customer and
// quote data. It is the only component that inserts alerts.
//
// All date arithmetic runs against midnight in a fixed civil zone, so
// a run at 23:59 and one at 00:01 server time agree on what "today"
// means for customers.
type AlertGenerator struct {
	alertRepo    repository.AlertRepository
	customerRepo repository.CustomerRepository
	quoteRepo    repository.QuoteRepository
	loc          *time.Location

	// nowFn is swappable in tests
	nowFn func() time.Time

	// mu serializes runs. The per-record existence checks are not
	// atomic with their inserts, so overlapping runs could double
	// insert without it.
	mu sync.Mutex
}

// NewAlertGenerator creates a new alert generator
func NewAlertGenerator(
	alertRepo repository.AlertRepository,
	customerRepo repository.CustomerRepository,
	quoteRepo repository.QuoteRepository,
	loc *time.Location,
) *AlertGenerator {
	return &AlertGenerator{
		alertRepo:    alertRepo,
		customerRepo: customerRepo,
		quoteRepo:    quoteRepo,
		loc:          loc,
		nowFn:        time.Now,
	}
}

// GenerateAll runs the retention sweep followed by the three
// generation passes. At most one run may be in flight at a time;
// concurrent triggers get ErrGenerationRunning.
//
// Any repository error aborts the remaining passes. Re-running is
// always safe: every insert is guarded by an existence check on its
// dedup bucket, backed by a unique index.
func (g *AlertGenerator) GenerateAll(ctx context.Context) (*GenerationSummary, error) {
	if !g.mu.TryLock() {
		return nil, ErrGenerationRunning
	}
	defer g.mu.Unlock()

	now := g.nowFn().In(g.loc)
	today := truncateToDay(now)
	summary := &GenerationSummary{}

	removed, err := g.alertRepo.DeleteResolvedBefore(ctx, now.AddDate(0, 0, -retentionDays))
	if err != nil {
		return nil, fmt.Errorf("retention sweep: %w", err)
	}
	summary.RemovedResolved = removed

	if err := g.generateBirthdayAlerts(ctx, today, summary); err != nil {
		return nil, fmt.Errorf("birthday pass: %w", err)
	}
	if err := g.generateInactivityAlerts(ctx, today, summary); err != nil {
		return nil, fmt.Errorf("inactivity pass: %w", err)
	}
	if err := g.generateStaleQuoteAlerts(ctx, today, summary); err != nil {
		return nil, fmt.Errorf("stale quote pass: %w", err)
	}

	log.Printf("Alert generation completed: %d birthday, %d inactive, %d quote alerts created, %d resolved removed",
		summary.BirthdayAlerts, summary.InactiveAlerts, summary.QuoteAlerts, summary.RemovedResolved)

	return summary, nil
}

// generateBirthdayAlerts resets all PENDING birthday alerts, then
// recreates one for every active customer whose next birthday falls
// within the horizon. The full reset keeps the day-count wording and
// urgency fresh as the date approaches.
func (g *AlertGenerator) generateBirthdayAlerts(ctx context.Context, today time.Time, summary *GenerationSummary) error {
	reset, err := g.alertRepo.DeleteByTypeAndStatus(ctx, enum.AlertTypeBirthday, enum.AlertStatusPending)
	if err != nil {
		return err
	}
	summary.BirthdayReset = reset

	customers, err := g.customerRepo.ListActiveWithBirthDate(ctx)
	if err != nil {
		return err
	}

	for i := range customers {
		customer := &customers[i]
		if customer.BirthDate == nil {
			continue
		}

		anniversary := nextAnniversary(*customer.BirthDate, today)
		daysUntil := daysBetween(today, anniversary)
		if daysUntil < 0 || daysUntil > birthdayHorizonDays {
			continue
		}

		exists, err := g.alertRepo.ExistsPending(ctx, customer.ID, enum.AlertTypeBirthday, 0)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		alert := &entity.Alert{
			CustomerID:    customer.ID,
			Type:          enum.AlertTypeBirthday,
			Status:        enum.AlertStatusPending,
			ThresholdDays: 0,
			Urgency:       birthdayUrgency(daysUntil),
			Message:       birthdayMessage(customer.Name, daysUntil),
		}
		if err := g.alertRepo.Create(ctx, alert); err != nil {
			return err
		}
		summary.BirthdayAlerts++
	}

	return nil
}

// generateInactivityAlerts flags customers crossing an inactivity
// threshold today. Each threshold captures a 1-day window ending
// exactly N days back, so a customer is caught once per threshold as
// they cross it, not on every subsequent run.
func (g *AlertGenerator) generateInactivityAlerts(ctx context.Context, today time.Time, summary *GenerationSummary) error {
	for _, days := range inactivityThresholds {
		cutoff := today.AddDate(0, 0, -days)
		windowStart := cutoff.AddDate(0, 0, -1)

		customers, err := g.customerRepo.ListInactiveBetween(ctx, windowStart, cutoff)
		if err != nil {
			return err
		}

		for i := range customers {
			customer := &customers[i]

			exists, err := g.alertRepo.ExistsPending(ctx, customer.ID, enum.AlertTypeInactiveCustomer, days)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			alert := &entity.Alert{
				CustomerID:    customer.ID,
				Type:          enum.AlertTypeInactiveCustomer,
				Status:        enum.AlertStatusPending,
				ThresholdDays: days,
				Urgency:       inactivityUrgency(days),
				Message:       fmt.Sprintf("⏰ Cliente %s sem comprar há %d dias", customer.Name, days),
			}
			if err := g.alertRepo.Create(ctx, alert); err != nil {
				return err
			}
			summary.InactiveAlerts++
		}
	}

	return nil
}

// generateStaleQuoteAlerts flags OPEN quotes crossing an age threshold
// today, keyed to the quote's customer. Same windowed-capture pattern
// as the inactivity pass, over the quote placement date.
func (g *AlertGenerator) generateStaleQuoteAlerts(ctx context.Context, today time.Time, summary *GenerationSummary) error {
	for _, days := range staleQuoteThresholds {
		cutoff := today.AddDate(0, 0, -days)
		windowStart := cutoff.AddDate(0, 0, -1)

		quotes, err := g.quoteRepo.ListOpenPlacedBetween(ctx, windowStart, cutoff)
		if err != nil {
			return err
		}

		for i := range quotes {
			quote := &quotes[i]

			exists, err := g.alertRepo.ExistsPending(ctx, quote.CustomerID, enum.AlertTypeOpenQuote, days)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			alert := &entity.Alert{
				CustomerID:    quote.CustomerID,
				Type:          enum.AlertTypeOpenQuote,
				Status:        enum.AlertStatusPending,
				ThresholdDays: days,
				Urgency:       staleQuoteUrgency(days),
				Message: fmt.Sprintf("📋 Orçamento de %s aberto há %d dias (R$ %.2f)",
					quote.Customer.Name, days, quote.GetTotalDecimal()),
			}
			if err := g.alertRepo.Create(ctx, alert); err != nil {
				return err
			}
			summary.QuoteAlerts++
		}
	}

	return nil
}

func birthdayUrgency(daysUntil int) enum.AlertUrgency {
	switch {
	case daysUntil <= 1:
		return enum.AlertUrgencyHigh
	case daysUntil <= 3:
		return enum.AlertUrgencyMedium
	default:
		return enum.AlertUrgencyLow
	}
}

func birthdayMessage(name string, daysUntil int) string {
	switch daysUntil {
	case 0:
		return fmt.Sprintf("🎂 Aniversário de %s hoje!", name)
	case 1:
		return fmt.Sprintf("🎂 Aniversário de %s amanhã!", name)
	default:
		return fmt.Sprintf("🎂 Aniversário de %s em %d dias!", name, daysUntil)
	}
}

func inactivityUrgency(days int) enum.AlertUrgency {
	switch {
	case days >= 90:
		return enum.AlertUrgencyHigh
	case days >= 60:
		return enum.AlertUrgencyMedium
	default:
		return enum.AlertUrgencyLow
	}
}

func staleQuoteUrgency(days int) enum.AlertUrgency {
	switch {
	case days >= 15:
		return enum.AlertUrgencyHigh
	case days >= 7:
		return enum.AlertUrgencyMedium
	default:
		return enum.AlertUrgencyLow
	}
}
