package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/apperror"
)

// EmailSender is the outbound email surface the outreach service
// depends on, implemented by pkg/email.
type EmailSender interface {
	SendBirthdayEmail(toEmail, customerName string) error
	SendInactiveEmail(toEmail, customerName string, daysInactive int) error
	SendQuoteFollowUpEmail(toEmail, customerName, quoteTotal string, daysOpen int) error
	SendTestEmail(toEmail string) error
}

// OutreachService sends outreach emails for alerts and resolves them
// on successful delivery.
type OutreachService struct {
	alertRepo repository.AlertRepository
	quoteRepo repository.QuoteRepository
	sender    EmailSender
	loc       *time.Location
	nowFn     func() time.Time
}

// NewOutreachService creates a new outreach service
func NewOutreachService(
	alertRepo repository.AlertRepository,
	quoteRepo repository.QuoteRepository,
	sender EmailSender,
	loc *time.Location,
) *OutreachService {
	return &OutreachService{
		alertRepo: alertRepo,
		quoteRepo: quoteRepo,
		sender:    sender,
		loc:       loc,
		nowFn:     time.Now,
	}
}

// SendAlertEmail sends the outreach email matching the alert's type to
// the alert's customer, then marks the alert RESOLVED.
func (s *OutreachService) SendAlertEmail(ctx context.Context, alertID uuid.UUID) error {
	alert, err := s.alertRepo.GetByID(ctx, alertID)
	if err != nil {
		return err
	}
	if alert == nil {
		return apperror.NewNotFoundError("Alert")
	}
	if alert.Customer.Email == nil || *alert.Customer.Email == "" {
		return apperror.NewBadRequestError("Customer has no email address on record")
	}

	customer := &alert.Customer
	now := s.nowFn().In(s.loc)

	switch alert.Type {
	case enum.AlertTypeBirthday:
		err = s.sender.SendBirthdayEmail(*customer.Email, customer.Name)

	case enum.AlertTypeInactiveCustomer:
		daysInactive := 90
		if customer.LastPurchaseDate != nil {
			daysInactive = int(now.Sub(*customer.LastPurchaseDate).Hours() / 24)
		}
		err = s.sender.SendInactiveEmail(*customer.Email, customer.Name, daysInactive)

	case enum.AlertTypeOpenQuote:
		quote, qErr := s.quoteRepo.GetLatestOpenByCustomer(ctx, customer.ID)
		if qErr != nil {
			return qErr
		}
		if quote == nil {
			return apperror.NewNotFoundError("Open quote")
		}
		daysOpen := int(now.Sub(quote.PlacedAt).Hours() / 24)
		err = s.sender.SendQuoteFollowUpEmail(*customer.Email,
			customer.Name, fmt.Sprintf("%.2f", quote.GetTotalDecimal()), daysOpen)

	default:
		return apperror.NewBadRequestError("Alert type does not support email outreach")
	}

	if err != nil {
		return fmt.Errorf("send outreach email: %w", err)
	}

	return s.alertRepo.UpdateStatus(ctx, alertID, enum.AlertStatusResolved)
}

// SendTestEmail sends a test email to verify SMTP configuration
func (s *OutreachService) SendTestEmail(ctx context.Context, toEmail string) error {
	if toEmail == "" {
		return apperror.NewBadRequestError("Recipient email is required")
	}
	if err := s.sender.SendTestEmail(toEmail); err != nil {
		return fmt.Errorf("send test email: %w", err)
	}
	return nil
}
