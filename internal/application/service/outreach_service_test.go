package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	kind         string
	to           string
	customerName string
	days         int
	quoteTotal   string
}

type fakeEmailSender struct {
	sent    []sentEmail
	sendErr error
}

func (f *fakeEmailSender) SendBirthdayEmail(toEmail, customerName string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{kind: "birthday", to: toEmail, customerName: customerName})
	return nil
}

func (f *fakeEmailSender) SendInactiveEmail(toEmail, customerName string, daysInactive int) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{kind: "inactive", to: toEmail, customerName: customerName, days: daysInactive})
	return nil
}

func (f *fakeEmailSender) SendQuoteFollowUpEmail(toEmail, customerName, quoteTotal string, daysOpen int) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{kind: "quote", to: toEmail, customerName: customerName, days: daysOpen, quoteTotal: quoteTotal})
	return nil
}

func (f *fakeEmailSender) SendTestEmail(toEmail string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, sentEmail{kind: "test", to: toEmail})
	return nil
}

func newTestOutreachService(alerts *fakeAlertRepo, quotes *fakeQuoteRepo, sender *fakeEmailSender) *OutreachService {
	s := NewOutreachService(alerts, quotes, sender, time.UTC)
	s.nowFn = func() time.Time { return testNow }
	return s
}

func seedAlert(alerts *fakeAlertRepo, alertType enum.AlertType, customer entity.Customer) uuid.UUID {
	alert := entity.Alert{
		ID:         uuid.New(),
		CustomerID: customer.ID,
		Type:       alertType,
		Status:     enum.AlertStatusPending,
		Urgency:    enum.AlertUrgencyLow,
		Message:    "msg",
		CreatedAt:  testNow,
		Customer:   customer,
	}
	alerts.alerts = append(alerts.alerts, alert)
	return alert.ID
}

func TestSendAlertEmailBirthday(t *testing.T) {
	email := "ana@example.com"
	customer := activeCustomer("Ana")
	customer.Email = &email

	alerts := &fakeAlertRepo{}
	sender := &fakeEmailSender{}
	alertID := seedAlert(alerts, enum.AlertTypeBirthday, customer)

	s := newTestOutreachService(alerts, &fakeQuoteRepo{}, sender)
	require.NoError(t, s.SendAlertEmail(context.Background(), alertID))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "birthday", sender.sent[0].kind)
	assert.Equal(t, email, sender.sent[0].to)
	assert.Equal(t, "Ana", sender.sent[0].customerName)

	// Sending resolves the alert.
	stored, err := alerts.GetByID(context.Background(), alertID)
	require.NoError(t, err)
	assert.Equal(t, enum.AlertStatusResolved, stored.Status)
}

func TestSendAlertEmailInactive(t *testing.T) {
	email := "bruno@example.com"
	lastPurchase := midnightDaysAgo(45)
	customer := activeCustomer("Bruno")
	customer.Email = &email
	customer.LastPurchaseDate = &lastPurchase

	alerts := &fakeAlertRepo{}
	sender := &fakeEmailSender{}
	alertID := seedAlert(alerts, enum.AlertTypeInactiveCustomer, customer)

	s := newTestOutreachService(alerts, &fakeQuoteRepo{}, sender)
	require.NoError(t, s.SendAlertEmail(context.Background(), alertID))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "inactive", sender.sent[0].kind)
	assert.Equal(t, 45, sender.sent[0].days)
}

func TestSendAlertEmailInactiveWithoutPurchaseHistory(t *testing.T) {
	email := "carla@example.com"
	customer := activeCustomer("Carla")
	customer.Email = &email

	alerts := &fakeAlertRepo{}
	sender := &fakeEmailSender{}
	alertID := seedAlert(alerts, enum.AlertTypeInactiveCustomer, customer)

	s := newTestOutreachService(alerts, &fakeQuoteRepo{}, sender)
	require.NoError(t, s.SendAlertEmail(context.Background(), alertID))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, 90, sender.sent[0].days)
}

func TestSendAlertEmailOpenQuote(t *testing.T) {
	email := "davi@example.com"
	customer := activeCustomer("Davi")
	customer.Email = &email

	quotes := &fakeQuoteRepo{quotes: []entity.Quote{
		{
			ID:         uuid.New(),
			CustomerID: customer.ID,
			Status:     enum.QuoteStatusOpen,
			Total:      123450,
			PlacedAt:   midnightDaysAgo(7),
		},
		{
			ID:         uuid.New(),
			CustomerID: customer.ID,
			Status:     enum.QuoteStatusOpen,
			Total:      9900,
			PlacedAt:   midnightDaysAgo(3),
		},
	}}

	alerts := &fakeAlertRepo{}
	sender := &fakeEmailSender{}
	alertID := seedAlert(alerts, enum.AlertTypeOpenQuote, customer)

	s := newTestOutreachService(alerts, quotes, sender)
	require.NoError(t, s.SendAlertEmail(context.Background(), alertID))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "quote", sender.sent[0].kind)
	// Uses the most recent open quote.
	assert.Equal(t, "99.00", sender.sent[0].quoteTotal)
	assert.Equal(t, 3, sender.sent[0].days)
}

func TestSendAlertEmailErrors(t *testing.T) {
	email := "elisa@example.com"

	t.Run("unknown alert", func(t *testing.T) {
		s := newTestOutreachService(&fakeAlertRepo{}, &fakeQuoteRepo{}, &fakeEmailSender{})
		err := s.SendAlertEmail(context.Background(), uuid.New())
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("customer without email", func(t *testing.T) {
		customer := activeCustomer("Elisa")
		alerts := &fakeAlertRepo{}
		alertID := seedAlert(alerts, enum.AlertTypeBirthday, customer)

		s := newTestOutreachService(alerts, &fakeQuoteRepo{}, &fakeEmailSender{})
		err := s.SendAlertEmail(context.Background(), alertID)
		require.Error(t, err)
		assert.Equal(t, 400, apperror.GetAppError(err).Code)
	})

	t.Run("no open quote left for quote alert", func(t *testing.T) {
		customer := activeCustomer("Fabio")
		customer.Email = &email
		alerts := &fakeAlertRepo{}
		alertID := seedAlert(alerts, enum.AlertTypeOpenQuote, customer)

		s := newTestOutreachService(alerts, &fakeQuoteRepo{}, &fakeEmailSender{})
		err := s.SendAlertEmail(context.Background(), alertID)
		require.Error(t, err)
		assert.Equal(t, 404, apperror.GetAppError(err).Code)
	})

	t.Run("delivery failure keeps alert pending", func(t *testing.T) {
		customer := activeCustomer("Gabi")
		customer.Email = &email
		alerts := &fakeAlertRepo{}
		alertID := seedAlert(alerts, enum.AlertTypeBirthday, customer)
		sender := &fakeEmailSender{sendErr: errors.New("smtp: connection refused")}

		s := newTestOutreachService(alerts, &fakeQuoteRepo{}, sender)
		err := s.SendAlertEmail(context.Background(), alertID)
		require.Error(t, err)

		stored, getErr := alerts.GetByID(context.Background(), alertID)
		require.NoError(t, getErr)
		assert.Equal(t, enum.AlertStatusPending, stored.Status)
	})
}

func TestSendTestEmail(t *testing.T) {
	sender := &fakeEmailSender{}
	s := newTestOutreachService(&fakeAlertRepo{}, &fakeQuoteRepo{}, sender)

	require.NoError(t, s.SendTestEmail(context.Background(), "dono@example.com"))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "test", sender.sent[0].kind)

	err := s.SendTestEmail(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}
