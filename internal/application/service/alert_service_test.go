package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListAlerts(alerts *fakeAlertRepo) {
	urgencies := []enum.AlertUrgency{
		enum.AlertUrgencyLow,
		enum.AlertUrgencyHigh,
		enum.AlertUrgencyMedium,
		enum.AlertUrgencyHigh,
	}
	for _, urgency := range urgencies {
		alerts.alerts = append(alerts.alerts, entity.Alert{
			ID:         uuid.New(),
			CustomerID: uuid.New(),
			Type:       enum.AlertTypeInactiveCustomer,
			Status:     enum.AlertStatusPending,
			Urgency:    urgency,
			Message:    "msg",
			CreatedAt:  testNow,
		})
	}
}

func TestListAlertsCountsAndOrder(t *testing.T) {
	alerts := &fakeAlertRepo{}
	seedListAlerts(alerts)
	s := NewAlertService(alerts)

	result, err := s.ListAlerts(context.Background(), &repository.AlertFilterParams{})
	require.NoError(t, err)

	assert.Equal(t, AlertCounts{Total: 4, High: 2, Medium: 1, Low: 1}, result.Counts)

	// Most urgent first.
	require.Len(t, result.Alerts, 4)
	assert.Equal(t, enum.AlertUrgencyHigh, result.Alerts[0].Urgency)
	assert.Equal(t, enum.AlertUrgencyHigh, result.Alerts[1].Urgency)
	assert.Equal(t, enum.AlertUrgencyMedium, result.Alerts[2].Urgency)
	assert.Equal(t, enum.AlertUrgencyLow, result.Alerts[3].Urgency)
}

func TestListAlertsStatusFilter(t *testing.T) {
	alerts := &fakeAlertRepo{}
	seedListAlerts(alerts)
	alerts.alerts[0].Status = enum.AlertStatusResolved
	s := NewAlertService(alerts)

	pending := enum.AlertStatusPending
	result, err := s.ListAlerts(context.Background(), &repository.AlertFilterParams{Status: &pending})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Counts.Total)
	for _, alert := range result.Alerts {
		assert.Equal(t, enum.AlertStatusPending, alert.Status)
	}
}

func TestResolveAlert(t *testing.T) {
	alerts := &fakeAlertRepo{}
	seedListAlerts(alerts)
	s := NewAlertService(alerts)

	id := alerts.alerts[0].ID
	resolved, err := s.ResolveAlert(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, enum.AlertStatusResolved, resolved.Status)

	// Resolving again is a no-op.
	again, err := s.ResolveAlert(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, enum.AlertStatusResolved, again.Status)
}

func TestResolveAlertNotFound(t *testing.T) {
	s := NewAlertService(&fakeAlertRepo{})

	_, err := s.ResolveAlert(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetAlertNotFound(t *testing.T) {
	s := NewAlertService(&fakeAlertRepo{})

	_, err := s.GetAlert(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
