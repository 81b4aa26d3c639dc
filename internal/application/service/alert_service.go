package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"github.com/juliotite/vendas-crm/internal/domain/repository"
	"github.com/juliotite/vendas-crm/pkg/apperror"
)

// AlertService handles read and resolve operations on alerts. Alert
// creation belongs exclusively to the AlertGenerator.
type AlertService struct {
	alertRepo repository.AlertRepository
}

// NewAlertService creates a new alert service
func NewAlertService(alertRepo repository.AlertRepository) *AlertService {
	return &AlertService{alertRepo: alertRepo}
}

// AlertListResult carries alerts plus per-urgency counts
type AlertListResult struct {
	Alerts []entity.Alert `json:"alerts"`
	Counts AlertCounts    `json:"counts"`
}

// AlertCounts summarizes a listing by urgency
type AlertCounts struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// ListAlerts lists alerts with optional status/seller filters, most
// urgent first, with per-urgency counts
func (s *AlertService) ListAlerts(ctx context.Context, params *repository.AlertFilterParams) (*AlertListResult, error) {
	alerts, err := s.alertRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	counts := AlertCounts{Total: len(alerts)}
	for i := range alerts {
		switch alerts[i].Urgency {
		case enum.AlertUrgencyHigh:
			counts.High++
		case enum.AlertUrgencyMedium:
			counts.Medium++
		case enum.AlertUrgencyLow:
			counts.Low++
		}
	}

	return &AlertListResult{Alerts: alerts, Counts: counts}, nil
}

// GetAlert retrieves an alert by ID
func (s *AlertService) GetAlert(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, apperror.NewNotFoundError("Alert")
	}
	return alert, nil
}

// ResolveAlert marks an alert as RESOLVED
func (s *AlertService) ResolveAlert(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, apperror.NewNotFoundError("Alert")
	}

	if alert.Status != enum.AlertStatusResolved {
		if err := s.alertRepo.UpdateStatus(ctx, id, enum.AlertStatusResolved); err != nil {
			return nil, err
		}
		alert.Status = enum.AlertStatusResolved
	}

	return alert, nil
}
