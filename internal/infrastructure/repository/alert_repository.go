package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	domainRepo "github.com/juliotite/vendas-crm/internal/domain/repository"
	"gorm.io/gorm"
)

// urgencyOrder ranks string urgencies for sorting, since HIGH, MEDIUM
// and LOW do not sort correctly as text.
const urgencyOrder = "CASE urgency WHEN 'HIGH' THEN 0 WHEN 'MEDIUM' THEN 1 ELSE 2 END"

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) domainRepo.AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *entity.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error) {
	var alert entity.Alert
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Customer.Seller").
		First(&alert, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &alert, err
}

func (r *alertRepository) List(ctx context.Context, params *domainRepo.AlertFilterParams) ([]entity.Alert, error) {
	var alerts []entity.Alert

	query := r.db.WithContext(ctx).Model(&entity.Alert{}).
		Preload("Customer").
		Preload("Customer.Seller")

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.SellerID != nil {
		query = query.
			Joins("JOIN customers ON customers.id = alerts.customer_id").
			Where("customers.seller_id = ?", *params.SellerID)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}

	err := query.
		Order(urgencyOrder + ", alerts.created_at DESC").
		Find(&alerts).Error

	return alerts, err
}

func (r *alertRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AlertStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Alert{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *alertRepository) ExistsPending(ctx context.Context, customerID uuid.UUID, alertType enum.AlertType, thresholdDays int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Alert{}).
		Where("customer_id = ? AND type = ? AND status = ? AND threshold_days = ?",
			customerID, alertType, enum.AlertStatusPending, thresholdDays).
		Count(&count).Error
	return count > 0, err
}

func (r *alertRepository) DeleteByTypeAndStatus(ctx context.Context, alertType enum.AlertType, status enum.AlertStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("type = ? AND status = ?", alertType, status).
		Delete(&entity.Alert{})
	return result.RowsAffected, result.Error
}

func (r *alertRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", enum.AlertStatusResolved, cutoff).
		Delete(&entity.Alert{})
	return result.RowsAffected, result.Error
}
