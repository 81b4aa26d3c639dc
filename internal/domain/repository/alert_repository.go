package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/entity"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
)

// AlertFilterParams contains filtering parameters for alert queries
type AlertFilterParams struct {
	Status   *enum.AlertStatus
	SellerID *uuid.UUID
	Limit    int
}

// AlertRepository defines the interface for alert data operations
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Alert, error)
	// List returns alerts ordered by urgency (HIGH first) then most
	// recent, with customer and seller preloaded.
	List(ctx context.Context, params *AlertFilterParams) ([]entity.Alert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.AlertStatus) error

	// ExistsPending reports whether a PENDING alert already occupies
	// the (customer, type, threshold) dedup bucket.
	ExistsPending(ctx context.Context, customerID uuid.UUID, alertType enum.AlertType, thresholdDays int) (bool, error)
	// DeleteByTypeAndStatus bulk-deletes alerts of one type/status and
	// returns the number of rows removed.
	DeleteByTypeAndStatus(ctx context.Context, alertType enum.AlertType, status enum.AlertStatus) (int64, error)
	// DeleteResolvedBefore purges RESOLVED alerts created before the
	// cutoff and returns the number of rows removed.
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
