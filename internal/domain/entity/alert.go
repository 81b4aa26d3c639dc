package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"gorm.io/gorm"
)

// Alert represents a persisted reminder tied to a customer.
//
// ThresholdDays is the structured dedup bucket: the day-count threshold
// that produced the alert (0 for birthday alerts). Together with the
// customer, type and status it forms the uniqueness key that keeps the
// generator from inserting duplicates even across overlapping runs.
type Alert struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID    uuid.UUID         `gorm:"type:uuid;not null;index;uniqueIndex:idx_alerts_dedup" json:"customer_id"`
	Type          enum.AlertType    `gorm:"size:30;not null;uniqueIndex:idx_alerts_dedup" json:"type"`
	Status        enum.AlertStatus  `gorm:"size:20;not null;default:PENDING;index;uniqueIndex:idx_alerts_dedup" json:"status"`
	ThresholdDays int               `gorm:"not null;default:0;uniqueIndex:idx_alerts_dedup" json:"threshold_days"`
	Message       string            `gorm:"type:text;not null" json:"message"`
	Urgency       enum.AlertUrgency `gorm:"size:10;not null" json:"urgency"`
	CreatedAt     time.Time         `json:"created_at"`

	// Relationships
	Customer Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new alert
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Alert model
func (Alert) TableName() string {
	return "alerts"
}
