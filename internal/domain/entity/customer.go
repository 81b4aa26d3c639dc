package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents a customer in the CRM
type Customer struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	SellerID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"seller_id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	Phone            string     `gorm:"size:50;not null" json:"phone"`
	Email            *string    `gorm:"size:255" json:"email,omitempty"`
	Address          *string    `gorm:"type:text" json:"address,omitempty"`
	BirthDate        *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	LastPurchaseDate *time.Time `json:"last_purchase_date,omitempty"`
	Active           bool       `gorm:"default:true;index" json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Relationships
	Seller Seller  `gorm:"foreignKey:SellerID" json:"-"`
	Quotes []Quote `gorm:"foreignKey:CustomerID" json:"-"`
	Alerts []Alert `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}

// InactivityReference returns the date used to measure inactivity:
// the last purchase when one exists, otherwise account creation.
func (c *Customer) InactivityReference() time.Time {
	if c.LastPurchaseDate != nil {
		return *c.LastPurchaseDate
	}
	return c.CreatedAt
}
