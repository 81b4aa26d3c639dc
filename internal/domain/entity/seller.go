package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seller represents a salesperson who owns a portfolio of customers
type Seller struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     *string   `gorm:"size:255" json:"email,omitempty"`
	Phone     string    `gorm:"size:50;not null" json:"phone"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Customers []Customer `gorm:"foreignKey:SellerID" json:"-"`
	Quotes    []Quote    `gorm:"foreignKey:SellerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new seller
func (s *Seller) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Seller model
func (Seller) TableName() string {
	return "sellers"
}
