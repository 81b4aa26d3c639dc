package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/juliotite/vendas-crm/internal/domain/enum"
	"gorm.io/gorm"
)

// Quote represents a sales quote/order for a customer
type Quote struct {
	ID         uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID        `gorm:"type:uuid;not null;index" json:"customer_id"`
	SellerID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"seller_id"`
	Status     enum.QuoteStatus `gorm:"size:20;not null;default:OPEN;index" json:"status"`
	Total      int64            `gorm:"default:0" json:"-"` // Stored in cents, excluded from JSON
	Notes      *string          `gorm:"type:text" json:"notes,omitempty"`
	PlacedAt   time.Time        `gorm:"not null;index" json:"placed_at"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`

	// Relationships
	Customer Customer    `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Seller   Seller      `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Items    []QuoteItem `gorm:"foreignKey:QuoteID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (q Quote) MarshalJSON() ([]byte, error) {
	type Alias Quote
	return json.Marshal(&struct {
		Alias
		Total float64 `json:"total"`
	}{
		Alias: Alias(q),
		Total: float64(q.Total) / 100,
	})
}

// GetTotalDecimal returns the total as a decimal
func (q *Quote) GetTotalDecimal() float64 {
	return float64(q.Total) / 100
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteItem represents a line item in a quote
type QuoteItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID   uuid.UUID `gorm:"type:uuid;not null;index" json:"quote_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	SubTotal  int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Quote   Quote   `gorm:"foreignKey:QuoteID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (qi QuoteItem) MarshalJSON() ([]byte, error) {
	type Alias QuoteItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		SubTotal  float64 `json:"sub_total"`
	}{
		Alias:     Alias(qi),
		UnitPrice: float64(qi.UnitPrice) / 100,
		SubTotal:  float64(qi.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new quote item
func (qi *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if qi.ID == uuid.Nil {
		qi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteItem model
func (QuoteItem) TableName() string {
	return "quote_items"
}
