package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog entry. The billing engine only reads products;
// prices and GST rates on already-saved bills are snapshots and do not change
// when the catalog is edited.
type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"size:255;not null" json:"name"`
	HSNCode  string    `gorm:"size:20;not null" json:"hsn_code"`
	GSTRate  float64   `gorm:"not null" json:"gst_rate"` // percent, e.g. 18 for 18%
	Price    float64   `gorm:"not null" json:"price"`    // unit price in rupees
	Category string    `gorm:"size:100" json:"category"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
