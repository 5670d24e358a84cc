package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bill represents a finalized tax invoice. Bills are written once at save
// time and never mutated; a follow-up sale produces a new bill. Preview bills
// carry a PREVIEW- prefixed number and are never persisted.
type Bill struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillNo        string    `gorm:"size:100;unique;not null" json:"bill_no"`
	BillDate      time.Time `gorm:"not null" json:"bill_date"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string    `gorm:"size:20;not null" json:"customer_phone"`

	// Aggregates, each the sum of the corresponding item field.
	Subtotal   float64 `gorm:"not null" json:"subtotal"`
	TotalCGST  float64 `gorm:"not null" json:"total_cgst"`
	TotalSGST  float64 `gorm:"not null" json:"total_sgst"`
	GrandTotal float64 `gorm:"not null" json:"grand_total"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships. Item order is entry order and drives the serial numbers
	// on the rendered invoice.
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one fully tax-resolved line of a bill. Product identity fields
// are snapshotted at computation time so the line stays correct if the
// catalog entry is later edited or deleted.
type BillItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	BillID    uuid.UUID `gorm:"type:uuid;index" json:"bill_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Position  int       `gorm:"not null" json:"position"` // entry order, 0-based

	// Product snapshot
	ProductName string  `gorm:"size:255;not null" json:"product_name"`
	HSNCode     string  `gorm:"size:20;not null" json:"hsn_code"`
	Category    string  `gorm:"size:100" json:"category"`
	GSTRate     float64 `gorm:"not null" json:"gst_rate"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`

	// Computed fields. Invariant: Total == TaxableValue + CGST + SGST and
	// CGST == SGST (intra-state symmetric split).
	Quantity     int     `gorm:"not null" json:"quantity"`
	TaxableValue float64 `gorm:"not null" json:"taxable_value"`
	CGST         float64 `gorm:"not null" json:"cgst"`
	SGST         float64 `gorm:"not null" json:"sgst"`
	Total        float64 `gorm:"not null" json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new bill item
func (i *BillItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// HalfRate returns the CGST/SGST rate in percent, half the product's GST
// rate. This is the rate shown on item rows, distinct from the CGST/SGST
// currency amounts.
func (i *BillItem) HalfRate() float64 {
	return i.GSTRate / 2
}
