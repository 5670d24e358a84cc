package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retailworks/pos-billing-api/internal/domain/enum"
)

// ShopSettings holds the shop profile printed on every invoice. The service
// keeps a single row and hands renderers a snapshot value; nothing observes
// settings changes after a document has been produced.
type ShopSettings struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopName string    `gorm:"size:255;not null" json:"shop_name"`
	Address  string    `gorm:"size:500" json:"address"`
	Phone    string    `gorm:"size:20" json:"phone"`
	Email    string    `gorm:"size:255" json:"email"`
	GSTIN    string    `gorm:"size:20" json:"gstin"`
	Logo     *string   `gorm:"type:text" json:"logo,omitempty"` // image URL or data URI

	UPIID          string          `gorm:"size:100" json:"upi_id"`
	ShowUPIOnBill  bool            `gorm:"default:true" json:"show_upi_on_bill"`
	ShowLogoOnBill bool            `gorm:"default:true" json:"show_logo_on_bill"`
	BillFormat     enum.BillFormat `gorm:"size:20;default:'standard'" json:"bill_format"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *ShopSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ShopSettings model
func (ShopSettings) TableName() string {
	return "shop_settings"
}

// HasLogo reports whether a logo is configured.
func (s *ShopSettings) HasLogo() bool {
	return s.Logo != nil && *s.Logo != ""
}

// LogoURL returns the configured logo reference, or "" when absent.
func (s *ShopSettings) LogoURL() string {
	if s.Logo == nil {
		return ""
	}
	return *s.Logo
}
