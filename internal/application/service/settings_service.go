package service

import (
	"context"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/internal/domain/enum"
	"github.com/retailworks/pos-billing-api/internal/domain/repository"
)

// SettingsService handles the shop profile. The profile is a single row;
// renderers receive it as a plain snapshot value, never as something they
// subscribe to.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the shop settings, creating defaults if none exist
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.ShopSettings{
			ShopName:       "TechWorld Electronics",
			Address:        "123 Electronics Plaza, Tech City, State - 123456",
			Phone:          "9876543210",
			Email:          "info@techworld.com",
			GSTIN:          "19ABCDE1234F1Z5",
			UPIID:          "techworld@upi",
			ShowUPIOnBill:  true,
			ShowLogoOnBill: true,
			BillFormat:     enum.BillFormatStandard,
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating the shop profile
type UpdateSettingsInput struct {
	ShopName       string
	Address        string
	Phone          string
	Email          string
	GSTIN          string
	Logo           *string
	UPIID          string
	ShowUPIOnBill  bool
	ShowLogoOnBill bool
	BillFormat     enum.BillFormat
}

// UpdateSettings updates the shop profile
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ShopSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.ShopName = input.ShopName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.GSTIN = input.GSTIN
	settings.Logo = input.Logo
	settings.UPIID = input.UPIID
	settings.ShowUPIOnBill = input.ShowUPIOnBill
	settings.ShowLogoOnBill = input.ShowLogoOnBill
	settings.BillFormat = input.BillFormat.Normalize()

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
