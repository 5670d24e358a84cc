package repository

import (
	"context"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
)

// SettingsRepository defines the interface for shop settings data access.
// The shop profile is a single row; Get returns nil when none exists yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.ShopSettings, error)
	Create(ctx context.Context, settings *entity.ShopSettings) error
	Update(ctx context.Context, settings *entity.ShopSettings) error
}
