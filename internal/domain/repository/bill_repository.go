package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/pkg/pagination"
)

// BillRepository defines the interface for bill data operations. Bills are
// insert-only; there is deliberately no Update.
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	// GetWithItems retrieves a bill with its line items in entry order.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByBillNo(ctx context.Context, billNo string) (*entity.Bill, error)
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
}

// BillFilterParams contains filtering parameters for bill queries
type BillFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches bill number, customer name, or phone
}
