package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/internal/domain/repository"
	"github.com/retailworks/pos-billing-api/pkg/apperror"
	"github.com/retailworks/pos-billing-api/pkg/pagination"
)

// Indian mobile numbers: ten digits starting 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// BillingService turns cart selections into tax-resolved bills. Computation
// models the intra-state GST regime only: tax splits into equal CGST and SGST
// halves, and there is no IGST branch.
type BillingService struct {
	billRepo    repository.BillRepository
	productRepo repository.ProductRepository
}

// NewBillingService creates a new billing service
func NewBillingService(billRepo repository.BillRepository, productRepo repository.ProductRepository) *BillingService {
	return &BillingService{
		billRepo:    billRepo,
		productRepo: productRepo,
	}
}

// BillItemInput represents one cart line
type BillItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateBillInput represents the create bill input
type CreateBillInput struct {
	CustomerName  string
	CustomerPhone string
	Items         []BillItemInput
}

// BillTotals holds the aggregate figures of a bill
type BillTotals struct {
	Subtotal   float64
	TotalCGST  float64
	TotalSGST  float64
	GrandTotal float64
}

// ComputeLineItem converts one cart line into a fully tax-resolved bill item.
// Precondition: quantity > 0, product.Price >= 0 and product.GSTRate >= 0.
// The HTTP layer validates before this is called; no check is repeated here.
// Amounts are kept unrounded; two-decimal display is the renderer's concern.
func ComputeLineItem(product *entity.Product, quantity int) entity.BillItem {
	taxableValue := product.Price * float64(quantity)
	gstAmount := taxableValue * product.GSTRate / 100

	return entity.BillItem{
		ProductID:    product.ID,
		ProductName:  product.Name,
		HSNCode:      product.HSNCode,
		Category:     product.Category,
		GSTRate:      product.GSTRate,
		UnitPrice:    product.Price,
		Quantity:     quantity,
		TaxableValue: taxableValue,
		CGST:         gstAmount / 2,
		SGST:         gstAmount / 2,
		Total:        taxableValue + gstAmount,
	}
}

// Aggregate sums the per-item figures into bill totals. An empty slice
// yields all-zero totals; whether an empty cart may be finalized is the
// caller's decision, not an error here.
func Aggregate(items []entity.BillItem) BillTotals {
	var t BillTotals
	for _, item := range items {
		t.Subtotal += item.TaxableValue
		t.TotalCGST += item.CGST
		t.TotalSGST += item.SGST
		t.GrandTotal += item.Total
	}
	return t
}

// GenerateBillNo returns a new persisted-bill number.
func GenerateBillNo() string {
	return fmt.Sprintf("BILL-%d", time.Now().UnixMilli())
}

// GeneratePreviewBillNo returns a preview bill number. The distinct prefix
// keeps previews from ever being mistaken for persisted bills.
func GeneratePreviewBillNo() string {
	return fmt.Sprintf("PREVIEW-%d", time.Now().UnixMilli())
}

// CreateBill validates the input, computes all line items and totals, and
// persists the bill.
func (s *BillingService) CreateBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	bill, err := s.buildBill(ctx, input, GenerateBillNo())
	if err != nil {
		return nil, err
	}
	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// PreviewBill computes a bill exactly like CreateBill but does not persist
// it. The returned bill carries a PREVIEW- number.
func (s *BillingService) PreviewBill(ctx context.Context, input *CreateBillInput) (*entity.Bill, error) {
	return s.buildBill(ctx, input, GeneratePreviewBillNo())
}

// buildBill validates input, loads the referenced products and assembles an
// unsaved bill with all computed figures.
func (s *BillingService) buildBill(ctx context.Context, input *CreateBillInput, billNo string) (*entity.Bill, error) {
	if err := validateBillInput(input); err != nil {
		return nil, err
	}

	// Batch fetch all products in one query (prevents N+1)
	productIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		productIDs[i] = item.ProductID
	}
	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	items := make([]entity.BillItem, 0, len(input.Items))
	for i, line := range input.Items {
		product, exists := productMap[line.ProductID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Product %s", line.ProductID))
		}
		item := ComputeLineItem(product, line.Quantity)
		item.Position = i
		items = append(items, item)
	}

	totals := Aggregate(items)

	return &entity.Bill{
		BillNo:        billNo,
		BillDate:      time.Now(),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: input.CustomerPhone,
		Subtotal:      totals.Subtotal,
		TotalCGST:     totals.TotalCGST,
		TotalSGST:     totals.TotalSGST,
		GrandTotal:    totals.GrandTotal,
		Items:         items,
	}, nil
}

// validateBillInput enforces the presentation-layer preconditions: customer
// identity present and plausible, at least one item, positive quantities.
func validateBillInput(input *CreateBillInput) error {
	var fieldErrors []apperror.FieldError

	if len(strings.TrimSpace(input.CustomerName)) < 2 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "customer_name",
			Message: "Customer name is required (minimum 2 characters)",
		})
	}
	if !phonePattern.MatchString(input.CustomerPhone) {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "customer_phone",
			Message: "Valid 10-digit mobile number is required",
		})
	}
	if len(input.Items) == 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{
			Field:   "items",
			Message: "At least one item is required",
		})
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   "items",
				Message: "Quantity must be at least 1",
			})
			break
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// GetBill retrieves a bill with its items
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// GetBillByNumber retrieves a bill by its printed number
func (s *BillingService) GetBillByNumber(ctx context.Context, billNo string) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByBillNo(ctx, billNo)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills retrieves bills with pagination
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) (*pagination.PaginatedResult[entity.Bill], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	bills, total, err := s.billRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(bills, p), nil
}
