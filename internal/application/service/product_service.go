package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/retailworks/pos-billing-api/internal/domain/entity"
	"github.com/retailworks/pos-billing-api/internal/domain/repository"
	"github.com/retailworks/pos-billing-api/pkg/apperror"
	"github.com/retailworks/pos-billing-api/pkg/pagination"
)

// ProductService handles catalog-related business logic
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	HSNCode  string
	GSTRate  float64
	Price    float64
	Category string
}

// CreateProduct creates a new catalog entry
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:     input.Name,
		HSNCode:  input.HSNCode,
		GSTRate:  input.GSTRate,
		Price:    input.Price,
		Category: input.Category,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input; nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name     *string
	HSNCode  *string
	GSTRate  *float64
	Price    *float64
	Category *string
}

// UpdateProduct updates an existing catalog entry. Saved bills are not
// affected; their line items carry product snapshots.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.HSNCode != nil {
		product.HSNCode = *input.HSNCode
	}
	if input.GSTRate != nil {
		product.GSTRate = *input.GSTRate
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft-deletes a catalog entry
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts retrieves products with filtering and pagination
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, p), nil
}
