package catalog

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/catalog"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, categoryRepo catalog.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Create creates a new product. Profit is derived from price and cost at
// creation time.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.WrapDomainError("INVALID_CATEGORY", "Category not found", err)
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.Name, req.Description, req.Price, req.Cost, req.Quantity, req.Code, req.Available, req.CategoryID)
	if err != nil {
		return nil, err
	}
	product.CollectionID = req.CollectionID

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List retrieves products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Filters:  make(map[string]any),
	}
	if filter.Available != nil {
		domainFilter.Filters["available"] = *filter.Available
	}
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.CollectionID != nil {
		domainFilter.Filters["collection_id"] = *filter.CollectionID
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListAvailable retrieves products marked available for sale
func (s *ProductService) ListAvailable(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCategory retrieves products belonging to a category
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListByCollection retrieves products belonging to a collection
func (s *ProductService) ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]ProductResponse, error) {
	products, err := s.productRepo.FindByCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// Update applies a partial update to a product. Profit is recomputed from
// the stored row when price or cost changes.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.WrapDomainError("INVALID_CATEGORY", "Category not found", err)
			}
			return nil, err
		}
	}

	patch := catalog.ProductPatch{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Cost:         req.Cost,
		Quantity:     req.Quantity,
		Code:         req.Code,
		Available:    req.Available,
		CategoryID:   req.CategoryID,
		CollectionID: req.CollectionID,
	}
	if err := product.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses
}
