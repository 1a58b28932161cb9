package catalog

import (
	"time"

	"github.com/celly/backoffice/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCategoryRequest represents a partial category update.
// At least one field must be present.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Public      *bool   `json:"public"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Public      bool      `json:"public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse represents a category list item with its product count
type CategoryListResponse struct {
	CategoryResponse
	ProductsCount int64 `json:"products_count"`
}

// ToCategoryResponse converts a domain category to a response DTO
func ToCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Public:      c.Public,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCategoryListResponse converts a counted category row to a list DTO
func ToCategoryListResponse(c *catalog.CategoryWithCount) CategoryListResponse {
	return CategoryListResponse{
		CategoryResponse: *ToCategoryResponse(&c.Category),
		ProductsCount:    c.ProductsCount,
	}
}

// CreateCollectionRequest represents a request to create a collection
type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateCollectionRequest represents a partial collection update
type UpdateCollectionRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Public      *bool   `json:"public"`
}

// CollectionResponse represents a collection in API responses
type CollectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Public      bool      `json:"public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CollectionListResponse represents a collection list item with its product count
type CollectionListResponse struct {
	CollectionResponse
	ProductsCount int64 `json:"products_count"`
}

// ToCollectionResponse converts a domain collection to a response DTO
func ToCollectionResponse(c *catalog.Collection) *CollectionResponse {
	return &CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Public:      c.Public,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToCollectionListResponse converts a counted collection row to a list DTO
func ToCollectionListResponse(c *catalog.CollectionWithCount) CollectionListResponse {
	return CollectionListResponse{
		CollectionResponse: *ToCollectionResponse(&c.Collection),
		ProductsCount:      c.ProductsCount,
	}
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,min=1,max=100"`
	Description  string          `json:"description" binding:"required,max=2000"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	Cost         decimal.Decimal `json:"cost" binding:"required"`
	Quantity     int             `json:"quantity"`
	Code         string          `json:"code" binding:"max=50"`
	Available    bool            `json:"available"`
	CategoryID   uuid.UUID       `json:"category_id" binding:"required"`
	CollectionID *uuid.UUID      `json:"collection_id"`
}

// UpdateProductRequest represents a partial product update.
// Supplying price or cost recomputes the stored profit.
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Description  *string          `json:"description" binding:"omitempty,max=2000"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
	Quantity     *int             `json:"quantity"`
	Code         *string          `json:"code" binding:"omitempty,max=50"`
	Available    *bool            `json:"available"`
	CategoryID   *uuid.UUID       `json:"category_id"`
	CollectionID *uuid.UUID       `json:"collection_id"`
}

// ProductListFilter narrows a product listing
type ProductListFilter struct {
	Search       string     `form:"search"`
	Available    *bool      `form:"available"`
	CategoryID   *uuid.UUID `form:"category_id"`
	CollectionID *uuid.UUID `form:"collection_id"`
	Page         int        `form:"page"`
	PageSize     int        `form:"page_size"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Profit       decimal.Decimal `json:"profit"`
	Quantity     int             `json:"quantity"`
	Code         string          `json:"code"`
	Available    bool            `json:"available"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CollectionID *uuid.UUID      `json:"collection_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Cost:         p.Cost,
		Profit:       p.Profit,
		Quantity:     p.Quantity,
		Code:         p.Code,
		Available:    p.Available,
		CategoryID:   p.CategoryID,
		CollectionID: p.CollectionID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
