package catalog

import (
	"context"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// CategoryWithCount pairs a category with its product count for list views
type CategoryWithCount struct {
	Category
	ProductsCount int64
}

// CollectionWithCount pairs a collection with its product count for list views
type CollectionWithCount struct {
	Collection
	ProductsCount int64
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindAll(ctx context.Context) ([]CategoryWithCount, error)
	FindPublic(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CollectionRepository defines the interface for collection persistence
type CollectionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Collection, error)
	FindAll(ctx context.Context) ([]CollectionWithCount, error)
	FindPublic(ctx context.Context) ([]Collection, error)
	Save(ctx context.Context, collection *Collection) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindAvailable(ctx context.Context) ([]Product, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Product, error)
	FindByCollection(ctx context.Context, collectionID uuid.UUID) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
