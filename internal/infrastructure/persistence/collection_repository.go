package persistence

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/catalog"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCollectionRepository implements CollectionRepository using GORM
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewGormCollectionRepository creates a new GormCollectionRepository
func NewGormCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// FindByID finds a collection by its ID
func (r *GormCollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Collection, error) {
	var collection catalog.Collection
	if err := r.db.WithContext(ctx).First(&collection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &collection, nil
}

// FindAll lists every collection together with its product count
func (r *GormCollectionRepository) FindAll(ctx context.Context) ([]catalog.CollectionWithCount, error) {
	var rows []catalog.CollectionWithCount
	if err := r.db.WithContext(ctx).
		Model(&catalog.Collection{}).
		Select("collections.*, COUNT(products.id) AS products_count").
		Joins("LEFT JOIN products ON products.collection_id = collections.id").
		Group("collections.id").
		Order("collections.name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindPublic lists collections visible on the storefront
func (r *GormCollectionRepository) FindPublic(ctx context.Context) ([]catalog.Collection, error) {
	var collections []catalog.Collection
	if err := r.db.WithContext(ctx).
		Where("public = ?", true).
		Order("name ASC").
		Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// Save creates or updates a collection
func (r *GormCollectionRepository) Save(ctx context.Context, collection *catalog.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

// Delete deletes a collection
func (r *GormCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Collection{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCollectionRepository implements CollectionRepository
var _ catalog.CollectionRepository = (*GormCollectionRepository)(nil)
