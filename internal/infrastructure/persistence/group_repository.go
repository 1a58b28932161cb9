package persistence

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/partner"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormGroupRepository implements GroupRepository using GORM
type GormGroupRepository struct {
	db *gorm.DB
}

// NewGormGroupRepository creates a new GormGroupRepository
func NewGormGroupRepository(db *gorm.DB) *GormGroupRepository {
	return &GormGroupRepository{db: db}
}

// FindByID finds a group by its ID
func (r *GormGroupRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Group, error) {
	var group partner.Group
	if err := r.db.WithContext(ctx).First(&group, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// FindByIDWithOrderCount finds a group together with the number of orders it placed
func (r *GormGroupRepository) FindByIDWithOrderCount(ctx context.Context, id uuid.UUID) (*partner.GroupWithOrderCount, error) {
	var row partner.GroupWithOrderCount
	result := r.db.WithContext(ctx).
		Model(&partner.Group{}).
		Select("groups.*, COUNT(orders.id) AS orders_count").
		Joins("LEFT JOIN orders ON orders.group_id = groups.id").
		Where("groups.id = ?", id).
		Group("groups.id").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}
	return &row, nil
}

// FindAll lists every group
func (r *GormGroupRepository) FindAll(ctx context.Context) ([]partner.Group, error) {
	var groups []partner.Group
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// SearchByName lists groups whose name contains the query, case-insensitively
func (r *GormGroupRepository) SearchByName(ctx context.Context, query string) ([]partner.Group, error) {
	var groups []partner.Group
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+query+"%").
		Order("name ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Save creates or updates a group
func (r *GormGroupRepository) Save(ctx context.Context, group *partner.Group) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// Delete deletes a group
func (r *GormGroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Group{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByID checks whether a group with the given ID exists
func (r *GormGroupRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Group{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormGroupRepository implements GroupRepository
var _ partner.GroupRepository = (*GormGroupRepository)(nil)
