package persistence

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/business"
	"github.com/celly/backoffice/internal/domain/shared"
	"gorm.io/gorm"
)

// GormBusinessRepository implements business.Repository using GORM
type GormBusinessRepository struct {
	db *gorm.DB
}

// NewGormBusinessRepository creates a new GormBusinessRepository
func NewGormBusinessRepository(db *gorm.DB) *GormBusinessRepository {
	return &GormBusinessRepository{db: db}
}

// Find returns the singleton business profile
func (r *GormBusinessRepository) Find(ctx context.Context) (*business.Profile, error) {
	var profile business.Profile
	if err := r.db.WithContext(ctx).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates the business profile
func (r *GormBusinessRepository) Save(ctx context.Context, profile *business.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Ensure GormBusinessRepository implements business.Repository
var _ business.Repository = (*GormBusinessRepository)(nil)
