package persistence

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/payment"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMethodRepository implements MethodRepository using GORM
type GormMethodRepository struct {
	db *gorm.DB
}

// NewGormMethodRepository creates a new GormMethodRepository
func NewGormMethodRepository(db *gorm.DB) *GormMethodRepository {
	return &GormMethodRepository{db: db}
}

// FindByID finds a payment method by its ID
func (r *GormMethodRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Method, error) {
	var method payment.Method
	if err := r.db.WithContext(ctx).First(&method, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &method, nil
}

// FindAll lists every payment method, enabled or not
func (r *GormMethodRepository) FindAll(ctx context.Context) ([]payment.Method, error) {
	var methods []payment.Method
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// FindEnabled lists payment methods accepted at the counter
func (r *GormMethodRepository) FindEnabled(ctx context.Context) ([]payment.Method, error) {
	var methods []payment.Method
	if err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("name ASC").
		Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}

// Save creates or updates a payment method
func (r *GormMethodRepository) Save(ctx context.Context, method *payment.Method) error {
	return r.db.WithContext(ctx).Save(method).Error
}

// Ensure GormMethodRepository implements MethodRepository
var _ payment.MethodRepository = (*GormMethodRepository)(nil)
