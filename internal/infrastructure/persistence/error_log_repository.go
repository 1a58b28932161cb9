package persistence

import (
	"context"

	"github.com/celly/backoffice/internal/domain/audit"
	"gorm.io/gorm"
)

// GormErrorLogRepository implements audit.Repository using GORM
type GormErrorLogRepository struct {
	db *gorm.DB
}

// NewGormErrorLogRepository creates a new GormErrorLogRepository
func NewGormErrorLogRepository(db *gorm.DB) *GormErrorLogRepository {
	return &GormErrorLogRepository{db: db}
}

// Save persists an error log entry
func (r *GormErrorLogRepository) Save(ctx context.Context, entry *audit.ErrorLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// FindRecent lists the most recent error log entries
func (r *GormErrorLogRepository) FindRecent(ctx context.Context, limit int) ([]audit.ErrorLog, error) {
	var entries []audit.ErrorLog
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Ensure GormErrorLogRepository implements audit.Repository
var _ audit.Repository = (*GormErrorLogRepository)(nil)
