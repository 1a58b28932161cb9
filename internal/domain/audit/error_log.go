// Package audit persists operation failures to the error-log table so that
// incidents survive process restarts and can be attributed to a user.
package audit

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// TruncateLen caps the stored message and stack length
const TruncateLen = 180

// ErrorLog is one recorded operation failure
type ErrorLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Message   string     `gorm:"type:varchar(180);not null"`
	Stack     string     `gorm:"type:varchar(180);not null"`
	Info      string     `gorm:"type:varchar(100);not null"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (ErrorLog) TableName() string {
	return "error_logs"
}

// NewErrorLog creates an error-log entry, truncating message and stack
func NewErrorLog(message, stack, info string, userID *uuid.UUID) *ErrorLog {
	return &ErrorLog{
		ID:        uuid.New(),
		Message:   truncate(message),
		Stack:     truncate(stack),
		Info:      info,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
}

// truncate cuts s to at most TruncateLen bytes without splitting a rune
func truncate(s string) string {
	if len(s) <= TruncateLen {
		return s
	}
	cut := TruncateLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Repository defines the interface for error-log persistence
type Repository interface {
	Save(ctx context.Context, entry *ErrorLog) error
	FindRecent(ctx context.Context, limit int) ([]ErrorLog, error)
}
