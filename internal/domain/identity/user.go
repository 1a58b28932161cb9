// Package identity holds the back-office user accounts.
package identity

import (
	"context"
	"strings"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// User represents a back-office user account
type User struct {
	shared.BaseEntity
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with an already-hashed password
func NewUser(name, email, passwordHash string) (*User, error) {
	if strings.ReplaceAll(name, " ", "") == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is not valid")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_PASSWORD", "Password hash cannot be empty")
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: passwordHash,
	}, nil
}

// Identity is the resolved session identity passed into operations
type Identity struct {
	ID   uuid.UUID
	Name string
}

// Repository defines the interface for user persistence
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Save(ctx context.Context, user *User) error
}
