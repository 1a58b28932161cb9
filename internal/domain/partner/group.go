// Package partner holds the customer-facing entities of the back office.
// Customers are tracked as groups (a family, a reseller, a walk-in batch)
// rather than individuals.
package partner

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// PhoneFallback is stored when a group is created without a usable phone number
const PhoneFallback = "Não informado"

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Group represents a customer group that places orders
type Group struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Phone       string `gorm:"type:varchar(30);not null"`
}

// TableName returns the table name for GORM
func (Group) TableName() string {
	return "groups"
}

// NewGroup creates a new customer group. The phone number is stripped to
// digits; when nothing remains, a fallback marker is stored instead.
func NewGroup(name, description, phone string) (*Group, error) {
	if err := validateGroupName(name); err != nil {
		return nil, err
	}
	return &Group{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Phone:       normalizePhone(phone),
	}, nil
}

// GroupPatch holds the optional fields of a group update
type GroupPatch struct {
	Name        *string
	Description *string
	Phone       *string
}

// IsEmpty returns true if the patch carries no fields
func (p GroupPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Phone == nil
}

// Apply applies the patch to the group
func (g *Group) Apply(p GroupPatch) error {
	if p.IsEmpty() {
		return shared.ErrEmptyPatch
	}
	if p.Name != nil {
		if err := validateGroupName(*p.Name); err != nil {
			return err
		}
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Phone != nil {
		g.Phone = normalizePhone(*p.Phone)
	}
	g.UpdatedAt = time.Now()
	return nil
}

func normalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if digits == "" {
		return PhoneFallback
	}
	return digits
}

func validateGroupName(name string) error {
	if strings.ReplaceAll(name, " ", "") == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

// GroupWithOrderCount pairs a group with the number of orders it placed
type GroupWithOrderCount struct {
	Group
	OrdersCount int64
}

// GroupRepository defines the interface for group persistence
type GroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Group, error)
	FindByIDWithOrderCount(ctx context.Context, id uuid.UUID) (*GroupWithOrderCount, error)
	FindAll(ctx context.Context) ([]Group, error)
	SearchByName(ctx context.Context, query string) ([]Group, error)
	Save(ctx context.Context, group *Group) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
