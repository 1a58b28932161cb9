package catalog

import (
	"strings"
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
)

// Category represents a product category in the catalog
type Category struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Public      bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name, description string) (*Category, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// CategoryPatch holds the optional fields of a category update.
// Nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string
	Description *string
	Public      *bool
}

// IsEmpty returns true if the patch carries no fields
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Public == nil
}

// Apply applies the patch to the category
func (c *Category) Apply(p CategoryPatch) error {
	if p.IsEmpty() {
		return shared.ErrEmptyPatch
	}
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Public != nil {
		c.Public = *p.Public
	}
	c.UpdatedAt = time.Now()
	return nil
}

// validateName rejects names that are empty after whitespace-stripping
func validateName(name string) error {
	if strings.ReplaceAll(name, " ", "") == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}
