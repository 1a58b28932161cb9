package catalog

import (
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
)

// Collection represents a curated set of products displayed together.
// A product belongs to at most one collection.
type Collection struct {
	shared.BaseEntity
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Public      bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Collection) TableName() string {
	return "collections"
}

// NewCollection creates a new collection
func NewCollection(name, description string) (*Collection, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return &Collection{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// CollectionPatch holds the optional fields of a collection update
type CollectionPatch struct {
	Name        *string
	Description *string
	Public      *bool
}

// IsEmpty returns true if the patch carries no fields
func (p CollectionPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Public == nil
}

// Apply applies the patch to the collection
func (c *Collection) Apply(p CollectionPatch) error {
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
