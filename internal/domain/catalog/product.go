package catalog

import (
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog.
// Profit is derived: it always equals Price minus Cost.
type Product struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(100);not null"`
	Description  string          `gorm:"type:text;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Profit       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity     int             `gorm:"not null;default:0"`
	Code         string          `gorm:"type:varchar(50)"`
	Available    bool            `gorm:"not null;default:true"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	CollectionID *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product with profit derived from price and cost
func NewProduct(name, description string, price, cost decimal.Decimal, quantity int, code string, available bool, categoryID uuid.UUID) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
	}
	if quantity < 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
	}
	return &Product{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
		Price:       price,
		Cost:        cost,
		Profit:      price.Sub(cost),
		Quantity:    quantity,
		Code:        code,
		Available:   available,
		CategoryID:  categoryID,
	}, nil
}

// ProductPatch holds the optional fields of a product update
type ProductPatch struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	Cost         *decimal.Decimal
	Quantity     *int
	Code         *string
	Available    *bool
	CategoryID   *uuid.UUID
	CollectionID *uuid.UUID
}

// IsEmpty returns true if the patch carries no fields
func (p ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil &&
		p.Cost == nil && p.Quantity == nil && p.Code == nil &&
		p.Available == nil && p.CategoryID == nil && p.CollectionID == nil
}

// Apply applies the patch to the product. When price or cost is supplied,
// profit is recomputed using the stored value for whichever of the pair
// was not supplied.
func (pr *Product) Apply(p ProductPatch) error {
	if p.IsEmpty() {
		return shared.ErrEmptyPatch
	}
	if p.Name != nil {
		if err := validateName(*p.Name); err != nil {
			return err
		}
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.Quantity != nil {
		if *p.Quantity < 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Quantity cannot be negative")
		}
		pr.Quantity = *p.Quantity
	}
	if p.Code != nil {
		pr.Code = *p.Code
	}
	if p.Available != nil {
		pr.Available = *p.Available
	}
	if p.CategoryID != nil {
		if *p.CategoryID == uuid.Nil {
			return shared.NewDomainError("INVALID_CATEGORY", "Category ID cannot be empty")
		}
		pr.CategoryID = *p.CategoryID
	}
	if p.CollectionID != nil {
		pr.CollectionID = p.CollectionID
	}
	if p.Price != nil || p.Cost != nil {
		if p.Price != nil {
			pr.Price = *p.Price
		}
		if p.Cost != nil {
			pr.Cost = *p.Cost
		}
		pr.Profit = pr.Price.Sub(pr.Cost)
	}
	pr.UpdatedAt = time.Now()
	return nil
}
