// Package payment holds the configured payment methods of the shop.
// Each method carries a flat tax amount that is subtracted once from the
// profit of every order paid through it.
package payment

import (
	"context"
	"strings"
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method represents a payment method configuration row
type Method struct {
	shared.BaseEntity
	Name    string          `gorm:"type:varchar(100);not null"`
	TaxRate decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Enabled bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Method) TableName() string {
	return "payment_methods"
}

// NewMethod creates a new payment method
func NewMethod(name string, taxRate decimal.Decimal) (*Method, error) {
	if strings.ReplaceAll(name, " ", "") == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}
	return &Method{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		TaxRate:    taxRate,
		Enabled:    true,
	}, nil
}

// MethodPatch holds the optional fields of a payment method update
type MethodPatch struct {
	Name    *string
	TaxRate *decimal.Decimal
	Enabled *bool
}

// IsEmpty returns true if the patch carries no fields
func (p MethodPatch) IsEmpty() bool {
	return p.Name == nil && p.TaxRate == nil && p.Enabled == nil
}

// Apply applies the patch to the payment method
func (m *Method) Apply(p MethodPatch) error {
	if p.IsEmpty() {
		return shared.ErrEmptyPatch
	}
	if p.Name != nil {
		if strings.ReplaceAll(*p.Name, " ", "") == "" {
			return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
		}
		m.Name = *p.Name
	}
	if p.TaxRate != nil {
		if p.TaxRate.IsNegative() {
			return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
		}
		m.TaxRate = *p.TaxRate
	}
	if p.Enabled != nil {
		m.Enabled = *p.Enabled
	}
	m.UpdatedAt = time.Now()
	return nil
}

// Disable marks the method as disabled. Payment methods are never physically
// deleted because orders keep referencing them.
func (m *Method) Disable() {
	m.Enabled = false
	m.UpdatedAt = time.Now()
}

// MethodRepository defines the interface for payment method persistence
type MethodRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Method, error)
	FindAll(ctx context.Context) ([]Method, error)
	FindEnabled(ctx context.Context) ([]Method, error)
	Save(ctx context.Context, method *Method) error
}
