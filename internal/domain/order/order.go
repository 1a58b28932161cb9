// Package order implements sale orders and their line items. An order's
// monetary aggregates are always recomputed from its line items; the line
// items themselves are frozen snapshots of the product at sale time.
package order

import (
	"context"
	"time"

	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem represents a product snapshot attached to one order.
// The snapshot fields (name, price, cost, code, profit) are captured when
// the sale is entered and never track later product edits.
type LineItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Cost      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Code      string          `gorm:"type:varchar(50)"`
	Profit    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (LineItem) TableName() string {
	return "product_orders"
}

// NewLineItem creates a new line item snapshot. The identifier is generated
// here; items that already exist in the store keep their persisted identifier
// instead (see Order edit reconciliation).
func NewLineItem(productID uuid.UUID, name string, price, cost decimal.Decimal, code string, profit decimal.Decimal, quantity int) (*LineItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}

	now := time.Now()
	return &LineItem{
		ID:        uuid.New(),
		ProductID: productID,
		Name:      name,
		Price:     price,
		Cost:      cost,
		Code:      code,
		Profit:    profit,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Order represents a sale linking a customer group, a payment method and a
// set of line items
type Order struct {
	shared.BaseEntity
	GroupID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentMethodID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderDate       time.Time       `gorm:"not null"`
	Paid            bool            `gorm:"not null;default:true"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Profit          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items           []LineItem      `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new paid order with its full line-item set. Totals are
// computed from the items and the payment method's flat tax rate.
func NewOrder(groupID, paymentMethodID uuid.UUID, orderDate time.Time, items []LineItem, taxRate decimal.Decimal) (*Order, error) {
	if groupID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_GROUP", "Group ID cannot be empty")
	}
	if paymentMethodID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method ID cannot be empty")
	}

	o := &Order{
		BaseEntity:      shared.NewBaseEntity(),
		GroupID:         groupID,
		PaymentMethodID: paymentMethodID,
		OrderDate:       orderDate,
		Paid:            true,
		Items:           items,
	}
	for i := range o.Items {
		o.Items[i].OrderID = o.ID
	}
	totals := ComputeTotals(o.Items, taxRate)
	o.Total = totals.Total
	o.Profit = totals.Profit
	return o, nil
}

// ItemsQuantity returns the summed quantity across all line items
func (o *Order) ItemsQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// OrderWithItemCount pairs an order with its line-item row count for list views
type OrderWithItemCount struct {
	Order
	ItemsCount int64
}

// ReportFilter narrows the paid orders considered by a sales report
type ReportFilter struct {
	From             time.Time
	To               time.Time
	GroupIDs         []uuid.UUID
	PaymentMethodIDs []uuid.UUID
}

// Repository defines the interface for order persistence
type Repository interface {
	// FindByID loads an order with its line items
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindAll lists orders with their line-item counts
	FindAll(ctx context.Context) ([]OrderWithItemCount, error)

	// FindByGroup lists orders (items preloaded) for a group with pagination.
	// A nil groupID lists orders for all groups.
	FindByGroup(ctx context.Context, groupID *uuid.UUID, filter shared.Filter) ([]Order, int64, error)

	// FindPaidInRange lists paid orders within the report window
	FindPaidInRange(ctx context.Context, filter ReportFilter) ([]OrderWithItemCount, error)

	// Create inserts the order and all its line items in one transaction
	Create(ctx context.Context, o *Order) error

	// Reconcile updates the order's scalar fields and applies the item plan
	// (deletes, inserts, updates) in one transaction
	Reconcile(ctx context.Context, o *Order, plan ItemPlan) error

	// Delete removes the order and its line items in one transaction
	Delete(ctx context.Context, id uuid.UUID) error
}
