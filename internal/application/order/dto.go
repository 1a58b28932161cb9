package order

import (
	"time"

	"github.com/celly/backoffice/internal/domain/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemRequest represents one desired line item. ID is present when the item
// already exists on the order being edited; new additions omit it. The
// snapshot fields come from the client and are frozen on the row at sale
// time.
type ItemRequest struct {
	ID        *uuid.UUID      `json:"id"`
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Cost      decimal.Decimal `json:"cost"`
	Code      string          `json:"code" binding:"max=50"`
	Profit    decimal.Decimal `json:"profit"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents a checkout submission
type CreateOrderRequest struct {
	GroupID         uuid.UUID     `json:"group_id" binding:"required"`
	PaymentMethodID uuid.UUID     `json:"payment_method_id" binding:"required"`
	OrderDate       time.Time     `json:"order_date" binding:"required"`
	Items           []ItemRequest `json:"items"`
}

// EditOrderRequest replaces an order's scalar fields and line-item set.
// Paid defaults to the stored value when omitted.
type EditOrderRequest struct {
	GroupID         uuid.UUID     `json:"group_id" binding:"required"`
	PaymentMethodID uuid.UUID     `json:"payment_method_id" binding:"required"`
	OrderDate       time.Time     `json:"order_date" binding:"required"`
	Paid            *bool         `json:"paid"`
	Items           []ItemRequest `json:"items"`
}

// ItemResponse represents a line item in API responses
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Code      string          `json:"code"`
	Profit    decimal.Decimal `json:"profit"`
	Quantity  int             `json:"quantity"`
}

// OrderResponse represents an order with its line items
type OrderResponse struct {
	ID              uuid.UUID       `json:"id"`
	GroupID         uuid.UUID       `json:"group_id"`
	GroupName       string          `json:"group_name,omitempty"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id"`
	OrderDate       time.Time       `json:"order_date"`
	Paid            bool            `json:"paid"`
	Total           decimal.Decimal `json:"total"`
	Profit          decimal.Decimal `json:"profit"`
	Items           []ItemResponse  `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderListResponse represents an order list row
type OrderListResponse struct {
	ID              uuid.UUID       `json:"id"`
	GroupID         uuid.UUID       `json:"group_id"`
	GroupName       string          `json:"group_name"`
	PaymentMethodID uuid.UUID       `json:"payment_method_id"`
	OrderDate       time.Time       `json:"order_date"`
	Paid            bool            `json:"paid"`
	Total           decimal.Decimal `json:"total"`
	ItemsCount      int64           `json:"items_count"`
}

// GroupOrderResponse represents an order row in the per-group search view
type GroupOrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	GroupID       uuid.UUID       `json:"group_id"`
	OrderDate     time.Time       `json:"order_date"`
	Paid          bool            `json:"paid"`
	Total         decimal.Decimal `json:"total"`
	Profit        decimal.Decimal `json:"profit"`
	ItemsQuantity int             `json:"items_quantity"`
}

// ToItemResponse converts a line item to a response DTO
func ToItemResponse(item *order.LineItem) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Cost:      item.Cost,
		Code:      item.Code,
		Profit:    item.Profit,
		Quantity:  item.Quantity,
	}
}

// ToOrderResponse converts an order to a response DTO
func ToOrderResponse(o *order.Order, groupName string) *OrderResponse {
	items := make([]ItemResponse, len(o.Items))
	for i := range o.Items {
		items[i] = ToItemResponse(&o.Items[i])
	}
	return &OrderResponse{
		ID:              o.ID,
		GroupID:         o.GroupID,
		GroupName:       groupName,
		PaymentMethodID: o.PaymentMethodID,
		OrderDate:       o.OrderDate,
		Paid:            o.Paid,
		Total:           o.Total,
		Profit:          o.Profit,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
