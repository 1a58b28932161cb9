package persistence

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/order"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements order.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID loads an order with its line items
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindAll lists orders with their line-item counts, most recent first
func (r *GormOrderRepository) FindAll(ctx context.Context) ([]order.OrderWithItemCount, error) {
	var rows []order.OrderWithItemCount
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Select("orders.*, COUNT(product_orders.id) AS items_count").
		Joins("LEFT JOIN product_orders ON product_orders.order_id = orders.id").
		Group("orders.id").
		Order("orders.order_date DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByGroup lists orders with items preloaded for a group, paginated.
// A nil groupID lists orders for all groups.
func (r *GormOrderRepository) FindByGroup(ctx context.Context, groupID *uuid.UUID, filter shared.Filter) ([]order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&order.Order{})
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []order.Order
	if filter.Paginates() {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.
		Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// FindPaidInRange lists paid orders within the report window
func (r *GormOrderRepository) FindPaidInRange(ctx context.Context, filter order.ReportFilter) ([]order.OrderWithItemCount, error) {
	query := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Select("orders.*, COUNT(product_orders.id) AS items_count").
		Joins("LEFT JOIN product_orders ON product_orders.order_id = orders.id").
		Where("orders.paid = ?", true).
		Where("orders.order_date >= ? AND orders.order_date <= ?", filter.From, filter.To)

	if len(filter.GroupIDs) > 0 {
		query = query.Where("orders.group_id IN ?", filter.GroupIDs)
	}
	if len(filter.PaymentMethodIDs) > 0 {
		query = query.Where("orders.payment_method_id IN ?", filter.PaymentMethodIDs)
	}

	var rows []order.OrderWithItemCount
	if err := query.
		Group("orders.id").
		Order("orders.order_date DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts the order and all its line items in one transaction
func (r *GormOrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

// Reconcile updates the order's scalar fields and applies the item plan in
// one transaction. A failure at any step rolls everything back, leaving the
// stored order untouched.
func (r *GormOrderRepository) Reconcile(ctx context.Context, o *order.Order, plan order.ItemPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"group_id":          o.GroupID,
			"payment_method_id": o.PaymentMethodID,
			"order_date":        o.OrderDate,
			"paid":              o.Paid,
			"total":             o.Total,
			"profit":            o.Profit,
			"updated_at":        o.UpdatedAt,
		}
		result := tx.Model(&order.Order{}).Where("id = ?", o.ID).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if len(plan.Remove) > 0 {
			if err := tx.Delete(&order.LineItem{}, "id IN ?", plan.Remove).Error; err != nil {
				return err
			}
		}

		if len(plan.Add) > 0 {
			if err := tx.Create(plan.Add).Error; err != nil {
				return err
			}
		}

		for i := range plan.Update {
			item := plan.Update[i]
			if err := tx.Model(&order.LineItem{}).
				Where("id = ?", item.ID).
				Updates(map[string]any{
					"product_id": item.ProductID,
					"name":       item.Name,
					"price":      item.Price,
					"cost":       item.Cost,
					"code":       item.Code,
					"profit":     item.Profit,
					"quantity":   item.Quantity,
					"updated_at": item.UpdatedAt,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes the order and its line items in one transaction
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&order.LineItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&order.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormOrderRepository implements order.Repository
var _ order.Repository = (*GormOrderRepository)(nil)
