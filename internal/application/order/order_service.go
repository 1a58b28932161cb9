// Package order contains the checkout and edit-reconciliation services.
package order

import (
	"context"
	"errors"
	"time"

	"github.com/celly/backoffice/internal/domain/catalog"
	"github.com/celly/backoffice/internal/domain/order"
	"github.com/celly/backoffice/internal/domain/partner"
	"github.com/celly/backoffice/internal/domain/payment"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// Service handles order business operations
type Service struct {
	orderRepo   order.Repository
	groupRepo   partner.GroupRepository
	methodRepo  payment.MethodRepository
	productRepo catalog.ProductRepository
}

// NewService creates a new order Service
func NewService(
	orderRepo order.Repository,
	groupRepo partner.GroupRepository,
	methodRepo payment.MethodRepository,
	productRepo catalog.ProductRepository,
) *Service {
	return &Service{
		orderRepo:   orderRepo,
		groupRepo:   groupRepo,
		methodRepo:  methodRepo,
		productRepo: productRepo,
	}
}

// Create persists a new paid order with its full line-item set. The group,
// payment method and every referenced product must exist; totals are
// computed from the items and the method's flat tax rate.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	group, err := s.findGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	method, err := s.findMethod(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	items, err := s.buildItems(ctx, req.Items, nil, nil)
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(req.GroupID, req.PaymentMethodID, req.OrderDate, items, method.TaxRate)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}
	return ToOrderResponse(o, group.Name), nil
}

// Edit mutates an order's scalar fields and reconciles its line-item set
// against the desired list. Scalar updates and the remove/add/update buckets
// are applied in a single transaction; repeating the same edit with the
// persisted identifiers is a no-op.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, req EditOrderRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	group, err := s.findGroup(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	method, err := s.findMethod(ctx, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	current := make(map[uuid.UUID]struct{}, len(o.Items))
	for i := range o.Items {
		current[o.Items[i].ID] = struct{}{}
	}
	desired, err := s.buildItems(ctx, req.Items, &o.ID, current)
	if err != nil {
		return nil, err
	}

	totals := order.ComputeTotals(desired, method.TaxRate)

	o.GroupID = req.GroupID
	o.PaymentMethodID = req.PaymentMethodID
	o.OrderDate = req.OrderDate
	if req.Paid != nil {
		o.Paid = *req.Paid
	}
	o.Total = totals.Total
	o.Profit = totals.Profit
	o.UpdatedAt = time.Now()

	plan := order.ReconcileItems(o.Items, desired)
	if err := s.orderRepo.Reconcile(ctx, o, plan); err != nil {
		return nil, err
	}

	o.Items = desired
	return ToOrderResponse(o, group.Name), nil
}

// GetByID retrieves an order with its line items and group name
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.FindByID(ctx, o.GroupID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o, group.Name), nil
}

// ListAll retrieves every order with its group name and line-item count
func (s *Service) ListAll(ctx context.Context) ([]OrderListResponse, error) {
	rows, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	groupNames, err := s.groupNames(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderListResponse, len(rows))
	for i, row := range rows {
		responses[i] = OrderListResponse{
			ID:              row.ID,
			GroupID:         row.GroupID,
			GroupName:       groupNames[row.GroupID],
			PaymentMethodID: row.PaymentMethodID,
			OrderDate:       row.OrderDate,
			Paid:            row.Paid,
			Total:           row.Total,
			ItemsCount:      row.ItemsCount,
		}
	}
	return responses, nil
}

// SearchByGroup retrieves a page of a group's orders with profit and summed
// item quantity. A nil group lists orders across all groups.
func (s *Service) SearchByGroup(ctx context.Context, groupID *uuid.UUID, page, pageSize int) (shared.Paginated[GroupOrderResponse], error) {
	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}

	if groupID != nil {
		if _, err := s.findGroup(ctx, *groupID); err != nil {
			return shared.Paginated[GroupOrderResponse]{}, err
		}
	}

	orders, total, err := s.orderRepo.FindByGroup(ctx, groupID, filter)
	if err != nil {
		return shared.Paginated[GroupOrderResponse]{}, err
	}

	responses := make([]GroupOrderResponse, len(orders))
	for i := range orders {
		o := &orders[i]
		responses[i] = GroupOrderResponse{
			ID:            o.ID,
			GroupID:       o.GroupID,
			OrderDate:     o.OrderDate,
			Paid:          o.Paid,
			Total:         o.Total,
			Profit:        o.Profit,
			ItemsQuantity: o.ItemsQuantity(),
		}
	}
	return shared.NewPaginated(responses, total, filter.Page, filter.PageSize), nil
}

// Delete removes an order and its line items
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

// buildItems turns the request items into line-item rows. Items carrying an
// identifier found in current keep it so reconciliation can match them
// against stored rows; identity-less items, and items whose identifier does
// not belong to this order, get a fresh one. Every product reference must
// exist.
func (s *Service) buildItems(ctx context.Context, reqs []ItemRequest, orderID *uuid.UUID, current map[uuid.UUID]struct{}) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(reqs))
	for _, req := range reqs {
		exists, err := s.productRepo.ExistsByID(ctx, req.ProductID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.WrapDomainError("INVALID_PRODUCT", "Product not found", shared.ErrNotFound)
		}

		item, err := order.NewLineItem(req.ProductID, req.Name, req.Price, req.Cost, req.Code, req.Profit, req.Quantity)
		if err != nil {
			return nil, err
		}
		if req.ID != nil {
			if _, ok := current[*req.ID]; ok {
				item.ID = *req.ID
			}
		}
		if orderID != nil {
			item.OrderID = *orderID
		}
		items = append(items, *item)
	}
	return items, nil
}

func (s *Service) findGroup(ctx context.Context, id uuid.UUID) (*partner.Group, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.WrapDomainError("INVALID_GROUP", "Group not found", err)
		}
		return nil, err
	}
	return group, nil
}

func (s *Service) findMethod(ctx context.Context, id uuid.UUID) (*payment.Method, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.WrapDomainError("INVALID_PAYMENT_METHOD", "Payment method not found", err)
		}
		return nil, err
	}
	return method, nil
}

func (s *Service) groupNames(ctx context.Context) (map[uuid.UUID]string, error) {
	groups, err := s.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(groups))
	for _, g := range groups {
		names[g.ID] = g.Name
	}
	return names, nil
}
