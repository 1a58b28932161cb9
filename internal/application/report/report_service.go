// Package report aggregates paid orders into sales figures.
package report

import (
	"context"
	"time"

	"github.com/celly/backoffice/internal/domain/order"
	"github.com/celly/backoffice/internal/domain/partner"
	"github.com/celly/backoffice/internal/domain/payment"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request narrows the report window. Only paid orders inside [From, To] are
// considered; empty ID lists mean "all".
type Request struct {
	From             time.Time   `json:"from" binding:"required"`
	To               time.Time   `json:"to" binding:"required"`
	GroupIDs         []uuid.UUID `json:"group_ids"`
	PaymentMethodIDs []uuid.UUID `json:"payment_method_ids"`
	Page             int         `json:"page"`
	PageSize         int         `json:"page_size"`
}

// OrderRow is one order inside the report page
type OrderRow struct {
	ID                uuid.UUID       `json:"id"`
	GroupName         string          `json:"group_name"`
	PaymentMethodName string          `json:"payment_method_name"`
	OrderDate         time.Time       `json:"order_date"`
	Paid              bool            `json:"paid"`
	Total             decimal.Decimal `json:"total"`
	Profit            decimal.Decimal `json:"profit"`
	ProductsCount     int64           `json:"products_count"`
}

// Response carries the aggregates and one page of matching orders
type Response struct {
	OrdersCount       int             `json:"orders_count"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTaxes        decimal.Decimal `json:"total_taxes"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	TotalProductsSold int64           `json:"total_products_sold"`
	Orders            []OrderRow      `json:"orders"`
	NextPage          bool            `json:"next_page"`
}

// Service computes sales reports over paid orders
type Service struct {
	orderRepo  order.Repository
	groupRepo  partner.GroupRepository
	methodRepo payment.MethodRepository
}

// NewService creates a new report Service
func NewService(orderRepo order.Repository, groupRepo partner.GroupRepository, methodRepo payment.MethodRepository) *Service {
	return &Service{
		orderRepo:  orderRepo,
		groupRepo:  groupRepo,
		methodRepo: methodRepo,
	}
}

// GetReports aggregates the paid orders inside the window. Taxes are flat
// per order, so total_taxes is the sum of each order's total net of its
// payment method's tax rate.
func (s *Service) GetReports(ctx context.Context, req Request) (*Response, error) {
	if req.To.Before(req.From) {
		return nil, shared.NewDomainError("INVALID_RANGE", "Report end date precedes start date")
	}

	rows, err := s.orderRepo.FindPaidInRange(ctx, order.ReportFilter{
		From:             req.From,
		To:               req.To,
		GroupIDs:         req.GroupIDs,
		PaymentMethodIDs: req.PaymentMethodIDs,
	})
	if err != nil {
		return nil, err
	}

	groupNames, err := s.groupNames(ctx)
	if err != nil {
		return nil, err
	}
	methods, err := s.methodsByID(ctx)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		OrdersCount: len(rows),
		TotalSales:  decimal.Zero,
		TotalTaxes:  decimal.Zero,
		TotalProfit: decimal.Zero,
	}
	for _, row := range rows {
		resp.TotalSales = resp.TotalSales.Add(row.Total)
		resp.TotalProfit = resp.TotalProfit.Add(row.Profit)
		resp.TotalProductsSold += row.ItemsCount
		if m, ok := methods[row.PaymentMethodID]; ok {
			resp.TotalTaxes = resp.TotalTaxes.Add(row.Total.Sub(m.TaxRate))
		}
	}

	page, pageSize := req.Page, req.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	start := (page - 1) * pageSize
	if start > len(rows) {
		start = len(rows)
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	resp.NextPage = end < len(rows)

	resp.Orders = make([]OrderRow, 0, end-start)
	for _, row := range rows[start:end] {
		methodName := ""
		if m, ok := methods[row.PaymentMethodID]; ok {
			methodName = m.Name
		}
		resp.Orders = append(resp.Orders, OrderRow{
			ID:                row.ID,
			GroupName:         groupNames[row.GroupID],
			PaymentMethodName: methodName,
			OrderDate:         row.OrderDate,
			Paid:              row.Paid,
			Total:             row.Total,
			Profit:            row.Profit,
			ProductsCount:     row.ItemsCount,
		})
	}

	return resp, nil
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

func (s *Service) methodsByID(ctx context.Context) (map[uuid.UUID]payment.Method, error) {
	methods, err := s.methodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]payment.Method, len(methods))
	for _, m := range methods {
		byID[m.ID] = m
	}
	return byID, nil
}
