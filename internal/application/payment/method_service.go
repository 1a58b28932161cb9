// Package payment contains application services for payment methods.
package payment

import (
	"context"
	"time"

	"github.com/celly/backoffice/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateMethodRequest represents a request to create a payment method
type CreateMethodRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=100"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// UpdateMethodRequest represents a partial payment method update
type UpdateMethodRequest struct {
	Name    *string          `json:"name" binding:"omitempty,min=1,max=100"`
	TaxRate *decimal.Decimal `json:"tax_rate"`
	Enabled *bool            `json:"enabled"`
}

// MethodResponse represents a payment method in API responses
type MethodResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Enabled   bool            `json:"enabled"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToMethodResponse converts a domain payment method to a response DTO
func ToMethodResponse(m *payment.Method) *MethodResponse {
	return &MethodResponse{
		ID:        m.ID,
		Name:      m.Name,
		TaxRate:   m.TaxRate,
		Enabled:   m.Enabled,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// MethodService handles payment method business operations
type MethodService struct {
	methodRepo payment.MethodRepository
}

// NewMethodService creates a new MethodService
func NewMethodService(methodRepo payment.MethodRepository) *MethodService {
	return &MethodService{methodRepo: methodRepo}
}

// Create creates a new enabled payment method
func (s *MethodService) Create(ctx context.Context, req CreateMethodRequest) (*MethodResponse, error) {
	method, err := payment.NewMethod(req.Name, req.TaxRate)
	if err != nil {
		return nil, err
	}
	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}
	return ToMethodResponse(method), nil
}

// GetByID retrieves a payment method by ID
func (s *MethodService) GetByID(ctx context.Context, id uuid.UUID) (*MethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMethodResponse(method), nil
}

// List retrieves every payment method, enabled or not
func (s *MethodService) List(ctx context.Context) ([]MethodResponse, error) {
	methods, err := s.methodRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toMethodResponses(methods), nil
}

// ListEnabled retrieves payment methods accepted at the counter
func (s *MethodService) ListEnabled(ctx context.Context) ([]MethodResponse, error) {
	methods, err := s.methodRepo.FindEnabled(ctx)
	if err != nil {
		return nil, err
	}
	return toMethodResponses(methods), nil
}

// Update applies a partial update to a payment method
func (s *MethodService) Update(ctx context.Context, id uuid.UUID, req UpdateMethodRequest) (*MethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := payment.MethodPatch{
		Name:    req.Name,
		TaxRate: req.TaxRate,
		Enabled: req.Enabled,
	}
	if err := method.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}
	return ToMethodResponse(method), nil
}

// Disable turns a payment method off without deleting it. Orders already
// paid through the method keep their reference.
func (s *MethodService) Disable(ctx context.Context, id uuid.UUID) (*MethodResponse, error) {
	method, err := s.methodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	method.Disable()

	if err := s.methodRepo.Save(ctx, method); err != nil {
		return nil, err
	}
	return ToMethodResponse(method), nil
}

func toMethodResponses(methods []payment.Method) []MethodResponse {
	responses := make([]MethodResponse, len(methods))
	for i := range methods {
		responses[i] = *ToMethodResponse(&methods[i])
	}
	return responses
}
