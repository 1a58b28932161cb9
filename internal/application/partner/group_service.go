// Package partner contains application services for customer groups.
package partner

import (
	"context"
	"time"

	"github.com/celly/backoffice/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateGroupRequest represents a request to create a customer group
type CreateGroupRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=2000"`
	Phone       string `json:"phone" binding:"max=30"`
}

// UpdateGroupRequest represents a partial group update
type UpdateGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Phone       *string `json:"phone" binding:"omitempty,max=30"`
}

// GroupResponse represents a customer group in API responses
type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GroupDetailResponse represents a group together with its order count
type GroupDetailResponse struct {
	GroupResponse
	OrdersCount int64 `json:"orders_count"`
}

// ToGroupResponse converts a domain group to a response DTO
func ToGroupResponse(g *partner.Group) *GroupResponse {
	return &GroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Phone:       g.Phone,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// GroupService handles customer group business operations
type GroupService struct {
	groupRepo partner.GroupRepository
}

// NewGroupService creates a new GroupService
func NewGroupService(groupRepo partner.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// Create creates a new customer group. The phone number is normalized to
// digits; a blank phone is stored as the fallback marker.
func (s *GroupService) Create(ctx context.Context, req CreateGroupRequest) (*GroupResponse, error) {
	group, err := partner.NewGroup(req.Name, req.Description, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}
	return ToGroupResponse(group), nil
}

// GetByID retrieves a group with its order count
func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*GroupDetailResponse, error) {
	row, err := s.groupRepo.FindByIDWithOrderCount(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GroupDetailResponse{
		GroupResponse: *ToGroupResponse(&row.Group),
		OrdersCount:   row.OrdersCount,
	}, nil
}

// List retrieves all customer groups
func (s *GroupService) List(ctx context.Context) ([]GroupResponse, error) {
	groups, err := s.groupRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toGroupResponses(groups), nil
}

// Search retrieves groups whose name contains the query
func (s *GroupService) Search(ctx context.Context, query string) ([]GroupResponse, error) {
	groups, err := s.groupRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return toGroupResponses(groups), nil
}

// Update applies a partial update to a group
func (s *GroupService) Update(ctx context.Context, id uuid.UUID, req UpdateGroupRequest) (*GroupResponse, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := partner.GroupPatch{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
	}
	if err := group.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.groupRepo.Save(ctx, group); err != nil {
		return nil, err
	}
	return ToGroupResponse(group), nil
}

// Delete removes a group
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.groupRepo.Delete(ctx, id)
}

func toGroupResponses(groups []partner.Group) []GroupResponse {
	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *ToGroupResponse(&groups[i])
	}
	return responses
}
