// Package business manages the shop's contact card.
package business

import (
	"context"
	"errors"

	"github.com/celly/backoffice/internal/domain/business"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/google/uuid"
)

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone" binding:"omitempty,max=30"`
	Instagram *string `json:"instagram" binding:"omitempty,max=100"`
	Whatsapp  *string `json:"whatsapp" binding:"omitempty,max=30"`
}

// ProfileResponse represents the shop profile in API responses
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Instagram string    `json:"instagram"`
	Whatsapp  string    `json:"whatsapp"`
}

// ToProfileResponse converts a domain profile to a response DTO
func ToProfileResponse(p *business.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Phone:     p.Phone,
		Instagram: p.Instagram,
		Whatsapp:  p.Whatsapp,
	}
}

// ProfileService manages the singleton shop profile
type ProfileService struct {
	profileRepo business.Repository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo business.Repository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the shop profile, creating a placeholder row on first access
func (s *ProfileService) Get(ctx context.Context) (*ProfileResponse, error) {
	profile, err := s.profileRepo.Find(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		profile = business.Placeholder()
		if err := s.profileRepo.Save(ctx, profile); err != nil {
			return nil, err
		}
	}
	return ToProfileResponse(profile), nil
}

// Update applies a partial update to the profile, creating the placeholder
// row first when it does not exist yet
func (s *ProfileService) Update(ctx context.Context, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.Find(ctx)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		profile = business.Placeholder()
	}

	patch := business.ProfilePatch{
		Name:      req.Name,
		Phone:     req.Phone,
		Instagram: req.Instagram,
		Whatsapp:  req.Whatsapp,
	}
	if err := profile.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return ToProfileResponse(profile), nil
}
