// Package identity implements login, session and account management for the
// back-office user.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/celly/backoffice/internal/domain/identity"
	"github.com/celly/backoffice/internal/domain/shared"
	"github.com/celly/backoffice/internal/infrastructure/auth"
	"github.com/google/uuid"
)

// RegisterRequest represents a request to create a back-office account
type RegisterRequest struct {
	Name            string `json:"name" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest represents a password change for the signed-in user
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// SessionResponse carries a freshly issued session token
type SessionResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// ToUserResponse converts a domain user to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// AuthService handles registration, login and sessions
type AuthService struct {
	userRepo  identity.Repository
	sessions  *auth.SessionService
	blacklist auth.TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.Repository, sessions *auth.SessionService, blacklist auth.TokenBlacklist) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		sessions:  sessions,
		blacklist: blacklist,
	}
}

// Register creates a new account and signs it in. The password must be
// confirmed by typing it twice.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*SessionResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, shared.NewDomainError("INVALID_PASSWORD_CONFIRMATION", "Password confirmation does not match")
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(req.Name, req.Email, hash)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return s.issueSession(user)
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords return the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*SessionResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}
	return s.issueSession(user)
}

// Session resolves a token to the signed-in user. Revoked, expired and
// malformed tokens all fail with ErrUnauthorized.
func (s *AuthService) Session(ctx context.Context, token string) (*UserResponse, error) {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	revoked, err := s.blacklist.IsRevoked(ctx, claims.RegisteredClaims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, shared.ErrUnauthorized
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// UpdatePassword changes the signed-in user's password after re-checking the
// current one
func (s *AuthService) UpdatePassword(ctx context.Context, userID uuid.UUID, req UpdatePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.ComparePassword(user.PasswordHash, req.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return shared.ErrUnauthorized
		}
		return err
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return s.userRepo.Save(ctx, user)
}

// Logout revokes the session token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.sessions.Validate(token)
	if err != nil {
		// Already unusable; nothing to revoke
		return nil
	}
	return s.blacklist.Revoke(ctx, claims.RegisteredClaims.ID, claims.GetRemainingTTL())
}

func (s *AuthService) issueSession(user *identity.User) (*SessionResponse, error) {
	token, expiresAt, err := s.sessions.Issue(identity.Identity{ID: user.ID, Name: user.Name})
	if err != nil {
		return nil, err
	}
	return &SessionResponse{
		User:      ToUserResponse(user),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
