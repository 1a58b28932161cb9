package middleware

import (
	"net/http"

	"github.com/celly/backoffice/internal/application/identity"
	"github.com/celly/backoffice/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session context keys
const (
	SessionUserKey     = "session_user"
	SessionUserIDKey   = "session_user_id"
	SessionUserNameKey = "session_user_name"

	// DefaultCookieName is the cookie the session token travels in
	DefaultCookieName = "celly_session"
	// DefaultHeaderName is the fallback for clients that cannot send cookies
	DefaultHeaderName = "X-API-Key"
)

// SessionConfig holds configuration for session middleware
type SessionConfig struct {
	// AuthService resolves tokens to signed-in users
	AuthService *identity.AuthService
	// CookieName overrides the session cookie name
	CookieName string
	// HeaderName overrides the fallback token header
	HeaderName string
	// Logger for middleware logging
	Logger *zap.Logger
}

// SessionAuth creates session authentication middleware with default
// cookie and header names
func SessionAuth(authService *identity.AuthService) gin.HandlerFunc {
	return SessionAuthWithConfig(SessionConfig{AuthService: authService})
}

// SessionAuthWithConfig creates session authentication middleware. The
// token is read from the session cookie first, then from the API key
// header. Requests without a valid, unrevoked token get a 401.
func SessionAuthWithConfig(cfg SessionConfig) gin.HandlerFunc {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = DefaultHeaderName
	}

	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			token = c.GetHeader(headerName)
		}

		if token == "" {
			abortUnauthorized(c, "Missing session token")
			return
		}

		user, err := cfg.AuthService.Session(c.Request.Context(), token)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Debug("Session validation failed",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
			}
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(SessionUserKey, user)
		c.Set(SessionUserIDKey, user.ID)
		c.Set(SessionUserNameKey, user.Name)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID, _ := c.Get("request_id")
	requestIDStr, _ := requestID.(string)
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, message, requestIDStr))
}

// CurrentUser returns the signed-in user stored by the session middleware
func CurrentUser(c *gin.Context) (*identity.UserResponse, bool) {
	v, ok := c.Get(SessionUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*identity.UserResponse)
	return user, ok
}

// CurrentUserID returns the signed-in user's ID
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(SessionUserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
