package handler

import (
	"net/http"
	"time"

	"github.com/celly/backoffice/internal/application/identity"
	"github.com/celly/backoffice/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and session endpoints
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	cookieName  string
	cookieTTL   time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(base BaseHandler, authService *identity.AuthService, cookieName string, cookieTTL time.Duration) *AuthHandler {
	if cookieName == "" {
		cookieName = middleware.DefaultCookieName
	}
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
	}
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Success      201 {object} dto.Response{data=identity.SessionResponse}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req identity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	session, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	h.Created(c, session)
}

// Login godoc
// @Summary      Sign in with email and password
// @Tags         auth
// @Success      200 {object} dto.Response{data=identity.SessionResponse}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, session.Token)
	h.Success(c, session)
}

// Session godoc
// @Summary      Return the signed-in user
// @Tags         auth
// @Success      200 {object} dto.Response{data=identity.UserResponse}
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		h.Unauthorized(c, "Not signed in")
		return
	}
	h.Success(c, user)
}

// UpdatePassword godoc
// @Summary      Change the signed-in user's password
// @Tags         auth
// @Success      204
// @Router       /auth/password [put]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		h.Unauthorized(c, "Not signed in")
		return
	}

	var req identity.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), userID, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Logout godoc
// @Summary      Revoke the current session
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := h.extractToken(c)
	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.clearSessionCookie(c)
	h.NoContent(c)
}

func (h *AuthHandler) extractToken(c *gin.Context) string {
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		return token
	}
	return c.GetHeader(middleware.DefaultHeaderName)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.cookieTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, token, maxAge, "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
}
