package router

import (
	"net/http"

	"github.com/celly/backoffice/internal/application/identity"
	"github.com/celly/backoffice/internal/infrastructure/logger"
	"github.com/celly/backoffice/internal/interfaces/http/handler"
	"github.com/celly/backoffice/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Config holds router configuration
type Config struct {
	AuthService       *identity.AuthService
	SessionCookieName string
	CORSAllowOrigins  []string
	Logger            *zap.Logger
	// HealthCheck reports backend readiness; nil means always healthy
	HealthCheck func() error
}

// Handlers groups every API handler the router mounts
type Handlers struct {
	Auth          *handler.AuthHandler
	Category      *handler.CategoryHandler
	Collection    *handler.CollectionHandler
	Product       *handler.ProductHandler
	Group         *handler.GroupHandler
	PaymentMethod *handler.PaymentMethodHandler
	Order         *handler.OrderHandler
	Report        *handler.ReportHandler
	Business      *handler.BusinessHandler
	ErrorLog      *handler.ErrorLogHandler
}

// Setup mounts middleware and all API routes on the engine. Storefront
// listings and auth entry points are public; everything else sits behind
// session authentication.
func Setup(engine *gin.Engine, cfg Config, h Handlers) {
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(logger.Recovery(cfg.Logger))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.GET("/health", func(c *gin.Context) {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	storefront := api.Group("/storefront")
	storefront.GET("/categories", h.Category.ListPublic)
	storefront.GET("/collections", h.Collection.ListPublic)
	storefront.GET("/products", h.Product.ListAvailable)

	// Protected routes
	authed := api.Group("")
	authed.Use(middleware.SessionAuthWithConfig(middleware.SessionConfig{
		AuthService: cfg.AuthService,
		CookieName:  cfg.SessionCookieName,
		Logger:      cfg.Logger,
	}))

	authed.GET("/auth/session", h.Auth.Session)
	authed.PUT("/auth/password", h.Auth.UpdatePassword)
	authed.POST("/auth/logout", h.Auth.Logout)

	authed.POST("/categories", h.Category.Create)
	authed.GET("/categories", h.Category.List)
	authed.GET("/categories/:id", h.Category.GetByID)
	authed.GET("/categories/:id/products", h.Product.ListByCategory)
	authed.PUT("/categories/:id", h.Category.Update)
	authed.DELETE("/categories/:id", h.Category.Delete)

	authed.POST("/collections", h.Collection.Create)
	authed.GET("/collections", h.Collection.List)
	authed.GET("/collections/:id", h.Collection.GetByID)
	authed.GET("/collections/:id/products", h.Product.ListByCollection)
	authed.PUT("/collections/:id", h.Collection.Update)
	authed.DELETE("/collections/:id", h.Collection.Delete)

	authed.POST("/products", h.Product.Create)
	authed.GET("/products", h.Product.List)
	authed.GET("/products/:id", h.Product.GetByID)
	authed.PUT("/products/:id", h.Product.Update)
	authed.DELETE("/products/:id", h.Product.Delete)

	authed.POST("/groups", h.Group.Create)
	authed.GET("/groups", h.Group.List)
	authed.GET("/groups/:id", h.Group.GetByID)
	authed.PUT("/groups/:id", h.Group.Update)
	authed.DELETE("/groups/:id", h.Group.Delete)

	authed.POST("/payment-methods", h.PaymentMethod.Create)
	authed.GET("/payment-methods", h.PaymentMethod.List)
	authed.GET("/payment-methods/:id", h.PaymentMethod.GetByID)
	authed.PUT("/payment-methods/:id", h.PaymentMethod.Update)
	authed.DELETE("/payment-methods/:id", h.PaymentMethod.Disable)

	authed.POST("/orders", h.Order.Create)
	authed.GET("/orders", h.Order.List)
	authed.GET("/orders/search", h.Order.SearchByGroup)
	authed.GET("/orders/:id", h.Order.GetByID)
	authed.PUT("/orders/:id", h.Order.Edit)
	authed.DELETE("/orders/:id", h.Order.Delete)

	authed.POST("/reports", h.Report.GetReports)

	authed.GET("/business", h.Business.Get)
	authed.PUT("/business", h.Business.Update)

	authed.GET("/error-logs", h.ErrorLog.List)
}
