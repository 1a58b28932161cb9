package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auditapp "github.com/celly/backoffice/internal/application/audit"
	businessapp "github.com/celly/backoffice/internal/application/business"
	catalogapp "github.com/celly/backoffice/internal/application/catalog"
	identityapp "github.com/celly/backoffice/internal/application/identity"
	orderapp "github.com/celly/backoffice/internal/application/order"
	partnerapp "github.com/celly/backoffice/internal/application/partner"
	paymentapp "github.com/celly/backoffice/internal/application/payment"
	reportapp "github.com/celly/backoffice/internal/application/report"
	"github.com/celly/backoffice/internal/infrastructure/auth"
	"github.com/celly/backoffice/internal/infrastructure/config"
	"github.com/celly/backoffice/internal/infrastructure/logger"
	"github.com/celly/backoffice/internal/infrastructure/persistence"
	"github.com/celly/backoffice/internal/interfaces/http/handler"
	"github.com/celly/backoffice/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting backoffice",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Session token revocation backend. Redis when reachable, otherwise an
	// in-process fallback that only holds for a single instance.
	var blacklist auth.TokenBlacklist
	if redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		log.Info("Redis connected", zap.String("addr", cfg.Redis.Addr()))
		blacklist = redisBlacklist
	}

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	collectionRepo := persistence.NewGormCollectionRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	groupRepo := persistence.NewGormGroupRepository(db.DB)
	methodRepo := persistence.NewGormMethodRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	errorLogRepo := persistence.NewGormErrorLogRepository(db.DB)
	businessRepo := persistence.NewGormBusinessRepository(db.DB)

	// Application services
	sessions := auth.NewSessionService(cfg.Session)
	authService := identityapp.NewAuthService(userRepo, sessions, blacklist)
	recorder := auditapp.NewRecorder(errorLogRepo, log)

	categoryService := catalogapp.NewCategoryService(categoryRepo)
	collectionService := catalogapp.NewCollectionService(collectionRepo)
	productService := catalogapp.NewProductService(productRepo, categoryRepo)
	groupService := partnerapp.NewGroupService(groupRepo)
	methodService := paymentapp.NewMethodService(methodRepo)
	orderService := orderapp.NewService(orderRepo, groupRepo, methodRepo, productRepo)
	reportService := reportapp.NewService(orderRepo, groupRepo, methodRepo)
	profileService := businessapp.NewProfileService(businessRepo)

	// HTTP handlers
	base := handler.NewBaseHandler(recorder)
	handlers := router.Handlers{
		Auth:          handler.NewAuthHandler(base, authService, cfg.Session.CookieName, cfg.Session.Expiration),
		Category:      handler.NewCategoryHandler(base, categoryService),
		Collection:    handler.NewCollectionHandler(base, collectionService),
		Product:       handler.NewProductHandler(base, productService),
		Group:         handler.NewGroupHandler(base, groupService),
		PaymentMethod: handler.NewPaymentMethodHandler(base, methodService),
		Order:         handler.NewOrderHandler(base, orderService),
		Report:        handler.NewReportHandler(base, reportService),
		Business:      handler.NewBusinessHandler(base, profileService),
		ErrorLog:      handler.NewErrorLogHandler(base, recorder),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	router.Setup(engine, router.Config{
		AuthService:       authService,
		SessionCookieName: cfg.Session.CookieName,
		CORSAllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		Logger:            log,
		HealthCheck:       db.Ping,
	}, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shut down", zap.Error(err))
	}

	log.Info("Server stopped")
}
