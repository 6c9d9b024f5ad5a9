package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fasalmbt/complainto/internal/config"
	httpx "github.com/fasalmbt/complainto/internal/http"
	"github.com/fasalmbt/complainto/internal/http/handlers"
	"github.com/fasalmbt/complainto/internal/http/middleware"
	"github.com/fasalmbt/complainto/internal/infrastructure/audit"
	"github.com/fasalmbt/complainto/internal/infrastructure/auth"
	"github.com/fasalmbt/complainto/internal/infrastructure/database"
	"github.com/fasalmbt/complainto/internal/infrastructure/notifications"
	"github.com/fasalmbt/complainto/internal/infrastructure/repositories"
	"github.com/fasalmbt/complainto/internal/services"
)

// Default throttle for abuse-prone endpoints.
const (
	rateLimitRequests = 10
	rateLimitWindow   = time.Minute
)

func Run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(gdb, cfg.CasbinModelPath)
	if err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		rdb = nil
	}

	// Infrastructure services
	auditLog := audit.NewZapAuditLogger(logger)
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	notifier := notifications.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, logger)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	resetRepo := repositories.NewPasswordResetRepository(gdb)
	otpRepo := repositories.NewEmailOTPRepository(gdb)
	complaintRepo := repositories.NewComplaintRepository(gdb)

	// Services
	otpSvc := services.NewOTPService(otpRepo, notifier, auditLog, cfg.OTPTTL)
	resetSvc := services.NewPasswordResetService(userRepo, resetRepo, passwordSvc, notifier, auditLog, cfg.BaseURL, cfg.ResetTokenTTL)
	authSvc := services.NewAuthService(userRepo, complaintRepo, passwordSvc, tokenSvc, otpSvc, auditLog, cfg.AccessTTL)
	complaintSvc := services.NewComplaintService(complaintRepo, auditLog)
	policySvc := services.NewPolicyService(cas.E)

	// Handlers
	authH := handlers.NewAuthHandlers(authSvc, otpSvc, resetSvc)
	accountH := handlers.NewAccountHandlers(authSvc)
	complaintH := handlers.NewComplaintHandlers(complaintSvc)

	// Middleware
	authMW := middleware.NewAuthMW(authSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)
	rateMW := middleware.NewRateLimitMW(rdb, rateLimitRequests, rateLimitWindow)

	r := httpx.BuildRouter(authH, accountH, complaintH, authMW, casbinMW, rateMW)

	seeded, err := services.EnsureDefaultPolicies(policySvc)
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("casbin: seeded default policies")
	}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
