package app

import (
	"database/sql"
	"net/http"

	"go-attendance/internal/attendance"
	"go-attendance/internal/auth"
	"go-attendance/internal/bootstrap"
	"go-attendance/internal/config"
	"go-attendance/internal/dashboard"
	"go-attendance/internal/leave"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/middleware"
	"go-attendance/internal/notification"
	"go-attendance/internal/organization"
	"go-attendance/internal/otp"
	"go-attendance/internal/rbac"
	"go-attendance/internal/shared/clock"
	"go-attendance/internal/shared/response"
	"go-attendance/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	clk := clock.System()

	// --- Repositories ---
	organizationRepo := organization.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	otpRepo := otp.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Core ---
	rbacService, err := rbac.NewDefaultService(logger)
	if err != nil {
		return err
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, clk)
	notifier := notification.NewOutboxNotifier(outboxRepo)
	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	lateness, err := attendance.ParseLatenessPolicy(cfg.LateAfter)
	if err != nil {
		return err
	}

	// --- Services ---
	organizationService := organization.NewService(db, organizationRepo, logger)
	authService := auth.NewService(authRepo, tokens, logger)
	userService := user.NewService(db, userRepo, notifier, rdb, cfg.BaseURL, logger)
	otpService := otp.NewService(db, otpRepo, notifier, clk, auditLogger, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, otpService, clk, lateness, logger)
	newLeaveService := leave.NewService
	if cfg.LeaveRejectOverlap {
		newLeaveService = leave.NewServiceWithOverlapCheck
	}
	leaveService := newLeaveService(db, leaveRepo, notifier, clk, logger)
	dashboardService := dashboard.NewService(dashboardRepo, clk, logger)

	// --- Handlers ---
	organizationHandler := organization.NewHandler(organizationService, logger)
	authHandler := auth.NewHandler(authService, cfg.IsProduction(), logger)
	userHandler := user.NewHandler(userService, logger)
	otpHandler := otp.NewHandler(otpService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	authMiddleware := middleware.AuthMiddleware(tokens)

	router.GET("/health", healthHandler(db, rdb))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		organization.RegisterRoutes(api, organizationHandler, authMiddleware, rbacService)
		auth.RegisterRoutes(api, authHandler, authMiddleware, rdb)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
		otp.RegisterRoutes(api, otpHandler, rdb, logger)
		user.RegisterRoutes(api, userHandler, authMiddleware, rbacService, logger)
		attendance.RegisterRoutes(api, attendanceHandler, authMiddleware, rbacService, rdb, logger)
		leave.RegisterRoutes(api, leaveHandler, authMiddleware, rbacService, rdb, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, authMiddleware, rbacService, logger)
	}

	return nil
}

func healthHandler(db *sql.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{"database": "up", "redis": "up"}
		code := http.StatusOK
		if err := db.PingContext(c.Request.Context()); err != nil {
			status["database"] = "down"
			code = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(c.Request.Context()).Err(); err != nil {
			status["redis"] = "down"
			code = http.StatusServiceUnavailable
		}
		response.Success(c, code, status, nil)
	}
}
