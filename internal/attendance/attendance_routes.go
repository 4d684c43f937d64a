package attendance

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	kiosk := r.Group("/supervisor/attendance")
	kiosk.Use(auth)
	kiosk.Use(middleware.ContextLogger(logger))
	{
		kiosk.POST("/clock-in",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "clock"),
			middleware.Idempotency(rdb),
			h.ClockIn,
		)
		kiosk.POST("/clock-out",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "clock"),
			middleware.Idempotency(rdb),
			h.ClockOut,
		)
		kiosk.GET("/today",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read_team"),
			h.Today,
		)
	}

	own := r.Group("/employee/attendance")
	own.Use(auth)
	own.Use(middleware.ContextLogger(logger))
	{
		own.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read_own"),
			h.History,
		)
	}
}
