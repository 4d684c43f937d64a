package otp

import (
	"time"

	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	auth := r.Group("/auth")
	auth.Use(middleware.ContextLogger(logger))
	{
		auth.POST("/request-otp",
			middleware.RedisRateLimit(rdb, "otp", 10, time.Minute),
			handler.Request,
		)
		auth.POST("/verify-otp",
			middleware.RateLimitByIP(1, 5),
			handler.Verify,
		)
	}
}
