package auth

import (
	"time"

	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rdb *redis.Client) {
	g := r.Group("/auth")
	{
		g.POST("/login", middleware.RedisRateLimit(rdb, "login", 10, time.Minute), handler.Login)
		g.GET("/me", auth, middleware.RateLimitByUser(2, 5), handler.Me)
		g.POST("/logout", auth, middleware.RateLimitByUser(2, 5), handler.Logout)
	}
}
