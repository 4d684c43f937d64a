package leave

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
	own := r.Group("/employee/leave-requests")
	own.Use(auth)
	own.Use(middleware.ContextLogger(logger))
	{
		own.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.Idempotency(rdb),
			h.Create,
		)
		own.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read_own"),
			h.ListForEmployee,
		)
	}

	team := r.Group("/supervisor/leave-requests")
	team.Use(auth)
	team.Use(middleware.ContextLogger(logger))
	{
		team.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "leave", "read_team"),
			h.ListForSupervisor,
		)
		team.PUT("/:id",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "leave", "decide"),
			h.Decide,
		)
	}
}
