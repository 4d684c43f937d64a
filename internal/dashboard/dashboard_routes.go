package dashboard

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService, logger *zap.Logger) {
	r.GET("/owner/dashboard",
		auth,
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(1, 5),
		middleware.RBACAuthorize(rbacService, "dashboard", "read_org"),
		h.Owner,
	)
	r.GET("/employee/dashboard",
		auth,
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(1, 5),
		middleware.RBACAuthorize(rbacService, "dashboard", "read_own"),
		h.Employee,
	)
}
