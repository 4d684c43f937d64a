package organization

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, rbacService middleware.RBACService) {
	// Rate: 1 registration per 10 seconds per IP, burst 1
	r.POST("/auth/register-organization",
		middleware.RateLimitByIP(0.1, 1),
		handler.Register,
	)

	r.GET("/owner/organization",
		auth,
		middleware.RateLimitByUser(2, 10),
		middleware.RBACAuthorize(rbacService, "organization", "read"),
		handler.GetMine,
	)
}
