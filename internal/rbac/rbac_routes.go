package rbac

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	r.GET("/auth/permissions", auth, middleware.RateLimitByUser(2, 5), handler.MyPermissions)
}
