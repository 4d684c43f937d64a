package user

import (
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	auth gin.HandlerFunc,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	public := r.Group("/auth")
	public.Use(middleware.ContextLogger(logger))
	{
		public.GET("/setup-account",
			middleware.RateLimitByIP(1, 5),
			handler.InspectSetupToken,
		)
		public.POST("/setup-password",
			middleware.RateLimitByIP(0.2, 3),
			handler.SetupPassword,
		)
	}

	owner := r.Group("/owner/supervisors")
	owner.Use(auth)
	owner.Use(middleware.ContextLogger(logger))
	{
		owner.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "supervisor", "create"),
			handler.CreateSupervisor,
		)
		owner.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "supervisor", "read"),
			handler.ListSupervisors,
		)
	}

	supervisor := r.Group("/supervisor/employees")
	supervisor.Use(auth)
	supervisor.Use(middleware.ContextLogger(logger))
	{
		supervisor.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.CreateEmployee,
		)
		supervisor.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.ListEmployees,
		)
	}

	employee := r.Group("/employee/profile")
	employee.Use(auth)
	employee.Use(middleware.ContextLogger(logger))
	{
		employee.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "profile", "read"),
			handler.GetProfile,
		)
	}
}
