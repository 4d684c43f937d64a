package rbac

import (
	"net/http"

	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// MyPermissions lists what the caller's role may do, for clients that hide
// actions the API would refuse anyway.
func (h *Handler) MyPermissions(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if !identity.Authenticated() {
		response.AbortWithError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.PermissionsFor(identity.Role)
	if err != nil {
		h.logger.Error("list permissions failed", zap.String("role", identity.Role.String()), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        identity.Role.String(),
		Permissions: perms,
	}, nil)
}
