package otp

import (
	"net/http"
	"strings"

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
	l := zap.L().Named("otp.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("otp.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("otp request failed",
		zap.String("path", c.FullPath()),
		zap.String("client_ip", c.ClientIP()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// deviceIP prefers the address the kiosk reports and falls back to the
// connection's client IP.
func deviceIP(c *gin.Context, reported string) string {
	if ip := strings.TrimSpace(reported); ip != "" {
		return ip
	}
	return c.ClientIP()
}

func (h *Handler) Request(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	req.DeviceIP = deviceIP(c, req.DeviceIP)

	resp, err := h.service.Request(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	req.DeviceIP = deviceIP(c, req.DeviceIP)

	resp, err := h.service.Verify(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
