package otp_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attendance/internal/otp"
	otperrors "go-attendance/internal/otp/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeOTPService struct {
	RequestFn func(ctx context.Context, req otp.RequestOTPRequest) (otp.RequestOTPResponse, error)
	VerifyFn  func(ctx context.Context, req otp.VerifyOTPRequest) (otp.VerifyOTPResponse, error)
}

func (f *fakeOTPService) Request(ctx context.Context, req otp.RequestOTPRequest) (otp.RequestOTPResponse, error) {
	return f.RequestFn(ctx, req)
}
func (f *fakeOTPService) Verify(ctx context.Context, req otp.VerifyOTPRequest) (otp.VerifyOTPResponse, error) {
	return f.VerifyFn(ctx, req)
}
func (f *fakeOTPService) Redeem(context.Context, *sql.Tx, string, string, string, string) error {
	return nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestOTPHandler_Request(t *testing.T) {
	t.Run("falls back to client ip", func(t *testing.T) {
		svc := &fakeOTPService{
			RequestFn: func(_ context.Context, req otp.RequestOTPRequest) (otp.RequestOTPResponse, error) {
				assert.Equal(t, "192.0.2.10", req.DeviceIP)
				return otp.RequestOTPResponse{ExpiresAt: "2026-03-02T08:40:00Z"}, nil
			},
		}
		r := setupRouter()
		r.POST("/request-otp", otp.NewHandler(svc).Request)

		req := httptest.NewRequest(http.MethodPost, "/request-otp", strings.NewReader(`{"email":"emp@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "192.0.2.10:5555"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("suspicious activity is forbidden", func(t *testing.T) {
		svc := &fakeOTPService{
			RequestFn: func(context.Context, otp.RequestOTPRequest) (otp.RequestOTPResponse, error) {
				return otp.RequestOTPResponse{}, otperrors.ErrSuspiciousActivity
			},
		}
		r := setupRouter()
		r.POST("/request-otp", otp.NewHandler(svc).Request)

		req := httptest.NewRequest(http.MethodPost, "/request-otp", strings.NewReader(`{"email":"emp@example.com","device_ip":"10.0.0.7"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "SUSPICIOUS_ACTIVITY")
	})

	t.Run("invalid email", func(t *testing.T) {
		r := setupRouter()
		r.POST("/request-otp", otp.NewHandler(&fakeOTPService{}).Request)

		req := httptest.NewRequest(http.MethodPost, "/request-otp", strings.NewReader(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOTPHandler_Verify(t *testing.T) {
	svc := &fakeOTPService{
		VerifyFn: func(_ context.Context, req otp.VerifyOTPRequest) (otp.VerifyOTPResponse, error) {
			if req.OTPCode != "123456" {
				return otp.VerifyOTPResponse{}, otperrors.ErrInvalidOrExpired
			}
			return otp.VerifyOTPResponse{Verified: true}, nil
		},
	}
	r := setupRouter()
	r.POST("/verify-otp", otp.NewHandler(svc).Verify)

	for code, status := range map[string]int{"123456": http.StatusOK, "000000": http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodPost, "/verify-otp",
			strings.NewReader(`{"email":"emp@example.com","otp_code":"`+code+`","device_ip":"10.0.0.7"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, status, w.Code, code)
	}
}
