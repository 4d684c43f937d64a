package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-attendance/internal/auth"
	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"
	"go-attendance/internal/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAuthService struct {
	LoginFn func(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error)
	MeFn    func(ctx context.Context, actor domain.Identity) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	return f.LoginFn(ctx, req)
}
func (f *fakeAuthService) Me(ctx context.Context, actor domain.Identity) (auth.AuthResponse, error) {
	return f.MeFn(ctx, actor)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sets session cookie", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(_ context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
				assert.Equal(t, "emp@example.com", req.Email)
				return auth.LoginResponse{AccessToken: "tok", TokenType: "Bearer"}, nil
			},
		}
		r := gin.New()
		r.POST("/login", auth.NewHandler(svc, true).Login)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"emp@example.com","password":"secret123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookie := w.Result().Cookies()[0]
		assert.Equal(t, middleware.AccessTokenName, cookie.Name)
		assert.Equal(t, "tok", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, 8*3600, cookie.MaxAge)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeAuthService{
			LoginFn: func(context.Context, auth.LoginRequest) (auth.LoginResponse, error) {
				return auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		r := gin.New()
		r.POST("/login", auth.NewHandler(svc, false).Login)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"emp@example.com","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("malformed email", func(t *testing.T) {
		r := gin.New()
		r.POST("/login", auth.NewHandler(&fakeAuthService{}, false).Login)

		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"nope","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_MeThroughMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tm := auth.NewTokenManager("secret", clock.Fixed(now))
	token, _, err := tm.Issue(domain.Identity{UserID: "u-1", Role: domain.RoleSupervisor, OrganizationID: "org-1"})
	assert.NoError(t, err)

	svc := &fakeAuthService{
		MeFn: func(_ context.Context, actor domain.Identity) (auth.AuthResponse, error) {
			return auth.AuthResponse{ID: actor.UserID, Role: actor.Role.String()}, nil
		},
	}
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(tm), auth.NewHandler(svc, false).Me)

	t.Run("cookie session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenName, Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"u-1"`)
	})

	t.Run("expired token", func(t *testing.T) {
		late := gin.New()
		late.GET("/me", middleware.AuthMiddleware(auth.NewTokenManager("secret", clock.Fixed(now.Add(9*time.Hour)))), auth.NewHandler(svc, false).Me)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		late.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})
}
