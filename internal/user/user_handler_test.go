package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"
	"go-attendance/internal/user"
	usererrors "go-attendance/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	CreateSupervisorFn  func(ctx context.Context, actor domain.Identity, req user.CreateSupervisorRequest) (user.UserResponse, error)
	CreateEmployeeFn    func(ctx context.Context, actor domain.Identity, req user.CreateEmployeeRequest) (user.UserResponse, error)
	ListSupervisorsFn   func(ctx context.Context, actor domain.Identity) ([]user.UserResponse, error)
	ListEmployeesFn     func(ctx context.Context, actor domain.Identity) ([]user.UserResponse, error)
	GetProfileFn        func(ctx context.Context, actor domain.Identity) (user.UserResponse, error)
	InspectSetupTokenFn func(ctx context.Context, token string) (user.SetupAccountResponse, error)
	SetupPasswordFn     func(ctx context.Context, req user.SetupPasswordRequest) error
}

func (f *fakeUserService) CreateSupervisor(ctx context.Context, actor domain.Identity, req user.CreateSupervisorRequest) (user.UserResponse, error) {
	return f.CreateSupervisorFn(ctx, actor, req)
}
func (f *fakeUserService) CreateEmployee(ctx context.Context, actor domain.Identity, req user.CreateEmployeeRequest) (user.UserResponse, error) {
	return f.CreateEmployeeFn(ctx, actor, req)
}
func (f *fakeUserService) ListSupervisors(ctx context.Context, actor domain.Identity) ([]user.UserResponse, error) {
	return f.ListSupervisorsFn(ctx, actor)
}
func (f *fakeUserService) ListEmployees(ctx context.Context, actor domain.Identity) ([]user.UserResponse, error) {
	return f.ListEmployeesFn(ctx, actor)
}
func (f *fakeUserService) GetProfile(ctx context.Context, actor domain.Identity) (user.UserResponse, error) {
	return f.GetProfileFn(ctx, actor)
}
func (f *fakeUserService) InspectSetupToken(ctx context.Context, token string) (user.SetupAccountResponse, error) {
	return f.InspectSetupTokenFn(ctx, token)
}
func (f *fakeUserService) SetupPassword(ctx context.Context, req user.SetupPasswordRequest) error {
	return f.SetupPasswordFn(ctx, req)
}

type staticParser struct{ identity domain.Identity }

func (p staticParser) Parse(string) (domain.Identity, error) { return p.identity, nil }

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func authAs(identity domain.Identity) gin.HandlerFunc {
	return middleware.AuthMiddleware(staticParser{identity: identity})
}

func bearer(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer test")
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestUserHandler_CreateEmployee(t *testing.T) {
	sup := domain.Identity{UserID: "sup-1", Role: domain.RoleSupervisor, OrganizationID: "org-1"}
	body := `{"email":"emp@example.com","first_name":"Eve","last_name":"Worker","nin":"N1","phone_number":"1","address":"A","emergency_contact_name":"B","emergency_contact_phone":"2"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			CreateEmployeeFn: func(ctx context.Context, actor domain.Identity, req user.CreateEmployeeRequest) (user.UserResponse, error) {
				assert.Equal(t, "sup-1", actor.UserID)
				assert.Equal(t, "Eve", req.FirstName)
				return user.UserResponse{ID: "emp-1", Email: req.Email}, nil
			},
		}
		r := setupRouter()
		r.POST("/employees", authAs(sup), user.NewHandler(svc).CreateEmployee)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearer(httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"emp-1"`)
	})

	t.Run("validation error", func(t *testing.T) {
		r := setupRouter()
		r.POST("/employees", authAs(sup), user.NewHandler(&fakeUserService{}).CreateEmployee)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearer(httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"email":"x"}`))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		svc := &fakeUserService{
			CreateEmployeeFn: func(context.Context, domain.Identity, user.CreateEmployeeRequest) (user.UserResponse, error) {
				return user.UserResponse{}, usererrors.ErrEmailAlreadyRegistered
			},
		}
		r := setupRouter()
		r.POST("/employees", authAs(sup), user.NewHandler(svc).CreateEmployee)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, bearer(httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_ListSupervisors(t *testing.T) {
	owner := domain.Identity{UserID: "own-1", Role: domain.RoleOwner, OrganizationID: "org-1"}
	svc := &fakeUserService{
		ListSupervisorsFn: func(_ context.Context, actor domain.Identity) ([]user.UserResponse, error) {
			assert.Equal(t, "org-1", actor.OrganizationID)
			return []user.UserResponse{{ID: "s1"}, {ID: "s2"}}, nil
		},
	}
	r := setupRouter()
	r.GET("/supervisors", authAs(owner), user.NewHandler(svc).ListSupervisors)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, bearer(httptest.NewRequest(http.MethodGet, "/supervisors", nil)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
}

func TestUserHandler_SetupPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{
			SetupPasswordFn: func(_ context.Context, req user.SetupPasswordRequest) error {
				assert.Equal(t, "tok", req.Token)
				return nil
			},
		}
		r := setupRouter()
		r.POST("/setup-password", user.NewHandler(svc).SetupPassword)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/setup-password",
			strings.NewReader(`{"token":"tok","password":"secret1","confirm_password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc := &fakeUserService{
			SetupPasswordFn: func(context.Context, user.SetupPasswordRequest) error {
				return usererrors.ErrInvalidSetupToken
			},
		}
		r := setupRouter()
		r.POST("/setup-password", user.NewHandler(svc).SetupPassword)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/setup-password",
			strings.NewReader(`{"token":"tok","password":"secret1","confirm_password":"secret1"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
