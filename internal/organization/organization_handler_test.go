package organization_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attendance/internal/domain"
	"go-attendance/internal/organization"
	organizationerrors "go-attendance/internal/organization/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeOrganizationService struct {
	RegisterFn func(ctx context.Context, req organization.RegisterRequest) (organization.RegisterResponse, error)
	GetFn      func(ctx context.Context, actor domain.Identity) (organization.OrganizationResponse, error)
}

func (f *fakeOrganizationService) Register(ctx context.Context, req organization.RegisterRequest) (organization.RegisterResponse, error) {
	return f.RegisterFn(ctx, req)
}
func (f *fakeOrganizationService) Get(ctx context.Context, actor domain.Identity) (organization.OrganizationResponse, error) {
	return f.GetFn(ctx, actor)
}

func postRegister(h *organization.Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", h.Register)

	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrganizationHandler_Register(t *testing.T) {
	valid := `{"organization_name":"Acme","owner_email":"boss@acme.com","owner_password":"secret123"}`

	t.Run("created", func(t *testing.T) {
		svc := &fakeOrganizationService{
			RegisterFn: func(_ context.Context, req organization.RegisterRequest) (organization.RegisterResponse, error) {
				assert.Equal(t, "Acme", req.OrganizationName)
				return organization.RegisterResponse{Organization: organization.OrganizationResponse{Name: "Acme"}}, nil
			},
		}
		w := postRegister(organization.NewHandler(svc), valid)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		w := postRegister(organization.NewHandler(&fakeOrganizationService{}),
			`{"organization_name":"Acme","owner_email":"boss@acme.com","owner_password":"123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		svc := &fakeOrganizationService{
			RegisterFn: func(context.Context, organization.RegisterRequest) (organization.RegisterResponse, error) {
				return organization.RegisterResponse{}, organizationerrors.ErrEmailAlreadyRegistered
			},
		}
		w := postRegister(organization.NewHandler(svc), valid)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
