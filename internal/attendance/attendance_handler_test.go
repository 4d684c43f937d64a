package attendance_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeAttendanceService struct {
	ClockInFn  func(ctx context.Context, actor domain.Identity, req attendance.ClockInRequest) (attendance.AttendanceResponse, error)
	ClockOutFn func(ctx context.Context, actor domain.Identity, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error)
	TodayFn    func(ctx context.Context, actor domain.Identity) ([]attendance.TeamMemberStatus, error)
	HistoryFn  func(ctx context.Context, actor domain.Identity, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error)
}

func (f *fakeAttendanceService) ClockIn(ctx context.Context, actor domain.Identity, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
	return f.ClockInFn(ctx, actor, req)
}
func (f *fakeAttendanceService) ClockOut(ctx context.Context, actor domain.Identity, req attendance.ClockOutRequest) (attendance.AttendanceResponse, error) {
	return f.ClockOutFn(ctx, actor, req)
}
func (f *fakeAttendanceService) Today(ctx context.Context, actor domain.Identity) ([]attendance.TeamMemberStatus, error) {
	return f.TodayFn(ctx, actor)
}
func (f *fakeAttendanceService) History(ctx context.Context, actor domain.Identity, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
	return f.HistoryFn(ctx, actor, q)
}

type staticParser struct{ identity domain.Identity }

func (p staticParser) Parse(string) (domain.Identity, error) { return p.identity, nil }

func setupRouter(identity domain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(staticParser{identity: identity}))
	return r
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer test")
	return req
}

func TestAttendanceHandler_ClockIn(t *testing.T) {
	sup := domain.Identity{UserID: uuid.NewString(), Role: domain.RoleSupervisor, OrganizationID: "org"}
	employeeID := uuid.NewString()

	t.Run("created", func(t *testing.T) {
		svc := &fakeAttendanceService{
			ClockInFn: func(_ context.Context, actor domain.Identity, req attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
				assert.Equal(t, sup.UserID, actor.UserID)
				assert.Equal(t, "192.0.2.4", req.DeviceIP)
				return attendance.AttendanceResponse{EmployeeID: req.EmployeeID, Status: attendance.StatusPresent}, nil
			},
		}
		r := setupRouter(sup)
		r.POST("/clock-in", attendance.NewHandler(svc).ClockIn)

		req := jsonRequest(http.MethodPost, "/clock-in", `{"employee_id":"`+employeeID+`","method":"fingerprint"}`)
		req.RemoteAddr = "192.0.2.4:1000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unsupported method", func(t *testing.T) {
		r := setupRouter(sup)
		r.POST("/clock-in", attendance.NewHandler(&fakeAttendanceService{}).ClockIn)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/clock-in", `{"employee_id":"`+employeeID+`","method":"face"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already clocked in", func(t *testing.T) {
		svc := &fakeAttendanceService{
			ClockInFn: func(context.Context, domain.Identity, attendance.ClockInRequest) (attendance.AttendanceResponse, error) {
				return attendance.AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
			},
		}
		r := setupRouter(sup)
		r.POST("/clock-in", attendance.NewHandler(svc).ClockIn)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest(http.MethodPost, "/clock-in", `{"employee_id":"`+employeeID+`","method":"fingerprint"}`))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAttendanceHandler_History(t *testing.T) {
	emp := domain.Identity{UserID: uuid.NewString(), Role: domain.RoleEmployee, OrganizationID: "org"}
	svc := &fakeAttendanceService{
		HistoryFn: func(_ context.Context, _ domain.Identity, q attendance.HistoryQuery) ([]attendance.AttendanceResponse, error) {
			assert.Equal(t, "2026-03-01", q.StartDate)
			return []attendance.AttendanceResponse{{ID: "r1"}}, nil
		},
	}
	r := setupRouter(emp)
	r.GET("/attendance", attendance.NewHandler(svc).History)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest(http.MethodGet, "/attendance?start_date=2026-03-01", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"r1"`)
}
