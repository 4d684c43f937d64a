package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-attendance/internal/attendance"
	attendanceerrors "go-attendance/internal/attendance/errors"
	attendanceMock "go-attendance/internal/attendance/mock"
	"go-attendance/internal/domain"
	"go-attendance/internal/otp"
	otperrors "go-attendance/internal/otp/errors"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var (
	now   = time.Date(2026, 3, 2, 9, 45, 0, 0, time.UTC)
	today = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
)

type fakeRedeemer struct {
	calls    []string
	RedeemFn func(email, code, deviceIP, purpose string) error
}

func (f *fakeRedeemer) Redeem(_ context.Context, tx *sql.Tx, email, code, deviceIP, purpose string) error {
	f.calls = append(f.calls, purpose)
	if f.RedeemFn == nil {
		return nil
	}
	return f.RedeemFn(email, code, deviceIP, purpose)
}

type serviceDeps struct {
	db       *sql.DB
	sqlMock  sqlmock.Sqlmock
	repo     *attendanceMock.MockRepository
	redeemer *fakeRedeemer
	service  attendance.Service
}

func setupServiceTest(t *testing.T, policy attendance.LatenessPolicy) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := attendanceMock.NewMockRepository(ctrl)
	redeemer := &fakeRedeemer{}

	svc := attendance.NewService(db, repo, redeemer, clock.Fixed(now), policy)
	return &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, redeemer: redeemer, service: svc}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func supervisor() domain.Identity {
	return domain.Identity{UserID: uuid.NewString(), Role: domain.RoleSupervisor, OrganizationID: uuid.NewString()}
}

func TestAttendanceService_ClockIn(t *testing.T) {
	ctx := context.Background()
	emp := &attendance.EmployeeRef{ID: uuid.New(), Email: "emp@example.com", FirstName: "Eve"}

	t.Run("fingerprint creates todays record", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *attendance.Record) (bool, error) {
			assert.Equal(t, emp.ID, r.EmployeeID)
			assert.Equal(t, today, r.AttendanceDate)
			assert.Equal(t, now, *r.ClockInTime)
			assert.Equal(t, attendance.MethodFingerprint, *r.ClockInMethod)
			assert.Equal(t, attendance.StatusPresent, r.Status)
			assert.Nil(t, r.ClockOutTime)
			return true, nil
		})

		resp, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{
			EmployeeID: emp.ID.String(),
			Method:     attendance.MethodFingerprint,
			DeviceIP:   "10.0.0.7",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-02", resp.AttendanceDate)
		assert.Empty(t, deps.redeemer.calls)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("otp redeems code for clock in and applies lateness policy", func(t *testing.T) {
		deps := setupServiceTest(t, attendance.LateAfter(9, 15))
		defer deps.db.Close()
		sup := supervisor()

		deps.redeemer.RedeemFn = func(email, code, deviceIP, purpose string) error {
			assert.Equal(t, "emp@example.com", email)
			assert.Equal(t, "123456", code)
			assert.Equal(t, "10.0.0.7", deviceIP)
			return nil
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Insert(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *attendance.Record) (bool, error) {
			assert.Equal(t, attendance.StatusLate, r.Status)
			return true, nil
		})

		resp, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{
			EmployeeID: emp.ID.String(),
			Method:     attendance.MethodOTP,
			DeviceIP:   "10.0.0.7",
			OTPCode:    "123456",
		})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusLate, resp.Status)
		assert.Equal(t, []string{otp.PurposeClockIn}, deps.redeemer.calls)
	})

	t.Run("invalid otp rolls back", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()
		deps.redeemer.RedeemFn = func(string, string, string, string) error { return otperrors.ErrInvalidOTP }

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{
			EmployeeID: emp.ID.String(),
			Method:     attendance.MethodOTP,
			OTPCode:    "000000",
		})

		assert.ErrorIs(t, err, otperrors.ErrInvalidOTP)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already clocked in", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()
		in := today.Add(8 * time.Hour)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(&attendance.Record{ID: uuid.New(), ClockInTime: &in}, nil)

		_, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{EmployeeID: emp.ID.String(), Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	})

	t.Run("concurrent insert lost", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Insert(ctx, gomock.Any()).Return(false, nil)

		_, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{EmployeeID: emp.ID.String(), Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	})

	t.Run("fills a row without clock in", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()
		rowID := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(&attendance.Record{ID: rowID, Status: attendance.StatusAbsent}, nil)
		deps.repo.EXPECT().RecordClockIn(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *attendance.Record) (bool, error) {
			assert.Equal(t, rowID, r.ID)
			return true, nil
		})

		_, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{EmployeeID: emp.ID.String(), Method: attendance.MethodFingerprint})

		assert.NoError(t, err)
	})

	t.Run("employee outside team", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ClockIn(ctx, sup, attendance.ClockInRequest{EmployeeID: uuid.NewString(), Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})

	t.Run("only supervisors clock", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()

		_, err := deps.service.ClockIn(ctx, domain.Identity{UserID: "e", Role: domain.RoleEmployee}, attendance.ClockInRequest{Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("unknown method", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()

		_, err := deps.service.ClockIn(ctx, supervisor(), attendance.ClockInRequest{Method: "face"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidMethod)
	})
}

func TestAttendanceService_ClockOut(t *testing.T) {
	ctx := context.Background()
	emp := &attendance.EmployeeRef{ID: uuid.New(), Email: "emp@example.com"}
	in := today.Add(8 * time.Hour)

	t.Run("otp clock out", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()
		rowID := uuid.New()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(&attendance.Record{
			ID: rowID, EmployeeID: emp.ID, AttendanceDate: today, ClockInTime: &in, Status: attendance.StatusPresent,
		}, nil)
		deps.repo.EXPECT().RecordClockOut(ctx, rowID, now, attendance.MethodOTP).Return(true, nil)

		resp, err := deps.service.ClockOut(ctx, sup, attendance.ClockOutRequest{
			EmployeeID: emp.ID.String(),
			Method:     attendance.MethodOTP,
			OTPCode:    "654321",
		})

		assert.NoError(t, err)
		assert.Equal(t, now.Format(time.RFC3339), *resp.ClockOutTime)
		assert.Equal(t, []string{otp.PurposeClockOut}, deps.redeemer.calls)
	})

	t.Run("no record today", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ClockOut(ctx, sup, attendance.ClockOutRequest{EmployeeID: emp.ID.String(), Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, attendanceerrors.ErrNotClockedIn)
	})

	t.Run("already clocked out", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()
		out := in.Add(time.Hour)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(&attendance.Record{ClockInTime: &in, ClockOutTime: &out}, nil)

		_, err := deps.service.ClockOut(ctx, sup, attendance.ClockOutRequest{EmployeeID: emp.ID.String(), Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)
	})

	t.Run("clock out must follow clock in", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()
		sup := supervisor()
		sameInstant := now

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindSupervisedEmployee(ctx, sup.UserID, emp.ID.String()).Return(emp, nil)
		deps.repo.EXPECT().FindForUpdate(ctx, emp.ID.String(), today).Return(&attendance.Record{ClockInTime: &sameInstant}, nil)

		_, err := deps.service.ClockOut(ctx, sup, attendance.ClockOutRequest{EmployeeID: emp.ID.String(), Method: attendance.MethodFingerprint})

		assert.ErrorIs(t, err, attendanceerrors.ErrClockOutNotAfterClockIn)
	})
}

func TestAttendanceService_Today(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, nil)
	defer deps.db.Close()
	sup := supervisor()

	absent := attendance.EmployeeRef{ID: uuid.New(), FirstName: "Abe"}
	working := attendance.EmployeeRef{ID: uuid.New(), FirstName: "Bea"}
	done := attendance.EmployeeRef{ID: uuid.New(), FirstName: "Cal"}
	in := today.Add(8 * time.Hour)
	out := today.Add(16 * time.Hour)

	deps.repo.EXPECT().ListSupervisedEmployees(ctx, sup.UserID).Return([]attendance.EmployeeRef{absent, working, done}, nil)
	deps.repo.EXPECT().FindByEmployeesAndDate(ctx, []uuid.UUID{absent.ID, working.ID, done.ID}, today).Return([]attendance.Record{
		{ID: uuid.New(), EmployeeID: working.ID, ClockInTime: &in},
		{ID: uuid.New(), EmployeeID: done.ID, ClockInTime: &in, ClockOutTime: &out},
	}, nil)

	resp, err := deps.service.Today(ctx, sup)

	assert.NoError(t, err)
	assert.Len(t, resp, 3)
	assert.Equal(t, attendance.StateAbsent, resp[0].State)
	assert.Nil(t, resp[0].Record)
	assert.Equal(t, attendance.StateClockedIn, resp[1].State)
	assert.Equal(t, attendance.StateComplete, resp[2].State)
}

func TestAttendanceService_History(t *testing.T) {
	ctx := context.Background()
	employee := domain.Identity{UserID: uuid.NewString(), Role: domain.RoleEmployee}

	t.Run("range is passed through", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()

		start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		deps.repo.EXPECT().FindByEmployee(ctx, employee.UserID, &start, &end).Return([]attendance.Record{{ID: uuid.New()}}, nil)

		resp, err := deps.service.History(ctx, employee, attendance.HistoryQuery{StartDate: "2026-03-01", EndDate: "2026-03-31"})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("inverted range", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()

		_, err := deps.service.History(ctx, employee, attendance.HistoryQuery{StartDate: "2026-03-31", EndDate: "2026-03-01"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidRange)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupServiceTest(t, nil)
		defer deps.db.Close()

		_, err := deps.service.History(ctx, employee, attendance.HistoryQuery{StartDate: "03/01/2026"})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
	})
}

func TestLatenessPolicy(t *testing.T) {
	policy, err := attendance.ParseLatenessPolicy("09:15")
	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, policy.Status(time.Date(2026, 3, 2, 9, 15, 59, 0, time.UTC)))
	assert.Equal(t, attendance.StatusLate, policy.Status(time.Date(2026, 3, 2, 9, 16, 0, 0, time.UTC)))

	policy, err = attendance.ParseLatenessPolicy("")
	assert.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, policy.Status(time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)))

	_, err = attendance.ParseLatenessPolicy("9am")
	assert.Error(t, err)
}
