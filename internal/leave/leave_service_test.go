package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-attendance/internal/domain"
	"go-attendance/internal/events"
	"go-attendance/internal/leave"
	leaveerrors "go-attendance/internal/leave/errors"
	leaveMock "go-attendance/internal/leave/mock"
	"go-attendance/internal/messaging/kafka"
	kafkaMock "go-attendance/internal/messaging/kafka/mock"
	"go-attendance/internal/notification"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var now = time.Date(2026, 3, 2, 9, 45, 0, 0, time.UTC)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *leaveMock.MockRepository
	outbox  *kafkaMock.MockOutboxRepository
	service leave.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := leave.NewService(db, repo, notification.NewOutboxNotifier(outbox), clock.Fixed(now))
	return &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, outbox: outbox, service: svc}
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

func decodeNotification(t *testing.T, ev kafka.OutboxEvent) events.NotificationRequestedEvent {
	t.Helper()
	assert.Equal(t, events.NotificationRequestedTopic, ev.Topic)
	var payload events.NotificationRequestedEvent
	assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
	return payload
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	supervisorID := uuid.New()
	employeeID := uuid.New()
	actor := domain.Identity{UserID: employeeID.String(), Role: domain.RoleEmployee}
	employee := &leave.Party{ID: employeeID, Email: "emp@example.com", FirstName: "Eve", LastName: "Adams", SupervisorID: &supervisorID}
	supervisor := &leave.Party{ID: supervisorID, Email: "sup@example.com", FirstName: "Sam"}

	validReq := leave.CreateLeaveRequest{StartDate: "2026-03-10", EndDate: "2026-03-12", Reason: " family trip "}

	t.Run("success notifies supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil)
		deps.repo.EXPECT().FindParty(ctx, supervisorID.String()).Return(supervisor, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.LeaveRequest) error {
			assert.Equal(t, employeeID, l.EmployeeID)
			assert.Equal(t, supervisorID, l.SupervisorID)
			assert.Equal(t, leave.StatusPending, l.Status)
			assert.Equal(t, "family trip", l.Reason)
			assert.Nil(t, l.ApprovedAt)
			return nil
		})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			payload := decodeNotification(t, ev)
			assert.Equal(t, notification.KindLeaveRequested, payload.Kind)
			assert.Equal(t, "sup@example.com", payload.To)
			assert.Contains(t, payload.HTML, "Eve Adams")
			return nil
		})

		resp, err := deps.service.Create(ctx, actor, validReq)

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, "2026-03-10", resp.StartDate)
		assert.Nil(t, resp.ApprovedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("starting today is allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil)
		deps.repo.EXPECT().FindParty(ctx, supervisorID.String()).Return(supervisor, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Create(ctx, actor, leave.CreateLeaveRequest{StartDate: "2026-03-02", EndDate: "2026-03-02", Reason: "doctor"})

		assert.NoError(t, err)
	})

	validation := []struct {
		name    string
		req     leave.CreateLeaveRequest
		wantErr error
	}{
		{name: "bad start format", req: leave.CreateLeaveRequest{StartDate: "03/10/2026", EndDate: "2026-03-12"}, wantErr: leaveerrors.ErrInvalidDateFormat},
		{name: "bad end format", req: leave.CreateLeaveRequest{StartDate: "2026-03-10", EndDate: "soon"}, wantErr: leaveerrors.ErrInvalidDateFormat},
		{name: "start after end", req: leave.CreateLeaveRequest{StartDate: "2026-03-12", EndDate: "2026-03-10"}, wantErr: leaveerrors.ErrInvalidRange},
		{name: "start in the past", req: leave.CreateLeaveRequest{StartDate: "2026-03-01", EndDate: "2026-03-03"}, wantErr: leaveerrors.ErrPastDate},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			defer deps.db.Close()

			_, err := deps.service.Create(ctx, actor, tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 400, apperror.ToHTTP(err).Status)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}

	t.Run("supervisor cannot file leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, domain.Identity{UserID: supervisorID.String(), Role: domain.RoleSupervisor}, validReq)

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("employee without supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		orphan := *employee
		orphan.SupervisorID = nil

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(&orphan, nil)

		_, err := deps.service.Create(ctx, actor, validReq)

		assert.ErrorIs(t, err, leaveerrors.ErrNoSupervisor)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overlapping request is accepted by default", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).Times(2)
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil).Times(2)
		deps.repo.EXPECT().FindParty(ctx, supervisorID.String()).Return(supervisor, nil).Times(2)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).Times(2)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(2)

		first, err := deps.service.Create(ctx, actor, validReq)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, first.Status)

		second, err := deps.service.Create(ctx, actor, validReq)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, second.Status)
		assert.Nil(t, second.ApprovedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("overlap check rejects when enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		db, sqlMock, _ := sqlmock.New()
		defer db.Close()
		repo := leaveMock.NewMockRepository(ctrl)
		outbox := kafkaMock.NewMockOutboxRepository(ctrl)
		svc := leave.NewServiceWithOverlapCheck(db, repo, notification.NewOutboxNotifier(outbox), clock.Fixed(now))

		expectTx(t, sqlMock, false)
		repo.EXPECT().WithTx(gomock.Any()).Return(repo)
		repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil)
		repo.EXPECT().HasOverlappingPeriod(ctx, employeeID.String(), gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(ctx, actor, validReq)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil)
		deps.repo.EXPECT().FindParty(ctx, supervisorID.String()).Return(supervisor, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := deps.service.Create(ctx, actor, validReq)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	supervisorID := uuid.New()
	employeeID := uuid.New()
	actor := domain.Identity{UserID: supervisorID.String(), Role: domain.RoleSupervisor}

	pending := func() *leave.LeaveRequest {
		return &leave.LeaveRequest{
			ID:           uuid.New(),
			EmployeeID:   employeeID,
			SupervisorID: supervisorID,
			StartDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:       leave.StatusPending,
		}
	}
	employee := &leave.Party{ID: employeeID, Email: "emp@example.com"}

	t.Run("approve sets approved_at and notifies employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		l := pending()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindForSupervisor(ctx, supervisorID.String(), l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Decide(ctx, l.ID, leave.StatusApproved, gomock.Any(), now).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, _ string, approvedAt *time.Time, _ time.Time) (bool, error) {
				assert.NotNil(t, approvedAt)
				assert.Equal(t, now, *approvedAt)
				return true, nil
			})
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			payload := decodeNotification(t, ev)
			assert.Equal(t, notification.KindLeaveDecided, payload.Kind)
			assert.Equal(t, "emp@example.com", payload.To)
			return nil
		})

		resp, err := deps.service.Decide(ctx, actor, l.ID.String(), leave.DecideLeaveRequest{Status: "approved"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApprovedAt)
		assert.Equal(t, "2026-03-02T09:45:00Z", *resp.ApprovedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject leaves approved_at empty", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		l := pending()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindForSupervisor(ctx, supervisorID.String(), l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Decide(ctx, l.ID, leave.StatusRejected, (*time.Time)(nil), now).Return(true, nil)
		deps.repo.EXPECT().FindParty(ctx, employeeID.String()).Return(employee, nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Decide(ctx, actor, l.ID.String(), leave.DecideLeaveRequest{Status: "rejected"})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
		assert.Nil(t, resp.ApprovedAt)
		assert.NotNil(t, resp.DecidedAt)
	})

	t.Run("second decision is a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		l := pending()
		l.Status = leave.StatusApproved

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindForSupervisor(ctx, supervisorID.String(), l.ID.String()).Return(l, nil)

		_, err := deps.service.Decide(ctx, actor, l.ID.String(), leave.DecideLeaveRequest{Status: "rejected"})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyDecided)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("lost race to a concurrent decision", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		l := pending()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindForSupervisor(ctx, supervisorID.String(), l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Decide(ctx, l.ID, leave.StatusApproved, gomock.Any(), now).Return(false, nil)

		_, err := deps.service.Decide(ctx, actor, l.ID.String(), leave.DecideLeaveRequest{Status: "approved"})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveAlreadyDecided)
	})

	t.Run("request of another supervisor", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		id := uuid.NewString()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindForSupervisor(ctx, supervisorID.String(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Decide(ctx, actor, id, leave.DecideLeaveRequest{Status: "approved"})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, actor, uuid.NewString(), leave.DecideLeaveRequest{Status: "pending"})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDecision)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, actor, "not-a-uuid", leave.DecideLeaveRequest{Status: "approved"})

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("employee cannot decide", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Decide(ctx, domain.Identity{UserID: employeeID.String(), Role: domain.RoleEmployee}, uuid.NewString(), leave.DecideLeaveRequest{Status: "approved"})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})
}

func TestLeaveService_Lists(t *testing.T) {
	ctx := context.Background()
	supervisorID := uuid.New()
	employeeID := uuid.New()

	t.Run("supervisor sees names of the team", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().ListBySupervisor(ctx, supervisorID.String(), leave.StatusPending).Return([]leave.LeaveWithEmployee{
			{
				LeaveRequest:      leave.LeaveRequest{ID: uuid.New(), EmployeeID: employeeID, Status: leave.StatusPending},
				EmployeeEmail:     "emp@example.com",
				EmployeeFirstName: "Eve",
				EmployeeLastName:  "Adams",
			},
		}, nil)

		resp, err := deps.service.ListForSupervisor(ctx,
			domain.Identity{UserID: supervisorID.String(), Role: domain.RoleSupervisor},
			leave.ListLeaveQuery{Status: "Pending"},
		)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Eve Adams", resp[0].EmployeeName)
		assert.Equal(t, "emp@example.com", resp[0].EmployeeEmail)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ListForSupervisor(ctx,
			domain.Identity{UserID: supervisorID.String(), Role: domain.RoleSupervisor},
			leave.ListLeaveQuery{Status: "archived"},
		)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusFilter)
	})

	t.Run("employee sees own requests", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().ListByEmployee(ctx, employeeID.String()).Return([]leave.LeaveRequest{
			{ID: uuid.New(), EmployeeID: employeeID, Status: leave.StatusApproved},
			{ID: uuid.New(), EmployeeID: employeeID, Status: leave.StatusRejected},
		}, nil)

		resp, err := deps.service.ListForEmployee(ctx, domain.Identity{UserID: employeeID.String(), Role: domain.RoleEmployee})

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}
