package otp_test

import (
	"context"
	"testing"

	"go-attendance/internal/otp"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return gormDB, mock
}

func TestOTPRepository_MarkVerified(t *testing.T) {
	gormDB, mock := newGormMock(t)
	repo := otp.NewRepository(gormDB)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "otp_entries" SET .*"used".*WHERE id = .* AND used = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.MarkVerified(context.Background(), id, now)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(`UPDATE "otp_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.MarkVerified(context.Background(), id, now)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_DistinctEmailsSince(t *testing.T) {
	gormDB, mock := newGormMock(t)
	repo := otp.NewRepository(gormDB)

	mock.ExpectQuery(`SELECT DISTINCT .*email.* FROM "otp_entries" WHERE device_ip = .* AND created_at > `).
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("a@example.com").AddRow("b@example.com"))

	emails, err := repo.DistinctEmailsSince(context.Background(), "10.0.0.7", now)

	assert.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, emails)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOTPRepository_MarkConsumed(t *testing.T) {
	gormDB, mock := newGormMock(t)
	repo := otp.NewRepository(gormDB)

	mock.ExpectExec(`UPDATE "otp_entries" SET .*consumed_at IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.MarkConsumed(context.Background(), uuid.New(), otp.PurposeClockIn, now)

	assert.NoError(t, err)
	assert.True(t, ok)
}
