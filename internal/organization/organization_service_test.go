package organization_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-attendance/internal/domain"
	"go-attendance/internal/organization"
	organizationerrors "go-attendance/internal/organization/errors"
	organizationMock "go-attendance/internal/organization/mock"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *organizationMock.MockRepository
	service organization.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	repo := organizationMock.NewMockRepository(ctrl)
	return &serviceDeps{db: db, sqlMock: sqlMock, repo: repo, service: organization.NewService(db, repo)}
}

func TestOrganizationService_Register(t *testing.T) {
	ctx := context.Background()
	req := organization.RegisterRequest{
		OrganizationName: " Acme ",
		Description:      "Widgets",
		OwnerEmail:       "Boss@Acme.com",
		OwnerPassword:    "secret123",
	}

	t.Run("creates organization and owner in one transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		var orgID uuid.UUID
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailExists(ctx, "boss@acme.com").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, o *organization.Organization) error {
			assert.Equal(t, "Acme", o.Name)
			orgID = o.ID
			return nil
		})
		deps.repo.EXPECT().CreateOwner(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, "boss@acme.com", u.Email)
			assert.Equal(t, "owner", u.Role)
			assert.Equal(t, orgID, u.OrganizationID)
			assert.True(t, u.EmailVerified)
			assert.True(t, u.IsActive)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("secret123")))
			return nil
		})
		deps.repo.EXPECT().SetOwner(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Acme", resp.Organization.Name)
		assert.Equal(t, resp.Owner.ID, *resp.Organization.OwnerID)
		assert.Equal(t, "owner", resp.Owner.Role)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailExists(ctx, "boss@acme.com").Return(true, nil)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, organizationerrors.ErrEmailAlreadyRegistered)
		assert.Equal(t, 409, apperror.ToHTTP(err).Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("email taken concurrently", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailExists(ctx, "boss@acme.com").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateOwner(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_users_email"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, req)

		assert.ErrorIs(t, err, organizationerrors.ErrEmailAlreadyRegistered)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("owner update failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmailExists(ctx, "boss@acme.com").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().CreateOwner(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().SetOwner(ctx, gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, req)

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("blank name", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Register(ctx, organization.RegisterRequest{OrganizationName: "  ", OwnerEmail: "a@b.c", OwnerPassword: "secret123"})

		assert.ErrorIs(t, err, organizationerrors.ErrMissingRequiredFields)
	})
}

func TestOrganizationService_Get(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)
	defer deps.db.Close()

	orgID := uuid.New()
	owner := domain.Identity{UserID: uuid.NewString(), Role: domain.RoleOwner, OrganizationID: orgID.String()}

	deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(&organization.Organization{ID: orgID, Name: "Acme"}, nil)
	resp, err := deps.service.Get(ctx, owner)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)

	deps.repo.EXPECT().FindByID(ctx, orgID.String()).Return(nil, gorm.ErrRecordNotFound)
	_, err = deps.service.Get(ctx, owner)
	assert.ErrorIs(t, err, organizationerrors.ErrOrganizationNotFound)

	_, err = deps.service.Get(ctx, domain.Identity{UserID: "x", Role: domain.RoleEmployee})
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
