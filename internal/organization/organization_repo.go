package organization

import (
	"context"
	"database/sql"

	"go-attendance/internal/shared/connection"
	"go-attendance/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id string) (*Organization, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateOwner(ctx context.Context, owner *user.User) error
	SetOwner(ctx context.Context, orgID, ownerID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	return &org, err
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateOwner(ctx context.Context, owner *user.User) error {
	return r.db.WithContext(ctx).Omit("Profile").Create(owner).Error
}

func (r *repository) SetOwner(ctx context.Context, orgID, ownerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Organization{}).
		Where("id = ?", orgID).
		Update("owner_id", ownerID).Error
}
